/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package migrate

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/dataops-cloud/dhub-cli/cmd/util"
)

// ChangeProposal is the flat record describing one field level change
// to apply to one target URN. Proposals are never mutated after
// creation: they are either written to disk (dry run) or submitted to
// the target ingestion API (live run).
type ChangeProposal struct {
	EntityURN  string        `json:"entityUrn"`
	EntityType string        `json:"entityType"`
	ChangeType string        `json:"changeType"`
	AspectName string        `json:"aspectName"`
	Operation  string        `json:"operation"`
	Value      string        `json:"value,omitempty"`
	FieldPath  string        `json:"fieldPath,omitempty"`
	Values     []interface{} `json:"values,omitempty"`
}

// aspectForFacet maps a differ facet to the ingestion aspect name
func aspectForFacet(facet string) string {
	switch facet {
	case TagsFacet:
		return util.GlobalTagsAspect
	case GlossaryTermsFacet:
		return util.GlossaryTermsAspect
	case DomainFacet:
		return util.DomainsAspect
	case StructuredPropertiesFacet:
		return util.StructuredPropertiesAspect
	case FieldTagsFacet, FieldGlossaryTermsFacet:
		return util.EditableSchemaMetadataAspect
	}
	return facet
}

// BuildProposals converts detected changes into change proposals in
// the target URN space
func BuildProposals(target *Entity, changes []Change) []ChangeProposal {
	proposals := make([]ChangeProposal, 0, len(changes))
	for _, change := range changes {
		proposals = append(proposals, ChangeProposal{
			EntityURN:  target.URN,
			EntityType: target.Type,
			ChangeType: util.UpsertChangeType,
			AspectName: aspectForFacet(change.Facet),
			Operation:  change.Operation,
			Value:      change.Value,
			FieldPath:  change.FieldPath,
			Values:     change.Values,
		})
	}
	return proposals
}

// Submitter delivers one change proposal to its destination
type Submitter interface {
	Submit(ctx context.Context, proposal ChangeProposal) error
}

// DirEmitter is the dry run submitter. Each proposal becomes one JSON
// file under the output directory. File names and contents are
// deterministic, so reruns over unchanged input produce byte identical
// artifacts.
type DirEmitter struct {
	Dir string

	sequence int
}

// Submit writes the proposal to disk
func (d *DirEmitter) Submit(ctx context.Context, proposal ChangeProposal) error {
	if err := os.MkdirAll(d.Dir, 0755); err != nil {
		return &SubmissionError{URN: proposal.EntityURN, Aspect: proposal.AspectName, Err: err}
	}
	d.sequence++
	name := fmt.Sprintf("mcp-%04d-%s-%s.json",
		d.sequence, sanitizeURN(proposal.EntityURN), proposal.AspectName)

	body, err := json.MarshalIndent(proposal, "", "  ")
	if err != nil {
		return &SubmissionError{URN: proposal.EntityURN, Aspect: proposal.AspectName, Err: err}
	}
	body = append(body, '\n')
	if err := os.WriteFile(filepath.Join(d.Dir, name), body, 0644); err != nil {
		return &SubmissionError{URN: proposal.EntityURN, Aspect: proposal.AspectName, Err: err}
	}
	return nil
}

var unsafeURNChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// sanitizeURN turns a URN into a file name fragment
func sanitizeURN(urn string) string {
	safe := unsafeURNChars.ReplaceAllString(urn, "_")
	if len(safe) > 96 {
		safe = safe[:96]
	}
	return safe
}
