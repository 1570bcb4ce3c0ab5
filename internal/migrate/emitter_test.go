/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package migrate

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dataops-cloud/dhub-cli/cmd/util"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestBuildProposalsTargetURNSpace(t *testing.T) {
	target := Entity{
		URN:  "urn:li:dataset:(urn:li:dataPlatform:kafka,events,PROD)",
		Type: "dataset",
	}
	changes := []Change{
		{Facet: TagsFacet, Operation: util.AddOperation, Value: "urn:li:tag:pii"},
		{Facet: DomainFacet, Operation: util.SetOperation, Value: "urn:li:domain:finance"},
		{Facet: FieldTagsFacet, Operation: util.AddOperation,
			Value: "urn:li:tag:pii", FieldPath: "user_id"},
	}

	proposals := BuildProposals(&target, changes)
	assert.Assert(t, is.Len(proposals, 3))

	for _, proposal := range proposals {
		assert.Check(t, is.Equal(target.URN, proposal.EntityURN))
		assert.Check(t, is.Equal("dataset", proposal.EntityType))
		assert.Check(t, is.Equal(util.UpsertChangeType, proposal.ChangeType))
	}
	assert.Check(t, is.Equal(util.GlobalTagsAspect, proposals[0].AspectName))
	assert.Check(t, is.Equal(util.DomainsAspect, proposals[1].AspectName))
	assert.Check(t, is.Equal(util.EditableSchemaMetadataAspect, proposals[2].AspectName))
	assert.Check(t, is.Equal("user_id", proposals[2].FieldPath))
}

func TestDirEmitterWritesDeterministicFiles(t *testing.T) {
	proposal := ChangeProposal{
		EntityURN:  "urn:li:dataset:(urn:li:dataPlatform:kafka,events,PROD)",
		EntityType: "dataset",
		ChangeType: util.UpsertChangeType,
		AspectName: util.GlobalTagsAspect,
		Operation:  util.AddOperation,
		Value:      "urn:li:tag:pii",
	}

	emit := func(t *testing.T) (string, []byte) {
		dir := t.TempDir()
		emitter := DirEmitter{Dir: dir}
		assert.NilError(t, emitter.Submit(context.Background(), proposal))

		entries, err := os.ReadDir(dir)
		assert.NilError(t, err)
		assert.Assert(t, is.Len(entries, 1))
		body, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
		assert.NilError(t, err)
		return entries[0].Name(), body
	}

	firstName, firstBody := emit(t)
	secondName, secondBody := emit(t)
	assert.Check(t, is.Equal(firstName, secondName))
	assert.Check(t, is.DeepEqual(firstBody, secondBody))
	assert.Check(t, is.Equal(
		"mcp-0001-urn_li_dataset_urn_li_dataPlatform_kafka_events_PROD_-globalTags.json",
		firstName))
}
