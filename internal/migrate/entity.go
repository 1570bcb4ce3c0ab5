/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package migrate

import (
	"encoding/json"
	"strings"

	"github.com/dataops-cloud/dhub-cli/cmd/util"
)

// Entity is one record of a catalog export. Only the blocks that can
// be migrated across environments are decoded; everything else in the
// export is ignored.
type Entity struct {
	URN                  string                `json:"urn"`
	Type                 string                `json:"type"`
	Platform             string                `json:"platform,omitempty"`
	Name                 string                `json:"name,omitempty"`
	Tags                 *GlobalTags           `json:"tags,omitempty"`
	GlossaryTerms        *TermAssociations     `json:"glossaryTerms,omitempty"`
	Domain               *DomainAssociation    `json:"domain,omitempty"`
	StructuredProperties *StructuredProperties `json:"structuredProperties,omitempty"`
	SchemaMetadata       *SchemaMetadata       `json:"schemaMetadata,omitempty"`
}

// HasMetadata reports whether the entity carries anything to migrate
func (e *Entity) HasMetadata() bool {
	return e.Tags != nil || e.GlossaryTerms != nil || e.Domain != nil ||
		e.StructuredProperties != nil || e.SchemaMetadata != nil
}

// PlatformName resolves the platform of the entity, falling back to
// the platform segment of a dataset URN
func (e *Entity) PlatformName() string {
	if e.Platform != "" {
		return strings.TrimPrefix(e.Platform, "urn:li:dataPlatform:")
	}
	if platform, _, _, ok := util.ParseDatasetURN(e.URN); ok {
		return platform
	}
	return ""
}

// EntityName resolves the name of the entity, falling back to the
// name segment of a dataset URN
func (e *Entity) EntityName() string {
	if e.Name != "" {
		return e.Name
	}
	if _, name, _, ok := util.ParseDatasetURN(e.URN); ok {
		return name
	}
	return util.URNID(e.URN)
}

// TagURNs lists the tag URNs attached at the entity level
func (e *Entity) TagURNs() []string {
	if e.Tags == nil {
		return nil
	}
	return e.Tags.urns()
}

// TermURNs lists the glossary term URNs attached at the entity level
func (e *Entity) TermURNs() []string {
	if e.GlossaryTerms == nil {
		return nil
	}
	return e.GlossaryTerms.urns()
}

// DomainURN returns the assigned domain URN, empty when unassigned
func (e *Entity) DomainURN() string {
	if e.Domain == nil {
		return ""
	}
	return e.Domain.URN
}

// URNRef is a nested reference block. Exports carry these either as a
// bare URN string or as an object with an "urn" key.
type URNRef struct {
	URN string `json:"urn"`
}

// UnmarshalJSON accepts both reference encodings
func (r *URNRef) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &r.URN)
	}
	type plain URNRef
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	r.URN = p.URN
	return nil
}

// GlobalTags mirrors the tags block of an export
type GlobalTags struct {
	Tags []TagAssociation `json:"tags"`
}

func (g *GlobalTags) urns() []string {
	urns := make([]string, 0, len(g.Tags))
	for _, t := range g.Tags {
		if t.Tag.URN != "" {
			urns = append(urns, t.Tag.URN)
		}
	}
	return urns
}

// TagAssociation is one attached tag
type TagAssociation struct {
	Tag URNRef `json:"tag"`
}

// UnmarshalJSON accepts both {"tag":{"urn":...}} and {"urn":...}
func (a *TagAssociation) UnmarshalJSON(data []byte) error {
	type plain TagAssociation
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	if p.Tag.URN == "" {
		var ref URNRef
		if err := json.Unmarshal(data, &ref); err == nil {
			p.Tag = ref
		}
	}
	*a = TagAssociation(p)
	return nil
}

// TermAssociations mirrors the glossaryTerms block of an export
type TermAssociations struct {
	Terms []TermAssociation `json:"terms"`
}

func (g *TermAssociations) urns() []string {
	urns := make([]string, 0, len(g.Terms))
	for _, t := range g.Terms {
		if t.Term.URN != "" {
			urns = append(urns, t.Term.URN)
		}
	}
	return urns
}

// TermAssociation is one attached glossary term
type TermAssociation struct {
	Term URNRef `json:"term"`
}

// UnmarshalJSON accepts both {"term":{"urn":...}} and {"urn":...}
func (a *TermAssociation) UnmarshalJSON(data []byte) error {
	type plain TermAssociation
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	if p.Term.URN == "" {
		var ref URNRef
		if err := json.Unmarshal(data, &ref); err == nil {
			p.Term = ref
		}
	}
	*a = TermAssociation(p)
	return nil
}

// DomainAssociation mirrors the domain block of an export
type DomainAssociation struct {
	URN string `json:"urn"`
}

// StructuredProperties mirrors the structuredProperties block
type StructuredProperties struct {
	Properties []PropertyAssignment `json:"properties"`
}

// PropertyAssignment is one structured property with its values
type PropertyAssignment struct {
	Property URNRef        `json:"structuredProperty"`
	Values   []interface{} `json:"values"`
}

// ValueKey is a canonical encoding of the assigned values, used for
// comparisons and for the flat change-proposal record
func (p *PropertyAssignment) ValueKey() string {
	b, err := json.Marshal(p.Values)
	if err != nil {
		return ""
	}
	return string(b)
}

// SchemaMetadata mirrors the schemaMetadata block
type SchemaMetadata struct {
	Fields []SchemaField `json:"fields"`
}

// SchemaField carries the per-field tag and term associations
type SchemaField struct {
	FieldPath     string            `json:"fieldPath"`
	Tags          *GlobalTags       `json:"tags,omitempty"`
	GlossaryTerms *TermAssociations `json:"glossaryTerms,omitempty"`
}

// FieldTagURNs lists the tag URNs attached to the schema field
func (f *SchemaField) FieldTagURNs() []string {
	if f.Tags == nil {
		return nil
	}
	return f.Tags.urns()
}

// FieldTermURNs lists the term URNs attached to the schema field
func (f *SchemaField) FieldTermURNs() []string {
	if f.GlossaryTerms == nil {
		return nil
	}
	return f.GlossaryTerms.urns()
}
