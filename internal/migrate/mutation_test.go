/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package migrate

import (
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestLoadMutationsMissingFileIsNotFatal(t *testing.T) {
	mutations := LoadMutations(filepath.Join(t.TempDir(), "missing.json"))
	assert.Check(t, is.Len(mutations.Rules, 0))

	mutations = LoadMutations("")
	assert.Check(t, is.Len(mutations.Rules, 0))
}

func TestLoadMutationsAcceptsBothShapes(t *testing.T) {
	bare := writeFixture(t, "bare.json",
		`[{"match": "DEV", "replace": "PROD"}]`)
	wrapped := writeFixture(t, "wrapped.json",
		`{"rules": [{"match": "DEV", "replace": "PROD"}]}`)

	for _, path := range []string{bare, wrapped} {
		mutations := LoadMutations(path)
		assert.Assert(t, is.Len(mutations.Rules, 1))
		assert.Check(t, is.Equal("DEV", mutations.Rules[0].Match))
	}
}

func TestMutationsFirstMatchWinsPerField(t *testing.T) {
	mutations := Mutations{Rules: []MutationRule{
		{Match: "DEV", Replace: "PROD"},
		{Match: "PROD", Replace: "NEVER"},
	}}

	out, changed := mutations.apply("urn", "urn:li:dataset:(urn:li:dataPlatform:kafka,events,DEV)")
	assert.Check(t, changed)
	assert.Check(t, is.Equal("urn:li:dataset:(urn:li:dataPlatform:kafka,events,PROD)", out))

	out, changed = mutations.apply("urn", "urn:li:tag:pii")
	assert.Check(t, !changed)
	assert.Check(t, is.Equal("urn:li:tag:pii", out))
}

func TestMutationsScope(t *testing.T) {
	mutations := Mutations{Rules: []MutationRule{
		{Match: "dev-instance", Replace: "prod-instance", Scope: "platform"},
	}}

	_, changed := mutations.apply("urn", "urn:li:dataPlatform:dev-instance")
	assert.Check(t, !changed)
	out, changed := mutations.apply("platform", "dev-instance")
	assert.Check(t, changed)
	assert.Check(t, is.Equal("prod-instance", out))
}

func TestMutationsApplyToEntityRewritesNestedURNs(t *testing.T) {
	mutations := Mutations{Rules: []MutationRule{
		{Match: ",DEV)", Replace: ",PROD)"},
		{Match: "urn:li:tag:dev_", Replace: "urn:li:tag:"},
	}}

	entity := Entity{
		URN:  "urn:li:dataset:(urn:li:dataPlatform:kafka,events,DEV)",
		Type: "dataset",
		Tags: &GlobalTags{Tags: []TagAssociation{
			{Tag: URNRef{URN: "urn:li:tag:dev_pii"}},
		}},
		SchemaMetadata: &SchemaMetadata{Fields: []SchemaField{
			{
				FieldPath: "user_id",
				Tags: &GlobalTags{Tags: []TagAssociation{
					{Tag: URNRef{URN: "urn:li:tag:dev_pii"}},
				}},
			},
		}},
	}

	mutated := mutations.ApplyToEntity(&entity)
	assert.Check(t, is.Equal(3, mutated))
	assert.Check(t, is.Equal(
		"urn:li:dataset:(urn:li:dataPlatform:kafka,events,PROD)", entity.URN))
	assert.Check(t, is.Equal("urn:li:tag:pii", entity.Tags.Tags[0].Tag.URN))
	assert.Check(t, is.Equal("urn:li:tag:pii",
		entity.SchemaMetadata.Fields[0].Tags.Tags[0].Tag.URN))
}

func TestMutationsNoRulesIsNoOp(t *testing.T) {
	mutations := Mutations{}
	entity := Entity{URN: "urn:li:tag:pii", Type: "tag"}
	assert.Check(t, is.Equal(0, mutations.ApplyToEntity(&entity)))
	assert.Check(t, is.Equal("urn:li:tag:pii", entity.URN))
}
