/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package migrate

import (
	"testing"

	"github.com/dataops-cloud/dhub-cli/cmd/util"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestDiffNoMetadataYieldsNoChanges(t *testing.T) {
	source := Entity{URN: "urn:li:dataset:(urn:li:dataPlatform:kafka,events,PROD)", Type: "dataset"}
	target := Entity{URN: "urn:li:dataset:(urn:li:dataPlatform:kafka,events,PROD)", Type: "dataset"}

	assert.Check(t, is.Len(DiffEntities(&source, &target), 0))
}

func TestDiffTagAddition(t *testing.T) {
	source := Entity{
		URN:  "urn:li:dataset:(platform,foo,PROD)",
		Type: "dataset",
		Tags: &GlobalTags{Tags: []TagAssociation{
			{Tag: URNRef{URN: "urn:li:tag:pii"}},
		}},
	}
	target := Entity{URN: "urn:li:dataset:(platform,foo,PROD)", Type: "dataset"}

	changes := DiffEntities(&source, &target)
	assert.Assert(t, is.Len(changes, 1))
	assert.Check(t, is.Equal(TagsFacet, changes[0].Facet))
	assert.Check(t, is.Equal(util.AddOperation, changes[0].Operation))
	assert.Check(t, is.Equal("urn:li:tag:pii", changes[0].Value))
}

func TestDiffSourceWins(t *testing.T) {
	source := Entity{
		URN:  "urn:li:tag:holder",
		Type: "dataset",
		Tags: &GlobalTags{Tags: []TagAssociation{
			{Tag: URNRef{URN: "urn:li:tag:pii"}},
		}},
	}
	target := Entity{
		URN:  "urn:li:tag:holder",
		Type: "dataset",
		Tags: &GlobalTags{Tags: []TagAssociation{
			{Tag: URNRef{URN: "urn:li:tag:deprecated"}},
		}},
	}

	changes := DiffEntities(&source, &target)
	assert.Assert(t, is.Len(changes, 2))
	assert.Check(t, is.Equal(util.AddOperation, changes[0].Operation))
	assert.Check(t, is.Equal("urn:li:tag:pii", changes[0].Value))
	assert.Check(t, is.Equal(util.RemoveOperation, changes[1].Operation))
	assert.Check(t, is.Equal("urn:li:tag:deprecated", changes[1].Value))
}

func TestDiffDomain(t *testing.T) {
	holder := func(domain string) Entity {
		entity := Entity{URN: "urn:li:dataset:(p,foo,PROD)", Type: "dataset"}
		if domain != "" {
			entity.Domain = &DomainAssociation{URN: domain}
		}
		return entity
	}

	testCases := []struct {
		name      string
		source    Entity
		target    Entity
		operation string
		value     string
	}{
		{
			name:      "set when target unassigned",
			source:    holder("urn:li:domain:finance"),
			target:    holder(""),
			operation: util.SetOperation,
			value:     "urn:li:domain:finance",
		},
		{
			name:      "set when assignment differs",
			source:    holder("urn:li:domain:finance"),
			target:    holder("urn:li:domain:sales"),
			operation: util.SetOperation,
			value:     "urn:li:domain:finance",
		},
		{
			name:      "remove when source unassigned",
			source:    holder(""),
			target:    holder("urn:li:domain:sales"),
			operation: util.RemoveOperation,
			value:     "urn:li:domain:sales",
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			changes := DiffEntities(&testCase.source, &testCase.target)
			assert.Assert(t, is.Len(changes, 1))
			assert.Check(t, is.Equal(DomainFacet, changes[0].Facet))
			assert.Check(t, is.Equal(testCase.operation, changes[0].Operation))
			assert.Check(t, is.Equal(testCase.value, changes[0].Value))
		})
	}

	t.Run("equal assignment is in sync", func(t *testing.T) {
		source := holder("urn:li:domain:finance")
		target := holder("urn:li:domain:finance")
		assert.Check(t, is.Len(DiffEntities(&source, &target), 0))
	})
}

func TestDiffStructuredProperties(t *testing.T) {
	source := Entity{
		URN:  "urn:li:dataset:(p,foo,PROD)",
		Type: "dataset",
		StructuredProperties: &StructuredProperties{Properties: []PropertyAssignment{
			{Property: URNRef{URN: "urn:li:structuredProperty:tier"}, Values: []interface{}{"gold"}},
			{Property: URNRef{URN: "urn:li:structuredProperty:owner"}, Values: []interface{}{"data-eng"}},
		}},
	}
	target := Entity{
		URN:  "urn:li:dataset:(p,foo,PROD)",
		Type: "dataset",
		StructuredProperties: &StructuredProperties{Properties: []PropertyAssignment{
			{Property: URNRef{URN: "urn:li:structuredProperty:tier"}, Values: []interface{}{"silver"}},
			{Property: URNRef{URN: "urn:li:structuredProperty:retention"}, Values: []interface{}{float64(30)}},
		}},
	}

	changes := DiffEntities(&source, &target)
	assert.Assert(t, is.Len(changes, 3))

	assert.Check(t, is.Equal(util.SetOperation, changes[0].Operation))
	assert.Check(t, is.Equal("urn:li:structuredProperty:tier", changes[0].Value))
	assert.Check(t, is.Equal(util.SetOperation, changes[1].Operation))
	assert.Check(t, is.Equal("urn:li:structuredProperty:owner", changes[1].Value))
	assert.Check(t, is.Equal(util.RemoveOperation, changes[2].Operation))
	assert.Check(t, is.Equal("urn:li:structuredProperty:retention", changes[2].Value))
}

func TestDiffSchemaFieldMetadata(t *testing.T) {
	source := Entity{
		URN:  "urn:li:dataset:(p,foo,PROD)",
		Type: "dataset",
		SchemaMetadata: &SchemaMetadata{Fields: []SchemaField{
			{
				FieldPath: "user_id",
				Tags: &GlobalTags{Tags: []TagAssociation{
					{Tag: URNRef{URN: "urn:li:tag:pii"}},
				}},
				GlossaryTerms: &TermAssociations{Terms: []TermAssociation{
					{Term: URNRef{URN: "urn:li:glossaryTerm:gdpr"}},
				}},
			},
		}},
	}
	target := Entity{
		URN:  "urn:li:dataset:(p,foo,PROD)",
		Type: "dataset",
		SchemaMetadata: &SchemaMetadata{Fields: []SchemaField{
			{
				FieldPath: "user_id",
				Tags: &GlobalTags{Tags: []TagAssociation{
					{Tag: URNRef{URN: "urn:li:tag:internal"}},
				}},
			},
		}},
	}

	changes := DiffEntities(&source, &target)
	assert.Assert(t, is.Len(changes, 3))

	assert.Check(t, is.Equal(FieldTagsFacet, changes[0].Facet))
	assert.Check(t, is.Equal(util.AddOperation, changes[0].Operation))
	assert.Check(t, is.Equal("urn:li:tag:pii", changes[0].Value))
	assert.Check(t, is.Equal("user_id", changes[0].FieldPath))

	assert.Check(t, is.Equal(util.RemoveOperation, changes[1].Operation))
	assert.Check(t, is.Equal("urn:li:tag:internal", changes[1].Value))

	assert.Check(t, is.Equal(FieldGlossaryTermsFacet, changes[2].Facet))
	assert.Check(t, is.Equal("urn:li:glossaryTerm:gdpr", changes[2].Value))
}
