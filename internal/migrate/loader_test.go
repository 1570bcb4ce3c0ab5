/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package migrate

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	assert.NilError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadEntitiesNormalizesAllShapes(t *testing.T) {
	content := `[{"urn":"urn:li:tag:pii","type":"tag"},{"urn":"urn:li:tag:phi","type":"tag"}]`

	testCases := []struct {
		name string
		body string
	}{
		{name: "bare list", body: content},
		{name: "entities wrapper", body: `{"entities":` + content + `}`},
		{name: "export_data wrapper", body: `{"export_data":` + content + `}`},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			path := writeFixture(t, "export.json", testCase.body)
			entities, skipped, err := LoadEntities(path)
			assert.NilError(t, err)
			assert.Check(t, is.Equal(0, skipped))
			assert.Check(t, is.Len(entities, 2))
			assert.Check(t, is.Equal("urn:li:tag:pii", entities[0].URN))
			assert.Check(t, is.Equal("urn:li:tag:phi", entities[1].URN))
		})
	}
}

func TestLoadEntitiesDropsNullAndNonObjectEntries(t *testing.T) {
	path := writeFixture(t, "export.json",
		`[null, 42, "urn:li:tag:pii", {"urn":"urn:li:tag:pii","type":"tag"}, []]`)

	entities, skipped, err := LoadEntities(path)
	assert.NilError(t, err)
	assert.Check(t, is.Len(entities, 1))
	assert.Check(t, is.Equal(4, skipped))
}

func TestLoadEntitiesInvalidJSON(t *testing.T) {
	path := writeFixture(t, "export.json", `{"entities": [}`)

	_, _, err := LoadEntities(path)
	inputErr := &InputError{}
	assert.Check(t, errors.As(err, &inputErr))
}

func TestLoadEntitiesMissingFile(t *testing.T) {
	_, _, err := LoadEntities(filepath.Join(t.TempDir(), "missing.json"))
	inputErr := &InputError{}
	assert.Check(t, errors.As(err, &inputErr))
}

func TestLoadEntitiesEmptyExport(t *testing.T) {
	testCases := []string{
		`[]`,
		`[null, null]`,
		`{"entities": []}`,
		`{"other_key": []}`,
	}
	for _, body := range testCases {
		body := body
		t.Run(body, func(t *testing.T) {
			path := writeFixture(t, "export.json", body)
			_, _, err := LoadEntities(path)
			inputErr := &InputError{}
			assert.Check(t, errors.As(err, &inputErr))
		})
	}
}

func TestLoadEntitiesDecodesNestedBlocks(t *testing.T) {
	path := writeFixture(t, "export.json", `[{
		"urn": "urn:li:dataset:(urn:li:dataPlatform:kafka,events,PROD)",
		"type": "dataset",
		"tags": {"tags": [{"tag": {"urn": "urn:li:tag:pii"}}, {"urn": "urn:li:tag:phi"}]},
		"glossaryTerms": {"terms": [{"term": "urn:li:glossaryTerm:gdpr"}]},
		"domain": {"urn": "urn:li:domain:finance"},
		"structuredProperties": {"properties": [
			{"structuredProperty": {"urn": "urn:li:structuredProperty:tier"}, "values": ["gold"]}
		]},
		"schemaMetadata": {"fields": [
			{"fieldPath": "user_id", "tags": {"tags": [{"tag": {"urn": "urn:li:tag:pii"}}]}}
		]}
	}]`)

	entities, _, err := LoadEntities(path)
	assert.NilError(t, err)
	assert.Assert(t, is.Len(entities, 1))

	entity := entities[0]
	assert.Check(t, is.DeepEqual([]string{"urn:li:tag:pii", "urn:li:tag:phi"}, entity.TagURNs()))
	assert.Check(t, is.DeepEqual([]string{"urn:li:glossaryTerm:gdpr"}, entity.TermURNs()))
	assert.Check(t, is.Equal("urn:li:domain:finance", entity.DomainURN()))
	assert.Assert(t, entity.StructuredProperties != nil)
	assert.Check(t, is.Equal(`["gold"]`, entity.StructuredProperties.Properties[0].ValueKey()))
	assert.Assert(t, entity.SchemaMetadata != nil)
	assert.Check(t, is.DeepEqual([]string{"urn:li:tag:pii"},
		entity.SchemaMetadata.Fields[0].FieldTagURNs()))
	assert.Check(t, entity.HasMetadata())
}

func TestEntityWithoutMetadataBlocks(t *testing.T) {
	path := writeFixture(t, "export.json",
		`[{"urn":"urn:li:dataset:(urn:li:dataPlatform:kafka,events,PROD)","type":"dataset"}]`)

	entities, _, err := LoadEntities(path)
	assert.NilError(t, err)
	assert.Check(t, !entities[0].HasMetadata())
}
