/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package migrate

import (
	"github.com/dataops-cloud/dhub-cli/cmd/util"
)

// Facet names of the comparable metadata blocks
const (
	TagsFacet                 = "tags"
	GlossaryTermsFacet        = "glossaryTerms"
	DomainFacet               = "domain"
	StructuredPropertiesFacet = "structuredProperties"
	FieldTagsFacet            = "fieldTags"
	FieldGlossaryTermsFacet   = "fieldGlossaryTerms"
)

// Change is one detected difference between a matched entity pair.
// The source side always wins: additions are values the target lacks,
// removals are values the target carries but the source does not.
type Change struct {
	Facet     string        `json:"facet"`
	Operation string        `json:"operation"`
	Value     string        `json:"value"`
	FieldPath string        `json:"fieldPath,omitempty"`
	Values    []interface{} `json:"values,omitempty"`
}

// DiffEntities compares the migratable facets of a matched pair and
// returns the changes needed to make the target look like the source.
// An entity carrying no metadata blocks yields no changes.
func DiffEntities(source, target *Entity) []Change {
	changes := make([]Change, 0)

	changes = append(changes, diffURNSet(
		TagsFacet, "", source.TagURNs(), target.TagURNs())...)
	changes = append(changes, diffURNSet(
		GlossaryTermsFacet, "", source.TermURNs(), target.TermURNs())...)
	changes = append(changes, diffDomain(source, target)...)
	changes = append(changes, diffStructuredProperties(source, target)...)
	changes = append(changes, diffSchemaFields(source, target)...)

	return changes
}

// diffURNSet compares two URN collections in stable order: source
// order for additions, target order for removals
func diffURNSet(facet, fieldPath string, source, target []string) []Change {
	changes := make([]Change, 0)
	targetSet := make(map[string]bool, len(target))
	for _, urn := range target {
		targetSet[urn] = true
	}
	sourceSet := make(map[string]bool, len(source))
	for _, urn := range source {
		sourceSet[urn] = true
	}

	for _, urn := range source {
		if !targetSet[urn] {
			changes = append(changes, Change{
				Facet:     facet,
				Operation: util.AddOperation,
				Value:     urn,
				FieldPath: fieldPath,
			})
		}
	}
	for _, urn := range target {
		if !sourceSet[urn] {
			changes = append(changes, Change{
				Facet:     facet,
				Operation: util.RemoveOperation,
				Value:     urn,
				FieldPath: fieldPath,
			})
		}
	}
	return changes
}

func diffDomain(source, target *Entity) []Change {
	sourceDomain := source.DomainURN()
	targetDomain := target.DomainURN()
	if sourceDomain == targetDomain {
		return nil
	}
	if sourceDomain == "" {
		return []Change{{
			Facet:     DomainFacet,
			Operation: util.RemoveOperation,
			Value:     targetDomain,
		}}
	}
	return []Change{{
		Facet:     DomainFacet,
		Operation: util.SetOperation,
		Value:     sourceDomain,
	}}
}

func diffStructuredProperties(source, target *Entity) []Change {
	changes := make([]Change, 0)

	targetProperties := make(map[string]*PropertyAssignment)
	if target.StructuredProperties != nil {
		for i := range target.StructuredProperties.Properties {
			property := &target.StructuredProperties.Properties[i]
			targetProperties[property.Property.URN] = property
		}
	}

	sourceSeen := make(map[string]bool)
	if source.StructuredProperties != nil {
		for i := range source.StructuredProperties.Properties {
			property := &source.StructuredProperties.Properties[i]
			sourceSeen[property.Property.URN] = true
			existing, ok := targetProperties[property.Property.URN]
			if ok && existing.ValueKey() == property.ValueKey() {
				continue
			}
			changes = append(changes, Change{
				Facet:     StructuredPropertiesFacet,
				Operation: util.SetOperation,
				Value:     property.Property.URN,
				Values:    property.Values,
			})
		}
	}
	if target.StructuredProperties != nil {
		for i := range target.StructuredProperties.Properties {
			property := &target.StructuredProperties.Properties[i]
			if !sourceSeen[property.Property.URN] {
				changes = append(changes, Change{
					Facet:     StructuredPropertiesFacet,
					Operation: util.RemoveOperation,
					Value:     property.Property.URN,
				})
			}
		}
	}
	return changes
}

// diffSchemaFields compares per-field tags and terms. Fields only
// present on one side contribute their changes as additions or
// removals against an empty counterpart.
func diffSchemaFields(source, target *Entity) []Change {
	changes := make([]Change, 0)

	targetFields := make(map[string]*SchemaField)
	if target.SchemaMetadata != nil {
		for i := range target.SchemaMetadata.Fields {
			field := &target.SchemaMetadata.Fields[i]
			targetFields[field.FieldPath] = field
		}
	}

	if source.SchemaMetadata != nil {
		for i := range source.SchemaMetadata.Fields {
			field := &source.SchemaMetadata.Fields[i]
			counterpart := targetFields[field.FieldPath]
			var targetTags, targetTerms []string
			if counterpart != nil {
				targetTags = counterpart.FieldTagURNs()
				targetTerms = counterpart.FieldTermURNs()
			}
			changes = append(changes, diffURNSet(
				FieldTagsFacet, field.FieldPath,
				field.FieldTagURNs(), targetTags)...)
			changes = append(changes, diffURNSet(
				FieldGlossaryTermsFacet, field.FieldPath,
				field.FieldTermURNs(), targetTerms)...)
		}
	}
	return changes
}
