/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package migrate

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// MutationRule rewrites environment specific strings in exported
// entities before comparison, e.g. platform instance names or URN
// namespaces of the source environment.
type MutationRule struct {
	Match   string `json:"match"`
	Replace string `json:"replace"`
	// Scope restricts the rule to one field kind ("urn", "platform",
	// "name"). Empty applies everywhere.
	Scope string `json:"scope,omitempty"`
}

// Mutations is the ordered rule set for one target environment
type Mutations struct {
	Rules []MutationRule `json:"rules"`
}

// LoadMutations reads the rule file for the target environment. A
// missing file is not an error: the run proceeds with zero mutations
// and a warning is logged.
func LoadMutations(path string) *Mutations {
	if path == "" {
		logrus.Warn("No mutations file supplied, proceeding without mutations\n")
		return &Mutations{}
	}
	body, err := os.ReadFile(path)
	if err != nil {
		logrus.Warnf("Could not read mutations file %s, "+
			"proceeding without mutations: %s\n", path, err.Error())
		return &Mutations{}
	}

	// rule files are either a bare list or {"rules": [...]}
	var rules []MutationRule
	if err := json.Unmarshal(body, &rules); err == nil {
		return &Mutations{Rules: rules}
	}
	mutations := Mutations{}
	if err := json.Unmarshal(body, &mutations); err != nil {
		logrus.Warnf("Could not parse mutations file %s, "+
			"proceeding without mutations: %s\n", path, err.Error())
		return &Mutations{}
	}
	return &mutations
}

// ApplyToEntity rewrites every eligible string field of the entity in
// rule file order, first matching rule wins per field. Returns the
// number of fields rewritten.
func (m *Mutations) ApplyToEntity(entity *Entity) int {
	if len(m.Rules) == 0 {
		return 0
	}
	mutated := 0

	entity.URN = m.applyCounted("urn", entity.URN, &mutated)
	entity.Platform = m.applyCounted("platform", entity.Platform, &mutated)
	entity.Name = m.applyCounted("name", entity.Name, &mutated)

	if entity.Tags != nil {
		for i := range entity.Tags.Tags {
			entity.Tags.Tags[i].Tag.URN =
				m.applyCounted("urn", entity.Tags.Tags[i].Tag.URN, &mutated)
		}
	}
	if entity.GlossaryTerms != nil {
		for i := range entity.GlossaryTerms.Terms {
			entity.GlossaryTerms.Terms[i].Term.URN =
				m.applyCounted("urn", entity.GlossaryTerms.Terms[i].Term.URN, &mutated)
		}
	}
	if entity.Domain != nil {
		entity.Domain.URN = m.applyCounted("urn", entity.Domain.URN, &mutated)
	}
	if entity.StructuredProperties != nil {
		for i := range entity.StructuredProperties.Properties {
			property := &entity.StructuredProperties.Properties[i]
			property.Property.URN = m.applyCounted("urn", property.Property.URN, &mutated)
		}
	}
	if entity.SchemaMetadata != nil {
		for i := range entity.SchemaMetadata.Fields {
			field := &entity.SchemaMetadata.Fields[i]
			if field.Tags != nil {
				for j := range field.Tags.Tags {
					field.Tags.Tags[j].Tag.URN =
						m.applyCounted("urn", field.Tags.Tags[j].Tag.URN, &mutated)
				}
			}
			if field.GlossaryTerms != nil {
				for j := range field.GlossaryTerms.Terms {
					field.GlossaryTerms.Terms[j].Term.URN =
						m.applyCounted("urn", field.GlossaryTerms.Terms[j].Term.URN, &mutated)
				}
			}
		}
	}
	return mutated
}

func (m *Mutations) applyCounted(scope, value string, mutated *int) string {
	out, changed := m.apply(scope, value)
	if changed {
		*mutated++
	}
	return out
}

// apply runs the rules against one field value, first match wins
func (m *Mutations) apply(scope, value string) (string, bool) {
	if value == "" {
		return value, false
	}
	for _, rule := range m.Rules {
		if rule.Scope != "" && rule.Scope != scope {
			continue
		}
		if strings.Contains(value, rule.Match) {
			return strings.ReplaceAll(value, rule.Match, rule.Replace), true
		}
	}
	return value, false
}
