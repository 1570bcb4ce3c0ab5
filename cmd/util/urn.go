/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package util

import (
	"fmt"
	"regexp"
	"strings"
)

// URNPrefix is the leading namespace of every catalog identifier
const URNPrefix = "urn:li:"

var urnPattern = regexp.MustCompile(`^urn:li:[a-zA-Z][a-zA-Z0-9]*:.+$`)

// IsValidURN reports whether urn matches urn:li:<type>:<id>
func IsValidURN(urn string) bool {
	return urnPattern.MatchString(urn)
}

// URNEntityType extracts the entity type segment of a URN
func URNEntityType(urn string) string {
	if !IsValidURN(urn) {
		return ""
	}
	rest := strings.TrimPrefix(urn, URNPrefix)
	return rest[:strings.Index(rest, ":")]
}

// URNID extracts the id segment of a URN
func URNID(urn string) string {
	if !IsValidURN(urn) {
		return ""
	}
	rest := strings.TrimPrefix(urn, URNPrefix)
	return rest[strings.Index(rest, ":")+1:]
}

// TagURN builds a tag URN from a tag name
func TagURN(name string) string {
	return fmt.Sprintf("%s%s:%s", URNPrefix, TagEntityType, name)
}

// DomainURN builds a domain URN from a domain id
func DomainURN(id string) string {
	return fmt.Sprintf("%s%s:%s", URNPrefix, DomainEntityType, id)
}

// GlossaryTermURN builds a glossary term URN from a term id
func GlossaryTermURN(id string) string {
	return fmt.Sprintf("%s%s:%s", URNPrefix, GlossaryTermEntityType, id)
}

// SecretURN builds a secret URN from a secret name
func SecretURN(name string) string {
	return fmt.Sprintf("%s%s:%s", URNPrefix, SecretEntityType, name)
}

// IngestionSourceURN builds an ingestion source URN from a source id
func IngestionSourceURN(id string) string {
	return fmt.Sprintf("%s%s:%s", URNPrefix, IngestionSourceEntityType, id)
}

var datasetURNPattern = regexp.MustCompile(
	`^urn:li:dataset:\(urn:li:dataPlatform:([^,]+),(.+),([^,)]+)\)$`)

// ParseDatasetURN splits a dataset URN into platform, name and
// environment. ok is false when the URN is not a dataset URN.
func ParseDatasetURN(urn string) (platform, name, env string, ok bool) {
	groups := datasetURNPattern.FindStringSubmatch(urn)
	if groups == nil {
		return "", "", "", false
	}
	return groups[1], groups[2], groups[3], true
}
