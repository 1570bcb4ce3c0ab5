/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package util

import (
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestIsValidURN(t *testing.T) {
	testCases := []struct {
		urn   string
		valid bool
	}{
		{urn: "urn:li:tag:pii", valid: true},
		{urn: "urn:li:dataset:(urn:li:dataPlatform:kafka,events,PROD)", valid: true},
		{urn: "urn:li:domain:finance", valid: true},
		{urn: "urn:li:tag:", valid: false},
		{urn: "urn:lx:tag:pii", valid: false},
		{urn: "tag:pii", valid: false},
		{urn: "", valid: false},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.urn, func(t *testing.T) {
			assert.Check(t, is.Equal(testCase.valid, IsValidURN(testCase.urn)))
		})
	}
}

func TestURNSegments(t *testing.T) {
	assert.Check(t, is.Equal("tag", URNEntityType("urn:li:tag:pii")))
	assert.Check(t, is.Equal("pii", URNID("urn:li:tag:pii")))
	assert.Check(t, is.Equal("", URNEntityType("not-a-urn")))
	assert.Check(t, is.Equal(
		"(urn:li:dataPlatform:kafka,events,PROD)",
		URNID("urn:li:dataset:(urn:li:dataPlatform:kafka,events,PROD)")))
}

func TestBuildURNs(t *testing.T) {
	assert.Check(t, is.Equal("urn:li:tag:pii", TagURN("pii")))
	assert.Check(t, is.Equal("urn:li:domain:finance", DomainURN("finance")))
	assert.Check(t, is.Equal("urn:li:glossaryTerm:gdpr.email", GlossaryTermURN("gdpr.email")))
	assert.Check(t, is.Equal("urn:li:dataHubSecret:SNOWFLAKE_PASSWORD", SecretURN("SNOWFLAKE_PASSWORD")))
	assert.Check(t, is.Equal(
		"urn:li:dataHubIngestionSource:snowflake-prod", IngestionSourceURN("snowflake-prod")))
}

func TestParseDatasetURN(t *testing.T) {
	platform, name, env, ok := ParseDatasetURN(
		"urn:li:dataset:(urn:li:dataPlatform:kafka,clickstream.events,PROD)")
	assert.Check(t, ok)
	assert.Check(t, is.Equal("kafka", platform))
	assert.Check(t, is.Equal("clickstream.events", name))
	assert.Check(t, is.Equal("PROD", env))

	_, _, _, ok = ParseDatasetURN("urn:li:tag:pii")
	assert.Check(t, !ok)
}
