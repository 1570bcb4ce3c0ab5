/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/dataops-cloud/dhub-cli/internal/migrate"
)

var migrateEntityFixture = migrate.Entity{
	URN:  "urn:li:dataset:(urn:li:dataPlatform:kafka,events,PROD)",
	Type: "dataset",
}

func testClient(t *testing.T, handler http.HandlerFunc) *AuthAPIClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	base, err := url.Parse(server.URL)
	assert.NilError(t, err)
	return &AuthAPIClient{
		HTTPClient: server.Client(),
		BaseURL:    base,
		Token:      "test-token",
	}
}

func TestGraphQLDecodesData(t *testing.T) {
	var gotPath, gotAuth string
	authAPI := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"data": {"tag": {"urn": "urn:li:tag:pii",
			"properties": {"name": "pii", "description": "sensitive"}}}}`))
	})

	tag, err := authAPI.GetTag(context.Background(), "urn:li:tag:pii")
	assert.NilError(t, err)
	assert.Check(t, is.Equal(gotPath, "/api/graphql"))
	assert.Check(t, is.Equal(gotAuth, "Bearer test-token"))
	assert.Assert(t, tag != nil)
	assert.Check(t, is.Equal(tag.URN, "urn:li:tag:pii"))
	assert.Check(t, is.Equal(tag.Name, "pii"))
	assert.Check(t, is.Equal(tag.Description, "sensitive"))
}

func TestGraphQLSurfacesErrors(t *testing.T) {
	authAPI := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"errors": [
			{"message": "Unauthorized"},
			{"message": "entity not found"}]}`))
	})

	_, err := authAPI.GetTag(context.Background(), "urn:li:tag:pii")
	assert.ErrorContains(t, err, "Unauthorized; entity not found")
}

func TestGraphQLNon2xxStatus(t *testing.T) {
	authAPI := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := authAPI.GetTag(context.Background(), "urn:li:tag:pii")
	assert.ErrorContains(t, err, "500")
}

func TestLookupDecodesEntity(t *testing.T) {
	authAPI := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {"entity": {
			"urn": "urn:li:dataset:(urn:li:dataPlatform:kafka,events,PROD)",
			"type": "DATASET",
			"name": "events",
			"platform": {"name": "kafka"},
			"tags": {"tags": [{"tag": {"urn": "urn:li:tag:pii"}}]},
			"domain": {"domain": {"urn": "urn:li:domain:marketing"}}}}}`))
	})

	target, ok, err := authAPI.Lookup(context.Background(), &migrateEntityFixture)
	assert.NilError(t, err)
	assert.Assert(t, ok)
	assert.Check(t, is.Equal(target.Platform, "kafka"))
	assert.Check(t, is.Equal(target.Name, "events"))
	assert.Check(t, is.DeepEqual(target.TagURNs(), []string{"urn:li:tag:pii"}))
	assert.Check(t, is.Equal(target.DomainURN(), "urn:li:domain:marketing"))
}

func TestLookupUnmatched(t *testing.T) {
	authAPI := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {"entity": null}}`))
	})

	target, ok, err := authAPI.Lookup(context.Background(), &migrateEntityFixture)
	assert.NilError(t, err)
	assert.Check(t, !ok)
	assert.Check(t, is.Nil(target))
}
