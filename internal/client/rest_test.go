/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package client

import (
	"context"
	"net/http"
	"testing"

	"gotest.tools/v3/assert"
)

func TestRestAPIErrorBodySurfaced(t *testing.T) {
	authAPI := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message": "Unable to authenticate inbound request",
			"status": 401}`))
	})

	_, err := authAPI.GetServerConfig(context.Background())
	assert.ErrorContains(t, err, "401")
	assert.ErrorContains(t, err, "Unable to authenticate inbound request")
}

func TestRestAPIErrorPlainBody(t *testing.T) {
	authAPI := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	})

	_, err := authAPI.GetServerConfig(context.Background())
	assert.ErrorContains(t, err, "502")
}
