/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package client

import (
	"context"
	"net/http"
)

// ServerConfig is the subset of the DataHub /config document the CLI
// cares about
type ServerConfig struct {
	Versions map[string]struct {
		Version string `json:"version"`
	} `json:"versions"`
	ManagedIngestion struct {
		Enabled bool `json:"enabled"`
	} `json:"managedIngestion"`
}

// Version extracts the server version, if the host reports one
func (c *ServerConfig) Version() string {
	for _, v := range c.Versions {
		if v.Version != "" {
			return v.Version
		}
	}
	return "unknown"
}

// GetServerConfig fetches the /config document of the host, which also
// serves as the authentication check
func (a *AuthAPIClient) GetServerConfig(ctx context.Context) (*ServerConfig, error) {
	config := ServerConfig{}
	err := a.RestAPICallJSON(ctx, RestAPIParameters{
		method:          http.MethodGet,
		urlRoute:        "config",
		operationString: "Server Config, Operation: Read",
	}, &config)
	if err != nil {
		return nil, err
	}
	return &config, nil
}
