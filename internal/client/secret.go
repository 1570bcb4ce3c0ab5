/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package client

import (
	"context"
)

// Secret is a named secret stored by the catalog platform for use in
// ingestion recipes. Values are write only: the API never returns them.
type Secret struct {
	URN         string `json:"urn"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

const listSecretsQuery = `query listSecrets($start: Int!, $count: Int!) {
  listSecrets(input: {start: $start, count: $count}) {
    total
    secrets { urn name description }
  }
}`

const createSecretMutation = `mutation createSecret($input: CreateSecretInput!) {
  createSecret(input: $input)
}`

const deleteSecretMutation = `mutation deleteSecret($urn: String!) {
  deleteSecret(urn: $urn)
}`

// ListSecrets pages through every secret name of the environment
func (a *AuthAPIClient) ListSecrets(ctx context.Context) ([]Secret, error) {
	secrets := make([]Secret, 0)
	start := 0
	const pageSize = 100
	for {
		envelope := struct {
			ListSecrets struct {
				Total   int      `json:"total"`
				Secrets []Secret `json:"secrets"`
			} `json:"listSecrets"`
		}{}
		err := a.GraphQL(ctx, "Secret, Operation: List", listSecretsQuery,
			map[string]interface{}{"start": start, "count": pageSize}, &envelope)
		if err != nil {
			return nil, err
		}
		secrets = append(secrets, envelope.ListSecrets.Secrets...)
		start += len(envelope.ListSecrets.Secrets)
		if start >= envelope.ListSecrets.Total || len(envelope.ListSecrets.Secrets) == 0 {
			break
		}
	}
	return secrets, nil
}

// CreateSecret stores a secret and returns its URN
func (a *AuthAPIClient) CreateSecret(
	ctx context.Context,
	name, value, description string,
) (string, error) {
	envelope := struct {
		CreateSecret string `json:"createSecret"`
	}{}
	err := a.GraphQL(ctx, "Secret, Operation: Create", createSecretMutation,
		map[string]interface{}{"input": map[string]interface{}{
			"name":        name,
			"value":       value,
			"description": description,
		}}, &envelope)
	if err != nil {
		return "", err
	}
	return envelope.CreateSecret, nil
}

// DeleteSecret removes a secret by URN
func (a *AuthAPIClient) DeleteSecret(ctx context.Context, urn string) error {
	return a.GraphQL(ctx, "Secret, Operation: Delete", deleteSecretMutation,
		map[string]interface{}{"urn": urn}, nil)
}
