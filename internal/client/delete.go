/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package client

import (
	"context"
)

const deleteEntityMutation = `mutation deleteEntity($urn: String!) {
  deleteEntity(urn: $urn)
}`

// DeleteEntity soft deletes any catalog entity by URN. Tags, domains
// and glossary terms all go through this mutation.
func (a *AuthAPIClient) DeleteEntity(ctx context.Context, urn string) error {
	return a.GraphQL(ctx, "Entity, Operation: Delete", deleteEntityMutation,
		map[string]interface{}{"urn": urn}, nil)
}
