/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package client

import (
	"context"
	"strings"
)

// Policy is an access policy of the catalog platform
type Policy struct {
	URN         string   `json:"urn"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	State       string   `json:"state"`
	Description string   `json:"description,omitempty"`
	Privileges  []string `json:"privileges,omitempty"`
	Users       []string `json:"users,omitempty"`
	Groups      []string `json:"groups,omitempty"`
}

const listPoliciesQuery = `query listPolicies($start: Int!, $count: Int!) {
  listPolicies(input: {start: $start, count: $count}) {
    total
    policies {
      urn
      name
      type
      state
      description
      privileges
      actors { users groups allUsers allGroups }
    }
  }
}`

const createPolicyMutation = `mutation createPolicy($input: PolicyUpdateInput!) {
  createPolicy(input: $input)
}`

const deletePolicyMutation = `mutation deletePolicy($urn: String!) {
  deletePolicy(urn: $urn)
}`

type policyNode struct {
	URN         string   `json:"urn"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	State       string   `json:"state"`
	Description string   `json:"description"`
	Privileges  []string `json:"privileges"`
	Actors      *struct {
		Users  []string `json:"users"`
		Groups []string `json:"groups"`
	} `json:"actors"`
}

func (n *policyNode) toPolicy() Policy {
	policy := Policy{
		URN:         n.URN,
		Name:        n.Name,
		Type:        n.Type,
		State:       n.State,
		Description: n.Description,
		Privileges:  n.Privileges,
	}
	if n.Actors != nil {
		policy.Users = n.Actors.Users
		policy.Groups = n.Actors.Groups
	}
	return policy
}

// ListPolicies pages through every policy of the environment
func (a *AuthAPIClient) ListPolicies(ctx context.Context) ([]Policy, error) {
	policies := make([]Policy, 0)
	start := 0
	const pageSize = 100
	for {
		envelope := struct {
			ListPolicies struct {
				Total    int          `json:"total"`
				Policies []policyNode `json:"policies"`
			} `json:"listPolicies"`
		}{}
		err := a.GraphQL(ctx, "Policy, Operation: List", listPoliciesQuery,
			map[string]interface{}{"start": start, "count": pageSize}, &envelope)
		if err != nil {
			return nil, err
		}
		for i := range envelope.ListPolicies.Policies {
			policies = append(policies, envelope.ListPolicies.Policies[i].toPolicy())
		}
		start += len(envelope.ListPolicies.Policies)
		if start >= envelope.ListPolicies.Total || len(envelope.ListPolicies.Policies) == 0 {
			break
		}
	}
	return policies, nil
}

// GetPolicy fetches a single policy by URN or name. The policy API has
// no single-policy query, so the listing is filtered client side.
func (a *AuthAPIClient) GetPolicy(ctx context.Context, urnOrName string) (*Policy, error) {
	policies, err := a.ListPolicies(ctx)
	if err != nil {
		return nil, err
	}
	for i := range policies {
		if policies[i].URN == urnOrName ||
			strings.EqualFold(policies[i].Name, urnOrName) {
			return &policies[i], nil
		}
	}
	return nil, nil
}

// CreatePolicy creates a policy and returns its URN
func (a *AuthAPIClient) CreatePolicy(
	ctx context.Context,
	policy Policy,
) (string, error) {
	input := map[string]interface{}{
		"name":        policy.Name,
		"type":        policy.Type,
		"state":       policy.State,
		"description": policy.Description,
		"privileges":  policy.Privileges,
		"actors": map[string]interface{}{
			"users":         policy.Users,
			"groups":        policy.Groups,
			"allUsers":      len(policy.Users) == 0 && len(policy.Groups) == 0,
			"allGroups":     false,
			"resourceOwners": false,
		},
	}
	envelope := struct {
		CreatePolicy string `json:"createPolicy"`
	}{}
	err := a.GraphQL(ctx, "Policy, Operation: Create", createPolicyMutation,
		map[string]interface{}{"input": input}, &envelope)
	if err != nil {
		return "", err
	}
	return envelope.CreatePolicy, nil
}

// DeletePolicy removes a policy by URN
func (a *AuthAPIClient) DeletePolicy(ctx context.Context, urn string) error {
	return a.GraphQL(ctx, "Policy, Operation: Delete", deletePolicyMutation,
		map[string]interface{}{"urn": urn}, nil)
}
