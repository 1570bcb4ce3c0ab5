/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package client

import (
	"context"
)

// Domain is a catalog domain entity
type Domain struct {
	URN         string `json:"urn"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ParentURN   string `json:"parentUrn,omitempty"`
}

const listDomainsQuery = `query listDomains($start: Int!, $count: Int!) {
  listDomains(input: {start: $start, count: $count}) {
    total
    domains {
      urn
      properties { name description }
      parentDomains { domains { urn } }
    }
  }
}`

const getDomainQuery = `query getDomain($urn: String!) {
  domain(urn: $urn) {
    urn
    properties { name description }
    parentDomains { domains { urn } }
  }
}`

const createDomainMutation = `mutation createDomain($input: CreateDomainInput!) {
  createDomain(input: $input)
}`

type domainNode struct {
	URN        string `json:"urn"`
	Properties *struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	} `json:"properties"`
	ParentDomains *struct {
		Domains []struct {
			URN string `json:"urn"`
		} `json:"domains"`
	} `json:"parentDomains"`
}

func (n *domainNode) toDomain() Domain {
	domain := Domain{URN: n.URN}
	if n.Properties != nil {
		domain.Name = n.Properties.Name
		domain.Description = n.Properties.Description
	}
	if n.ParentDomains != nil && len(n.ParentDomains.Domains) > 0 {
		domain.ParentURN = n.ParentDomains.Domains[0].URN
	}
	return domain
}

// ListDomains pages through every domain of the environment
func (a *AuthAPIClient) ListDomains(ctx context.Context) ([]Domain, error) {
	domains := make([]Domain, 0)
	start := 0
	const pageSize = 100
	for {
		envelope := struct {
			ListDomains struct {
				Total   int          `json:"total"`
				Domains []domainNode `json:"domains"`
			} `json:"listDomains"`
		}{}
		err := a.GraphQL(ctx, "Domain, Operation: List", listDomainsQuery,
			map[string]interface{}{"start": start, "count": pageSize}, &envelope)
		if err != nil {
			return nil, err
		}
		for i := range envelope.ListDomains.Domains {
			domains = append(domains, envelope.ListDomains.Domains[i].toDomain())
		}
		start += len(envelope.ListDomains.Domains)
		if start >= envelope.ListDomains.Total || len(envelope.ListDomains.Domains) == 0 {
			break
		}
	}
	return domains, nil
}

// GetDomain fetches one domain by URN
func (a *AuthAPIClient) GetDomain(ctx context.Context, urn string) (*Domain, error) {
	envelope := struct {
		Domain *domainNode `json:"domain"`
	}{}
	err := a.GraphQL(ctx, "Domain, Operation: Describe", getDomainQuery,
		map[string]interface{}{"urn": urn}, &envelope)
	if err != nil {
		return nil, err
	}
	if envelope.Domain == nil {
		return nil, nil
	}
	domain := envelope.Domain.toDomain()
	return &domain, nil
}

// CreateDomain creates a domain and returns its URN
func (a *AuthAPIClient) CreateDomain(
	ctx context.Context,
	id, name, description, parentURN string,
) (string, error) {
	input := map[string]interface{}{
		"id":          id,
		"name":        name,
		"description": description,
	}
	if parentURN != "" {
		input["parentDomain"] = parentURN
	}
	envelope := struct {
		CreateDomain string `json:"createDomain"`
	}{}
	err := a.GraphQL(ctx, "Domain, Operation: Create", createDomainMutation,
		map[string]interface{}{"input": input}, &envelope)
	if err != nil {
		return "", err
	}
	return envelope.CreateDomain, nil
}
