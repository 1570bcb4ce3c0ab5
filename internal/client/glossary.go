/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package client

import (
	"context"
)

// GlossaryTerm is a business glossary term entity
type GlossaryTerm struct {
	URN        string `json:"urn"`
	Name       string `json:"name"`
	Definition string `json:"definition,omitempty"`
	ParentNode string `json:"parentNode,omitempty"`
}

const listGlossaryTermsQuery = `query listGlossaryTerms($start: Int!, $count: Int!) {
  search(input: {type: GLOSSARY_TERM, query: "*", start: $start, count: $count}) {
    total
    searchResults {
      entity {
        urn
        ... on GlossaryTerm {
          properties { name definition }
          parentNodes { nodes { urn } }
        }
      }
    }
  }
}`

const getGlossaryTermQuery = `query getGlossaryTerm($urn: String!) {
  glossaryTerm(urn: $urn) {
    urn
    properties { name definition }
    parentNodes { nodes { urn } }
  }
}`

const createGlossaryTermMutation = `mutation createGlossaryTerm($input: CreateGlossaryEntityInput!) {
  createGlossaryTerm(input: $input)
}`

type glossaryTermNode struct {
	URN        string `json:"urn"`
	Properties *struct {
		Name       string `json:"name"`
		Definition string `json:"definition"`
	} `json:"properties"`
	ParentNodes *struct {
		Nodes []struct {
			URN string `json:"urn"`
		} `json:"nodes"`
	} `json:"parentNodes"`
}

func (n *glossaryTermNode) toTerm() GlossaryTerm {
	term := GlossaryTerm{URN: n.URN}
	if n.Properties != nil {
		term.Name = n.Properties.Name
		term.Definition = n.Properties.Definition
	}
	if n.ParentNodes != nil && len(n.ParentNodes.Nodes) > 0 {
		term.ParentNode = n.ParentNodes.Nodes[0].URN
	}
	return term
}

// ListGlossaryTerms pages through every glossary term of the environment
func (a *AuthAPIClient) ListGlossaryTerms(ctx context.Context) ([]GlossaryTerm, error) {
	terms := make([]GlossaryTerm, 0)
	start := 0
	const pageSize = 100
	for {
		envelope := struct {
			Search struct {
				Total         int `json:"total"`
				SearchResults []struct {
					Entity glossaryTermNode `json:"entity"`
				} `json:"searchResults"`
			} `json:"search"`
		}{}
		err := a.GraphQL(ctx, "Glossary Term, Operation: List", listGlossaryTermsQuery,
			map[string]interface{}{"start": start, "count": pageSize}, &envelope)
		if err != nil {
			return nil, err
		}
		for _, result := range envelope.Search.SearchResults {
			terms = append(terms, result.Entity.toTerm())
		}
		start += len(envelope.Search.SearchResults)
		if start >= envelope.Search.Total || len(envelope.Search.SearchResults) == 0 {
			break
		}
	}
	return terms, nil
}

// GetGlossaryTerm fetches one glossary term by URN
func (a *AuthAPIClient) GetGlossaryTerm(
	ctx context.Context,
	urn string,
) (*GlossaryTerm, error) {
	envelope := struct {
		GlossaryTerm *glossaryTermNode `json:"glossaryTerm"`
	}{}
	err := a.GraphQL(ctx, "Glossary Term, Operation: Describe", getGlossaryTermQuery,
		map[string]interface{}{"urn": urn}, &envelope)
	if err != nil {
		return nil, err
	}
	if envelope.GlossaryTerm == nil {
		return nil, nil
	}
	term := envelope.GlossaryTerm.toTerm()
	return &term, nil
}

// CreateGlossaryTerm creates a glossary term and returns its URN
func (a *AuthAPIClient) CreateGlossaryTerm(
	ctx context.Context,
	name, definition, parentNode string,
) (string, error) {
	input := map[string]interface{}{
		"name":        name,
		"description": definition,
	}
	if parentNode != "" {
		input["parentNode"] = parentNode
	}
	envelope := struct {
		CreateGlossaryTerm string `json:"createGlossaryTerm"`
	}{}
	err := a.GraphQL(ctx, "Glossary Term, Operation: Create", createGlossaryTermMutation,
		map[string]interface{}{"input": input}, &envelope)
	if err != nil {
		return "", err
	}
	return envelope.CreateGlossaryTerm, nil
}
