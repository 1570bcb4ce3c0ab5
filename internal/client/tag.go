/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package client

import (
	"context"
)

// Tag is a catalog tag entity
type Tag struct {
	URN         string `json:"urn"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ColorHex    string `json:"colorHex,omitempty"`
}

const listTagsQuery = `query listTags($start: Int!, $count: Int!) {
  search(input: {type: TAG, query: "*", start: $start, count: $count}) {
    total
    searchResults {
      entity {
        urn
        ... on Tag { properties { name description colorHex } }
      }
    }
  }
}`

const getTagQuery = `query getTag($urn: String!) {
  tag(urn: $urn) {
    urn
    properties { name description colorHex }
  }
}`

const createTagMutation = `mutation createTag($input: CreateTagInput!) {
  createTag(input: $input)
}`

type tagProperties struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ColorHex    string `json:"colorHex"`
}

type tagNode struct {
	URN        string         `json:"urn"`
	Properties *tagProperties `json:"properties"`
}

func (n *tagNode) toTag() Tag {
	tag := Tag{URN: n.URN}
	if n.Properties != nil {
		tag.Name = n.Properties.Name
		tag.Description = n.Properties.Description
		tag.ColorHex = n.Properties.ColorHex
	}
	return tag
}

// ListTags pages through every tag of the environment
func (a *AuthAPIClient) ListTags(ctx context.Context) ([]Tag, error) {
	tags := make([]Tag, 0)
	start := 0
	const pageSize = 100
	for {
		envelope := struct {
			Search struct {
				Total         int `json:"total"`
				SearchResults []struct {
					Entity tagNode `json:"entity"`
				} `json:"searchResults"`
			} `json:"search"`
		}{}
		err := a.GraphQL(ctx, "Tag, Operation: List", listTagsQuery,
			map[string]interface{}{"start": start, "count": pageSize}, &envelope)
		if err != nil {
			return nil, err
		}
		for _, result := range envelope.Search.SearchResults {
			tags = append(tags, result.Entity.toTag())
		}
		start += len(envelope.Search.SearchResults)
		if start >= envelope.Search.Total || len(envelope.Search.SearchResults) == 0 {
			break
		}
	}
	return tags, nil
}

// GetTag fetches one tag by URN
func (a *AuthAPIClient) GetTag(ctx context.Context, urn string) (*Tag, error) {
	envelope := struct {
		Tag *tagNode `json:"tag"`
	}{}
	err := a.GraphQL(ctx, "Tag, Operation: Describe", getTagQuery,
		map[string]interface{}{"urn": urn}, &envelope)
	if err != nil {
		return nil, err
	}
	if envelope.Tag == nil {
		return nil, nil
	}
	tag := envelope.Tag.toTag()
	return &tag, nil
}

// CreateTag creates a tag and returns its URN
func (a *AuthAPIClient) CreateTag(
	ctx context.Context,
	name, description string,
) (string, error) {
	envelope := struct {
		CreateTag string `json:"createTag"`
	}{}
	err := a.GraphQL(ctx, "Tag, Operation: Create", createTagMutation,
		map[string]interface{}{"input": map[string]interface{}{
			"id":          name,
			"name":        name,
			"description": description,
		}}, &envelope)
	if err != nil {
		return "", err
	}
	return envelope.CreateTag, nil
}
