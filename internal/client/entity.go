/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package client

import (
	"context"

	"github.com/dataops-cloud/dhub-cli/internal/migrate"
)

const getEntityQuery = `query getEntity($urn: String!) {
  entity(urn: $urn) {
    urn
    type
    ... on Dataset {
      name
      platform { name }
      tags { tags { tag { urn } } }
      glossaryTerms { terms { term { urn } } }
      domain { domain { urn } }
      schemaMetadata {
        fields {
          fieldPath
          tags { tags { tag { urn } } }
          glossaryTerms { terms { term { urn } } }
        }
      }
      structuredProperties {
        properties { structuredProperty { urn } values }
      }
    }
  }
}`

type gqlEntityEnvelope struct {
	Entity *gqlEntity `json:"entity"`
}

type gqlEntity struct {
	URN      string `json:"urn"`
	Type     string `json:"type"`
	Name     string `json:"name"`
	Platform *struct {
		Name string `json:"name"`
	} `json:"platform"`
	Tags          *migrate.GlobalTags       `json:"tags"`
	GlossaryTerms *migrate.TermAssociations `json:"glossaryTerms"`
	Domain        *struct {
		Domain *migrate.DomainAssociation `json:"domain"`
	} `json:"domain"`
	SchemaMetadata       *migrate.SchemaMetadata       `json:"schemaMetadata"`
	StructuredProperties *migrate.StructuredProperties `json:"structuredProperties"`
}

func (g *gqlEntity) toEntity() *migrate.Entity {
	entity := migrate.Entity{
		URN:                  g.URN,
		Type:                 g.Type,
		Name:                 g.Name,
		Tags:                 g.Tags,
		GlossaryTerms:        g.GlossaryTerms,
		SchemaMetadata:       g.SchemaMetadata,
		StructuredProperties: g.StructuredProperties,
	}
	if g.Platform != nil {
		entity.Platform = g.Platform.Name
	}
	if g.Domain != nil {
		entity.Domain = g.Domain.Domain
	}
	return &entity
}

// Lookup fetches the target environment counterpart of a source entity
// by URN, making AuthAPIClient a live target source for the migration
// pipeline. Fallback matching on (platform, name) is a target-file
// concern: the live catalog is keyed by URN.
func (a *AuthAPIClient) Lookup(
	ctx context.Context,
	source *migrate.Entity,
) (*migrate.Entity, bool, error) {
	envelope := gqlEntityEnvelope{}
	err := a.GraphQL(ctx, "Entity, Operation: Read", getEntityQuery,
		map[string]interface{}{"urn": source.URN}, &envelope)
	if err != nil {
		return nil, false, err
	}
	if envelope.Entity == nil || envelope.Entity.URN == "" {
		return nil, false, nil
	}
	return envelope.Entity.toEntity(), true, nil
}
