/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package client

import (
	"context"
	"fmt"

	"github.com/dataops-cloud/dhub-cli/cmd/util"
	"github.com/dataops-cloud/dhub-cli/internal/migrate"
)

const (
	addTagMutation = `mutation addTag($input: TagAssociationInput!) {
  addTag(input: $input)
}`
	removeTagMutation = `mutation removeTag($input: TagAssociationInput!) {
  removeTag(input: $input)
}`
	addTermMutation = `mutation addTerm($input: TermAssociationInput!) {
  addTerm(input: $input)
}`
	removeTermMutation = `mutation removeTerm($input: TermAssociationInput!) {
  removeTerm(input: $input)
}`
	setDomainMutation = `mutation setDomain($entityUrn: String!, $domainUrn: String!) {
  setDomain(entityUrn: $entityUrn, domainUrn: $domainUrn)
}`
	unsetDomainMutation = `mutation unsetDomain($entityUrn: String!) {
  unsetDomain(entityUrn: $entityUrn)
}`
	upsertStructuredPropertiesMutation = `mutation upsertStructuredProperties($input: UpsertStructuredPropertiesInput!) {
  upsertStructuredProperties(input: $input) { properties { structuredProperty { urn } } }
}`
	removeStructuredPropertiesMutation = `mutation removeStructuredProperties($input: RemoveStructuredPropertiesInput!) {
  removeStructuredProperties(input: $input) { properties { structuredProperty { urn } } }
}`
)

// Submit delivers one change proposal to the target environment,
// making AuthAPIClient the live submitter of the migration pipeline.
// A rejection is wrapped as a SubmissionError and does not roll back
// earlier submissions.
func (a *AuthAPIClient) Submit(
	ctx context.Context,
	proposal migrate.ChangeProposal,
) error {
	var err error
	switch proposal.AspectName {
	case util.GlobalTagsAspect, util.EditableSchemaMetadataAspect:
		err = a.submitAssociation(ctx, proposal)
	case util.GlossaryTermsAspect:
		err = a.submitAssociation(ctx, proposal)
	case util.DomainsAspect:
		err = a.submitDomain(ctx, proposal)
	case util.StructuredPropertiesAspect:
		err = a.submitStructuredProperty(ctx, proposal)
	default:
		err = fmt.Errorf("unsupported aspect %s", proposal.AspectName)
	}
	if err != nil {
		return &migrate.SubmissionError{
			URN:    proposal.EntityURN,
			Aspect: proposal.AspectName,
			Err:    err,
		}
	}
	return nil
}

// submitAssociation covers tag and term attach/detach, both at the
// entity level and per schema field
func (a *AuthAPIClient) submitAssociation(
	ctx context.Context,
	proposal migrate.ChangeProposal,
) error {
	input := map[string]interface{}{
		"resourceUrn": proposal.EntityURN,
	}
	if proposal.FieldPath != "" {
		input["subResourceType"] = "DATASET_FIELD"
		input["subResource"] = proposal.FieldPath
	}

	isTag := util.URNEntityType(proposal.Value) == util.TagEntityType
	if isTag {
		input["tagUrn"] = proposal.Value
	} else {
		input["termUrn"] = proposal.Value
	}

	mutation := ""
	operation := ""
	switch {
	case isTag && proposal.Operation == util.AddOperation:
		mutation, operation = addTagMutation, "Tag, Operation: Add"
	case isTag:
		mutation, operation = removeTagMutation, "Tag, Operation: Remove"
	case proposal.Operation == util.AddOperation:
		mutation, operation = addTermMutation, "Term, Operation: Add"
	default:
		mutation, operation = removeTermMutation, "Term, Operation: Remove"
	}
	return a.GraphQL(ctx, operation, mutation,
		map[string]interface{}{"input": input}, nil)
}

func (a *AuthAPIClient) submitDomain(
	ctx context.Context,
	proposal migrate.ChangeProposal,
) error {
	if proposal.Operation == util.RemoveOperation {
		return a.GraphQL(ctx, "Domain, Operation: Unset", unsetDomainMutation,
			map[string]interface{}{"entityUrn": proposal.EntityURN}, nil)
	}
	return a.GraphQL(ctx, "Domain, Operation: Set", setDomainMutation,
		map[string]interface{}{
			"entityUrn": proposal.EntityURN,
			"domainUrn": proposal.Value,
		}, nil)
}

func (a *AuthAPIClient) submitStructuredProperty(
	ctx context.Context,
	proposal migrate.ChangeProposal,
) error {
	if proposal.Operation == util.RemoveOperation {
		return a.GraphQL(ctx, "Structured Property, Operation: Remove",
			removeStructuredPropertiesMutation,
			map[string]interface{}{"input": map[string]interface{}{
				"assetUrn":               proposal.EntityURN,
				"structuredPropertyUrns": []string{proposal.Value},
			}}, nil)
	}
	return a.GraphQL(ctx, "Structured Property, Operation: Upsert",
		upsertStructuredPropertiesMutation,
		map[string]interface{}{"input": map[string]interface{}{
			"assetUrn": proposal.EntityURN,
			"structuredPropertyInputParams": []map[string]interface{}{
				{
					"structuredPropertyUrn": proposal.Value,
					"values":                proposal.Values,
				},
			},
		}}, nil)
}
