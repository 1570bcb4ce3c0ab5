/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package util

const (
	// DatasetEntityType for dataset entities
	DatasetEntityType = "dataset"
	// TagEntityType for tag entities
	TagEntityType = "tag"
	// DomainEntityType for domain entities
	DomainEntityType = "domain"
	// GlossaryTermEntityType for glossary term entities
	GlossaryTermEntityType = "glossaryTerm"
	// PolicyEntityType for access policy entities
	PolicyEntityType = "dataHubPolicy"
	// SecretEntityType for secret entities
	SecretEntityType = "dataHubSecret"
	// IngestionSourceEntityType for ingestion source (recipe) entities
	IngestionSourceEntityType = "dataHubIngestionSource"
)

const (
	// GlobalTagsAspect carries entity level tag associations
	GlobalTagsAspect = "globalTags"
	// GlossaryTermsAspect carries entity level term associations
	GlossaryTermsAspect = "glossaryTerms"
	// DomainsAspect carries the domain assignment
	DomainsAspect = "domains"
	// StructuredPropertiesAspect carries structured property values
	StructuredPropertiesAspect = "structuredProperties"
	// EditableSchemaMetadataAspect carries per schema field tags and terms
	EditableSchemaMetadataAspect = "editableSchemaMetadata"
)

const (
	// AddOperation adds a value to a facet
	AddOperation = "ADD"
	// RemoveOperation removes a value from a facet
	RemoveOperation = "REMOVE"
	// SetOperation replaces a single valued facet
	SetOperation = "SET"
)

const (
	// UpsertChangeType for ingest proposals
	UpsertChangeType = "UPSERT"

	// MetadataPolicyType scopes a policy to metadata operations
	MetadataPolicyType = "METADATA"
	// PlatformPolicyType scopes a policy to platform operations
	PlatformPolicyType = "PLATFORM"
	// ActivePolicyState marks a policy as enforced
	ActivePolicyState = "ACTIVE"
	// InactivePolicyState marks a policy as disabled
	InactivePolicyState = "INACTIVE"
)
