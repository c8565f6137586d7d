/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package kbschema

// Base classes
const (
	Class_V           = "V"
	Class_E           = "E"
	Class_User        = "User"
	Class_UserGroup   = "UserGroup"
	Class_Permissions = "Permissions"
	Class_Source      = "Source"
	Class_Evidence    = "Evidence"
	Class_Biomarker   = "Biomarker"
)

// Ontology classes
const (
	Class_Ontology         = "Ontology"
	Class_Vocabulary       = "Vocabulary"
	Class_Feature          = "Feature"
	Class_Disease          = "Disease"
	Class_Therapy          = "Therapy"
	Class_AnatomicalEntity = "AnatomicalEntity"
	Class_Signature        = "Signature"
	Class_EvidenceLevel    = "EvidenceLevel"
	Class_Publication      = "Publication"
	Class_ClinicalTrial    = "ClinicalTrial"
)

// Variant classes
const (
	Class_Variant           = "Variant"
	Class_CategoryVariant   = "CategoryVariant"
	Class_PositionalVariant = "PositionalVariant"
)

// Statement classes
const (
	Class_Statement       = "Statement"
	Class_StatementReview = "StatementReview"
)

// Edge classes
const (
	Class_AliasOf          = "AliasOf"
	Class_DeprecatedBy     = "DeprecatedBy"
	Class_SubClassOf       = "SubClassOf"
	Class_ElementOf        = "ElementOf"
	Class_CrossReferenceOf = "CrossReferenceOf"
	Class_GeneralizationOf = "GeneralizationOf"
	Class_Infers           = "Infers"
)

// Common attributes
const (
	Attr_UUID        = "uuid"
	Attr_CreatedAt   = "createdAt"
	Attr_CreatedBy   = "createdBy"
	Attr_UpdatedAt   = "updatedAt"
	Attr_UpdatedBy   = "updatedBy"
	Attr_DeletedAt   = "deletedAt"
	Attr_DeletedBy   = "deletedBy"
	Attr_History     = "history"
	Attr_Comment     = "comment"
	Attr_DisplayName = "displayName"
	Attr_Name        = "name"
	Attr_Source      = "source"
	Attr_SourceID    = "sourceId"
)

// Positional variant attributes
const (
	Attr_Break1Start = "break1Start"
	Attr_Break1End   = "break1End"
	Attr_Break1Repr  = "break1Repr"
	Attr_Break2Start = "break2Start"
	Attr_Break2End   = "break2End"
	Attr_Break2Repr  = "break2Repr"
	Attr_Reference1  = "reference1"
	Attr_Reference2  = "reference2"
	Attr_Type        = "type"
)

// Statement review states
var reviewStatuses = []any{"pending", "not required", "passed", "failed", "initial"}

// Feature biotypes
var biotypes = []any{"gene", "protein", "transcript", "exon", "chromosome", "cytoband"}
