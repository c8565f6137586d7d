/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package kbschema

import (
	"github.com/voedger/kbschema/pkg/schema"
)

const defaultDisplayNameTemplate = "Given {conditions} {relevance} applies to {subject} ({evidence})"

func statementDescriptions() schema.Descriptions {
	return schema.Descriptions{
		Class_Statement: {
			Name:        Class_Statement,
			Description: "curated assertion relating conditions to their relevance for subject",
			Inherits:    []string{Class_V},
			Properties: []schema.PropertyDescription{
				requiredSet("conditions", Class_V),
				requiredSet("evidence", Class_Evidence),
				requiredLink("subject", Class_V),
				requiredLink("relevance", Class_Vocabulary),
				linkset("evidenceLevel", Class_EvidenceLevel),
				link(Attr_Source, Class_Source),
				{Name: Attr_SourceID},
				{Name: "reviewStatus", Choices: reviewStatuses, Default: schema.Static("pending")},
				{Name: "reviews", Type: schema.DataKind_embeddedlist, LinkedClass: Class_StatementReview},
				{Name: "displayNameTemplate", Cast: castTrimmed, Default: schema.Static(defaultDisplayNameTemplate)},
			},
			Indices: []schema.IndexDescription{
				{Name: "Statement.subject", Type: schema.IndexType_NotUniqueHash, Properties: []string{"subject"}},
			},
		},
		Class_StatementReview: {
			Name:        Class_StatementReview,
			Description: "review of the statement by user",
			Embedded:    true,
			Properties: []schema.PropertyDescription{
				{Name: "status", Mandatory: true, Nullable: schema.Ptr(false), Choices: reviewStatuses},
				{Name: Attr_Comment, Cast: castTrimmed},
				requiredLink(Attr_CreatedBy, Class_User),
				{Name: Attr_CreatedAt, Type: schema.DataKind_long, Generated: true, Default: schema.GenerateDefault(timestamp)},
			},
		},
	}
}

func requiredSet(name, class string) schema.PropertyDescription {
	p := linkset(name, class)
	p.Mandatory = true
	p.Nullable = schema.Ptr(false)
	p.MinItems = schema.Ptr(1)
	return p
}
