/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package kbschema

import (
	"github.com/voedger/kbschema/pkg/schema"
)

// Properties identifying ontology term within its source
var ontologyIdentity = []string{Attr_Source, Attr_SourceID, Attr_Name, "deprecated", "sourceIdVersion"}

func ontologyDescriptions() schema.Descriptions {
	descs := schema.Descriptions{
		Class_Ontology: {
			Name:        Class_Ontology,
			Description: "term of external or curated ontology",
			Inherits:    []string{Class_V},
			IsAbstract:  true,
			Properties: []schema.PropertyDescription{
				requiredLink(Attr_Source, Class_Source),
				{Name: Attr_SourceID, Mandatory: true, Nullable: schema.Ptr(false), NonEmpty: true},
				{Name: "sourceIdVersion"},
				{Name: Attr_Name, Nullable: schema.Ptr(false), NonEmpty: true, Example: "kras"},
				{Name: "description", Cast: castTrimmed},
				{Name: "longName", Cast: castTrimmed},
				{Name: "subsets", Type: schema.DataKind_embeddedset},
				{Name: "deprecated", Type: schema.DataKind_boolean, Default: schema.Static(false)},
				{Name: "url", Cast: castTrimmed},
			},
			Indices: []schema.IndexDescription{
				{Name: "Ontology.name", Type: schema.IndexType_FulltextLuceneHash, Properties: []string{Attr_Name}},
				{Name: "Ontology.sourceId", Type: schema.IndexType_NotUniqueHash, Properties: []string{Attr_SourceID}},
			},
		},
		Class_Vocabulary: {
			Description: "term of the knowledge base controlled vocabulary",
		},
		Class_Feature: {
			Description: "genomic feature, like gene or transcript",
			Properties: []schema.PropertyDescription{
				{Name: "start", Type: schema.DataKind_integer, Min: schema.Ptr(1.0)},
				{Name: "end", Type: schema.DataKind_integer, Min: schema.Ptr(1.0)},
				{Name: "biotype", Mandatory: true, Nullable: schema.Ptr(false), Choices: biotypes, Example: "gene"},
			},
		},
		Class_Disease: {
			Description: "disease or condition",
		},
		Class_Therapy: {
			Description: "drug, treatment or combination of therapies",
			Properties: []schema.PropertyDescription{
				{Name: "mechanismOfAction"},
				{Name: "molecularFormula", Cast: castTrimmed},
				{Name: "iupacName", Cast: castTrimmed},
			},
		},
		Class_AnatomicalEntity: {
			Description: "anatomical structure, like organ or tissue",
		},
		Class_Signature: {
			Description: "molecular signature",
			Inherits:    []string{Class_Ontology, Class_Biomarker},
		},
		Class_EvidenceLevel: {
			Description: "evidence level assigned by external source",
			Inherits:    []string{Class_Ontology, Class_Evidence},
		},
		Class_Publication: {
			Description: "published article or abstract",
			Inherits:    []string{Class_Ontology, Class_Evidence},
			Properties: []schema.PropertyDescription{
				{Name: "journalName"},
				{Name: "year", Type: schema.DataKind_integer, Min: schema.Ptr(1000.0), Max: schema.Ptr(3000.0)},
				{Name: "authors", Cast: castTrimmed},
				{Name: "doi", Cast: castTrimmed, Pattern: `^10\.\d{4,9}/\S+$`},
			},
		},
		Class_ClinicalTrial: {
			Description: "registered clinical trial",
			Inherits:    []string{Class_Ontology, Class_Evidence},
			Properties: []schema.PropertyDescription{
				{Name: "phase"},
				{Name: "size", Type: schema.DataKind_integer, Min: schema.Ptr(0.0)},
				{Name: "startDate", Cast: castTrimmed, Pattern: `^\d{4}(-\d{2}(-\d{2})?)?$`},
				{Name: "completionDate", Cast: castTrimmed, Pattern: `^\d{4}(-\d{2}(-\d{2})?)?$`},
				{Name: "country"},
				{Name: "city"},
				{Name: "recruitmentStatus", Choices: []any{"not yet recruiting", "recruiting", "completed", "terminated", "withdrawn", "unknown"}},
			},
		},
	}

	for name, d := range descs {
		if name == Class_Ontology {
			continue
		}
		d.Name = name
		if len(d.Inherits) == 0 {
			d.Inherits = []string{Class_Ontology}
		}
		d.Indices = append(d.Indices, activeIndex(name, ontologyIdentity...))
		descs[name] = d
	}

	return descs
}
