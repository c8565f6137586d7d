/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package kbschema

import (
	"github.com/voedger/kbschema/pkg/positions"
	"github.com/voedger/kbschema/pkg/schema"
)

func variantDescriptions() schema.Descriptions {
	return schema.Descriptions{
		Class_Variant: {
			Name:        Class_Variant,
			Description: "genomic or protein alteration",
			Inherits:    []string{Class_V, Class_Biomarker},
			IsAbstract:  true,
			Properties: []schema.PropertyDescription{
				requiredLink(Attr_Type, Class_Vocabulary),
				requiredLink(Attr_Reference1, Class_Feature),
				link(Attr_Reference2, Class_Feature),
				{Name: "zygosity", Choices: []any{"heterozygous", "homozygous"}},
				{Name: "germline", Type: schema.DataKind_boolean},
			},
		},
		Class_CategoryVariant: {
			Name:        Class_CategoryVariant,
			Description: "variant described by category, like copy gain of gene",
			Inherits:    []string{Class_Variant},
			Indices: []schema.IndexDescription{
				activeIndex(Class_CategoryVariant, Attr_Type, Attr_Reference1, Attr_Reference2, "zygosity", "germline"),
			},
		},
		Class_PositionalVariant: {
			Name:        Class_PositionalVariant,
			Description: "variant described by positions of its breakpoints",
			Inherits:    []string{Class_Variant},
			Properties: []schema.PropertyDescription{
				breakpoint(Attr_Break1Start, true),
				breakpoint(Attr_Break1End, false),
				breakRepr(Attr_Break1Repr, Attr_Break1Start, Attr_Break1End),
				breakpoint(Attr_Break2Start, false),
				breakpoint(Attr_Break2End, false),
				breakRepr(Attr_Break2Repr, Attr_Break2Start, Attr_Break2End),
				{Name: "refSeq", Cast: castUpper},
				{Name: "untemplatedSeq", Cast: castUpper},
				{Name: "untemplatedSeqSize", Type: schema.DataKind_integer},
			},
			Indices: []schema.IndexDescription{
				activeIndex(Class_PositionalVariant, Attr_Break1Repr, Attr_Break2Repr, Attr_Type, Attr_Reference1, Attr_Reference2,
					"refSeq", "untemplatedSeq", "untemplatedSeqSize", "zygosity", "germline"),
			},
		},
	}
}

func breakpoint(name string, mandatory bool) schema.PropertyDescription {
	p := schema.PropertyDescription{
		Name:        name,
		Type:        schema.DataKind_embedded,
		LinkedClass: positions.Class_Position,
		Mandatory:   mandatory,
	}
	if mandatory {
		p.Nullable = schema.Ptr(false)
	}
	return p
}

// Breakpoint notation, always regenerated from breakpoint positions
func breakRepr(name, start, end string) schema.PropertyDescription {
	return schema.PropertyDescription{
		Name:      name,
		Generated: true,
		Cast:      castTrimmed,
		Default:   positions.BreakReprDefault(start, end),
		Example:   "p.G12D",
	}
}

func positionDescriptions() schema.Descriptions {
	basic := func(name, description string, props ...schema.PropertyDescription) schema.ClassDescription {
		return schema.ClassDescription{
			Name:        name,
			Description: description,
			Inherits:    []string{positions.Class_BasicPosition},
			Embedded:    true,
			Properties:  props,
		}
	}
	offset := schema.PropertyDescription{Name: positions.Attr_Offset, Type: schema.DataKind_integer, Cast: positions.CastOffset}

	return schema.Descriptions{
		positions.Class_Position: {
			Name:        positions.Class_Position,
			Description: "position of a breakpoint",
			IsAbstract:  true,
			Embedded:    true,
			Properties: []schema.PropertyDescription{
				{Name: schema.Attr_Class, Cast: castClassName},
			},
		},
		positions.Class_BasicPosition: {
			Name:        positions.Class_BasicPosition,
			Description: "position given by single number",
			Inherits:    []string{positions.Class_Position},
			IsAbstract:  true,
			Embedded:    true,
			Properties: []schema.PropertyDescription{
				{Name: positions.Attr_Pos, Type: schema.DataKind_integer, Min: schema.Ptr(1.0), Example: 1},
			},
		},
		positions.Class_GenomicPosition:  basic(positions.Class_GenomicPosition, "position on the genome"),
		positions.Class_ExonicPosition:   basic(positions.Class_ExonicPosition, "exon number"),
		positions.Class_IntronicPosition: basic(positions.Class_IntronicPosition, "intron number"),
		positions.Class_RnaPosition:      basic(positions.Class_RnaPosition, "position on the transcript", offset),
		positions.Class_CdsPosition:      basic(positions.Class_CdsPosition, "position on the coding sequence", offset),
		positions.Class_NonCdsPosition:   basic(positions.Class_NonCdsPosition, "position on the non-coding sequence", offset),
		positions.Class_ProteinPosition: basic(positions.Class_ProteinPosition, "position on the protein",
			schema.PropertyDescription{Name: positions.Attr_RefAA, Cast: positions.CastAminoAcid, Example: "G"}),
		positions.Class_CytobandPosition: {
			Name:        positions.Class_CytobandPosition,
			Description: "position on the chromosome band",
			Inherits:    []string{positions.Class_Position},
			Embedded:    true,
			Properties: []schema.PropertyDescription{
				{Name: positions.Attr_Arm, Mandatory: true, Nullable: schema.Ptr(false), Choices: []any{"p", "q"}},
				{Name: positions.Attr_MajorBand, Type: schema.DataKind_integer, Min: schema.Ptr(1.0)},
				{Name: positions.Attr_MinorBand, Type: schema.DataKind_integer, Min: schema.Ptr(1.0)},
			},
		},
	}
}
