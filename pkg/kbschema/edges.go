/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package kbschema

import (
	"github.com/voedger/kbschema/pkg/schema"
)

func edgeDescriptions() schema.Descriptions {
	edge := func(name, reverse, description string) schema.ClassDescription {
		return schema.ClassDescription{
			Name:        name,
			Description: description,
			Inherits:    []string{Class_E},
			IsEdge:      true,
			ReverseName: reverse,
			Properties: []schema.PropertyDescription{
				link(Attr_Source, Class_Source),
			},
			Indices: []schema.IndexDescription{
				activeIndex(name, schema.Attr_Out, schema.Attr_In),
			},
		}
	}

	infers := edge(Class_Infers, "InferredBy", "variant which implies other variant")
	infers.SourceModel = Class_Variant
	infers.TargetModel = Class_Variant

	return schema.Descriptions{
		Class_AliasOf:          edge(Class_AliasOf, "HasAlias", "alternative name of the same term"),
		Class_DeprecatedBy:     edge(Class_DeprecatedBy, "Deprecates", "term replaced by newer term"),
		Class_SubClassOf:       edge(Class_SubClassOf, "SuperClassOf", "term is more specific than other term"),
		Class_ElementOf:        edge(Class_ElementOf, "HasElement", "term is member of other term"),
		Class_CrossReferenceOf: edge(Class_CrossReferenceOf, "HasCrossReference", "same term from different source"),
		Class_GeneralizationOf: edge(Class_GeneralizationOf, "GeneralizedFrom", "term is more general than other term"),
		Class_Infers:           infers,
	}
}
