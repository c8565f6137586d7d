/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package kbschema

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/voedger/kbschema/pkg/schema"
)

// Returns descriptions of all knowledge base classes
func Descriptions() schema.Descriptions {
	descs, err := schema.MergeDescriptions(
		baseDescriptions(),
		ontologyDescriptions(),
		variantDescriptions(),
		positionDescriptions(),
		statementDescriptions(),
		edgeDescriptions(),
	)
	if err != nil {
		panic(err)
	}

	names := maps.Keys(descs)
	slices.Sort(names)
	descs[Class_Permissions] = permissionsDescription(names)

	return descs
}

// Returns registry builder with all knowledge base classes added.
// Use it to extend knowledge base with additional classes
func NewBuilder() schema.IRegistryBuilder {
	return schema.New().AddDescriptions(Descriptions())
}

// Builds registry of knowledge base classes
func NewRegistry() (schema.IRegistry, error) {
	return NewBuilder().Build()
}
