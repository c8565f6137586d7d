/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitClassLevels(t *testing.T) {
	require := require.New(t)

	t.Run("must place dependencies to earlier levels", func(t *testing.T) {
		reg := testRegistry(t)
		require.Equal([][]string{
			{"User", "V"},
			{"Evidence", "Source"},
			{"Ontology"},
			{"ClinicalTrial", "Disease", "Publication"},
			{"Cites"},
		}, reg.SplitClassLevels())
	})

	t.Run("must pin bootstrap classes", func(t *testing.T) {
		reg, err := New().AddDescriptions(Descriptions{
			"V":    {IsAbstract: true, Properties: []PropertyDescription{{Name: "createdBy", Type: DataKind_link, LinkedClass: "User"}}},
			"E":    {IsAbstract: true, IsEdge: true, Properties: []PropertyDescription{{Name: "createdBy", Type: DataKind_link, LinkedClass: "User"}}},
			"User": {Inherits: []string{"V"}, Properties: []PropertyDescription{{Name: "groups", Type: DataKind_linkset, LinkedClass: "UserGroup"}}},
			"UserGroup": {Inherits: []string{"V"}, Properties: []PropertyDescription{
				{Name: "permissions", Type: DataKind_embedded, LinkedClass: "Permissions"},
			}},
			"Permissions": {Embedded: true},
			"Source":      {Inherits: []string{"V"}},
			"AliasOf":     {Inherits: []string{"E"}, IsEdge: true},
		}).Build()
		require.NoError(err)
		require.Equal([][]string{
			{"E", "Permissions", "User", "UserGroup", "V"},
			{"AliasOf", "Source"},
		}, reg.SplitClassLevels())
	})

	t.Run("must ignore self dependencies", func(t *testing.T) {
		reg, err := New().AddDescriptions(Descriptions{
			"Node": {Properties: []PropertyDescription{{Name: "parent", Type: DataKind_link, LinkedClass: "Node"}}},
		}).Build()
		require.NoError(err)
		require.Equal([][]string{{"Node"}}, reg.SplitClassLevels())
	})

	t.Run("must return copy", func(t *testing.T) {
		reg := testRegistry(t)
		levels := reg.SplitClassLevels()
		levels[0][0] = "changed"
		require.Equal("User", reg.SplitClassLevels()[0][0])
	})

	t.Run("must fail on dependency cycle", func(t *testing.T) {
		_, err := New().AddDescriptions(Descriptions{
			"A": {Properties: []PropertyDescription{{Name: "b", Type: DataKind_embedded, LinkedClass: "B"}}},
			"B": {Properties: []PropertyDescription{{Name: "c", Type: DataKind_link, LinkedClass: "C"}}},
			"C": {Properties: []PropertyDescription{{Name: "a", Type: DataKind_linkset, LinkedClass: "A"}}},
			"D": {},
		}).Build()
		require.ErrorIs(err, ErrCyclicDependency)
		require.ErrorContains(err, "[A, B, C]")
	})
}
