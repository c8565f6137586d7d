/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const testYAML = `
Source:
  properties:
    - {name: name, mandatory: true, nullable: false}
Publication:
  inherits: [Source]
  description: a published work
  routes: {delete: false}
  permissions: {admin: 15}
  properties:
    - {name: journalName, type: string}
    - {name: year, type: integer, min: 1800}
    - {name: status, choices: [Draft, Published], default: draft}
  indices:
    - {name: Publication.journalName, type: NOTUNIQUE_HASH_INDEX, properties: [journalName]}
Cites:
  sourceModel: Publication
  targetModel: Source
  reverseName: CitedBy
`

func TestParseYAML(t *testing.T) {
	require := require.New(t)

	descs, err := ParseYAML([]byte(testYAML))
	require.NoError(err)
	require.Len(descs, 3)

	pub := descs["Publication"]
	require.Equal("Publication", pub.Name)
	require.Equal([]string{"Source"}, pub.Inherits)
	require.Equal(map[Operation]bool{Operation_Delete: false}, pub.Routes)
	require.Equal(Permission_All, pub.Permissions["admin"])
	require.Len(pub.Properties, 3)
	require.Equal(DataKind_integer, pub.Properties[1].Type)
	require.Equal(1800.0, *pub.Properties[1].Min)
	require.Equal(Static("draft"), pub.Properties[2].Default)
	require.Equal(IndexType_NotUniqueHash, pub.Indices[0].Type)

	reg, err := New().AddDescriptions(descs).Build()
	require.NoError(err)

	cls := reg.Class("Publication")
	require.True(cls.Property("journalName").Indexed())
	require.False(cls.Route(Operation_Delete))
	require.True(reg.Class("Cites").IsEdge())
	require.Equal("Cites", reg.Class("citedby").Name())

	rec, err := reg.FormatRecord("Publication", map[string]any{"name": "Nature", "year": 1999})
	require.NoError(err)
	require.Equal(map[string]any{"name": "nature", "year": int64(1999), "status": "draft"}, rec)

	_, err = reg.FormatRecord("Publication", map[string]any{"name": "Nature", "year": 1700})
	require.ErrorIs(err, ErrMinViolation)
}

func TestParseYAMLErrors(t *testing.T) {
	require := require.New(t)

	for _, doc := range []string{
		"A: [",
		"A: {properties: [{name: p, type: float}]}",
		"A: {routes: {patch: true}}",
	} {
		_, err := ParseYAML([]byte(doc))
		require.Error(err, doc)
	}
}

func TestMergeDescriptions(t *testing.T) {
	require := require.New(t)

	merged, err := MergeDescriptions(
		Descriptions{"A": {}, "B": {}},
		Descriptions{"C": {}},
	)
	require.NoError(err)
	require.Len(merged, 3)

	_, err = MergeDescriptions(
		Descriptions{"A": {}},
		Descriptions{"a": {}},
	)
	require.ErrorIs(err, ErrNameUniqueViolation)
}
