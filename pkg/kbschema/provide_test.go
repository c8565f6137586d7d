/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package kbschema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"

	"github.com/voedger/kbschema/pkg/rid"
	"github.com/voedger/kbschema/pkg/schema"
)

func newTestRegistry(t *testing.T) schema.IRegistry {
	reg, err := NewRegistry()
	require.NoError(t, err)
	return reg
}

func positionalVariant() map[string]any {
	return map[string]any{
		Attr_Reference1: "#12:1",
		Attr_Type:       "#13:1",
		Attr_CreatedBy:  "#5:1",
		Attr_UpdatedBy:  "#5:1",
		Attr_Break1Start: map[string]any{
			schema.Attr_Class: "ProteinPosition",
			"pos":             1,
			"refAA":           "A",
		},
	}
}

func TestBasicUsage(t *testing.T) {
	require := require.New(t)
	reg := newTestRegistry(t)

	t.Run("must be all classes", func(t *testing.T) {
		for _, n := range []string{Class_V, Class_E, Class_User, Class_UserGroup, Class_Permissions,
			Class_Disease, Class_PositionalVariant, Class_Statement, Class_Infers} {
			require.True(reg.Has(n), n)
		}
		require.Len(reg.EdgeModels(), 8)
	})

	t.Run("must be case insensitive and reverse name lookup", func(t *testing.T) {
		cls, err := reg.Get("positionalvariant", true)
		require.NoError(err)
		require.Equal(Class_PositionalVariant, cls.Name())

		cls, err = reg.Get("InferredBy", true)
		require.NoError(err)
		require.Equal(Class_Infers, cls.Name())

		cls, err = reg.Get(map[string]any{schema.Attr_Class: "Disease"}, true)
		require.NoError(err)
		require.Equal(Class_Disease, cls.Name())

		_, err = reg.Get("Unknown", true)
		require.ErrorIs(err, schema.ErrClassNotFound)
	})
}

func TestFormatPositionalVariant(t *testing.T) {
	require := require.New(t)
	reg := newTestRegistry(t)

	t.Run("must generate break representation", func(t *testing.T) {
		rec, err := reg.FormatRecord(Class_PositionalVariant, positionalVariant())
		require.NoError(err)
		require.Equal("p.A1", rec[Attr_Break1Repr])
		require.NotContains(rec, Attr_Break2Repr)

		require.Equal(rid.MustParse("#12:1"), rec[Attr_Reference1])
		require.True(schema.IsUUIDv4(rec[Attr_UUID].(string)))
		require.IsType(int64(0), rec[Attr_CreatedAt])

		start := rec[Attr_Break1Start].(map[string]any)
		require.Equal("ProteinPosition", start[schema.Attr_Class])
		require.Equal(int64(1), start["pos"])
	})

	t.Run("must generate range representation", func(t *testing.T) {
		r := positionalVariant()
		r[Attr_Break2Start] = map[string]any{schema.Attr_Class: "ExonicPosition", "pos": 1}
		r[Attr_Break2End] = map[string]any{schema.Attr_Class: "ExonicPosition", "pos": 3}

		rec, err := reg.FormatRecord(Class_PositionalVariant, r)
		require.NoError(err)
		require.Equal("p.A1", rec[Attr_Break1Repr])
		require.Equal("e.(1_3)", rec[Attr_Break2Repr])
	})

	t.Run("must regenerate stale representation", func(t *testing.T) {
		r := positionalVariant()
		r[Attr_Break1Repr] = "p.G12D"

		rec, err := reg.FormatRecord(Class_PositionalVariant, r)
		require.NoError(err)
		require.Equal("p.A1", rec[Attr_Break1Repr])

		again, err := reg.FormatRecord(Class_PositionalVariant, rec)
		require.NoError(err)
		require.Equal("p.A1", again[Attr_Break1Repr])
		require.Equal(rec[Attr_UUID], again[Attr_UUID])
	})

	t.Run("must fail if mandatory reference is missed", func(t *testing.T) {
		r := positionalVariant()
		delete(r, Attr_Reference1)

		_, err := reg.FormatRecord(Class_PositionalVariant, r)
		require.ErrorIs(err, schema.ErrMissingAttribute)
		var recErr *schema.RecordError
		require.True(errors.As(err, &recErr))
		require.Equal(Attr_Reference1, recErr.Property)
		require.ErrorContains(err, Attr_Reference1)

		rec, err := reg.FormatRecord(Class_PositionalVariant, r, schema.IgnoreMissing(true))
		require.NoError(err)
		require.NotContains(rec, Attr_Reference1)
		require.Equal("p.A1", rec[Attr_Break1Repr])
	})

	t.Run("must fail if position class is missed", func(t *testing.T) {
		r := positionalVariant()
		r[Attr_Break1Start] = map[string]any{"pos": 1}

		_, err := reg.FormatRecord(Class_PositionalVariant, r)
		require.ErrorIs(err, schema.ErrMissingClassAttribute)
		require.ErrorContains(err, "must include the @class attribute")
	})

	t.Run("must fail if position class is not a position", func(t *testing.T) {
		r := positionalVariant()
		r[Attr_Break1Start] = map[string]any{schema.Attr_Class: Class_Disease}

		_, err := reg.FormatRecord(Class_PositionalVariant, r)
		require.ErrorIs(err, schema.ErrEmbeddedTypeMismatch)
	})

	t.Run("must fail if range start is missed", func(t *testing.T) {
		r := positionalVariant()
		r[Attr_Break2End] = map[string]any{schema.Attr_Class: "ExonicPosition", "pos": 3}

		_, err := reg.FormatRecord(Class_PositionalVariant, r)
		require.ErrorIs(err, schema.ErrIncompleteRange)
		require.ErrorContains(err, "both start and end are required")
	})

	t.Run("must fail if position is not valid", func(t *testing.T) {
		r := positionalVariant()
		r[Attr_Break1Start] = map[string]any{schema.Attr_Class: "ProteinPosition", "pos": 0}

		_, err := reg.FormatRecord(Class_PositionalVariant, r)
		require.ErrorIs(err, schema.ErrMinViolation)
	})

	t.Run("must format record of abstract class", func(t *testing.T) {
		rec, err := reg.FormatRecord(Class_Variant, positionalVariant())
		require.NoError(err)
		require.NotContains(rec, Attr_Break1Start)
	})
}

func TestFormatStatement(t *testing.T) {
	require := require.New(t)
	reg := newTestRegistry(t)

	stmt := func() map[string]any {
		return map[string]any{
			"conditions":   []any{"#20:1", map[string]any{schema.Attr_RID: "#21:4"}},
			"evidence":     []any{"#30:2"},
			"subject":      "#21:4",
			"relevance":    "#13:7",
			Attr_CreatedBy: "#5:1",
		}
	}

	t.Run("must fill defaults and cast links", func(t *testing.T) {
		rec, err := reg.FormatRecord(Class_Statement, stmt())
		require.NoError(err)
		require.Equal([]any{rid.MustParse("#20:1"), rid.MustParse("#21:4")}, rec["conditions"])
		require.Equal("pending", rec["reviewStatus"])
		require.Equal(defaultDisplayNameTemplate, rec["displayNameTemplate"])
	})

	t.Run("must format embedded reviews", func(t *testing.T) {
		s := stmt()
		s["reviews"] = []any{map[string]any{"status": " Passed ", Attr_CreatedBy: "#5:2"}}
		rec, err := reg.FormatRecord(Class_Statement, s)
		require.NoError(err)
		reviews := rec["reviews"].([]any)
		require.Len(reviews, 1)
		review := reviews[0].(map[string]any)
		require.Equal("passed", review["status"])
		require.Contains(review, Attr_CreatedAt)
	})

	t.Run("must fail if review status is unknown", func(t *testing.T) {
		s := stmt()
		s["reviews"] = []any{map[string]any{"status": "approved", Attr_CreatedBy: "#5:2"}}
		_, err := reg.FormatRecord(Class_Statement, s)
		require.ErrorIs(err, schema.ErrChoicesViolation)
	})

	t.Run("must fail if conditions are empty", func(t *testing.T) {
		s := stmt()
		s["conditions"] = []any{}
		_, err := reg.FormatRecord(Class_Statement, s)
		require.ErrorIs(err, schema.ErrMinItemsViolation)
	})
}

func TestFormatEdge(t *testing.T) {
	require := require.New(t)
	reg := newTestRegistry(t)

	rec, err := reg.FormatRecord(Class_AliasOf, map[string]any{
		schema.Attr_Out: "#12:1",
		schema.Attr_In:  map[string]any{schema.Attr_RID: "#12:2"},
		Attr_CreatedBy:  "#5:1",
	})
	require.NoError(err)
	require.Equal(rid.MustParse("#12:1"), rec[schema.Attr_Out])
	require.Equal(rid.MustParse("#12:2"), rec[schema.Attr_In])

	_, err = reg.FormatRecord(Class_AliasOf, map[string]any{schema.Attr_Out: "#12:1", Attr_CreatedBy: "#5:1"})
	require.ErrorIs(err, schema.ErrMissingEndpoint)
}

func TestRoutes(t *testing.T) {
	require := require.New(t)
	reg := newTestRegistry(t)

	tests := []struct {
		class string
		route string
	}{
		{Class_V, "/v"},
		{Class_Ontology, "/ontologies"},
		{Class_Vocabulary, "/vocabulary"},
		{Class_Evidence, "/evidence"},
		{Class_Therapy, "/therapies"},
		{Class_Disease, "/diseases"},
		{Class_AliasOf, "/aliasof"},
	}
	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			require.Equal(tt.route, reg.Class(tt.class).RouteName())
			cls, err := reg.GetFromRoute(tt.route)
			require.NoError(err)
			require.Equal(tt.class, cls.Name())
		})
	}

	require.False(reg.Class(Class_Ontology).Route(schema.Operation_Read))
	require.True(reg.Class(Class_Disease).Route(schema.Operation_Update))
	require.False(reg.Class(Class_AliasOf).Route(schema.Operation_Update))

	p, ok := reg.Class(Class_UserGroup).Permission(schema.PermissionGroup_Default)
	require.True(ok)
	require.Equal(schema.Permission_Read, p)
}

func TestMostSpecificPropertyWins(t *testing.T) {
	require := require.New(t)
	reg := newTestRegistry(t)

	for _, cls := range reg.Models() {
		for name, prop := range cls.Properties() {
			if own := cls.OwnProperty(name); own != nil {
				require.Same(own, prop, "%s.%s", cls.Name(), name)
				continue
			}
			declared := false
			for _, a := range cls.Ancestors() {
				if reg.Class(a).OwnProperty(name) == prop {
					declared = true
					break
				}
			}
			require.True(declared, "%s.%s", cls.Name(), name)
		}
	}
}

func TestDescendants(t *testing.T) {
	require := require.New(t)
	reg := newTestRegistry(t)

	for _, cls := range reg.Models() {
		require.Contains(cls.Descendants(false, true), cls.Name())
		require.NotContains(cls.Descendants(false, false), cls.Name())
	}

	evidence := reg.Class(Class_Evidence).Descendants(true, false)
	require.ElementsMatch([]string{Class_EvidenceLevel, Class_Publication, Class_ClinicalTrial}, evidence)

	positions := reg.Class("Position").Descendants(true, false)
	require.Len(positions, 8)
	require.NotContains(positions, "BasicPosition")

	require.True(reg.InheritsFrom(Class_Publication, Class_V))
	require.True(reg.InheritsFrom(Class_Publication, Class_Evidence))
	require.False(reg.InheritsFrom(Class_Disease, Class_Evidence))
}

func TestQueryAndActiveProperties(t *testing.T) {
	require := require.New(t)
	reg := newTestRegistry(t)

	q := reg.Class(Class_Ontology).QueryableProperties()
	require.Contains(q, "biotype")
	require.Contains(q, "journalName")
	require.NotContains(reg.Class(Class_Ontology).Properties(), "biotype")

	require.Equal(
		[]string{Attr_Source, Attr_SourceID, Attr_Name, "deprecated", "sourceIdVersion", Attr_DeletedAt},
		reg.Class(Class_Disease).ActiveProperties())
	require.Nil(reg.Class(Class_Ontology).ActiveProperties())

	name := reg.Class(Class_Disease).Property(Attr_Name)
	require.True(name.FulltextIndexed())
	require.True(reg.Class(Class_Disease).Property(Attr_SourceID).Indexed())

	require.Contains(reg.Class(Class_Feature).RequiredProperties(), "biotype")
	require.Contains(reg.Class(Class_Feature).OptionalProperties(), "start")
}

func TestSplitClassLevels(t *testing.T) {
	require := require.New(t)
	reg := newTestRegistry(t)

	levels := reg.SplitClassLevels()
	require.ElementsMatch(schema.BootstrapClasses, levels[0])

	levelOf := make(map[string]int)
	for i, l := range levels {
		for _, n := range l {
			_, dup := levelOf[n]
			require.False(dup, n)
			levelOf[n] = i
		}
	}
	require.Len(levelOf, len(reg.Models()))

	for _, cls := range reg.Models() {
		if levelOf[cls.Name()] == 0 {
			continue
		}
		deps := cls.Ancestors()
		for _, p := range cls.Properties() {
			if lc := p.LinkedClass(); lc != "" {
				deps = append(deps, reg.Class(lc).Name())
			}
		}
		if cls.SourceModel() != "" {
			deps = append(deps, cls.SourceModel(), cls.TargetModel())
		}
		for _, d := range deps {
			if d == cls.Name() || slices.Contains(schema.BootstrapClasses, d) {
				continue
			}
			require.Less(levelOf[d], levelOf[cls.Name()], "%s depends on %s", cls.Name(), d)
		}
	}
}

func TestExtendRegistry(t *testing.T) {
	require := require.New(t)

	_, err := NewBuilder().AddClasses(schema.ClassDescription{Name: "disease"}).Build()
	require.ErrorIs(err, schema.ErrNameUniqueViolation)

	reg, err := NewBuilder().AddClasses(schema.ClassDescription{
		Name:     "Mutation",
		Inherits: []string{Class_PositionalVariant},
	}).Build()
	require.NoError(err)
	require.True(reg.InheritsFrom("Mutation", Class_Variant))
}
