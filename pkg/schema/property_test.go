/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voedger/kbschema/pkg/rid"
)

func TestNewProperty(t *testing.T) {
	require := require.New(t)

	t.Run("must be defaults", func(t *testing.T) {
		p, err := NewProperty(PropertyDescription{Name: "name"})
		require.NoError(err)
		require.Equal("name", p.Name())
		require.Equal(DataKind_string, p.DataKind())
		require.True(p.Nullable())
		require.False(p.Mandatory())
		require.False(p.Iterable())
		require.True(p.HasCast())
		require.False(p.HasCheck())
		require.Empty(p.Pattern())
		require.Equal("name (string)", p.String())
	})

	t.Run("must be integer if bounds are set", func(t *testing.T) {
		p := MustNewProperty(PropertyDescription{Name: "year", Min: Ptr(1000.0)})
		require.Equal(DataKind_integer, p.DataKind())
		require.Equal(1000.0, *p.Min())
		require.Nil(p.Max())
	})

	t.Run("must derive iterable from kind", func(t *testing.T) {
		for k := DataKind_string; k < DataKind_FakeLast; k++ {
			p := MustNewProperty(PropertyDescription{Name: "p", Type: k})
			require.Equal(k == DataKind_linkset || k == DataKind_embeddedlist || k == DataKind_embeddedset, p.Iterable(), k)
		}
	})

	t.Run("must cast choices", func(t *testing.T) {
		p := MustNewProperty(PropertyDescription{Name: "status", Choices: []any{"Pending", " PASSED "}})
		require.Equal([]any{"pending", "passed"}, p.Choices())
	})

	t.Run("must be linked class", func(t *testing.T) {
		p := MustNewProperty(PropertyDescription{Name: "source", Type: DataKind_link, LinkedClass: "Source"})
		require.Equal("Source", p.LinkedClass())
		require.Equal("source (link of Source)", p.String())
	})

	t.Run("must be dependency generated", func(t *testing.T) {
		p := MustNewProperty(PropertyDescription{
			Name:      "repr",
			Generated: true,
			Default:   DependentDefault(func(map[string]any) (any, error) { return nil, nil }),
		})
		require.True(p.Generated())
		require.True(p.DependencyGenerated())

		p = MustNewProperty(PropertyDescription{Name: "sort", Default: Static(1)})
		require.False(p.DependencyGenerated())
		require.Equal(StaticDefault{1}, p.Default())
	})

	t.Run("must be errors", func(t *testing.T) {
		tests := []struct {
			name string
			desc PropertyDescription
			err  error
		}{
			{"empty name", PropertyDescription{}, ErrNameMissed},
			{"unknown kind", PropertyDescription{Name: "p", Type: DataKind_FakeLast}, ErrInvalidError},
			{"linked scalar", PropertyDescription{Name: "p", Type: DataKind_integer, LinkedClass: "V"}, ErrInvalidError},
			{"bad choice", PropertyDescription{Name: "p", Type: DataKind_integer, Choices: []any{"one"}}, nil},
			{"bad pattern", PropertyDescription{Name: "p", Pattern: "("}, nil},
		}
		for _, tt := range tests {
			_, err := NewProperty(tt.desc)
			require.Error(err, tt.name)
			if tt.err != nil {
				require.ErrorIs(err, tt.err, tt.name)
			}
		}
		require.Panics(func() { MustNewProperty(PropertyDescription{}) })
	})
}

func TestPropertyValidate(t *testing.T) {
	require := require.New(t)

	t.Run("must cast scalar and keep shape", func(t *testing.T) {
		p := MustNewProperty(PropertyDescription{Name: "name"})
		v, err := p.Validate("  KRAS ")
		require.NoError(err)
		require.Equal("kras", v)

		v, err = p.Validate(nil)
		require.NoError(err)
		require.Nil(v)

		v, err = p.Validate([]string{"KRAS"})
		require.NoError(err)
		require.Equal([]any{"kras"}, v)
	})

	t.Run("must cast list", func(t *testing.T) {
		p := MustNewProperty(PropertyDescription{Name: "links", Type: DataKind_linkset})
		v, err := p.Validate([]any{"#1:2", map[string]any{Attr_RID: "#3:4"}})
		require.NoError(err)
		require.Equal([]any{rid.New(1, 2), rid.New(3, 4)}, v)

		v, err = p.Validate("#1:2")
		require.NoError(err)
		require.Equal(rid.New(1, 2), v)
	})

	t.Run("must reject too many values", func(t *testing.T) {
		p := MustNewProperty(PropertyDescription{Name: "name"})
		_, err := p.Validate([]any{"a", "b"})
		require.ErrorIs(err, ErrTooManyValues)
	})

	check := func(desc PropertyDescription, value any, kind error) {
		t.Helper()
		p := MustNewProperty(desc)
		_, err := p.Validate(value)
		require.ErrorIs(err, kind)

		var attrErr *AttributeError
		require.True(errors.As(err, &attrErr))
		require.Equal(desc.Name, attrErr.Property)
	}

	t.Run("must be attribute errors", func(t *testing.T) {
		check(PropertyDescription{Name: "name", Nullable: Ptr(false)}, nil, ErrNullViolation)
		check(PropertyDescription{Name: "size", Type: DataKind_integer}, "ten", ErrCast)
		check(PropertyDescription{Name: "name", NonEmpty: true, Cast: func(v any) (any, error) { return v, nil }}, "", ErrEmptyValue)
		check(PropertyDescription{Name: "year", Min: Ptr(1000.0)}, 999, ErrMinViolation)
		check(PropertyDescription{Name: "year", Max: Ptr(3000.0)}, "3001", ErrMaxViolation)
		check(PropertyDescription{Name: "doi", Pattern: `^10\.\d+/`}, "11.1/x", ErrPatternViolation)
		check(PropertyDescription{Name: "status", Choices: []any{"pending", "passed"}}, "failed", ErrChoicesViolation)
		check(PropertyDescription{Name: "even", Type: DataKind_integer, Check: func(v any) bool { return v.(int64)%2 == 0 }}, 3, ErrCheckViolation)
		check(PropertyDescription{Name: "tags", Type: DataKind_embeddedset, MinItems: Ptr(1)}, []any{}, ErrMinItemsViolation)
		check(PropertyDescription{Name: "tags", Type: DataKind_embeddedset, MaxItems: Ptr(1)}, []any{"a", "b"}, ErrMaxItemsViolation)
	})

	t.Run("must cast error wrap cause", func(t *testing.T) {
		p := MustNewProperty(PropertyDescription{Name: "source", Type: DataKind_link})
		_, err := p.Validate("source")
		require.ErrorIs(err, ErrCast)
		require.ErrorIs(err, rid.ErrMalformed)

		var attrErr *AttributeError
		require.True(errors.As(err, &attrErr))
		require.Equal("source", attrErr.Value)
	})

	t.Run("must report limit", func(t *testing.T) {
		p := MustNewProperty(PropertyDescription{Name: "year", Min: Ptr(1000.0)})
		_, err := p.Validate(10)
		var attrErr *AttributeError
		require.True(errors.As(err, &attrErr))
		require.Equal(1000.0, attrErr.Limit)
		require.Equal(int64(10), attrErr.Value)
	})

	t.Run("must check null values", func(t *testing.T) {
		calls := 0
		p := MustNewProperty(PropertyDescription{Name: "p", Check: func(v any) bool { calls++; return v == nil }})
		_, err := p.Validate(nil)
		require.NoError(err)
		require.Equal(1, calls)
	})

	t.Run("must validate constraints on casted value", func(t *testing.T) {
		p := MustNewProperty(PropertyDescription{Name: "status", Choices: []any{"passed"}})
		v, err := p.Validate(" PASSED")
		require.NoError(err)
		require.Equal("passed", v)
	})
}
