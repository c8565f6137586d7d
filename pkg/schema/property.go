/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package schema

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/exp/slices"
)

// Property of the class.
//
// Property is immutable after construction.
type Property struct {
	name            string
	kind            DataKind
	description     string
	nullable        bool
	mandatory       bool
	nonEmpty        bool
	min, max        *float64
	minItems        *int
	maxItems        *int
	pattern         *regexp.Regexp
	choices         []any
	linkedClass     string
	iterable        bool
	generated       bool
	def             DefaultValue
	cast            CastFunc
	check           CheckFunc
	indexed         bool
	fulltextIndexed bool
	example         any
}

// Creates new property from description.
//
// Unset description fields are filled with defaults:
//   - data kind is string, or integer if numeric bound specified,
//   - property is nullable,
//   - cast function is chosen by data kind.
//
// Choices are casted by property cast function.
func NewProperty(d PropertyDescription) (*Property, error) {
	if d.Name == "" {
		return nil, fmt.Errorf("property name is empty: %w", ErrNameMissed)
	}

	p := &Property{
		name:            d.Name,
		kind:            d.Type,
		description:     d.Description,
		nullable:        true,
		mandatory:       d.Mandatory,
		nonEmpty:        d.NonEmpty,
		min:             d.Min,
		max:             d.Max,
		minItems:        d.MinItems,
		maxItems:        d.MaxItems,
		linkedClass:     d.LinkedClass,
		generated:       d.Generated,
		def:             d.Default,
		cast:            d.Cast,
		check:           d.Check,
		indexed:         d.Indexed,
		fulltextIndexed: d.FulltextIndexed,
		example:         d.Example,
	}

	if d.Nullable != nil {
		p.nullable = *d.Nullable
	}

	if p.kind == DataKind_null {
		p.kind = DataKind_string
		if d.Min != nil || d.Max != nil {
			p.kind = DataKind_integer
		}
	}
	if p.kind >= DataKind_FakeLast {
		return nil, fmt.Errorf("property «%s» has unknown data kind %v: %w", p.name, p.kind, ErrInvalidError)
	}
	p.iterable = p.kind.IsIterable()

	if p.linkedClass != "" && !p.kind.IsLink() && !p.kind.IsEmbedded() {
		return nil, fmt.Errorf("property «%s» of kind %v can not have linked class «%s»: %w", p.name, p.kind, p.linkedClass, ErrInvalidError)
	}

	if d.Pattern != "" {
		re, err := regexp.Compile(d.Pattern)
		if err != nil {
			return nil, fmt.Errorf("property «%s» pattern: %w", p.name, err)
		}
		p.pattern = re
	}

	if p.cast == nil {
		p.cast = defaultCast(p.kind, p.nullable, p.nonEmpty)
	}

	if len(d.Choices) > 0 {
		p.choices = make([]any, 0, len(d.Choices))
		for _, c := range d.Choices {
			if p.cast != nil {
				cc, err := p.cast(c)
				if err != nil {
					return nil, fmt.Errorf("property «%s» choice %v: %w", p.name, c, err)
				}
				c = cc
			}
			p.choices = append(p.choices, c)
		}
	}

	return p, nil
}

// Creates new property from description.
//
// # Panics:
//   - if description is not valid
func MustNewProperty(d PropertyDescription) *Property {
	p, err := NewProperty(d)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Property) Name() string          { return p.name }
func (p *Property) DataKind() DataKind    { return p.kind }
func (p *Property) Description() string   { return p.description }
func (p *Property) Nullable() bool        { return p.nullable }
func (p *Property) Mandatory() bool       { return p.mandatory }
func (p *Property) NonEmpty() bool        { return p.nonEmpty }
func (p *Property) Min() *float64         { return p.min }
func (p *Property) Max() *float64         { return p.max }
func (p *Property) MinItems() *int        { return p.minItems }
func (p *Property) MaxItems() *int        { return p.maxItems }
func (p *Property) LinkedClass() string   { return p.linkedClass }
func (p *Property) Iterable() bool        { return p.iterable }
func (p *Property) Generated() bool       { return p.generated }
func (p *Property) Default() DefaultValue { return p.def }
func (p *Property) Indexed() bool         { return p.indexed }
func (p *Property) FulltextIndexed() bool { return p.fulltextIndexed }
func (p *Property) Example() any          { return p.example }
func (p *Property) Choices() []any        { return slices.Clone(p.choices) }
func (p *Property) HasCast() bool         { return p.cast != nil }
func (p *Property) HasCheck() bool        { return p.check != nil }

// Returns pattern source or empty string
func (p *Property) Pattern() string {
	if p.pattern == nil {
		return ""
	}
	return p.pattern.String()
}

// Returns is property default depends on other record properties
func (p *Property) DependencyGenerated() bool {
	_, ok := p.def.(DependentDefault)
	return ok
}

// Validates and casts value.
//
// Scalar value is treated as a single element list. Returns casted value
// of the same shape as passed: scalar for scalar, []any for list.
func (p *Property) Validate(value any) (any, error) {
	values, isList := asList(value)

	if len(values) > 1 && !p.iterable {
		return nil, attributeError(ErrTooManyValues, p.name, value, nil,
			"%s expects a single value, got %d", p.name, len(values))
	}

	result := make([]any, 0, len(values))
	for _, v := range values {
		cv, err := p.validateValue(v)
		if err != nil {
			return nil, err
		}
		result = append(result, cv)
	}

	if p.minItems != nil && len(result) < *p.minItems {
		return nil, attributeError(ErrMinItemsViolation, p.name, value, *p.minItems,
			"%s has %d items, minimum is %d", p.name, len(result), *p.minItems)
	}
	if p.maxItems != nil && len(result) > *p.maxItems {
		return nil, attributeError(ErrMaxItemsViolation, p.name, value, *p.maxItems,
			"%s has %d items, maximum is %d", p.name, len(result), *p.maxItems)
	}

	if isList {
		return result, nil
	}
	return result[0], nil
}

func (p *Property) validateValue(v any) (any, error) {
	if v == nil && !p.nullable {
		return nil, attributeError(ErrNullViolation, p.name, v, nil,
			"%s can not be null", p.name)
	}

	cv := v
	if p.cast != nil && v != nil {
		c, err := p.cast(v)
		if err != nil {
			return nil, &AttributeError{
				error:    fmt.Errorf("%w: failed casting %s: %w", ErrCast, p.name, err),
				Property: p.name,
				Value:    v,
			}
		}
		cv = c
	}

	if cv != nil {
		if p.nonEmpty && cv == "" {
			return nil, attributeError(ErrEmptyValue, p.name, v, nil,
				"%s cannot be an empty string", p.name)
		}
		if f, ok := toFloat(cv); ok {
			if p.min != nil && f < *p.min {
				return nil, attributeError(ErrMinViolation, p.name, cv, *p.min,
					"%s (%v < %v)", p.name, cv, *p.min)
			}
			if p.max != nil && f > *p.max {
				return nil, attributeError(ErrMaxViolation, p.name, cv, *p.max,
					"%s (%v > %v)", p.name, cv, *p.max)
			}
		}
		if p.pattern != nil && !p.pattern.MatchString(fmt.Sprint(cv)) {
			return nil, attributeError(ErrPatternViolation, p.name, cv, p.pattern.String(),
				"%s: %v does not match the expected pattern %v", p.name, cv, p.pattern)
		}
		if len(p.choices) > 0 && !slices.Contains(p.choices, cv) {
			return nil, attributeError(ErrChoicesViolation, p.name, cv, p.Choices(),
				"%s: %v is not one of the expected values [%s]", p.name, cv, joinAny(p.choices, ", "))
		}
	}

	if p.check != nil && !p.check(cv) {
		return nil, attributeError(ErrCheckViolation, p.name, cv, nil,
			"%s: %v", p.name, cv)
	}

	return cv, nil
}

func (p *Property) String() string {
	var b strings.Builder
	b.WriteString(p.name)
	b.WriteString(" (")
	b.WriteString(p.kind.String())
	if p.linkedClass != "" {
		b.WriteString(" of ")
		b.WriteString(p.linkedClass)
	}
	b.WriteString(")")
	return b.String()
}
