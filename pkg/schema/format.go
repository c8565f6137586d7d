/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package schema

import (
	"fmt"
)

// Record formatting option
type FormatOption func(*formatOptions)

type formatOptions struct {
	dropExtra     bool
	addDefaults   bool
	ignoreMissing bool
	ignoreExtra   bool
}

func newFormatOptions(opts ...FormatOption) formatOptions {
	o := formatOptions{
		dropExtra:   true,
		addDefaults: true,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Discard attributes not declared by class. Default is true.
//
// If false and IgnoreExtra is false then undeclared attributes are rejected.
func DropExtra(v bool) FormatOption {
	return func(o *formatOptions) { o.dropExtra = v }
}

// Fill absent properties with defaults and generate dependent properties. Default is true
func AddDefaults(v bool) FormatOption {
	return func(o *formatOptions) { o.addDefaults = v }
}

// Do not reject records with absent mandatory properties or edge endpoints. Default is false
func IgnoreMissing(v bool) FormatOption {
	return func(o *formatOptions) { o.ignoreMissing = v }
}

// Keep undeclared attributes without error. Default is false
func IgnoreExtra(v bool) FormatOption {
	return func(o *formatOptions) { o.ignoreExtra = v }
}

// Validates record and returns its normalized copy.
//
// Record is processed in passes:
//  1. undeclared attributes are rejected, if closed schema checking is active;
//     system attributes `@rid` and `@class` are always accepted,
//  2. edge endpoints are checked and casted,
//  3. absent properties are filled with defaults, mandatory properties checked,
//     present properties validated,
//  4. embedded and linked records are formatted recursively,
//  5. record-dependent properties are generated.
//
// Passed record is not modified.
func (cls *Class) FormatRecord(record map[string]any, opts ...FormatOption) (map[string]any, error) {
	return cls.formatRecord(record, newFormatOptions(opts...))
}

func (cls *Class) formatRecord(record map[string]any, o formatOptions) (map[string]any, error) {
	props := cls.propertySet()

	formatted := make(map[string]any, len(props.ordered))
	if !o.dropExtra {
		for k, v := range record {
			formatted[k] = v
		}
		if !o.ignoreExtra {
			for k := range record {
				if k == Attr_RID || k == Attr_Class || cls.isEdge && (k == Attr_Out || k == Attr_In) {
					continue
				}
				if _, ok := props.byName[k]; !ok {
					return nil, recordError(cls.name, k, ErrUnexpectedAttribute)
				}
			}
		}
	}

	if cls.isEdge {
		for _, ep := range []string{Attr_Out, Attr_In} {
			v, ok := record[ep]
			if !ok || v == nil {
				if !o.ignoreMissing {
					return nil, recordError(cls.name, ep, ErrMissingEndpoint)
				}
				continue
			}
			id, err := CastToRID(v)
			if err != nil {
				return nil, recordError(cls.name, ep, &AttributeError{
					error:    fmt.Errorf("%w: failed casting %s: %w", ErrCast, ep, err),
					Property: ep,
					Value:    v,
				})
			}
			formatted[ep] = id
		}
	}

	for _, name := range props.ordered {
		p := props.byName[name]
		v, present := record[name]

		if !present && o.addDefaults && !p.DependencyGenerated() {
			switch d := p.def.(type) {
			case StaticDefault:
				v, present = d.Value, true
			case GenerateDefault:
				gv, err := d()
				if err != nil {
					return nil, recordError(cls.name, name, fmt.Errorf("%w: %w", ErrDefaultGeneration, err))
				}
				v, present = gv, true
			}
		}

		if !present {
			if p.mandatory && !o.ignoreMissing {
				return nil, recordError(cls.name, name, ErrMissingAttribute)
			}
			continue
		}

		cv, err := p.Validate(v)
		if err != nil {
			return nil, recordError(cls.name, name, err)
		}
		formatted[name] = cv
	}

	for _, name := range props.ordered {
		p := props.byName[name]
		v, ok := formatted[name]
		if !ok || v == nil || p.linkedClass == "" {
			continue
		}
		fv, err := cls.formatNested(p, v, o)
		if err != nil {
			return nil, recordError(cls.name, name, err)
		}
		formatted[name] = fv
	}

	if o.addDefaults {
		for _, name := range props.ordered {
			p := props.byName[name]
			gen, ok := p.def.(DependentDefault)
			if !ok {
				continue
			}
			if _, present := formatted[name]; present && !p.generated {
				continue
			}
			gv, err := gen(formatted)
			if err != nil {
				return nil, recordError(cls.name, name, err)
			}
			if gv == nil {
				delete(formatted, name)
				continue
			}
			formatted[name] = gv
		}
	}

	return formatted, nil
}

// Formats embedded or linked structured value. Lists are formatted per element
func (cls *Class) formatNested(p *Property, v any, o formatOptions) (any, error) {
	if !p.iterable {
		if m, ok := v.(map[string]any); ok {
			return cls.formatEmbedded(p, m, o)
		}
		return v, nil
	}

	list, _ := asList(v)
	result := make([]any, 0, len(list))
	for i, el := range list {
		if m, ok := el.(map[string]any); ok {
			fm, err := cls.formatEmbedded(p, m, o)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
			el = fm
		}
		result = append(result, el)
	}
	return result, nil
}

// Formats structured value against property linked class, or against the
// class named by value `@class` attribute if it is a descendant of linked class
func (cls *Class) formatEmbedded(p *Property, value map[string]any, o formatOptions) (map[string]any, error) {
	linked := cls.reg.Class(p.linkedClass)
	target := linked

	if cn, ok := value[Attr_Class]; ok && cn != nil {
		name, _ := cn.(string)
		c := cls.reg.Class(name)
		if c == nil {
			return nil, fmt.Errorf("%w: «%v» is not a known class, expected %s", ErrEmbeddedTypeMismatch, cn, linked)
		}
		if c != linked && !c.InheritsFrom(linked.name) {
			return nil, fmt.Errorf("%w: %s is not %s or its descendant", ErrEmbeddedTypeMismatch, c, linked)
		}
		target = c
	} else if linked.isAbstract {
		return nil, fmt.Errorf("%w to determine the %s subclass", ErrMissingClassAttribute, linked)
	}

	formatted, err := target.formatRecord(value, o)
	if err != nil {
		return nil, err
	}
	if _, declared := target.propertySet().byName[Attr_Class]; declared || !o.dropExtra {
		formatted[Attr_Class] = target.name
	}
	return formatted, nil
}
