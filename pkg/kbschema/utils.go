/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package kbschema

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/exp/slices"

	"github.com/voedger/kbschema/pkg/schema"
)

// Casts class name. Unlike other strings class names keep their case
func castClassName(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("%v (%T) is not a class name", v, v)
	}
	return strings.TrimSpace(s), nil
}

// Casts string keeping its case
func castTrimmed(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("%v (%T) is not a string", v, v)
	}
	return strings.TrimSpace(s), nil
}

// Casts string to upper case
func castUpper(v any) (any, error) {
	s, err := castTrimmed(v)
	if err != nil {
		return nil, err
	}
	return strings.ToUpper(s.(string)), nil
}

// Returns current time in milliseconds since epoch
func timestamp() (any, error) {
	return time.Now().UnixMilli(), nil
}

func link(name, class string) schema.PropertyDescription {
	return schema.PropertyDescription{Name: name, Type: schema.DataKind_link, LinkedClass: class}
}

func requiredLink(name, class string) schema.PropertyDescription {
	p := link(name, class)
	p.Mandatory = true
	p.Nullable = schema.Ptr(false)
	return p
}

func linkset(name, class string) schema.PropertyDescription {
	return schema.PropertyDescription{Name: name, Type: schema.DataKind_linkset, LinkedClass: class}
}

// Returns index which gives the uniqueness identity of not deleted records
func activeIndex(class string, props ...string) schema.IndexDescription {
	return schema.IndexDescription{
		Name:       class + schema.ActiveIndexSuffix,
		Type:       schema.IndexType_Unique,
		Properties: append(slices.Clone(props), Attr_DeletedAt),
	}
}
