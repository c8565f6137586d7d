/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// Returns value as list and is value was list.
//
// Byte slices and strings are scalars.
func asList(v any) ([]any, bool) {
	switch x := v.(type) {
	case nil:
		return []any{nil}, false
	case []any:
		return x, true
	case []byte:
		return []any{x}, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return []any{v}, false
	}
	l := make([]any, rv.Len())
	for i := range l {
		l[i] = rv.Index(i).Interface()
	}
	return l, true
}

// Returns numeric value as float64
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func joinAny(l []any, sep string) string {
	s := make([]string, 0, len(l))
	for _, v := range l {
		s = append(s, fmt.Sprint(v))
	}
	return strings.Join(s, sep)
}

// Returns pointer to copy of value. Useful for optional description fields
func Ptr[T any](v T) *T {
	return &v
}
