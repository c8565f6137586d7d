/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package schema

import (
	"fmt"
	"math"
	"net/mail"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/voedger/kbschema/pkg/rid"
)

var (
	digitsPattern     = regexp.MustCompile(`^\d+$`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Casts value to non-negative integer.
//
// Accepts integers, integral non-negative floats and digit-only strings.
func CastInteger(v any) (any, error) {
	switch n := v.(type) {
	case int:
		return castSigned(int64(n))
	case int32:
		return castSigned(int64(n))
	case int64:
		return castSigned(n)
	case uint32:
		return int64(n), nil
	case float64:
		if n < 0 || n != math.Trunc(n) || n >= math.MaxInt64 {
			return nil, fmt.Errorf("%v is not a valid integer", n)
		}
		return int64(n), nil
	case string:
		s := strings.TrimSpace(n)
		if !digitsPattern.MatchString(s) {
			return nil, fmt.Errorf("«%s» is not a valid integer", n)
		}
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("«%s» is not a valid integer: %w", n, err)
		}
		return i, nil
	}
	return nil, fmt.Errorf("%v (%T) is not a valid integer", v, v)
}

func castSigned(n int64) (any, error) {
	if n < 0 {
		return nil, fmt.Errorf("%d is not a valid integer", n)
	}
	return n, nil
}

// Casts value to lower cased string with trimmed and collapsed whitespaces
func CastString(v any) (any, error) {
	var s string
	switch x := v.(type) {
	case nil:
		return nil, fmt.Errorf("null is not a string")
	case string:
		s = x
	case fmt.Stringer:
		s = x.String()
	case map[string]any, []any:
		return nil, fmt.Errorf("%T is not a string", v)
	default:
		s = fmt.Sprint(x)
	}
	// cases.Caser is stateful, so new one is created for each call
	s = cases.Lower(language.Und).String(s)
	return whitespacePattern.ReplaceAllString(strings.TrimSpace(s), " "), nil
}

// Casts value as CastString does and rejects empty result
func CastNonEmptyString(v any) (any, error) {
	s, err := CastString(v)
	if err != nil {
		return nil, err
	}
	if s == "" {
		return nil, fmt.Errorf("cannot be an empty string: %w", ErrEmptyValue)
	}
	return s, nil
}

// Returns nil for nil value, else casts as CastString does
func CastNullableString(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	return CastString(v)
}

// Returns nil for nil value, else casts as CastNonEmptyString does
func CastNonEmptyNullableString(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	return CastNonEmptyString(v)
}

// Casts value to record identifier.
//
// Accepts record identifier, object with `@rid` attribute or identifier-shaped string.
func CastToRID(v any) (any, error) {
	switch x := v.(type) {
	case rid.RecordID:
		if err := x.Validate(); err != nil {
			return nil, err
		}
		return x, nil
	case *rid.RecordID:
		if x == nil {
			return nil, fmt.Errorf("null is not a record identifier")
		}
		return CastToRID(*x)
	case string:
		return rid.Parse(x)
	case map[string]any:
		if id, ok := x[Attr_RID]; ok && id != nil {
			return CastToRID(id)
		}
		return nil, fmt.Errorf("object has no %s attribute", Attr_RID)
	}
	return nil, fmt.Errorf("%v (%T) is not a record identifier", v, v)
}

// Returns nil for nil value, else casts as CastToRID does
func CastNullableLink(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	return CastToRID(v)
}

// Casts value to lower cased canonical UUID string. UUID must be version 4
func CastUUID(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		if u, ok := v.(uuid.UUID); ok {
			s = u.String()
		} else {
			return nil, fmt.Errorf("%v (%T) is not a UUID", v, v)
		}
	}
	u, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("«%s» is not a UUID: %w", s, err)
	}
	if u.Version() != 4 {
		return nil, fmt.Errorf("«%s» is UUID version %d, version 4 expected", s, u.Version())
	}
	return u.String(), nil
}

// Casts value to lower cased email address
func CastEmail(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("%v (%T) is not an email", v, v)
	}
	s = strings.ToLower(strings.TrimSpace(s))
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return nil, fmt.Errorf("«%s» is not a valid email", s)
	}
	return s, nil
}

// Returns is value is valid version 4 UUID string
func IsUUIDv4(s string) bool {
	_, err := CastUUID(s)
	return err == nil
}

// Generates new version 4 UUID string. Used as default generator
func NewUUID() (any, error) {
	u, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}
	return u.String(), nil
}

// Returns default cast function for data kind, nullability and non-emptiness.
//
// Returns nil if kind has no default cast.
func defaultCast(kind DataKind, nullable, nonEmpty bool) CastFunc {
	switch kind {
	case DataKind_integer, DataKind_long:
		return CastInteger
	case DataKind_string:
		switch {
		case !nullable && nonEmpty:
			return CastNonEmptyString
		case !nullable:
			return CastString
		case nonEmpty:
			return CastNonEmptyNullableString
		default:
			return CastNullableString
		}
	case DataKind_link, DataKind_linkset:
		if nullable {
			return CastNullableLink
		}
		return CastToRID
	}
	return nil
}
