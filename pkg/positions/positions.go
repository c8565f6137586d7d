/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package positions

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/voedger/kbschema/pkg/schema"
)

// Returns notation prefix for position class, like `p` for ProteinPosition
func Prefix(class string) (string, bool) {
	p, ok := prefixes[class]
	return p, ok
}

// Renders single position without prefix, like `A12` or `12+3`
func Format(pos map[string]any) (string, error) {
	class, _ := pos[schema.Attr_Class].(string)
	switch class {
	case Class_ProteinPosition:
		aa, _ := pos[Attr_RefAA].(string)
		if aa == "" {
			aa = unknown
		}
		return aa + number(pos[Attr_Pos]), nil
	case Class_CdsPosition, Class_RnaPosition, Class_NonCdsPosition:
		s := number(pos[Attr_Pos])
		if off, ok := toInt(pos[Attr_Offset]); ok && off != 0 {
			if off > 0 {
				s += "+"
			}
			s += strconv.FormatInt(off, 10)
		}
		return s, nil
	case Class_CytobandPosition:
		arm, _ := pos[Attr_Arm].(string)
		s := arm
		if _, ok := toInt(pos[Attr_MajorBand]); ok {
			s += number(pos[Attr_MajorBand])
			if _, ok := toInt(pos[Attr_MinorBand]); ok {
				s += "." + number(pos[Attr_MinorBand])
			}
		}
		return s, nil
	case Class_GenomicPosition, Class_ExonicPosition, Class_IntronicPosition:
		return number(pos[Attr_Pos]), nil
	}
	return "", fmt.Errorf("«%v» is not a position class: %w", pos[schema.Attr_Class], schema.ErrEmbeddedTypeMismatch)
}

// Builds breakpoint notation from start and optional end positions,
// like `p.A1` or `e.(1_3)`.
//
// Returns nil if both positions are nil. Returns schema.ErrIncompleteRange if
// end is specified without start.
func BreakRepr(start, end any) (any, error) {
	if start == nil && end == nil {
		return nil, nil
	}
	if start == nil {
		return nil, schema.ErrIncompleteRange
	}

	s, ok := start.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("start position %v (%T) is not a record: %w", start, start, schema.ErrEmbeddedTypeMismatch)
	}
	class, _ := s[schema.Attr_Class].(string)
	prefix, ok := Prefix(class)
	if !ok {
		return nil, fmt.Errorf("start position class «%s»: %w", class, schema.ErrEmbeddedTypeMismatch)
	}
	startRepr, err := Format(s)
	if err != nil {
		return nil, err
	}

	if end == nil {
		return prefix + "." + startRepr, nil
	}

	e, ok := end.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("end position %v (%T) is not a record: %w", end, end, schema.ErrEmbeddedTypeMismatch)
	}
	if ec, _ := e[schema.Attr_Class].(string); ec != class {
		return nil, fmt.Errorf("start %s and end %s positions must be of the same class: %w", class, ec, schema.ErrEmbeddedTypeMismatch)
	}
	endRepr, err := Format(e)
	if err != nil {
		return nil, err
	}
	return prefix + ".(" + startRepr + "_" + endRepr + ")", nil
}

// Returns record-dependent default which builds breakpoint notation from
// specified start and end attributes
func BreakReprDefault(startAttr, endAttr string) schema.DependentDefault {
	return func(record map[string]any) (any, error) {
		return BreakRepr(record[startAttr], record[endAttr])
	}
}

// Casts amino acid to upper case
func CastAminoAcid(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("%v (%T) is not an amino acid", v, v)
	}
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return nil, fmt.Errorf("amino acid can not be empty")
	}
	return s, nil
}

// Casts position offset, which may be negative
func CastOffset(v any) (any, error) {
	if n, ok := toInt(v); ok {
		return n, nil
	}
	if s, ok := v.(string); ok {
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("«%s» is not a valid offset: %w", s, err)
		}
		return n, nil
	}
	return nil, fmt.Errorf("%v (%T) is not a valid offset", v, v)
}

func number(v any) string {
	if n, ok := toInt(v); ok {
		return strconv.FormatInt(n, 10)
	}
	return unknown
}

func toInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		if n == float64(int64(n)) {
			return int64(n), true
		}
	}
	return 0, false
}
