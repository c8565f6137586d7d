/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package schema

import (
	"errors"
	"fmt"
)

func EnrichError(err error, msg string, args ...any) error {
	s := msg
	if len(args) > 0 {
		s = fmt.Sprintf(msg, args...)
	}
	return fmt.Errorf("%w: %s", err, s)
}

// Registration errors

var ErrNameMissed = errors.New("name missed")

var ErrNameNotFound = errors.New("name not found")

var ErrNameUniqueViolation = errors.New("duplicate name")

var ErrCyclicInheritance = errors.New("cyclic inheritance")

var ErrCyclicDependency = errors.New("cyclic class dependency")

var ErrInvalidError = errors.New("not valid")

func ErrInvalid(msg string, args ...any) error {
	return EnrichError(ErrInvalidError, msg, args...)
}

// Lookup errors

var ErrClassNotFound = errors.New("class not found")

// Attribute (per-property) errors

var (
	ErrTooManyValues     = errors.New("too many values")
	ErrNullViolation     = errors.New("null constraint violated")
	ErrCast              = errors.New("cast failed")
	ErrEmptyValue        = errors.New("empty value")
	ErrMinViolation      = errors.New("minimum value constraint violated")
	ErrMaxViolation      = errors.New("maximum value constraint violated")
	ErrPatternViolation  = errors.New("pattern constraint violated")
	ErrChoicesViolation  = errors.New("choices constraint violated")
	ErrCheckViolation    = errors.New("check constraint violated")
	ErrMinItemsViolation = errors.New("minimum items constraint violated")
	ErrMaxItemsViolation = errors.New("maximum items constraint violated")
	ErrDefaultGeneration = errors.New("default value generation failed")
)

// Record shape errors

var (
	ErrUnexpectedAttribute   = errors.New("unexpected attribute")
	ErrMissingAttribute      = errors.New("missing required attribute")
	ErrMissingEndpoint       = errors.New("missing required edge endpoint")
	ErrEmbeddedTypeMismatch  = errors.New("embedded type mismatch")
	ErrMissingClassAttribute = errors.New("must include the " + Attr_Class + " attribute")
	ErrIncompleteRange       = errors.New("both start and end are required to define a range")
)

// Error of a single property value.
//
// Wraps one of attribute errors, like ErrCast or ErrMinViolation
type AttributeError struct {
	error

	// Property name
	Property string

	// Offending value, if any
	Value any

	// Violated bound, pattern or choices, if any
	Limit any
}

func (e *AttributeError) Unwrap() error {
	return e.error
}

func attributeError(kind error, prop string, value, limit any, msg string, args ...any) *AttributeError {
	return &AttributeError{
		error:    EnrichError(kind, msg, args...),
		Property: prop,
		Value:    value,
		Limit:    limit,
	}
}

// Error of the record formatting.
//
// Property is empty for errors related to whole record
type RecordError struct {
	error

	// Class name
	Class string

	// Property name
	Property string
}

func (e *RecordError) Unwrap() error {
	return e.error
}

func (e *RecordError) Error() string {
	if e.Property == "" {
		return fmt.Sprintf("%s: %v", e.Class, e.error)
	}
	return fmt.Sprintf("%s.%s: %v", e.Class, e.Property, e.error)
}

func recordError(class, prop string, err error) *RecordError {
	return &RecordError{error: err, Class: class, Property: prop}
}
