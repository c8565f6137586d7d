/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package schema

import (
	"strconv"
	"strings"
)

// Property data kind
type DataKind uint8

var dataKindNames = map[DataKind]string{
	DataKind_null:         "null",
	DataKind_string:       "string",
	DataKind_long:         "long",
	DataKind_link:         "link",
	DataKind_linkset:      "linkset",
	DataKind_integer:      "integer",
	DataKind_embeddedlist: "embeddedlist",
	DataKind_embeddedset:  "embeddedset",
	DataKind_boolean:      "boolean",
	DataKind_embedded:     "embedded",
}

// Returns data kind by its name, like `linkset` or `embedded`.
//
// Returns DataKind_null if name is unknown.
func DataKindFromString(s string) DataKind {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, n := range dataKindNames {
		if n == s {
			return k
		}
	}
	return DataKind_null
}

func (k DataKind) String() string {
	if n, ok := dataKindNames[k]; ok {
		return n
	}
	return "DataKind(" + strconv.FormatUint(uint64(k), 10) + ")"
}

// Returns is data kind denotes multi-valued container
func (k DataKind) IsIterable() bool {
	switch k {
	case DataKind_linkset, DataKind_embeddedlist, DataKind_embeddedset:
		return true
	}
	return false
}

// Returns is data kind refers to other records
func (k DataKind) IsLink() bool {
	return k == DataKind_link || k == DataKind_linkset
}

// Returns is data kind stores records inline
func (k DataKind) IsEmbedded() bool {
	switch k {
	case DataKind_embedded, DataKind_embeddedlist, DataKind_embeddedset:
		return true
	}
	return false
}

// Returns is data kind numeric
func (k DataKind) IsNumeric() bool {
	return k == DataKind_integer || k == DataKind_long
}

func (k DataKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *DataKind) UnmarshalText(text []byte) error {
	if *k = DataKindFromString(string(text)); *k == DataKind_null {
		return ErrInvalid("data kind «%s»", string(text))
	}
	return nil
}

// Access permissions bit mask
type Permission uint8

// Renders permission like `CRUD`, `-R--`
func (p Permission) String() string {
	b := []byte("----")
	if p&Permission_Create != 0 {
		b[0] = 'C'
	}
	if p&Permission_Read != 0 {
		b[1] = 'R'
	}
	if p&Permission_Update != 0 {
		b[2] = 'U'
	}
	if p&Permission_Delete != 0 {
		b[3] = 'D'
	}
	return string(b)
}

// Route operation
type Operation uint8

var operationNames = [Operation_Count]string{"list", "read", "create", "update", "delete"}

func (o Operation) String() string {
	if o < Operation_Count {
		return operationNames[o]
	}
	return "Operation(" + strconv.FormatUint(uint64(o), 10) + ")"
}

func (o Operation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Operation) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for i, n := range operationNames {
		if n == s {
			*o = Operation(i)
			return nil
		}
	}
	return ErrInvalid("route operation «%s»", s)
}

// Index type, like `UNIQUE_HASH_INDEX`
type IndexType string

// Returns is index supports fast equality lookups
func (t IndexType) IsHash() bool {
	return t == IndexType_UniqueHash || t == IndexType_NotUniqueHash
}

// Returns is index is full text index
func (t IndexType) IsFulltext() bool {
	return strings.HasPrefix(string(t), string(IndexType_Fulltext))
}

// Returns is index enforces uniqueness
func (t IndexType) IsUnique() bool {
	return t == IndexType_Unique || t == IndexType_UniqueHash
}

// Cast function. Converts raw value to canonical form or returns error
type CastFunc func(any) (any, error)

// Check predicate. Runs on already casted value
type CheckFunc func(any) bool

// Default value specification.
//
// One of:
//   - StaticDefault
//   - GenerateDefault
//   - DependentDefault
type DefaultValue interface {
	isDefaultValue()
}

// Static default value
type StaticDefault struct {
	Value any
}

// Zero-argument default value generator
type GenerateDefault func() (any, error)

// Record-dependent default value generator.
//
// Called with the record formatted so far, after all other properties are resolved.
type DependentDefault func(record map[string]any) (any, error)

func (StaticDefault) isDefaultValue()    {}
func (GenerateDefault) isDefaultValue()  {}
func (DependentDefault) isDefaultValue() {}

// Returns static default value specification
func Static(v any) DefaultValue { return StaticDefault{v} }

// Declarative property description.
type PropertyDescription struct {
	Name        string
	Type        DataKind
	Description string

	// Nil means nullable
	Nullable  *bool
	Mandatory bool
	NonEmpty  bool

	Min      *float64
	Max      *float64
	MinItems *int
	MaxItems *int

	Pattern string
	Choices []any

	LinkedClass string

	// Generated properties are produced by engine. Generated record-dependent
	// properties are always regenerated by FormatRecord
	Generated bool
	Default   DefaultValue

	Cast  CastFunc
	Check CheckFunc

	Indexed         bool
	FulltextIndexed bool

	Example any
}

// Declarative index description
type IndexDescription struct {
	Name             string
	Type             IndexType
	Properties       []string
	Class            string
	IgnoreNullValues bool
}

// Declarative class description
type ClassDescription struct {
	Name        string
	Description string
	Inherits    []string

	IsAbstract bool
	IsEdge     bool
	Embedded   bool

	// Overrides for permission groups. Groups not listed get defaults
	Permissions map[string]Permission

	// Overrides for route exposure. Operations not listed get defaults
	Routes map[Operation]bool

	// Explicit route name. Derived from class name if empty
	RouteName string

	SourceModel string
	TargetModel string
	ReverseName string

	Properties []PropertyDescription
	Indices    []IndexDescription
}

// Group of class descriptions keyed by class name
type Descriptions map[string]ClassDescription
