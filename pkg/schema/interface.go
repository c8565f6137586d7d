/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package schema

// Schema registry.
//
// Registry is immutable and safe for concurrent use.
type IRegistry interface {
	// Returns class by case-insensitive name, edge reverse name, *Class
	// or record with `@class` attribute.
	//
	// If strict and class is not found then returns ErrClassNotFound,
	// else returns nil class and nil error.
	Get(nameOrRecord any, strict bool) (*Class, error)

	// Returns class by name or reverse name.
	//
	// Returns nil if not found.
	Class(name string) *Class

	// Returns is class exists
	Has(nameOrRecord any) bool

	// Returns class by route name, like `/diseases`
	GetFromRoute(route string) (*Class, error)

	// Returns is child class inherits from parent class
	InheritsFrom(child, parent string) bool

	// Returns all classes sorted by name
	Models() []*Class

	// Returns edge classes sorted by name
	EdgeModels() []*Class

	// Validates and normalizes record of specified class
	FormatRecord(class string, record map[string]any, opts ...FormatOption) (map[string]any, error)

	// Returns class names split into levels.
	//
	// Every class dependency (ancestors, linked classes and edge endpoint
	// classes) is placed into a strictly earlier level, except bootstrap
	// classes, which all are placed into the first level.
	SplitClassLevels() [][]string
}

// Schema registry builder
type IRegistryBuilder interface {
	// Adds groups of class descriptions. Duplicate class names across
	// all groups are reported by Build
	AddDescriptions(groups ...Descriptions) IRegistryBuilder

	// Adds class descriptions as single group
	AddClasses(classes ...ClassDescription) IRegistryBuilder

	// Sets size of merged properties cache
	SetPropertiesCacheSize(size int) IRegistryBuilder

	// Builds and validates registry.
	//
	// Returns error if any name reference is unresolved, class names are
	// duplicated, inheritance has cycles or classes dependencies can not
	// be levelled.
	Build() (IRegistry, error)

	// Builds registry.
	//
	// # Panics:
	//   - if Build returns error
	MustBuild() IRegistry
}
