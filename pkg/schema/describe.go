/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package schema

import (
	"encoding/json"
)

// JSON-ready description of the class, with own and inherited properties
type ClassInfo struct {
	Name        string
	Description string             `json:",omitempty"`
	Inherits    []string           `json:",omitempty"`
	IsAbstract  bool               `json:",omitempty"`
	IsEdge      bool               `json:",omitempty"`
	Embedded    bool               `json:",omitempty"`
	RouteName   string             `json:",omitempty"`
	Routes      []Operation        `json:",omitempty"`
	Permissions map[string]string  `json:",omitempty"`
	ReverseName string             `json:",omitempty"`
	SourceModel string             `json:",omitempty"`
	TargetModel string             `json:",omitempty"`
	Properties  []*PropertyInfo    `json:",omitempty"`
	Indices     []IndexDescription `json:",omitempty"`
}

// JSON-ready description of the property
type PropertyInfo struct {
	Name            string
	Type            DataKind
	Description     string `json:",omitempty"`
	Mandatory       bool   `json:",omitempty"`
	Nullable        bool
	NonEmpty        bool     `json:",omitempty"`
	Min             *float64 `json:",omitempty"`
	Max             *float64 `json:",omitempty"`
	MinItems        *int     `json:",omitempty"`
	MaxItems        *int     `json:",omitempty"`
	Pattern         string   `json:",omitempty"`
	Choices         []any    `json:",omitempty"`
	LinkedClass     string   `json:",omitempty"`
	Iterable        bool     `json:",omitempty"`
	Generated       bool     `json:",omitempty"`
	Default         any      `json:",omitempty"`
	Indexed         bool     `json:",omitempty"`
	FulltextIndexed bool     `json:",omitempty"`
	Example         any      `json:",omitempty"`
}

// Returns class description
func (cls *Class) Describe() *ClassInfo {
	info := &ClassInfo{}
	info.read(cls)
	return info
}

func (cls *Class) MarshalJSON() ([]byte, error) {
	return json.Marshal(cls.Describe())
}

func (info *ClassInfo) read(cls *Class) {
	info.Name = cls.name
	info.Description = cls.description
	info.Inherits = cls.Inherits()
	info.IsAbstract = cls.isAbstract
	info.IsEdge = cls.isEdge
	info.Embedded = cls.embedded
	info.RouteName = cls.routeName
	info.Routes = cls.Routes()
	info.ReverseName = cls.reverseName
	info.SourceModel = cls.sourceModel
	info.TargetModel = cls.targetModel
	info.Indices = cls.Indices()

	info.Permissions = make(map[string]string, len(cls.permissions))
	for g, p := range cls.permissions {
		info.Permissions[g] = p.String()
	}

	cls.propertySet().each(func(p *Property) {
		pi := &PropertyInfo{}
		pi.read(p)
		info.Properties = append(info.Properties, pi)
	})
}

func (info *PropertyInfo) read(p *Property) {
	info.Name = p.name
	info.Type = p.kind
	info.Description = p.description
	info.Mandatory = p.mandatory
	info.Nullable = p.nullable
	info.NonEmpty = p.nonEmpty
	info.Min = p.min
	info.Max = p.max
	info.MinItems = p.minItems
	info.MaxItems = p.maxItems
	info.Pattern = p.Pattern()
	info.Choices = p.Choices()
	info.LinkedClass = p.linkedClass
	info.Iterable = p.iterable
	info.Generated = p.generated
	if d, ok := p.def.(StaticDefault); ok {
		info.Default = d.Value
	}
	info.Indexed = p.indexed
	info.FulltextIndexed = p.fulltextIndexed
	info.Example = p.example
}
