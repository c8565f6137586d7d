/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package schema

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Class definition.
//
// Class is immutable after registry is built.
type Class struct {
	reg          *registry
	name         string
	description  string
	inherits     []string
	parents      []*Class
	isAbstract   bool
	isEdge       bool
	embedded     bool
	permissions  map[string]Permission
	routes       [Operation_Count]bool
	routeName    string
	indices      []IndexDescription
	reverseName  string
	sourceModel  string
	targetModel  string
	props        map[string]*Property
	propsOrdered []string
}

// Builds class from description.
//
// Edge flag is forced if source or target model is set. Routes and permissions
// not overridden by description are derived from class kind. Single property
// indices mark their property as indexed or full text indexed.
func newClass(reg *registry, d ClassDescription) (*Class, error) {
	if d.Name == "" {
		return nil, fmt.Errorf("class name is empty: %w", ErrNameMissed)
	}

	cls := &Class{
		reg:         reg,
		name:        d.Name,
		description: d.Description,
		inherits:    slices.Clone(d.Inherits),
		isAbstract:  d.IsAbstract,
		isEdge:      d.IsEdge || d.SourceModel != "" || d.TargetModel != "",
		embedded:    d.Embedded,
		reverseName: d.ReverseName,
		sourceModel: d.SourceModel,
		targetModel: d.TargetModel,
		props:       make(map[string]*Property, len(d.Properties)),
	}

	cls.routes = defaultRoutes(cls.isAbstract, cls.embedded, cls.isEdge)
	for op, exposed := range d.Routes {
		if op >= Operation_Count {
			return nil, fmt.Errorf("class «%s» route override %v: %w", d.Name, op, ErrInvalidError)
		}
		cls.routes[op] = exposed
	}

	cls.permissions = defaultPermissions(cls.routes)
	for group, p := range d.Permissions {
		cls.permissions[group] = p
	}

	cls.routeName = d.RouteName
	if cls.routeName == "" {
		cls.routeName = RouteName(cls.name, cls.isEdge)
	}

	props := slices.Clone(d.Properties)
	for _, idx := range d.Indices {
		if idx.Class == "" {
			idx.Class = cls.name
		}
		idx.Properties = slices.Clone(idx.Properties)
		cls.indices = append(cls.indices, idx)

		if len(idx.Properties) != 1 {
			continue
		}
		for i := range props {
			if props[i].Name != idx.Properties[0] {
				continue
			}
			switch {
			case idx.Type.IsHash():
				props[i].Indexed = true
			case idx.Type.IsFulltext():
				props[i].FulltextIndexed = true
			}
		}
	}

	var err error
	for _, pd := range props {
		p, e := NewProperty(pd)
		if e != nil {
			err = errors.Join(err, fmt.Errorf("class «%s»: %w", cls.name, e))
			continue
		}
		if _, exists := cls.props[p.Name()]; exists {
			err = errors.Join(err, fmt.Errorf("class «%s» property «%s» is already exists: %w", cls.name, p.Name(), ErrNameUniqueViolation))
			continue
		}
		cls.props[p.Name()] = p
		cls.propsOrdered = append(cls.propsOrdered, p.Name())
	}

	return cls, err
}

// Routes exposed by default.
//
// Abstract and embedded classes expose nothing, edges expose all but update,
// concrete vertices expose all.
func defaultRoutes(isAbstract, embedded, isEdge bool) (r [Operation_Count]bool) {
	if isAbstract || embedded {
		return r
	}
	for op := Operation(0); op < Operation_Count; op++ {
		r[op] = true
	}
	if isEdge {
		r[Operation_Update] = false
	}
	return r
}

// Permissions derived from routes exposure
func defaultPermissions(routes [Operation_Count]bool) map[string]Permission {
	p := Permission_None
	if routes[Operation_List] || routes[Operation_Read] {
		p |= Permission_Read
	}
	if routes[Operation_Create] {
		p |= Permission_Create
	}
	if routes[Operation_Update] {
		p |= Permission_Update
	}
	if routes[Operation_Delete] {
		p |= Permission_Delete
	}
	return map[string]Permission{
		PermissionGroup_Default:  p,
		PermissionGroup_Readonly: Permission_Read,
	}
}

func (cls *Class) Name() string        { return cls.name }
func (cls *Class) Description() string { return cls.description }
func (cls *Class) IsAbstract() bool    { return cls.isAbstract }
func (cls *Class) IsEdge() bool        { return cls.isEdge }
func (cls *Class) Embedded() bool      { return cls.embedded }
func (cls *Class) RouteName() string   { return cls.routeName }
func (cls *Class) ReverseName() string { return cls.reverseName }
func (cls *Class) SourceModel() string { return cls.sourceModel }
func (cls *Class) TargetModel() string { return cls.targetModel }

// Returns names of direct parents in declaration order
func (cls *Class) Inherits() []string { return slices.Clone(cls.inherits) }

// Returns permission of specified group and is group exists
func (cls *Class) Permission(group string) (Permission, bool) {
	p, ok := cls.permissions[group]
	return p, ok
}

// Returns copy of permissions map
func (cls *Class) Permissions() map[string]Permission {
	return maps.Clone(cls.permissions)
}

// Returns is operation exposed
func (cls *Class) Route(op Operation) bool {
	return op < Operation_Count && cls.routes[op]
}

// Returns exposed operations
func (cls *Class) Routes() []Operation {
	ops := make([]Operation, 0, Operation_Count)
	for op := Operation(0); op < Operation_Count; op++ {
		if cls.routes[op] {
			ops = append(ops, op)
		}
	}
	return ops
}

// Returns copy of class indices
func (cls *Class) Indices() []IndexDescription {
	ii := make([]IndexDescription, 0, len(cls.indices))
	for _, i := range cls.indices {
		i.Properties = slices.Clone(i.Properties)
		ii = append(ii, i)
	}
	return ii
}

// Returns property declared by class itself, not inherited.
//
// Returns nil if not found.
func (cls *Class) OwnProperty(name string) *Property {
	return cls.props[name]
}

// Returns properties declared by class itself in declaration order
func (cls *Class) OwnProperties() []*Property {
	pp := make([]*Property, 0, len(cls.propsOrdered))
	for _, n := range cls.propsOrdered {
		pp = append(pp, cls.props[n])
	}
	return pp
}

func (cls *Class) String() string {
	return cls.name
}

func (cls *Class) is(name string) bool {
	return strings.EqualFold(cls.name, name)
}
