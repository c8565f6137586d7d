/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package schema

import (
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Ordered set of properties
type propertySet struct {
	byName  map[string]*Property
	ordered []string
}

func newPropertySet() *propertySet {
	return &propertySet{byName: make(map[string]*Property)}
}

// Sets property, replacing property with the same name if any
func (ps *propertySet) set(p *Property) {
	if _, ok := ps.byName[p.name]; !ok {
		ps.ordered = append(ps.ordered, p.name)
	}
	ps.byName[p.name] = p
}

// Adds property if there is no property with the same name
func (ps *propertySet) add(p *Property) {
	if _, ok := ps.byName[p.name]; !ok {
		ps.set(p)
	}
}

func (ps *propertySet) each(cb func(*Property)) {
	for _, n := range ps.ordered {
		cb(ps.byName[n])
	}
}

// Returns names of all transitive parents.
//
// Direct parents are listed in declaration order, each followed by its own
// ancestors. Classes reachable by several paths are listed several times.
func (cls *Class) Ancestors() []string {
	aa := make([]string, 0, len(cls.parents))
	for _, p := range cls.parents {
		aa = append(aa, p.name)
		aa = append(aa, p.Ancestors()...)
	}
	return aa
}

// Returns is class inherits from specified class, directly or transitively
func (cls *Class) InheritsFrom(name string) bool {
	for _, p := range cls.parents {
		if p.is(name) || p.InheritsFrom(name) {
			return true
		}
	}
	return false
}

// Returns names of direct children
func (cls *Class) Children() []string {
	cc := cls.reg.children[strings.ToLower(cls.name)]
	names := make([]string, 0, len(cc))
	for _, c := range cc {
		names = append(names, c.name)
	}
	return names
}

// Returns names of all transitive children in breadth-first order.
//
// If excludeAbstract then abstract classes are omitted from result, but their
// children are still visited.
func (cls *Class) Descendants(excludeAbstract, includeSelf bool) []string {
	names := make([]string, 0)
	accept := func(c *Class) {
		if !excludeAbstract || !c.isAbstract {
			names = append(names, c.name)
		}
	}

	if includeSelf {
		accept(cls)
	}

	visited := map[*Class]bool{cls: true}
	queue := []*Class{cls}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, child := range cls.reg.children[strings.ToLower(c.name)] {
			if visited[child] {
				continue
			}
			visited[child] = true
			queue = append(queue, child)
			accept(child)
		}
	}
	return names
}

// Returns class with all ancestors. Every class is listed after all of its
// ancestors. Where two parents conflict, the first declared parent comes later.
func (cls *Class) linearization() []*Class {
	var (
		result  []*Class
		visited = make(map[*Class]bool)
		visit   func(*Class)
	)
	visit = func(c *Class) {
		if visited[c] {
			return
		}
		visited[c] = true
		for i := len(c.parents) - 1; i >= 0; i-- {
			visit(c.parents[i])
		}
		result = append(result, c)
	}
	visit(cls)
	return result
}

// Returns merged properties.
//
// Own properties are overlaid onto ancestors properties, ancestors first, so
// more specific declaration always overrides ancestor declaration.
func (cls *Class) propertySet() *propertySet {
	key := "p/" + cls.name
	if ps, ok := cls.reg.propsCache.Get(key); ok {
		return ps
	}

	ps := newPropertySet()
	for _, c := range cls.linearization() {
		for _, n := range c.propsOrdered {
			ps.set(c.props[n])
		}
	}

	cls.reg.propsCache.Add(key, ps)
	return ps
}

// Returns merged properties plus properties of descendants.
//
// Descendant properties are visited breadth-first, first declaration wins.
func (cls *Class) queryablePropertySet() *propertySet {
	key := "q/" + cls.name
	if ps, ok := cls.reg.propsCache.Get(key); ok {
		return ps
	}

	ps := newPropertySet()
	cls.propertySet().each(ps.set)
	for _, d := range cls.Descendants(false, false) {
		cls.reg.Class(d).propertySet().each(ps.add)
	}

	cls.reg.propsCache.Add(key, ps)
	return ps
}

// Returns own and inherited properties by name
func (cls *Class) Properties() map[string]*Property {
	return maps.Clone(cls.propertySet().byName)
}

// Returns own and inherited property names, ancestors properties first
func (cls *Class) PropertyNames() []string {
	return slices.Clone(cls.propertySet().ordered)
}

// Returns own or inherited property by name.
//
// Returns nil if not found.
func (cls *Class) Property(name string) *Property {
	return cls.propertySet().byName[name]
}

// Returns names of mandatory properties
func (cls *Class) RequiredProperties() []string {
	names := make([]string, 0)
	cls.propertySet().each(func(p *Property) {
		if p.mandatory {
			names = append(names, p.name)
		}
	})
	return names
}

// Returns names of not mandatory properties
func (cls *Class) OptionalProperties() []string {
	names := make([]string, 0)
	cls.propertySet().each(func(p *Property) {
		if !p.mandatory {
			names = append(names, p.name)
		}
	})
	return names
}

// Returns properties available to query class, which instances may be of
// any descendant class
func (cls *Class) QueryableProperties() map[string]*Property {
	return maps.Clone(cls.queryablePropertySet().byName)
}

// Returns properties of the active index, which is the practical uniqueness
// identity of not deleted records.
//
// Active index of class is named by class name with `.active` suffix. If
// class has no own active index, then closest ancestor active index is used.
//
// Returns nil if no active index found.
func (cls *Class) ActiveProperties() []string {
	cc := cls.linearization()
	for i := len(cc) - 1; i >= 0; i-- {
		c := cc[i]
		for _, idx := range c.indices {
			if strings.EqualFold(idx.Name, c.name+ActiveIndexSuffix) {
				return slices.Clone(idx.Properties)
			}
		}
	}
	return nil
}
