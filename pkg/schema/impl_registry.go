/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package schema

import (
	"errors"
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/voedger/kbschema/pkg/goutils/logger"
)

// # Implements:
//   - IRegistryBuilder
type registryBuilder struct {
	groups    []Descriptions
	cacheSize int
}

func newRegistryBuilder() *registryBuilder {
	return &registryBuilder{cacheSize: DefaultPropertiesCacheSize}
}

func (b *registryBuilder) AddDescriptions(groups ...Descriptions) IRegistryBuilder {
	b.groups = append(b.groups, groups...)
	return b
}

func (b *registryBuilder) AddClasses(classes ...ClassDescription) IRegistryBuilder {
	g := make(Descriptions, len(classes))
	for _, c := range classes {
		if c.Name == "" {
			panic(fmt.Errorf("class name is empty: %w", ErrNameMissed))
		}
		if _, exists := g[c.Name]; exists {
			panic(fmt.Errorf("class «%s» is already added: %w", c.Name, ErrNameUniqueViolation))
		}
		g[c.Name] = c
	}
	return b.AddDescriptions(g)
}

func (b *registryBuilder) SetPropertiesCacheSize(size int) IRegistryBuilder {
	b.cacheSize = size
	return b
}

func (b *registryBuilder) Build() (IRegistry, error) {
	descs, err := MergeDescriptions(b.groups...)
	if err != nil {
		return nil, err
	}
	reg, err := buildRegistry(descs, b.cacheSize)
	if err != nil {
		return nil, err
	}
	return reg, nil
}

func (b *registryBuilder) MustBuild() IRegistry {
	reg, err := b.Build()
	if err != nil {
		panic(err)
	}
	return reg
}

// # Implements:
//   - IRegistry
type registry struct {
	classes    map[string]*Class
	reverse    map[string]*Class
	routes     map[string]*Class
	children   map[string][]*Class
	ordered    []*Class
	levels     [][]string
	propsCache *lru.Cache[string, *propertySet]
}

// Builds classes from descriptions, then links them.
//
// Link pass resolves parents, linked classes and edge endpoints, checks
// inheritance for cycles, checks index properties and splits classes into levels.
func buildRegistry(descs Descriptions, cacheSize int) (*registry, error) {
	cache, err := lru.New[string, *propertySet](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("properties cache: %w", err)
	}

	reg := &registry{
		classes:    make(map[string]*Class, len(descs)),
		reverse:    make(map[string]*Class),
		routes:     make(map[string]*Class, len(descs)),
		children:   make(map[string][]*Class),
		propsCache: cache,
	}

	names := maps.Keys(descs)
	slices.Sort(names)
	for _, key := range names {
		d := descs[key]
		if d.Name == "" {
			d.Name = key
		}
		if !strings.EqualFold(d.Name, key) {
			err = errors.Join(err, fmt.Errorf("class «%s» is described with key «%s»: %w", d.Name, key, ErrInvalidError))
			continue
		}
		cls, e := newClass(reg, d)
		if e != nil {
			err = errors.Join(err, e)
			continue
		}
		reg.classes[strings.ToLower(cls.name)] = cls
		reg.ordered = append(reg.ordered, cls)
	}
	slices.SortFunc(reg.ordered, func(a, b *Class) bool { return a.name < b.name })

	err = errors.Join(err, reg.link())
	if err != nil {
		return nil, err
	}

	if err := reg.checkInheritanceCycles(); err != nil {
		return nil, err
	}

	if err := reg.checkIndices(); err != nil {
		return nil, err
	}

	if reg.levels, err = reg.splitClassLevels(); err != nil {
		return nil, err
	}

	if logger.IsVerbose() {
		logger.Verbosef("schema registry built: %d classes, %d edges, %d levels", len(reg.ordered), len(reg.EdgeModels()), len(reg.levels))
	}

	return reg, nil
}

// Resolves reverse names, parents, linked classes and edge endpoints
func (reg *registry) link() (err error) {
	for _, cls := range reg.ordered {
		if rn := strings.ToLower(cls.reverseName); rn != "" {
			if c, ok := reg.classes[rn]; ok {
				err = errors.Join(err, fmt.Errorf("class «%s» reverse name «%s» conflicts with class «%s»: %w", cls, cls.reverseName, c, ErrNameUniqueViolation))
			} else if c, ok := reg.reverse[rn]; ok {
				err = errors.Join(err, fmt.Errorf("class «%s» reverse name «%s» is already used by class «%s»: %w", cls, cls.reverseName, c, ErrNameUniqueViolation))
			} else {
				reg.reverse[rn] = cls
			}
		}

		if c, ok := reg.routes[cls.routeName]; ok {
			logger.Warningf("class «%s» route name «%s» is already used by class «%s»", cls, cls.routeName, c)
		} else {
			reg.routes[cls.routeName] = cls
		}
	}

	for _, cls := range reg.ordered {
		for _, pn := range cls.inherits {
			parent, ok := reg.classes[strings.ToLower(pn)]
			if !ok {
				err = errors.Join(err, fmt.Errorf("class «%s» inherits from unknown class «%s»: %w", cls, pn, ErrNameNotFound))
				continue
			}
			cls.parents = append(cls.parents, parent)
			key := strings.ToLower(parent.name)
			reg.children[key] = append(reg.children[key], cls)
		}

		for _, p := range cls.OwnProperties() {
			if lc := p.LinkedClass(); lc != "" && reg.Class(lc) == nil {
				err = errors.Join(err, fmt.Errorf("class «%s» property «%s» links to unknown class «%s»: %w", cls, p.Name(), lc, ErrNameNotFound))
			}
		}

		for _, ep := range []string{cls.sourceModel, cls.targetModel} {
			if ep != "" && reg.Class(ep) == nil {
				err = errors.Join(err, fmt.Errorf("edge class «%s» endpoint refers to unknown class «%s»: %w", cls, ep, ErrNameNotFound))
			}
		}
	}

	return err
}

// Checks inheritance graph is acyclic
func (reg *registry) checkInheritanceCycles() (err error) {
	const (
		visiting = 1
		visited  = 2
	)
	state := make(map[*Class]int, len(reg.ordered))

	var visit func(*Class, []string)
	visit = func(cls *Class, path []string) {
		path = append(path, cls.name)
		switch state[cls] {
		case visiting:
			err = errors.Join(err, fmt.Errorf("%s: %w", strings.Join(path, " → "), ErrCyclicInheritance))
			return
		case visited:
			return
		}
		state[cls] = visiting
		for _, p := range cls.parents {
			visit(p, path)
		}
		state[cls] = visited
	}

	for _, cls := range reg.ordered {
		visit(cls, nil)
	}
	return err
}

// Checks every index property is a property of the class
func (reg *registry) checkIndices() (err error) {
	for _, cls := range reg.ordered {
		props := cls.propertySet()
		for _, idx := range cls.indices {
			for _, pn := range idx.Properties {
				if cls.isEdge && (pn == Attr_Out || pn == Attr_In) {
					continue
				}
				if _, ok := props.byName[pn]; !ok {
					err = errors.Join(err, fmt.Errorf("class «%s» index «%s» uses unknown property «%s»: %w", cls, idx.Name, pn, ErrNameNotFound))
				}
			}
		}
	}
	return err
}

func (reg *registry) Get(nameOrRecord any, strict bool) (*Class, error) {
	var name string
	switch v := nameOrRecord.(type) {
	case string:
		name = v
	case *Class:
		if v != nil {
			name = v.name
		}
	case map[string]any:
		name, _ = v[Attr_Class].(string)
	}

	if cls := reg.Class(name); cls != nil {
		return cls, nil
	}
	if strict {
		return nil, fmt.Errorf("«%v»: %w", nameOrRecord, ErrClassNotFound)
	}
	return nil, nil
}

func (reg *registry) Class(name string) *Class {
	key := strings.ToLower(name)
	if cls, ok := reg.classes[key]; ok {
		return cls
	}
	if cls, ok := reg.reverse[key]; ok {
		return cls
	}
	return nil
}

func (reg *registry) Has(nameOrRecord any) bool {
	cls, _ := reg.Get(nameOrRecord, false)
	return cls != nil
}

func (reg *registry) GetFromRoute(route string) (*Class, error) {
	if cls, ok := reg.routes[route]; ok {
		return cls, nil
	}
	return nil, fmt.Errorf("route «%s»: %w", route, ErrClassNotFound)
}

func (reg *registry) InheritsFrom(child, parent string) bool {
	if cls := reg.Class(child); cls != nil {
		return cls.InheritsFrom(parent)
	}
	return false
}

func (reg *registry) Models() []*Class {
	return slices.Clone(reg.ordered)
}

func (reg *registry) EdgeModels() []*Class {
	ee := make([]*Class, 0)
	for _, cls := range reg.ordered {
		if cls.isEdge {
			ee = append(ee, cls)
		}
	}
	return ee
}

func (reg *registry) FormatRecord(class string, record map[string]any, opts ...FormatOption) (map[string]any, error) {
	cls, err := reg.Get(class, true)
	if err != nil {
		return nil, err
	}
	return cls.FormatRecord(record, opts...)
}

func (reg *registry) SplitClassLevels() [][]string {
	ll := make([][]string, 0, len(reg.levels))
	for _, l := range reg.levels {
		ll = append(ll, slices.Clone(l))
	}
	return ll
}
