/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package schema

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/voedger/kbschema/pkg/goutils/logger"
)

// Returns names of classes the class depends on: ancestors, linked classes
// of own and inherited properties and edge endpoint classes.
//
// Class itself is never included.
func (cls *Class) dependencies() map[string]bool {
	deps := make(map[string]bool)
	add := func(name string) {
		if c := cls.reg.Class(name); c != nil && c != cls {
			deps[c.name] = true
		}
	}

	for _, a := range cls.Ancestors() {
		add(a)
	}
	cls.propertySet().each(func(p *Property) {
		if p.linkedClass != "" {
			add(p.linkedClass)
		}
	})
	if cls.sourceModel != "" {
		add(cls.sourceModel)
	}
	if cls.targetModel != "" {
		add(cls.targetModel)
	}
	return deps
}

// Splits classes into levels.
//
// Bootstrap classes form the first level and are removed from all
// dependencies. Then classes without remaining dependencies form the next
// level and are removed from dependencies of others, until no classes left.
func (reg *registry) splitClassLevels() ([][]string, error) {
	pinned := make(map[string]bool)
	for _, n := range BootstrapClasses {
		if c := reg.Class(n); c != nil {
			pinned[c.name] = true
		}
	}

	deps := make(map[string]map[string]bool, len(reg.ordered))
	for _, cls := range reg.ordered {
		if pinned[cls.name] {
			continue
		}
		d := cls.dependencies()
		for p := range pinned {
			delete(d, p)
		}
		deps[cls.name] = d
	}

	levels := make([][]string, 0)
	if len(pinned) > 0 {
		first := maps.Keys(pinned)
		slices.Sort(first)
		levels = append(levels, first)
	}

	for len(deps) > 0 {
		level := make([]string, 0)
		for name, d := range deps {
			if len(d) == 0 {
				level = append(level, name)
			}
		}

		if len(level) == 0 {
			stuck := maps.Keys(deps)
			slices.Sort(stuck)
			return nil, fmt.Errorf("classes [%s] can not be levelled: %w", strings.Join(stuck, ", "), ErrCyclicDependency)
		}

		slices.Sort(level)
		for _, name := range level {
			delete(deps, name)
		}
		for _, d := range deps {
			for _, name := range level {
				delete(d, name)
			}
		}

		logger.Tracef("level %d: %v", len(levels), level)
		levels = append(levels, level)
	}

	return levels, nil
}
