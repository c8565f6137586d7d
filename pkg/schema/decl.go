/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package schema

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Merges groups of class descriptions into one.
//
// Returns error if class name (case-insensitive) is described in several groups.
func MergeDescriptions(groups ...Descriptions) (Descriptions, error) {
	merged := make(Descriptions)
	seen := make(map[string]string)

	var err error
	for _, g := range groups {
		for key, d := range g {
			lower := strings.ToLower(key)
			if prev, ok := seen[lower]; ok {
				err = errors.Join(err, fmt.Errorf("class «%s» is already described as «%s»: %w", key, prev, ErrNameUniqueViolation))
				continue
			}
			seen[lower] = key
			merged[key] = d
		}
	}
	if err != nil {
		return nil, err
	}
	return merged, nil
}

type (
	yamlProperty struct {
		Name            string   `yaml:"name"`
		Type            DataKind `yaml:"type"`
		Description     string   `yaml:"description"`
		Nullable        *bool    `yaml:"nullable"`
		Mandatory       bool     `yaml:"mandatory"`
		NonEmpty        bool     `yaml:"nonEmpty"`
		Min             *float64 `yaml:"min"`
		Max             *float64 `yaml:"max"`
		MinItems        *int     `yaml:"minItems"`
		MaxItems        *int     `yaml:"maxItems"`
		Pattern         string   `yaml:"pattern"`
		Choices         []any    `yaml:"choices"`
		LinkedClass     string   `yaml:"linkedClass"`
		Generated       bool     `yaml:"generated"`
		Default         any      `yaml:"default"`
		Indexed         bool     `yaml:"indexed"`
		FulltextIndexed bool     `yaml:"fulltextIndexed"`
		Example         any      `yaml:"example"`
	}

	yamlIndex struct {
		Name             string    `yaml:"name"`
		Type             IndexType `yaml:"type"`
		Properties       []string  `yaml:"properties"`
		Class            string    `yaml:"class"`
		IgnoreNullValues bool      `yaml:"ignoreNullValues"`
	}

	yamlClass struct {
		Description string                `yaml:"description"`
		Inherits    []string              `yaml:"inherits"`
		IsAbstract  bool                  `yaml:"isAbstract"`
		IsEdge      bool                  `yaml:"isEdge"`
		Embedded    bool                  `yaml:"embedded"`
		Permissions map[string]Permission `yaml:"permissions"`
		Routes      map[Operation]bool    `yaml:"routes"`
		RouteName   string                `yaml:"routeName"`
		SourceModel string                `yaml:"sourceModel"`
		TargetModel string                `yaml:"targetModel"`
		ReverseName string                `yaml:"reverseName"`
		Properties  []yamlProperty        `yaml:"properties"`
		Indices     []yamlIndex           `yaml:"indices"`
	}
)

// Parses class descriptions from YAML document.
//
// Document is a mapping from class name to class description. Only static
// property defaults can be described; cast functions are chosen by data kind.
func ParseYAML(data []byte) (Descriptions, error) {
	var doc map[string]yamlClass
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse schema YAML: %w", err)
	}

	descs := make(Descriptions, len(doc))
	for name, c := range doc {
		d := ClassDescription{
			Name:        name,
			Description: c.Description,
			Inherits:    c.Inherits,
			IsAbstract:  c.IsAbstract,
			IsEdge:      c.IsEdge,
			Embedded:    c.Embedded,
			Permissions: c.Permissions,
			Routes:      c.Routes,
			RouteName:   c.RouteName,
			SourceModel: c.SourceModel,
			TargetModel: c.TargetModel,
			ReverseName: c.ReverseName,
		}
		for _, p := range c.Properties {
			pd := PropertyDescription{
				Name:            p.Name,
				Type:            p.Type,
				Description:     p.Description,
				Nullable:        p.Nullable,
				Mandatory:       p.Mandatory,
				NonEmpty:        p.NonEmpty,
				Min:             p.Min,
				Max:             p.Max,
				MinItems:        p.MinItems,
				MaxItems:        p.MaxItems,
				Pattern:         p.Pattern,
				Choices:         p.Choices,
				LinkedClass:     p.LinkedClass,
				Generated:       p.Generated,
				Indexed:         p.Indexed,
				FulltextIndexed: p.FulltextIndexed,
				Example:         p.Example,
			}
			if p.Default != nil {
				pd.Default = Static(p.Default)
			}
			d.Properties = append(d.Properties, pd)
		}
		for _, i := range c.Indices {
			d.Indices = append(d.Indices, IndexDescription(i))
		}
		descs[name] = d
	}
	return descs, nil
}
