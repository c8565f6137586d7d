/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package main

import (
	"fmt"
	"os"

	"github.com/voedger/kbschema/pkg/goutils/logger"
	"github.com/voedger/kbschema/pkg/kbschema"
	"github.com/voedger/kbschema/pkg/schema"
)

// Builds knowledge base registry extended with classes from schema files
func (p *kbParams) registry() (schema.IRegistry, error) {
	b := kbschema.NewBuilder()
	for _, f := range p.SchemaFiles {
		data, err := os.ReadFile(f)
		if err != nil {
			return nil, err
		}
		descs, err := schema.ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f, err)
		}
		logger.Verbosef("%s: %d classes", f, len(descs))
		b.AddDescriptions(descs)
	}
	return b.Build()
}
