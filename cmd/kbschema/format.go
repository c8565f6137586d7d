/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/voedger/kbschema/pkg/goutils/logger"
	"github.com/voedger/kbschema/pkg/schema"
)

func newFormatCmd(params *kbParams) *cobra.Command {
	fp := formatParams{}
	cmd := &cobra.Command{
		Use:   "format CLASS",
		Short: "validate JSON record and print its normalized form",
		Long:  "Reads JSON record from file or standard input, validates it against class and prints formatted record.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := params.registry()
			if err != nil {
				return err
			}
			record, err := readRecord(cmd, fp.File)
			if err != nil {
				return err
			}
			formatted, err := reg.FormatRecord(args[0], record,
				schema.DropExtra(fp.DropExtra),
				schema.AddDefaults(fp.AddDefaults),
				schema.IgnoreMissing(fp.IgnoreMissing),
				schema.IgnoreExtra(fp.IgnoreExtra),
			)
			if err != nil {
				return err
			}
			return writeJSON(cmd, formatted)
		},
	}
	cmd.Flags().StringVarP(&fp.File, "file", "f", "", "JSON file with record, standard input if omitted")
	cmd.Flags().BoolVar(&fp.DropExtra, "drop-extra", true, "discard attributes not declared by class")
	cmd.Flags().BoolVar(&fp.AddDefaults, "add-defaults", true, "fill absent properties with defaults")
	cmd.Flags().BoolVar(&fp.IgnoreMissing, "ignore-missing", false, "do not reject records with missing mandatory properties")
	cmd.Flags().BoolVar(&fp.IgnoreExtra, "ignore-extra", false, "keep undeclared attributes without error")
	return cmd
}

func readRecord(cmd *cobra.Command, file string) (map[string]any, error) {
	var r io.Reader = cmd.InOrStdin()
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	record := make(map[string]any)
	if err := json.NewDecoder(r).Decode(&record); err != nil {
		return nil, fmt.Errorf("read record: %w", err)
	}
	logger.Verbosef("record with %d attributes read", len(record))
	return record, nil
}
