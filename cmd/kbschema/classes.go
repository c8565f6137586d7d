/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/voedger/kbschema/pkg/schema"
)

func newClassesCmd(params *kbParams) *cobra.Command {
	edgesOnly := false
	cmd := &cobra.Command{
		Use:   "classes",
		Short: "list classes of the knowledge base",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := params.registry()
			if err != nil {
				return err
			}
			models := reg.Models()
			if edgesOnly {
				models = reg.EdgeModels()
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, cls := range models {
				fmt.Fprintf(w, "%s\t%s\t%s\n", cls.Name(), classKind(cls), strings.Join(cls.Inherits(), ", "))
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVarP(&edgesOnly, "edges", "e", false, "list edge classes only")
	return cmd
}

func newDescribeCmd(params *kbParams) *cobra.Command {
	return &cobra.Command{
		Use:   "describe CLASS",
		Short: "print class description as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := params.registry()
			if err != nil {
				return err
			}
			cls, err := reg.Get(args[0], true)
			if err != nil {
				return err
			}
			return writeJSON(cmd, cls)
		},
	}
}

func classKind(cls *schema.Class) string {
	kind := "vertex"
	switch {
	case cls.IsEdge():
		kind = "edge"
	case cls.Embedded():
		kind = "embedded"
	}
	if cls.IsAbstract() {
		kind = "abstract " + kind
	}
	return kind
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
