/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newLevelsCmd(params *kbParams) *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "print classes split into dependency levels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := params.registry()
			if err != nil {
				return err
			}
			for i, l := range reg.SplitClassLevels() {
				fmt.Fprintf(cmd.OutOrStdout(), "%d: %s\n", i, strings.Join(l, ", "))
			}
			return nil
		},
	}
}

func newRoutesCmd(params *kbParams) *cobra.Command {
	all := false
	cmd := &cobra.Command{
		Use:   "routes",
		Short: "print route names of classes and exposed operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := params.registry()
			if err != nil {
				return err
			}
			for _, cls := range reg.Models() {
				ops := cls.Routes()
				if len(ops) == 0 && !all {
					continue
				}
				names := make([]string, 0, len(ops))
				for _, op := range ops {
					names = append(names, op.String())
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s [%s]\n", cls.RouteName(), cls.Name(), strings.Join(names, " "))
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "include classes without exposed operations")
	return cmd
}
