/*
* Copyright (c) 2023-present unTill Pro, Ltd.
* @author Maxim Geraskin
 */

package cobrau

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/voedger/kbschema/pkg/goutils/logger"
)

/*

Persistent flags:

  -v, --verbose   Print verbose output (detailed level)
      --trace     Print trace output   (most detailed level)

*/

const (
	flagVerbose = "verbose"
	flagTrace   = "trace"
)

// Returns root command with logging flags, version command and specified subcommands.
//
// args[0] is the program name and is skipped.
func PrepareRootCmd(use string, short string, args []string, version string, cmds ...*cobra.Command) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               use,
		Short:             short,
		Version:           strings.TrimSpace(version),
		PersistentPreRunE: setLogLevel,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}
	rootCmd.PersistentFlags().BoolP(flagVerbose, "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().Bool(flagTrace, false, "Enable extremely verbose output")

	if len(args) > 0 {
		rootCmd.SetArgs(args[1:])
	}
	rootCmd.AddCommand(cmds...)
	rootCmd.AddCommand(&cobra.Command{
		Use:     "version",
		Short:   "Print the current version",
		Aliases: []string{"ver"},
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", cmd.Root().Name(), cmd.Root().Version)
		},
	})
	rootCmd.InitDefaultCompletionCmd()

	return rootCmd
}

func setLogLevel(cmd *cobra.Command, _ []string) error {
	trace, err := cmd.Flags().GetBool(flagTrace)
	if err != nil {
		return err
	}
	verbose, err := cmd.Flags().GetBool(flagVerbose)
	if err != nil {
		return err
	}
	switch {
	case trace:
		logger.SetLogLevel(logger.LogLevelTrace)
		logger.Verbose("Using logger.LogLevelTrace...")
	case verbose:
		logger.SetLogLevel(logger.LogLevelVerbose)
		logger.Verbose("Using logger.LogLevelVerbose...")
	}
	return nil
}
