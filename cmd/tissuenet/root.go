// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tissuenet",
		Short: "tissuenet turns segmented tissue images into cell graphs",
		Long: `tissuenet reads a labeled image in which one-pixel-wide white lines separate
cells and rebuilds the planar graph of vertices, directed bonds and cells.`,
		SilenceUsage: true,
	}

	// Persistent flags (available to all commands)
	root.PersistentFlags().String("config", "tissuenet.yaml", "Configuration file; missing means defaults")
	root.PersistentFlags().String("log-level", "", "Override the configured log level")
	root.PersistentFlags().StringArray("set", nil, "Override a configuration key (key=value), repeatable")

	root.AddCommand(newParseCmd(), newCheckCmd())
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
