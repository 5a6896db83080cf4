// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

// errViolations is returned by check when violations are fatal.
var errViolations = errors.New("consistency violations found")

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <image>",
		Short: "Build the cell graph of an image and report consistency violations",
		Long: `Builds the graph and checks conjugate pairing, the clockwise order of bonds
around vertices and the closure of cell cycles. Exits non-zero when violations
are found and fail_on_violations is set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			g, err := s.build(args[0])
			if err != nil {
				return err
			}
			violations := g.CheckConsistency()
			out := cmd.OutOrStdout()
			for _, v := range violations {
				s.metrics.ObserveViolation(v.Kind.String())
				fmt.Fprintln(out, v.Error())
			}
			if len(violations) == 0 {
				fmt.Fprintf(out, "%s: consistent (%d cells, %d bonds, %d vertices)\n",
					args[0], len(g.Cells()), len(g.Bonds()), len(g.Vertices()))
				return nil
			}

			s.log.Warn("graph inconsistent", slog.String("image", args[0]), slog.Int("violations", len(violations)))
			if s.cfg.FailOnViolations {
				return fmt.Errorf("%s: %w: %d", args[0], errViolations, len(violations))
			}
			return nil
		},
	}
}
