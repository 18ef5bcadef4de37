// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/netsim/scenario"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <scenario>...",
		Short: "Check scenario files without running them",
		Long: `Check scenario files without running them.

Each file is parsed, its rules are constructed and the initial propensities
are evaluated, so every construction error surfaces here.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			var failed int
			for _, path := range args {
				sc, err := scenario.Load(path)
				if err == nil {
					_, err = sc.Build()
				}
				if err != nil {
					failed++
					fmt.Fprintf(out, "FAIL %s: %v\n", path, err)
					continue
				}
				fmt.Fprintf(out, "ok   %s (%d nodes, %d rules)\n", path, len(sc.Nodes), len(sc.Rules))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d scenarios invalid", failed, len(args))
			}
			return nil
		},
	}
}
