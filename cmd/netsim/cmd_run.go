// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/netsim/internal/logging"
	"github.com/katalvlaran/netsim/metrics"
	"github.com/katalvlaran/netsim/network"
	"github.com/katalvlaran/netsim/scenario"
	"github.com/katalvlaran/netsim/simulation"
)

// runResult is the machine-readable outcome of a run.
type runResult struct {
	RunID      string      `json:"run_id"`
	Scenario   string      `json:"scenario"`
	Steps      int         `json:"steps"`
	Clock      float64     `json:"clock"`
	Status     string      `json:"status"`
	Absorbed   bool        `json:"absorbed"`
	Components int         `json:"components"`
	Nodes      [][]float64 `json:"nodes,omitempty"`
	Adjacency  [][]float64 `json:"adjacency,omitempty"`
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a scenario until its stop condition or absorption",
		Long: `Run a scenario until its stop condition or absorption.

Flags override the scenario's seed and stop bounds.

Examples:
  netsim run -c epidemic.yaml
  netsim run -c epidemic.yaml --seed 7 --max-time 50 --dump
  netsim run -c epidemic.yaml --metrics-addr :2112 --log-level debug`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			jsonOut, _ := cmd.Flags().GetBool("json")
			dump, _ := cmd.Flags().GetBool("dump")
			levelName, _ := cmd.Flags().GetString("log-level")
			metricsAddr, _ := cmd.Flags().GetString("metrics-addr")

			level, err := logging.ParseLevel(levelName)
			if err != nil {
				return err
			}

			sc, err := scenario.Load(path)
			if err != nil {
				return err
			}
			if err = applyOverrides(cmd, sc); err != nil {
				return err
			}

			runID := uuid.NewString()
			logger := logging.New(level).With("run_id", runID, "scenario", sc.Name)

			opts := []simulation.Option{simulation.WithLogger(logger)}
			var collector *metrics.Collector
			if metricsAddr != "" {
				if collector, err = metrics.NewCollector(nil); err != nil {
					return err
				}
				opts = append(opts, collector.Option())
			}

			m, err := sc.Build(opts...)
			if err != nil {
				return err
			}

			if collector != nil {
				stop := serveMetrics(logger, metricsAddr, collector.Handler())
				defer stop()
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			logger.Info("run started", "nodes", m.State().Size(), "rules", len(m.Rules()))
			started := time.Now()
			sum, err := m.Run(ctx, sc.StopCondition())
			if err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("run failed", "steps", sum.TotalSteps, "clock", sum.Clock, "error", err)
				return err
			}
			logger.Info("run finished",
				"steps", sum.TotalSteps, "clock", sum.Clock, "status", sum.Status.String(),
				"elapsed", time.Since(started))

			res := runResult{
				RunID:      runID,
				Scenario:   sc.Name,
				Steps:      sum.TotalSteps,
				Clock:      sum.Clock,
				Status:     sum.Status.String(),
				Absorbed:   sum.Absorbed,
				Components: len(network.Components(m.State())),
			}
			if jsonOut {
				if dump {
					res.Nodes = m.State().Nodes().ToRows()
					res.Adjacency = m.State().Adjacency().ToRows()
				}
				return writeJSON(cmd, res)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "run %s: %d steps, clock %g, %s, %d components\n",
				res.RunID, res.Steps, res.Clock, res.Status, res.Components)
			if dump {
				fmt.Fprint(out, m.String())
			}
			return nil
		},
	}

	cmd.Flags().StringP("config", "c", "", "Scenario file (YAML or JSON)")
	cmd.Flags().Int64("seed", 0, "Override the scenario seed")
	cmd.Flags().Int("max-steps", 0, "Override the scenario step bound")
	cmd.Flags().Float64("max-time", 0, "Override the scenario time bound")
	cmd.Flags().Bool("dump", false, "Print the final node and adjacency matrices")
	cmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address while running")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

// applyOverrides copies explicitly set flags onto the scenario.
func applyOverrides(cmd *cobra.Command, sc *scenario.Scenario) error {
	flags := cmd.Flags()
	if flags.Changed("seed") {
		sc.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("max-steps") {
		n, _ := flags.GetInt("max-steps")
		sc.Stop.MaxSteps = &n
	}
	if flags.Changed("max-time") {
		t, _ := flags.GetFloat64("max-time")
		sc.Stop.MaxTime = &t
	}
	return sc.Validate()
}

// serveMetrics starts the exposition server and returns its shutdown func.
func serveMetrics(logger *slog.Logger, addr string, h http.Handler) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", h)
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		logger.Info("serving metrics", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", "error", err)
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
