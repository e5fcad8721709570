// Command ocmsift reads a PACE-style one-sided crossing minimization
// instance from standard input and writes a heuristically optimized
// ordering of the free side to standard output, one vertex id per line.
//
// SIGINT and SIGTERM are treated as a request to stop searching and print
// the best ordering found so far; both result in exit code 0.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ocmsift/abortflag"
	"github.com/katalvlaran/ocmsift/internal/pace"
	"github.com/katalvlaran/ocmsift/meta"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		verbose         bool
		seed            int64
		timeBudget      time.Duration
		minPhaseOneRuns int
		dumpDot         string
	)

	cmd := &cobra.Command{
		Use:          "ocmsift",
		Short:        "Heuristic one-sided bipartite crossing minimization",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			logger := log.NewWithOptions(os.Stderr, log.Options{
				ReportTimestamp: true,
				TimeFormat:      "15:04:05.00",
				Level:           level,
			})

			inst, err := pace.ParseInstance(os.Stdin)
			if err != nil {
				return fmt.Errorf("parsing instance: %w", err)
			}
			logger.Debug("parsed instance", "n0", inst.N0, "n1", inst.N1, "edges", len(inst.Edges))

			flag := abortflag.New()
			stop := abortflag.Watch(flag)
			defer stop()

			if dumpDot != "" {
				if err := dumpPrecedenceGraph(inst, dumpDot); err != nil {
					logger.Warn("could not dump precedence graph", "err", err)
				}
			}

			opts := meta.DefaultOptions()
			if timeBudget > 0 {
				opts.PhaseOneBudget = timeBudget
			}
			if minPhaseOneRuns > 0 {
				opts.MinPhaseOneRuns = minPhaseOneRuns
			}

			rng := rand.New(rand.NewSource(seed))
			start := time.Now()
			ordering := pace.Solve(inst, flag, rng, opts)
			logger.Debug("solve finished", "elapsed", time.Since(start), "aborted", flag.IsSet())

			return pace.WriteOrdering(os.Stdout, ordering)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging to stderr")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "PRNG seed (default: derived from current time)")
	cmd.Flags().DurationVar(&timeBudget, "time-budget", 0, "phase-1 frequency-harvesting budget (default: 60s)")
	cmd.Flags().IntVar(&minPhaseOneRuns, "min-phase-one-runs", 0, "minimum phase-1 iterations before sparsification (default: 10)")
	cmd.Flags().StringVar(&dumpDot, "dump-precedence-dot", "", "write the reduced free-side precedence graph as Graphviz DOT to this path")

	return cmd
}
