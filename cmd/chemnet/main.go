// Command chemnet replays a recorded reaction trace into a reaction
// graph, computes its RAF set and nesting level, and reports the
// surviving reactions in deterministic order.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	scenarioPath   string
	metricsAddr    string
	watch          bool
	verbose        bool
	minOccurrences int
	trimMaxLen     int

	rootCmd = &cobra.Command{
		Use:   "chemnet",
		Short: "Reaction-network analysis over symbolic expression traces",
		Long: `chemnet builds a bipartite expression/reaction graph from a recorded
trace, then searches it for reflexively autocatalytic food-generated
(RAF) subsets and reports cycle structure.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			slog.SetDefault(logger)
		},
	}

	analyzeCmd = &cobra.Command{
		Use:   "analyze",
		Short: "Run one analysis over a scenario file",
		RunE:  runAnalyze,
	}
)

func main() {
	rootCmd.PersistentFlags().StringVarP(&scenarioPath, "scenario", "s", "scenario.yaml", "path to the scenario YAML")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	analyzeCmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "expose Prometheus metrics on this address (empty disables)")
	analyzeCmd.Flags().BoolVar(&watch, "watch", false, "re-run the analysis whenever the scenario file changes")
	analyzeCmd.Flags().IntVar(&minOccurrences, "min-occurrences", 0, "override the scenario's minimum reaction occurrence filter")
	analyzeCmd.Flags().IntVar(&trimMaxLen, "trim", -1, "override the scenario's short-formula trim threshold (-1 keeps the scenario value)")
	rootCmd.AddCommand(analyzeCmd)

	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "err", err)
		os.Exit(1)
	}
}
