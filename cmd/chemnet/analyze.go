package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/chemnet/internal/config"
	"github.com/katalvlaran/chemnet/internal/metrics"
	"github.com/katalvlaran/chemnet/pool"
	"github.com/katalvlaran/chemnet/raf"
	"github.com/katalvlaran/chemnet/rgraph"
)

func runAnalyze(cmd *cobra.Command, args []string) error {
	loader, err := config.NewLoader(scenarioPath)
	if err != nil {
		return err
	}

	if metricsAddr != "" {
		go serveMetrics(metricsAddr)
	}

	if err := analyze(loader.Scenario()); err != nil {
		return err
	}
	if !watch {
		return nil
	}

	// Hot-reload: every rewrite of the scenario file triggers a fresh run.
	loader.OnChange(func(sc *config.Scenario) {
		if err := analyze(sc); err != nil {
			slog.Warn("re-analysis failed", "err", err)
		}
	})
	stop, err := loader.Watch()
	if err != nil {
		return fmt.Errorf("watch %s: %w", scenarioPath, err)
	}
	defer stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down")
	return nil
}

// analyze runs the full pipeline for one scenario: replay the trace,
// shape the graph, solve for the RAF set, estimate its level, and
// print the ordered report.
func analyze(sc *config.Scenario) error {
	runID := uuid.New().String()
	log := slog.Default().With("run_id", runID, "scenario", sc.Name)
	start := time.Now()

	g := rgraph.New()
	for i, def := range sc.Reactions {
		r, err := def.Reaction()
		if err != nil {
			metrics.AnalysesRun.WithLabelValues("error").Inc()
			return fmt.Errorf("reaction #%d: %w", i, err)
		}
		if err := g.AddReaction(r); err != nil {
			metrics.AnalysesRun.WithLabelValues("error").Inc()
			return fmt.Errorf("reaction #%d: %w", i, err)
		}
		metrics.ReactionsAdded.Inc()
	}
	log.Info("trace replayed", "reactions", len(sc.Reactions), "nodes", g.Size(), "edges", g.EdgeCount())

	// Command-line overrides win over scenario analysis knobs.
	minOcc := sc.Analysis.MinOccurrences
	if minOccurrences > 0 {
		minOcc = minOccurrences
	}
	trim := sc.Analysis.TrimMaxLen
	if trimMaxLen >= 0 {
		trim = &trimMaxLen
	}

	if minOcc > 1 {
		g = g.MinimallyReoccurring(minOcc)
		log.Debug("occurrence filter applied", "min", minOcc, "nodes", g.Size())
	}
	if trim != nil {
		g.TrimShortFormulae(*trim)
		log.Debug("short formulae trimmed", "max_len", *trim, "nodes", g.Size())
	}
	metrics.GraphNodes.Set(float64(g.Size()))
	metrics.GraphEdges.Set(float64(g.EdgeCount()))

	food := sc.FoodSet()
	rafSet, err := raf.Compute(g, food, raf.WithLogger(log))
	if err != nil {
		metrics.AnalysesRun.WithLabelValues("error").Inc()
		return err
	}
	level := raf.MaxCycleLength(g.FromReactions(rafSet), raf.WithLogger(log))
	metrics.RAFSize.Set(float64(len(rafSet)))
	metrics.RAFLevel.Set(float64(level))

	log.Info("analysis complete",
		"raf_reactions", len(rafSet),
		"raf_level", level,
		"elapsed", time.Since(start))
	metrics.AnalysesRun.WithLabelValues("ok").Inc()
	metrics.AnalysisDuration.Observe(float64(time.Since(start).Milliseconds()))

	fmt.Printf("scenario %s (run %s): %d RAF reactions, level %d\n", sc.Name, runID, len(rafSet), level)
	report := g.FromReactions(rafSet)
	if err := report.WriteInOrder(os.Stdout); err != nil {
		return err
	}

	if sc.Feeder.Period > 0 && sc.Ticks > 0 {
		if err := projectPool(sc, log); err != nil {
			return err
		}
	}
	return nil
}

// projectPool replays the feeder schedule over the initial pool and
// reports the resulting population.
func projectPool(sc *config.Scenario, log *slog.Logger) error {
	p := pool.New(sc.PoolSet()...)
	feeder, err := pool.NewFeeder(sc.FoodSet(), sc.Feeder.Period)
	if err != nil {
		return err
	}
	for tick := 1; tick <= sc.Ticks; tick++ {
		feeder.OnStep(p, tick)
	}
	log.Info("pool projected", "ticks", sc.Ticks, "molecules", p.Len(), "distinct", p.Distinct())

	fmt.Printf("pool after %d ticks (%d molecules):\n", sc.Ticks, p.Len())
	for _, e := range p.Sorted() {
		fmt.Printf("  %s x%d\n", e, p.Count(e))
	}
	return nil
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	slog.Info("metrics listening", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		slog.Warn("metrics server stopped", "err", err)
	}
}
