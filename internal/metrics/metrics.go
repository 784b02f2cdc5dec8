package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ReactionsAdded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chemnet_reactions_added_total",
		Help: "Total number of reaction observations recorded into the graph.",
	})

	GraphNodes = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "chemnet_graph_nodes",
		Help: "Current number of nodes in the reaction graph.",
	})

	GraphEdges = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "chemnet_graph_edges",
		Help: "Current number of edges in the reaction graph.",
	})

	RAFSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "chemnet_raf_reactions",
		Help: "Number of reactions in the last computed RAF set.",
	})

	RAFLevel = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "chemnet_raf_level",
		Help: "Estimated RAF nesting level of the last analysis.",
	})

	AnalysesRun = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chemnet_analyses_total",
		Help: "Total number of analyses performed, labelled by outcome.",
	}, []string{"status"})

	AnalysisDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "chemnet_analysis_duration_ms",
		Help:    "Wall-clock duration of one full analysis in milliseconds.",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500},
	})
)
