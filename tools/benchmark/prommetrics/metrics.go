package prommetrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// BenchmarkNamespace is the namespace for all benchmark related metrics
const BenchmarkNamespace = "medcouple_benchmark"

// Benchmark metrics
var (
	BenchmarkSamplesGenerated = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: BenchmarkNamespace,
		Name:      "samples_generated",
		Help:      "How many synthetic samples were generated for the current run",
	})
	BenchmarkComputations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: BenchmarkNamespace,
		Name:      "computations_total",
		Help:      "Count of completed medcouple computations by estimator",
	}, []string{"estimator"})
	BenchmarkFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: BenchmarkNamespace,
		Name:      "failures_total",
		Help:      "Count of computations that returned an error",
	})
	BenchmarkInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: BenchmarkNamespace,
		Name:      "computations_in_flight",
		Help:      "Number of computations currently queued or running",
	})
)
