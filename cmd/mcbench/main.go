package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/robustats/medcouple/internal/util"
	"github.com/robustats/medcouple/pkg/medcouple"
	"github.com/robustats/medcouple/tools/benchmark/config"
	"github.com/robustats/medcouple/tools/benchmark/generate"
	"github.com/robustats/medcouple/tools/benchmark/prommetrics"
	"github.com/robustats/medcouple/tools/benchmark/run"
	"github.com/robustats/medcouple/tools/benchmark/telemetry"
)

var (
	planFile        = flag.StringP("plan-file", "f", "./benchmark_plan.json", "file path to read the benchmark plan from")
	outputDirectory = flag.StringP("output-directory", "o", "./benchmark_runs", "directory path to write run output to")
	workers         = flag.IntP("workers", "w", runtime.NumCPU(), "number of concurrent computations")
	naiveLimit      = flag.Int("naive-limit", 5000, "largest sample size the naive estimator is run against")
	charts          = flag.Bool("charts", false, "write an html chart page for the run")
	profiler        = flag.Bool("pprof", false, "serve pprof and metrics during the run")
	profilerPort    = flag.Int("pprof-port", 6060, "port to serve the profiler on")
)

func main() {
	// ----- collect run parameters
	flag.Parse()

	procLog := log.New(log.Writer(), "[mcbench-startup] ", log.LstdFlags)

	// ----- start run profiler if configured
	run.Profiler(run.ProfilerConfig{
		Enabled: *profiler,
		Port:    *profilerPort,
		Wait:    5 * time.Second,
	}, procLog)

	// ----- read benchmark plan
	procLog.Println("loading benchmark plan ...")
	plan, err := run.LoadBenchmarkPlan(*planFile)
	if err != nil {
		procLog.Printf("failed to initialize benchmark plan: %s", err)
		os.Exit(1)
	}

	// ----- setup run output directory and file handles
	outputs, err := run.SetupOutput(*outputDirectory, plan)
	if err != nil {
		procLog.Printf("failed to setup output directory: %s", err)
		os.Exit(1)
	}

	// ----- generate synthetic samples from the plan
	procLog.Println("generating synthetic samples ...")
	samples, err := generate.Samples(plan)
	if err != nil {
		procLog.Printf("failed to generate samples: %s", err)
		os.Exit(1)
	}

	prommetrics.BenchmarkSamplesGenerated.Set(float64(len(samples)))
	outputs.RunLog.Printf("run %s: %d samples generated", outputs.RunID, len(samples))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		cancel()
	}()

	collector := runBenchmark(ctx, plan, samples, outputs)

	// ----- report results
	collector.PrintTabularResults(os.Stdout)

	if err := collector.WriteResults(outputs.ResultsFile); err != nil {
		procLog.Printf("failed to write results: %s", err)
	}

	if *charts {
		if err := collector.WriteChartPage(outputs.ChartsFile); err != nil {
			procLog.Printf("failed to write charts: %s", err)
		}
	}

	outputs.RunLog.Printf("run %s complete", outputs.RunID)

	if err := outputs.Close(); err != nil {
		procLog.Printf("failed to close outputs: %s", err)
	}

	procLog.Printf("results written to %s", outputs.Directory)
}

func runBenchmark(
	ctx context.Context,
	plan config.BenchmarkPlan,
	samples []generate.Sample,
	outputs *run.Outputs,
) *telemetry.ResultCollector {
	collector := telemetry.NewResultCollector()

	type job struct {
		sample    generate.Sample
		estimator config.Estimator
	}

	jobs := make([]job, 0, len(samples)*len(plan.Estimators))
	perEstimator := make(map[config.Estimator]int64)

	for _, sample := range samples {
		for _, estimator := range plan.Estimators {
			if estimator == config.NaiveEstimator && sample.Size > *naiveLimit {
				outputs.RunLog.Printf("skipping naive estimator for %s: size %d above limit %d", sample.Name, sample.Size, *naiveLimit)
				continue
			}

			jobs = append(jobs, job{sample: sample, estimator: estimator})
			perEstimator[estimator]++
		}
	}

	tracking := telemetry.NewProgressTelemetry(os.Stdout)
	for _, estimator := range plan.Estimators {
		if count, ok := perEstimator[estimator]; ok {
			tracking.Register(string(estimator), count)
		}
	}
	tracking.Start()
	defer tracking.Stop()

	group := util.NewGroup[telemetry.Measurement](*workers, len(jobs))
	defer group.Stop()

	go func() {
		for _, j := range jobs {
			j := j

			prommetrics.BenchmarkInFlight.Inc()

			err := group.Submit(ctx, func(_ context.Context) (telemetry.Measurement, error) {
				return compute(j.sample, j.estimator), nil
			})
			if err != nil {
				prommetrics.BenchmarkInFlight.Dec()
				outputs.RunLog.Printf("failed to queue %s/%s: %s", j.sample.Name, j.estimator, err)
			}
		}
	}()

	for collected := 0; collected < len(jobs); collected++ {
		select {
		case result := <-group.Results:
			measurement := result.Value
			measurement.Elapsed = result.Elapsed

			collector.Register(measurement)
			tracking.Increment(measurement.Estimator)
			prommetrics.BenchmarkInFlight.Dec()
		case <-ctx.Done():
			outputs.RunLog.Printf("run interrupted after %d of %d computations", collected, len(jobs))
			return collector
		}
	}

	return collector
}

func compute(sample generate.Sample, estimator config.Estimator) telemetry.Measurement {
	measurement := telemetry.Measurement{
		Sample:    sample.Name,
		Spec:      sample.Spec,
		Estimator: string(estimator),
		Size:      sample.Size,
	}

	var value float64
	var err error

	switch estimator {
	case config.NaiveEstimator:
		value, err = medcouple.Naive(sample.Values)
	default:
		value, err = medcouple.Medcouple(sample.Values)
	}

	prommetrics.BenchmarkComputations.WithLabelValues(string(estimator)).Inc()

	if err != nil {
		prommetrics.BenchmarkFailures.Inc()
		measurement.Error = err.Error()

		return measurement
	}

	measurement.Value = value

	return measurement
}
