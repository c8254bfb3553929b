package run

import (
	"fmt"
	"log"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type ProfilerConfig struct {
	Enabled bool
	Port    int
	Wait    time.Duration
}

// Profiler optionally serves pprof and prometheus metrics for the duration
// of the run. Long sweeps with large sample sizes are the intended use.
func Profiler(config ProfilerConfig, logger *log.Logger) {
	if !config.Enabled {
		return
	}

	if logger != nil {
		logger.Printf("starting profiler on port %d; waiting %s to start benchmark", config.Port, config.Wait)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	mux.Handle("/metrics", promhttp.Handler())

	go func() {
		err := http.ListenAndServe(fmt.Sprintf("localhost:%d", config.Port), mux)
		if logger != nil && err != nil {
			logger.Printf("profiler listener returned error on exit: %s", err)
		}
	}()

	if config.Wait > 0 {
		time.Sleep(config.Wait)
	}
}
