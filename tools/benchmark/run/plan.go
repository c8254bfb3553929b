package run

import (
	"os"

	"github.com/pkg/errors"

	"github.com/robustats/medcouple/tools/benchmark/config"
)

func LoadBenchmarkPlan(path string) (config.BenchmarkPlan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return config.BenchmarkPlan{}, errors.Wrap(err, "failed to read benchmark plan")
	}

	return config.DecodeBenchmarkPlan(data)
}
