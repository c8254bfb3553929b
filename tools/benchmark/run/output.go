package run

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/robustats/medcouple/tools/benchmark/config"
)

// Outputs holds everything a single benchmark run writes: a uuid-named
// directory under the output root, a snapshot of the plan, the run log, and
// the paths for results and charts.
type Outputs struct {
	RunID       string
	Directory   string
	ResultsFile string
	ChartsFile  string
	RunLog      *log.Logger

	runLogFileHandle *os.File
}

func (out *Outputs) Close() error {
	if out.runLogFileHandle != nil {
		return out.runLogFileHandle.Close()
	}

	return nil
}

// SetupOutput creates the run directory and writes the plan snapshot so a
// finished run can always be traced back to its exact configuration.
func SetupOutput(root string, plan config.BenchmarkPlan) (*Outputs, error) {
	runID := uuid.New().String()
	dir := filepath.Join(root, runID)

	if err := os.MkdirAll(dir, 0750); err != nil && !errors.Is(err, fs.ErrExist) {
		return nil, err
	}

	if err := savePlanToOutput(dir, plan); err != nil {
		return nil, err
	}

	logger, handle, err := openRunLog(dir)
	if err != nil {
		return nil, err
	}

	return &Outputs{
		RunID:       runID,
		Directory:   dir,
		ResultsFile: filepath.Join(dir, "results.json"),
		ChartsFile:  filepath.Join(dir, "charts.html"),
		RunLog:      logger,

		runLogFileHandle: handle,
	}, nil
}

func savePlanToOutput(dir string, plan config.BenchmarkPlan) error {
	encoded, err := plan.Encode()
	if err != nil {
		return err
	}

	filename := filepath.Join(dir, "benchmark_plan.json")
	flags := os.O_RDWR | os.O_CREATE | os.O_TRUNC

	f, err := os.OpenFile(filename, flags, 0666)
	if err != nil {
		return fmt.Errorf("failed to open benchmark plan file (%s): %v", filename, err)
	}

	defer f.Close()

	if _, err := f.Write(encoded); err != nil {
		return fmt.Errorf("failed to write benchmark plan file (%s): %v", filename, err)
	}

	return nil
}

func openRunLog(dir string) (*log.Logger, *os.File, error) {
	filename := filepath.Join(dir, "benchmark.log")
	flags := os.O_RDWR | os.O_CREATE | os.O_TRUNC

	f, err := os.OpenFile(filename, flags, 0666)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open run log file (%s): %v", filename, err)
	}

	return log.New(f, "", log.LstdFlags), f, nil
}
