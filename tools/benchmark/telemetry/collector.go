package telemetry

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"gonum.org/v1/gonum/stat"
)

// Measurement is one computed medcouple: which sample, which estimator,
// the result, and how long the computation took.
type Measurement struct {
	Sample    string        `json:"sample"`
	Spec      string        `json:"spec"`
	Estimator string        `json:"estimator"`
	Size      int           `json:"size"`
	Value     float64       `json:"value"`
	Elapsed   time.Duration `json:"elapsedNs"`
	Error     string        `json:"error,omitempty"`
}

// ResultCollector accumulates measurements from concurrent workers and
// produces the run's summaries.
type ResultCollector struct {
	mu           sync.Mutex
	measurements []Measurement
}

func NewResultCollector() *ResultCollector {
	return &ResultCollector{
		measurements: make([]Measurement, 0),
	}
}

func (c *ResultCollector) Register(m Measurement) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.measurements = append(c.measurements, m)
}

func (c *ResultCollector) Measurements() []Measurement {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]Measurement(nil), c.measurements...)
}

// WriteResults writes every measurement as JSON to the given file path.
func (c *ResultCollector) WriteResults(path string) error {
	encoded, err := json.MarshalIndent(c.Measurements(), "", "  ")
	if err != nil {
		return err
	}

	var perms fs.FileMode = 0666
	flag := os.O_RDWR | os.O_CREATE | os.O_TRUNC

	f, err := os.OpenFile(path, flag, perms)
	if err != nil {
		return err
	}

	defer f.Close()

	_, err = f.Write(encoded)

	return err
}

type summaryRow struct {
	estimator string
	size      int
	count     int
	failures  int
	mean      float64
	p50       float64
	p95       float64
	max       float64
}

// summarize groups measurements by estimator and sample size and reduces
// the observed runtimes with gonum's estimators.
func (c *ResultCollector) summarize() []summaryRow {
	grouped := make(map[string][]Measurement)

	for _, m := range c.Measurements() {
		key := fmt.Sprintf("%s/%010d", m.Estimator, m.Size)
		grouped[key] = append(grouped[key], m)
	}

	keys := make([]string, 0, len(grouped))
	for key := range grouped {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	rows := make([]summaryRow, 0, len(keys))

	for _, key := range keys {
		group := grouped[key]

		durations := make([]float64, 0, len(group))
		failures := 0
		for _, m := range group {
			if m.Error != "" {
				failures++
				continue
			}
			durations = append(durations, float64(m.Elapsed)/float64(time.Millisecond))
		}

		row := summaryRow{
			estimator: group[0].Estimator,
			size:      group[0].Size,
			count:     len(group),
			failures:  failures,
		}

		if len(durations) > 0 {
			sort.Float64s(durations)
			row.mean = stat.Mean(durations, nil)
			row.p50 = stat.Quantile(0.5, stat.Empirical, durations, nil)
			row.p95 = stat.Quantile(0.95, stat.Empirical, durations, nil)
			row.max = durations[len(durations)-1]
		}

		rows = append(rows, row)
	}

	return rows
}

// PrintTabularResults renders the runtime summary grouped by estimator and
// sample size.
func (c *ResultCollector) PrintTabularResults(w io.Writer) {
	tw := table.NewWriter()
	tw.SetTitle("Medcouple Runtimes")
	tw.AppendHeader(table.Row{"Estimator", "N", "Runs", "Failures", "Mean (ms)", "P50 (ms)", "P95 (ms)", "Max (ms)"})

	for _, row := range c.summarize() {
		tw.AppendRow(table.Row{
			row.estimator,
			row.size,
			row.count,
			row.failures,
			fmt.Sprintf("%.3f", row.mean),
			fmt.Sprintf("%.3f", row.p50),
			fmt.Sprintf("%.3f", row.p95),
			fmt.Sprintf("%.3f", row.max),
		})
	}

	fmt.Fprint(w, tw.Render())
	// the render function does not put a newline after the table
	fmt.Fprint(w, "\n")
}
