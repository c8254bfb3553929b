package telemetry

import (
	"fmt"
	"io/fs"
	"os"
	"sort"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// WriteChartPage renders an HTML page with one runtime line per estimator
// over the swept sample sizes, plus a box plot of the raw runtimes.
func (c *ResultCollector) WriteChartPage(path string) error {
	page := components.NewPage()
	page.SetLayout(components.PageFlexLayout)

	rows := c.summarize()

	sizes := make([]int, 0)
	seen := make(map[int]bool)
	estimators := make([]string, 0)
	seenEstimator := make(map[string]bool)

	for _, row := range rows {
		if !seen[row.size] {
			seen[row.size] = true
			sizes = append(sizes, row.size)
		}
		if !seenEstimator[row.estimator] {
			seenEstimator[row.estimator] = true
			estimators = append(estimators, row.estimator)
		}
	}

	sort.Ints(sizes)
	sort.Strings(estimators)

	xLabels := make([]string, len(sizes))
	for i, size := range sizes {
		xLabels[i] = fmt.Sprintf("%d", size)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Medcouple Runtime",
			Subtitle: "mean milliseconds per computation",
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "sample size", Type: "category"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value"}),
		charts.WithToolboxOpts(opts.Toolbox{Show: true}),
		charts.WithLegendOpts(opts.Legend{Left: "center", Top: "top"}))

	line.SetXAxis(xLabels)

	for _, estimator := range estimators {
		means := make(map[int]float64)
		for _, row := range rows {
			if row.estimator == estimator {
				means[row.size] = row.mean
			}
		}

		items := make([]opts.LineData, len(sizes))
		for i, size := range sizes {
			items[i] = opts.LineData{Value: means[size], XAxisIndex: i}
		}

		line.AddSeries(estimator, items)
	}

	line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: true}))

	box := charts.NewBoxPlot()
	box.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Runtime Spread",
			Subtitle: "milliseconds per sample size",
		}),
	)
	box.SetXAxis(xLabels).AddSeries("boxplot", c.boxPlotItems(sizes))

	page.AddCharts(line, box)

	var perms fs.FileMode = 0666
	flag := os.O_RDWR | os.O_CREATE | os.O_TRUNC

	f, err := os.OpenFile(path, flag, perms)
	if err != nil {
		return err
	}

	defer f.Close()

	return page.Render(f)
}

func (c *ResultCollector) boxPlotItems(sizes []int) []opts.BoxPlotData {
	bySize := make(map[int][]float64)

	for _, m := range c.Measurements() {
		if m.Error != "" {
			continue
		}
		bySize[m.Size] = append(bySize[m.Size], float64(m.Elapsed)/float64(time.Millisecond))
	}

	items := make([]opts.BoxPlotData, 0, len(sizes))
	for _, size := range sizes {
		durations := bySize[size]
		sort.Float64s(durations)
		items = append(items, opts.BoxPlotData{Value: durations})
	}

	return items
}
