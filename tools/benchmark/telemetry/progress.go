package telemetry

import (
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/progress"
)

// ProgressTelemetry renders a live tracker per estimator while the worker
// group churns through the generated samples.
type ProgressTelemetry struct {
	writer   progress.Writer
	trackers map[string]*progress.Tracker
}

func NewProgressTelemetry(wOutput io.Writer) *ProgressTelemetry {
	writer := progress.NewWriter()

	writer.SetOutputWriter(wOutput)
	writer.SetAutoStop(false)
	writer.SetTrackerLength(25)
	writer.SetMessageWidth(30)
	writer.SetStyle(progress.StyleDefault)
	writer.SetTrackerPosition(progress.PositionRight)
	writer.SetUpdateFrequency(time.Millisecond * 100)

	writer.Style().Visibility.ETA = true
	writer.Style().Visibility.Percentage = true
	writer.Style().Visibility.Value = true

	return &ProgressTelemetry{
		writer:   writer,
		trackers: make(map[string]*progress.Tracker),
	}
}

// Register adds a tracker before Start; one per estimator.
func (t *ProgressTelemetry) Register(namespace string, total int64) {
	tracker := &progress.Tracker{
		Message: namespace,
		Total:   total,
		Units:   progress.UnitsDefault,
	}

	t.trackers[namespace] = tracker
	t.writer.AppendTracker(tracker)
}

func (t *ProgressTelemetry) Start() {
	go t.writer.Render()
}

func (t *ProgressTelemetry) Increment(namespace string) {
	if tracker, ok := t.trackers[namespace]; ok {
		tracker.Increment(1)
	}
}

func (t *ProgressTelemetry) Stop() {
	for _, tracker := range t.trackers {
		tracker.MarkAsDone()
	}

	t.writer.Stop()
}
