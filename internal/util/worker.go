package util

import (
	"context"
	"fmt"
	"sync"
	"time"
)

var (
	ErrGroupStopped     = fmt.Errorf("worker group has stopped")
	ErrContextCancelled = fmt.Errorf("worker context cancelled")
)

// Result carries the output of a single work item along with the worker
// that produced it and how long the work took.
type Result[T any] struct {
	Worker  string
	Value   T
	Err     error
	Elapsed time.Duration
}

// WorkItem is a unit of work submitted to a Group.
type WorkItem[T any] func(context.Context) (T, error)

type worker[T any] struct {
	name string
	idle chan *worker[T]
}

func (w *worker[T]) do(ctx context.Context, results chan Result[T], item WorkItem[T]) {
	start := time.Now()

	value, err := item(ctx)
	result := Result[T]{
		Worker:  w.name,
		Value:   value,
		Err:     err,
		Elapsed: time.Since(start),
	}

	select {
	case results <- result:
	case <-ctx.Done():
		return
	}

	// return to the idle pool for the next item
	select {
	case w.idle <- w:
	case <-ctx.Done():
	}
}

// Group is a bounded pool of workers feeding a shared results channel.
// Workers are created lazily up to the configured maximum.
type Group[T any] struct {
	maxWorkers    int
	activeWorkers int
	idle          chan *worker[T]
	queue         chan WorkItem[T]
	stop          chan struct{}
	stopOnce      sync.Once
	mu            sync.Mutex
	closed        bool

	Results chan Result[T]
}

func NewGroup[T any](workers, queueSize int) *Group[T] {
	g := &Group[T]{
		maxWorkers: workers,
		idle:       make(chan *worker[T], workers),
		queue:      make(chan WorkItem[T], queueSize),
		stop:       make(chan struct{}),
		Results:    make(chan Result[T], queueSize),
	}

	go g.run()

	return g
}

func (g *Group[T]) run() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	for {
		select {
		case item := <-g.queue:
			var wkr *worker[T]

			if g.activeWorkers < g.maxWorkers {
				g.activeWorkers++
				wkr = &worker[T]{
					name: fmt.Sprintf("worker-%d", g.activeWorkers),
					idle: g.idle,
				}
			} else {
				select {
				case wkr = <-g.idle:
				case <-g.stop:
					return
				}
			}

			go wkr.do(ctx, g.Results, item)
		case <-g.stop:
			return
		}
	}
}

// Submit adds a work item to the queue, blocking until the queue has room,
// the context is cancelled, or the group is stopped.
func (g *Group[T]) Submit(ctx context.Context, item WorkItem[T]) error {
	g.mu.Lock()
	closed := g.closed
	g.mu.Unlock()

	if closed {
		return fmt.Errorf("%w; work not added to queue", ErrGroupStopped)
	}

	select {
	case g.queue <- item:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w; work not added to queue", ErrContextCancelled)
	case <-g.stop:
		return fmt.Errorf("%w; work not added to queue", ErrGroupStopped)
	}
}

func (g *Group[T]) Stop() {
	g.stopOnce.Do(func() {
		g.mu.Lock()
		g.closed = true
		g.mu.Unlock()

		close(g.stop)
	})
}
