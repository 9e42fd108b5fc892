// Package queue serializes render jobs: submissions never block, a single
// worker processes jobs strictly in submission order, and one job's failure
// never stops the loop.
package queue

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/nezastore/gambarfb/internal/render"
)

// Renderer is the pipeline the worker drives for each job.
type Renderer interface {
	Render(ctx context.Context, job render.Job) (render.Result, error)
}

// Notifier delivers a job's terminal outcome: a result on success, an error
// on failure. It runs on the worker goroutine before the next job starts.
type Notifier func(job render.Job, result render.Result, err error)

type item struct {
	job    render.Job
	notify Notifier
}

// Queue is a FIFO with exactly one consumer. The worker starts lazily on
// the first submission and runs for the life of the process; there is no
// per-job timeout or cancellation (known limitation of the design).
type Queue struct {
	logger   zerolog.Logger
	renderer Renderer

	mu    sync.Mutex
	cond  *sync.Cond
	items []item

	start sync.Once
}

// New creates an idle queue; no goroutine runs until the first Submit.
func New(logger zerolog.Logger, renderer Renderer) *Queue {
	q := &Queue{
		logger:   logger.With().Str("component", "queue").Logger(),
		renderer: renderer,
	}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Submit appends the job and returns immediately. Safe for concurrent use;
// the worker is started exactly once across all submissions.
func (q *Queue) Submit(job render.Job, notify Notifier) {
	q.mu.Lock()
	q.items = append(q.items, item{job: job, notify: notify})
	depth := len(q.items)
	q.mu.Unlock()
	q.cond.Signal()

	q.logger.Info().
		Str("job", job.ID).
		Int("depth", depth).
		Msg("job submitted")

	q.start.Do(func() {
		go q.work()
	})
}

// Depth returns the number of jobs waiting (not counting one in flight).
func (q *Queue) Depth() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

func (q *Queue) work() {
	for {
		q.mu.Lock()
		for len(q.items) == 0 {
			q.cond.Wait()
		}
		next := q.items[0]
		q.items = q.items[1:]
		q.mu.Unlock()

		q.process(next)
	}
}

// process runs one job to completion and reports its outcome. Errors and
// panics are confined to the job so the worker loop survives.
func (q *Queue) process(it item) {
	var (
		result render.Result
		err    error
	)

	func() {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("render panicked: %v", r)
			}
		}()
		result, err = q.renderer.Render(context.Background(), it.job)
	}()

	if err != nil {
		q.logger.Error().
			Str("job", it.job.ID).
			Err(err).
			Msg("job failed")
	} else {
		q.logger.Info().
			Str("job", it.job.ID).
			Str("output", result.OutputPath).
			Float64("duration", result.Duration).
			Msg("job completed")
	}

	if it.notify != nil {
		it.notify(it.job, result, err)
	}
}
