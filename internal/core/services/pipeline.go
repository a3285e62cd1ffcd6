package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/wikiplain/internal/core/domain"
	"github.com/custodia-labs/wikiplain/internal/core/ports/driven"
)

// task is a page in flight through the pipeline.
// Fields other than done are written by exactly one worker
// and read only after done is closed.
type task struct {
	page   domain.PageRecord
	done   chan struct{}
	result domain.ConvertedRecord
	err    error
}

// run applies the extractor and publishes the outcome.
func (t *task) run(ctx context.Context, extractor driven.TextExtractor) {
	defer close(t.done)
	defer func() {
		if r := recover(); r != nil {
			t.err = fmt.Errorf("extractor panic: %v", r)
		}
	}()

	text, err := extractor.PlainText(ctx, t.page.RawText)
	if err != nil {
		t.err = err
		return
	}
	t.result = t.page.Convert(text)
}

// dispatch hands a task to a worker with the context it was submitted under.
type dispatch struct {
	ctx  context.Context
	task *task
}

// Pipeline fans pages out to a fixed pool of extraction workers and
// hands the converted records back in submission order.
//
// Usage is two-phase: Submit pages until Full reports true, then Flush
// to collect every outstanding result. After the last Submit the caller
// issues a final Flush and then Close. A Pipeline is driven by a single
// producer goroutine and is not safe for concurrent Submit/Flush calls.
type Pipeline struct {
	extractor driven.TextExtractor
	threshold int

	tasks  chan dispatch
	queue  []*task
	group  *errgroup.Group
	closed bool
}

// NewPipeline starts workers goroutines running extractor.
// threshold is the number of queued pages at which Full reports true.
func NewPipeline(extractor driven.TextExtractor, workers, threshold int) *Pipeline {
	if workers < 1 {
		workers = 1
	}
	if threshold < 1 {
		threshold = 1
	}

	p := &Pipeline{
		extractor: extractor,
		threshold: threshold,
		tasks:     make(chan dispatch, threshold),
		queue:     make([]*task, 0, threshold),
		group:     new(errgroup.Group),
	}
	for i := 0; i < workers; i++ {
		p.group.Go(p.work)
	}
	return p
}

// work runs queued tasks until the task channel is closed.
func (p *Pipeline) work() error {
	for d := range p.tasks {
		d.task.run(d.ctx, p.extractor)
	}
	return nil
}

// Submit dispatches a page to the worker pool and appends it to the
// ordered queue. It only blocks when the pool's backlog is at capacity.
func (p *Pipeline) Submit(ctx context.Context, page domain.PageRecord) error {
	if p.closed {
		return domain.ErrPipelineClosed
	}

	t := &task{
		page: page,
		done: make(chan struct{}),
	}
	select {
	case p.tasks <- dispatch{ctx: ctx, task: t}:
	case <-ctx.Done():
		return ctx.Err()
	}
	p.queue = append(p.queue, t)
	return nil
}

// Pending returns the number of submitted but not yet flushed pages.
func (p *Pipeline) Pending() int {
	return len(p.queue)
}

// Full reports whether the backpressure threshold has been reached.
// The caller must Flush before submitting more work.
func (p *Pipeline) Full() bool {
	return len(p.queue) >= p.threshold
}

// Flush waits for every queued page, clears the queue and returns the
// converted records in submission order.
//
// If any page failed, Flush still waits for the whole batch and then
// returns the first failure in queue order, wrapped in
// ErrTransformFailure, with no records.
func (p *Pipeline) Flush(ctx context.Context) ([]domain.ConvertedRecord, error) {
	defer p.reset()

	var firstErr error
	records := make([]domain.ConvertedRecord, 0, len(p.queue))
	for _, t := range p.queue {
		select {
		case <-t.done:
		case <-ctx.Done():
			return nil, ctx.Err()
		}

		if t.err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("%w: page %d (%s): %w", domain.ErrTransformFailure, t.page.ID, t.page.Title, t.err)
			}
			continue
		}
		records = append(records, t.result)
	}

	if firstErr != nil {
		return nil, firstErr
	}
	return records, nil
}

// reset drops all queued tasks.
func (p *Pipeline) reset() {
	clear(p.queue)
	p.queue = p.queue[:0]
}

// Close stops accepting work and waits for the workers to exit.
// Tasks already dispatched run to completion. Close is idempotent.
func (p *Pipeline) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	close(p.tasks)
	return p.group.Wait()
}
