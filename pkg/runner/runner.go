package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/yaklabco/doctidy/pkg/pipeline"
)

// Runner orchestrates multi-file processing using a pipeline.Pipeline.
// Each document is processed independently, so the batch is embarrassingly
// parallel; the runner only bounds concurrency and restores ordering.
type Runner struct {
	Pipeline *pipeline.Pipeline
}

// New creates a Runner with the given pipeline.
func New(p *pipeline.Pipeline) *Runner {
	return &Runner{Pipeline: p}
}

// Run discovers files under opts.Paths and processes them concurrently.
// The returned outcomes are ordered deterministically by path.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers complete out of order; index by path and rebuild in the
	// deterministic discovery order.
	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}
	return result, nil
}

func (r *Runner) worker(ctx context.Context, workCh <-chan string, outCh chan<- FileOutcome) {
	for path := range workCh {
		res, err := r.Pipeline.ProcessFile(ctx, path)
		outcome := FileOutcome{Path: path, Result: res, Error: err}

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}
