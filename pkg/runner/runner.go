package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/yaklabco/gobasic/internal/logging"
	"github.com/yaklabco/gobasic/pkg/engine"
)

// Runner processes many files with one engine.
type Runner struct {
	// Engine handles per-file processing with safety guarantees.
	Engine *engine.Engine
}

// New creates a new Runner with the given engine.
func New(e *engine.Engine) *Runner {
	return &Runner{Engine: e}
}

// Run discovers files under opts.Paths and processes them concurrently.
// Outcomes are returned in discovery order whatever order the workers
// finish in.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}
	return r.RunFiles(ctx, files, opts)
}

// RunFiles processes an explicit list of files, skipping discovery.
func (r *Runner) RunFiles(ctx context.Context, files []string, opts Options) (*Result, error) {
	logger := logging.FromContext(ctx)
	start := time.Now()

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

	workCh := make(chan int)
	outcomes := make([]*FileOutcome, len(files))

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range workCh {
				outcome := r.process(ctx, files[i], opts.Engine)
				outcomes[i] = &outcome
			}
		}()
	}

feed:
	for i := range files {
		select {
		case <-ctx.Done():
			break feed
		case workCh <- i:
		}
	}
	close(workCh)
	wg.Wait()

	for _, outcome := range outcomes {
		if outcome != nil {
			result.accumulate(*outcome)
		}
	}

	logger.Debug("run complete",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesWithErrors, result.Stats.FilesWithErrors,
		logging.FieldFilesChanged, result.Stats.FilesChanged,
		logging.FieldJobs, jobs,
		logging.FieldDuration, time.Since(start))

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}
	return result, nil
}

func (r *Runner) process(ctx context.Context, path string, opts engine.Options) FileOutcome {
	outcome := FileOutcome{Path: path}
	res, err := r.Engine.ProcessFile(ctx, path, opts)
	if err != nil {
		outcome.Error = err
		return outcome
	}
	outcome.Result = res
	return outcome
}
