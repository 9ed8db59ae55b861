package matmul

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/samber/lo"
)

// Multiply computes C = A × B on a pool with one worker per available CPU.
//
// The operation returns only once every cell has been computed; no partial
// result is ever observable. The product is bit-for-bit identical to the
// sequential triple-loop reference whatever the pool size.
func Multiply(a, b Matrix) (Matrix, error) {
	return MultiplyWorkers(a, b, runtime.NumCPU())
}

// MultiplyWorkers is Multiply with an explicit pool size. workers must be
// positive or the call fails with ErrInvalidWorkerCount before any work
// starts.
func MultiplyWorkers(a, b Matrix, workers int) (Matrix, error) {
	return multiply(a, b, workers, nil)
}

// MultiplyLogged is Multiply with every computed cell appended to log as one
// "row col value" line. The log is truncated once, synchronously, before any
// worker starts. Line order depends on scheduling; each cell appears exactly
// once and no two lines interleave.
func MultiplyLogged(a, b Matrix, log *CellLog) (Matrix, error) {
	return MultiplyLoggedWorkers(a, b, log, runtime.NumCPU())
}

// MultiplyLoggedWorkers is MultiplyLogged with an explicit pool size.
// Validation runs first, so an invalid call leaves the log untouched.
func MultiplyLoggedWorkers(a, b Matrix, log *CellLog, workers int) (Matrix, error) {
	if workers <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWorkerCount, workers)
	}
	if err := validateOperands(a, b); err != nil {
		return nil, err
	}
	if err := log.Reset(); err != nil {
		return nil, fmt.Errorf("reset cell log: %w", err)
	}
	return multiply(a, b, workers, log.Append)
}

// multiply dispatches one task per output cell to a bounded pool and
// aggregates the results into a freshly allocated rows(A)×cols(B) matrix.
// emit, when non-nil, runs inside the worker right after the cell value is
// computed; an emit error fails the whole multiply.
func multiply(a, b Matrix, workers int, emit func(row, col int, value float64) error) (Matrix, error) {
	if workers <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWorkerCount, workers)
	}
	tasks, err := cellTasks(a, b)
	if err != nil {
		return nil, err
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("%w: pool of size %d: %v", ErrComputationFailure, workers, err)
	}
	defer pool.Release()

	results := dispatch(pool, lo.SliceToChannel(0, tasks), emit)

	rows, _ := a.Dims()
	_, cols := b.Dims()
	out := NewZero(rows, cols)
	var failure error
	for res := range results {
		if res.err != nil {
			if failure == nil {
				failure = res.err
			}
			continue // keep draining so every outstanding worker is joined
		}
		out[res.row][res.col] = res.value
	}
	if failure != nil {
		return nil, fmt.Errorf("%w: %v", ErrComputationFailure, failure)
	}
	return out, nil
}

// dispatch submits every task from in to the pool and closes the returned
// channel once all of them have reported back. The feeding goroutine blocks
// on Submit whenever the pool is saturated, so at most `workers` cells are in
// flight.
func dispatch(pool *ants.Pool, in <-chan cellTask, emit func(row, col int, value float64) error) <-chan cellResult {
	out := make(chan cellResult)

	go func() {
		var wg sync.WaitGroup
		for task := range in {
			task := task
			wg.Add(1)
			if err := pool.Submit(func() {
				defer wg.Done()
				res := cellResult{row: task.row, col: task.col, value: task.compute()}
				if emit != nil {
					res.err = emit(res.row, res.col, res.value)
				}
				out <- res
			}); err != nil {
				wg.Done()
				out <- cellResult{row: task.row, col: task.col, err: err}
			}
		}
		// Wait for all submitted tasks to report before closing out.
		wg.Wait()
		close(out)
	}()

	return out
}
