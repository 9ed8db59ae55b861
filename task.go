package matmul

import "fmt"

// cellTask is one output position to compute: a read-only view over both
// operands. Consumed exactly once by exactly one worker.
type cellTask struct {
	row, col int
	a, b     Matrix
}

// cellResult is the computed value for one cellTask, or the worker's failure.
type cellResult struct {
	row, col int
	value    float64
	err      error
}

// compute accumulates sum over k of a[row][k]*b[k][col], k ascending. The
// fixed order makes the result independent of worker count and scheduling.
func (t cellTask) compute() float64 {
	var sum float64
	for k := range t.b {
		sum += t.a[t.row][k] * t.b[k][t.col]
	}
	return sum
}

// validateOperands checks both operands before any task exists: emptiness
// first, then rectangularity, then inner-dimension compatibility.
func validateOperands(a, b Matrix) error {
	if err := a.Validate(); err != nil {
		return fmt.Errorf("operand A: %w", err)
	}
	if err := b.Validate(); err != nil {
		return fmt.Errorf("operand B: %w", err)
	}
	_, colsA := a.Dims()
	rowsB, _ := b.Dims()
	if colsA != rowsB {
		return fmt.Errorf("A has %d columns but B has %d rows: %w", colsA, rowsB, ErrDimensionMismatch)
	}
	return nil
}

// cellTasks validates the operands and enumerates one task per output
// position of a×b, rows(a)×cols(b) tasks in total, no duplicates, no
// omissions.
func cellTasks(a, b Matrix) ([]cellTask, error) {
	if err := validateOperands(a, b); err != nil {
		return nil, err
	}
	_, colsB := b.Dims()

	tasks := make([]cellTask, 0, len(a)*colsB)
	for i := range a {
		for j := 0; j < colsB; j++ {
			tasks = append(tasks, cellTask{row: i, col: j, a: a, b: b})
		}
	}
	return tasks, nil
}
