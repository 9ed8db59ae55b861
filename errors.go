package matmul

import "errors"

// Sentinel errors for the whole package. All are matched with errors.Is;
// callers get them wrapped with context via %w at the boundary that raised
// them. Messages carry the "matmul: " prefix for grepping across logs.
var (
	// ErrEmptyOperand is returned when an operand matrix has no rows or no
	// columns. Checked before shape compatibility.
	ErrEmptyOperand = errors.New("matmul: empty operand matrix")

	// ErrDimensionMismatch is returned when A's column count differs from
	// B's row count, or when a matrix is not rectangular.
	ErrDimensionMismatch = errors.New("matmul: dimension mismatch")

	// ErrInvalidWorkerCount is returned when an explicit worker-count
	// override is not a positive integer.
	ErrInvalidWorkerCount = errors.New("matmul: worker count must be positive")

	// ErrComputationFailure is returned when any worker of a multiply fails
	// (pool submission error, cell-log append error). The multiply aborts
	// and returns no partial matrix.
	ErrComputationFailure = errors.New("matmul: computation failed")

	// ErrRaggedRows is returned by the text codec when input rows do not all
	// share the same length.
	ErrRaggedRows = errors.New("matmul: rows have unequal lengths")

	// ErrInvalidStreamConfig is returned by RunStream for a non-positive
	// matrix size, a negative count, or a negative worker count.
	ErrInvalidStreamConfig = errors.New("matmul: invalid stream configuration")
)
