package matmul

import (
	"fmt"
	"math/rand"
)

// Matrix is a dense row-major matrix: a slice of equal-length rows.
// A Matrix is handed off between components, never shared mutably; once it
// enters a multiply it is treated as read-only.
type Matrix [][]float64

// Dims returns the row and column counts. A matrix with no rows has zero
// columns as well.
func (m Matrix) Dims() (rows, cols int) {
	if len(m) == 0 {
		return 0, 0
	}
	return len(m), len(m[0])
}

// Validate checks the structural invariants: at least one row, at least one
// column, and all rows of equal length.
func (m Matrix) Validate() error {
	rows, cols := m.Dims()
	if rows == 0 || cols == 0 {
		return ErrEmptyOperand
	}
	for i, row := range m {
		if len(row) != cols {
			return fmt.Errorf("row %d has %d values, want %d: %w", i, len(row), cols, ErrRaggedRows)
		}
	}
	return nil
}

// Equal reports whether two matrices have the same shape and identical
// values. Comparison is exact; the multiply is deterministic so exact
// equality is the meaningful check.
func (m Matrix) Equal(other Matrix) bool {
	rows, cols := m.Dims()
	orows, ocols := other.Dims()
	if rows != orows || cols != ocols {
		return false
	}
	for i := range m {
		for j := range m[i] {
			if m[i][j] != other[i][j] {
				return false
			}
		}
	}
	return true
}

// Clone returns a deep copy.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = make([]float64, len(row))
		copy(out[i], row)
	}
	return out
}

// NewZero allocates a rows×cols matrix of zeros.
func NewZero(rows, cols int) Matrix {
	out := make(Matrix, rows)
	for i := range out {
		out[i] = make([]float64, cols)
	}
	return out
}

// Random generates a size×size matrix of values in [0, 1) drawn from rng.
func Random(size int, rng *rand.Rand) Matrix {
	out := make(Matrix, size)
	for i := range out {
		row := make([]float64, size)
		for j := range row {
			row[j] = rng.Float64()
		}
		out[i] = row
	}
	return out
}
