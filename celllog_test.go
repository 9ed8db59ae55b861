package matmul_test

import (
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/fogfactory/matmul"
	"github.com/maxatome/go-testdeep/td"
)

// parseCellLog reads the intermediate log back as position/value records.
func parseCellLog(t *testing.T, path string) map[[2]int]float64 {
	t.Helper()
	raw, err := os.ReadFile(path)
	td.Require(t).CmpNoError(err)

	cells := make(map[[2]int]float64)
	for _, line := range strings.Split(strings.TrimSpace(string(raw)), "\n") {
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		td.Require(t).Len(fields, 3, "log line %q", line)
		i, err := strconv.Atoi(fields[0])
		td.Require(t).CmpNoError(err)
		j, err := strconv.Atoi(fields[1])
		td.Require(t).CmpNoError(err)
		v, err := strconv.ParseFloat(fields[2], 64)
		td.Require(t).CmpNoError(err)
		td.Require(t).Cmp(cells, td.Not(td.ContainsKey([2]int{i, j})), "cell logged twice")
		cells[[2]int{i, j}] = v
	}
	return cells
}

func TestMultiplyLogged(t *testing.T) {
	t.Run("log_covers_output_grid_exactly_once", func(t *testing.T) {
		// Arrange
		rng := rand.New(rand.NewSource(5))
		a := randomRect(3, 4, rng)
		b := randomRect(4, 2, rng)
		log := matmul.NewCellLog(filepath.Join(t.TempDir(), "cells.txt"))

		// Act
		c, err := matmul.MultiplyLoggedWorkers(a, b, log, 4)

		// Assert: 3×2 = 6 lines, one per output cell, matching the product.
		td.Require(t).CmpNoError(err)
		cells := parseCellLog(t, log.Path())
		td.CmpLen(t, cells, 6)
		for pos, v := range cells {
			td.Cmp(t, v, c[pos[0]][pos[1]], "cell (%d,%d)", pos[0], pos[1])
		}
	})

	t.Run("same_product_as_unlogged_multiply", func(t *testing.T) {
		// Arrange
		rng := rand.New(rand.NewSource(6))
		a := randomRect(5, 3, rng)
		b := randomRect(3, 5, rng)
		log := matmul.NewCellLog(filepath.Join(t.TempDir(), "cells.txt"))

		// Act
		logged, err := matmul.MultiplyLogged(a, b, log)

		// Assert
		td.Require(t).CmpNoError(err)
		plain, err := matmul.Multiply(a, b)
		td.Require(t).CmpNoError(err)
		td.CmpTrue(t, logged.Equal(plain))
	})

	t.Run("log_truncated_between_runs", func(t *testing.T) {
		// Arrange
		a := matmul.Matrix{{1, 2}, {3, 4}}
		log := matmul.NewCellLog(filepath.Join(t.TempDir(), "cells.txt"))

		// Act: two multiplies against the same log.
		_, err := matmul.MultiplyLogged(a, a, log)
		td.Require(t).CmpNoError(err)
		_, err = matmul.MultiplyLogged(a, a, log)
		td.Require(t).CmpNoError(err)

		// Assert: only the second run's 4 lines remain.
		td.CmpLen(t, parseCellLog(t, log.Path()), 4)
	})

	t.Run("unwritable_log_fails_the_multiply", func(t *testing.T) {
		// Arrange: a path whose parent directory does not exist.
		a := matmul.Matrix{{1}}
		log := matmul.NewCellLog(filepath.Join(t.TempDir(), "missing", "cells.txt"))

		// Act
		c, err := matmul.MultiplyLogged(a, a, log)

		// Assert: fails before any worker starts, no partial matrix.
		td.CmpError(t, err)
		td.CmpNil(t, c)
	})

	t.Run("validation_errors_before_touching_the_log", func(t *testing.T) {
		// Arrange
		log := matmul.NewCellLog(filepath.Join(t.TempDir(), "cells.txt"))

		// Act
		c, err := matmul.MultiplyLoggedWorkers(matmul.Matrix{{1, 2}}, matmul.Matrix{{1, 2}}, log, 2)

		// Assert: the log file was never created, let alone truncated.
		td.CmpErrorIs(t, err, matmul.ErrDimensionMismatch)
		td.CmpNil(t, c)
		_, statErr := os.Stat(log.Path())
		td.CmpTrue(t, os.IsNotExist(statErr))
	})
}
