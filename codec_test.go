package matmul_test

import (
	"bytes"
	"io/fs"
	"math/rand"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fogfactory/matmul"
	"github.com/maxatome/go-testdeep/td"
)

func TestCodec(t *testing.T) {
	t.Run("write_format", func(t *testing.T) {
		// Arrange
		m := matmul.Matrix{{19, 22}, {43, 50.5}}
		var buf bytes.Buffer

		// Act
		err := matmul.WriteMatrix(&buf, m)

		// Assert
		td.Require(t).CmpNoError(err)
		td.Cmp(t, buf.String(), "19 22\n43 50.5\n")
	})

	t.Run("round_trip", func(t *testing.T) {
		// Arrange
		rng := rand.New(rand.NewSource(8))
		m := randomRect(4, 6, rng)
		var buf bytes.Buffer

		// Act
		td.Require(t).CmpNoError(matmul.WriteMatrix(&buf, m))
		back, err := matmul.ReadMatrix(&buf)

		// Assert: 'g'/-1 formatting round-trips float64 exactly.
		td.Require(t).CmpNoError(err)
		td.CmpTrue(t, back.Equal(m))
	})

	t.Run("read_skips_blank_lines", func(t *testing.T) {
		in := strings.NewReader("1 2\n\n  \n3 4\n\n")

		m, err := matmul.ReadMatrix(in)

		td.Require(t).CmpNoError(err)
		td.Cmp(t, m, matmul.Matrix{{1, 2}, {3, 4}})
	})

	t.Run("read_rejects_ragged_rows", func(t *testing.T) {
		in := strings.NewReader("1 2 3\n4 5\n")

		m, err := matmul.ReadMatrix(in)

		td.CmpErrorIs(t, err, matmul.ErrRaggedRows)
		td.CmpNil(t, m)
	})

	t.Run("read_rejects_empty_input", func(t *testing.T) {
		m, err := matmul.ReadMatrix(strings.NewReader("\n\n"))

		td.CmpErrorIs(t, err, matmul.ErrEmptyOperand)
		td.CmpNil(t, m)
	})

	t.Run("read_rejects_non_numeric", func(t *testing.T) {
		m, err := matmul.ReadMatrix(strings.NewReader("1 x\n"))

		td.CmpError(t, err)
		td.CmpNil(t, m)
	})

	t.Run("file_round_trip", func(t *testing.T) {
		// Arrange
		path := filepath.Join(t.TempDir(), "result.txt")
		m := matmul.Matrix{{1.5, -2}, {0, 4}}

		// Act
		td.Require(t).CmpNoError(matmul.WriteMatrixFile(path, m))
		back, err := matmul.ReadMatrixFile(path)

		// Assert
		td.Require(t).CmpNoError(err)
		td.CmpTrue(t, back.Equal(m))
	})

	t.Run("missing_file", func(t *testing.T) {
		m, err := matmul.ReadMatrixFile(filepath.Join(t.TempDir(), "nope.txt"))

		td.CmpErrorIs(t, err, fs.ErrNotExist)
		td.CmpNil(t, m)
	})

	t.Run("write_rejects_invalid_matrix", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "result.txt")

		err := matmul.WriteMatrixFile(path, matmul.Matrix{})

		td.CmpErrorIs(t, err, matmul.ErrEmptyOperand)
	})
}
