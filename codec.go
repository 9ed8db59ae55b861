package matmul

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ReadMatrix parses the plain text matrix format: one row per line, values
// separated by whitespace, no header. Blank lines are skipped. The shape is
// inferred from the input and rows must all have the same length.
func ReadMatrix(r io.Reader) (Matrix, error) {
	var m Matrix
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]float64, len(fields))
		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: parse %q: %w", lineNo, field, err)
			}
			row[i] = v
		}
		m = append(m, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read matrix: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// WriteMatrix renders m in the same format ReadMatrix consumes: values in
// Go's default decimal text form, single spaces between them, one
// newline-terminated line per row.
func WriteMatrix(w io.Writer, m Matrix) error {
	bw := bufio.NewWriter(w)
	for _, row := range m {
		for j, v := range row {
			if j > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return fmt.Errorf("write matrix: %w", err)
				}
			}
			if _, err := bw.WriteString(strconv.FormatFloat(v, 'g', -1, 64)); err != nil {
				return fmt.Errorf("write matrix: %w", err)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("write matrix: %w", err)
		}
	}
	return bw.Flush()
}

// ReadMatrixFile reads a matrix from the named file.
func ReadMatrixFile(path string) (Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	defer f.Close()

	m, err := ReadMatrix(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return m, nil
}

// WriteMatrixFile writes m to the named file, replacing any previous content.
// Nothing is written when m is structurally invalid, so a failed multiply
// never leaves a partial output file behind.
func WriteMatrixFile(path string, m Matrix) error {
	if err := m.Validate(); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := WriteMatrix(f, m); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
