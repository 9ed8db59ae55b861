package matmul

import (
	"fmt"
	"os"
	"strconv"
	"sync"
)

// CellLog is a shared append-only record of computed cells, backed by a file.
// Multiple workers append concurrently; a mutex serializes the whole
// open-write-close of each line so lines never interleave. The handle is
// passed explicitly into the logged multiply rather than living as package
// state.
type CellLog struct {
	mu   sync.Mutex
	path string
}

// NewCellLog returns a log writing to path. The file is not touched until
// Reset or the first Append.
func NewCellLog(path string) *CellLog {
	return &CellLog{path: path}
}

// Path returns the backing file path.
func (l *CellLog) Path() string {
	return l.path
}

// Reset truncates the log to empty, creating the file if needed.
func (l *CellLog) Reset() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.Create(l.path)
	if err != nil {
		return fmt.Errorf("truncate cell log: %w", err)
	}
	return f.Close()
}

// Append writes one "row col value" line under the lock. The value uses Go's
// default decimal text form.
func (l *CellLog) Append(row, col int, value float64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open cell log: %w", err)
	}
	line := fmt.Sprintf("%d %d %s\n", row, col, strconv.FormatFloat(value, 'g', -1, 64))
	if _, err := f.WriteString(line); err != nil {
		f.Close()
		return fmt.Errorf("append cell log: %w", err)
	}
	return f.Close()
}
