package classifier

import (
	"context"
	"fmt"
	"os"
)

// Source opens a dataset for reading. Implementations live next to the
// backend they read from (local files here, object storage in core/storage,
// SQL tables in core/database).
type Source interface {
	// Name identifies the source in logs and reports.
	Name() string
	// Open returns a RowReader positioned at the first row.
	Open(ctx context.Context) (RowReader, error)
}

// FileSource reads a delimited dataset from the local filesystem.
type FileSource struct {
	Path  string
	Comma rune
}

// Name returns the file path.
func (s FileSource) Name() string {
	return "file:" + s.Path
}

// Open opens the file and wraps it in a CSV RowReader.
func (s FileSource) Open(_ context.Context) (RowReader, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset file: %w", err)
	}
	return NewCSVReader(f, s.Comma), nil
}
