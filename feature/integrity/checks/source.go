package checks

import (
	"context"
	"fmt"
	"os"
	"time"

	"ua-capabilities/core/classifier"
	"ua-capabilities/core/database"
	"ua-capabilities/core/storage"
)

// SourceReport describes whether the dataset source can be read.
type SourceReport struct {
	Source       string       `json:"source"`
	Kind         string       `json:"kind"`
	Size         int64        `json:"size,omitempty"`
	LastModified *time.Time   `json:"last_modified,omitempty"`
	Table        *TableReport `json:"table,omitempty"`
	Errors       []string     `json:"errors"`
	Status       string       `json:"status"` // "ok", "error"
}

// CheckSource verifies that src is reachable without loading it: the file
// exists, the bucket and object exist, or the table has the dataset columns.
func CheckSource(ctx context.Context, src classifier.Source) (*SourceReport, error) {
	if src == nil {
		return nil, fmt.Errorf("dataset source is nil")
	}

	report := &SourceReport{
		Source: src.Name(),
		Errors: []string{},
		Status: "ok",
	}
	fail := func(err error) {
		report.Errors = append(report.Errors, err.Error())
		report.Status = "error"
	}

	switch s := src.(type) {
	case classifier.FileSource:
		report.Kind = "file"
		info, err := os.Stat(s.Path)
		if err != nil {
			fail(err)
			break
		}
		if info.IsDir() {
			fail(fmt.Errorf("%s is a directory", s.Path))
			break
		}
		mod := info.ModTime()
		report.Size = info.Size()
		report.LastModified = &mod
	case storage.ObjectSource:
		report.Kind = "storage"
		info, err := s.Check(ctx)
		if err != nil {
			fail(err)
			break
		}
		mod := info.LastModified
		report.Size = info.Size
		report.LastModified = &mod
	case database.TableSource:
		report.Kind = "database"
		tbl, err := CheckTable(s.DB, s.Table, s.OrderColumn)
		if err != nil {
			fail(err)
			break
		}
		report.Table = tbl
		if tbl.Status != "ok" {
			fail(fmt.Errorf("table %s is missing columns: %v", tbl.Table, tbl.MissingColumns))
		}
	default:
		return nil, fmt.Errorf("unsupported dataset source %T", src)
	}

	return report, nil
}
