package classifier

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Required dataset columns.
const (
	ColumnPattern = "Pattern"
	ColumnParent  = "Parent"
)

// patternAliases are header names accepted in place of ColumnPattern.
var patternAliases = []string{ColumnPattern, "PropertyName"}

// RowReader yields dataset rows one at a time. The first row returned after
// any skipped preamble is the header. Read returns io.EOF when exhausted.
type RowReader interface {
	Read() ([]string, error)
	Close() error
}

// LoadOptions controls how a dataset is read.
type LoadOptions struct {
	// SkipRows is the number of preamble rows preceding the header.
	SkipRows int
}

// Load reads every entry from rows, in source order, and returns them with
// the property column names in header order. Any structural problem fails
// the whole load with ErrMalformedDataset; no row is ever dropped.
func Load(rows RowReader, opts LoadOptions) ([]Entry, []string, error) {
	for i := 0; i < opts.SkipRows; i++ {
		if _, err := rows.Read(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, nil, fmt.Errorf("%w: missing header", ErrMalformedDataset)
			}
			return nil, nil, fmt.Errorf("%w: preamble row %d: %v", ErrMalformedDataset, i+1, err)
		}
	}

	header, err := rows.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, fmt.Errorf("%w: missing header", ErrMalformedDataset)
		}
		return nil, nil, fmt.Errorf("%w: header: %v", ErrMalformedDataset, err)
	}

	layout, err := parseHeader(header)
	if err != nil {
		return nil, nil, err
	}

	var entries []Entry
	seen := make(map[string]int)
	line := opts.SkipRows + 1

	for {
		record, err := rows.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, nil, fmt.Errorf("%w: row %d: %v", ErrMalformedDataset, line, err)
		}
		if len(record) != len(header) {
			return nil, nil, fmt.Errorf("%w: row %d: expected %d columns, got %d",
				ErrMalformedDataset, line, len(header), len(record))
		}

		pattern := record[layout.pattern]
		if pattern == "" {
			return nil, nil, fmt.Errorf("%w: row %d: empty pattern", ErrMalformedDataset, line)
		}
		if prev, dup := seen[pattern]; dup {
			return nil, nil, fmt.Errorf("%w: row %d: pattern %q already declared by entry %d",
				ErrMalformedDataset, line, pattern, prev)
		}

		entry := Entry{
			Pattern:    pattern,
			Parent:     record[layout.parent],
			Properties: make(map[string]string),
			Ordinal:    len(entries),
		}
		for i, col := range layout.columns {
			if v := record[col]; v != "" {
				entry.Properties[layout.properties[i]] = v
			}
		}

		seen[pattern] = entry.Ordinal
		entries = append(entries, entry)
	}

	return entries, layout.properties, nil
}

type headerLayout struct {
	pattern    int
	parent     int
	properties []string
	columns    []int
}

func parseHeader(header []string) (*headerLayout, error) {
	layout := &headerLayout{pattern: -1, parent: -1}
	names := make(map[string]struct{}, len(header))

	for i, raw := range header {
		name := strings.TrimSpace(raw)
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		if name == "" {
			return nil, fmt.Errorf("%w: header column %d has no name", ErrMalformedDataset, i+1)
		}
		key := strings.ToLower(name)
		if _, dup := names[key]; dup {
			return nil, fmt.Errorf("%w: header column %q declared twice", ErrMalformedDataset, name)
		}
		names[key] = struct{}{}

		switch {
		case isPatternColumn(name):
			if layout.pattern >= 0 {
				return nil, fmt.Errorf("%w: header declares more than one pattern column", ErrMalformedDataset)
			}
			layout.pattern = i
		case strings.EqualFold(name, ColumnParent):
			layout.parent = i
		default:
			layout.properties = append(layout.properties, name)
			layout.columns = append(layout.columns, i)
		}
	}

	if layout.pattern < 0 {
		return nil, fmt.Errorf("%w: header is missing the %q column", ErrMalformedDataset, ColumnPattern)
	}
	if layout.parent < 0 {
		return nil, fmt.Errorf("%w: header is missing the %q column", ErrMalformedDataset, ColumnParent)
	}
	return layout, nil
}

func isPatternColumn(name string) bool {
	for _, alias := range patternAliases {
		if strings.EqualFold(name, alias) {
			return true
		}
	}
	return false
}

// NewCSVReader wraps r in a RowReader using standard CSV quoting. A zero
// comma defaults to ','. Input is UTF-8 unless a byte order mark says
// UTF-16; the mark itself is dropped and invalid bytes become U+FFFD.
// Field counts are checked by Load, not by the CSV reader, so ragged rows
// surface as ErrMalformedDataset with a row number.
func NewCSVReader(r io.Reader, comma rune) RowReader {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	cr := csv.NewReader(decoded)
	if comma != 0 {
		cr.Comma = comma
	}
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = false
	return &csvRows{reader: cr, closer: r}
}

type csvRows struct {
	reader *csv.Reader
	closer io.Reader
}

func (c *csvRows) Read() ([]string, error) {
	return c.reader.Read()
}

func (c *csvRows) Close() error {
	if rc, ok := c.closer.(io.Closer); ok {
		return rc.Close()
	}
	return nil
}
