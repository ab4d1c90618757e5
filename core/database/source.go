package database

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"

	"ua-capabilities/core/classifier"
	"ua-capabilities/core/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TableSource reads a dataset stored as a SQL table. Column names form the
// header; OrderColumn, when set, defines the declaration order and is not
// exposed as a property.
type TableSource struct {
	DB          *gorm.DB
	Table       string
	OrderColumn string
}

// Name returns the table name.
func (s TableSource) Name() string {
	return "table:" + s.Table
}

// Open runs a single query over the whole table and streams its rows.
func (s TableSource) Open(ctx context.Context) (classifier.RowReader, error) {
	if s.DB == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	q := s.DB.WithContext(ctx).Table(s.Table)
	if s.OrderColumn != "" {
		q = q.Order(clause.OrderByColumn{Column: clause.Column{Name: s.OrderColumn}})
	}
	rows, err := q.Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to query dataset table %s: %w", s.Table, err)
	}

	columns, err := rows.Columns()
	if err != nil {
		rows.Close()
		return nil, fmt.Errorf("failed to read columns of %s: %w", s.Table, err)
	}

	skip := -1
	header := make([]string, 0, len(columns))
	for i, col := range columns {
		if s.OrderColumn != "" && strings.EqualFold(col, s.OrderColumn) {
			skip = i
			continue
		}
		header = append(header, col)
	}

	return &tableRows{rows: rows, columns: len(columns), header: header, skip: skip}, nil
}

type tableRows struct {
	rows    *sql.Rows
	columns int
	header  []string
	skip    int
	started bool
}

func (t *tableRows) Read() ([]string, error) {
	if !t.started {
		t.started = true
		return t.header, nil
	}

	if !t.rows.Next() {
		if err := t.rows.Err(); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}

	values := make([]any, t.columns)
	ptrs := make([]any, t.columns)
	for i := range values {
		ptrs[i] = &values[i]
	}
	if err := t.rows.Scan(ptrs...); err != nil {
		return nil, err
	}

	record := make([]string, 0, len(t.header))
	for i, v := range values {
		if i == t.skip {
			continue
		}
		record = append(record, utils.ToString(v))
	}
	return record, nil
}

func (t *tableRows) Close() error {
	return t.rows.Close()
}
