package checks

import (
	"fmt"
	"strings"

	"ua-capabilities/core/database"

	"gorm.io/gorm"
)

// TableReport strictly types the result of a dataset table check.
type TableReport struct {
	Table          string   `json:"table"`
	Columns        []string `json:"columns"`
	MissingColumns []string `json:"missing_columns"`
	Status         string   `json:"status"` // "ok", "error"
}

// requiredColumn lists the accepted spellings of a column, lower-cased.
type requiredColumn []string

var datasetColumns = []requiredColumn{
	{"pattern", "propertyname"},
	{"parent"},
}

// CheckTable verifies that a dataset table exists and carries the Pattern
// and Parent columns, plus orderColumn when set.
func CheckTable(db *gorm.DB, table, orderColumn string) (*TableReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	actualCols, err := database.GetTableColumns(db, table)
	if err != nil {
		return nil, err
	}

	report := &TableReport{
		Table:          table,
		Columns:        make([]string, 0, len(actualCols)),
		MissingColumns: []string{},
		Status:         "ok",
	}

	actual := make(map[string]struct{}, len(actualCols))
	for _, col := range actualCols {
		actual[col.Field] = struct{}{}
		report.Columns = append(report.Columns, col.Field)
	}

	if len(actualCols) == 0 {
		report.Status = "error"
		report.MissingColumns = append(report.MissingColumns, "table "+table)
		return report, nil
	}

	required := datasetColumns
	if orderColumn != "" {
		required = append(required[:len(required):len(required)], requiredColumn{strings.ToLower(orderColumn)})
	}

	for _, names := range required {
		found := false
		for _, name := range names {
			if _, ok := actual[name]; ok {
				found = true
				break
			}
		}
		if !found {
			report.MissingColumns = append(report.MissingColumns, names[0])
			report.Status = "error"
		}
	}

	return report, nil
}
