package dataset

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Source kinds.
const (
	SourceFile     = "file"
	SourceStorage  = "storage"
	SourceDatabase = "database"
)

// Config holds configuration for the dataset the engine is built from.
type Config struct {
	// Source selects where the dataset is read from (file, storage, database).
	Source string `mapstructure:"source" default:"file"`
	// Path is the dataset file path for the file source.
	Path string `mapstructure:"path" default:"data/browscap.csv"`
	// Object is the object key inside storage.bucket for the storage source.
	Object string `mapstructure:"object" default:"browscap.csv"`
	// Table is the table name for the database source.
	Table string `mapstructure:"table" default:"browscap"`
	// OrderColumn defines row order for the database source. It is not
	// exposed as a property.
	OrderColumn string `mapstructure:"order_column" default:"id"`
	// Delimiter is the single-character field separator of file and storage sources.
	Delimiter string `mapstructure:"delimiter" default:","`
	// SkipRows is the number of preamble lines before the header of file and
	// storage sources. The database source has no preamble and rejects it.
	SkipRows int `mapstructure:"skip_rows" default:"0"`
	// DeviceTypeProperty is the column isMobile/isTablet are derived from.
	DeviceTypeProperty string `mapstructure:"device_type_property" default:"Device_Type"`
}

// Validate checks the configuration is usable for the selected source.
func (c Config) Validate() error {
	switch strings.ToLower(c.Source) {
	case SourceFile:
		if c.Path == "" {
			return fmt.Errorf("dataset.path is required for the file source")
		}
	case SourceStorage:
		if c.Object == "" {
			return fmt.Errorf("dataset.object is required for the storage source")
		}
	case SourceDatabase:
		if c.Table == "" {
			return fmt.Errorf("dataset.table is required for the database source")
		}
		if c.SkipRows != 0 {
			return fmt.Errorf("dataset.skip_rows only applies to file and storage sources")
		}
	default:
		return fmt.Errorf("unknown dataset source %q (expected file, storage or database)", c.Source)
	}

	if c.Delimiter != "" && utf8.RuneCountInString(c.Delimiter) != 1 {
		return fmt.Errorf("dataset.delimiter must be a single character, got %q", c.Delimiter)
	}
	if c.SkipRows < 0 {
		return fmt.Errorf("dataset.skip_rows must not be negative")
	}
	return nil
}

// Comma returns the field separator, defaulting to ','.
func (c Config) Comma() rune {
	if c.Delimiter == "" {
		return ','
	}
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}
