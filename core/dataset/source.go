package dataset

import (
	"fmt"
	"strings"

	"ua-capabilities/core/classifier"
	"ua-capabilities/core/database"
	"ua-capabilities/core/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Connectors open the backends a source may need. They are only called for
// the selected source kind.
type Connectors struct {
	Storage  func() (storage.Client, error)
	Database func() (*gorm.DB, error)
}

// NewSource builds the configured classifier.Source.
func NewSource(cfg Config, bucket string, conn Connectors) (classifier.Source, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch strings.ToLower(cfg.Source) {
	case SourceStorage:
		if conn.Storage == nil {
			return nil, fmt.Errorf("storage source selected but no storage connector")
		}
		client, err := conn.Storage()
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		return storage.ObjectSource{Client: client, Bucket: bucket, Object: cfg.Object, Comma: cfg.Comma()}, nil
	case SourceDatabase:
		if conn.Database == nil {
			return nil, fmt.Errorf("database source selected but no database connector")
		}
		db, err := conn.Database()
		if err != nil {
			return nil, err
		}
		return database.TableSource{DB: db, Table: cfg.Table, OrderColumn: cfg.OrderColumn}, nil
	default:
		return classifier.FileSource{Path: cfg.Path, Comma: cfg.Comma()}, nil
	}
}

// Options returns the engine options derived from cfg.
func (c Config) Options(log *zap.Logger) classifier.Options {
	return classifier.Options{
		LoadOptions:        classifier.LoadOptions{SkipRows: c.SkipRows},
		DeviceTypeProperty: c.DeviceTypeProperty,
		Logger:             log,
	}
}
