package cmd

import (
	"context"
	"fmt"

	"ua-capabilities/core/classifier"
	"ua-capabilities/core/config"
	"ua-capabilities/core/database"
	"ua-capabilities/core/dataset"
	"ua-capabilities/core/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// newSource builds the configured dataset source. Storage and database
// connections are only opened when the source needs them.
func newSource(cfg *config.Config, logg *zap.Logger) (classifier.Source, error) {
	return dataset.NewSource(cfg.Dataset, cfg.Storage.Bucket, dataset.Connectors{
		Storage: func() (storage.Client, error) {
			return storage.NewClient(cfg.Storage)
		},
		Database: func() (*gorm.DB, error) {
			db, err := database.Connect(cfg.Database)
			if err != nil {
				return nil, err
			}
			logg.Info("Connected to dataset database", zap.String("driver", cfg.Database.Driver))
			return db, nil
		},
	})
}

// buildEngine loads the dataset and builds the classification engine.
func buildEngine(ctx context.Context, cfg *config.Config, logg *zap.Logger) (*classifier.Engine, classifier.Source, error) {
	src, err := newSource(cfg, logg)
	if err != nil {
		return nil, nil, err
	}

	eng, err := initEngine(ctx, cfg, src, logg)
	if err != nil {
		return nil, src, err
	}
	return eng, src, nil
}

func initEngine(ctx context.Context, cfg *config.Config, src classifier.Source, logg *zap.Logger) (*classifier.Engine, error) {
	eng, err := classifier.Initialize(ctx, src, cfg.Dataset.Options(logg))
	if err != nil {
		return nil, fmt.Errorf("failed to build engine from %s: %w", src.Name(), err)
	}
	return eng, nil
}
