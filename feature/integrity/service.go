package integrity

import (
	"context"

	"ua-capabilities/core/classifier"
	"ua-capabilities/feature/integrity/checks"

	"go.uber.org/zap"
)

// Report is the combined result of every integrity check.
type Report struct {
	Dataset *checks.DatasetReport `json:"dataset"`
	Source  *checks.SourceReport  `json:"source"`
	Status  string                `json:"status"`
}

// Service handles integrity checks.
type Service struct {
	engine *classifier.Engine
	source classifier.Source
	logger *zap.Logger
}

// NewService creates a new integrity service.
func NewService(engine *classifier.Engine, source classifier.Source, logger *zap.Logger) *Service {
	return &Service{
		engine: engine,
		source: source,
		logger: logger,
	}
}

// CheckDataset reports on the loaded dataset.
func (s *Service) CheckDataset() (*checks.DatasetReport, error) {
	return checks.CheckDataset(s.engine)
}

// CheckSource verifies the dataset source is still reachable.
func (s *Service) CheckSource(ctx context.Context) (*checks.SourceReport, error) {
	return checks.CheckSource(ctx, s.source)
}

// CheckAll runs every check. A check that cannot run is logged and left out
// of the report, which is then marked "error".
func (s *Service) CheckAll(ctx context.Context) *Report {
	report := &Report{Status: "ok"}

	if ds, err := s.CheckDataset(); err != nil {
		s.logger.Error("Dataset check failed", zap.Error(err))
		report.Status = "error"
	} else {
		report.Dataset = ds
	}

	if src, err := s.CheckSource(ctx); err != nil {
		s.logger.Error("Source check failed", zap.Error(err))
		report.Status = "error"
	} else {
		report.Source = src
		if src.Status != "ok" {
			report.Status = "error"
		}
	}

	return report
}
