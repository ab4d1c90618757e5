package lookup

import (
	"ua-capabilities/core/cache"
	"ua-capabilities/core/classifier"

	"go.uber.org/zap"
)

// Service answers lookups from a built engine, memoizing results.
type Service struct {
	engine *classifier.Engine
	cache  *cache.Store[classifier.Capabilities]
	logger *zap.Logger
}

// NewService creates a new lookup service.
func NewService(engine *classifier.Engine, cacheCfg cache.Config, logger *zap.Logger) *Service {
	return &Service{
		engine: engine,
		cache:  cache.New[classifier.Capabilities](cacheCfg),
		logger: logger,
	}
}

// Lookup classifies userAgent.
func (s *Service) Lookup(userAgent string) (classifier.Capabilities, error) {
	return s.cache.GetOrBuild(userAgent, func() (classifier.Capabilities, error) {
		return s.engine.Lookup(userAgent)
	})
}

// Properties returns the dataset's property names in header order.
func (s *Service) Properties() []string {
	return s.engine.Properties()
}

// Stats returns the engine build statistics.
func (s *Service) Stats() classifier.Stats {
	return s.engine.Stats()
}

// CachedEntries returns the number of memoized results.
func (s *Service) CachedEntries() int {
	return s.cache.Len()
}
