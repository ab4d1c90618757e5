package cache

import "time"

// Config holds configuration for the lookup result cache.
type Config struct {
	// TTLSeconds is how long a cached result stays fresh. 0 disables caching.
	TTLSeconds int `mapstructure:"cache_ttl_seconds" default:"300"`
	// Size is the maximum number of cached results. 0 disables caching.
	Size int `mapstructure:"cache_size" default:"10000"`
}

// TTL returns the configured time-to-live.
func (c Config) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}
