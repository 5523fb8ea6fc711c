package config

import "time"

// CacheConfig defines settings for the response cache middleware.  Only the
// static menu route is cached; chart and admin responses must always reflect
// the store, so they never pass through the cache.
type CacheConfig struct {
	Enabled      bool
	TTL          time.Duration
	Prefix       string
	MaxBodyBytes int64
}

// LoadCacheConfig reads environment variables to build a CacheConfig.
// Defaults are used when variables are not set.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled:      envBool("CACHE_ENABLED", true),
		TTL:          envDur("CACHE_TTL", 30*time.Second),
		Prefix:       envStr("CACHE_PREFIX", "cache"),
		MaxBodyBytes: int64(envInt("CACHE_MAX_BODY_BYTES", 1<<20)),
	}
}
