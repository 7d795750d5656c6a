package config

import "time"

// CacheConfig defines settings for the response cache of the public
// property search. When Enabled is false or no Redis client is
// configured, responses are not cached. TTL defines the lifetime of
// cache entries; Prefix namespaces keys and MaxBodyBytes caps the size
// of a cached response.
type CacheConfig struct {
	Enabled      bool          `koanf:"enabled"`
	TTL          time.Duration `koanf:"ttl"`
	Prefix       string        `koanf:"prefix"`
	MaxBodyBytes int           `koanf:"max_body_bytes" validate:"gte=0"`
}

func defaultCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled:      true,
		TTL:          30 * time.Second,
		Prefix:       "lightbnb:cache",
		MaxBodyBytes: 1 << 20,
	}
}
