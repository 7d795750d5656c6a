package config

import "time"

// RateLimitConfig configures the Redis token bucket guarding the
// account endpoints. Each key starts with Capacity tokens and gains
// RefillTokens every RefillInterval; idle buckets expire after TTL.
type RateLimitConfig struct {
	Enabled        bool          `koanf:"enabled"`
	Capacity       int           `koanf:"capacity"`
	RefillTokens   int           `koanf:"refill_tokens"`
	RefillInterval time.Duration `koanf:"refill_interval"`
	TTL            time.Duration `koanf:"ttl"`
	Prefix         string        `koanf:"prefix"`
}

func defaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Enabled:        true,
		Capacity:       20,
		RefillTokens:   1,
		RefillInterval: 3 * time.Second,
		TTL:            10 * time.Minute,
		Prefix:         "lightbnb:rl",
	}
}

// normalize clamps values that would stall or disable the bucket.
func (c RateLimitConfig) normalize() RateLimitConfig {
	if c.Capacity < 1 {
		c.Capacity = 1
	}
	if c.RefillTokens < 1 {
		c.RefillTokens = 1
	}
	if c.RefillInterval <= 0 {
		c.RefillInterval = time.Second
	}
	if minTTL := 5 * c.RefillInterval; c.TTL < minTTL {
		c.TTL = minTTL
	}
	return c
}
