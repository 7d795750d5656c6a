package config

import (
	"strings"
	"testing"
	"time"
)

const testSecret = "0123456789abcdef0123"

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("LIGHTBNB_AUTH__JWT_SECRET", testSecret)

	cfg, err := fromEnv()
	if err != nil {
		t.Fatalf("fromEnv error: %v", err)
	}
	if cfg.DB.Driver != "postgres" || cfg.DB.Name != "lightbnb" || cfg.App.Port != "3000" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Auth.JWTSecret != testSecret {
		t.Fatalf("secret not read from env")
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("LIGHTBNB_AUTH__JWT_SECRET", testSecret)
	t.Setenv("LIGHTBNB_DB__DRIVER", "mysql")
	t.Setenv("LIGHTBNB_DB__PORT", "3306")
	t.Setenv("LIGHTBNB_DB__MAX_OPEN_CONNS", "5")
	t.Setenv("LIGHTBNB_DB__CONN_MAX_LIFETIME", "90s")
	t.Setenv("LIGHTBNB_CACHE__ENABLED", "false")
	t.Setenv("LIGHTBNB_RATELIMIT__CAPACITY", "0")

	cfg, err := fromEnv()
	if err != nil {
		t.Fatalf("fromEnv error: %v", err)
	}
	if cfg.DB.Driver != "mysql" || cfg.DB.Port != "3306" || cfg.DB.MaxOpenConns != 5 {
		t.Fatalf("db overrides not applied: %+v", cfg.DB)
	}
	if cfg.DB.ConnMaxLifetime != 90*time.Second {
		t.Fatalf("duration not parsed: %v", cfg.DB.ConnMaxLifetime)
	}
	if cfg.Cache.Enabled {
		t.Fatalf("cache should be disabled")
	}
	if cfg.RateLimit.Capacity != 1 {
		t.Fatalf("capacity should be clamped to 1, got %d", cfg.RateLimit.Capacity)
	}
}

func TestFromEnvValidation(t *testing.T) {
	t.Setenv("LIGHTBNB_AUTH__JWT_SECRET", "short")
	if _, err := fromEnv(); err == nil || !strings.Contains(err.Error(), "JWTSecret") {
		t.Fatalf("want JWTSecret validation error, got %v", err)
	}

	t.Setenv("LIGHTBNB_AUTH__JWT_SECRET", testSecret)
	t.Setenv("LIGHTBNB_DB__DRIVER", "sqlite")
	if _, err := fromEnv(); err == nil || !strings.Contains(err.Error(), "Driver") {
		t.Fatalf("want Driver validation error, got %v", err)
	}
}

func TestRateLimitNormalize(t *testing.T) {
	c := RateLimitConfig{RefillInterval: 2 * time.Second, TTL: time.Second}.normalize()
	if c.Capacity != 1 || c.RefillTokens != 1 {
		t.Fatalf("unexpected clamp: %+v", c)
	}
	if c.TTL != 10*time.Second {
		t.Fatalf("ttl should be at least five refill intervals, got %v", c.TTL)
	}
}

func TestEnvKey(t *testing.T) {
	if got := envKey("LIGHTBNB_DB__MAX_OPEN_CONNS"); got != "db.max_open_conns" {
		t.Fatalf("unexpected key: %s", got)
	}
}
