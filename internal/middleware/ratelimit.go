package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/iliyamo/lightbnb/internal/config"
	"github.com/iliyamo/lightbnb/internal/logger"
)

// bucketScript refills and takes one token atomically.
// KEYS[1] bucket; ARGV now_ms, capacity, refill, interval_ms, ttl_s.
// Returns {allowed, remaining, retry_ms}.
var bucketScript = redis.NewScript(`
local now = tonumber(ARGV[1])
local cap = tonumber(ARGV[2])
local refill = tonumber(ARGV[3])
local every = tonumber(ARGV[4])

local b = redis.call('HMGET', KEYS[1], 'tokens', 'ts')
local tokens = tonumber(b[1]) or cap
local ts = tonumber(b[2]) or now

local steps = math.floor(math.max(0, now - ts) / every)
if steps > 0 then
  tokens = math.min(cap, tokens + steps * refill)
  ts = ts + steps * every
end

local ok, wait = 0, 0
if tokens >= 1 then
  ok = 1
  tokens = tokens - 1
else
  wait = math.max(0, every - (now - ts))
end

redis.call('HSET', KEYS[1], 'tokens', tokens, 'ts', ts)
redis.call('EXPIRE', KEYS[1], ARGV[5])
return {ok, tokens, wait}
`)

// RateLimit applies a token bucket per client IP and route. Requests
// pass through when Redis is unavailable or the script fails.
func RateLimit(cfg config.RateLimitConfig, rdb *redis.Client) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if !cfg.Enabled || rdb == nil {
			return next
		}
		return func(c echo.Context) error {
			key := fmt.Sprintf("%s:%s:%s %s", cfg.Prefix, c.RealIP(), c.Request().Method, c.Path())
			res, err := bucketScript.Run(c.Request().Context(), rdb, []string{key},
				time.Now().UnixMilli(),
				cfg.Capacity,
				cfg.RefillTokens,
				cfg.RefillInterval.Milliseconds(),
				int64(cfg.TTL/time.Second),
			).Int64Slice()
			if err != nil || len(res) != 3 {
				logger.FromEcho(c).Warn("rate limit check failed", zap.String("key", key), zap.Error(err))
				return next(c)
			}

			h := c.Response().Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(cfg.Capacity))
			h.Set("X-RateLimit-Remaining", strconv.FormatInt(res[1], 10))
			if res[0] == 1 {
				return next(c)
			}

			retry := (res[2] + 999) / 1000
			h.Set("Retry-After", strconv.FormatInt(retry, 10))
			return c.JSON(http.StatusTooManyRequests, echo.Map{
				"error":       "too_many_requests",
				"retry_after": retry,
			})
		}
	}
}
