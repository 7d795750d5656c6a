package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/iliyamo/lightbnb/internal/config"
	"github.com/iliyamo/lightbnb/internal/logger"
)

// ResponseCache caches successful GET responses in Redis. Keys embed a
// generation number; Invalidate bumps it so every older entry is
// skipped and left to expire.
type ResponseCache struct {
	cfg config.CacheConfig
	rdb *redis.Client
}

// NewResponseCache returns a cache, or nil when caching is disabled or
// Redis is unavailable. A nil cache is safe to use.
func NewResponseCache(cfg config.CacheConfig, rdb *redis.Client) *ResponseCache {
	if !cfg.Enabled || rdb == nil {
		return nil
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 30 * time.Second
	}
	return &ResponseCache{cfg: cfg, rdb: rdb}
}

type cachedResponse struct {
	Status int         `json:"status"`
	Header http.Header `json:"header"`
	Body   []byte      `json:"body"`
}

func (rc *ResponseCache) genKey() string { return rc.cfg.Prefix + ":gen" }

func (rc *ResponseCache) generation(ctx context.Context) (int64, error) {
	n, err := rc.rdb.Get(ctx, rc.genKey()).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return n, err
}

func (rc *ResponseCache) key(gen int64, r *http.Request, route string) string {
	sum := sha1.Sum([]byte(route + "?" + r.URL.Query().Encode()))
	return rc.cfg.Prefix + ":" + strconv.FormatInt(gen, 10) + ":" + hex.EncodeToString(sum[:])
}

// Invalidate drops every cached response.
func (rc *ResponseCache) Invalidate(ctx context.Context) error {
	if rc == nil {
		return nil
	}
	return rc.rdb.Incr(ctx, rc.genKey()).Err()
}

// Middleware serves cached responses and stores 200 responses that fit
// within MaxBodyBytes.
func (rc *ResponseCache) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if rc == nil {
			return next
		}
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}
			ctx := c.Request().Context()
			log := logger.FromEcho(c)

			gen, err := rc.generation(ctx)
			if err != nil {
				log.Warn("cache generation lookup failed", zap.Error(err))
				return next(c)
			}
			key := rc.key(gen, c.Request(), c.Path())

			if bs, err := rc.rdb.Get(ctx, key).Bytes(); err == nil {
				var hit cachedResponse
				if json.Unmarshal(bs, &hit) == nil {
					return rc.replay(c, hit)
				}
			}

			rec := &recorder{ResponseWriter: c.Response().Writer, status: http.StatusOK, limit: rc.cfg.MaxBodyBytes}
			c.Response().Writer = rec
			c.Response().Header().Set("X-Cache", "MISS")
			if err := next(c); err != nil {
				return err
			}
			if rec.status != http.StatusOK || rec.overflow {
				return nil
			}

			hdr := c.Response().Header().Clone()
			hdr.Del("X-Cache")
			hdr.Del(echo.HeaderXRequestID)
			payload, err := json.Marshal(cachedResponse{Status: rec.status, Header: hdr, Body: rec.buf.Bytes()})
			if err != nil {
				return nil
			}
			if err := rc.rdb.Set(context.WithoutCancel(ctx), key, payload, rc.cfg.TTL).Err(); err != nil {
				log.Warn("cache store failed", zap.Error(err))
			}
			return nil
		}
	}
}

func (rc *ResponseCache) replay(c echo.Context, hit cachedResponse) error {
	h := c.Response().Header()
	for k, vals := range hit.Header {
		if k == echo.HeaderContentLength {
			continue
		}
		for _, v := range vals {
			h.Add(k, v)
		}
	}
	h.Set("X-Cache", "HIT")
	c.Response().WriteHeader(hit.Status)
	_, err := c.Response().Write(hit.Body)
	return err
}

// recorder tees the response body into a buffer of at most limit bytes.
type recorder struct {
	http.ResponseWriter
	status   int
	buf      bytes.Buffer
	limit    int
	overflow bool
}

func (r *recorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *recorder) Write(b []byte) (int, error) {
	if !r.overflow {
		if r.limit > 0 && r.buf.Len()+len(b) > r.limit {
			r.overflow = true
			r.buf.Reset()
		} else {
			r.buf.Write(b)
		}
	}
	return r.ResponseWriter.Write(b)
}
