package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/iliyamo/lightbnb/internal/config"
	"github.com/iliyamo/lightbnb/internal/metrics"
)

type okPinger struct{}

func (okPinger) PingContext(context.Context) error { return nil }

func testDeps() Deps {
	cfg := config.Defaults()
	cfg.Auth.JWTSecret = "0123456789abcdef0123"
	return Deps{Config: cfg, Log: zap.NewNop(), DB: okPinger{}}
}

func TestRoutesRegistered(t *testing.T) {
	metrics.Register()
	e := New(testDeps())

	want := map[string]bool{
		"POST /users":           false,
		"POST /users/login":     false,
		"POST /users/logout":    false,
		"GET /users/me":         false,
		"GET /api/properties":   false,
		"POST /api/properties":  false,
		"GET /api/reservations": false,
		"GET /healthz":          false,
		"GET /metrics":          false,
	}
	for _, r := range e.Routes() {
		key := r.Method + " " + r.Path
		if _, ok := want[key]; ok {
			want[key] = true
		}
	}
	for k, seen := range want {
		if !seen {
			t.Fatalf("route %s not registered", k)
		}
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	metrics.Register()
	e := New(testDeps())

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/users/me"},
		{http.MethodPost, "/users/logout"},
		{http.MethodPost, "/api/properties"},
		{http.MethodGet, "/api/reservations"},
	} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: status = %d, want 401", tc.method, tc.path, rec.Code)
		}
		if rec.Header().Get("X-Request-ID") == "" {
			t.Fatalf("%s %s: missing request id", tc.method, tc.path)
		}
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("healthz: status = %d", rec.Code)
	}
}
