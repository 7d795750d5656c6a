// Package router wires handlers and middleware onto the echo instance.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/iliyamo/lightbnb/internal/auth"
	"github.com/iliyamo/lightbnb/internal/config"
	"github.com/iliyamo/lightbnb/internal/handler"
	"github.com/iliyamo/lightbnb/internal/logger"
	"github.com/iliyamo/lightbnb/internal/metrics"
	"github.com/iliyamo/lightbnb/internal/middleware"
)

// Deps are the collaborators the routes need.
type Deps struct {
	Config       config.Config
	Log          *zap.Logger
	Redis        *redis.Client // nil disables caching, rate limiting and revocation
	DB           handler.Pinger
	Users        handler.UserStore
	Properties   handler.PropertyStore
	Reservations handler.ReservationStore
	Events       handler.ListingPublisher
}

// New builds the echo instance with the global middleware chain and
// every route registered.
func New(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()

	e.Use(middleware.RequestID())
	e.Use(logger.Middleware(d.Log))
	e.Use(metrics.Middleware())

	Register(e, d)
	return e
}

// Register maps the API routes onto e.
func Register(e *echo.Echo, d Deps) {
	var revoker auth.Revoker = auth.NopRevoker{}
	if d.Redis != nil {
		revoker = auth.NewRedisRevoker(d.Redis, "lightbnb:session")
	}
	requireAuth := middleware.JWTAuth(d.Config.Auth.JWTSecret, revoker)
	cache := middleware.NewResponseCache(d.Config.Cache, d.Redis)

	e.GET("/healthz", handler.Health(d.DB))
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	users := handler.NewUserHandler(d.Users, d.Config.Auth, revoker)
	ug := e.Group("/users", middleware.RateLimit(d.Config.RateLimit, d.Redis))
	ug.POST("", users.Register)
	ug.POST("/login", users.Login)
	ug.POST("/logout", users.Logout, requireAuth)
	ug.GET("/me", users.Me, requireAuth)

	var invalidator handler.CacheInvalidator = cache
	props := handler.NewPropertyHandler(d.Properties, d.Events, invalidator)
	res := handler.NewReservationHandler(d.Reservations)

	api := e.Group("/api")
	api.GET("/properties", props.Search, cache.Middleware())
	api.POST("/properties", props.Create, requireAuth)
	api.GET("/reservations", res.List, requireAuth)
}
