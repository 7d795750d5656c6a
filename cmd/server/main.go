package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/iliyamo/lightbnb/internal/config"
	"github.com/iliyamo/lightbnb/internal/database"
	"github.com/iliyamo/lightbnb/internal/handler"
	"github.com/iliyamo/lightbnb/internal/logger"
	"github.com/iliyamo/lightbnb/internal/metrics"
	"github.com/iliyamo/lightbnb/internal/queue"
	"github.com/iliyamo/lightbnb/internal/repository"
	"github.com/iliyamo/lightbnb/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{Level: cfg.App.LogLevel, Environment: cfg.App.Env, ServiceName: "lightbnb"})
	if err != nil {
		_, _ = os.Stderr.WriteString("init logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()
	zap.ReplaceGlobals(log)

	db, d, err := database.Open(cfg.DB)
	if err != nil {
		log.Fatal("open database", zap.Error(err))
	}
	defer db.Close()

	metrics.Register()
	repo := repository.New(repository.NewSQLStore(db, log), d)

	rdb := config.NewRedisClient(cfg.Redis)
	if rdb == nil {
		log.Warn("redis unavailable; caching, rate limiting and logout revocation disabled", zap.String("addr", cfg.Redis.Addr))
	} else {
		defer rdb.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var events handler.ListingPublisher = queue.NopPublisher{}
	if cfg.AMQP.Enabled {
		events = queue.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Queue, log)
		consumer, err := queue.NewConsumer(cfg.AMQP.URL, cfg.AMQP.Queue, "logs/listings.log", log)
		if err != nil {
			log.Fatal("open listing log", zap.Error(err))
		}
		go func() {
			if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error("listing consumer stopped", zap.Error(err))
			}
		}()
	}

	e := router.New(router.Deps{
		Config:       cfg,
		Log:          log,
		Redis:        rdb,
		DB:           db,
		Users:        repo.Users,
		Properties:   repo.Properties,
		Reservations: repo.Reservations,
		Events:       events,
	})

	go func() {
		addr := ":" + cfg.App.Port
		log.Info("listening", zap.String("addr", addr), zap.String("driver", d.Name()))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
}
