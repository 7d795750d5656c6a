package database

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/iliyamo/lightbnb/internal/config"
	"github.com/iliyamo/lightbnb/internal/dialect"
)

// DSN renders the connection string for cfg.Driver and returns the
// database/sql driver name to open it with.
func DSN(cfg config.DBConfig) (driverName, dsn string, err error) {
	switch cfg.Driver {
	case "postgres":
		u := url.URL{
			Scheme: "postgres",
			User:   url.UserPassword(cfg.User, cfg.Password),
			Host:   net.JoinHostPort(cfg.Host, cfg.Port),
			Path:   "/" + cfg.Name,
		}
		if cfg.SSLMode != "" {
			u.RawQuery = url.Values{"sslmode": {cfg.SSLMode}}.Encode()
		}
		return "pgx", u.String(), nil
	case "mysql":
		mc := mysql.NewConfig()
		mc.User = cfg.User
		mc.Passwd = cfg.Password
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(cfg.Host, cfg.Port)
		mc.DBName = cfg.Name
		// parseTime=true -> DATE -> time.Time | loc=UTC keeps dates consistent
		mc.ParseTime = true
		mc.Loc = time.UTC
		mc.Params = map[string]string{"charset": "utf8mb4"}
		return "mysql", mc.FormatDSN(), nil
	default:
		return "", "", fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Open connects to the configured database, applies pool settings and
// verifies the connection. The returned dialect matches the driver.
func Open(cfg config.DBConfig) (*sql.DB, dialect.Dialect, error) {
	driverName, dsn, err := DSN(cfg)
	if err != nil {
		return nil, nil, err
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, nil, err
	}

	// Pool settings
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("ping %s: %w", cfg.Driver, err)
	}
	return db, dialect.MustGet(driverName), nil
}
