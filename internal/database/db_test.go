package database

import (
	"strings"
	"testing"

	"github.com/iliyamo/lightbnb/internal/config"
)

func TestDSNPostgres(t *testing.T) {
	driver, dsn, err := DSN(config.DBConfig{
		Driver: "postgres", Host: "db", Port: "5432", User: "vagrant", Password: "p@ss:word",
		Name: "lightbnb", SSLMode: "disable",
	})
	if err != nil {
		t.Fatalf("DSN error: %v", err)
	}
	if driver != "pgx" {
		t.Fatalf("unexpected driver: %s", driver)
	}
	want := "postgres://vagrant:p%40ss%3Aword@db:5432/lightbnb?sslmode=disable"
	if dsn != want {
		t.Fatalf("dsn mismatch:\nwant: %s\ngot : %s", want, dsn)
	}
}

func TestDSNMySQL(t *testing.T) {
	driver, dsn, err := DSN(config.DBConfig{
		Driver: "mysql", Host: "127.0.0.1", Port: "3306", User: "root", Password: "secret", Name: "lightbnb",
	})
	if err != nil {
		t.Fatalf("DSN error: %v", err)
	}
	if driver != "mysql" {
		t.Fatalf("unexpected driver: %s", driver)
	}
	for _, part := range []string{"root:secret@tcp(127.0.0.1:3306)/lightbnb", "parseTime=true", "charset=utf8mb4"} {
		if !strings.Contains(dsn, part) {
			t.Fatalf("dsn %q missing %q", dsn, part)
		}
	}
}

func TestDSNUnknownDriver(t *testing.T) {
	if _, _, err := DSN(config.DBConfig{Driver: "sqlite"}); err == nil {
		t.Fatalf("expected error")
	}
}
