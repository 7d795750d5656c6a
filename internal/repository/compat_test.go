package repository

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/iliyamo/lightbnb/internal/dialect"
	"github.com/iliyamo/lightbnb/internal/model"
)

func newCompat(store Store) (*Compat, *observer.ObservedLogs) {
	core, logs := observer.New(zap.ErrorLevel)
	return NewCompat(New(store, dialect.Postgres), zap.New(core)), logs
}

func TestCompatCollapsesNotFoundAndFailure(t *testing.T) {
	ctx := context.Background()

	missing, missingLogs := newCompat(&fakeStore{})
	broken, brokenLogs := newCompat(&fakeStore{err: errors.New("connection reset")})

	if u := missing.GetUserWithEmail(ctx, "nobody@example.com"); u != nil {
		t.Fatalf("want nil for unknown email, got %+v", u)
	}
	if u := broken.GetUserWithEmail(ctx, "nobody@example.com"); u != nil {
		t.Fatalf("want nil for storage failure, got %+v", u)
	}
	if missingLogs.Len() != 0 {
		t.Fatalf("not found must not be logged as an error")
	}
	if brokenLogs.Len() != 1 {
		t.Fatalf("storage failure must be logged once, got %d", brokenLogs.Len())
	}
	if op := brokenLogs.All()[0].ContextMap()["op"]; op != "GetUserWithEmail" {
		t.Fatalf("unexpected op field: %v", op)
	}
}

func TestCompatReturnsRecords(t *testing.T) {
	store := &fakeStore{results: [][]Row{{{"id": int64(5), "name": "Eve", "email": "eve@example.com", "password": "x"}}}}
	c, _ := newCompat(store)
	u := c.GetUserWithID(context.Background(), 5)
	if u == nil || u.Email != "eve@example.com" {
		t.Fatalf("unexpected user: %+v", u)
	}
}

func TestCompatSwallowsWriteFailures(t *testing.T) {
	c, logs := newCompat(&fakeStore{err: errors.New("boom")})
	if u := c.AddUser(context.Background(), model.NewUser{Name: "a", Email: "a@b.c", Password: "p"}); u != nil {
		t.Fatalf("want nil, got %+v", u)
	}
	if p := c.AddProperty(context.Background(), model.NewProperty{Title: "t"}); p != nil {
		t.Fatalf("want nil, got %+v", p)
	}
	if logs.Len() != 2 {
		t.Fatalf("want 2 logged failures, got %d", logs.Len())
	}
}

func TestCompatListsNeverNil(t *testing.T) {
	c, _ := newCompat(&fakeStore{err: errors.New("boom")})
	if got := c.GetAllProperties(context.Background(), model.SearchFilter{}, 0); got == nil || len(got) != 0 {
		t.Fatalf("want empty properties, got %#v", got)
	}
	if got := c.GetAllReservations(context.Background(), 1, 0); got == nil || len(got) != 0 {
		t.Fatalf("want empty reservations, got %#v", got)
	}
}
