package repository

import (
	"context"
	"regexp"
	"strconv"
	"sync"
	"testing"
)

type call struct {
	query string
	args  []any
}

// fakeStore records every statement and replays queued row sets.
type fakeStore struct {
	mu      sync.Mutex
	calls   []call
	results [][]Row
	err     error
	exec    Result
}

func (f *fakeStore) Query(_ context.Context, query string, args ...any) ([]Row, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call{query: query, args: args})
	if f.err != nil {
		return nil, f.err
	}
	if len(f.results) == 0 {
		return []Row{}, nil
	}
	rows := f.results[0]
	f.results = f.results[1:]
	return rows, nil
}

func (f *fakeStore) Exec(_ context.Context, query string, args ...any) (Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call{query: query, args: args})
	if f.err != nil {
		return Result{}, f.err
	}
	return f.exec, nil
}

func (f *fakeStore) last(t *testing.T) call {
	t.Helper()
	if len(f.calls) == 0 {
		t.Fatalf("no statement was executed")
	}
	return f.calls[len(f.calls)-1]
}

var (
	pgPlaceholder = regexp.MustCompile(`\$(\d+)`)
	gluedToken    = regexp.MustCompile(`\$\d+[A-Za-z]|[A-Za-z)]\$\d`)
)

// assertBindings checks that the $n placeholders of q appear as
// $1..$len(args), in order, each separated from neighbouring tokens.
func assertBindings(t *testing.T, q string, args []any) {
	t.Helper()
	m := pgPlaceholder.FindAllStringSubmatch(q, -1)
	if len(m) != len(args) {
		t.Fatalf("placeholder/arg mismatch: %d placeholders, %d args\n%s", len(m), len(args), q)
	}
	for i, g := range m {
		if g[1] != strconv.Itoa(i+1) {
			t.Fatalf("placeholder %d out of order: got $%s\n%s", i+1, g[1], q)
		}
	}
	if bad := gluedToken.FindString(q); bad != "" {
		t.Fatalf("placeholder glued to neighbouring token %q\n%s", bad, q)
	}
}
