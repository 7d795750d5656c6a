// Package dialect hides the SQL differences between the databases the
// repositories can run against: placeholder style, date arithmetic,
// case-insensitive matching, join support and RETURNING.
package dialect

import (
	"fmt"
	"sync"
)

// Dialect describes how statements are rendered for one database.
type Dialect interface {
	// Name returns the canonical dialect name.
	Name() string
	// Placeholder returns the bind marker for the n-th (1-based) argument.
	Placeholder(n int) string
	// SupportsReturning reports whether INSERT ... RETURNING * is available.
	SupportsReturning() bool
	// CurrentDate returns an expression evaluating to today's date.
	CurrentDate() string
	// ILike renders a case-insensitive LIKE of column against placeholder.
	ILike(column, placeholder string) string
	// ReviewJoin is the join used to attach reviews to properties in search.
	ReviewJoin() string
}

var (
	mu       sync.RWMutex
	dialects = map[string]Dialect{}
)

// Register makes d available under driverName.
func Register(driverName string, d Dialect) {
	mu.Lock()
	defer mu.Unlock()
	dialects[driverName] = d
}

// Get returns the dialect registered for driverName.
func Get(driverName string) (Dialect, bool) {
	mu.RLock()
	defer mu.RUnlock()
	d, ok := dialects[driverName]
	return d, ok
}

// MustGet is like Get but panics on an unknown driver.
func MustGet(driverName string) Dialect {
	d, ok := Get(driverName)
	if !ok || d == nil {
		panic(fmt.Sprintf("dialect: unsupported driver %q", driverName))
	}
	return d
}
