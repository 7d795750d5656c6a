package repository

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"

	"github.com/iliyamo/lightbnb/internal/metrics"
)

// Row is one result row keyed by column name.
type Row map[string]any

// Result reports the outcome of a statement run through Exec.
type Result struct {
	LastInsertID int64
	RowsAffected int64
}

// Store executes parameterized statements. Implementations own
// connection pooling and are safe for concurrent use.
type Store interface {
	Query(ctx context.Context, query string, args ...any) ([]Row, error)
	Exec(ctx context.Context, query string, args ...any) (Result, error)
}

// SQLStore is the Store backed by a database/sql pool.
type SQLStore struct {
	db  *sql.DB
	log *zap.Logger
}

func NewSQLStore(db *sql.DB, log *zap.Logger) *SQLStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &SQLStore{db: db, log: log}
}

// Query runs query and materializes every row. []byte values (text
// columns under MySQL) are returned as strings.
func (s *SQLStore) Query(ctx context.Context, query string, args ...any) (out []Row, err error) {
	start := time.Now()
	defer func() { s.observe(query, len(args), start, err) }()

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	out = []Row{}
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		row := make(Row, len(cols))
		for i, c := range cols {
			if b, ok := vals[i].([]byte); ok {
				row[c] = string(b)
				continue
			}
			row[c] = vals[i]
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Exec runs a statement that returns no rows.
func (s *SQLStore) Exec(ctx context.Context, query string, args ...any) (res Result, err error) {
	start := time.Now()
	defer func() { s.observe(query, len(args), start, err) }()

	r, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return Result{}, err
	}
	// pgx reports LastInsertId as unsupported; only MySQL fills it.
	res.LastInsertID, _ = r.LastInsertId()
	res.RowsAffected, _ = r.RowsAffected()
	return res, nil
}

func (s *SQLStore) observe(query string, nargs int, start time.Time, err error) {
	metrics.ObserveStatement(query, start, err)
	s.log.Debug("sql statement",
		zap.String("kind", metrics.StatementKind(query)),
		zap.Int("args", nargs),
		zap.Duration("took", time.Since(start)),
		zap.Error(err),
	)
}
