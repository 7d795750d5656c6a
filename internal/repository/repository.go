package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/iliyamo/lightbnb/internal/dialect"
	"github.com/iliyamo/lightbnb/internal/model"
)

// Repository bundles the repositories of the booking domain over one
// Store.
type Repository struct {
	Users        *UserRepo
	Reservations *ReservationRepo
	Properties   *PropertyRepo
}

// New returns the repositories for store, rendering SQL for d.
func New(store Store, d dialect.Dialect) *Repository {
	return &Repository{
		Users:        NewUserRepo(store, d),
		Reservations: NewReservationRepo(store, d),
		Properties:   NewPropertyRepo(store, d),
	}
}

// queryOne runs a single-row lookup and decodes it into out.
func queryOne(ctx context.Context, store Store, op, query string, args []any, out any) error {
	rows, err := store.Query(ctx, query, args...)
	if err != nil {
		return storageErr(op, err)
	}
	if len(rows) == 0 {
		return ErrNotFound
	}
	if err := decodeRow(rows[0], out); err != nil {
		return storageErr(op, err)
	}
	return nil
}

// insertReturning inserts cols into table and decodes the stored row
// (with generated id and column defaults) into out. Dialects without
// RETURNING read the row back by its last insert id.
func insertReturning(ctx context.Context, store Store, d dialect.Dialect, op, table string, cols []model.Column, out any) error {
	st := newStatement(d)
	q := st.insert(table, cols)

	if d.SupportsReturning() {
		err := queryOne(ctx, store, op, q+"\nRETURNING *", st.args, out)
		if errors.Is(err, ErrNotFound) {
			return storageErr(op, fmt.Errorf("insert into %s returned no row", table))
		}
		return err
	}

	res, err := store.Exec(ctx, q, st.args...)
	if err != nil {
		return storageErr(op, err)
	}
	sel := newStatement(d)
	q = "SELECT * FROM " + table + " WHERE id = " + sel.bind(res.LastInsertID)
	err = queryOne(ctx, store, op, q, sel.args, out)
	if errors.Is(err, ErrNotFound) {
		return storageErr(op, fmt.Errorf("inserted %s row %d not found", table, res.LastInsertID))
	}
	return err
}
