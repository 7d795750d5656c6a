package repository

import (
	"context"

	"github.com/iliyamo/lightbnb/internal/dialect"
	"github.com/iliyamo/lightbnb/internal/model"
)

const userColumns = "id, name, email, password"

type UserRepo struct {
	store Store
	d     dialect.Dialect
}

func NewUserRepo(store Store, d dialect.Dialect) *UserRepo { return &UserRepo{store: store, d: d} }

// GetUserWithEmail fetches the user registered under email (exact match).
func (r *UserRepo) GetUserWithEmail(ctx context.Context, email string) (model.User, error) {
	st := newStatement(r.d)
	q := lines(
		"SELECT "+userColumns+" FROM users",
		"WHERE email = "+st.bind(email),
	)
	var u model.User
	err := queryOne(ctx, r.store, "get user by email", q, st.args, &u)
	return u, err
}

// GetUserWithID fetches a user by primary key.
func (r *UserRepo) GetUserWithID(ctx context.Context, id int64) (model.User, error) {
	st := newStatement(r.d)
	q := lines(
		"SELECT "+userColumns+" FROM users",
		"WHERE id = "+st.bind(id),
	)
	var u model.User
	err := queryOne(ctx, r.store, "get user by id", q, st.args, &u)
	return u, err
}

// AddUser inserts u and returns the stored record with its generated id.
// A duplicate email yields a *StorageError wrapping ErrEmailExists.
func (r *UserRepo) AddUser(ctx context.Context, u model.NewUser) (model.User, error) {
	cols := []model.Column{
		{Name: "name", Value: u.Name},
		{Name: "email", Value: u.Email},
		{Name: "password", Value: u.Password},
	}
	var out model.User
	err := insertReturning(ctx, r.store, r.d, "add user", "users", cols, &out)
	return out, markDuplicate(err, ErrEmailExists)
}
