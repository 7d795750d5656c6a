package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/iliyamo/lightbnb/internal/model"
)

// Compat exposes the repositories with swallow-and-log error handling:
// storage failures are logged and reported as an absent result, exactly
// like a lookup that matched nothing. Use Repository directly when the
// two must be told apart.
type Compat struct {
	repo *Repository
	log  *zap.Logger
}

func NewCompat(repo *Repository, log *zap.Logger) *Compat {
	if log == nil {
		log = zap.NewNop()
	}
	return &Compat{repo: repo, log: log}
}

func (c *Compat) GetUserWithEmail(ctx context.Context, email string) *model.User {
	u, err := c.repo.Users.GetUserWithEmail(ctx, email)
	return absentOnError(c, "GetUserWithEmail", u, err)
}

func (c *Compat) GetUserWithID(ctx context.Context, id int64) *model.User {
	u, err := c.repo.Users.GetUserWithID(ctx, id)
	return absentOnError(c, "GetUserWithID", u, err)
}

func (c *Compat) AddUser(ctx context.Context, u model.NewUser) *model.User {
	out, err := c.repo.Users.AddUser(ctx, u)
	return absentOnError(c, "AddUser", out, err)
}

func (c *Compat) AddProperty(ctx context.Context, p model.NewProperty) *model.Property {
	out, err := c.repo.Properties.AddProperty(ctx, p)
	return absentOnError(c, "AddProperty", out, err)
}

// GetAllReservations never returns nil; failures yield an empty slice.
func (c *Compat) GetAllReservations(ctx context.Context, guestID int64, limit int) []model.ReservedProperty {
	out, err := c.repo.Reservations.GetAllReservations(ctx, guestID, limit)
	if err != nil {
		c.report("GetAllReservations", err)
		return []model.ReservedProperty{}
	}
	return out
}

// GetAllProperties never returns nil; failures yield an empty slice.
func (c *Compat) GetAllProperties(ctx context.Context, f model.SearchFilter, limit int) []model.PropertyWithRating {
	out, err := c.repo.Properties.GetAllProperties(ctx, f, limit)
	if err != nil {
		c.report("GetAllProperties", err)
		return []model.PropertyWithRating{}
	}
	return out
}

func (c *Compat) report(op string, err error) {
	if errors.Is(err, ErrNotFound) {
		return
	}
	c.log.Error("storage operation failed", zap.String("op", op), zap.Error(err))
}

func absentOnError[T any](c *Compat, op string, v T, err error) *T {
	if err != nil {
		c.report(op, err)
		return nil
	}
	return &v
}
