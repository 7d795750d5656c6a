// Package handler implements the HTTP endpoints of the LightBnB API on
// top of the repository layer.
package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/iliyamo/lightbnb/internal/logger"
	"github.com/iliyamo/lightbnb/internal/model"
	"github.com/iliyamo/lightbnb/internal/queue"
	"github.com/iliyamo/lightbnb/internal/repository"
)

// dbTimeout bounds each repository call made by a handler.
const dbTimeout = 5 * time.Second

// UserStore is the part of the repository used by the account endpoints.
type UserStore interface {
	GetUserWithEmail(ctx context.Context, email string) (model.User, error)
	GetUserWithID(ctx context.Context, id int64) (model.User, error)
	AddUser(ctx context.Context, u model.NewUser) (model.User, error)
}

// PropertyStore is the part of the repository used by the listing endpoints.
type PropertyStore interface {
	GetAllProperties(ctx context.Context, f model.SearchFilter, limit int) ([]model.PropertyWithRating, error)
	AddProperty(ctx context.Context, p model.NewProperty) (model.Property, error)
}

// ReservationStore is the part of the repository used by the trips endpoint.
type ReservationStore interface {
	GetAllReservations(ctx context.Context, guestID int64, limit int) ([]model.ReservedProperty, error)
}

// ListingPublisher announces new listings.
type ListingPublisher interface {
	PublishPropertyListed(ctx context.Context, ev queue.PropertyListedEvent) error
}

// CacheInvalidator drops cached search responses.
type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

// Validator adapts go-playground/validator to echo.
type Validator struct {
	v *validator.Validate
}

func NewValidator() *Validator { return &Validator{v: validator.New()} }

func (cv *Validator) Validate(i any) error { return cv.v.Struct(i) }

// normalizer is implemented by request bodies that clean up their
// fields (trimming, case folding) before validation.
type normalizer interface {
	normalize()
}

// bindValid binds the request body into req, normalizes and validates
// it. It writes the 400 response itself and reports whether the handler
// may go on.
func bindValid(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if n, ok := req.(normalizer); ok {
		n.normalize()
	}
	if err := c.Validate(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Field())
			}
			return false, c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid fields", "fields": fields})
		}
		return false, c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return true, nil
}

// storageFailure logs err and answers 500.
func storageFailure(c echo.Context, msg string, err error) error {
	logger.FromEcho(c).Error(msg, zap.Error(err))
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": msg})
}

func isNotFound(err error) bool { return errors.Is(err, repository.ErrNotFound) }
