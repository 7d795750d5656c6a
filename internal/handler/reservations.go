package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/lightbnb/internal/middleware"
)

// ReservationHandler serves the signed in guest's past stays.
type ReservationHandler struct {
	Reservations ReservationStore
}

func NewReservationHandler(res ReservationStore) *ReservationHandler {
	return &ReservationHandler{Reservations: res}
}

// List returns completed reservations of the current user, oldest first.
func (h *ReservationHandler) List(c echo.Context) error {
	s, ok := middleware.SessionFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not signed in"})
	}
	var limit int
	if err := echo.QueryParamsBinder(c).Int("limit", &limit).BindError(); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid limit"})
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	res, err := h.Reservations.GetAllReservations(ctx, s.UserID, limit)
	if err != nil {
		return storageFailure(c, "load reservations failed", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"reservations": res})
}
