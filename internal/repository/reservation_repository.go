package repository

import (
	"context"

	"github.com/iliyamo/lightbnb/internal/dialect"
	"github.com/iliyamo/lightbnb/internal/model"
)

// ReservationRepo reads a guest's reservation history. Reservations are
// never written by this service.
type ReservationRepo struct {
	store Store
	d     dialect.Dialect
}

func NewReservationRepo(store Store, d dialect.Dialect) *ReservationRepo {
	return &ReservationRepo{store: store, d: d}
}

// historyStatement builds the reservation history query. Only stays
// whose end date lies strictly before today are returned.
func (r *ReservationRepo) historyStatement(guestID int64, limit int) (string, []any) {
	st := newStatement(r.d)
	preds := []string{
		"reservations.guest_id = " + st.bind(guestID),
		"reservations.end_date < " + r.d.CurrentDate(),
	}
	q := lines(
		"SELECT properties.*, reservations.id AS reservation_id, reservations.start_date, reservations.end_date,",
		"  avg(reviews.rating) AS average_rating",
		"FROM properties",
		"JOIN property_reviews AS reviews ON reviews.property_id = properties.id",
		"JOIN reservations ON reservations.property_id = reviews.property_id",
		"JOIN users ON reviews.guest_id = users.id",
		where(preds),
		"GROUP BY properties.id, reservations.id",
		"ORDER BY reservations.start_date ASC",
		"LIMIT "+st.bind(model.Limit(limit)),
	)
	return q, st.args
}

// GetAllReservations returns the completed stays of guestID ordered by
// start date, at most limit rows (model.DefaultLimit when limit <= 0).
func (r *ReservationRepo) GetAllReservations(ctx context.Context, guestID int64, limit int) ([]model.ReservedProperty, error) {
	const op = "get reservations"
	q, args := r.historyStatement(guestID, limit)
	rows, err := r.store.Query(ctx, q, args...)
	if err != nil {
		return nil, storageErr(op, err)
	}
	out, err := decodeRows[model.ReservedProperty](rows)
	if err != nil {
		return nil, storageErr(op, err)
	}
	return out, nil
}
