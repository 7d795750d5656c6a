package model

// PropertyReview models a row of the `property_reviews` table. Reviews
// are only read in aggregate (average rating) by this service.
type PropertyReview struct {
	ID            int64  `db:"id" json:"id"`
	PropertyID    int64  `db:"property_id" json:"property_id"`
	GuestID       int64  `db:"guest_id" json:"guest_id"`
	ReservationID int64  `db:"reservation_id" json:"reservation_id"`
	Rating        int16  `db:"rating" json:"rating"`
	Message       string `db:"message" json:"message"`
}
