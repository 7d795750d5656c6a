package model

import "time"

// Reservation records a guest's stay at a property.
//
// Fields:
//
//	ID         – primary key identifier.
//	PropertyID – property being reserved.
//	GuestID    – user who made the reservation.
//	StartDate  – first night.
//	EndDate    – checkout date.
type Reservation struct {
	ID         int64     `db:"id" json:"id"`                   // reservations.id
	PropertyID int64     `db:"property_id" json:"property_id"` // reservations.property_id
	GuestID    int64     `db:"guest_id" json:"guest_id"`       // reservations.guest_id
	StartDate  time.Time `db:"start_date" json:"start_date"`   // reservations.start_date
	EndDate    time.Time `db:"end_date" json:"end_date"`       // reservations.end_date
}

// ReservedProperty is one row of a guest's reservation history: the
// property, the reservation it was booked under and the property's
// average review rating.
type ReservedProperty struct {
	Property
	ReservationID int64     `db:"reservation_id" json:"reservation_id"`
	StartDate     time.Time `db:"start_date" json:"start_date"`
	EndDate       time.Time `db:"end_date" json:"end_date"`
	AverageRating *float64  `db:"average_rating" json:"average_rating"`
}
