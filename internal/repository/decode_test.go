package repository

import (
	"testing"
	"time"

	"github.com/iliyamo/lightbnb/internal/model"
)

func TestDecodeRowWeakTypes(t *testing.T) {
	var p model.PropertyWithRating
	err := decodeRow(Row{
		"ID":             int64(3),
		"cost_per_night": "15000",
		"active":         int64(0),
		"average_rating": "4.2500",
		"unknown_column": "ignored",
	}, &p)
	if err != nil {
		t.Fatalf("decodeRow error: %v", err)
	}
	if p.ID != 3 || p.CostPerNight != 15000 || p.Active {
		t.Fatalf("unexpected property: %+v", p)
	}
	if p.AverageRating == nil || *p.AverageRating != 4.25 {
		t.Fatalf("average rating: %v", p.AverageRating)
	}
}

func TestDecodeRowDates(t *testing.T) {
	var r model.Reservation
	if err := decodeRow(Row{"start_date": "2023-03-01", "end_date": "2023-03-05T00:00:00Z"}, &r); err != nil {
		t.Fatalf("decodeRow error: %v", err)
	}
	if r.StartDate.Format(time.DateOnly) != "2023-03-01" || r.EndDate.Format(time.DateOnly) != "2023-03-05" {
		t.Fatalf("unexpected dates: %v %v", r.StartDate, r.EndDate)
	}
	if err := decodeRow(Row{"start_date": "yesterday"}, &r); err == nil {
		t.Fatalf("expected error for unparseable date")
	}
}
