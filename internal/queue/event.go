// Package queue carries listing events between the API and the broker.
package queue

import (
	"time"

	"github.com/iliyamo/lightbnb/internal/model"
)

// PropertyListedEvent is published after an owner lists a property.
type PropertyListedEvent struct {
	PropertyID   int64  `json:"property_id"`
	OwnerID      int64  `json:"owner_id"`
	Title        string `json:"title"`
	City         string `json:"city"`
	CostPerNight int64  `json:"cost_per_night"`
	ListedAt     string `json:"listed_at"`
}

// NewPropertyListedEvent describes p as listed at the given time.
func NewPropertyListedEvent(p model.Property, at time.Time) PropertyListedEvent {
	return PropertyListedEvent{
		PropertyID:   p.ID,
		OwnerID:      p.OwnerID,
		Title:        p.Title,
		City:         p.City,
		CostPerNight: p.CostPerNight,
		ListedAt:     at.UTC().Format(time.RFC3339),
	}
}
