package model

// DefaultLimit caps result sets when the caller does not ask for a limit.
const DefaultLimit = 10

// SearchFilter narrows a property search. Zero values mean "not set".
// The price range only applies when both bounds are set.
type SearchFilter struct {
	City                 string
	OwnerID              int64
	MinimumPricePerNight int64
	MaximumPricePerNight int64
	MinimumRating        float64
}

// HasPriceRange reports whether both price bounds are present.
func (f SearchFilter) HasPriceRange() bool {
	return f.MinimumPricePerNight != 0 && f.MaximumPricePerNight != 0
}

// Limit normalizes a caller supplied result cap.
func Limit(n int) int {
	if n <= 0 {
		return DefaultLimit
	}
	return n
}
