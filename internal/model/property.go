package model

// Property represents a listing as stored in the `properties` table.
// Costs are stored as integers in the smallest currency unit.
//
// Fields:
//
//	ID                – primary key identifier.
//	OwnerID           – user who owns the listing.
//	Title, Description – free text shown on the listing.
//	ThumbnailPhotoURL, CoverPhotoURL – image locations.
//	CostPerNight      – nightly price.
//	Street … Country  – address fields.
//	ParkingSpaces, NumberOfBathrooms, NumberOfBedrooms – room counts.
//	Active            – whether the listing is visible.
type Property struct {
	ID                int64  `db:"id" json:"id"`
	OwnerID           int64  `db:"owner_id" json:"owner_id"`
	Title             string `db:"title" json:"title"`
	Description       string `db:"description" json:"description"`
	ThumbnailPhotoURL string `db:"thumbnail_photo_url" json:"thumbnail_photo_url"`
	CoverPhotoURL     string `db:"cover_photo_url" json:"cover_photo_url"`
	CostPerNight      int64  `db:"cost_per_night" json:"cost_per_night"`
	Street            string `db:"street" json:"street"`
	City              string `db:"city" json:"city"`
	Province          string `db:"province" json:"province"`
	PostCode          string `db:"post_code" json:"post_code"`
	Country           string `db:"country" json:"country"`
	ParkingSpaces     int64  `db:"parking_spaces" json:"parking_spaces"`
	NumberOfBathrooms int64  `db:"number_of_bathrooms" json:"number_of_bathrooms"`
	NumberOfBedrooms  int64  `db:"number_of_bedrooms" json:"number_of_bedrooms"`
	Active            bool   `db:"active" json:"active"`
}

// PropertyWithRating is a property row together with the average of its
// review ratings. AverageRating is nil when the property has no reviews.
type PropertyWithRating struct {
	Property
	AverageRating *float64 `db:"average_rating" json:"average_rating"`
}

// NewProperty is a sparse listing submission. Only fields holding a
// non-zero value are written; zero values ("" / 0 / false) are left to
// the column defaults.
type NewProperty struct {
	OwnerID           int64  `json:"owner_id"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	ThumbnailPhotoURL string `json:"thumbnail_photo_url"`
	CoverPhotoURL     string `json:"cover_photo_url"`
	CostPerNight      int64  `json:"cost_per_night"`
	Street            string `json:"street"`
	City              string `json:"city"`
	Province          string `json:"province"`
	PostCode          string `json:"post_code"`
	Country           string `json:"country"`
	ParkingSpaces     int64  `json:"parking_spaces"`
	NumberOfBathrooms int64  `json:"number_of_bathrooms"`
	NumberOfBedrooms  int64  `json:"number_of_bedrooms"`
	Active            bool   `json:"active"`
}

// Column is one (column, value) pair of an insert.
type Column struct {
	Name  string
	Value any
}

// Columns returns the populated fields of p in table column order.
func (p NewProperty) Columns() []Column {
	var cols []Column
	str := func(name, v string) {
		if v != "" {
			cols = append(cols, Column{Name: name, Value: v})
		}
	}
	num := func(name string, v int64) {
		if v != 0 {
			cols = append(cols, Column{Name: name, Value: v})
		}
	}

	num("owner_id", p.OwnerID)
	str("title", p.Title)
	str("description", p.Description)
	str("thumbnail_photo_url", p.ThumbnailPhotoURL)
	str("cover_photo_url", p.CoverPhotoURL)
	num("cost_per_night", p.CostPerNight)
	str("street", p.Street)
	str("city", p.City)
	str("province", p.Province)
	str("post_code", p.PostCode)
	str("country", p.Country)
	num("parking_spaces", p.ParkingSpaces)
	num("number_of_bathrooms", p.NumberOfBathrooms)
	num("number_of_bedrooms", p.NumberOfBedrooms)
	if p.Active {
		cols = append(cols, Column{Name: "active", Value: true})
	}
	return cols
}
