package repository

import (
	"context"

	"github.com/iliyamo/lightbnb/internal/dialect"
	"github.com/iliyamo/lightbnb/internal/model"
)

// PropertyRepo searches and creates listings.
type PropertyRepo struct {
	store Store
	d     dialect.Dialect
}

func NewPropertyRepo(store Store, d dialect.Dialect) *PropertyRepo {
	return &PropertyRepo{store: store, d: d}
}

// searchStatement builds the property search query for f. Row level
// filters go to WHERE, the rating filter applies to the aggregated
// average in HAVING. The price range needs both bounds.
func (r *PropertyRepo) searchStatement(f model.SearchFilter, limit int) (string, []any) {
	st := newStatement(r.d)

	var preds []string
	if f.City != "" {
		preds = append(preds, r.d.ILike("properties.city", st.bind(contains(f.City))))
	}
	if f.OwnerID != 0 {
		preds = append(preds, "properties.owner_id = "+st.bind(f.OwnerID))
	}
	if f.HasPriceRange() {
		preds = append(preds,
			"properties.cost_per_night >= "+st.bind(f.MinimumPricePerNight),
			"properties.cost_per_night <= "+st.bind(f.MaximumPricePerNight),
		)
	}

	var post []string
	if f.MinimumRating != 0 {
		post = append(post, "avg(property_reviews.rating) >= "+st.bind(f.MinimumRating))
	}

	q := lines(
		"SELECT properties.*, avg(property_reviews.rating) AS average_rating",
		"FROM properties",
		r.d.ReviewJoin()+" property_reviews ON properties.id = property_reviews.property_id",
		where(preds),
		"GROUP BY properties.id",
		having(post),
		"ORDER BY properties.cost_per_night ASC",
		"LIMIT "+st.bind(model.Limit(limit)),
	)
	return q, st.args
}

// GetAllProperties returns the properties matching f, cheapest first,
// at most limit rows (model.DefaultLimit when limit <= 0).
func (r *PropertyRepo) GetAllProperties(ctx context.Context, f model.SearchFilter, limit int) ([]model.PropertyWithRating, error) {
	const op = "search properties"
	q, args := r.searchStatement(f, limit)
	rows, err := r.store.Query(ctx, q, args...)
	if err != nil {
		return nil, storageErr(op, err)
	}
	out, err := decodeRows[model.PropertyWithRating](rows)
	if err != nil {
		return nil, storageErr(op, err)
	}
	return out, nil
}

// AddProperty inserts the populated fields of p and returns the stored
// listing with its generated id and column defaults.
func (r *PropertyRepo) AddProperty(ctx context.Context, p model.NewProperty) (model.Property, error) {
	cols := p.Columns()
	if len(cols) == 0 {
		return model.Property{}, ErrNoColumns
	}
	var out model.Property
	err := insertReturning(ctx, r.store, r.d, "add property", "properties", cols, &out)
	return out, err
}
