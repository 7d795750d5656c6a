package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/iliyamo/lightbnb/internal/logger"
	"github.com/iliyamo/lightbnb/internal/middleware"
	"github.com/iliyamo/lightbnb/internal/model"
	"github.com/iliyamo/lightbnb/internal/queue"
)

const maxSearchLimit = 100

// PropertyHandler serves the public search and listing creation.
type PropertyHandler struct {
	Properties PropertyStore
	Events     ListingPublisher
	Cache      CacheInvalidator
}

func NewPropertyHandler(props PropertyStore, events ListingPublisher, cache CacheInvalidator) *PropertyHandler {
	return &PropertyHandler{Properties: props, Events: events, Cache: cache}
}

// Search lists properties matching the query parameters city, owner_id,
// minimum_price_per_night, maximum_price_per_night, minimum_rating and
// limit, cheapest first.
func (h *PropertyHandler) Search(c echo.Context) error {
	var (
		f     model.SearchFilter
		limit int
	)
	err := echo.QueryParamsBinder(c).
		String("city", &f.City).
		Int64("owner_id", &f.OwnerID).
		Int64("minimum_price_per_night", &f.MinimumPricePerNight).
		Int64("maximum_price_per_night", &f.MaximumPricePerNight).
		Float64("minimum_rating", &f.MinimumRating).
		Int("limit", &limit).
		BindError()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid query parameters"})
	}
	if f.OwnerID < 0 || f.MinimumPricePerNight < 0 || f.MaximumPricePerNight < 0 || f.MinimumRating < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "negative filter value"})
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	props, err := h.Properties.GetAllProperties(ctx, f, limit)
	if err != nil {
		return storageFailure(c, "search properties failed", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"properties": props})
}

type listingReq struct {
	Title             string `json:"title" validate:"required,max=255"`
	Description       string `json:"description"`
	ThumbnailPhotoURL string `json:"thumbnail_photo_url" validate:"omitempty,url"`
	CoverPhotoURL     string `json:"cover_photo_url" validate:"omitempty,url"`
	CostPerNight      int64  `json:"cost_per_night" validate:"gte=0"`
	Street            string `json:"street"`
	City              string `json:"city"`
	Province          string `json:"province"`
	PostCode          string `json:"post_code"`
	Country           string `json:"country"`
	ParkingSpaces     int64  `json:"parking_spaces" validate:"gte=0"`
	NumberOfBathrooms int64  `json:"number_of_bathrooms" validate:"gte=0"`
	NumberOfBedrooms  int64  `json:"number_of_bedrooms" validate:"gte=0"`
	Active            bool   `json:"active"`
}

func (r listingReq) toModel(ownerID int64) model.NewProperty {
	return model.NewProperty{
		OwnerID:           ownerID,
		Title:             r.Title,
		Description:       r.Description,
		ThumbnailPhotoURL: r.ThumbnailPhotoURL,
		CoverPhotoURL:     r.CoverPhotoURL,
		CostPerNight:      r.CostPerNight,
		Street:            r.Street,
		City:              r.City,
		Province:          r.Province,
		PostCode:          r.PostCode,
		Country:           r.Country,
		ParkingSpaces:     r.ParkingSpaces,
		NumberOfBathrooms: r.NumberOfBathrooms,
		NumberOfBedrooms:  r.NumberOfBedrooms,
		Active:            r.Active,
	}
}

// Create lists a property owned by the signed in user. The listing
// event and cache invalidation are best effort.
func (h *PropertyHandler) Create(c echo.Context) error {
	s, ok := middleware.SessionFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not signed in"})
	}
	var req listingReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	p, err := h.Properties.AddProperty(ctx, req.toModel(s.UserID))
	if err != nil {
		return storageFailure(c, "create property failed", err)
	}

	log := logger.FromEcho(c)
	if err := h.Cache.Invalidate(ctx); err != nil {
		log.Warn("search cache invalidation failed", zap.Error(err))
	}
	if err := h.Events.PublishPropertyListed(ctx, queue.NewPropertyListedEvent(p, time.Now())); err != nil {
		log.Warn("publish property listed failed", zap.Int64("property_id", p.ID), zap.Error(err))
	}
	return c.JSON(http.StatusCreated, echo.Map{"property": p})
}
