package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// prices travel as JSON numbers, the same way API clients send them
	decimal.MarshalJSONWithoutQuotes = true
}

// Difficulty is the physical difficulty level of a tour.
type Difficulty string

const (
	DifficultyEasy      Difficulty = "easy"
	DifficultyMedium    Difficulty = "medium"
	DifficultyDifficult Difficulty = "difficult"
)

// DefaultRatingsAverage is assigned to tours that have no reviews yet.
const DefaultRatingsAverage = 4.5

// Location is a geographic point with a human-readable description.
// Coordinates are stored as latitude/longitude in degrees.
type Location struct {
	Lat         float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng         float64 `json:"lng" validate:"gte=-180,lte=180"`
	Address     string  `json:"address,omitempty"`
	Description string  `json:"description,omitempty"`
}

// Tour is a bookable tour together with its rating aggregates.
//
// RatingsAverage and RatingsQuantity are maintained by the review
// repository and must not be set by API callers.
type Tour struct {
	ID              int64            `json:"id"`
	Name            string           `json:"name" validate:"required,min=10,max=40"`
	Slug            string           `json:"slug"`
	Duration        int              `json:"duration" validate:"required,gt=0"`
	MaxGroupSize    int              `json:"maxGroupSize" validate:"required,gt=0"`
	Difficulty      Difficulty       `json:"difficulty" validate:"required,oneof=easy medium difficult"`
	RatingsAverage  float64          `json:"ratingsAverage"`
	RatingsQuantity int              `json:"ratingsQuantity"`
	Price           decimal.Decimal  `json:"price" validate:"dpositive"`
	PriceDiscount   *decimal.Decimal `json:"priceDiscount,omitempty"`
	Summary         string           `json:"summary" validate:"required"`
	Description     string           `json:"description,omitempty"`
	ImageCover      string           `json:"imageCover" validate:"required"`
	Images          []string         `json:"images,omitempty"`
	StartDates      []time.Time      `json:"startDates,omitempty"`
	SecretTour      bool             `json:"secretTour,omitempty"`
	StartLocation   Location         `json:"startLocation"`
	CreatedAt       time.Time        `json:"createdAt"`

	// DurationWeeks is derived from Duration and never persisted.
	DurationWeeks float64 `json:"durationWeeks"`
}

// WithDerivedFields fills the virtual fields that are computed from
// persisted ones.
func (t Tour) WithDerivedFields() Tour {
	t.DurationWeeks = float64(t.Duration) / 7
	return t
}

// TourUpdate carries a partial tour update. Nil fields are left untouched.
type TourUpdate struct {
	Name          *string          `json:"name,omitempty" validate:"omitempty,min=10,max=40"`
	Duration      *int             `json:"duration,omitempty" validate:"omitempty,gt=0"`
	MaxGroupSize  *int             `json:"maxGroupSize,omitempty" validate:"omitempty,gt=0"`
	Difficulty    *Difficulty      `json:"difficulty,omitempty" validate:"omitempty,oneof=easy medium difficult"`
	Price         *decimal.Decimal `json:"price,omitempty"`
	PriceDiscount *decimal.Decimal `json:"priceDiscount,omitempty"`
	Summary       *string          `json:"summary,omitempty"`
	Description   *string          `json:"description,omitempty"`
	ImageCover    *string          `json:"imageCover,omitempty"`
	SecretTour    *bool            `json:"secretTour,omitempty"`
}

// TourStats is one row of the per-difficulty tour statistics.
type TourStats struct {
	Difficulty Difficulty      `json:"difficulty"`
	NumTours   int             `json:"numTours"`
	NumRatings int             `json:"numRatings"`
	AvgRating  float64         `json:"avgRating"`
	AvgPrice   decimal.Decimal `json:"avgPrice"`
	MinPrice   decimal.Decimal `json:"minPrice"`
	MaxPrice   decimal.Decimal `json:"maxPrice"`
}

// MonthlyPlan lists the tours starting in a given month.
type MonthlyPlan struct {
	Month         int      `json:"month"`
	NumTourStarts int      `json:"numTourStarts"`
	Tours         []string `json:"tours"`
}

// TourDistance is the distance from a reference point to a tour's start.
type TourDistance struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Distance float64 `json:"distance"`
}
