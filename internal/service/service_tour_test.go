package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/MKhiriev/go-natours/internal/logger"
	"github.com/MKhiriev/go-natours/internal/mock"
	"github.com/MKhiriev/go-natours/internal/validators"
	"github.com/MKhiriev/go-natours/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestTourService(t *testing.T) (TourService, *mock.MockTourRepository) {
	t.Helper()

	repo := mock.NewMockTourRepository(gomock.NewController(t))
	svc := NewTourValidationService(validators.NewStructValidator()).Wrap(NewTourService(repo, logger.Nop()))

	return svc, repo
}

// tour starts around Los Angeles and one in Banff
func tourStarts() []models.Tour {
	return []models.Tour{
		{ID: 1, Name: "The Sea Explorer", StartLocation: models.Location{Lat: 25.781842, Lng: -80.128473}},
		{ID: 2, Name: "The Forest Hiker", StartLocation: models.Location{Lat: 51.417611, Lng: -116.214531}},
		{ID: 3, Name: "The City Wanderer", StartLocation: models.Location{Lat: 34.052235, Lng: -118.243683}},
		{ID: 4, Name: "The Park Camper", StartLocation: models.Location{Lat: 36.110904, Lng: -115.172652}},
	}
}

// ─────────────────────────────────────────────
// slugify
// ─────────────────────────────────────────────

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"The Forest Hiker":         "the-forest-hiker",
		"  The   Sea  Explorer!  ": "the-sea-explorer",
		"Crème Brûlée Walk":        "creme-brulee-walk",
		"Tour #2: Northern Lights": "tour-2-northern-lights",
		"already-a-slug":           "already-a-slug",
	}

	for in, want := range tests {
		assert.Equal(t, want, slugify(in), "slugify(%q)", in)
	}
}

// ─────────────────────────────────────────────
// CreateTour / UpdateTour
// ─────────────────────────────────────────────

func TestCreateTour_SetsSlug(t *testing.T) {
	svc, repo := newTestTourService(t)

	tour := models.Tour{
		Name:         "The Forest Hiker",
		Duration:     5,
		MaxGroupSize: 25,
		Difficulty:   models.DifficultyEasy,
		Price:        decimal.NewFromInt(397),
		Summary:      "Breathtaking hike",
		ImageCover:   "tour-1-cover.jpg",
	}

	repo.EXPECT().CreateTour(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, got models.Tour) (models.Tour, error) {
			assert.Equal(t, "the-forest-hiker", got.Slug)
			got.ID = 1
			return got, nil
		})

	created, err := svc.CreateTour(context.Background(), tour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
}

func TestCreateTour_InvalidTour_NotStored(t *testing.T) {
	svc, _ := newTestTourService(t)

	_, err := svc.CreateTour(context.Background(), models.Tour{Name: "Short"})
	assert.ErrorIs(t, err, validators.ErrInvalidInput)
}

func TestUpdateTour_RenameRegeneratesSlug(t *testing.T) {
	svc, repo := newTestTourService(t)

	name := "The Snow Adventurer"
	repo.EXPECT().UpdateTour(gomock.Any(), int64(5), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, _ models.TourUpdate, slug *string) (models.Tour, error) {
			require.NotNil(t, slug)
			assert.Equal(t, "the-snow-adventurer", *slug)
			return models.Tour{ID: 5, Name: name, Slug: *slug}, nil
		})

	updated, err := svc.UpdateTour(context.Background(), 5, models.TourUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "the-snow-adventurer", updated.Slug)
}

func TestUpdateTour_DiscountAbovePrice(t *testing.T) {
	svc, _ := newTestTourService(t)

	price := decimal.NewFromInt(100)
	discount := decimal.NewFromInt(150)

	_, err := svc.UpdateTour(context.Background(), 5, models.TourUpdate{Price: &price, PriceDiscount: &discount})
	assert.ErrorIs(t, err, validators.ErrInvalidInput)
	assert.Contains(t, err.Error(), "should be below regular price")
}

// ─────────────────────────────────────────────
// Aggregations
// ─────────────────────────────────────────────

func TestTourStats_UsesDefaultRating(t *testing.T) {
	svc, repo := newTestTourService(t)

	repo.EXPECT().TourStats(gomock.Any(), 4.5).Return([]models.TourStats{{Difficulty: models.DifficultyEasy}}, nil)

	stats, err := svc.TourStats(context.Background())
	require.NoError(t, err)
	assert.Len(t, stats, 1)
}

func TestMonthlyPlan_RejectsYear(t *testing.T) {
	svc, _ := newTestTourService(t)

	_, err := svc.MonthlyPlan(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidYear)
}

// ─────────────────────────────────────────────
// Geo
// ─────────────────────────────────────────────

func TestParseLatLng(t *testing.T) {
	loc, err := ParseLatLng("34.111745,-118.113491")
	require.NoError(t, err)
	assert.Equal(t, 34.111745, loc.Lat)
	assert.Equal(t, -118.113491, loc.Lng)

	for _, bad := range []string{"", "34.1", "north,-118", "91,0", "0,181"} {
		_, err = ParseLatLng(bad)
		assert.ErrorIs(t, err, ErrInvalidLocation, "input %q", bad)
	}
}

func TestToursWithin(t *testing.T) {
	svc, repo := newTestTourService(t)

	center := models.Location{Lat: 34.111745, Lng: -118.113491}

	repo.EXPECT().ListTourStarts(gomock.Any()).Return(tourStarts(), nil)
	repo.EXPECT().ListTours(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q models.ListQuery) ([]models.Tour, error) {
			require.Len(t, q.Filters, 1)
			assert.Equal(t, "id", q.Filters[0].Field)
			assert.ElementsMatch(t, []string{"3", "4"}, q.Filters[0].Values)
			return []models.Tour{{ID: 3}, {ID: 4}}, nil
		})

	// LA downtown is ~10mi away, Las Vegas ~220mi, Miami and Banff are far
	tours, err := svc.ToursWithin(context.Background(), 250, center, UnitMiles)
	require.NoError(t, err)
	assert.Len(t, tours, 2)
}

func TestToursWithin_NoMatches(t *testing.T) {
	svc, repo := newTestTourService(t)

	repo.EXPECT().ListTourStarts(gomock.Any()).Return(tourStarts(), nil)

	tours, err := svc.ToursWithin(context.Background(), 1, models.Location{Lat: 0, Lng: 0}, UnitKilometers)
	require.NoError(t, err)
	assert.Empty(t, tours)
}

func TestToursWithin_InvalidInput(t *testing.T) {
	svc, _ := newTestTourService(t)

	_, err := svc.ToursWithin(context.Background(), 100, models.Location{}, "ft")
	assert.ErrorIs(t, err, ErrInvalidUnit)

	_, err = svc.ToursWithin(context.Background(), -1, models.Location{}, UnitKilometers)
	assert.ErrorIs(t, err, ErrInvalidDistance)
}

func TestDistances_SortedNearestFirst(t *testing.T) {
	svc, repo := newTestTourService(t)

	repo.EXPECT().ListTourStarts(gomock.Any()).Return(tourStarts(), nil).Times(2)

	center := models.Location{Lat: 34.111745, Lng: -118.113491}

	mi, err := svc.Distances(context.Background(), center, UnitMiles)
	require.NoError(t, err)
	require.Len(t, mi, 4)
	assert.Equal(t, int64(3), mi[0].ID)
	assert.Equal(t, int64(4), mi[1].ID)
	for i := 1; i < len(mi); i++ {
		assert.LessOrEqual(t, mi[i-1].Distance, mi[i].Distance)
	}
	// LA downtown is roughly 10 miles from Pasadena
	assert.InDelta(t, 10, mi[0].Distance, 3)

	km, err := svc.Distances(context.Background(), center, UnitKilometers)
	require.NoError(t, err)
	assert.InDelta(t, mi[0].Distance*earthRadiusKm/earthRadiusMi, km[0].Distance, 1e-9)
}

func TestHaversine(t *testing.T) {
	a := models.Location{Lat: 0, Lng: 0}
	b := models.Location{Lat: 0, Lng: 90}

	assert.InDelta(t, math.Pi/2, haversine(a, b), 1e-12)
	assert.Zero(t, haversine(a, a))
}

func TestDistances_RepositoryError(t *testing.T) {
	svc, repo := newTestTourService(t)

	repo.EXPECT().ListTourStarts(gomock.Any()).Return(nil, errors.New("db down"))

	_, err := svc.Distances(context.Background(), models.Location{}, UnitKilometers)
	assert.Error(t, err)
}
