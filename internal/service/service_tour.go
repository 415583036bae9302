package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/MKhiriev/go-natours/internal/logger"
	"github.com/MKhiriev/go-natours/internal/store"
	"github.com/MKhiriev/go-natours/models"
)

type tourService struct {
	tourRepository store.TourRepository
	logger         *logger.Logger
}

func NewTourService(tourRepository store.TourRepository, logger *logger.Logger) TourService {
	return &tourService{
		tourRepository: tourRepository,
		logger:         logger,
	}
}

func (s *tourService) ListTours(ctx context.Context, query models.ListQuery) ([]models.Tour, error) {
	return s.tourRepository.ListTours(ctx, query)
}

func (s *tourService) GetTour(ctx context.Context, id int64) (models.Tour, error) {
	return s.tourRepository.GetTour(ctx, id)
}

func (s *tourService) GetTourBySlug(ctx context.Context, slug string) (models.Tour, error) {
	return s.tourRepository.GetTourBySlug(ctx, slug)
}

func (s *tourService) CreateTour(ctx context.Context, tour models.Tour) (models.Tour, error) {
	tour.Slug = slugify(tour.Name)

	created, err := s.tourRepository.CreateTour(ctx, tour)
	if err != nil {
		return models.Tour{}, fmt.Errorf("error creating tour: %w", err)
	}

	return created, nil
}

func (s *tourService) UpdateTour(ctx context.Context, id int64, update models.TourUpdate) (models.Tour, error) {
	var slug *string
	if update.Name != nil {
		value := slugify(*update.Name)
		slug = &value
	}

	updated, err := s.tourRepository.UpdateTour(ctx, id, update, slug)
	if err != nil {
		return models.Tour{}, fmt.Errorf("error updating tour: %w", err)
	}

	return updated, nil
}

func (s *tourService) DeleteTour(ctx context.Context, id int64) error {
	return s.tourRepository.DeleteTour(ctx, id)
}

// TourStats aggregates tours rated at least the default rating, grouped by
// difficulty and ordered by average price.
func (s *tourService) TourStats(ctx context.Context) ([]models.TourStats, error) {
	return s.tourRepository.TourStats(ctx, models.DefaultRatingsAverage)
}

func (s *tourService) MonthlyPlan(ctx context.Context, year int) ([]models.MonthlyPlan, error) {
	if year < 1970 || year > 9999 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidYear, year)
	}

	return s.tourRepository.MonthlyPlan(ctx, year)
}

// ToursWithin returns the tours whose start location lies within distance
// (in unit) of center.
func (s *tourService) ToursWithin(ctx context.Context, distance float64, center models.Location, unit string) ([]models.Tour, error) {
	radius, err := earthRadius(unit)
	if err != nil {
		return nil, err
	}
	if distance <= 0 {
		return nil, ErrInvalidDistance
	}

	starts, err := s.tourRepository.ListTourStarts(ctx)
	if err != nil {
		return nil, err
	}

	maxAngle := distance / radius
	ids := make([]string, 0, len(starts))
	for _, t := range starts {
		if haversine(center, t.StartLocation) <= maxAngle {
			ids = append(ids, strconv.FormatInt(t.ID, 10))
		}
	}

	logger.FromContext(ctx).Debug().
		Str("func", "*tourService.ToursWithin").
		Int("candidates", len(starts)).
		Int("matched", len(ids)).
		Msg("geo filter applied")

	if len(ids) == 0 {
		return []models.Tour{}, nil
	}

	return s.tourRepository.ListTours(ctx, models.ListQuery{
		Filters: []models.Filter{{Field: "id", Op: models.OpEq, Values: ids}},
		Limit:   len(ids),
	})
}

// Distances returns every tour with its distance from center, nearest
// first.
func (s *tourService) Distances(ctx context.Context, center models.Location, unit string) ([]models.TourDistance, error) {
	radius, err := earthRadius(unit)
	if err != nil {
		return nil, err
	}

	starts, err := s.tourRepository.ListTourStarts(ctx)
	if err != nil {
		return nil, err
	}

	distances := make([]models.TourDistance, 0, len(starts))
	for _, t := range starts {
		distances = append(distances, models.TourDistance{
			ID:       t.ID,
			Name:     t.Name,
			Distance: haversine(center, t.StartLocation) * radius,
		})
	}
	sort.SliceStable(distances, func(i, j int) bool {
		return distances[i].Distance < distances[j].Distance
	})

	return distances, nil
}

func (s *tourService) BookedTours(ctx context.Context, userID int64) ([]models.Tour, error) {
	return s.tourRepository.ListToursBookedBy(ctx, userID)
}
