package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-natours/internal/logger"
	"github.com/MKhiriev/go-natours/models"
)

// tourRepository is the PostgreSQL-backed implementation of [TourRepository].
type tourRepository struct {
	*DB
	logger *logger.Logger
}

// NewTourRepository constructs a [TourRepository] backed by db.
func NewTourRepository(db *DB, logger *logger.Logger) TourRepository {
	return &tourRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *tourRepository) ListTours(ctx context.Context, query models.ListQuery) ([]models.Tour, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := buildListToursQuery(query)
	if err != nil {
		log.Err(err).Str("func", "*tourRepository.ListTours").Msg("failed to build query")
		return nil, err
	}

	return r.queryTours(ctx, "*tourRepository.ListTours", sqlQuery, args...)
}

func (r *tourRepository) GetTour(ctx context.Context, id int64) (models.Tour, error) {
	return r.getTourBy(ctx, "t.id", id)
}

func (r *tourRepository) GetTourBySlug(ctx context.Context, slug string) (models.Tour, error) {
	return r.getTourBy(ctx, "t.slug", slug)
}

func (r *tourRepository) getTourBy(ctx context.Context, column string, value any) (models.Tour, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetTourQuery(column, value)
	if err != nil {
		return models.Tour{}, err
	}

	tour, err := scanTour(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		if !errors.Is(err, ErrScanningRow) {
			err = mapReadError(err)
		}
		if !errors.Is(err, ErrNotFound) {
			log.Err(err).Str("func", "*tourRepository.getTourBy").Str("column", column).Msg("failed to get tour")
		}
		return models.Tour{}, err
	}

	return tour, nil
}

func (r *tourRepository) CreateTour(ctx context.Context, tour models.Tour) (models.Tour, error) {
	log := logger.FromContext(ctx)

	images, err := marshalJSONColumn(tour.Images)
	if err != nil {
		return models.Tour{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	startDates, err := marshalJSONColumn(tour.StartDates)
	if err != nil {
		return models.Tour{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.QueryRowContext(ctx, insertTour,
		tour.Name, tour.Slug, tour.Duration, tour.MaxGroupSize, string(tour.Difficulty), tour.Price,
		nullDecimal(tour.PriceDiscount), tour.Summary, tour.Description, tour.ImageCover, images, startDates,
		tour.SecretTour, tour.StartLocation.Lat, tour.StartLocation.Lng, tour.StartLocation.Address,
		tour.StartLocation.Description,
	)

	created, err := scanTour(row)
	if err != nil {
		log.Err(err).Str("func", "*tourRepository.CreateTour").Str("name", tour.Name).Msg("failed to insert tour")
		return models.Tour{}, mapWriteError(err, ErrTourNameAlreadyExists)
	}

	log.Info().Str("func", "*tourRepository.CreateTour").Int64("tour_id", created.ID).Msg("tour created")
	return created, nil
}

func (r *tourRepository) UpdateTour(ctx context.Context, id int64, update models.TourUpdate, slug *string) (models.Tour, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateTourQuery(id, update, slug)
	if err != nil {
		return models.Tour{}, err
	}

	updated, err := scanTour(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*tourRepository.UpdateTour").Int64("tour_id", id).Msg("failed to update tour")
		return models.Tour{}, mapWriteError(err, ErrTourNameAlreadyExists)
	}

	return updated, nil
}

func (r *tourRepository) DeleteTour(ctx context.Context, id int64) error {
	return r.execAffectingOne(ctx, "*tourRepository.DeleteTour", deleteTour, id)
}

func (r *tourRepository) TourStats(ctx context.Context, minRating float64) ([]models.TourStats, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildTourStatsQuery(minRating)
	if err != nil {
		return nil, err
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*tourRepository.TourStats").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	stats := make([]models.TourStats, 0, 3)
	for rows.Next() {
		var s models.TourStats
		if err = rows.Scan(&s.Difficulty, &s.NumTours, &s.NumRatings, &s.AvgRating, &s.AvgPrice, &s.MinPrice, &s.MaxPrice); err != nil {
			log.Err(err).Str("func", "*tourRepository.TourStats").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		s.AvgPrice = s.AvgPrice.Round(2)
		stats = append(stats, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return stats, nil
}

func (r *tourRepository) MonthlyPlan(ctx context.Context, year int) ([]models.MonthlyPlan, error) {
	log := logger.FromContext(ctx)

	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	rows, err := r.QueryContext(ctx, selectMonthlyPlan, from, to)
	if err != nil {
		log.Err(err).Str("func", "*tourRepository.MonthlyPlan").Int("year", year).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	plan := make([]models.MonthlyPlan, 0, 12)
	for rows.Next() {
		var (
			p     models.MonthlyPlan
			names []byte
		)
		if err = rows.Scan(&p.Month, &p.NumTourStarts, &names); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if err = json.Unmarshal(names, &p.Tours); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		plan = append(plan, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return plan, nil
}

func (r *tourRepository) ListTourStarts(ctx context.Context) ([]models.Tour, error) {
	log := logger.FromContext(ctx)

	rows, err := r.QueryContext(ctx, selectTourStarts)
	if err != nil {
		log.Err(err).Str("func", "*tourRepository.ListTourStarts").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tours := make([]models.Tour, 0, 16)
	for rows.Next() {
		var t models.Tour
		if err = rows.Scan(&t.ID, &t.Name, &t.StartLocation.Lat, &t.StartLocation.Lng); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		tours = append(tours, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return tours, nil
}

func (r *tourRepository) ListToursBookedBy(ctx context.Context, userID int64) ([]models.Tour, error) {
	return r.queryTours(ctx, "*tourRepository.ListToursBookedBy", selectToursBookedBy, userID)
}

func (r *tourRepository) queryTours(ctx context.Context, funcName, query string, args ...any) ([]models.Tour, error) {
	log := logger.FromContext(ctx)

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tours := make([]models.Tour, 0, 16)
	for rows.Next() {
		tour, scanErr := scanTour(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		tours = append(tours, tour)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return tours, nil
}
