package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-natours/internal/logger"
	"github.com/MKhiriev/go-natours/models"
)

// reviewRepository is the PostgreSQL-backed implementation of
// [ReviewRepository]. Every write recalculates the tour's rating
// aggregates in the same transaction.
type reviewRepository struct {
	*DB
	logger *logger.Logger
}

// NewReviewRepository constructs a [ReviewRepository] backed by db.
func NewReviewRepository(db *DB, logger *logger.Logger) ReviewRepository {
	return &reviewRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *reviewRepository) ListReviews(ctx context.Context, tourID int64, query models.ListQuery) ([]models.Review, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := buildListReviewsQuery(tourID, query)
	if err != nil {
		return nil, err
	}

	rows, err := r.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.ListReviews").Int64("tour_id", tourID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	reviews := make([]models.Review, 0, 16)
	for rows.Next() {
		review, scanErr := scanReview(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		reviews = append(reviews, review)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return reviews, nil
}

func (r *reviewRepository) GetReview(ctx context.Context, id int64) (models.Review, error) {
	review, err := scanReview(r.QueryRowContext(ctx, selectReviewByID, id))
	if err != nil {
		return models.Review{}, mapReadError(err)
	}

	return review, nil
}

func (r *reviewRepository) CreateReview(ctx context.Context, review models.Review) (models.Review, error) {
	log := logger.FromContext(ctx)

	err := r.inTx(ctx, "*reviewRepository.CreateReview", func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, insertReview, review.Review, review.Rating, review.TourID, review.UserID)
		if err := row.Scan(&review.ID, &review.CreatedAt); err != nil {
			return mapWriteError(err, ErrDuplicateReview)
		}

		return recalculateRatings(ctx, tx, review.TourID)
	})
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.CreateReview").
			Int64("tour_id", review.TourID).
			Int64("user_id", review.UserID).
			Msg("failed to create review")
		return models.Review{}, err
	}

	return review, nil
}

func (r *reviewRepository) UpdateReview(ctx context.Context, id int64, update models.ReviewUpdate) (models.Review, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateReviewQuery(id, update)
	if err != nil {
		return models.Review{}, err
	}

	err = r.inTx(ctx, "*reviewRepository.UpdateReview", func(tx *sql.Tx) error {
		var tourID int64
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&tourID); err != nil {
			return mapWriteError(err, ErrDuplicateReview)
		}

		return recalculateRatings(ctx, tx, tourID)
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Err(err).Str("func", "*reviewRepository.UpdateReview").Int64("review_id", id).Msg("failed to update review")
		}
		return models.Review{}, err
	}

	return r.GetReview(ctx, id)
}

func (r *reviewRepository) DeleteReview(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	err := r.inTx(ctx, "*reviewRepository.DeleteReview", func(tx *sql.Tx) error {
		var tourID int64
		if err := tx.QueryRowContext(ctx, deleteReviewReturningTour, id).Scan(&tourID); err != nil {
			return mapReadError(err)
		}

		return recalculateRatings(ctx, tx, tourID)
	})
	if err != nil && !errors.Is(err, ErrNotFound) {
		log.Err(err).Str("func", "*reviewRepository.DeleteReview").Int64("review_id", id).Msg("failed to delete review")
	}

	return err
}

func recalculateRatings(ctx context.Context, tx *sql.Tx, tourID int64) error {
	if _, err := tx.ExecContext(ctx, updateTourRatings, tourID); err != nil {
		return fmt.Errorf("%w: recalculating ratings: %w", ErrExecutingQuery, err)
	}

	return nil
}
