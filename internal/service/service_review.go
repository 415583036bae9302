package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-natours/internal/logger"
	"github.com/MKhiriev/go-natours/internal/store"
	"github.com/MKhiriev/go-natours/models"
)

type reviewService struct {
	reviewRepository store.ReviewRepository
	logger           *logger.Logger
}

func NewReviewService(reviewRepository store.ReviewRepository, logger *logger.Logger) ReviewService {
	return &reviewService{
		reviewRepository: reviewRepository,
		logger:           logger,
	}
}

func (s *reviewService) ListReviews(ctx context.Context, tourID int64, query models.ListQuery) ([]models.Review, error) {
	return s.reviewRepository.ListReviews(ctx, tourID, query)
}

func (s *reviewService) GetReview(ctx context.Context, id int64) (models.Review, error) {
	return s.reviewRepository.GetReview(ctx, id)
}

// CreateReview stores the review; the tour's rating aggregates are
// recalculated in the same transaction.
func (s *reviewService) CreateReview(ctx context.Context, review models.Review) (models.Review, error) {
	if review.TourID <= 0 || review.UserID <= 0 {
		return models.Review{}, ErrInvalidDataProvided
	}

	created, err := s.reviewRepository.CreateReview(ctx, review)
	if err != nil {
		return models.Review{}, fmt.Errorf("error creating review: %w", err)
	}

	return created, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, id int64, update models.ReviewUpdate) (models.Review, error) {
	return s.reviewRepository.UpdateReview(ctx, id, update)
}

func (s *reviewService) DeleteReview(ctx context.Context, id int64) error {
	return s.reviewRepository.DeleteReview(ctx, id)
}
