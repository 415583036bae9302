package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-natours/internal/validators"
	"github.com/MKhiriev/go-natours/models"
)

// TourServiceWrapper defines middleware composition for TourService.
// Implementations wrap an existing TourService to add behavior such as
// validating.
type TourServiceWrapper interface {
	Wrap(TourService) TourService
}

// ReviewServiceWrapper defines middleware composition for ReviewService.
type ReviewServiceWrapper interface {
	Wrap(ReviewService) ReviewService
}

// TourValidationService validates tour payloads before they reach the
// wrapped TourService. Reads pass straight through.
type TourValidationService struct {
	TourService
	validator validators.Validator
}

func NewTourValidationService(validator validators.Validator) TourServiceWrapper {
	return &TourValidationService{
		validator: validator,
	}
}

func (v *TourValidationService) CreateTour(ctx context.Context, tour models.Tour) (models.Tour, error) {
	if err := v.validator.Validate(ctx, tour); err != nil {
		return models.Tour{}, fmt.Errorf("error during tour validation before saving: %w", err)
	}

	return v.TourService.CreateTour(ctx, tour)
}

func (v *TourValidationService) UpdateTour(ctx context.Context, id int64, update models.TourUpdate) (models.Tour, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Tour{}, fmt.Errorf("error during tour validation before updating: %w", err)
	}
	if update.Price != nil && !update.Price.IsPositive() {
		return models.Tour{}, &validators.ValidationError{Messages: []string{"price must be greater than 0"}}
	}
	if update.Price != nil && update.PriceDiscount != nil && !update.PriceDiscount.LessThan(*update.Price) {
		return models.Tour{}, &validators.ValidationError{Messages: []string{
			fmt.Sprintf("Discount price (%s) should be below regular price", update.PriceDiscount),
		}}
	}

	return v.TourService.UpdateTour(ctx, id, update)
}

func (v *TourValidationService) Wrap(inner TourService) TourService {
	v.TourService = inner
	return v
}

// ReviewValidationService validates review payloads before they reach the
// wrapped ReviewService.
type ReviewValidationService struct {
	ReviewService
	validator validators.Validator
}

func NewReviewValidationService(validator validators.Validator) ReviewServiceWrapper {
	return &ReviewValidationService{
		validator: validator,
	}
}

func (v *ReviewValidationService) CreateReview(ctx context.Context, review models.Review) (models.Review, error) {
	if err := v.validator.Validate(ctx, review); err != nil {
		return models.Review{}, fmt.Errorf("error during review validation before saving: %w", err)
	}

	return v.ReviewService.CreateReview(ctx, review)
}

func (v *ReviewValidationService) UpdateReview(ctx context.Context, id int64, update models.ReviewUpdate) (models.Review, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Review{}, fmt.Errorf("error during review validation before updating: %w", err)
	}

	return v.ReviewService.UpdateReview(ctx, id, update)
}

func (v *ReviewValidationService) Wrap(inner ReviewService) ReviewService {
	v.ReviewService = inner
	return v
}
