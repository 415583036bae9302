package service

import (
	"github.com/MKhiriev/go-natours/internal/config"
	"github.com/MKhiriev/go-natours/internal/logger"
	"github.com/MKhiriev/go-natours/internal/store"
	"github.com/MKhiriev/go-natours/internal/validators"
	"github.com/MKhiriev/go-natours/models"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	TourService    TourService
	ReviewService  ReviewService
	BookingService BookingService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, gateway PaymentGateway, buildInfo models.AppBuildInfo, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	validator := validators.NewStructValidator()

	appInfoService, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	tourService := NewTourValidationService(validator).Wrap(NewTourService(storages.TourRepository, logger))
	reviewService := NewReviewValidationService(validator).Wrap(NewReviewService(storages.ReviewRepository, logger))

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, validator, cfg.Auth, logger),
		UserService:    NewUserService(storages.UserRepository, validator, logger),
		TourService:    tourService,
		ReviewService:  reviewService,
		BookingService: NewBookingService(storages, gateway, logger),
		AppInfoService: appInfoService,
	}, nil
}
