package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-natours/internal/logger"
	"github.com/MKhiriev/go-natours/internal/store"
	"github.com/MKhiriev/go-natours/models"
	"github.com/shopspring/decimal"
)

type bookingService struct {
	bookingRepository store.BookingRepository
	tourRepository    store.TourRepository
	userRepository    store.UserRepository
	gateway           PaymentGateway
	logger            *logger.Logger
}

func NewBookingService(storages *store.Storages, gateway PaymentGateway, logger *logger.Logger) BookingService {
	return &bookingService{
		bookingRepository: storages.BookingRepository,
		tourRepository:    storages.TourRepository,
		userRepository:    storages.UserRepository,
		gateway:           gateway,
		logger:            logger,
	}
}

func (s *bookingService) CreateCheckoutSession(ctx context.Context, tourID int64, user models.User, baseURL string) (models.CheckoutSession, error) {
	log := logger.FromContext(ctx)

	tour, err := s.tourRepository.GetTour(ctx, tourID)
	if err != nil {
		return models.CheckoutSession{}, fmt.Errorf("error loading tour for checkout: %w", err)
	}

	base := strings.TrimRight(baseURL, "/")
	session, err := s.gateway.CreateCheckoutSession(ctx, models.CheckoutRequest{
		Tour:          tour,
		CustomerEmail: user.Email,
		SuccessURL:    base + "/my-tours?alert=booking",
		CancelURL:     base + "/tour/" + tour.Slug,
		ImageBaseURL:  base,
	})
	if err != nil {
		log.Err(err).Str("func", "*bookingService.CreateCheckoutSession").Int64("tour_id", tourID).Msg("checkout session failed")
		return models.CheckoutSession{}, fmt.Errorf("error creating checkout session: %w", err)
	}

	return session, nil
}

func (s *bookingService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	log := logger.FromContext(ctx)

	event, err := s.gateway.ParseWebhook(payload, signature)
	if err != nil {
		log.Warn().Err(err).Str("func", "*bookingService.HandleWebhook").Msg("webhook rejected")
		return err
	}

	if event.Type != models.EventCheckoutSessionCompleted {
		log.Debug().Str("func", "*bookingService.HandleWebhook").Str("type", event.Type).Msg("ignoring webhook event")
		return nil
	}

	return s.confirmCheckout(ctx, event)
}

// confirmCheckout turns a completed checkout into a booking. The tour comes
// from the client reference id, the user from the customer email and the
// price from the amount actually paid.
func (s *bookingService) confirmCheckout(ctx context.Context, event models.WebhookEvent) error {
	log := logger.FromContext(ctx)

	tourID, err := strconv.ParseInt(event.TourID, 10, 64)
	if err != nil || tourID <= 0 {
		return fmt.Errorf("%w: client reference %q", ErrInvalidWebhookEvent, event.TourID)
	}
	if event.SessionID == "" || event.CustomerEmail == "" {
		return fmt.Errorf("%w: missing session id or customer email", ErrInvalidWebhookEvent)
	}

	user, err := s.userRepository.FindUserByEmail(ctx, event.CustomerEmail)
	if err != nil {
		return fmt.Errorf("error loading customer of session %s: %w", event.SessionID, err)
	}

	booking, err := s.bookingRepository.CreateBooking(ctx, models.Booking{
		TourID:          tourID,
		UserID:          user.ID,
		Price:           decimal.New(event.AmountTotal, -2),
		Paid:            true,
		StripeSessionID: event.SessionID,
	})
	if errors.Is(err, store.ErrDuplicateBooking) {
		log.Info().Str("func", "*bookingService.confirmCheckout").Str("session_id", event.SessionID).Msg("duplicate webhook delivery acknowledged")
		return nil
	}
	if err != nil {
		return fmt.Errorf("error creating booking: %w", err)
	}

	log.Info().Str("func", "*bookingService.confirmCheckout").
		Int64("booking_id", booking.ID).
		Str("session_id", event.SessionID).
		Msg("booking confirmed")

	return nil
}

func (s *bookingService) ListBookings(ctx context.Context, query models.ListQuery) ([]models.Booking, error) {
	return s.bookingRepository.ListBookings(ctx, query)
}

func (s *bookingService) GetBooking(ctx context.Context, id int64) (models.Booking, error) {
	return s.bookingRepository.GetBooking(ctx, id)
}

func (s *bookingService) CreateBooking(ctx context.Context, booking models.Booking) (models.Booking, error) {
	if booking.TourID <= 0 || booking.UserID <= 0 || !booking.Price.IsPositive() {
		return models.Booking{}, ErrInvalidDataProvided
	}

	return s.bookingRepository.CreateBooking(ctx, booking)
}

func (s *bookingService) UpdateBooking(ctx context.Context, id int64, update models.BookingUpdate) (models.Booking, error) {
	if update.Price != nil && !update.Price.IsPositive() {
		return models.Booking{}, ErrInvalidDataProvided
	}

	return s.bookingRepository.UpdateBooking(ctx, id, update)
}

func (s *bookingService) DeleteBooking(ctx context.Context, id int64) error {
	return s.bookingRepository.DeleteBooking(ctx, id)
}
