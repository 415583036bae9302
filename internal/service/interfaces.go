package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-natours/models"
)

// AuthService signs users up and in, and turns session tokens back into
// users.
type AuthService interface {
	Signup(ctx context.Context, request models.SignupRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// Authenticate resolves the user owning tokenString. It fails when the
	// token is invalid, the user is gone or the password changed after the
	// token was issued.
	Authenticate(ctx context.Context, tokenString string) (models.User, error)
	UpdatePassword(ctx context.Context, userID int64, request models.UpdatePasswordRequest) (models.User, error)
}

type UserService interface {
	GetUser(ctx context.Context, id int64) (models.User, error)
	ListUsers(ctx context.Context, query models.ListQuery) ([]models.User, error)

	// UpdateMe changes the caller's own name and email. Other fields of
	// update are ignored.
	UpdateMe(ctx context.Context, id int64, update models.UserUpdate) (models.User, error)
	UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error)
	DeleteMe(ctx context.Context, id int64) error
	DeleteUser(ctx context.Context, id int64) error
}

type TourService interface {
	ListTours(ctx context.Context, query models.ListQuery) ([]models.Tour, error)
	GetTour(ctx context.Context, id int64) (models.Tour, error)
	GetTourBySlug(ctx context.Context, slug string) (models.Tour, error)
	CreateTour(ctx context.Context, tour models.Tour) (models.Tour, error)
	UpdateTour(ctx context.Context, id int64, update models.TourUpdate) (models.Tour, error)
	DeleteTour(ctx context.Context, id int64) error
	TourStats(ctx context.Context) ([]models.TourStats, error)
	MonthlyPlan(ctx context.Context, year int) ([]models.MonthlyPlan, error)
	ToursWithin(ctx context.Context, distance float64, center models.Location, unit string) ([]models.Tour, error)
	Distances(ctx context.Context, center models.Location, unit string) ([]models.TourDistance, error)
	BookedTours(ctx context.Context, userID int64) ([]models.Tour, error)
}

type ReviewService interface {
	ListReviews(ctx context.Context, tourID int64, query models.ListQuery) ([]models.Review, error)
	GetReview(ctx context.Context, id int64) (models.Review, error)
	CreateReview(ctx context.Context, review models.Review) (models.Review, error)
	UpdateReview(ctx context.Context, id int64, update models.ReviewUpdate) (models.Review, error)
	DeleteReview(ctx context.Context, id int64) error
}

type BookingService interface {
	// CreateCheckoutSession opens a hosted checkout page for one seat of
	// the tour, paid by user. baseURL is the public origin the payment
	// page redirects back to.
	CreateCheckoutSession(ctx context.Context, tourID int64, user models.User, baseURL string) (models.CheckoutSession, error)

	// HandleWebhook verifies a raw webhook payload and records the booking
	// of a completed checkout. Repeated deliveries of the same session are
	// acknowledged without creating another booking.
	HandleWebhook(ctx context.Context, payload []byte, signature string) error

	ListBookings(ctx context.Context, query models.ListQuery) ([]models.Booking, error)
	GetBooking(ctx context.Context, id int64) (models.Booking, error)
	CreateBooking(ctx context.Context, booking models.Booking) (models.Booking, error)
	UpdateBooking(ctx context.Context, id int64, update models.BookingUpdate) (models.Booking, error)
	DeleteBooking(ctx context.Context, id int64) error
}

type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// PaymentGateway creates hosted checkout pages and verifies the events the
// payment processor posts back.
type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, request models.CheckoutRequest) (models.CheckoutSession, error)
	ParseWebhook(payload []byte, signature string) (models.WebhookEvent, error)
}
