package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-natours/models"
)

// TourRepository persists tours. Secret tours are invisible to every read.
type TourRepository interface {
	ListTours(ctx context.Context, query models.ListQuery) ([]models.Tour, error)
	GetTour(ctx context.Context, id int64) (models.Tour, error)
	GetTourBySlug(ctx context.Context, slug string) (models.Tour, error)
	CreateTour(ctx context.Context, tour models.Tour) (models.Tour, error)
	UpdateTour(ctx context.Context, id int64, update models.TourUpdate, slug *string) (models.Tour, error)
	DeleteTour(ctx context.Context, id int64) error
	TourStats(ctx context.Context, minRating float64) ([]models.TourStats, error)
	MonthlyPlan(ctx context.Context, year int) ([]models.MonthlyPlan, error)
	ListTourStarts(ctx context.Context) ([]models.Tour, error)
	ListToursBookedBy(ctx context.Context, userID int64) ([]models.Tour, error)
}

// UserRepository persists user accounts. Deactivated users are invisible to
// every read.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	ListUsers(ctx context.Context, query models.ListQuery) ([]models.User, error)
	UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string, changedAt time.Time) error
	DeactivateUser(ctx context.Context, id int64) error
	DeleteUser(ctx context.Context, id int64) error
}

// ReviewRepository persists reviews and keeps the rating aggregates of the
// reviewed tour in sync within the same transaction.
type ReviewRepository interface {
	ListReviews(ctx context.Context, tourID int64, query models.ListQuery) ([]models.Review, error)
	GetReview(ctx context.Context, id int64) (models.Review, error)
	CreateReview(ctx context.Context, review models.Review) (models.Review, error)
	UpdateReview(ctx context.Context, id int64, update models.ReviewUpdate) (models.Review, error)
	DeleteReview(ctx context.Context, id int64) error
}

// BookingRepository persists bookings. A checkout session id is turned into
// at most one booking.
type BookingRepository interface {
	CreateBooking(ctx context.Context, booking models.Booking) (models.Booking, error)
	GetBooking(ctx context.Context, id int64) (models.Booking, error)
	ListBookings(ctx context.Context, query models.ListQuery) ([]models.Booking, error)
	UpdateBooking(ctx context.Context, id int64, update models.BookingUpdate) (models.Booking, error)
	DeleteBooking(ctx context.Context, id int64) error
}
