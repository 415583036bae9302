package store

import "github.com/MKhiriev/go-natours/internal/logger"

// Storages groups every repository backed by the shared connection pool.
type Storages struct {
	TourRepository    TourRepository
	UserRepository    UserRepository
	ReviewRepository  ReviewRepository
	BookingRepository BookingRepository
}

// NewStorages constructs all repositories on top of db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		TourRepository:    NewTourRepository(db, log),
		UserRepository:    NewUserRepository(db, log),
		ReviewRepository:  NewReviewRepository(db, log),
		BookingRepository: NewBookingRepository(db, log),
	}
}
