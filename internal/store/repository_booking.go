package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-natours/internal/logger"
	"github.com/MKhiriev/go-natours/models"
)

// bookingRepository is the PostgreSQL-backed implementation of
// [BookingRepository].
type bookingRepository struct {
	*DB
	logger *logger.Logger
}

// NewBookingRepository constructs a [BookingRepository] backed by db.
func NewBookingRepository(db *DB, logger *logger.Logger) BookingRepository {
	return &bookingRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateBooking inserts a booking. A second booking for the same checkout
// session id is rejected with [ErrDuplicateBooking] by the unique index.
func (r *bookingRepository) CreateBooking(ctx context.Context, booking models.Booking) (models.Booking, error) {
	log := logger.FromContext(ctx)

	row := r.QueryRowContext(ctx, insertBooking,
		booking.TourID, booking.UserID, booking.Price, booking.Paid, nullString(booking.StripeSessionID))

	created, err := scanBooking(row)
	if err != nil {
		err = mapWriteError(err, ErrDuplicateBooking)
		if errors.Is(err, ErrDuplicateBooking) {
			log.Warn().Str("func", "*bookingRepository.CreateBooking").
				Str("session_id", booking.StripeSessionID).
				Msg("booking for session already exists")
		} else {
			log.Err(err).Str("func", "*bookingRepository.CreateBooking").Msg("failed to create booking")
		}
		return models.Booking{}, err
	}

	return created, nil
}

func (r *bookingRepository) GetBooking(ctx context.Context, id int64) (models.Booking, error) {
	booking, err := scanBooking(r.QueryRowContext(ctx, selectBookingByID, id))
	if err != nil {
		return models.Booking{}, mapReadError(err)
	}

	return booking, nil
}

func (r *bookingRepository) ListBookings(ctx context.Context, query models.ListQuery) ([]models.Booking, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := buildListBookingsQuery(query)
	if err != nil {
		return nil, err
	}

	rows, err := r.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).Str("func", "*bookingRepository.ListBookings").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	bookings := make([]models.Booking, 0, 16)
	for rows.Next() {
		booking, scanErr := scanBooking(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		bookings = append(bookings, booking)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return bookings, nil
}

func (r *bookingRepository) UpdateBooking(ctx context.Context, id int64, update models.BookingUpdate) (models.Booking, error) {
	query, args, err := buildUpdateBookingQuery(id, update)
	if err != nil {
		return models.Booking{}, err
	}

	booking, err := scanBooking(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Booking{}, mapWriteError(err, ErrDuplicateBooking)
	}

	return booking, nil
}

func (r *bookingRepository) DeleteBooking(ctx context.Context, id int64) error {
	return r.execAffectingOne(ctx, "*bookingRepository.DeleteBooking", deleteBooking, id)
}
