package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-natours/models"
	"github.com/jackc/pgerrcode"
	"github.com/shopspring/decimal"
)

var bookingColumnNames = []string{"id", "tour_id", "user_id", "price", "paid", "stripe_session_id", "created_at"}

func TestCreateBooking(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepository(db, db.logger)

	now := time.Now()
	booking := models.Booking{TourID: 7, UserID: 3, Price: decimal.NewFromInt(497), Paid: true, StripeSessionID: "cs_test_1"}

	mock.ExpectQuery("INSERT INTO bookings").
		WithArgs(int64(7), int64(3), "497", true, "cs_test_1").
		WillReturnRows(sqlmock.NewRows(bookingColumnNames).
			AddRow(int64(1), int64(7), int64(3), "497.00", true, "cs_test_1", now))

	created, err := repo.CreateBooking(context.Background(), booking)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 1 || created.StripeSessionID != "cs_test_1" || !created.Price.Equal(booking.Price) {
		t.Errorf("unexpected booking: %+v", created)
	}
	assertExpectations(t, mock)
}

func TestCreateBooking_WithoutSession(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepository(db, db.logger)

	now := time.Now()
	mock.ExpectQuery("INSERT INTO bookings").
		WithArgs(int64(7), int64(3), sqlmock.AnyArg(), false, nil).
		WillReturnRows(sqlmock.NewRows(bookingColumnNames).
			AddRow(int64(2), int64(7), int64(3), "100", false, nil, now))

	created, err := repo.CreateBooking(context.Background(), models.Booking{TourID: 7, UserID: 3, Price: decimal.NewFromInt(100)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.StripeSessionID != "" {
		t.Errorf("expected empty session id, got %q", created.StripeSessionID)
	}
}

func TestCreateBooking_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"session already booked", pgError(pgerrcode.UniqueViolation), ErrDuplicateBooking},
		{"unknown tour", pgError(pgerrcode.ForeignKeyViolation), ErrReferenceNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewBookingRepository(db, db.logger)

			mock.ExpectQuery("INSERT INTO bookings").WillReturnError(tt.err)

			_, err := repo.CreateBooking(context.Background(), models.Booking{TourID: 7, UserID: 3, StripeSessionID: "cs_test_1"})
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestGetBooking_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepository(db, db.logger)

	mock.ExpectQuery("FROM bookings WHERE id").WillReturnRows(sqlmock.NewRows(bookingColumnNames))

	if _, err := repo.GetBooking(context.Background(), 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListBookings(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepository(db, db.logger)

	now := time.Now()
	mock.ExpectQuery("FROM bookings WHERE user_id = \\$1").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(bookingColumnNames).
			AddRow(int64(1), int64(7), int64(3), "497", true, "cs_test_1", now))

	bookings, err := repo.ListBookings(context.Background(), models.ListQuery{
		Filters: []models.Filter{{Field: "user", Values: []string{"3"}}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bookings) != 1 {
		t.Fatalf("expected 1 booking, got %d", len(bookings))
	}
}

func TestUpdateBooking(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepository(db, db.logger)

	paid := false
	now := time.Now()
	mock.ExpectQuery("UPDATE bookings SET paid").
		WithArgs(false, int64(1)).
		WillReturnRows(sqlmock.NewRows(bookingColumnNames).
			AddRow(int64(1), int64(7), int64(3), "497", false, nil, now))

	updated, err := repo.UpdateBooking(context.Background(), 1, models.BookingUpdate{Paid: &paid})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Paid {
		t.Error("expected booking to be unpaid")
	}
}

func TestDeleteBooking(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepository(db, db.logger)

	mock.ExpectExec("DELETE FROM bookings").WithArgs(int64(1)).WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.DeleteBooking(context.Background(), 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
