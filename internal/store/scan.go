package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-natours/models"
	"github.com/shopspring/decimal"
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTour(row rowScanner) (models.Tour, error) {
	var (
		t          models.Tour
		discount   decimal.NullDecimal
		images     []byte
		startDates []byte
	)

	err := row.Scan(
		&t.ID, &t.Name, &t.Slug, &t.Duration, &t.MaxGroupSize, &t.Difficulty,
		&t.RatingsAverage, &t.RatingsQuantity, &t.Price, &discount, &t.Summary,
		&t.Description, &t.ImageCover, &images, &startDates, &t.SecretTour,
		&t.StartLocation.Lat, &t.StartLocation.Lng, &t.StartLocation.Address,
		&t.StartLocation.Description, &t.CreatedAt,
	)
	if err != nil {
		return models.Tour{}, err
	}

	if discount.Valid {
		t.PriceDiscount = &discount.Decimal
	}
	if len(images) > 0 {
		if err = json.Unmarshal(images, &t.Images); err != nil {
			return models.Tour{}, fmt.Errorf("%w: images: %w", ErrScanningRow, err)
		}
	}
	if len(startDates) > 0 {
		if err = json.Unmarshal(startDates, &t.StartDates); err != nil {
			return models.Tour{}, fmt.Errorf("%w: start dates: %w", ErrScanningRow, err)
		}
	}

	return t.WithDerivedFields(), nil
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		u         models.User
		changedAt sql.NullTime
	)

	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Photo, &u.Role, &u.PasswordHash, &changedAt, &u.Active, &u.CreatedAt)
	if err != nil {
		return models.User{}, err
	}

	if changedAt.Valid {
		t := changedAt.Time
		u.PasswordChangedAt = &t
	}

	return u, nil
}

func scanReview(row rowScanner) (models.Review, error) {
	var r models.Review
	err := row.Scan(&r.ID, &r.Review, &r.Rating, &r.CreatedAt, &r.TourID, &r.UserID, &r.UserName, &r.UserPhoto)
	return r, err
}

func scanBooking(row rowScanner) (models.Booking, error) {
	var (
		b         models.Booking
		sessionID sql.NullString
	)

	err := row.Scan(&b.ID, &b.TourID, &b.UserID, &b.Price, &b.Paid, &sessionID, &b.CreatedAt)
	if err != nil {
		return models.Booking{}, err
	}
	b.StripeSessionID = sessionID.String

	return b, nil
}

func marshalJSONColumn[T any](v []T) (string, error) {
	if v == nil {
		v = []T{}
	}
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}
