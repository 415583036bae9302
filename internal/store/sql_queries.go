package store

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-natours/models"
	"github.com/shopspring/decimal"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	tourColumns = `t.id, t.name, t.slug, t.duration, t.max_group_size, t.difficulty,
		t.ratings_average, t.ratings_quantity, t.price, t.price_discount, t.summary,
		t.description, t.image_cover, t.images, t.start_dates, t.secret_tour,
		t.start_lat, t.start_lng, t.start_address, t.start_description, t.created_at`

	userColumns = `id, name, email, photo, role, password_hash, password_changed_at, active, created_at`

	reviewColumns = `r.id, r.review, r.rating, r.created_at, r.tour_id, r.user_id, u.name, u.photo`

	bookingColumns = `id, tour_id, user_id, price, paid, stripe_session_id, created_at`

	insertTour = `INSERT INTO tours AS t (name, slug, duration, max_group_size, difficulty, price,
		price_discount, summary, description, image_cover, images, start_dates, secret_tour,
		start_lat, start_lng, start_address, start_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING ` + tourColumns

	deleteTour = `DELETE FROM tours WHERE id = $1`

	selectTourStarts = `SELECT t.id, t.name, t.start_lat, t.start_lng
		FROM tours t
		WHERE t.secret_tour = FALSE`

	selectToursBookedBy = `SELECT ` + tourColumns + `
		FROM tours t
		WHERE t.id IN (SELECT b.tour_id FROM bookings b WHERE b.user_id = $1)
		ORDER BY t.name`

	selectMonthlyPlan = `SELECT EXTRACT(MONTH FROM sd.value::timestamptz)::int AS month,
			COUNT(*)::int AS num_tour_starts,
			json_agg(t.name ORDER BY t.name) AS tours
		FROM tours t
		CROSS JOIN LATERAL jsonb_array_elements_text(t.start_dates) AS sd(value)
		WHERE t.secret_tour = FALSE
			AND sd.value::timestamptz >= $1
			AND sd.value::timestamptz < $2
		GROUP BY month
		ORDER BY num_tour_starts DESC, month
		LIMIT 12`

	insertUser = `INSERT INTO users (name, email, photo, role, password_hash, password_changed_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + userColumns

	findUserByEmail = `SELECT ` + userColumns + `
		FROM users
		WHERE email = $1 AND active = TRUE`

	findUserByID = `SELECT ` + userColumns + `
		FROM users
		WHERE id = $1 AND active = TRUE`

	updateUserPassword = `UPDATE users
		SET password_hash = $2, password_changed_at = $3
		WHERE id = $1 AND active = TRUE`

	deactivateUser = `UPDATE users SET active = FALSE WHERE id = $1 AND active = TRUE`

	deleteUser = `DELETE FROM users WHERE id = $1`

	insertReview = `INSERT INTO reviews (review, rating, tour_id, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	selectReviewByID = `SELECT ` + reviewColumns + `
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		WHERE r.id = $1`

	deleteReviewReturningTour = `DELETE FROM reviews WHERE id = $1 RETURNING tour_id`

	// recalculates the rating aggregates of one tour; 4.5 / 0 when no
	// reviews are left
	updateTourRatings = `UPDATE tours
		SET ratings_quantity = s.quantity,
			ratings_average = s.average
		FROM (
			SELECT COUNT(*)::int AS quantity,
				COALESCE(ROUND(AVG(rating)::numeric, 1), 4.5)::float8 AS average
			FROM reviews
			WHERE tour_id = $1
		) AS s
		WHERE tours.id = $1`

	insertBooking = `INSERT INTO bookings (tour_id, user_id, price, paid, stripe_session_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + bookingColumns

	selectBookingByID = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	deleteBooking = `DELETE FROM bookings WHERE id = $1`
)

type columnKind int

const (
	kindText columnKind = iota
	kindInt
	kindFloat
	kindDecimal
	kindTime
	kindBool
)

type column struct {
	name string
	kind columnKind
}

// tourFields maps public JSON field names to filterable/sortable columns.
var tourFields = map[string]column{
	"id":              {"t.id", kindInt},
	"name":            {"t.name", kindText},
	"slug":            {"t.slug", kindText},
	"duration":        {"t.duration", kindInt},
	"maxGroupSize":    {"t.max_group_size", kindInt},
	"difficulty":      {"t.difficulty", kindText},
	"ratingsAverage":  {"t.ratings_average", kindFloat},
	"ratingsQuantity": {"t.ratings_quantity", kindInt},
	"price":           {"t.price", kindDecimal},
	"priceDiscount":   {"t.price_discount", kindDecimal},
	"createdAt":       {"t.created_at", kindTime},
}

var userFields = map[string]column{
	"id":        {"id", kindInt},
	"name":      {"name", kindText},
	"email":     {"email", kindText},
	"role":      {"role", kindText},
	"createdAt": {"created_at", kindTime},
}

var reviewFields = map[string]column{
	"id":        {"r.id", kindInt},
	"rating":    {"r.rating", kindInt},
	"tour":      {"r.tour_id", kindInt},
	"user":      {"r.user_id", kindInt},
	"createdAt": {"r.created_at", kindTime},
}

var bookingFields = map[string]column{
	"id":        {"id", kindInt},
	"tour":      {"tour_id", kindInt},
	"user":      {"user_id", kindInt},
	"price":     {"price", kindDecimal},
	"paid":      {"paid", kindBool},
	"createdAt": {"created_at", kindTime},
}

func (c column) parse(raw string) (any, error) {
	switch c.kind {
	case kindInt:
		return strconv.ParseInt(raw, 10, 64)
	case kindFloat:
		return strconv.ParseFloat(raw, 64)
	case kindDecimal:
		return decimal.NewFromString(raw)
	case kindTime:
		return time.Parse(time.RFC3339, raw)
	case kindBool:
		return strconv.ParseBool(raw)
	default:
		return raw, nil
	}
}

// applyListQuery adds filtering, ordering and pagination to a select.
// Unknown fields and unparsable values are rejected with [ErrInvalidQuery].
func applyListQuery(b sq.SelectBuilder, q models.ListQuery, fields map[string]column, defaultOrder string) (sq.SelectBuilder, error) {
	for _, f := range q.Filters {
		col, ok := fields[f.Field]
		if !ok {
			return b, fmt.Errorf("%w: unknown field %q", ErrInvalidQuery, f.Field)
		}
		if len(f.Values) == 0 {
			continue
		}

		values := make([]any, 0, len(f.Values))
		for _, raw := range f.Values {
			v, err := col.parse(raw)
			if err != nil {
				return b, fmt.Errorf("%w: invalid value %q for field %q", ErrInvalidQuery, raw, f.Field)
			}
			values = append(values, v)
		}

		switch f.Op {
		case models.OpEq, "":
			if len(values) == 1 {
				b = b.Where(sq.Eq{col.name: values[0]})
			} else {
				b = b.Where(sq.Eq{col.name: values})
			}
		case models.OpGt:
			b = b.Where(sq.Gt{col.name: values[0]})
		case models.OpGte:
			b = b.Where(sq.GtOrEq{col.name: values[0]})
		case models.OpLt:
			b = b.Where(sq.Lt{col.name: values[0]})
		case models.OpLte:
			b = b.Where(sq.LtOrEq{col.name: values[0]})
		default:
			return b, fmt.Errorf("%w: unknown operator %q", ErrInvalidQuery, f.Op)
		}
	}

	if len(q.Sort) == 0 {
		b = b.OrderBy(defaultOrder)
	}
	for _, s := range q.Sort {
		col, ok := fields[s.Field]
		if !ok {
			return b, fmt.Errorf("%w: unknown sort field %q", ErrInvalidQuery, s.Field)
		}
		if s.Desc {
			b = b.OrderBy(col.name + " DESC")
		} else {
			b = b.OrderBy(col.name + " ASC")
		}
	}

	return b.Limit(uint64(q.PageSize())).Offset(uint64(q.Offset())), nil
}

func buildListToursQuery(q models.ListQuery) (string, []any, error) {
	b := psql.Select(tourColumns).From("tours t").Where(sq.Eq{"t.secret_tour": false})

	b, err := applyListQuery(b, q, tourFields, "t.created_at DESC, t.id DESC")
	if err != nil {
		return "", nil, err
	}

	return toSQL(b)
}

func buildGetTourQuery(column string, value any) (string, []any, error) {
	return toSQL(psql.Select(tourColumns).
		From("tours t").
		Where(sq.Eq{column: value, "t.secret_tour": false}))
}

func buildTourStatsQuery(minRating float64) (string, []any, error) {
	return toSQL(psql.Select(
		"t.difficulty",
		"COUNT(*)::int",
		"COALESCE(SUM(t.ratings_quantity), 0)::int",
		"AVG(t.ratings_average)",
		"AVG(t.price)",
		"MIN(t.price)",
		"MAX(t.price)",
	).
		From("tours t").
		Where(sq.GtOrEq{"t.ratings_average": minRating}).
		Where(sq.Eq{"t.secret_tour": false}).
		GroupBy("t.difficulty").
		OrderBy("AVG(t.price) ASC"))
}

func buildUpdateTourQuery(id int64, update models.TourUpdate, slug *string) (string, []any, error) {
	b := psql.Update("tours AS t").Where(sq.Eq{"t.id": id}).Suffix("RETURNING " + tourColumns)

	set := 0
	setIf := func(col string, ok bool, v any) {
		if ok {
			b = b.Set(col, v)
			set++
		}
	}

	setIf("name", update.Name != nil, deref(update.Name))
	setIf("slug", slug != nil, deref(slug))
	setIf("duration", update.Duration != nil, deref(update.Duration))
	setIf("max_group_size", update.MaxGroupSize != nil, deref(update.MaxGroupSize))
	setIf("difficulty", update.Difficulty != nil, deref(update.Difficulty))
	setIf("price", update.Price != nil, deref(update.Price))
	setIf("price_discount", update.PriceDiscount != nil, deref(update.PriceDiscount))
	setIf("summary", update.Summary != nil, deref(update.Summary))
	setIf("description", update.Description != nil, deref(update.Description))
	setIf("image_cover", update.ImageCover != nil, deref(update.ImageCover))
	setIf("secret_tour", update.SecretTour != nil, deref(update.SecretTour))

	if set == 0 {
		return "", nil, ErrNothingToUpdate
	}

	return toSQL(b)
}

func buildListUsersQuery(q models.ListQuery) (string, []any, error) {
	b := psql.Select(userColumns).From("users").Where(sq.Eq{"active": true})

	b, err := applyListQuery(b, q, userFields, "created_at DESC, id DESC")
	if err != nil {
		return "", nil, err
	}

	return toSQL(b)
}

func buildUpdateUserQuery(id int64, update models.UserUpdate) (string, []any, error) {
	b := psql.Update("users").
		Where(sq.Eq{"id": id, "active": true}).
		Suffix("RETURNING " + userColumns)

	set := 0
	if update.Name != nil {
		b = b.Set("name", *update.Name)
		set++
	}
	if update.Email != nil {
		b = b.Set("email", strings.ToLower(*update.Email))
		set++
	}
	if update.Photo != nil {
		b = b.Set("photo", *update.Photo)
		set++
	}
	if update.Role != nil {
		b = b.Set("role", string(*update.Role))
		set++
	}

	if set == 0 {
		return "", nil, ErrNothingToUpdate
	}

	return toSQL(b)
}

func buildListReviewsQuery(tourID int64, q models.ListQuery) (string, []any, error) {
	b := psql.Select(reviewColumns).From("reviews r").Join("users u ON u.id = r.user_id")
	if tourID != 0 {
		b = b.Where(sq.Eq{"r.tour_id": tourID})
	}

	b, err := applyListQuery(b, q, reviewFields, "r.created_at DESC, r.id DESC")
	if err != nil {
		return "", nil, err
	}

	return toSQL(b)
}

func buildUpdateReviewQuery(id int64, update models.ReviewUpdate) (string, []any, error) {
	b := psql.Update("reviews").Where(sq.Eq{"id": id}).Suffix("RETURNING tour_id")

	set := 0
	if update.Review != nil {
		b = b.Set("review", *update.Review)
		set++
	}
	if update.Rating != nil {
		b = b.Set("rating", *update.Rating)
		set++
	}

	if set == 0 {
		return "", nil, ErrNothingToUpdate
	}

	return toSQL(b)
}

func buildListBookingsQuery(q models.ListQuery) (string, []any, error) {
	b, err := applyListQuery(psql.Select(bookingColumns).From("bookings"), q, bookingFields, "created_at DESC, id DESC")
	if err != nil {
		return "", nil, err
	}

	return toSQL(b)
}

func buildUpdateBookingQuery(id int64, update models.BookingUpdate) (string, []any, error) {
	b := psql.Update("bookings").Where(sq.Eq{"id": id}).Suffix("RETURNING " + bookingColumns)

	set := 0
	if update.Price != nil {
		b = b.Set("price", *update.Price)
		set++
	}
	if update.Paid != nil {
		b = b.Set("paid", *update.Paid)
		set++
	}

	if set == 0 {
		return "", nil, ErrNothingToUpdate
	}

	return toSQL(b)
}

type sqlizer interface {
	ToSql() (string, []any, error)
}

func toSQL(b sqlizer) (string, []any, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func deref[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
