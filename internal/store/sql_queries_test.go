package store

import (
	"errors"
	"testing"

	"github.com/MKhiriev/go-natours/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── buildListToursQuery ──

func TestBuildListToursQuery(t *testing.T) {
	tests := []struct {
		name         string
		query        models.ListQuery
		wantContains []string
		wantArgs     int
		wantErr      error
	}{
		{
			name:         "defaults hide secret tours and paginate",
			query:        models.ListQuery{},
			wantContains: []string{"WHERE t.secret_tour = $1", "ORDER BY t.created_at DESC, t.id DESC", "LIMIT 100", "OFFSET 0"},
			wantArgs:     1,
		},
		{
			name: "comparison filter and sort",
			query: models.ListQuery{
				Filters: []models.Filter{{Field: "price", Op: models.OpGte, Values: []string{"500"}}},
				Sort:    []models.SortField{{Field: "price", Desc: true}, {Field: "ratingsAverage"}},
			},
			wantContains: []string{"t.price >= $2", "ORDER BY t.price DESC, t.ratings_average ASC"},
			wantArgs:     2,
		},
		{
			name: "multiple equality values become IN",
			query: models.ListQuery{
				Filters: []models.Filter{{Field: "difficulty", Op: models.OpEq, Values: []string{"easy", "medium"}}},
			},
			wantContains: []string{"t.difficulty IN ($2,$3)"},
			wantArgs:     3,
		},
		{
			name:         "page three of five",
			query:        models.ListQuery{Page: 3, Limit: 5},
			wantContains: []string{"LIMIT 5", "OFFSET 10"},
			wantArgs:     1,
		},
		{
			name:    "unknown field",
			query:   models.ListQuery{Filters: []models.Filter{{Field: "password", Values: []string{"x"}}}},
			wantErr: ErrInvalidQuery,
		},
		{
			name:    "unparsable value",
			query:   models.ListQuery{Filters: []models.Filter{{Field: "duration", Op: models.OpLt, Values: []string{"long"}}}},
			wantErr: ErrInvalidQuery,
		},
		{
			name:    "unknown sort field",
			query:   models.ListQuery{Sort: []models.SortField{{Field: "secretTour"}}},
			wantErr: ErrInvalidQuery,
		},
		{
			name:    "unknown operator",
			query:   models.ListQuery{Filters: []models.Filter{{Field: "price", Op: "ne", Values: []string{"1"}}}},
			wantErr: ErrInvalidQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListToursQuery(tt.query)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			for _, s := range tt.wantContains {
				assert.Contains(t, query, s)
			}
			assert.Len(t, args, tt.wantArgs)
		})
	}
}

func TestBuildListToursQuery_ParsesDecimal(t *testing.T) {
	_, args, err := buildListToursQuery(models.ListQuery{
		Filters: []models.Filter{{Field: "price", Op: models.OpLt, Values: []string{"997.50"}}},
	})
	require.NoError(t, err)
	require.Len(t, args, 2)

	// squirrel resolves driver.Valuer arguments, so the parsed price arrives
	// in its normalized text form
	assert.Equal(t, "997.5", args[1])

	_, _, err = buildListToursQuery(models.ListQuery{
		Filters: []models.Filter{{Field: "price", Op: models.OpLt, Values: []string{"cheap"}}},
	})
	assert.ErrorIs(t, err, ErrInvalidQuery)
}

// ── update builders ──

func TestBuildUpdateTourQuery(t *testing.T) {
	name := "The Forest Hiker"
	slug := "the-forest-hiker"

	query, args, err := buildUpdateTourQuery(7, models.TourUpdate{Name: &name}, &slug)
	require.NoError(t, err)

	assert.Contains(t, query, "UPDATE tours AS t SET name = $1, slug = $2 WHERE t.id = $3")
	assert.Contains(t, query, "RETURNING t.id")
	assert.Equal(t, []any{name, slug, int64(7)}, args)
}

func TestBuildUpdateQueries_NothingToUpdate(t *testing.T) {
	_, _, err := buildUpdateTourQuery(1, models.TourUpdate{}, nil)
	assert.True(t, errors.Is(err, ErrNothingToUpdate))

	_, _, err = buildUpdateUserQuery(1, models.UserUpdate{})
	assert.ErrorIs(t, err, ErrNothingToUpdate)

	_, _, err = buildUpdateReviewQuery(1, models.ReviewUpdate{})
	assert.ErrorIs(t, err, ErrNothingToUpdate)

	_, _, err = buildUpdateBookingQuery(1, models.BookingUpdate{})
	assert.ErrorIs(t, err, ErrNothingToUpdate)
}

func TestBuildUpdateUserQuery_LowercasesEmail(t *testing.T) {
	email := "Laura@Example.COM"

	query, args, err := buildUpdateUserQuery(3, models.UserUpdate{Email: &email})
	require.NoError(t, err)

	assert.Contains(t, query, "SET email = $1")
	assert.Equal(t, "laura@example.com", args[0])
}

func TestBuildUpdateReviewQuery_ReturnsTourID(t *testing.T) {
	rating := 4

	query, args, err := buildUpdateReviewQuery(9, models.ReviewUpdate{Rating: &rating})
	require.NoError(t, err)

	assert.Contains(t, query, "RETURNING tour_id")
	assert.Equal(t, []any{4, int64(9)}, args)
}

func TestBuildListReviewsQuery(t *testing.T) {
	t.Run("scoped to a tour", func(t *testing.T) {
		query, args, err := buildListReviewsQuery(5, models.ListQuery{})
		require.NoError(t, err)
		assert.Contains(t, query, "JOIN users u ON u.id = r.user_id")
		assert.Contains(t, query, "r.tour_id = $1")
		assert.Equal(t, int64(5), args[0])
	})

	t.Run("all reviews", func(t *testing.T) {
		query, args, err := buildListReviewsQuery(0, models.ListQuery{})
		require.NoError(t, err)
		assert.NotContains(t, query, "r.tour_id =")
		assert.Empty(t, args)
	})
}

func TestBuildTourStatsQuery(t *testing.T) {
	query, args, err := buildTourStatsQuery(models.DefaultRatingsAverage)
	require.NoError(t, err)

	assert.Contains(t, query, "t.ratings_average >= $1")
	assert.Contains(t, query, "GROUP BY t.difficulty")
	assert.Equal(t, []any{4.5, false}, args)
}

func TestBuildListBookingsQuery_BoolFilter(t *testing.T) {
	query, args, err := buildListBookingsQuery(models.ListQuery{
		Filters: []models.Filter{{Field: "paid", Values: []string{"false"}}},
	})
	require.NoError(t, err)

	assert.Contains(t, query, "paid = $1")
	assert.Equal(t, false, args[0])
}
