package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-natours/internal/logger"
	"github.com/MKhiriev/go-natours/internal/mock"
	"github.com/MKhiriev/go-natours/internal/store"
	"github.com/MKhiriev/go-natours/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type bookingMocks struct {
	bookings *mock.MockBookingRepository
	tours    *mock.MockTourRepository
	users    *mock.MockUserRepository
	gateway  *mock.MockPaymentGateway
}

func newTestBookingService(t *testing.T) (BookingService, bookingMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := bookingMocks{
		bookings: mock.NewMockBookingRepository(ctrl),
		tours:    mock.NewMockTourRepository(ctrl),
		users:    mock.NewMockUserRepository(ctrl),
		gateway:  mock.NewMockPaymentGateway(ctrl),
	}

	svc := NewBookingService(&store.Storages{
		TourRepository:    m.tours,
		UserRepository:    m.users,
		BookingRepository: m.bookings,
	}, m.gateway, logger.Nop())

	return svc, m
}

func completedEvent() models.WebhookEvent {
	return models.WebhookEvent{
		ID:            "evt_1",
		Type:          models.EventCheckoutSessionCompleted,
		SessionID:     "cs_test_1",
		TourID:        "5",
		CustomerEmail: "laura@example.com",
		AmountTotal:   49700,
	}
}

// ─────────────────────────────────────────────
// CreateCheckoutSession
// ─────────────────────────────────────────────

func TestCreateCheckoutSession_BuildsRedirectURLs(t *testing.T) {
	svc, m := newTestBookingService(t)

	tour := models.Tour{ID: 5, Name: "The Forest Hiker", Slug: "the-forest-hiker", Price: decimal.NewFromInt(497)}
	user := models.User{ID: 3, Email: "laura@example.com"}

	m.tours.EXPECT().GetTour(gomock.Any(), int64(5)).Return(tour, nil)
	m.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), models.CheckoutRequest{
		Tour:          tour,
		CustomerEmail: "laura@example.com",
		SuccessURL:    "https://natours.dev/my-tours?alert=booking",
		CancelURL:     "https://natours.dev/tour/the-forest-hiker",
		ImageBaseURL:  "https://natours.dev",
	}).Return(models.CheckoutSession{ID: "cs_test_1", URL: "https://checkout.stripe.com/c/pay/cs_test_1"}, nil)

	session, err := svc.CreateCheckoutSession(context.Background(), 5, user, "https://natours.dev/")
	require.NoError(t, err)
	assert.Equal(t, "cs_test_1", session.ID)
}

func TestCreateCheckoutSession_UnknownTour(t *testing.T) {
	svc, m := newTestBookingService(t)

	m.tours.EXPECT().GetTour(gomock.Any(), int64(99)).Return(models.Tour{}, store.ErrNotFound)

	_, err := svc.CreateCheckoutSession(context.Background(), 99, models.User{ID: 3}, "http://localhost:3000")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCreateCheckoutSession_GatewayError(t *testing.T) {
	svc, m := newTestBookingService(t)

	gatewayErr := errors.New("stripe unavailable")
	m.tours.EXPECT().GetTour(gomock.Any(), int64(5)).Return(models.Tour{ID: 5}, nil)
	m.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).Return(models.CheckoutSession{}, gatewayErr)

	_, err := svc.CreateCheckoutSession(context.Background(), 5, models.User{ID: 3}, "http://localhost:3000")
	assert.ErrorIs(t, err, gatewayErr)
}

// ─────────────────────────────────────────────
// HandleWebhook
// ─────────────────────────────────────────────

func TestHandleWebhook_CreatesBooking(t *testing.T) {
	svc, m := newTestBookingService(t)

	payload := []byte(`{"id":"evt_1"}`)
	m.gateway.EXPECT().ParseWebhook(payload, "t=1,v1=sig").Return(completedEvent(), nil)
	m.users.EXPECT().FindUserByEmail(gomock.Any(), "laura@example.com").Return(models.User{ID: 3}, nil)
	m.bookings.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b models.Booking) (models.Booking, error) {
			assert.Equal(t, int64(5), b.TourID)
			assert.Equal(t, int64(3), b.UserID)
			assert.True(t, b.Price.Equal(decimal.NewFromInt(497)), "price %s", b.Price)
			assert.True(t, b.Paid)
			assert.Equal(t, "cs_test_1", b.StripeSessionID)
			b.ID = 1
			return b, nil
		})

	require.NoError(t, svc.HandleWebhook(context.Background(), payload, "t=1,v1=sig"))
}

func TestHandleWebhook_DuplicateDeliveryIsAcknowledged(t *testing.T) {
	svc, m := newTestBookingService(t)

	m.gateway.EXPECT().ParseWebhook(gomock.Any(), gomock.Any()).Return(completedEvent(), nil).Times(2)
	m.users.EXPECT().FindUserByEmail(gomock.Any(), "laura@example.com").Return(models.User{ID: 3}, nil).Times(2)
	gomock.InOrder(
		m.bookings.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(models.Booking{ID: 1}, nil),
		m.bookings.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(models.Booking{}, store.ErrDuplicateBooking),
	)

	require.NoError(t, svc.HandleWebhook(context.Background(), []byte(`{}`), "sig"))
	require.NoError(t, svc.HandleWebhook(context.Background(), []byte(`{}`), "sig"))
}

func TestHandleWebhook_IgnoresOtherEvents(t *testing.T) {
	svc, m := newTestBookingService(t)

	m.gateway.EXPECT().ParseWebhook(gomock.Any(), gomock.Any()).
		Return(models.WebhookEvent{ID: "evt_2", Type: "payment_intent.created"}, nil)

	assert.NoError(t, svc.HandleWebhook(context.Background(), []byte(`{}`), "sig"))
}

func TestHandleWebhook_Errors(t *testing.T) {
	badSignature := errors.New("no signatures found matching the expected signature for payload")

	tests := []struct {
		name    string
		setup   func(m bookingMocks)
		wantErr error
	}{
		{
			name: "bad signature",
			setup: func(m bookingMocks) {
				m.gateway.EXPECT().ParseWebhook(gomock.Any(), gomock.Any()).Return(models.WebhookEvent{}, badSignature)
			},
			wantErr: badSignature,
		},
		{
			name: "missing client reference",
			setup: func(m bookingMocks) {
				event := completedEvent()
				event.TourID = ""
				m.gateway.EXPECT().ParseWebhook(gomock.Any(), gomock.Any()).Return(event, nil)
			},
			wantErr: ErrInvalidWebhookEvent,
		},
		{
			name: "missing customer email",
			setup: func(m bookingMocks) {
				event := completedEvent()
				event.CustomerEmail = ""
				m.gateway.EXPECT().ParseWebhook(gomock.Any(), gomock.Any()).Return(event, nil)
			},
			wantErr: ErrInvalidWebhookEvent,
		},
		{
			name: "unknown customer",
			setup: func(m bookingMocks) {
				m.gateway.EXPECT().ParseWebhook(gomock.Any(), gomock.Any()).Return(completedEvent(), nil)
				m.users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrNotFound)
			},
			wantErr: store.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestBookingService(t)
			tt.setup(m)

			err := svc.HandleWebhook(context.Background(), []byte(`{}`), "sig")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ─────────────────────────────────────────────
// CRUD
// ─────────────────────────────────────────────

func TestCreateBooking_Validation(t *testing.T) {
	svc, m := newTestBookingService(t)

	_, err := svc.CreateBooking(context.Background(), models.Booking{TourID: 5, UserID: 3})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	booking := models.Booking{TourID: 5, UserID: 3, Price: decimal.NewFromInt(497), Paid: true}
	m.bookings.EXPECT().CreateBooking(gomock.Any(), booking).Return(models.Booking{ID: 1}, nil)

	created, err := svc.CreateBooking(context.Background(), booking)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
}

func TestUpdateBooking_RejectsNonPositivePrice(t *testing.T) {
	svc, _ := newTestBookingService(t)

	price := decimal.Zero
	_, err := svc.UpdateBooking(context.Background(), 1, models.BookingUpdate{Price: &price})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}
