package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-natours/internal/pipeline"
	"github.com/MKhiriev/go-natours/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router and wraps it in the edge pipeline.
func (h *Handler) Init() (http.Handler, error) {
	router := chi.NewRouter()
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	h.viewRoutes(router)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/version", h.getServerVersion)
		r.Route("/users", h.userRoutes)
		r.Route("/tours", h.tourRoutes)
		r.Route("/reviews", h.reviewRoutes)
		r.Route("/bookings", h.bookingRoutes)
	})

	edge, err := pipeline.New(h.stages()...)
	if err != nil {
		return nil, fmt.Errorf("error building edge pipeline: %w", err)
	}

	return edge.Then(router), nil
}

func (h *Handler) viewRoutes(r chi.Router) {
	r.Get("/", h.getOverview)
	r.Get("/tour/{slug}", h.getTourPage)
	r.Get("/login", h.getLoginForm)

	r.Group(func(r chi.Router) {
		r.Use(h.protect)
		r.Get("/me", h.getAccount)
		r.Get("/my-tours", h.getMyTours)
		r.Post("/submit-user-data", h.updateUserData)
	})
}

func (h *Handler) userRoutes(r chi.Router) {
	r.Post("/signup", h.signup)
	r.Post("/login", h.login)
	r.Get("/logout", h.logout)

	r.Group(func(r chi.Router) {
		r.Use(h.protect)

		r.Patch("/updateMyPassword", h.updatePassword)
		r.Get("/me", h.getMe)
		r.Patch("/updateMe", h.updateMe)
		r.Delete("/deleteMe", h.deleteMe)

		r.Group(func(r chi.Router) {
			r.Use(h.restrictTo(models.RoleAdmin))

			r.Get("/", h.getAllUsers)
			r.Post("/", h.createUser)
			r.Get("/{id}", h.getUser)
			r.Patch("/{id}", h.updateUser)
			r.Delete("/{id}", h.deleteUser)
		})
	})
}

func (h *Handler) tourRoutes(r chi.Router) {
	r.Route("/{tourId}/reviews", h.reviewRoutes)

	r.With(aliasTopTours).Get("/top-5-cheap", h.getAllTours)
	r.Get("/tour-stats", h.getTourStats)
	r.With(h.protect, h.restrictTo(models.RoleAdmin, models.RoleLeadGuide, models.RoleGuide)).
		Get("/monthly-plan/{year}", h.getMonthlyPlan)
	r.Get("/tours-within/{distance}/center/{latlng}/unit/{unit}", h.getToursWithin)
	r.Get("/distances/{latlng}/unit/{unit}", h.getDistances)

	r.Get("/", h.getAllTours)
	r.Get("/{id}", h.getTour)

	r.Group(func(r chi.Router) {
		r.Use(h.protect, h.restrictTo(models.RoleAdmin, models.RoleLeadGuide))

		r.Post("/", h.createTour)
		r.Patch("/{id}", h.updateTour)
		r.Delete("/{id}", h.deleteTour)
	})
}

func (h *Handler) reviewRoutes(r chi.Router) {
	r.Get("/", h.getAllReviews)

	r.Group(func(r chi.Router) {
		r.Use(h.protect)

		r.With(h.restrictTo(models.RoleUser)).Post("/", h.createReview)
		r.Get("/{id}", h.getReview)
		r.With(h.restrictTo(models.RoleUser, models.RoleAdmin)).Patch("/{id}", h.updateReview)
		r.With(h.restrictTo(models.RoleUser, models.RoleAdmin)).Delete("/{id}", h.deleteReview)
	})
}

func (h *Handler) bookingRoutes(r chi.Router) {
	r.Use(h.protect)

	r.Get("/checkout-session/{tourId}", h.getCheckoutSession)

	r.Group(func(r chi.Router) {
		r.Use(h.restrictTo(models.RoleAdmin, models.RoleLeadGuide))

		r.Get("/", h.getAllBookings)
		r.Post("/", h.createBooking)
		r.Get("/{id}", h.getBooking)
		r.Patch("/{id}", h.updateBooking)
		r.Delete("/{id}", h.deleteBooking)
	})
}
