package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-natours/internal/service"
	"github.com/MKhiriev/go-natours/internal/utils"
	"github.com/MKhiriev/go-natours/models"
	"github.com/go-chi/chi/v5"
)

// aliasTopTours presets the query of the five best rated cheap tours.
func aliasTopTours(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		q.Set("limit", "5")
		q.Set("sort", "-ratingsAverage,price")
		q.Set("fields", "name,price,ratingsAverage,summary,difficulty")
		r.URL.RawQuery = q.Encode()

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) getAllTours(w http.ResponseWriter, r *http.Request) {
	query, err := parseListQuery(r.URL.Query())
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	tours, err := h.services.TourService.ListTours(r.Context(), query)
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	if len(query.Fields) == 0 {
		_, _ = utils.WriteJSON(w, models.NewListResponse("tours", tours), http.StatusOK)
		return
	}

	projected, err := project(tours, query.Fields)
	if err != nil {
		h.sendError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, models.NewListResponse("tours", projected), http.StatusOK)
}

func (h *Handler) getTour(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	tour, err := h.services.TourService.GetTour(ctx, id)
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	reviews, err := h.services.ReviewService.ListReviews(ctx, id, models.ListQuery{})
	if err != nil {
		h.sendError(w, r, err)
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}

	_, _ = utils.WriteJSON(w, models.DataResponse{
		Status: models.StatusSuccess,
		Data:   map[string]any{"tour": tour, "reviews": reviews},
	}, http.StatusOK)
}

func (h *Handler) createTour(w http.ResponseWriter, r *http.Request) {
	var tour models.Tour
	if err := decodeJSON(r, &tour); err != nil {
		h.sendError(w, r, err)
		return
	}

	created, err := h.services.TourService.CreateTour(r.Context(), tour)
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.NewDataResponse("tour", created), http.StatusCreated)
}

func (h *Handler) updateTour(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	var update models.TourUpdate
	if err = decodeJSON(r, &update); err != nil {
		h.sendError(w, r, err)
		return
	}

	tour, err := h.services.TourService.UpdateTour(r.Context(), id, update)
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.NewDataResponse("tour", tour), http.StatusOK)
}

func (h *Handler) deleteTour(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	if err = h.services.TourService.DeleteTour(r.Context(), id); err != nil {
		h.sendError(w, r, err)
		return
	}

	utils.WriteNoContent(w)
}

func (h *Handler) getTourStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.TourService.TourStats(r.Context())
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.NewDataResponse("stats", stats), http.StatusOK)
}

func (h *Handler) getMonthlyPlan(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		h.sendError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidYear, err))
		return
	}

	plan, err := h.services.TourService.MonthlyPlan(r.Context(), year)
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.NewDataResponse("plan", plan), http.StatusOK)
}

// getToursWithin serves /tours-within/:distance/center/:latlng/unit/:unit.
func (h *Handler) getToursWithin(w http.ResponseWriter, r *http.Request) {
	distance, err := strconv.ParseFloat(chi.URLParam(r, "distance"), 64)
	if err != nil {
		h.sendError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDistance, err))
		return
	}

	center, err := service.ParseLatLng(chi.URLParam(r, "latlng"))
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	tours, err := h.services.TourService.ToursWithin(r.Context(), distance, center, chi.URLParam(r, "unit"))
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.NewListResponse("tours", tours), http.StatusOK)
}

func (h *Handler) getDistances(w http.ResponseWriter, r *http.Request) {
	center, err := service.ParseLatLng(chi.URLParam(r, "latlng"))
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	distances, err := h.services.TourService.Distances(r.Context(), center, chi.URLParam(r, "unit"))
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.NewDataResponse("data", distances), http.StatusOK)
}
