package http

import (
	"net/http"

	"github.com/MKhiriev/go-natours/internal/utils"
	"github.com/MKhiriev/go-natours/models"
	"github.com/go-chi/chi/v5"
)

// tourIDFromPath returns the tour id of nested /tours/{tourId}/reviews
// routes, or zero on the top-level /reviews routes.
func tourIDFromPath(r *http.Request) (int64, error) {
	if chi.URLParam(r, "tourId") == "" {
		return 0, nil
	}
	return pathID(r, "tourId")
}

func (h *Handler) getAllReviews(w http.ResponseWriter, r *http.Request) {
	tourID, err := tourIDFromPath(r)
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	query, err := parseListQuery(r.URL.Query())
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	reviews, err := h.services.ReviewService.ListReviews(r.Context(), tourID, query)
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.NewListResponse("reviews", reviews), http.StatusOK)
}

// createReview takes the tour from the path when nested and the author
// from the session.
func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	current, _ := currentUser(r)

	tourID, err := tourIDFromPath(r)
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	var review models.Review
	if err = decodeJSON(r, &review); err != nil {
		h.sendError(w, r, err)
		return
	}
	if tourID != 0 {
		review.TourID = tourID
	}
	review.UserID = current.ID

	created, err := h.services.ReviewService.CreateReview(r.Context(), review)
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.NewDataResponse("review", created), http.StatusCreated)
}

func (h *Handler) getReview(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	review, err := h.services.ReviewService.GetReview(r.Context(), id)
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.NewDataResponse("review", review), http.StatusOK)
}

func (h *Handler) updateReview(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	var update models.ReviewUpdate
	if err = decodeJSON(r, &update); err != nil {
		h.sendError(w, r, err)
		return
	}

	review, err := h.services.ReviewService.UpdateReview(r.Context(), id, update)
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.NewDataResponse("review", review), http.StatusOK)
}

func (h *Handler) deleteReview(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	if err = h.services.ReviewService.DeleteReview(r.Context(), id); err != nil {
		h.sendError(w, r, err)
		return
	}

	utils.WriteNoContent(w)
}
