package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-natours/internal/utils"
	"github.com/MKhiriev/go-natours/models"
)

// getCheckoutSession opens a hosted checkout page for the tour and returns
// its session descriptor.
func (h *Handler) getCheckoutSession(w http.ResponseWriter, r *http.Request) {
	current, _ := currentUser(r)

	tourID, err := pathID(r, "tourId")
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	session, err := h.services.BookingService.CreateCheckoutSession(r.Context(), tourID, current, h.baseURL(r))
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.CheckoutSessionResponse{
		Status:  models.StatusSuccess,
		Session: session,
	}, http.StatusOK)
}

// baseURL is the configured public URL or, when unset, the origin the
// request was made to.
func (h *Handler) baseURL(r *http.Request) string {
	if h.publicURL != "" {
		return strings.TrimRight(h.publicURL, "/")
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if forwarded := r.Header.Get("X-Forwarded-Proto"); forwarded != "" {
		scheme = forwarded
	}

	return scheme + "://" + r.Host
}

func (h *Handler) getAllBookings(w http.ResponseWriter, r *http.Request) {
	query, err := parseListQuery(r.URL.Query())
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	bookings, err := h.services.BookingService.ListBookings(r.Context(), query)
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.NewListResponse("bookings", bookings), http.StatusOK)
}

func (h *Handler) createBooking(w http.ResponseWriter, r *http.Request) {
	var booking models.Booking
	if err := decodeJSON(r, &booking); err != nil {
		h.sendError(w, r, err)
		return
	}

	created, err := h.services.BookingService.CreateBooking(r.Context(), booking)
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.NewDataResponse("booking", created), http.StatusCreated)
}

func (h *Handler) getBooking(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	booking, err := h.services.BookingService.GetBooking(r.Context(), id)
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.NewDataResponse("booking", booking), http.StatusOK)
}

func (h *Handler) updateBooking(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	var update models.BookingUpdate
	if err = decodeJSON(r, &update); err != nil {
		h.sendError(w, r, err)
		return
	}

	booking, err := h.services.BookingService.UpdateBooking(r.Context(), id, update)
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.NewDataResponse("booking", booking), http.StatusOK)
}

func (h *Handler) deleteBooking(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	if err = h.services.BookingService.DeleteBooking(r.Context(), id); err != nil {
		h.sendError(w, r, err)
		return
	}

	utils.WriteNoContent(w)
}
