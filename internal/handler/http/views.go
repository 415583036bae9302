package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-natours/internal/store"
	"github.com/MKhiriev/go-natours/internal/web"
	"github.com/MKhiriev/go-natours/models"
	"github.com/go-chi/chi/v5"
)

// page prepares the data shared by every view: the logged-in user and the
// banner selected by ?alert=.
func (h *Handler) page(r *http.Request, title string) web.Page {
	p := web.Page{
		Title: title,
		Alert: web.AlertMessage(r.URL.Query().Get("alert")),
	}
	if user, ok := currentUser(r); ok {
		p.User = &user
	}
	return p
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, page web.Page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.views.Render(w, name, page); err != nil {
		h.sendError(w, r, err)
	}
}

func (h *Handler) getOverview(w http.ResponseWriter, r *http.Request) {
	tours, err := h.services.TourService.ListTours(r.Context(), models.ListQuery{})
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	page := h.page(r, "All Tours")
	page.Tours = tours
	h.render(w, r, web.PageOverview, page)
}

func (h *Handler) getTourPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tour, err := h.services.TourService.GetTourBySlug(ctx, chi.URLParam(r, "slug"))
	if errors.Is(err, store.ErrNotFound) {
		h.sendError(w, r, ErrTourNotFound)
		return
	}
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	reviews, err := h.services.ReviewService.ListReviews(ctx, tour.ID, models.ListQuery{})
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	page := h.page(r, tour.Name+" Tour")
	page.Tour = &tour
	page.Reviews = reviews
	h.render(w, r, web.PageTour, page)
}

func (h *Handler) getLoginForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, web.PageLogin, h.page(r, "Log into your account"))
}

func (h *Handler) getAccount(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, web.PageAccount, h.page(r, "Your account"))
}

func (h *Handler) getMyTours(w http.ResponseWriter, r *http.Request) {
	current, _ := currentUser(r)

	tours, err := h.services.TourService.BookedTours(r.Context(), current.ID)
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	page := h.page(r, "My Tours")
	page.Tours = tours
	h.render(w, r, web.PageOverview, page)
}

// updateUserData handles the account form post.
func (h *Handler) updateUserData(w http.ResponseWriter, r *http.Request) {
	current, _ := currentUser(r)

	if err := r.ParseForm(); err != nil {
		h.sendError(w, r, err)
		return
	}

	name, email := r.PostFormValue("name"), r.PostFormValue("email")
	user, err := h.services.UserService.UpdateMe(r.Context(), current.ID, models.UserUpdate{
		Name:  &name,
		Email: &email,
	})
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	page := h.page(r, "Your account")
	page.User = &user
	h.render(w, r, web.PageAccount, page)
}
