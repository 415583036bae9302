package http

import (
	"net/http"

	"github.com/MKhiriev/go-natours/internal/utils"
	"github.com/MKhiriev/go-natours/models"
)

func (h *Handler) getMe(w http.ResponseWriter, r *http.Request) {
	current, _ := currentUser(r)

	user, err := h.services.UserService.GetUser(r.Context(), current.ID)
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.NewDataResponse("user", user), http.StatusOK)
}

// updateMeRequest accepts the password fields only to reject them.
type updateMeRequest struct {
	models.UserUpdate
	Password        string `json:"password"`
	PasswordConfirm string `json:"passwordConfirm"`
}

func (h *Handler) updateMe(w http.ResponseWriter, r *http.Request) {
	current, _ := currentUser(r)

	var request updateMeRequest
	if err := decodeJSON(r, &request); err != nil {
		h.sendError(w, r, err)
		return
	}
	if request.Password != "" || request.PasswordConfirm != "" {
		h.sendError(w, r, ErrPasswordUpdateNotAllowed)
		return
	}

	user, err := h.services.UserService.UpdateMe(r.Context(), current.ID, request.UserUpdate)
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.NewDataResponse("user", user), http.StatusOK)
}

func (h *Handler) deleteMe(w http.ResponseWriter, r *http.Request) {
	current, _ := currentUser(r)

	if err := h.services.UserService.DeleteMe(r.Context(), current.ID); err != nil {
		h.sendError(w, r, err)
		return
	}

	utils.WriteNoContent(w)
}

func (h *Handler) getAllUsers(w http.ResponseWriter, r *http.Request) {
	query, err := parseListQuery(r.URL.Query())
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	users, err := h.services.UserService.ListUsers(r.Context(), query)
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.NewListResponse("users", users), http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	h.sendError(w, r, ErrUseSignup)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), id)
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.NewDataResponse("user", user), http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	var update models.UserUpdate
	if err = decodeJSON(r, &update); err != nil {
		h.sendError(w, r, err)
		return
	}

	user, err := h.services.UserService.UpdateUser(r.Context(), id, update)
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.NewDataResponse("user", user), http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	if err = h.services.UserService.DeleteUser(r.Context(), id); err != nil {
		h.sendError(w, r, err)
		return
	}

	utils.WriteNoContent(w)
}
