package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-natours/internal/logger"
	"github.com/MKhiriev/go-natours/internal/utils"
	"github.com/MKhiriev/go-natours/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var request models.SignupRequest
	if err := decodeJSON(r, &request); err != nil {
		h.sendError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Signup(ctx, request)
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	h.createSendToken(w, r, user, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := decodeJSON(r, &request); err != nil {
		h.sendError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	log.Debug().Int64("id", user.ID).Msg("user successfully logged in")

	h.createSendToken(w, r, user, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     jwtCookieName,
		Value:    loggedOutToken,
		Path:     "/",
		Expires:  time.Now().Add(10 * time.Second),
		HttpOnly: true,
	})

	_, _ = utils.WriteJSON(w, models.DataResponse{Status: models.StatusSuccess}, http.StatusOK)
}

func (h *Handler) updatePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	current, _ := currentUser(r)

	var request models.UpdatePasswordRequest
	if err := decodeJSON(r, &request); err != nil {
		h.sendError(w, r, err)
		return
	}

	user, err := h.services.AuthService.UpdatePassword(ctx, current.ID, request)
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	h.createSendToken(w, r, user, http.StatusOK)
}

// createSendToken issues a session token and sends it both as the jwt
// cookie and in the response body.
func (h *Handler) createSendToken(w http.ResponseWriter, r *http.Request, user models.User, statusCode int) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     jwtCookieName,
		Value:    token.SignedString,
		Path:     "/",
		Expires:  time.Now().Add(h.cookieMaxAge),
		HttpOnly: true,
		Secure:   !h.development,
		SameSite: http.SameSiteLaxMode,
	})

	_, _ = utils.WriteJSON(w, models.AuthResponse{
		Status: models.StatusSuccess,
		Token:  token.SignedString,
		Data:   map[string]any{"user": user},
	}, statusCode)
}
