package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-natours/internal/logger"
	"github.com/MKhiriev/go-natours/internal/utils"
	"github.com/MKhiriev/go-natours/models"
)

const (
	jwtCookieName = "jwt"

	// loggedOutToken replaces the session cookie on logout.
	loggedOutToken = "loggedout"
)

// tokenFromRequest prefers an "Authorization: Bearer" header over the jwt
// cookie.
func tokenFromRequest(r *http.Request) string {
	if header := r.Header.Get("Authorization"); strings.HasPrefix(header, "Bearer") {
		if token, err := utils.ParseBearerToken(header); err == nil {
			return token
		}
	}

	if cookie, err := r.Cookie(jwtCookieName); err == nil && cookie.Value != loggedOutToken {
		return cookie.Value
	}

	return ""
}

// protect rejects anonymous requests. On success the authenticated user is
// stored in the request context.
//
// The request is rejected when the token is missing, invalid or expired,
// when its user no longer exists, or when the password changed after the
// token was issued.
func (h *Handler) protect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := tokenFromRequest(r)
		if token == "" {
			h.sendError(w, r, ErrNotLoggedIn)
			return
		}

		user, err := h.services.AuthService.Authenticate(r.Context(), token)
		if err != nil {
			h.sendError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(r.Context(), user)))
	})
}

// restrictTo allows only users holding one of roles. It must run after
// protect.
func (h *Handler) restrictTo(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := utils.UserFromContext(r.Context())
			if !ok {
				h.sendError(w, r, ErrNotLoggedIn)
				return
			}
			if !user.HasRole(roles...) {
				h.sendError(w, r, ErrForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// withAuthContext resolves the logged-in user of page requests from the
// jwt cookie. Failures leave the request anonymous.
func (h *Handler) withAuthContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isAPIRequest(r) {
			next.ServeHTTP(w, r)
			return
		}

		cookie, err := r.Cookie(jwtCookieName)
		if err != nil || cookie.Value == "" || cookie.Value == loggedOutToken {
			next.ServeHTTP(w, r)
			return
		}

		user, err := h.services.AuthService.Authenticate(r.Context(), cookie.Value)
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Str("func", "*Handler.withAuthContext").Msg("ignoring session cookie")
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(r.Context(), user)))
	})
}

// currentUser returns the authenticated user placed in the context by
// protect or withAuthContext.
func currentUser(r *http.Request) (models.User, bool) {
	return utils.UserFromContext(r.Context())
}
