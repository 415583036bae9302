package http

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/MKhiriev/go-natours/internal/logger"
	"github.com/MKhiriev/go-natours/internal/payment"
	"github.com/MKhiriev/go-natours/internal/service"
	"github.com/MKhiriev/go-natours/internal/store"
	"github.com/MKhiriev/go-natours/internal/utils"
	"github.com/MKhiriev/go-natours/internal/validators"
	"github.com/MKhiriev/go-natours/internal/web"
	"github.com/MKhiriev/go-natours/models"
)

// errorResponse describes how a sentinel error is presented. An empty
// message means the error text itself is shown.
type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is checked in order, so more specific errors come first.
var errorResponses = []errorResponse{
	{ErrNotLoggedIn, http.StatusUnauthorized, "You are not logged in! Please log in to get access."},
	{ErrForbidden, http.StatusForbidden, "You do not have permission to perform this action"},
	{ErrTooManyRequests, http.StatusTooManyRequests, "Too many requests from this IP, please try again in an hour!"},
	{ErrInvalidJSON, http.StatusBadRequest, ""},
	{ErrBodyTooLarge, http.StatusRequestEntityTooLarge, "Request body is too large."},
	{ErrInvalidGzipBody, http.StatusBadRequest, "Invalid gzip data."},
	{ErrInvalidID, http.StatusBadRequest, ""},
	{ErrInvalidQueryParam, http.StatusBadRequest, ""},
	{ErrPasswordUpdateNotAllowed, http.StatusBadRequest, "This route is not for password updates. Please use /updateMyPassword."},
	{ErrUseSignup, http.StatusInternalServerError, "This route is not defined! Please use /signup instead"},
	{ErrTourNotFound, http.StatusNotFound, "There is no tour with that name."},

	{service.ErrMissingCredentials, http.StatusBadRequest, "Please provide email and password!"},
	{service.ErrIncorrectCredentials, http.StatusUnauthorized, "Incorrect email or password"},
	{service.ErrWrongCurrentPassword, http.StatusUnauthorized, "Your current password is wrong."},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, "Invalid token. Please log in again!"},
	{service.ErrUserNoLongerExists, http.StatusUnauthorized, "The user belonging to this token does no longer exist."},
	{service.ErrPasswordChanged, http.StatusUnauthorized, "User recently changed password! Please log in again."},
	{service.ErrInvalidLocation, http.StatusBadRequest, "Please provide latitude and longitude in the format lat,lng."},
	{service.ErrInvalidUnit, http.StatusBadRequest, "Unit must be either mi or km."},
	{service.ErrInvalidDistance, http.StatusBadRequest, "Distance must be a positive number."},
	{service.ErrInvalidYear, http.StatusBadRequest, "Please provide a valid year."},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, "Invalid input data."},
	{service.ErrInvalidWebhookEvent, http.StatusBadRequest, ""},

	{store.ErrNotFound, http.StatusNotFound, "No document found with that ID"},
	{store.ErrEmailAlreadyExists, http.StatusBadRequest, "Duplicate field value: email. Please use another value!"},
	{store.ErrTourNameAlreadyExists, http.StatusBadRequest, "Duplicate field value: name. Please use another value!"},
	{store.ErrDuplicateReview, http.StatusBadRequest, "You have already reviewed this tour."},
	{store.ErrDuplicateBooking, http.StatusBadRequest, "This checkout session is already booked."},
	{store.ErrReferenceNotFound, http.StatusBadRequest, "Referenced document does not exist."},
	{store.ErrNothingToUpdate, http.StatusBadRequest, "Please provide at least one field to update."},
	{store.ErrInvalidQuery, http.StatusBadRequest, ""},
	{store.ErrConstraintViolation, http.StatusBadRequest, "Invalid input data."},

	{payment.ErrDisabled, http.StatusServiceUnavailable, "Payments are not available at the moment."},
	{payment.ErrCreatingSession, http.StatusBadGateway, "Could not create a checkout session. Please try again later."},
	{payment.ErrInvalidSignature, http.StatusBadRequest, ""},
	{payment.ErrInvalidEvent, http.StatusBadRequest, ""},
}

// classify turns any error into an *AppError. Errors that match no known
// sentinel become programmer errors.
func classify(err error) *AppError {
	if appErr, ok := asAppError(err); ok {
		return appErr
	}

	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return wrapAppError(http.StatusBadRequest, validationErr.Error(), err)
	}

	for _, resp := range errorResponses {
		if errors.Is(err, resp.target) {
			message := resp.message
			if message == "" {
				message = err.Error()
			}
			return wrapAppError(resp.status, message, err)
		}
	}

	return programmerError(err, debug.Stack())
}

func isAPIRequest(r *http.Request) bool {
	return strings.HasPrefix(r.URL.Path, "/api")
}

// sendError is the single place where errors are turned into responses.
// Requests outside /api get the HTML error page.
func (h *Handler) sendError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := h.logError(r, err)
	if !isAPIRequest(r) && h.views != nil {
		h.renderError(w, r, appErr)
		return
	}
	h.writeError(w, err, appErr)
}

func (h *Handler) logError(r *http.Request, err error) *AppError {
	log := logger.FromRequest(r)
	appErr := classify(err)

	switch {
	case !appErr.Operational:
		log.Error().Err(err).Str("func", "*Handler.sendError").Bytes("stack", appErr.Stack).Msg("unexpected error")
	case appErr.StatusCode >= http.StatusInternalServerError:
		log.Err(err).Str("func", "*Handler.sendError").Int("status", appErr.StatusCode).Send()
	default:
		log.Debug().Err(err).Str("func", "*Handler.sendError").Int("status", appErr.StatusCode).Send()
	}
	return appErr
}

func (h *Handler) writeError(w http.ResponseWriter, err error, appErr *AppError) {
	if h.development {
		_, _ = utils.WriteJSON(w, models.DevErrorResponse{
			Status:  appErr.Status(),
			Error:   err.Error(),
			Message: appErr.Message,
			Stack:   string(appErr.Stack),
		}, appErr.StatusCode)
		return
	}

	if appErr.Operational {
		_, _ = utils.WriteJSON(w, models.ErrorResponse{
			Status:  appErr.Status(),
			Message: appErr.Message,
		}, appErr.StatusCode)
		return
	}

	_, _ = utils.WriteJSON(w, models.ErrorResponse{
		Status:  models.StatusError,
		Message: "Something went very wrong!",
	}, http.StatusInternalServerError)
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, appErr *AppError) {
	page := h.page(r, "Something went wrong!")
	page.Message = appErr.Message
	if !appErr.Operational && !h.development {
		page.Message = "Please try again later."
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(appErr.StatusCode)
	if err := h.views.Render(w, web.PageError, page); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.renderError").Msg("error page failed to render")
	}
}

// notFound answers every unmatched route, views included, with the JSON
// error object.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	err := NewAppError(http.StatusNotFound, fmt.Sprintf("Can't find %s on this server!", r.URL.Path))
	h.writeError(w, err, h.logError(r, err))
}

// methodNotAllowed answers a known path requested with an unsupported method
// exactly like an unknown path.
func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.notFound(w, r)
}
