// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, HTTP response
// writing, HTTP client initialization, JWT token generation and validation.
package utils

import (
	"context"
	"time"

	"github.com/MKhiriev/go-natours/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

var (
	// UserCtxKey stores the authenticated [models.User].
	UserCtxKey = contextKey("user")

	// RequestTimeCtxKey stores the moment the request entered the
	// request-time stage of the pipeline.
	RequestTimeCtxKey = contextKey("requestTime")
)

// WithUser returns a copy of ctx carrying the authenticated user.
func WithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, UserCtxKey, user)
}

// UserFromContext retrieves the authenticated user.
//
// ok is false when the request is anonymous.
func UserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(models.User)
	return user, ok
}

// GetUserIDFromContext retrieves the identifier of the authenticated user.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	user, ok := UserFromContext(ctx)
	if !ok {
		return 0, false
	}
	return user.ID, true
}

// WithRequestTime returns a copy of ctx carrying the request timestamp.
func WithRequestTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, RequestTimeCtxKey, t)
}

// RequestTimeFromContext retrieves the request timestamp.
func RequestTimeFromContext(ctx context.Context) (time.Time, bool) {
	t, ok := ctx.Value(RequestTimeCtxKey).(time.Time)
	return t, ok
}
