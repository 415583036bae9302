// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the transport layer itself. The messages shown
// to clients live in errorResponses.
var (
	ErrNotLoggedIn     = errors.New("not logged in")
	ErrForbidden       = errors.New("role is not allowed")
	ErrTooManyRequests = errors.New("rate limit exceeded")

	// ErrInvalidJSON is returned when a JSON request body is malformed.
	ErrInvalidJSON     = errors.New("invalid JSON in request body")
	ErrBodyTooLarge    = errors.New("request body is too large")
	ErrInvalidGzipBody = errors.New("invalid gzip data")

	ErrInvalidID         = errors.New("invalid id")
	ErrInvalidQueryParam = errors.New("invalid query parameter")

	// ErrPasswordUpdateNotAllowed is returned when /updateMe receives
	// password fields.
	ErrPasswordUpdateNotAllowed = errors.New("password fields sent to updateMe")
	ErrUseSignup                = errors.New("users are created through signup")

	ErrTourNotFound = errors.New("no tour with that slug")
)
