// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the message strings the terminal client shows in its
// alert banner. Server-supplied messages are shown verbatim; these cover the
// outcomes the client reports on its own.
package app

const (
	// MsgLoggedIn is shown after the server accepted the credentials.
	MsgLoggedIn = "Logged in successfully!"

	// MsgLoggedOut is shown after the session cookie was cleared.
	MsgLoggedOut = "Logged out successfully!"

	// MsgLogoutFailed is shown when the logout request did not succeed.
	MsgLogoutFailed = "Error logging out! Try again."

	// MsgMissingCredentials is shown when the login form is submitted with
	// an empty field.
	MsgMissingCredentials = "Please provide email and password!"

	// MsgServerUnavailable replaces low-level transport errors.
	MsgServerUnavailable = "No network connection or the server is unavailable."

	// MsgBookingCancelled is shown when a checkout was interrupted before
	// the redirect.
	MsgBookingCancelled = "Booking was cancelled."
)
