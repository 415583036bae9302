package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)

// Authentication errors.
var (
	ErrMissingCredentials      = errors.New("please provide email and password")
	ErrIncorrectCredentials    = errors.New("incorrect email or password")
	ErrWrongCurrentPassword    = errors.New("your current password is wrong")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrUserNoLongerExists      = errors.New("the user belonging to this token does no longer exist")
	ErrPasswordChanged         = errors.New("user recently changed password")
)

// Tour errors.
var (
	ErrInvalidLocation = errors.New("please provide latitude and longitude in the format lat,lng")
	ErrInvalidUnit     = errors.New("unit must be mi or km")
	ErrInvalidDistance = errors.New("distance must be a positive number")
	ErrInvalidYear     = errors.New("invalid year")
)

// Booking errors.
var (
	ErrInvalidWebhookEvent = errors.New("webhook event does not describe a booking")
)
