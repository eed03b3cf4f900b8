package models

import "errors"

// Common errors used throughout the application
var (
	ErrEventNotFound        = errors.New("event not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrEventNotAvailable    = errors.New("event is not available for registration")
	ErrRegistrationClosed   = errors.New("registration deadline has passed")
	ErrAlreadyRegistered    = errors.New("user is already registered for this event")
	ErrEventFull            = errors.New("event has no available spots")
	ErrForbidden            = errors.New("insufficient permissions")
	ErrUnauthorized         = errors.New("authentication required")
	ErrInvalidInput         = errors.New("invalid input")
	ErrDuplicateEntry       = errors.New("duplicate entry")
)
