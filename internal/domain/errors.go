package domain

import "errors"

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrOccurrenceNotFound = errors.New("occurrence not found")
	ErrHoldNotFound       = errors.New("hold not found")
	ErrClosureNotFound    = errors.New("closure not found")
)

var (
	ErrInsufficientCapacity = errors.New("insufficient capacity")
	ErrOccurrenceClosed     = errors.New("occurrence is not bookable")
	ErrHoldNotActive        = errors.New("hold is not active")
	ErrHoldExpired          = errors.New("hold has expired")
)

var (
	ErrBusy                     = errors.New("occurrence is busy, try again")
	ErrBookingPersistenceFailed = errors.New("booking persistence failed, seats released")
)

var (
	ErrValidation = errors.New("validation error")
)
