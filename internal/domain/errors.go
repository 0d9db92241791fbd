package domain

import (
	"errors"
	"fmt"

	"github.com/stpnv0/HostelBooker/internal/calendar"
)

var (
	ErrRoomTypeNotFound    = errors.New("room type not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrPropertyNotFound    = errors.New("property not found")
)

var (
	ErrMalformedDate           = calendar.ErrMalformedDate
	ErrInvalidRange            = errors.New("invalid date range")
	ErrAvailabilityBelowDemand = errors.New("availability below booked demand")
	ErrNoAvailability          = errors.New("no availability for requested stay")
	ErrInsufficientBeds        = errors.New("insufficient free beds")
	ErrIllegalTransition       = errors.New("illegal status transition")
	ErrConcurrentModification  = errors.New("concurrent modification")
	ErrVersionConflict         = errors.New("version conflict")
)

var (
	ErrRegistrationFailed = errors.New("registration failed")
	ErrEmailTaken         = errors.New("email is already taken")
)

var (
	ErrValidation = errors.New("validation error")
)

// AvailabilityBelowDemandError reports the smallest availability that still
// covers the guests already booked in the range.
type AvailabilityBelowDemandError struct {
	Requested int
	Minimum   int
}

func (e *AvailabilityBelowDemandError) Error() string {
	return fmt.Sprintf("%s: requested %d, minimum %d", ErrAvailabilityBelowDemand, e.Requested, e.Minimum)
}

func (e *AvailabilityBelowDemandError) Unwrap() error {
	return ErrAvailabilityBelowDemand
}
