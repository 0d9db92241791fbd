package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/stpnv0/HostelBooker/internal/calendar"
	"github.com/stpnv0/HostelBooker/internal/domain"
)

const (
	defaultMaxSpanDays        = 3 * 366
	defaultTimelineMaxRetries = 5
)

// Limits bound calendar walks and optimistic retries.
type Limits struct {
	MaxSpanDays        int
	TimelineMaxRetries int
}

func (l Limits) withDefaults() Limits {
	if l.MaxSpanDays <= 0 {
		l.MaxSpanDays = defaultMaxSpanDays
	}
	if l.TimelineMaxRetries <= 0 {
		l.TimelineMaxRetries = defaultTimelineMaxRetries
	}
	return l
}

// validateStay checks a half-open stay [checkIn, checkOut).
func validateStay(checkIn, checkOut calendar.Day, partySize, maxSpan int) error {
	if checkIn.IsZero() || checkOut.IsZero() {
		return fmt.Errorf("%w: check_in and check_out are required", domain.ErrInvalidRange)
	}
	if !checkOut.After(checkIn) {
		return fmt.Errorf("%w: check_out %s must be after check_in %s", domain.ErrInvalidRange, checkOut, checkIn)
	}
	if calendar.DaysBetween(checkIn, checkOut) > maxSpan {
		return fmt.Errorf("%w: stay longer than %d days", domain.ErrInvalidRange, maxSpan)
	}
	if partySize <= 0 {
		return fmt.Errorf("%w: number of guests must be positive", domain.ErrValidation)
	}
	return nil
}

// validateOverrideSpan checks an inclusive range [start, end].
func validateOverrideSpan(start, end calendar.Day, maxSpan int) error {
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("%w: start_date and end_date are required", domain.ErrInvalidRange)
	}
	if end.Before(start) {
		return fmt.Errorf("%w: end_date %s is before start_date %s", domain.ErrInvalidRange, end, start)
	}
	if calendar.DaysBetween(start, end) >= maxSpan {
		return fmt.Errorf("%w: range longer than %d days", domain.ErrInvalidRange, maxSpan)
	}
	return nil
}

// validateStruct runs the validator and folds its errors into ErrValidation.
func validateStruct(v *validator.Validate, s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(fields, "; "))
}
