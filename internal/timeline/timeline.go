// Package timeline keeps a room type's override ranges pairwise non-overlapping.
package timeline

import (
	"fmt"
	"slices"

	"github.com/stpnv0/HostelBooker/internal/calendar"
	"github.com/stpnv0/HostelBooker/internal/domain"
)

// Result of inserting an override.
type Result struct {
	// Timeline is the full set of ranges after insertion, ordered by start date.
	Timeline []domain.AvailabilityRange
	// Persisted holds the truncated originals and the override itself.
	Persisted []domain.AvailabilityRange
	// Removed holds every original range the override intersected.
	Removed []domain.AvailabilityRange
}

// Insert splits the ranges intersecting override at its boundaries, drops the
// parts it covers and adds override. Truncated copies keep the original rate
// and availability and receive fresh ids from newID.
func Insert(ranges []domain.AvailabilityRange, override domain.AvailabilityRange, newID func() string) (Result, error) {
	if override.EndDate.Before(override.StartDate) {
		return Result{}, fmt.Errorf("%w: start %s is after end %s",
			domain.ErrInvalidRange, override.StartDate, override.EndDate)
	}

	res := Result{Timeline: make([]domain.AvailabilityRange, 0, len(ranges)+2)}

	for _, r := range ranges {
		if !r.Overlaps(override) {
			res.Timeline = append(res.Timeline, r)
			continue
		}
		res.Removed = append(res.Removed, r)

		if r.StartDate.Before(override.StartDate) {
			left := r
			left.ID = newID()
			left.EndDate = override.StartDate.AddDays(-1)
			res.Timeline = append(res.Timeline, left)
			res.Persisted = append(res.Persisted, left)
		}
		if r.EndDate.After(override.EndDate) {
			right := r
			right.ID = newID()
			right.StartDate = override.EndDate.AddDays(1)
			res.Timeline = append(res.Timeline, right)
			res.Persisted = append(res.Persisted, right)
		}
	}

	res.Timeline = append(res.Timeline, override)
	res.Persisted = append(res.Persisted, override)
	sortByStart(res.Timeline)
	sortByStart(res.Persisted)

	return res, nil
}

// ActiveRangeFor returns the range covering day. Callers fall back to the room
// type defaults when ok is false.
func ActiveRangeFor(ranges []domain.AvailabilityRange, day calendar.Day) (domain.AvailabilityRange, bool) {
	for _, r := range ranges {
		if r.Covers(day) {
			return r, true
		}
	}
	return domain.AvailabilityRange{}, false
}

// Validate checks each range is well formed and no two ranges share a day.
func Validate(ranges []domain.AvailabilityRange) error {
	sorted := slices.Clone(ranges)
	sortByStart(sorted)

	for i, r := range sorted {
		if r.StartDate.IsZero() || r.EndDate.IsZero() || r.EndDate.Before(r.StartDate) {
			return fmt.Errorf("%w: range %s..%s", domain.ErrInvalidRange, r.StartDate, r.EndDate)
		}
		if i > 0 && sorted[i-1].Overlaps(r) {
			return fmt.Errorf("%w: ranges %s..%s and %s..%s overlap", domain.ErrInvalidRange,
				sorted[i-1].StartDate, sorted[i-1].EndDate, r.StartDate, r.EndDate)
		}
	}
	return nil
}

func sortByStart(ranges []domain.AvailabilityRange) {
	slices.SortFunc(ranges, func(a, b domain.AvailabilityRange) int {
		return a.StartDate.Compare(b.StartDate)
	})
}
