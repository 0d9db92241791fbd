// Package allocation binds concrete beds to a reservation's guests.
package allocation

import (
	"fmt"
	"slices"

	"github.com/stpnv0/HostelBooker/internal/domain"
)

// Assign takes the first guests beds from candidates. Candidates must already
// be in allocation order (room order, then bed order). The previous
// assignment of the reservation is discarded, never merged.
func Assign(r *domain.Reservation, candidates []string) ([]string, error) {
	if len(candidates) < r.NumberOfGuests {
		return nil, fmt.Errorf("%w: reservation %s needs %d, %d free",
			domain.ErrInsufficientBeds, r.ID, r.NumberOfGuests, len(candidates))
	}
	return slices.Clone(candidates[:r.NumberOfGuests]), nil
}

// Candidates returns the beds of rt not held by any other active reservation
// overlapping r's stay, in allocation order.
func Candidates(rt *domain.RoomType, r *domain.Reservation, others []*domain.Reservation) []string {
	occupied := make(map[string]struct{})
	for _, o := range others {
		if o.ID == r.ID || !o.Intersects(r.CheckIn, r.CheckOut) {
			continue
		}
		for _, bed := range o.ActiveBeds() {
			occupied[bed] = struct{}{}
		}
	}

	free := make([]string, 0, rt.BedCount())
	for _, bed := range rt.Beds() {
		if _, taken := occupied[bed]; !taken {
			free = append(free, bed)
		}
	}
	return free
}
