// Package occupancy aggregates per-night guest demand against capacity.
package occupancy

import (
	"errors"
	"fmt"

	"github.com/stpnv0/HostelBooker/internal/calendar"
	"github.com/stpnv0/HostelBooker/internal/domain"
	"github.com/stpnv0/HostelBooker/internal/timeline"
)

// ErrBedPoolInconsistent means the per-night check passed but the free bed
// pool is smaller than the party. It indicates a bug, not a full house.
var ErrBedPoolInconsistent = errors.New("occupancy: free beds below party size after capacity check")

type Night struct {
	Day      calendar.Day `json:"day"`
	Demand   int          `json:"demand"`
	Capacity int          `json:"capacity"`
	Rate     float64      `json:"rate"`
}

func (n Night) Remaining() int {
	return n.Capacity - n.Demand
}

type Result struct {
	Available bool
	// CandidateBeds is the free bed pool in allocation order. Empty when
	// Available is false.
	CandidateBeds []string
	Nights        []Night
	TotalPrice    float64
	// BindingNight is the night with the least remaining capacity.
	BindingNight Night
}

// Request describes a stay to evaluate. ExcludeID removes a reservation's
// own demand, so a reservation does not block its own move.
type Request struct {
	CheckIn   calendar.Day
	CheckOut  calendar.Day
	PartySize int
	ExcludeID string
}

// Capacity is the override availability covering day, else the bed count.
// It never exceeds the beds that physically exist.
func Capacity(rt *domain.RoomType, day calendar.Day) int {
	beds := rt.BedCount()
	r, ok := timeline.ActiveRangeFor(rt.RatesAndAvailability, day)
	if !ok || r.CustomAvailability == nil {
		return beds
	}
	return min(*r.CustomAvailability, beds)
}

// Rate is the override rate covering day, else the base rate.
func Rate(rt *domain.RoomType, day calendar.Day) float64 {
	r, ok := timeline.ActiveRangeFor(rt.RatesAndAvailability, day)
	if !ok || r.CustomRate == nil {
		return rt.BaseRate
	}
	return *r.CustomRate
}

// Demand sums guests of active reservations present on the night of day.
func Demand(reservations []*domain.Reservation, day calendar.Day, excludeID string) int {
	total := 0
	for _, r := range reservations {
		if (excludeID != "" && r.ID == excludeID) || !r.Status.Active() {
			continue
		}
		if r.Occupies(day) {
			total += r.NumberOfGuests
		}
	}
	return total
}

// Evaluate decides whether the stay fits every night and, if it does,
// which beds are free for the whole stay.
func Evaluate(rt *domain.RoomType, reservations []*domain.Reservation, req Request) (Result, error) {
	relevant := intersecting(reservations, req)

	res := Result{Nights: make([]Night, 0, calendar.DaysBetween(req.CheckIn, req.CheckOut))}
	for d := range calendar.Nights(req.CheckIn, req.CheckOut) {
		n := Night{
			Day:      d,
			Demand:   Demand(relevant, d, ""),
			Capacity: Capacity(rt, d),
			Rate:     Rate(rt, d),
		}
		if len(res.Nights) == 0 || n.Remaining() < res.BindingNight.Remaining() {
			res.BindingNight = n
		}
		res.Nights = append(res.Nights, n)

		if n.Remaining()-req.PartySize < 0 {
			return Result{Available: false, Nights: res.Nights, BindingNight: res.BindingNight}, nil
		}
		res.TotalPrice += n.Rate * float64(req.PartySize)
	}

	occupied := make(map[string]struct{})
	for _, r := range relevant {
		for _, bed := range r.ActiveBeds() {
			occupied[bed] = struct{}{}
		}
	}
	for _, bed := range rt.Beds() {
		if _, taken := occupied[bed]; !taken {
			res.CandidateBeds = append(res.CandidateBeds, bed)
		}
	}

	if len(res.CandidateBeds) < req.PartySize {
		return Result{}, fmt.Errorf("%w: room type %s, %s..%s, party %d, free beds %d",
			ErrBedPoolInconsistent, rt.ID, req.CheckIn, req.CheckOut, req.PartySize, len(res.CandidateBeds))
	}

	res.Available = true
	return res, nil
}

// MinimumAvailability is the largest demand on any day of [start, end], the
// lowest custom availability that still covers booked guests.
func MinimumAvailability(reservations []*domain.Reservation, start, end calendar.Day) int {
	peak := 0
	for d := range calendar.Inclusive(start, end) {
		peak = max(peak, Demand(reservations, d, ""))
	}
	return peak
}

func intersecting(reservations []*domain.Reservation, req Request) []*domain.Reservation {
	out := make([]*domain.Reservation, 0, len(reservations))
	for _, r := range reservations {
		if (req.ExcludeID != "" && r.ID == req.ExcludeID) || !r.Status.Active() {
			continue
		}
		if r.Intersects(req.CheckIn, req.CheckOut) {
			out = append(out, r)
		}
	}
	return out
}
