package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/HostelBooker/internal/calendar"
	"github.com/stretchr/testify/assert"
)

func TestReservationStatus_CanTransitionTo(t *testing.T) {
	all := []ReservationStatus{
		ReservationStatusProvisional,
		ReservationStatusConfirm,
		ReservationStatusCancelled,
		ReservationStatusNoShow,
	}
	allowed := map[ReservationStatus][]ReservationStatus{
		ReservationStatusProvisional: {ReservationStatusConfirm, ReservationStatusCancelled, ReservationStatusNoShow},
		ReservationStatusConfirm:     {ReservationStatusCancelled, ReservationStatusNoShow},
	}

	for _, from := range all {
		for _, to := range all {
			want := false
			for _, a := range allowed[from] {
				if a == to {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestReservationStatus_Valid(t *testing.T) {
	assert.True(t, ReservationStatusNoShow.Valid())
	assert.False(t, ReservationStatus("confirmed").Valid())
	assert.True(t, PaymentStatusRefunded.Valid())
	assert.False(t, PaymentStatus("cancelled").Valid())
}

func TestReservation_Occupies_CheckOutExclusive(t *testing.T) {
	in := calendar.New(2024, time.May, 10)
	r := &Reservation{CheckIn: in, CheckOut: in.AddDays(2)}

	assert.False(t, r.Occupies(in.AddDays(-1)))
	assert.True(t, r.Occupies(in))
	assert.True(t, r.Occupies(in.AddDays(1)))
	assert.False(t, r.Occupies(in.AddDays(2)))
	assert.Equal(t, 2, r.Nights())
}

func TestReservation_Intersects(t *testing.T) {
	in := calendar.New(2024, time.May, 10)
	r := &Reservation{CheckIn: in, CheckOut: in.AddDays(3)}

	assert.True(t, r.Intersects(in.AddDays(2), in.AddDays(5)))
	assert.False(t, r.Intersects(in.AddDays(3), in.AddDays(5)), "adjacent stays do not intersect")
	assert.False(t, r.Intersects(in.AddDays(-2), in))
	assert.True(t, r.Intersects(in.AddDays(-2), in.AddDays(1)))
}

func TestReservation_ActiveBeds(t *testing.T) {
	r := &Reservation{Status: ReservationStatusConfirm, AssignedBeds: []string{"b1", "b2"}}
	assert.Equal(t, []string{"b1", "b2"}, r.ActiveBeds())

	r.Status = ReservationStatusCancelled
	assert.Nil(t, r.ActiveBeds())

	r.Status = ReservationStatusNoShow
	assert.Nil(t, r.ActiveBeds())
}

func TestAvailabilityRange_Overlaps(t *testing.T) {
	d := calendar.New(2024, time.January, 1)
	a := AvailabilityRange{StartDate: d, EndDate: d.AddDays(4)}

	assert.True(t, a.Overlaps(AvailabilityRange{StartDate: d.AddDays(4), EndDate: d.AddDays(9)}))
	assert.False(t, a.Overlaps(AvailabilityRange{StartDate: d.AddDays(5), EndDate: d.AddDays(9)}))
	assert.True(t, a.Covers(d.AddDays(4)))
	assert.False(t, a.Covers(d.AddDays(5)))
}

func TestRoomType_Beds(t *testing.T) {
	rt := &RoomType{Products: []Product{
		{ID: "p1", Beds: []string{"a", "b"}},
		{ID: "p2", Beds: []string{"c"}},
	}}

	assert.Equal(t, []string{"a", "b", "c"}, rt.Beds())
	assert.Equal(t, 3, rt.BedCount())
}

func TestAvailabilityBelowDemandError(t *testing.T) {
	var err error = &AvailabilityBelowDemandError{Requested: 1, Minimum: 3}

	assert.ErrorIs(t, err, ErrAvailabilityBelowDemand)
	var target *AvailabilityBelowDemandError
	assert.True(t, errors.As(err, &target))
	assert.Equal(t, 3, target.Minimum)
	assert.Contains(t, err.Error(), "minimum 3")
}
