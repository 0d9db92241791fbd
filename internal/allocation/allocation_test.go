package allocation

import (
	"testing"
	"time"

	"github.com/stpnv0/HostelBooker/internal/calendar"
	"github.com/stpnv0/HostelBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var d0 = calendar.New(2024, time.October, 1)

func roomType() *domain.RoomType {
	return &domain.RoomType{
		ID: "rt1",
		Products: []domain.Product{
			{ID: "room-1", Beds: []string{"r1b1", "r1b2"}},
			{ID: "room-2", Beds: []string{"r2b1", "r2b2"}},
		},
	}
}

func reservation(id string, from, nights, guests int, beds ...string) *domain.Reservation {
	return &domain.Reservation{
		ID:             id,
		CheckIn:        d0.AddDays(from),
		CheckOut:       d0.AddDays(from + nights),
		NumberOfGuests: guests,
		Status:         domain.ReservationStatusConfirm,
		AssignedBeds:   beds,
	}
}

func TestAssign_TakesFirstBeds(t *testing.T) {
	r := reservation("r", 0, 2, 3)

	beds, err := Assign(r, []string{"a", "b", "c", "d"})

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, beds)
}

func TestAssign_DoesNotAliasCandidates(t *testing.T) {
	candidates := []string{"a", "b"}
	beds, err := Assign(reservation("r", 0, 1, 1), candidates)
	require.NoError(t, err)

	beds[0] = "z"

	assert.Equal(t, "a", candidates[0])
}

func TestAssign_InsufficientBeds(t *testing.T) {
	_, err := Assign(reservation("r", 0, 1, 3), []string{"a", "b"})

	assert.ErrorIs(t, err, domain.ErrInsufficientBeds)
}

func TestCandidates_ExcludesOverlappingActiveBeds(t *testing.T) {
	rt := roomType()
	target := reservation("me", 2, 3, 1, "r2b2")
	others := []*domain.Reservation{
		target,
		reservation("overlap", 1, 2, 1, "r1b1"),
		reservation("adjacent", 5, 2, 1, "r1b2"),
	}
	cancelled := reservation("cancelled", 2, 3, 1, "r2b1")
	cancelled.Status = domain.ReservationStatusCancelled
	others = append(others, cancelled)

	got := Candidates(rt, target, others)

	assert.Equal(t, []string{"r1b2", "r2b1", "r2b2"}, got)
}
