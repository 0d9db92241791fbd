package domain

import (
	"time"

	"github.com/stpnv0/HostelBooker/internal/calendar"
)

type ReservationStatus string

const (
	ReservationStatusConfirm     ReservationStatus = "confirm"
	ReservationStatusProvisional ReservationStatus = "provisional"
	ReservationStatusCancelled   ReservationStatus = "cancelled"
	ReservationStatusNoShow      ReservationStatus = "no_show"
)

// ActiveStatuses count toward occupancy.
var ActiveStatuses = []ReservationStatus{ReservationStatusConfirm, ReservationStatusProvisional}

func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationStatusConfirm, ReservationStatusProvisional,
		ReservationStatusCancelled, ReservationStatusNoShow:
		return true
	}
	return false
}

func (s ReservationStatus) Active() bool {
	return s == ReservationStatusConfirm || s == ReservationStatusProvisional
}

// CanTransitionTo encodes the reservation state machine:
// provisional -> confirm, provisional|confirm -> cancelled|no_show.
// cancelled and no_show are terminal.
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	switch s {
	case ReservationStatusProvisional:
		return next == ReservationStatusConfirm ||
			next == ReservationStatusCancelled ||
			next == ReservationStatusNoShow
	case ReservationStatusConfirm:
		return next == ReservationStatusCancelled || next == ReservationStatusNoShow
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPartial  PaymentStatus = "partial"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
	PaymentStatusCanceled PaymentStatus = "canceled"
)

func (p PaymentStatus) Valid() bool {
	switch p {
	case PaymentStatusPending, PaymentStatusPartial, PaymentStatusPaid,
		PaymentStatusRefunded, PaymentStatusCanceled:
		return true
	}
	return false
}

type Reservation struct {
	ID             string            `json:"id"`
	GuestID        string            `json:"guest_id"`
	PropertyID     string            `json:"property_id"`
	RoomTypeID     string            `json:"room_type_id"`
	Source         string            `json:"source"`
	CheckIn        calendar.Day      `json:"check_in"`
	CheckOut       calendar.Day      `json:"check_out"`
	NumberOfGuests int               `json:"number_of_guest"`
	TotalPrice     float64           `json:"total_price"`
	Currency       string            `json:"currency"`
	Status         ReservationStatus `json:"reservation_status"`
	PaymentStatus  PaymentStatus     `json:"payment_status"`
	SpecialRequest string            `json:"special_request"`
	AssignedBeds   []string          `json:"assigned_beds"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// Occupies reports whether the guest is present on the night of day.
// Check-out day itself is not occupied.
func (r *Reservation) Occupies(day calendar.Day) bool {
	return !day.Before(r.CheckIn) && day.Before(r.CheckOut)
}

// Intersects reports whether the stay shares a night with [from, to).
func (r *Reservation) Intersects(from, to calendar.Day) bool {
	return r.CheckIn.Before(to) && from.Before(r.CheckOut)
}

// ActiveBeds returns the beds the reservation holds. A cancelled or no-show
// reservation holds none, whatever AssignedBeds still says.
func (r *Reservation) ActiveBeds() []string {
	if !r.Status.Active() {
		return nil
	}
	return r.AssignedBeds
}

func (r *Reservation) FullyAssigned() bool {
	return len(r.AssignedBeds) >= r.NumberOfGuests
}

func (r *Reservation) Nights() int {
	return calendar.DaysBetween(r.CheckIn, r.CheckOut)
}

type CreateReservationInput struct {
	GuestID        string `validate:"required"`
	PropertyID     string `validate:"required"`
	RoomTypeID     string `validate:"required"`
	Source         string
	CheckIn        calendar.Day
	CheckOut       calendar.Day
	NumberOfGuests int `validate:"gt=0"`
	// TotalPrice is computed from the nightly rates when nil.
	TotalPrice     *float64          `validate:"omitempty,gte=0"`
	Status         ReservationStatus `validate:"omitempty,oneof=confirm provisional"`
	PaymentStatus  PaymentStatus     `validate:"omitempty,oneof=pending partial paid refunded canceled"`
	SpecialRequest string
}

type UpdateStayInput struct {
	CheckIn        calendar.Day
	CheckOut       calendar.Day
	NumberOfGuests int `validate:"gt=0"`
}

// BedAssignmentReport is the outcome of a batch sweep. Failed is keyed by
// reservation id, FailedRoomTypes by room type id.
type BedAssignmentReport struct {
	PropertyID      string
	Day             calendar.Day
	Assigned        []string
	Failed          map[string]error
	FailedRoomTypes map[string]error
}
