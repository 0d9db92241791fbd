package ports

import (
	"context"

	"github.com/stpnv0/HostelBooker/internal/calendar"
	"github.com/stpnv0/HostelBooker/internal/domain"
)

type ReservationRepo interface {
	Create(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	// ListActiveOverlapping returns confirm/provisional reservations of the
	// room type whose stay shares a night with [from, to).
	ListActiveOverlapping(ctx context.Context, roomTypeID string, from, to calendar.Day) ([]*domain.Reservation, error)
	// ListNeedingBeds returns active reservations present on the night of day
	// that hold fewer beds than guests.
	ListNeedingBeds(ctx context.Context, roomTypeID string, day calendar.Day) ([]*domain.Reservation, error)
	UpdateStay(ctx context.Context, id string, in domain.UpdateStayInput, totalPrice float64) error
	// UpdateStatus applies the transition only if the stored status is still from.
	UpdateStatus(ctx context.Context, id string, from, to domain.ReservationStatus) error
	UpdatePaymentStatus(ctx context.Context, id string, status domain.PaymentStatus) error
	SetAssignedBeds(ctx context.Context, id string, beds []string) error
}
