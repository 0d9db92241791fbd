package ports

import (
	"context"

	"github.com/stpnv0/HostelBooker/internal/domain"
)

type ReservationNotifier interface {
	NotifyReservationCreated(ctx context.Context, property *domain.Property, r *domain.Reservation)
	NotifyReservationCancelled(ctx context.Context, property *domain.Property, r *domain.Reservation)
}
