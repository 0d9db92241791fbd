package ports

import (
	"context"

	"github.com/stpnv0/HostelBooker/internal/domain"
)

type RoomTypeRepo interface {
	Create(ctx context.Context, rt *domain.RoomType) error
	GetByID(ctx context.Context, id string) (*domain.RoomType, error)
	ListByProperty(ctx context.Context, propertyID string) ([]*domain.RoomType, error)
	// UpdateTimeline replaces the override ranges only while the stored version
	// still equals expectedVersion, otherwise it returns domain.ErrVersionConflict.
	UpdateTimeline(ctx context.Context, id string, expectedVersion int64, ranges []domain.AvailabilityRange) error
}
