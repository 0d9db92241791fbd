package ports

import (
	"context"

	"github.com/stpnv0/HostelBooker/internal/domain"
)

type PropertyRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Property, error)
	ListIDs(ctx context.Context) ([]string, error)
}
