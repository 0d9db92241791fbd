package ports

import (
	"context"

	"github.com/stpnv0/HostelBooker/internal/domain"
)

// OnboardingTx is the set of writes allowed inside one onboarding transaction.
type OnboardingTx interface {
	InsertUser(ctx context.Context, u *domain.User) error
	InsertProperty(ctx context.Context, p *domain.Property) error
	InsertAccessControl(ctx context.Context, ac *domain.AccessControl) error
}

type OnboardingRepo interface {
	// WithinTx commits when fn returns nil and rolls back otherwise.
	WithinTx(ctx context.Context, fn func(tx OnboardingTx) error) error
}
