package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stpnv0/HostelBooker/internal/domain"
	"github.com/stpnv0/HostelBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/crypto/bcrypt"
)

type OnboardingService struct {
	repo     ports.OnboardingRepo
	validate *validator.Validate
	logger   logger.Logger
}

func NewOnboardingService(repo ports.OnboardingRepo, logger logger.Logger) *OnboardingService {
	return &OnboardingService{
		repo:     repo,
		validate: validator.New(),
		logger:   logger,
	}
}

// Register creates the owner account, their first property and its access
// control record in one transaction. Nothing is persisted if any step fails.
func (s *OnboardingService) Register(ctx context.Context, input domain.RegisterInput) (*domain.Registration, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if err := validateStruct(s.validate, input); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("%w: hash password: %w", domain.ErrRegistrationFailed, err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.New().String(),
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: string(hash),
		CreatedAt:    now,
	}
	property := &domain.Property{
		ID:             uuid.New().String(),
		Name:           input.PropertyName,
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      now,
	}
	access := &domain.AccessControl{
		ID:         uuid.New().String(),
		PropertyID: property.ID,
		CreatedAt:  now,
	}

	err = s.repo.WithinTx(ctx, func(tx ports.OnboardingTx) error {
		if err := tx.InsertUser(ctx, user); err != nil {
			return fmt.Errorf("insert user: %w", err)
		}

		property.CreatedBy = user.ID
		if err := tx.InsertProperty(ctx, property); err != nil {
			return fmt.Errorf("insert property: %w", err)
		}

		access.Grants = []domain.Grant{{UserID: user.ID, Role: domain.RoleOwner}}
		if err := tx.InsertAccessControl(ctx, access); err != nil {
			return fmt.Errorf("insert access control: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("registration rolled back",
			logger.String("email", input.Email),
			logger.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%w: %w", domain.ErrRegistrationFailed, err)
	}

	s.logger.Info("owner registered",
		logger.String("user_id", user.ID),
		logger.String("property_id", property.ID),
	)

	return &domain.Registration{User: user, Property: property, AccessControl: access}, nil
}
