package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/stpnv0/HostelBooker/internal/domain"
	"github.com/stpnv0/HostelBooker/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
)

type OnboardingRepository struct {
	db *dbpg.DB
}

func NewOnboardingRepo(db *dbpg.DB) *OnboardingRepository {
	return &OnboardingRepository{db: db}
}

func (r *OnboardingRepository) WithinTx(ctx context.Context, fn func(tx ports.OnboardingTx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = fn(&onboardingTx{tx: tx}); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

type onboardingTx struct {
	tx *sql.Tx
}

func (t *onboardingTx) InsertUser(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (id, email, name, password_hash, created_at)
			  VALUES ($1, $2, $3, $4, $5)`
	_, err := t.tx.ExecContext(ctx, query, u.ID, u.Email, u.Name, u.PasswordHash, u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (t *onboardingTx) InsertProperty(ctx context.Context, p *domain.Property) error {
	query := `INSERT INTO properties (id, name, created_by, telegram_chat_id, created_at)
			  VALUES ($1, $2, $3, $4, $5)`
	_, err := t.tx.ExecContext(ctx, query, p.ID, p.Name, p.CreatedBy, p.TelegramChatID, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert property: %w", err)
	}
	return nil
}

func (t *onboardingTx) InsertAccessControl(ctx context.Context, ac *domain.AccessControl) error {
	grants, err := json.Marshal(ac.Grants)
	if err != nil {
		return fmt.Errorf("marshal grants: %w", err)
	}

	query := `INSERT INTO access_control (id, property_id, grants, created_at)
			  VALUES ($1, $2, $3, $4)`
	if _, err = t.tx.ExecContext(ctx, query, ac.ID, ac.PropertyID, string(grants), ac.CreatedAt); err != nil {
		return fmt.Errorf("insert access control: %w", err)
	}
	return nil
}
