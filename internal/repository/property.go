package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/stpnv0/HostelBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type PropertyRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPropertyRepo(db *dbpg.DB) *PropertyRepository {
	return &PropertyRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *PropertyRepository) GetByID(ctx context.Context, id string) (*domain.Property, error) {
	query := `SELECT id, name, created_by, telegram_chat_id, created_at
			  FROM properties
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get property: %w", err)
	}

	var p domain.Property
	if err = row.Scan(&p.ID, &p.Name, &p.CreatedBy, &p.TelegramChatID, &p.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("scan property: %w", err)
	}

	return &p, nil
}

func (r *PropertyRepository) ListIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, `SELECT id FROM properties ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan property id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
