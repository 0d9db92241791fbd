package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/stpnv0/HostelBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const roomTypeColumns = `id, property_id, description, kind, max_occupancy, inventory, base_rate, currency,
       products, rates_and_availability, version, created_at, updated_at`

type RoomTypeRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRoomTypeRepo(db *dbpg.DB) *RoomTypeRepository {
	return &RoomTypeRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *RoomTypeRepository) Create(ctx context.Context, rt *domain.RoomType) error {
	products, err := json.Marshal(rt.Products)
	if err != nil {
		return fmt.Errorf("marshal products: %w", err)
	}
	ranges, err := marshalRanges(rt.RatesAndAvailability)
	if err != nil {
		return err
	}

	query := `INSERT INTO room_types (id, property_id, description, kind, max_occupancy, inventory, base_rate,
                                      currency, products, rates_and_availability, version, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err = r.db.ExecWithRetry(
		ctx, r.strategy, query,
		rt.ID, rt.PropertyID, rt.Description, rt.Kind, rt.MaxOccupancy, rt.Inventory, rt.BaseRate,
		rt.Currency, string(products), ranges, rt.Version, rt.CreatedAt, rt.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert room type: %w", err)
	}

	return nil
}

func (r *RoomTypeRepository) GetByID(ctx context.Context, id string) (*domain.RoomType, error) {
	query := `SELECT ` + roomTypeColumns + `
			  FROM room_types
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get room type: %w", err)
	}

	rt, err := scanRoomType(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoomTypeNotFound
		}
		return nil, err
	}

	return rt, nil
}

func (r *RoomTypeRepository) ListByProperty(ctx context.Context, propertyID string) ([]*domain.RoomType, error) {
	query := `SELECT ` + roomTypeColumns + `
			  FROM room_types
			  WHERE property_id = $1
			  ORDER BY created_at, id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, propertyID)
	if err != nil {
		return nil, fmt.Errorf("list room types: %w", err)
	}
	defer rows.Close()

	var res []*domain.RoomType
	for rows.Next() {
		rt, err := scanRoomType(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, rt)
	}

	return res, rows.Err()
}

// UpdateTimeline is a compare-and-swap on version.
func (r *RoomTypeRepository) UpdateTimeline(
	ctx context.Context,
	id string,
	expectedVersion int64,
	ranges []domain.AvailabilityRange,
) error {
	payload, err := marshalRanges(ranges)
	if err != nil {
		return err
	}

	query := `UPDATE room_types
			  SET rates_and_availability = $3, version = version + 1, updated_at = now()
			  WHERE id = $1 AND version = $2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, expectedVersion, payload)
	if err != nil {
		return fmt.Errorf("update timeline: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("timeline rows affected: %w", err)
	}
	if n > 0 {
		return nil
	}

	// either the room type is gone or someone else bumped the version
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT version FROM room_types WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("get room type version: %w", err)
	}
	var current int64
	if err = row.Scan(&current); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrRoomTypeNotFound
		}
		return fmt.Errorf("scan room type version: %w", err)
	}

	return fmt.Errorf("%w: room type %s at version %d, expected %d",
		domain.ErrVersionConflict, id, current, expectedVersion)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRoomType(s scanner) (*domain.RoomType, error) {
	var (
		rt       domain.RoomType
		products []byte
		ranges   []byte
	)
	err := s.Scan(
		&rt.ID, &rt.PropertyID, &rt.Description, &rt.Kind, &rt.MaxOccupancy, &rt.Inventory, &rt.BaseRate,
		&rt.Currency, &products, &ranges, &rt.Version, &rt.CreatedAt, &rt.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan room type: %w", err)
	}

	if err = json.Unmarshal(products, &rt.Products); err != nil {
		return nil, fmt.Errorf("decode products of room type %s: %w", rt.ID, err)
	}
	if len(ranges) > 0 {
		if err = json.Unmarshal(ranges, &rt.RatesAndAvailability); err != nil {
			return nil, fmt.Errorf("decode timeline of room type %s: %w", rt.ID, err)
		}
	}

	return &rt, nil
}

// marshalRanges returns text, lib/pq would send []byte as bytea.
func marshalRanges(ranges []domain.AvailabilityRange) (string, error) {
	if ranges == nil {
		ranges = []domain.AvailabilityRange{}
	}
	b, err := json.Marshal(ranges)
	if err != nil {
		return "", fmt.Errorf("marshal timeline: %w", err)
	}
	return string(b), nil
}
