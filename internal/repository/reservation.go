package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/stpnv0/HostelBooker/internal/calendar"
	"github.com/stpnv0/HostelBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const reservationColumns = `id, guest_id, property_id, room_type_id, source, check_in, check_out, number_of_guests,
       total_price, currency, status, payment_status, special_request, assigned_beds, created_at, updated_at`

type ReservationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReservationRepo(db *dbpg.DB) *ReservationRepository {
	return &ReservationRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	query := `INSERT INTO reservations (id, guest_id, property_id, room_type_id, source, check_in, check_out,
                                        number_of_guests, total_price, currency, status, payment_status,
                                        special_request, assigned_beds, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		res.ID, res.GuestID, res.PropertyID, res.RoomTypeID, res.Source, res.CheckIn, res.CheckOut,
		res.NumberOfGuests, res.TotalPrice, res.Currency, res.Status, res.PaymentStatus,
		res.SpecialRequest, pq.Array(beds(res.AssignedBeds)), res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert reservation: %w", err)
	}

	return nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	res, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, err
	}

	return res, nil
}

func (r *ReservationRepository) ListActiveOverlapping(
	ctx context.Context,
	roomTypeID string,
	from, to calendar.Day,
) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE room_type_id = $1
			    AND status = ANY($2)
			    AND check_in < $4
			    AND check_out > $3
			  ORDER BY check_in, created_at, id`

	return r.list(ctx, query, roomTypeID, pq.Array(domain.ActiveStatuses), from, to)
}

func (r *ReservationRepository) ListNeedingBeds(
	ctx context.Context,
	roomTypeID string,
	day calendar.Day,
) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE room_type_id = $1
			    AND status = ANY($2)
			    AND check_in <= $3
			    AND check_out > $3
			    AND COALESCE(array_length(assigned_beds, 1), 0) < number_of_guests
			  ORDER BY created_at, id`

	return r.list(ctx, query, roomTypeID, pq.Array(domain.ActiveStatuses), day)
}

// UpdateStay moves an active reservation and drops its beds, the caller
// assigns new ones.
func (r *ReservationRepository) UpdateStay(
	ctx context.Context,
	id string,
	in domain.UpdateStayInput,
	totalPrice float64,
) error {
	query := `UPDATE reservations
			  SET check_in = $2, check_out = $3, number_of_guests = $4, total_price = $5,
			      assigned_beds = '{}', updated_at = now()
			  WHERE id = $1 AND status = ANY($6)`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		id, in.CheckIn, in.CheckOut, in.NumberOfGuests, totalPrice, pq.Array(domain.ActiveStatuses),
	)
	if err != nil {
		return fmt.Errorf("update stay: %w", err)
	}

	return r.expectOne(ctx, res, id, domain.ErrIllegalTransition)
}

// UpdateStatus is a compare-and-swap on the stored status.
func (r *ReservationRepository) UpdateStatus(ctx context.Context, id string, from, to domain.ReservationStatus) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE reservations
			  SET status = $3, updated_at = now()
			  WHERE id = $1 AND status = $2`
	res, err := tx.ExecContext(ctx, query, id, from, to)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("status rows affected: %w", err)
	}
	if n == 0 {
		var current domain.ReservationStatus
		err = tx.QueryRowContext(ctx, `SELECT status FROM reservations WHERE id = $1`, id).Scan(&current)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrReservationNotFound
		}
		if err != nil {
			return fmt.Errorf("get status: %w", err)
		}
		return fmt.Errorf("%w: reservation %s is %s, expected %s",
			domain.ErrConcurrentModification, id, current, from)
	}

	return tx.Commit()
}

func (r *ReservationRepository) UpdatePaymentStatus(ctx context.Context, id string, status domain.PaymentStatus) error {
	query := `UPDATE reservations
			  SET payment_status = $2, updated_at = now()
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status)
	if err != nil {
		return fmt.Errorf("update payment status: %w", err)
	}

	return r.expectOne(ctx, res, id, domain.ErrReservationNotFound)
}

func (r *ReservationRepository) SetAssignedBeds(ctx context.Context, id string, assigned []string) error {
	query := `UPDATE reservations
			  SET assigned_beds = $2, updated_at = now()
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, pq.Array(beds(assigned)))
	if err != nil {
		return fmt.Errorf("set assigned beds: %w", err)
	}

	return r.expectOne(ctx, res, id, domain.ErrReservationNotFound)
}

func (r *ReservationRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Reservation, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	var res []*domain.Reservation
	for rows.Next() {
		item, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, item)
	}

	return res, rows.Err()
}

// expectOne maps zero affected rows to ErrReservationNotFound when the row is
// missing, and to onMiss when it exists but the filter rejected it.
func (r *ReservationRepository) expectOne(ctx context.Context, res sql.Result, id string, onMiss error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n > 0 {
		return nil
	}
	if onMiss == domain.ErrReservationNotFound {
		return onMiss
	}

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT status FROM reservations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("get status: %w", err)
	}
	var status domain.ReservationStatus
	if err = row.Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrReservationNotFound
		}
		return fmt.Errorf("scan status: %w", err)
	}

	return fmt.Errorf("%w: reservation %s is %s", onMiss, id, status)
}

func scanReservation(s scanner) (*domain.Reservation, error) {
	var res domain.Reservation
	err := s.Scan(
		&res.ID, &res.GuestID, &res.PropertyID, &res.RoomTypeID, &res.Source, &res.CheckIn, &res.CheckOut,
		&res.NumberOfGuests, &res.TotalPrice, &res.Currency, &res.Status, &res.PaymentStatus,
		&res.SpecialRequest, pq.Array(&res.AssignedBeds), &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}
	return &res, nil
}

// beds keeps the column NOT NULL.
func beds(b []string) []string {
	if b == nil {
		return []string{}
	}
	return b
}
