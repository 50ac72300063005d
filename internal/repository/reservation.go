package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/stpnv0/FacilityBooker/internal/domain"
)

const reservationColumns = `id, facility_id, user_id, purpose, attendees, notify_chat_id, start_at, end_at, status, created_at, updated_at`

type ReservationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReservationRepo(db *dbpg.DB) *ReservationRepository {
	return &ReservationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = lockFacility(ctx, tx, res.FacilityID); err != nil {
		return err
	}
	// Повторная проверка пересечений под блокировкой
	if err = checkNoOverlap(ctx, tx, res.FacilityID, res.StartAt, res.EndAt); err != nil {
		return err
	}

	if err = insertReservation(ctx, tx, res); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *ReservationRepository) CreateBatch(ctx context.Context, rs []*domain.Reservation) error {
	if len(rs) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = lockFacility(ctx, tx, rs[0].FacilityID); err != nil {
		return err
	}
	for _, res := range rs {
		if err = checkNoOverlap(ctx, tx, res.FacilityID, res.StartAt, res.EndAt); err != nil {
			return err
		}
		if err = insertReservation(ctx, tx, res); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// lockFacility serializes concurrent bookings of one facility so the
// overlap re-check cannot race.
func lockFacility(ctx context.Context, tx *sql.Tx, facilityID string) error {
	var id string
	query := `SELECT id FROM facilities WHERE id = $1 FOR UPDATE`
	if err := tx.QueryRowContext(ctx, query, facilityID).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrFacilityNotFound
		}
		return fmt.Errorf("lock facility: %w", err)
	}
	return nil
}

func checkNoOverlap(ctx context.Context, tx *sql.Tx, facilityID string, start, end time.Time) error {
	query := `SELECT id FROM reservations
			  WHERE facility_id = $1 AND status = ANY($2)
			    AND start_at < $4 AND end_at > $3
			  LIMIT 1`
	var conflictID string
	err := tx.QueryRowContext(ctx, query, facilityID, pq.Array(domain.ActiveStatuses), start, end).Scan(&conflictID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("check overlap: %w", err)
	}
	return domain.ErrTimeConflict
}

func insertReservation(ctx context.Context, tx *sql.Tx, res *domain.Reservation) error {
	query := `INSERT INTO reservations (` + reservationColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := tx.ExecContext(
		ctx, query,
		res.ID, res.FacilityID, res.UserID, res.Purpose, res.Attendees,
		res.NotifyChatID, res.StartAt, res.EndAt, res.Status,
		res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrTimeConflict
		}
		return fmt.Errorf("insert reservation: %w", err)
	}
	return nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE id=$1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	res, err := scanReservation(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}

	return res, nil
}

func (r *ReservationRepository) ListActiveInRange(ctx context.Context, facilityID string, from, to time.Time, excludeID string) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE facility_id = $1 AND status = ANY($2)
			    AND start_at < $4 AND end_at > $3
			    AND ($5 = '' OR id <> $5)
			  ORDER BY start_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, facilityID, pq.Array(domain.ActiveStatuses), from, to, excludeID)
	if err != nil {
		return nil, fmt.Errorf("list active reservations: %w", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (r *ReservationRepository) ListByFacility(ctx context.Context, facilityID string, from, to time.Time) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE facility_id = $1 AND start_at < $3 AND end_at > $2
			  ORDER BY start_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, facilityID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list reservations by facility: %w", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (r *ReservationRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE user_id = $1
			  ORDER BY start_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list reservations by user: %w", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id string, from []domain.ReservationStatus, to domain.ReservationStatus) error {
	query := `UPDATE reservations
			  SET status = $3, updated_at = NOW()
			  WHERE id = $1 AND status = ANY($2)`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, pq.Array(from), to)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reservation rows affected: %w", err)
	}
	if rows == 0 {
		// Определяем причину: бронь не найдена или в недопустимом статусе
		var status string
		checkQuery := `SELECT status FROM reservations WHERE id = $1`
		row, scanErr := r.db.QueryRowWithRetry(ctx, r.strategy, checkQuery, id)
		if scanErr != nil {
			return domain.ErrReservationNotFound
		}
		if scanErr = row.Scan(&status); scanErr != nil {
			return domain.ErrReservationNotFound
		}
		if len(from) == 1 && from[0] == domain.ReservationStatusPending {
			return domain.ErrNotPending
		}
		return domain.ErrNotActive
	}

	return nil
}

func (r *ReservationRepository) UpdateEnd(ctx context.Context, id string, newEnd time.Time) (*domain.Reservation, error) {
	query := `UPDATE reservations
			  SET end_at = $2, updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + reservationColumns

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, newEnd)
	if err != nil {
		return nil, fmt.Errorf("update end: %w", err)
	}

	res, err := scanReservation(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}

	return res, nil
}

func (r *ReservationRepository) ExpireStale(ctx context.Context) ([]*domain.Reservation, error) {
	query := `UPDATE reservations
			  SET status = $2, updated_at = NOW()
			  WHERE status = $1 AND start_at < NOW()
			  RETURNING ` + reservationColumns

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.ReservationStatusPending, domain.ReservationStatusRejected,
	)
	if err != nil {
		return nil, fmt.Errorf("expire stale: %w", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func scanReservation(scan func(dest ...any) error) (*domain.Reservation, error) {
	var res domain.Reservation
	if err := scan(
		&res.ID, &res.FacilityID, &res.UserID, &res.Purpose, &res.Attendees,
		&res.NotifyChatID, &res.StartAt, &res.EndAt, &res.Status,
		&res.CreatedAt, &res.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &res, nil
}

func collectReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	var res []*domain.Reservation
	for rows.Next() {
		r, err := scanReservation(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		res = append(res, r)
	}
	return res, rows.Err()
}
