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

type FacilityRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewFacilityRepo(db *dbpg.DB) *FacilityRepository {
	return &FacilityRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *FacilityRepository) Create(ctx context.Context, f *domain.Facility) error {
	query := `INSERT INTO facilities (id, name, description, is_active, open_time, close_time, closed_weekdays, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		f.ID, f.Name, f.Description, f.IsActive,
		todToDB(f.OpenTime), todToDB(f.CloseTime), pq.Array(weekdaysToDB(f.ClosedWeekdays)),
		f.CreatedAt, f.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert facility: %w", err)
	}

	return nil
}

func (r *FacilityRepository) GetByID(ctx context.Context, id string) (*domain.Facility, error) {
	query := `SELECT id, name, description, is_active, open_time, close_time, closed_weekdays, created_at, updated_at
			  FROM facilities
			  WHERE id=$1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrFacilityNotFound
		}
		return nil, fmt.Errorf("get facility: %w", err)
	}

	f, err := scanFacility(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrFacilityNotFound
		}
		return nil, fmt.Errorf("scan facility: %w", err)
	}

	return f, nil
}

func (r *FacilityRepository) List(ctx context.Context) ([]*domain.Facility, error) {
	query := `SELECT id, name, description, is_active, open_time, close_time, closed_weekdays, created_at, updated_at
			  FROM facilities
			  ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list facilities: %w", err)
	}
	defer rows.Close()

	var res []*domain.Facility
	for rows.Next() {
		f, err := scanFacility(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan facility: %w", err)
		}
		res = append(res, f)
	}

	return res, rows.Err()
}

func (r *FacilityRepository) Update(ctx context.Context, f *domain.Facility) error {
	query := `UPDATE facilities
			  SET name = $2, description = $3, is_active = $4,
			      open_time = $5, close_time = $6, closed_weekdays = $7,
			      updated_at = $8
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		f.ID, f.Name, f.Description, f.IsActive,
		todToDB(f.OpenTime), todToDB(f.CloseTime), pq.Array(weekdaysToDB(f.ClosedWeekdays)),
		f.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update facility: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("facility rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrFacilityNotFound
	}

	return nil
}

// Операционные часы храним как TEXT "HH:MM", NULL = без ограничения.
func todToDB(t *domain.TimeOfDay) *string {
	if t == nil {
		return nil
	}
	s := t.String()
	return &s
}

func todFromDB(s sql.NullString) (*domain.TimeOfDay, error) {
	if !s.Valid {
		return nil, nil
	}
	t, err := domain.ParseTimeOfDay(s.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func weekdaysToDB(days []time.Weekday) []int64 {
	res := make([]int64, len(days))
	for i, d := range days {
		res[i] = int64(d)
	}
	return res
}

func scanFacility(scan func(dest ...any) error) (*domain.Facility, error) {
	var f domain.Facility
	var open, close sql.NullString
	var closedDays pq.Int64Array
	if err := scan(
		&f.ID, &f.Name, &f.Description, &f.IsActive,
		&open, &close, &closedDays,
		&f.CreatedAt, &f.UpdatedAt,
	); err != nil {
		return nil, err
	}

	var err error
	if f.OpenTime, err = todFromDB(open); err != nil {
		return nil, err
	}
	if f.CloseTime, err = todFromDB(close); err != nil {
		return nil, err
	}
	for _, d := range closedDays {
		f.ClosedWeekdays = append(f.ClosedWeekdays, time.Weekday(d))
	}

	return &f, nil
}
