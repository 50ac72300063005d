package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/stpnv0/FacilityBooker/internal/domain"
)

type HolidayRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewHolidayRepo(db *dbpg.DB) *HolidayRepository {
	return &HolidayRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *HolidayRepository) Create(ctx context.Context, h *domain.Holiday) error {
	query := `INSERT INTO holidays (id, facility_id, holiday_date, name, created_at)
			  VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		h.ID, h.FacilityID, h.Date, h.Name, h.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert holiday: %w", err)
	}

	return nil
}

func (r *HolidayRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM holidays WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("delete holiday: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("holiday rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrHolidayNotFound
	}

	return nil
}

func (r *HolidayRepository) ListInRange(ctx context.Context, facilityID string, from, to time.Time) ([]*domain.Holiday, error) {
	query := `SELECT id, facility_id, holiday_date, name, created_at
			  FROM holidays
			  WHERE (facility_id = $1 OR facility_id IS NULL)
			    AND holiday_date >= $2 AND holiday_date <= $3
			  ORDER BY holiday_date`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, facilityID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list holidays: %w", err)
	}
	defer rows.Close()

	var res []*domain.Holiday
	for rows.Next() {
		var h domain.Holiday
		if err = rows.Scan(&h.ID, &h.FacilityID, &h.Date, &h.Name, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan holiday: %w", err)
		}
		res = append(res, &h)
	}

	return res, rows.Err()
}
