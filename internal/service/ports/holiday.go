package ports

import (
	"context"
	"time"

	"github.com/stpnv0/FacilityBooker/internal/domain"
)

type HolidayRepo interface {
	Create(ctx context.Context, h *domain.Holiday) error
	Delete(ctx context.Context, id string) error
	// ListInRange returns holidays on [from, to] applicable to the
	// facility: rows scoped to it plus global rows.
	ListInRange(ctx context.Context, facilityID string, from, to time.Time) ([]*domain.Holiday, error)
}
