package ports

import (
	"context"
	"time"

	"github.com/stpnv0/FacilityBooker/internal/domain"
)

type ReservationRepo interface {
	Create(ctx context.Context, r *domain.Reservation) error
	CreateBatch(ctx context.Context, rs []*domain.Reservation) error
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	// ListActiveInRange returns pending/approved reservations on the
	// facility intersecting [from, to). excludeID, when non-empty, drops
	// one reservation from the result.
	ListActiveInRange(ctx context.Context, facilityID string, from, to time.Time, excludeID string) ([]*domain.Reservation, error)
	ListByFacility(ctx context.Context, facilityID string, from, to time.Time) ([]*domain.Reservation, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Reservation, error)
	// UpdateStatus transitions the reservation to the target status only
	// if its current status is one of from.
	UpdateStatus(ctx context.Context, id string, from []domain.ReservationStatus, to domain.ReservationStatus) error
	UpdateEnd(ctx context.Context, id string, newEnd time.Time) (*domain.Reservation, error)
	// ExpireStale rejects pending reservations whose start time has
	// passed, returning the affected rows.
	ExpireStale(ctx context.Context) ([]*domain.Reservation, error)
}
