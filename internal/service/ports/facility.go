package ports

import (
	"context"

	"github.com/stpnv0/FacilityBooker/internal/domain"
)

type FacilityRepo interface {
	Create(ctx context.Context, f *domain.Facility) error
	GetByID(ctx context.Context, id string) (*domain.Facility, error)
	List(ctx context.Context) ([]*domain.Facility, error)
	Update(ctx context.Context, f *domain.Facility) error
}
