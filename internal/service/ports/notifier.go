package ports

import (
	"context"

	"github.com/stpnv0/FacilityBooker/internal/domain"
)

type ReservationNotifier interface {
	NotifyReservationCreated(ctx context.Context, r *domain.Reservation, f *domain.Facility)
	NotifyReservationApproved(ctx context.Context, r *domain.Reservation, f *domain.Facility)
	NotifyReservationRejected(ctx context.Context, r *domain.Reservation, f *domain.Facility)
	NotifyReservationExpired(ctx context.Context, r *domain.Reservation)
}
