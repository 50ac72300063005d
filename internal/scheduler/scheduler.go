package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/FacilityBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type reservationExpirer interface {
	ExpireStale(ctx context.Context) ([]*domain.Reservation, error)
}

type Scheduler struct {
	reservationService reservationExpirer
	interval           time.Duration
	logger             logger.Logger
}

func New(
	reservationService reservationExpirer,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		reservationService: reservationService,
		interval:           interval,
		logger:             logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	expired, err := s.reservationService.ExpireStale(ctx)
	if err != nil {
		s.logger.Error("failed to expire stale reservations",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, r := range expired {
		s.logger.Info("reservation expired",
			logger.String("reservation_id", r.ID),
			logger.String("user_id", r.UserID),
			logger.String("facility_id", r.FacilityID),
		)
	}
}
