package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/stpnv0/FacilityBooker/internal/booking"
	"github.com/stpnv0/FacilityBooker/internal/domain"
	"github.com/stpnv0/FacilityBooker/internal/service/ports"
)

type ReservationService struct {
	reservations ports.ReservationRepo
	facilities   ports.FacilityRepo
	holidays     ports.HolidayRepo
	notifier     ports.ReservationNotifier
	clock        ports.Clock
	logger       logger.Logger
}

func NewReservationService(
	reservations ports.ReservationRepo,
	facilities ports.FacilityRepo,
	holidays ports.HolidayRepo,
	notifier ports.ReservationNotifier,
	clock ports.Clock,
	logger logger.Logger,
) *ReservationService {
	return &ReservationService{
		reservations: reservations,
		facilities:   facilities,
		holidays:     holidays,
		notifier:     notifier,
		clock:        clock,
		logger:       logger,
	}
}

// dayWindow widens [start, end) to whole calendar days for the repository
// range queries.
func dayWindow(start, end time.Time) (time.Time, time.Time) {
	y, m, d := start.Date()
	from := time.Date(y, m, d, 0, 0, 0, 0, start.Location())
	y, m, d = end.Date()
	to := time.Date(y, m, d, 0, 0, 0, 0, end.Location()).AddDate(0, 0, 1)
	return from, to
}

func (s *ReservationService) Create(ctx context.Context, input domain.CreateReservationInput) (*domain.Reservation, error) {
	if input.UserID == "" {
		return nil, fmt.Errorf("%w: user_id is required", domain.ErrValidation)
	}

	f, err := s.facilities.GetByID(ctx, input.FacilityID)
	if err != nil {
		return nil, fmt.Errorf("get facility: %w", err)
	}

	from, to := dayWindow(input.StartAt, input.EndAt)
	holidays, err := s.holidays.ListInRange(ctx, f.ID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list holidays: %w", err)
	}
	existing, err := s.reservations.ListActiveInRange(ctx, f.ID, from, to, "")
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	if d := booking.CheckAvailability(f, holidays, existing, input.StartAt, input.EndAt, booking.CheckOptions{Now: s.clock.Now()}); d != nil {
		return nil, d
	}

	now := s.clock.Now()
	r := &domain.Reservation{
		ID:           uuid.New().String(),
		FacilityID:   f.ID,
		UserID:       input.UserID,
		Purpose:      input.Purpose,
		Attendees:    input.Attendees,
		NotifyChatID: input.NotifyChatID,
		StartAt:      input.StartAt,
		EndAt:        input.EndAt,
		Status:       domain.ReservationStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err = s.reservations.Create(ctx, r); err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.logger.Info("reservation created",
		logger.String("reservation_id", r.ID),
		logger.String("facility_id", f.ID),
		logger.String("user_id", r.UserID),
	)

	go s.notifier.NotifyReservationCreated(context.WithoutCancel(ctx), r, f)

	return r, nil
}

func (s *ReservationService) Approve(ctx context.Context, id string) (*domain.Reservation, error) {
	return s.decide(ctx, id, domain.ReservationStatusApproved)
}

func (s *ReservationService) Reject(ctx context.Context, id string) (*domain.Reservation, error) {
	return s.decide(ctx, id, domain.ReservationStatusRejected)
}

// decide applies an administrative pending-only transition and notifies the
// applicant.
func (s *ReservationService) decide(ctx context.Context, id string, to domain.ReservationStatus) (*domain.Reservation, error) {
	r, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	from := []domain.ReservationStatus{domain.ReservationStatusPending}
	if err = s.reservations.UpdateStatus(ctx, id, from, to); err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}
	r.Status = to
	r.UpdatedAt = s.clock.Now()

	s.logger.Info("reservation decided",
		logger.String("reservation_id", r.ID),
		logger.String("status", string(to)),
	)

	f, err := s.facilities.GetByID(ctx, r.FacilityID)
	if err != nil {
		s.logger.Error("failed to get facility for notification",
			logger.String("facility_id", r.FacilityID),
			logger.String("error", err.Error()),
		)
		return r, nil
	}

	switch to {
	case domain.ReservationStatusApproved:
		go s.notifier.NotifyReservationApproved(context.WithoutCancel(ctx), r, f)
	case domain.ReservationStatusRejected:
		go s.notifier.NotifyReservationRejected(context.WithoutCancel(ctx), r, f)
	}

	return r, nil
}

func (s *ReservationService) Cancel(ctx context.Context, id string) error {
	from := []domain.ReservationStatus{domain.ReservationStatusPending, domain.ReservationStatusApproved}
	if err := s.reservations.UpdateStatus(ctx, id, from, domain.ReservationStatusCancelled); err != nil {
		return fmt.Errorf("cancel reservation: %w", err)
	}

	s.logger.Info("reservation cancelled", logger.String("reservation_id", id))
	return nil
}

// Extend pushes an approved reservation's end time forward in place. Only
// the added tail is conflict-checked.
func (s *ReservationService) Extend(ctx context.Context, id string, newEnd time.Time) (*domain.Reservation, error) {
	r, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	f, err := s.facilities.GetByID(ctx, r.FacilityID)
	if err != nil {
		return nil, fmt.Errorf("get facility: %w", err)
	}

	from, to := dayWindow(r.StartAt, newEnd)
	others, err := s.reservations.ListActiveInRange(ctx, f.ID, from, to, r.ID)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	if d := booking.CheckExtension(f, r, newEnd, others); d != nil {
		return nil, d
	}

	updated, err := s.reservations.UpdateEnd(ctx, id, newEnd)
	if err != nil {
		return nil, fmt.Errorf("update end: %w", err)
	}

	s.logger.Info("reservation extended",
		logger.String("reservation_id", id),
		logger.String("new_end", newEnd.Format(time.RFC3339)),
	)

	return updated, nil
}

// Copy books the source reservation's purpose and applicant into a new
// slot as an independent pending reservation; the source is untouched.
func (s *ReservationService) Copy(ctx context.Context, id string, newStart, newEnd time.Time) (*domain.Reservation, error) {
	src, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	f, err := s.facilities.GetByID(ctx, src.FacilityID)
	if err != nil {
		return nil, fmt.Errorf("get facility: %w", err)
	}

	from, to := dayWindow(newStart, newEnd)
	holidays, err := s.holidays.ListInRange(ctx, f.ID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list holidays: %w", err)
	}
	// Источник не исключается: активная исходная бронь конфликтует с копией
	// как любая другая.
	others, err := s.reservations.ListActiveInRange(ctx, f.ID, from, to, "")
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	if d := booking.CheckCopy(f, holidays, others, newStart, newEnd, s.clock.Now()); d != nil {
		return nil, d
	}

	now := s.clock.Now()
	r := &domain.Reservation{
		ID:           uuid.New().String(),
		FacilityID:   src.FacilityID,
		UserID:       src.UserID,
		Purpose:      src.Purpose,
		Attendees:    src.Attendees,
		NotifyChatID: src.NotifyChatID,
		StartAt:      newStart,
		EndAt:        newEnd,
		Status:       domain.ReservationStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err = s.reservations.Create(ctx, r); err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.logger.Info("reservation copied",
		logger.String("source_id", src.ID),
		logger.String("reservation_id", r.ID),
	)

	go s.notifier.NotifyReservationCreated(context.WithoutCancel(ctx), r, f)

	return r, nil
}

// CreateSeries books a recurring series. Active flag and operating hours
// are validated once for the whole series; closed weekdays, holidays and
// conflicts affect only the occurrences they fall on.
func (s *ReservationService) CreateSeries(ctx context.Context, rec booking.Recurrence, fields booking.SeriesFields) (*booking.SeriesResult, error) {
	if fields.UserID == "" {
		return nil, fmt.Errorf("%w: user_id is required", domain.ErrValidation)
	}

	f, err := s.facilities.GetByID(ctx, fields.FacilityID)
	if err != nil {
		return nil, fmt.Errorf("get facility: %w", err)
	}

	if d := booking.ValidateSeries(f, rec); d != nil {
		return nil, d
	}

	from, to := dayWindow(rec.StartDate, rec.EndDate)
	holidays, err := s.holidays.ListInRange(ctx, f.ID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list holidays: %w", err)
	}
	existing, err := s.reservations.ListActiveInRange(ctx, f.ID, from, to, "")
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	res := booking.BuildSeries(rec, f, holidays, existing, fields, s.clock.Now())
	if len(res.Created) == 0 {
		if len(res.Conflicts) == 0 && len(res.Skipped) == 0 {
			return nil, domain.ErrNoDatesInRange
		}
		return nil, domain.ErrNoBookingsCreated
	}

	if err = s.reservations.CreateBatch(ctx, res.Created); err != nil {
		return nil, fmt.Errorf("create reservations: %w", err)
	}

	s.logger.Info("recurring series created",
		logger.String("facility_id", f.ID),
		logger.Int("created", len(res.Created)),
		logger.Int("conflicts", len(res.Conflicts)),
		logger.Int("skipped", len(res.Skipped)),
	)

	go s.notifySeries(context.WithoutCancel(ctx), res.Created, f)

	return &res, nil
}

func (s *ReservationService) notifySeries(ctx context.Context, created []*domain.Reservation, f *domain.Facility) {
	for _, r := range created {
		s.notifier.NotifyReservationCreated(ctx, r, f)
	}
}

// ExpireStale rejects pending reservations whose start time has already
// passed. Called periodically by the scheduler.
func (s *ReservationService) ExpireStale(ctx context.Context) ([]*domain.Reservation, error) {
	expired, err := s.reservations.ExpireStale(ctx)
	if err != nil {
		return nil, fmt.Errorf("expire stale: %w", err)
	}

	if len(expired) > 0 {
		s.logger.Info("stale pending reservations rejected",
			logger.Int("count", len(expired)),
		)

		go s.notifyExpired(context.WithoutCancel(ctx), expired)
	}

	return expired, nil
}

func (s *ReservationService) notifyExpired(ctx context.Context, expired []*domain.Reservation) {
	for _, r := range expired {
		s.notifier.NotifyReservationExpired(ctx, r)
	}
}

func (s *ReservationService) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	return s.reservations.GetByID(ctx, id)
}

func (s *ReservationService) ListByFacility(ctx context.Context, facilityID string, from, to time.Time) ([]*domain.Reservation, error) {
	if _, err := s.facilities.GetByID(ctx, facilityID); err != nil {
		return nil, fmt.Errorf("get facility: %w", err)
	}
	return s.reservations.ListByFacility(ctx, facilityID, from, to)
}

func (s *ReservationService) ListByUser(ctx context.Context, userID string) ([]*domain.Reservation, error) {
	return s.reservations.ListByUser(ctx, userID)
}
