package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stpnv0/FacilityBooker/internal/domain"
	"github.com/stpnv0/FacilityBooker/internal/service/ports"
)

type FacilityService struct {
	facilities ports.FacilityRepo
	holidays   ports.HolidayRepo
	clock      ports.Clock
}

func NewFacilityService(facilities ports.FacilityRepo, holidays ports.HolidayRepo, clock ports.Clock) *FacilityService {
	return &FacilityService{
		facilities: facilities,
		holidays:   holidays,
		clock:      clock,
	}
}

func validatePolicy(open, close *domain.TimeOfDay, closedWeekdays []time.Weekday) error {
	if open != nil && close != nil && !open.Before(*close) {
		return fmt.Errorf("%w: open_time must be before close_time", domain.ErrValidation)
	}
	for _, day := range closedWeekdays {
		if day < time.Sunday || day > time.Saturday {
			return fmt.Errorf("%w: closed weekday out of range", domain.ErrValidation)
		}
	}
	return nil
}

func (s *FacilityService) Create(ctx context.Context, input domain.CreateFacilityInput) (*domain.Facility, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if err := validatePolicy(input.OpenTime, input.CloseTime, input.ClosedWeekdays); err != nil {
		return nil, err
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	now := s.clock.Now()
	f := &domain.Facility{
		ID:             uuid.New().String(),
		Name:           input.Name,
		Description:    input.Description,
		IsActive:       isActive,
		OpenTime:       input.OpenTime,
		CloseTime:      input.CloseTime,
		ClosedWeekdays: input.ClosedWeekdays,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.facilities.Create(ctx, f); err != nil {
		return nil, fmt.Errorf("create facility: %w", err)
	}

	return f, nil
}

func (s *FacilityService) GetByID(ctx context.Context, id string) (*domain.Facility, error) {
	return s.facilities.GetByID(ctx, id)
}

func (s *FacilityService) List(ctx context.Context) ([]*domain.Facility, error) {
	return s.facilities.List(ctx)
}

func (s *FacilityService) Update(ctx context.Context, id string, input domain.UpdateFacilityInput) (*domain.Facility, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if err := validatePolicy(input.OpenTime, input.CloseTime, input.ClosedWeekdays); err != nil {
		return nil, err
	}

	f, err := s.facilities.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get facility: %w", err)
	}

	f.Name = input.Name
	f.Description = input.Description
	f.IsActive = input.IsActive
	f.OpenTime = input.OpenTime
	f.CloseTime = input.CloseTime
	f.ClosedWeekdays = input.ClosedWeekdays
	f.UpdatedAt = s.clock.Now()

	if err := s.facilities.Update(ctx, f); err != nil {
		return nil, fmt.Errorf("update facility: %w", err)
	}

	return f, nil
}

func (s *FacilityService) AddHoliday(ctx context.Context, input domain.AddHolidayInput) (*domain.Holiday, error) {
	if input.FacilityID != nil {
		if _, err := s.facilities.GetByID(ctx, *input.FacilityID); err != nil {
			return nil, fmt.Errorf("get facility: %w", err)
		}
	}

	h := &domain.Holiday{
		ID:         uuid.New().String(),
		FacilityID: input.FacilityID,
		Date:       input.Date,
		Name:       input.Name,
		CreatedAt:  s.clock.Now(),
	}

	if err := s.holidays.Create(ctx, h); err != nil {
		return nil, fmt.Errorf("create holiday: %w", err)
	}

	return h, nil
}

func (s *FacilityService) RemoveHoliday(ctx context.Context, id string) error {
	return s.holidays.Delete(ctx, id)
}

func (s *FacilityService) ListHolidays(ctx context.Context, facilityID string, from, to time.Time) ([]*domain.Holiday, error) {
	if _, err := s.facilities.GetByID(ctx, facilityID); err != nil {
		return nil, fmt.Errorf("get facility: %w", err)
	}
	return s.holidays.ListInRange(ctx, facilityID, from, to)
}
