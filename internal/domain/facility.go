package domain

import (
	"slices"
	"time"
)

// Facility is a bookable resource together with its availability policy:
// active flag, daily operating window and weekly closed days.
type Facility struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	IsActive       bool           `json:"is_active"`
	OpenTime       *TimeOfDay     `json:"open_time,omitempty"`  // nil = no lower bound
	CloseTime      *TimeOfDay     `json:"close_time,omitempty"` // nil = no upper bound
	ClosedWeekdays []time.Weekday `json:"closed_weekdays"`      // 0 = Sunday
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func (f *Facility) IsClosedOn(day time.Weekday) bool {
	return slices.Contains(f.ClosedWeekdays, day)
}

type CreateFacilityInput struct {
	Name           string
	Description    string
	IsActive       *bool
	OpenTime       *TimeOfDay
	CloseTime      *TimeOfDay
	ClosedWeekdays []time.Weekday
}

type UpdateFacilityInput struct {
	Name           string
	Description    string
	IsActive       bool
	OpenTime       *TimeOfDay
	CloseTime      *TimeOfDay
	ClosedWeekdays []time.Weekday
}
