package booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/stpnv0/FacilityBooker/internal/domain"
)

// SeriesFields are the reservation fields shared by every occurrence of a
// recurring series.
type SeriesFields struct {
	FacilityID   string
	UserID       string
	Purpose      string
	Attendees    int
	NotifyChatID *int64
}

// OccurrenceIssue reports one occurrence that was not booked, with the deny
// sentinel as the reason.
type OccurrenceIssue struct {
	Date          time.Time
	Reason        error
	ConflictsWith string // set for domain.ErrTimeConflict
}

// SeriesResult partitions the expanded occurrences: Created holds the new
// pending reservations, Conflicts the occurrences that overlapped an active
// reservation, Skipped the ones falling on closed weekdays or holidays.
type SeriesResult struct {
	Created   []*domain.Reservation
	Conflicts []OccurrenceIssue
	Skipped   []OccurrenceIssue
}

// ValidateSeries runs the once-per-series checks: the facility must be
// active and the occurrence window must sit inside operating hours.
func ValidateSeries(f *domain.Facility, rec Recurrence) *Denial {
	if !f.IsActive {
		return &Denial{Reason: domain.ErrFacilityInactive}
	}
	if !rec.StartTime.Before(rec.EndTime) {
		return &Denial{Reason: domain.ErrInvalidRange}
	}
	if f.OpenTime != nil && rec.StartTime.Before(*f.OpenTime) {
		return &Denial{Reason: domain.ErrOutsideHours, Open: f.OpenTime, Close: f.CloseTime}
	}
	if f.CloseTime != nil && rec.EndTime.After(*f.CloseTime) {
		return &Denial{Reason: domain.ErrOutsideHours, Open: f.OpenTime, Close: f.CloseTime}
	}
	return nil
}

// BuildSeries expands the recurrence and classifies every occurrence in
// date order. Overlap is detected against existing active reservations plus
// the occurrences already created in this run, so a series never collides
// with itself. ValidateSeries is assumed to have passed; closed weekdays
// and holidays skip an occurrence rather than failing the series.
func BuildSeries(rec Recurrence, f *domain.Facility, holidays []*domain.Holiday, existing []*domain.Reservation, fields SeriesFields, now time.Time) SeriesResult {
	seen := make([]*domain.Reservation, len(existing), len(existing)+MaxOccurrences)
	copy(seen, existing)

	var res SeriesResult
	for _, date := range ExpandOccurrences(rec) {
		if f.IsClosedOn(date.Weekday()) {
			res.Skipped = append(res.Skipped, OccurrenceIssue{Date: date, Reason: domain.ErrClosedWeekday})
			continue
		}
		if holidayOn(f.ID, holidays, date) {
			res.Skipped = append(res.Skipped, OccurrenceIssue{Date: date, Reason: domain.ErrHoliday})
			continue
		}

		start := rec.StartTime.At(date)
		end := rec.EndTime.At(date)
		if d := checkOverlap(seen, start, end, ""); d != nil {
			res.Conflicts = append(res.Conflicts, OccurrenceIssue{
				Date:          date,
				Reason:        domain.ErrTimeConflict,
				ConflictsWith: d.ConflictsWith,
			})
			continue
		}

		r := &domain.Reservation{
			ID:           uuid.New().String(),
			FacilityID:   fields.FacilityID,
			UserID:       fields.UserID,
			Purpose:      fields.Purpose,
			Attendees:    fields.Attendees,
			NotifyChatID: fields.NotifyChatID,
			StartAt:      start,
			EndAt:        end,
			Status:       domain.ReservationStatusPending,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		res.Created = append(res.Created, r)
		seen = append(seen, r)
	}
	return res
}
