// Package booking contains the availability decisions for facility
// reservations: single-slot checks, extension and copy validation,
// recurrence expansion and recurring series assembly. Every function is a
// pure computation over already-fetched data; fetching and persisting are
// the caller's job, and the storage layer re-verifies overlap atomically
// before committing (an Allow here is "believed available at check time").
package booking

import (
	"time"

	"github.com/stpnv0/FacilityBooker/internal/domain"
)

// CheckOptions tunes a single availability check.
type CheckOptions struct {
	// Now enables the past-date check when non-zero. Administrative edits
	// leave it zero.
	Now time.Time
	// ExcludeID is skipped during overlap detection, used when re-checking
	// an existing reservation's own slot.
	ExcludeID string
}

// Denial explains why a candidate slot was refused. A nil *Denial means the
// slot is allowed. Reason is always one of the deny sentinels in domain, so
// callers match with errors.Is; the remaining fields carry context for the
// reasons that have any.
type Denial struct {
	Reason        error
	ConflictsWith string            // domain.ErrTimeConflict
	Weekday       time.Weekday      // domain.ErrClosedWeekday
	Open          *domain.TimeOfDay // domain.ErrOutsideHours
	Close         *domain.TimeOfDay // domain.ErrOutsideHours
}

func (d *Denial) Error() string { return d.Reason.Error() }

func (d *Denial) Unwrap() error { return d.Reason }

// CheckAvailability decides whether [start, end) may be booked on the
// facility. Checks run in a fixed order and the first failure wins:
// active flag, range ordering, past date, closed weekday, holiday,
// operating hours, overlap. The existing slice must already be scoped to
// the facility and to active statuses.
func CheckAvailability(f *domain.Facility, holidays []*domain.Holiday, existing []*domain.Reservation, start, end time.Time, opts CheckOptions) *Denial {
	if !f.IsActive {
		return &Denial{Reason: domain.ErrFacilityInactive}
	}
	if !end.After(start) {
		return &Denial{Reason: domain.ErrInvalidRange}
	}
	if !opts.Now.IsZero() && start.Before(opts.Now) {
		return &Denial{Reason: domain.ErrPastDate}
	}
	if f.IsClosedOn(start.Weekday()) {
		return &Denial{Reason: domain.ErrClosedWeekday, Weekday: start.Weekday()}
	}
	if holidayOn(f.ID, holidays, start) {
		return &Denial{Reason: domain.ErrHoliday}
	}
	if d := checkHours(f, start, end); d != nil {
		return d
	}
	return checkOverlap(existing, start, end, opts.ExcludeID)
}

// CheckExtension validates pushing an approved reservation's end time
// forward. Only the added tail [r.EndAt, newEnd) is checked for conflicts;
// others must not contain r itself (or it is excluded by id).
func CheckExtension(f *domain.Facility, r *domain.Reservation, newEnd time.Time, others []*domain.Reservation) *Denial {
	if r.Status != domain.ReservationStatusApproved {
		return &Denial{Reason: domain.ErrNotApproved}
	}
	if !newEnd.After(r.EndAt) {
		return &Denial{Reason: domain.ErrNotAnExtension}
	}
	if d := checkOverlap(others, r.EndAt, newEnd, r.ID); d != nil {
		return d
	}
	if f.CloseTime != nil && domain.TimeOfDayFrom(newEnd).After(*f.CloseTime) {
		return &Denial{Reason: domain.ErrOutsideHours, Open: f.OpenTime, Close: f.CloseTime}
	}
	return nil
}

// CheckCopy validates copying a reservation to a new slot. The full rule
// set applies and nothing is excluded from overlap detection: the copy is
// an independent reservation, so a still-active source occupying the new
// slot conflicts like any other booking. The source's own status does not
// matter, which is why it is not an argument here.
func CheckCopy(f *domain.Facility, holidays []*domain.Holiday, others []*domain.Reservation, newStart, newEnd time.Time, now time.Time) *Denial {
	return CheckAvailability(f, holidays, others, newStart, newEnd, CheckOptions{Now: now})
}

// Operating hours compare wall-clock time only, so a slot may not cross
// midnight relative to the window.
func checkHours(f *domain.Facility, start, end time.Time) *Denial {
	if f.OpenTime != nil && domain.TimeOfDayFrom(start).Before(*f.OpenTime) {
		return &Denial{Reason: domain.ErrOutsideHours, Open: f.OpenTime, Close: f.CloseTime}
	}
	if f.CloseTime != nil && domain.TimeOfDayFrom(end).After(*f.CloseTime) {
		return &Denial{Reason: domain.ErrOutsideHours, Open: f.OpenTime, Close: f.CloseTime}
	}
	return nil
}

func checkOverlap(existing []*domain.Reservation, start, end time.Time, excludeID string) *Denial {
	for _, r := range existing {
		if excludeID != "" && r.ID == excludeID {
			continue
		}
		if !r.Status.Active() {
			continue
		}
		if r.Overlaps(start, end) {
			return &Denial{Reason: domain.ErrTimeConflict, ConflictsWith: r.ID}
		}
	}
	return nil
}

func holidayOn(facilityID string, holidays []*domain.Holiday, at time.Time) bool {
	y, m, d := at.Date()
	for _, h := range holidays {
		if !h.AppliesTo(facilityID) {
			continue
		}
		hy, hm, hd := h.Date.Date()
		if hy == y && hm == m && hd == d {
			return true
		}
	}
	return false
}
