package domain

import "errors"

var (
	ErrFacilityNotFound    = errors.New("facility not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrHolidayNotFound     = errors.New("holiday not found")
)

// Deny reasons produced by the availability checks.
var (
	ErrFacilityInactive = errors.New("facility is not active")
	ErrInvalidRange     = errors.New("end time must be after start time")
	ErrPastDate         = errors.New("start time is in the past")
	ErrClosedWeekday    = errors.New("facility is closed on this weekday")
	ErrHoliday          = errors.New("requested date is a holiday")
	ErrOutsideHours     = errors.New("outside of operating hours")
	ErrTimeConflict     = errors.New("time slot conflicts with an existing reservation")
	ErrNotApproved      = errors.New("reservation is not approved")
	ErrNotAnExtension   = errors.New("new end time does not extend the reservation")
)

var (
	ErrNoDatesInRange    = errors.New("recurrence produced no dates in range")
	ErrNoBookingsCreated = errors.New("no occurrences could be booked")
	ErrNotPending        = errors.New("reservation is not in pending status")
	ErrNotActive         = errors.New("reservation is not active")
)

var (
	ErrValidation = errors.New("validation error")
)
