package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stpnv0/FacilityBooker/internal/domain"
)

func tod(t *testing.T, s string) *domain.TimeOfDay {
	t.Helper()
	parsed, err := domain.ParseTimeOfDay(s)
	require.NoError(t, err)
	return &parsed
}

func testFacility(t *testing.T) *domain.Facility {
	t.Helper()
	return &domain.Facility{
		ID:        "f1",
		Name:      "Hall A",
		IsActive:  true,
		OpenTime:  tod(t, "09:00"),
		CloseTime: tod(t, "18:00"),
	}
}

func at(day string, clock string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", day+" "+clock)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

func TestCheckAvailability_Allow(t *testing.T) {
	f := testFacility(t)

	d := CheckAvailability(f, nil, nil, at("2024-03-01", "10:00"), at("2024-03-01", "11:00"), CheckOptions{})

	assert.Nil(t, d)
}

func TestCheckAvailability_FacilityInactive(t *testing.T) {
	f := testFacility(t)
	f.IsActive = false

	d := CheckAvailability(f, nil, nil, at("2024-03-01", "10:00"), at("2024-03-01", "11:00"), CheckOptions{})

	require.NotNil(t, d)
	assert.ErrorIs(t, d, domain.ErrFacilityInactive)
}

func TestCheckAvailability_InvalidRange(t *testing.T) {
	f := testFacility(t)

	d := CheckAvailability(f, nil, nil, at("2024-03-01", "11:00"), at("2024-03-01", "10:00"), CheckOptions{})
	require.NotNil(t, d)
	assert.ErrorIs(t, d, domain.ErrInvalidRange)

	// zero-length slot is invalid too
	d = CheckAvailability(f, nil, nil, at("2024-03-01", "10:00"), at("2024-03-01", "10:00"), CheckOptions{})
	require.NotNil(t, d)
	assert.ErrorIs(t, d, domain.ErrInvalidRange)
}

func TestCheckAvailability_PastDate(t *testing.T) {
	f := testFacility(t)
	now := at("2024-03-02", "12:00")

	d := CheckAvailability(f, nil, nil, at("2024-03-01", "10:00"), at("2024-03-01", "11:00"), CheckOptions{Now: now})

	require.NotNil(t, d)
	assert.ErrorIs(t, d, domain.ErrPastDate)
}

func TestCheckAvailability_PastCheckOptIn(t *testing.T) {
	f := testFacility(t)

	// zero Now disables the past-date check (administrative edits)
	d := CheckAvailability(f, nil, nil, at("2020-03-01", "10:00"), at("2020-03-01", "11:00"), CheckOptions{})

	assert.Nil(t, d)
}

func TestCheckAvailability_ClosedWeekday(t *testing.T) {
	f := testFacility(t)
	f.ClosedWeekdays = []time.Weekday{time.Sunday, time.Monday}

	// 2024-03-04 is a Monday
	d := CheckAvailability(f, nil, nil, at("2024-03-04", "10:00"), at("2024-03-04", "11:00"), CheckOptions{})

	require.NotNil(t, d)
	assert.ErrorIs(t, d, domain.ErrClosedWeekday)
	assert.Equal(t, time.Monday, d.Weekday)
}

func TestCheckAvailability_ClosedWeekdayBeatsOverlap(t *testing.T) {
	f := testFacility(t)
	f.ClosedWeekdays = []time.Weekday{time.Monday}

	existing := []*domain.Reservation{{
		ID: "r1", FacilityID: "f1", Status: domain.ReservationStatusApproved,
		StartAt: at("2024-03-04", "10:00"), EndAt: at("2024-03-04", "11:00"),
	}}

	d := CheckAvailability(f, nil, existing, at("2024-03-04", "10:30"), at("2024-03-04", "11:30"), CheckOptions{})

	require.NotNil(t, d)
	assert.ErrorIs(t, d, domain.ErrClosedWeekday)
}

func TestCheckAvailability_Holiday(t *testing.T) {
	f := testFacility(t)
	global := &domain.Holiday{ID: "h1", Date: at("2024-03-01", "00:00")}

	d := CheckAvailability(f, []*domain.Holiday{global}, nil, at("2024-03-01", "10:00"), at("2024-03-01", "11:00"), CheckOptions{})

	require.NotNil(t, d)
	assert.ErrorIs(t, d, domain.ErrHoliday)
}

func TestCheckAvailability_HolidayScoping(t *testing.T) {
	f := testFacility(t)
	other := "f2"
	scoped := &domain.Holiday{ID: "h1", FacilityID: &other, Date: at("2024-03-01", "00:00")}

	// a holiday scoped to another facility does not block this one
	d := CheckAvailability(f, []*domain.Holiday{scoped}, nil, at("2024-03-01", "10:00"), at("2024-03-01", "11:00"), CheckOptions{})
	assert.Nil(t, d)

	own := "f1"
	scoped.FacilityID = &own
	d = CheckAvailability(f, []*domain.Holiday{scoped}, nil, at("2024-03-01", "10:00"), at("2024-03-01", "11:00"), CheckOptions{})
	require.NotNil(t, d)
	assert.ErrorIs(t, d, domain.ErrHoliday)
}

func TestCheckAvailability_OutsideHours(t *testing.T) {
	f := testFacility(t)

	d := CheckAvailability(f, nil, nil, at("2024-03-01", "08:30"), at("2024-03-01", "10:00"), CheckOptions{})
	require.NotNil(t, d)
	assert.ErrorIs(t, d, domain.ErrOutsideHours)
	assert.Equal(t, "09:00", d.Open.String())
	assert.Equal(t, "18:00", d.Close.String())

	d = CheckAvailability(f, nil, nil, at("2024-03-01", "17:00"), at("2024-03-01", "18:30"), CheckOptions{})
	require.NotNil(t, d)
	assert.ErrorIs(t, d, domain.ErrOutsideHours)
}

func TestCheckAvailability_ExactlyAtWindowBounds(t *testing.T) {
	f := testFacility(t)

	d := CheckAvailability(f, nil, nil, at("2024-03-01", "09:00"), at("2024-03-01", "18:00"), CheckOptions{})

	assert.Nil(t, d)
}

func TestCheckAvailability_NoWindowIsUnrestricted(t *testing.T) {
	f := testFacility(t)
	f.OpenTime = nil
	f.CloseTime = nil

	d := CheckAvailability(f, nil, nil, at("2024-03-01", "06:00"), at("2024-03-01", "23:00"), CheckOptions{})

	assert.Nil(t, d)
}

func TestCheckAvailability_TimeConflict(t *testing.T) {
	f := testFacility(t)
	existing := []*domain.Reservation{{
		ID: "r1", FacilityID: "f1", Status: domain.ReservationStatusApproved,
		StartAt: at("2024-03-01", "10:00"), EndAt: at("2024-03-01", "11:00"),
	}}

	d := CheckAvailability(f, nil, existing, at("2024-03-01", "10:30"), at("2024-03-01", "11:30"), CheckOptions{})

	require.NotNil(t, d)
	assert.ErrorIs(t, d, domain.ErrTimeConflict)
	assert.Equal(t, "r1", d.ConflictsWith)
}

func TestCheckAvailability_TouchingIsNotOverlapping(t *testing.T) {
	f := testFacility(t)
	existing := []*domain.Reservation{
		{ID: "r1", Status: domain.ReservationStatusApproved, StartAt: at("2024-03-01", "09:00"), EndAt: at("2024-03-01", "10:00")},
		{ID: "r2", Status: domain.ReservationStatusPending, StartAt: at("2024-03-01", "11:00"), EndAt: at("2024-03-01", "12:00")},
	}

	d := CheckAvailability(f, nil, existing, at("2024-03-01", "10:00"), at("2024-03-01", "11:00"), CheckOptions{})

	assert.Nil(t, d)
}

func TestCheckAvailability_InertStatusesIgnored(t *testing.T) {
	f := testFacility(t)
	existing := []*domain.Reservation{
		{ID: "r1", Status: domain.ReservationStatusRejected, StartAt: at("2024-03-01", "10:00"), EndAt: at("2024-03-01", "11:00")},
		{ID: "r2", Status: domain.ReservationStatusCancelled, StartAt: at("2024-03-01", "10:00"), EndAt: at("2024-03-01", "11:00")},
	}

	d := CheckAvailability(f, nil, existing, at("2024-03-01", "10:30"), at("2024-03-01", "11:30"), CheckOptions{})

	assert.Nil(t, d)
}

func TestCheckAvailability_ExcludeID(t *testing.T) {
	f := testFacility(t)
	existing := []*domain.Reservation{{
		ID: "r1", Status: domain.ReservationStatusApproved,
		StartAt: at("2024-03-01", "10:00"), EndAt: at("2024-03-01", "11:00"),
	}}

	d := CheckAvailability(f, nil, existing, at("2024-03-01", "10:00"), at("2024-03-01", "11:30"), CheckOptions{ExcludeID: "r1"})

	assert.Nil(t, d)
}

// --- extension ---

func approvedReservation() *domain.Reservation {
	return &domain.Reservation{
		ID: "r1", FacilityID: "f1", Status: domain.ReservationStatusApproved,
		StartAt: at("2024-03-01", "10:00"), EndAt: at("2024-03-01", "11:00"),
	}
}

func TestCheckExtension_Allow(t *testing.T) {
	f := testFacility(t)

	d := CheckExtension(f, approvedReservation(), at("2024-03-01", "12:00"), nil)

	assert.Nil(t, d)
}

func TestCheckExtension_NotApproved(t *testing.T) {
	f := testFacility(t)
	r := approvedReservation()
	r.Status = domain.ReservationStatusPending

	d := CheckExtension(f, r, at("2024-03-01", "12:00"), nil)

	require.NotNil(t, d)
	assert.ErrorIs(t, d, domain.ErrNotApproved)
}

func TestCheckExtension_RejectsShortening(t *testing.T) {
	f := testFacility(t)
	r := approvedReservation()

	d := CheckExtension(f, r, at("2024-03-01", "10:30"), nil)
	require.NotNil(t, d)
	assert.ErrorIs(t, d, domain.ErrNotAnExtension)

	// no-op is not an extension either
	d = CheckExtension(f, r, r.EndAt, nil)
	require.NotNil(t, d)
	assert.ErrorIs(t, d, domain.ErrNotAnExtension)
}

func TestCheckExtension_TailConflict(t *testing.T) {
	f := testFacility(t)
	others := []*domain.Reservation{{
		ID: "r2", Status: domain.ReservationStatusPending,
		StartAt: at("2024-03-01", "11:30"), EndAt: at("2024-03-01", "12:30"),
	}}

	d := CheckExtension(f, approvedReservation(), at("2024-03-01", "12:00"), others)

	require.NotNil(t, d)
	assert.ErrorIs(t, d, domain.ErrTimeConflict)
	assert.Equal(t, "r2", d.ConflictsWith)
}

func TestCheckExtension_TouchingNeighborAllowed(t *testing.T) {
	f := testFacility(t)
	others := []*domain.Reservation{{
		ID: "r2", Status: domain.ReservationStatusApproved,
		StartAt: at("2024-03-01", "12:00"), EndAt: at("2024-03-01", "13:00"),
	}}

	d := CheckExtension(f, approvedReservation(), at("2024-03-01", "12:00"), others)

	assert.Nil(t, d)
}

func TestCheckExtension_BeyondCloseTime(t *testing.T) {
	f := testFacility(t)

	d := CheckExtension(f, approvedReservation(), at("2024-03-01", "18:30"), nil)

	require.NotNil(t, d)
	assert.ErrorIs(t, d, domain.ErrOutsideHours)
}

// --- copy ---

func TestCheckCopy_InertSourceFreesItsSlot(t *testing.T) {
	f := testFacility(t)
	src := approvedReservation()
	src.Status = domain.ReservationStatusCancelled

	// a cancelled source no longer occupies its old slot
	d := CheckCopy(f, nil, []*domain.Reservation{src}, at("2024-03-01", "10:30"), at("2024-03-01", "11:30"), at("2024-02-02", "00:00"))

	assert.Nil(t, d)
}

func TestCheckCopy_FullChecksApply(t *testing.T) {
	f := testFacility(t)
	holidays := []*domain.Holiday{{ID: "h1", Date: at("2024-03-08", "00:00")}}

	d := CheckCopy(f, holidays, nil, at("2024-03-08", "10:00"), at("2024-03-08", "11:00"), at("2024-03-02", "00:00"))

	require.NotNil(t, d)
	assert.ErrorIs(t, d, domain.ErrHoliday)
}

func TestCheckCopy_ConflictWithOther(t *testing.T) {
	f := testFacility(t)
	others := []*domain.Reservation{{
		ID: "r9", Status: domain.ReservationStatusApproved,
		StartAt: at("2024-03-08", "10:00"), EndAt: at("2024-03-08", "11:00"),
	}}

	d := CheckCopy(f, nil, others, at("2024-03-08", "10:30"), at("2024-03-08", "11:30"), at("2024-03-02", "00:00"))

	require.NotNil(t, d)
	assert.ErrorIs(t, d, domain.ErrTimeConflict)
	assert.Equal(t, "r9", d.ConflictsWith)
}

func TestCheckCopy_ConflictWithOwnActiveSource(t *testing.T) {
	f := testFacility(t)
	src := approvedReservation()

	// copying into a slot the still-approved source occupies is a conflict
	d := CheckCopy(f, nil, []*domain.Reservation{src}, at("2024-03-01", "10:30"), at("2024-03-01", "11:30"), at("2024-02-02", "00:00"))

	require.NotNil(t, d)
	assert.ErrorIs(t, d, domain.ErrTimeConflict)
	assert.Equal(t, src.ID, d.ConflictsWith)
}
