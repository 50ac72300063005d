package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stpnv0/FacilityBooker/internal/domain"
)

func weeklyMonWed(t *testing.T) Recurrence {
	t.Helper()
	return Recurrence{
		Repeat:    RepeatWeekly,
		Weekdays:  []time.Weekday{time.Monday, time.Wednesday},
		StartDate: day("2024-03-04"), // Monday
		EndDate:   day("2024-03-20"), // three Mondays, three Wednesdays
		StartTime: domain.TimeOfDay{Hour: 9},
		EndTime:   domain.TimeOfDay{Hour: 10},
	}
}

func seriesFields() SeriesFields {
	return SeriesFields{
		FacilityID: "f1",
		UserID:     "u1",
		Purpose:    "standup",
		Attendees:  5,
	}
}

func TestBuildSeries_AllCreated(t *testing.T) {
	f := testFacility(t)
	now := at("2024-03-01", "12:00")

	res := BuildSeries(weeklyMonWed(t), f, nil, nil, seriesFields(), now)

	require.Len(t, res.Created, 6)
	assert.Empty(t, res.Conflicts)
	assert.Empty(t, res.Skipped)

	first := res.Created[0]
	assert.Equal(t, at("2024-03-04", "09:00"), first.StartAt)
	assert.Equal(t, at("2024-03-04", "10:00"), first.EndAt)
	assert.Equal(t, domain.ReservationStatusPending, first.Status)
	assert.Equal(t, "f1", first.FacilityID)
	assert.Equal(t, "u1", first.UserID)
	assert.Equal(t, now, first.CreatedAt)

	ids := make(map[string]struct{})
	for _, r := range res.Created {
		assert.NotEmpty(t, r.ID)
		ids[r.ID] = struct{}{}
	}
	assert.Len(t, ids, 6)
}

func TestBuildSeries_NoSelfOverlap(t *testing.T) {
	f := testFacility(t)

	res := BuildSeries(weeklyMonWed(t), f, nil, nil, seriesFields(), at("2024-03-01", "12:00"))

	for i, a := range res.Created {
		for j, b := range res.Created {
			if i == j {
				continue
			}
			assert.False(t, a.Overlaps(b.StartAt, b.EndAt), "occurrences %d and %d overlap", i, j)
		}
	}
}

func TestBuildSeries_HolidaySkip(t *testing.T) {
	f := testFacility(t)
	holidays := []*domain.Holiday{{ID: "h1", Date: day("2024-03-06"), Name: "holiday"}}

	res := BuildSeries(weeklyMonWed(t), f, holidays, nil, seriesFields(), at("2024-03-01", "12:00"))

	require.Len(t, res.Created, 5)
	assert.Empty(t, res.Conflicts)
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, day("2024-03-06"), res.Skipped[0].Date)
	assert.ErrorIs(t, res.Skipped[0].Reason, domain.ErrHoliday)
}

func TestBuildSeries_ClosedWeekdaySkip(t *testing.T) {
	f := testFacility(t)
	f.ClosedWeekdays = []time.Weekday{time.Wednesday}

	res := BuildSeries(weeklyMonWed(t), f, nil, nil, seriesFields(), at("2024-03-01", "12:00"))

	require.Len(t, res.Created, 3) // Mondays only
	require.Len(t, res.Skipped, 3)
	for _, s := range res.Skipped {
		assert.ErrorIs(t, s.Reason, domain.ErrClosedWeekday)
		assert.Equal(t, time.Wednesday, s.Date.Weekday())
	}
}

func TestBuildSeries_ConflictWithExisting(t *testing.T) {
	f := testFacility(t)
	existing := []*domain.Reservation{{
		ID: "r1", FacilityID: "f1", Status: domain.ReservationStatusApproved,
		StartAt: at("2024-03-11", "09:30"), EndAt: at("2024-03-11", "10:30"),
	}}

	res := BuildSeries(weeklyMonWed(t), f, nil, existing, seriesFields(), at("2024-03-01", "12:00"))

	require.Len(t, res.Created, 5)
	require.Len(t, res.Conflicts, 1)
	assert.Empty(t, res.Skipped)
	assert.Equal(t, day("2024-03-11"), res.Conflicts[0].Date)
	assert.ErrorIs(t, res.Conflicts[0].Reason, domain.ErrTimeConflict)
	assert.Equal(t, "r1", res.Conflicts[0].ConflictsWith)
}

func TestBuildSeries_ExistingNotMutated(t *testing.T) {
	f := testFacility(t)
	existing := make([]*domain.Reservation, 0, 16)
	existing = append(existing, &domain.Reservation{
		ID: "r1", Status: domain.ReservationStatusApproved,
		StartAt: at("2024-03-11", "09:30"), EndAt: at("2024-03-11", "10:30"),
	})

	BuildSeries(weeklyMonWed(t), f, nil, existing, seriesFields(), at("2024-03-01", "12:00"))

	assert.Len(t, existing, 1)
}

func TestBuildSeries_EmptyExpansion(t *testing.T) {
	f := testFacility(t)
	rec := weeklyMonWed(t)
	rec.Weekdays = []time.Weekday{time.Sunday}
	rec.EndDate = day("2024-03-09") // no Sunday in range

	res := BuildSeries(rec, f, nil, nil, seriesFields(), at("2024-03-01", "12:00"))

	assert.Empty(t, res.Created)
	assert.Empty(t, res.Conflicts)
	assert.Empty(t, res.Skipped)
}

func TestValidateSeries(t *testing.T) {
	f := testFacility(t)
	rec := weeklyMonWed(t)

	assert.Nil(t, ValidateSeries(f, rec))

	inactive := testFacility(t)
	inactive.IsActive = false
	d := ValidateSeries(inactive, rec)
	require.NotNil(t, d)
	assert.ErrorIs(t, d, domain.ErrFacilityInactive)

	backwards := rec
	backwards.StartTime = domain.TimeOfDay{Hour: 10}
	backwards.EndTime = domain.TimeOfDay{Hour: 9}
	d = ValidateSeries(f, backwards)
	require.NotNil(t, d)
	assert.ErrorIs(t, d, domain.ErrInvalidRange)

	early := rec
	early.StartTime = domain.TimeOfDay{Hour: 8}
	d = ValidateSeries(f, early)
	require.NotNil(t, d)
	assert.ErrorIs(t, d, domain.ErrOutsideHours)

	late := rec
	late.EndTime = domain.TimeOfDay{Hour: 19}
	d = ValidateSeries(f, late)
	require.NotNil(t, d)
	assert.ErrorIs(t, d, domain.ErrOutsideHours)
}
