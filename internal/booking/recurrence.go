package booking

import (
	"time"

	"github.com/stpnv0/FacilityBooker/internal/domain"
)

// MaxOccurrences caps recurrence expansion so a multi-year rule cannot
// produce an unbounded series.
const MaxOccurrences = 50

type RepeatType string

const (
	RepeatWeekly   RepeatType = "weekly"
	RepeatBiweekly RepeatType = "biweekly"
	RepeatMonthly  RepeatType = "monthly"
)

// Recurrence describes a repeating slot: which dates repeat between
// StartDate and EndDate (both inclusive), and the wall-clock window applied
// to every occurrence.
type Recurrence struct {
	Repeat    RepeatType
	Weekdays  []time.Weekday // weekly/biweekly only, ignored for monthly
	StartDate time.Time
	EndDate   time.Time
	StartTime domain.TimeOfDay
	EndTime   domain.TimeOfDay
}

// ExpandOccurrences produces the ordered occurrence dates (midnight, in the
// StartDate's location), at most MaxOccurrences of them. An unknown repeat
// type expands to nothing.
func ExpandOccurrences(rec Recurrence) []time.Time {
	switch rec.Repeat {
	case RepeatWeekly:
		return expandByWeekday(rec, false)
	case RepeatBiweekly:
		return expandByWeekday(rec, true)
	case RepeatMonthly:
		return expandMonthly(rec)
	default:
		return nil
	}
}

// expandByWeekday walks the range one day at a time collecting dates whose
// weekday is selected. In biweekly mode the cursor jumps 8 days after
// processing a Saturday, dropping the following week; the skip is tied to
// reaching a Saturday, not to a week counter, which is the behavior the
// rest of the system expects.
func expandByWeekday(rec Recurrence, biweekly bool) []time.Time {
	selected := make(map[time.Weekday]struct{}, len(rec.Weekdays))
	for _, day := range rec.Weekdays {
		selected[day] = struct{}{}
	}

	last := midnight(rec.EndDate)
	var dates []time.Time
	for cur := midnight(rec.StartDate); !cur.After(last); {
		if _, ok := selected[cur.Weekday()]; ok {
			dates = append(dates, cur)
			if len(dates) == MaxOccurrences {
				break
			}
		}
		if biweekly && cur.Weekday() == time.Saturday {
			cur = cur.AddDate(0, 0, 8)
		} else {
			cur = cur.AddDate(0, 0, 1)
		}
	}
	return dates
}

// expandMonthly matches the start date's day-of-month exactly: a series
// starting on the 31st simply has no occurrence in shorter months, it does
// not roll forward.
func expandMonthly(rec Recurrence) []time.Time {
	dayOfMonth := rec.StartDate.Day()
	last := midnight(rec.EndDate)

	var dates []time.Time
	for cur := midnight(rec.StartDate); !cur.After(last); cur = cur.AddDate(0, 0, 1) {
		if cur.Day() != dayOfMonth {
			continue
		}
		dates = append(dates, cur)
		if len(dates) == MaxOccurrences {
			break
		}
	}
	return dates
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
