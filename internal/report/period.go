package report

import (
	"fmt"
	"math"
	"time"

	"github.com/tallyware/tally/internal/common"
	"github.com/tallyware/tally/internal/model"
)

// ResolvePeriod computes the inclusive calendar range the named period
// covers at the given reference time. An unknown period is a
// configuration error and fails fast; there is no fallback granularity.
func ResolvePeriod(period model.Period, now time.Time) (model.PeriodRange, error) {
	today := midnight(now)

	var start, end time.Time
	switch period {
	case model.PeriodWeek:
		// Weeks run Sunday through Saturday.
		start = today.AddDate(0, 0, -int(now.Weekday()))
		end = start.AddDate(0, 0, 6)
	case model.PeriodMonth:
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		end = start.AddDate(0, 1, -1)
	case model.PeriodQuarter:
		quarter := (int(now.Month()) - 1) / 3
		start = time.Date(now.Year(), time.Month(quarter*3+1), 1, 0, 0, 0, 0, time.UTC)
		end = start.AddDate(0, 3, -1)
	case model.PeriodYear:
		start = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		end = time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
	default:
		return model.PeriodRange{}, fmt.Errorf("%w: %q", common.ErrInvalidPeriod, period)
	}

	return model.PeriodRange{
		Start:         start,
		End:           end,
		DaysRemaining: daysRemaining(end, now),
	}, nil
}

// daysRemaining counts whole days left until the end of the range,
// floored at zero.
func daysRemaining(end, now time.Time) int {
	days := int(math.Ceil(end.Sub(now).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}

// midnight truncates a time to the start of its calendar day in UTC.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
