package calendar

import (
	"testing"
	"time"

	"github.com/rickar/cal/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// results are compared against github.com/rickar/cal, which computes the same
// days on time.Time

func fromTime(t time.Time) CalendarDate {
	return CalendarDate{Day: t.Day(), Month: int(t.Month()), Year: t.Year()}
}

func toISO(wd time.Weekday) Weekday {
	if wd == time.Sunday {
		return Sunday
	}
	return Weekday(wd)
}

func TestCalcEasterSunday_MatchesCal(t *testing.T) {
	easter := &cal.Holiday{Name: "Ostersonntag", Offset: 0, Func: cal.CalcEasterOffset}

	for year := MinYear; year <= 2200; year++ {
		actual, _ := easter.Calc(year)
		assert.Equal(t, fromTime(actual), CalcEasterSunday(year), "year %d", year)
	}
}

func TestGetWeekday_MatchesTime(t *testing.T) {
	start := time.Date(1971, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 20000; i += 13 {
		day := start.AddDate(0, 0, i)
		assert.Equal(t, toISO(day.Weekday()), GetWeekday(fromTime(day)), day.Format(time.DateOnly))
	}
}

func TestCalcDateByWDMY_MatchesCal(t *testing.T) {
	weekdays := []time.Weekday{time.Monday, time.Wednesday, time.Friday, time.Sunday}

	for year := 2000; year <= 2030; year++ {
		for month := time.January; month <= time.December; month++ {
			for _, wd := range weekdays {
				for n := 1; n <= 4; n++ {
					got, err := CalcDateByWDMY(n, toISO(wd), int(month), year)
					require.NoError(t, err)
					assert.Equal(t, fromTime(cal.WeekdayN(year, month, wd, n)), got, "%d. %v %d/%d", n, wd, month, year)
				}

				last, err := CalcDateByWDMY(0, toISO(wd), int(month), year)
				require.NoError(t, err)
				assert.Equal(t, fromTime(cal.WeekdayN(year, month, wd, -1)), last, "last %v %d/%d", wd, month, year)
			}
		}
	}
}
