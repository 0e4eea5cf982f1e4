package calendar

import (
	"fmt"
	"time"
)

const secondsPerDay = 24 * 60 * 60

// CalendarDate is a plain Gregorian date
type CalendarDate struct {
	Day   int `json:"day"`
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Key returns the date encoded as YYYYMMDD
func (d CalendarDate) Key() string {
	return BuildKey(d.Day, d.Month, d.Year)
}

// Weekday numbers the days of the week Monday=1 through Sunday=7.
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

// Valid reports whether w is one of the seven weekdays
func (w Weekday) Valid() bool {
	return w >= Monday && w <= Sunday
}

func (w Weekday) String() string {
	if !w.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	return weekdayNames[w]
}

// daysSinceEpoch counts days from 1970-01-01. Out of range fields are normalized
// the same way time.Date does it.
func daysSinceEpoch(d CalendarDate) int {
	secs := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC).Unix()
	return int(floorDiv(secs, secondsPerDay))
}

func dateFromEpochDays(days int) CalendarDate {
	year, month, day := time.Unix(int64(days)*secondsPerDay, 0).UTC().Date()
	return CalendarDate{Day: day, Month: int(month), Year: year}
}

// AddDays returns the date deltaDays after base (before it, if negative).
func AddDays(base CalendarDate, deltaDays int) CalendarDate {
	return dateFromEpochDays(daysSinceEpoch(base) + deltaDays)
}

// GetWeekday returns the weekday of the given date. 1970-01-01 was a Thursday.
func GetWeekday(date CalendarDate) Weekday {
	return Weekday(floorMod(daysSinceEpoch(date)+3, 7) + 1)
}

// CalcDateByWDMY returns the weekCount-th weekday of the given month, e.g. the
// first Wednesday in September 2015 is
//
//	CalcDateByWDMY(1, Wednesday, 9, 2015)
//
// A weekCount of 0 selects the last such weekday of the month.
func CalcDateByWDMY(weekCount int, weekday Weekday, month, year int) (CalendarDate, error) {
	if weekCount < 0 {
		return CalendarDate{}, fmt.Errorf("%w: weekCount %d must not be negative", ErrInvalidRuleParameter, weekCount)
	}
	if !weekday.Valid() {
		return CalendarDate{}, fmt.Errorf("%w: %v", ErrInvalidRuleParameter, weekday)
	}
	if month < 1 || month > 12 {
		return CalendarDate{}, fmt.Errorf("%w: month %d", ErrInvalidRuleParameter, month)
	}

	// the last weekday of a month is searched backwards from the 1st of the next one
	if weekCount == 0 {
		month++
		if month > 12 {
			month = 1
			year++
		}
	}

	first := CalendarDate{Day: 1, Month: month, Year: year}

	delta := int(weekday - GetWeekday(first))
	if delta >= 0 {
		weekCount--
	}

	return AddDays(first, delta+weekCount*7), nil
}

// CalcDateByNthWeekdayRelativeToDate returns the weekCount-th weekday before
// (weekCount < 0) or after (weekCount > 0) the reference date. The 4th Advent
// is the first Sunday before December 25th:
//
//	CalcDateByNthWeekdayRelativeToDate(25, 12, 2015, -1, Sunday)
//
// The reference date itself never counts as an occurrence.
func CalcDateByNthWeekdayRelativeToDate(day, month, year, weekCount int, weekday Weekday) (CalendarDate, error) {
	if weekCount == 0 {
		return CalendarDate{}, fmt.Errorf("%w: weekCount must not be 0", ErrInvalidRuleParameter)
	}
	if !weekday.Valid() {
		return CalendarDate{}, fmt.Errorf("%w: %v", ErrInvalidRuleParameter, weekday)
	}
	if month < 1 || month > 12 {
		return CalendarDate{}, fmt.Errorf("%w: month %d", ErrInvalidRuleParameter, month)
	}
	if day < 1 || day > 31 {
		return CalendarDate{}, fmt.Errorf("%w: day %d", ErrInvalidRuleParameter, day)
	}

	ref := CalendarDate{Day: day, Month: month, Year: year}

	delta := int(weekday - GetWeekday(ref))
	switch {
	case weekCount < 0 && delta < 0:
		weekCount++
	case weekCount > 0 && delta > 0:
		weekCount--
	}

	return AddDays(ref, delta+weekCount*7), nil
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
