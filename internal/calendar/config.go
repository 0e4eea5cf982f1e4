package calendar

// DayEntry is what a named day carries. The zero value means no rule matched.
type DayEntry struct {
	Name       string `json:"name"`
	IsFeastDay bool   `json:"isFeastDay"`
}

// EasterRelativeDay is a movable day Delta days after (or before) Easter Sunday.
type EasterRelativeDay struct {
	Delta      int    `json:"delta"`
	Name       string `json:"name"`
	IsFeastDay bool   `json:"isFeastDay"`
}

// FixedDay recurs every year on the same date. With Year set it only applies
// to that year.
type FixedDay struct {
	Day        int    `json:"day"`
	Month      int    `json:"month"`
	Year       int    `json:"year,omitempty"`
	Name       string `json:"name"`
	IsFeastDay bool   `json:"isFeastDay"`
}

// NthWeekdayInMonthDay is the WeekCount-th Weekday in Month, 0 meaning the last one.
type NthWeekdayInMonthDay struct {
	WeekCount  int     `json:"weekCount"`
	Weekday    Weekday `json:"weekday"`
	Month      int     `json:"month"`
	Name       string  `json:"name"`
	IsFeastDay bool    `json:"isFeastDay"`
}

// NthWeekdayRelativeToDateDay is the WeekCount-th Weekday before (negative) or
// after (positive) Day/Month of the year being materialized.
type NthWeekdayRelativeToDateDay struct {
	Day        int     `json:"day"`
	Month      int     `json:"month"`
	WeekCount  int     `json:"weekCount"`
	Weekday    Weekday `json:"weekday"`
	Name       string  `json:"name"`
	IsFeastDay bool    `json:"isFeastDay"`
}

// Config is the rule set a Store materializes. All lists are optional.
type Config struct {
	EasterRelativeDays           []EasterRelativeDay           `json:"configEasterDependantDays,omitempty"`
	FixedDays                    []FixedDay                    `json:"configFixedDays,omitempty"`
	NthWeekdayInMonthDays        []NthWeekdayInMonthDay        `json:"configNthWeekdayInMonthDays,omitempty"`
	NthWeekdayRelativeToDateDays []NthWeekdayRelativeToDateDay `json:"configNthWeekdayRelativeToDateDays,omitempty"`
}

// Len returns the total number of rules
func (c Config) Len() int {
	return len(c.EasterRelativeDays) + len(c.FixedDays) +
		len(c.NthWeekdayInMonthDays) + len(c.NthWeekdayRelativeToDateDays)
}
