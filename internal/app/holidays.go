package app

import (
	"github.com/klabast/wb-services/feiertag-kalender/internal/calendar"
)

// DefaultRules returns the public holidays of NRW plus common German
// observances. Used when no rules file is configured.
//
// Mother's Day wins over Whit Sunday when both fall on the same Sunday (2008).
func DefaultRules() calendar.Config {
	return calendar.Config{
		EasterRelativeDays: []calendar.EasterRelativeDay{
			{Delta: -48, Name: "Rosenmontag"},
			{Delta: -46, Name: "Aschermittwoch"},
			{Delta: -3, Name: "Gründonnerstag"},
			{Delta: -2, Name: "Karfreitag", IsFeastDay: true},
			{Delta: 0, Name: "Ostersonntag", IsFeastDay: true},
			{Delta: 1, Name: "Ostermontag", IsFeastDay: true},
			{Delta: 39, Name: "Christi Himmelfahrt", IsFeastDay: true},
			{Delta: 49, Name: "Pfingstsonntag", IsFeastDay: true},
			{Delta: 50, Name: "Pfingstmontag", IsFeastDay: true},
			{Delta: 60, Name: "Fronleichnam", IsFeastDay: true},
		},
		FixedDays: []calendar.FixedDay{
			{Day: 1, Month: 1, Name: "Neujahr", IsFeastDay: true},
			{Day: 1, Month: 5, Name: "Tag der Arbeit", IsFeastDay: true},
			{Day: 3, Month: 10, Name: "Tag der Deutschen Einheit", IsFeastDay: true},
			{Day: 31, Month: 10, Year: 2017, Name: "Reformationstag", IsFeastDay: true},
			{Day: 1, Month: 11, Name: "Allerheiligen", IsFeastDay: true},
			{Day: 24, Month: 12, Name: "Heiligabend"},
			{Day: 25, Month: 12, Name: "1. Weihnachtstag", IsFeastDay: true},
			{Day: 26, Month: 12, Name: "2. Weihnachtstag", IsFeastDay: true},
			{Day: 31, Month: 12, Name: "Silvester"},
		},
		NthWeekdayInMonthDays: []calendar.NthWeekdayInMonthDay{
			{WeekCount: 2, Weekday: calendar.Sunday, Month: 5, Name: "Muttertag"},
		},
		NthWeekdayRelativeToDateDays: []calendar.NthWeekdayRelativeToDateDay{
			{Day: 25, Month: 12, WeekCount: -6, Weekday: calendar.Sunday, Name: "Volkstrauertag"},
			{Day: 23, Month: 11, WeekCount: -1, Weekday: calendar.Wednesday, Name: "Buß- und Bettag"},
			{Day: 25, Month: 12, WeekCount: -5, Weekday: calendar.Sunday, Name: "Totensonntag"},
			{Day: 25, Month: 12, WeekCount: -4, Weekday: calendar.Sunday, Name: "1. Advent"},
			{Day: 25, Month: 12, WeekCount: -3, Weekday: calendar.Sunday, Name: "2. Advent"},
			{Day: 25, Month: 12, WeekCount: -2, Weekday: calendar.Sunday, Name: "3. Advent"},
			{Day: 25, Month: 12, WeekCount: -1, Weekday: calendar.Sunday, Name: "4. Advent"},
		},
	}
}
