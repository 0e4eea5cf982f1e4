package calendar

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalcEasterSunday(t *testing.T) {
	tests := []struct {
		year  int
		day   int
		month int
	}{
		{1818, 22, 3}, // earliest possible date
		{1981, 19, 4},
		{2008, 23, 3},
		{2011, 24, 4},
		{2015, 5, 4},
		{2016, 27, 3},
		{2017, 16, 4},
		{2018, 1, 4},
		{2019, 21, 4},
		{2024, 31, 3},
		{2025, 20, 4},
		{2038, 25, 4}, // latest possible date
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.year), func(t *testing.T) {
			got := CalcEasterSunday(tt.year)
			assert.Equal(t, CalendarDate{Day: tt.day, Month: tt.month, Year: tt.year}, got)
			assert.Equal(t, Sunday, GetWeekday(got))
		})
	}
}

func TestCalcEasterSunday_AlwaysSundayInRange(t *testing.T) {
	for year := MinYear; year <= 2200; year++ {
		easter := CalcEasterSunday(year)

		assert.Equal(t, Sunday, GetWeekday(easter), "year %d", year)
		inRange := (easter.Month == 3 && easter.Day >= 22) || (easter.Month == 4 && easter.Day <= 25)
		assert.True(t, inRange, "easter %v out of range", easter)
	}
}
