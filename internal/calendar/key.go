package calendar

import (
	"fmt"
	"strconv"
)

// KeyLength is the length of a date key in the form YYYYMMDD
const KeyLength = 8

// BuildKey encodes a date as YYYYMMDD with zero padded month and day.
func BuildKey(day, month, year int) string {
	return fmt.Sprintf("%04d%02d%02d", year, month, day)
}

// ParseKey validates a YYYYMMDD key and splits it into its fields. Only the
// shape is checked, 20150231 parses fine.
func ParseKey(key string) (CalendarDate, error) {
	if len(key) != KeyLength {
		return CalendarDate{}, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	for i := 0; i < len(key); i++ {
		if key[i] < '0' || key[i] > '9' {
			return CalendarDate{}, fmt.Errorf("%w: %q", ErrInvalidKey, key)
		}
	}

	year, _ := strconv.Atoi(key[:4])
	month, _ := strconv.Atoi(key[4:6])
	day, _ := strconv.Atoi(key[6:])

	return CalendarDate{Day: day, Month: month, Year: year}, nil
}
