package calendar

// CalcEasterSunday calculates Easter Sunday using the Meeus/Jones/Butcher
// algorithm. Valid for Gregorian years after 1582.
func CalcEasterSunday(year int) CalendarDate {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451

	// p encodes month*31 + (day-1)
	p := h + l - 7*m + 114

	return CalendarDate{
		Day:   p%31 + 1,
		Month: p / 31,
		Year:  year,
	}
}
