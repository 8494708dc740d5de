package types

import "time"

// DateLayout is the layout of calendar day keys.
const DateLayout = "2006-01-02"

// Midnight returns the start of the calendar day t falls on, in t's location.
func Midnight(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// NextMidnight returns the start of the calendar day after t.
func NextMidnight(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day+1, 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the number of calendar days from a to b.
//
// Both instants are reduced to their calendar date in b's location, so the
// result does not depend on the time of day or on DST transitions.
func DaysBetween(a, b time.Time) int {
	a = a.In(b.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()

	from := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	to := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)

	return int(to.Sub(from).Hours() / 24)
}

// SameDay reports whether a and b fall on the same calendar day in b's location.
func SameDay(a, b time.Time) bool {
	return DaysBetween(a, b) == 0
}

// DayKey returns the YYYY-MM-DD key of the calendar day t falls on.
func DayKey(t time.Time) string {
	return t.Format(DateLayout)
}
