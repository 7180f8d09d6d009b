package domain

import "time"

// WeekdayOf maps a date to the Monday=0 ... Sunday=6 numbering used by ServiceWindow.DayOfWeek.
// time.Weekday starts at Sunday=0, so it must never be stored or compared directly.
func WeekdayOf(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}

// DateOnly truncates t to midnight in its own location
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DayBounds returns the half-open interval [midnight, next midnight) of the date
func DayBounds(date time.Time) (time.Time, time.Time) {
	start := DateOnly(date)
	return start, start.AddDate(0, 0, 1)
}
