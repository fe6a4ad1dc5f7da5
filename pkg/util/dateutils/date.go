package dateutils

import (
	"time"
)

// Layout is the only accepted calendar date format, e.g. 2017-08-23.
const Layout = "2006-01-02"

// Parse converts a YYYY-MM-DD string to a UTC midnight time.
// It returns an error when the string is not a valid calendar date.
func Parse(value string) (time.Time, error) {
	return time.ParseInLocation(Layout, value, time.UTC)
}

// IsDate checks if the given string is a valid YYYY-MM-DD calendar date.
func IsDate(value string) bool {
	_, err := Parse(value)
	return err == nil
}

// Format renders the calendar date part of t as YYYY-MM-DD.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// AddYears shifts t by the given number of calendar years, clamping the day to the
// last day of the target month instead of overflowing into the next one.
// AddYears(2024-02-29, -1) is 2023-02-28, not 2023-03-01.
func AddYears(t time.Time, years int) time.Time {
	year, month, day := t.Date()
	target := time.Date(year+years, month, 1, 0, 0, 0, 0, t.Location())
	if last := DaysIn(target.Year(), month); day > last {
		day = last
	}
	return time.Date(target.Year(), month, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// DaysIn returns the number of days of month in year.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
