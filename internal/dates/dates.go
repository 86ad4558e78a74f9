// Package dates implements the fixed YYYY-MM-DD date format shared by
// the task file, the user-facing prompts, and the generated reports.
// Every date in the system round-trips through this package so that
// the on-disk representation stays byte-stable.
package dates

import (
	"errors"
	"fmt"
	"time"
)

// Layout is the only accepted textual date format.
const Layout = "2006-01-02"

// ErrFormat is returned (wrapped) for any input that is not a valid
// calendar date in YYYY-MM-DD form.
var ErrFormat = errors.New("invalid date: expected YYYY-MM-DD")

// Parse converts text in YYYY-MM-DD form to a UTC calendar date.
// Wrong separators, missing zero-padding, trailing text, and
// impossible calendar dates (e.g. 2024-02-30) all fail.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrFormat, s)
	}
	return t, nil
}

// Format is the inverse of Parse and always produces the fixed-width
// YYYY-MM-DD form.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// DayOf truncates an instant to its UTC calendar date (midnight),
// comparable with dates produced by Parse.
func DayOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar date in UTC.
func Today() time.Time {
	return DayOf(time.Now())
}
