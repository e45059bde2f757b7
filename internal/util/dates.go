package util

import (
	"fmt"
	"time"
)

// DateMacro returns the \newcommand line defining \thedate for the range
// [start, end]. Shared parts of the two dates are only printed once.
func DateMacro(start, end time.Time) string {
	var from, to string
	switch {
	case start.Year() == end.Year() && start.Month() == end.Month():
		from, to = start.Format("02"), end.Format("02 Jan. 2006")
	case start.Year() == end.Year():
		from, to = start.Format("02 Jan."), end.Format("02 Jan. 2006")
	default:
		from, to = start.Format("02 Jan. 2006"), end.Format("02 Jan. 2006")
	}
	return fmt.Sprintf("\\newcommand{\\thedate}{%s to %s}\n", from, to)
}

// InRange reports whether t falls on a day within [start, end]. Days are
// taken in UTC.
func InRange(t, start, end time.Time) bool {
	day := truncateDay(t)
	return !day.Before(truncateDay(start)) && !day.After(truncateDay(end))
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
