package service

import "time"

// MonthWindow is a half-open [Start, End) interval in UTC covering one
// calendar month of an offset-adjusted clock.
type MonthWindow struct {
	Start time.Time
	End   time.Time
}

// MonthWindows computes the current and previous calendar month windows
// for a reference instant as seen by a clock shifted from UTC by
// offsetMinutes. The offset follows JavaScript Date.getTimezoneOffset
// semantics: minutes, positive west of UTC, so -420 means UTC+7.
//
// The returned boundaries are UTC instants, suitable for range queries
// against timestamps stored in UTC.
func MonthWindows(ref time.Time, offsetMinutes int) (current, previous MonthWindow) {
	offset := time.Duration(offsetMinutes) * time.Minute

	// local = utc - offset; shift the reference into the client's clock
	// to pick the right month, then shift the boundaries back.
	local := ref.UTC().Add(-offset)
	year, month, _ := local.Date()

	currentStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	currentEnd := currentStart.AddDate(0, 1, 0)
	previousStart := currentStart.AddDate(0, -1, 0)

	current = MonthWindow{Start: currentStart.Add(offset), End: currentEnd.Add(offset)}
	previous = MonthWindow{Start: previousStart.Add(offset), End: currentStart.Add(offset)}
	return current, previous
}
