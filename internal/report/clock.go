package report

import "time"

// FormatClock renders seconds as a zero-padded HH:MM:SS wall-clock string.
// Counts of 24 hours or more wrap around, e.g. 90000 renders as "01:00:00".
func FormatClock(seconds int64) string {
	return time.Unix(seconds, 0).UTC().Format("15:04:05")
}
