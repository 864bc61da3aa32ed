package report

import (
	"sort"
	"strings"

	"clockify-report/internal/domain"
)

// Totals maps a calendar date (YYYY-MM-DD) to the seconds tracked on it.
type Totals map[string]int64

// Add accumulates seconds under key, creating the key if needed.
func (t Totals) Add(key string, seconds int64) {
	t[key] += seconds
}

// AddEntries folds every entry into t by its start date.
func (t Totals) AddEntries(entries []domain.TimeEntry) {
	for _, e := range entries {
		t.Add(DateKey(e.Start), ParseDuration(e.Duration))
	}
}

// Dates returns the keys of t in ascending order.
func (t Totals) Dates() []string {
	dates := make([]string, 0, len(t))
	for d := range t {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// Sum returns the seconds tracked across all dates.
func (t Totals) Sum() int64 {
	var sum int64
	for _, s := range t {
		sum += s
	}
	return sum
}

// Aggregate groups entries by start date and sums their durations.
func Aggregate(entries []domain.TimeEntry) Totals {
	t := make(Totals)
	t.AddEntries(entries)
	return t
}

// DateKey returns the date portion of an ISO-8601 timestamp, i.e. everything
// before the first "T".
func DateKey(timestamp string) string {
	date, _, _ := strings.Cut(timestamp, "T")
	return date
}
