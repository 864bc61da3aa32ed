package domain

// TimeEntry represents a Clockify time entry in the domain.
// Timestamps are kept as the ISO-8601 text returned by the API.
type TimeEntry struct {
	ID          string
	Description string
	WorkspaceID string
	Start       string
	End         string // empty while the entry is still running
	Duration    string // ISO-8601 duration token, empty when absent
}
