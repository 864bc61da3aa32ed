package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clockify-report/internal/domain"
)

func TestEntryRows_PreservesOrder(t *testing.T) {
	entries := []domain.TimeEntry{
		{Description: "b", WorkspaceID: "ws1", Start: "2024-01-02T09:00:00Z", End: "2024-01-02T10:30:15Z", Duration: "PT1H30M15S"},
		{Description: "a", WorkspaceID: "ws1", Start: "2024-01-01T09:00:00Z"},
		{Description: "c", WorkspaceID: "ws2", Start: "2024-01-03T09:00:00Z", End: "2024-01-03T09:00:10Z", Duration: "PT10S"},
	}

	rows := EntryRows(entries)

	require.Len(t, rows, len(entries))
	assert.Equal(t, EntryRow{
		Description: "b",
		WorkspaceID: "ws1",
		Start:       "2024-01-02T09:00:00Z",
		End:         "2024-01-02T10:30:15Z",
		Duration:    "01:30:15",
	}, rows[0])
	assert.Equal(t, "a", rows[1].Description)
	assert.Empty(t, rows[1].End)
	assert.Equal(t, "00:00:00", rows[1].Duration)
	assert.Equal(t, "c", rows[2].Description)
	assert.Equal(t, "00:00:10", rows[2].Duration)
}

func TestEntryRows_Empty(t *testing.T) {
	assert.Empty(t, EntryRows(nil))
}

func TestSummaryRows_OneRowPerDate(t *testing.T) {
	totals := Totals{"2024-01-02": 3600, "2024-01-01": 10800, "2024-01-03": 0}

	rows := SummaryRows(totals)

	assert.Equal(t, []SummaryRow{
		{Date: "2024-01-01", Total: "03:00:00"},
		{Date: "2024-01-02", Total: "01:00:00"},
		{Date: "2024-01-03", Total: "00:00:00"},
	}, rows)
	assert.Len(t, totals, 3, "input must not be mutated")
}

func TestTables(t *testing.T) {
	et := EntryTable("Workspace Main", []EntryRow{{Description: "x", WorkspaceID: "w", Start: "s", End: "e", Duration: "00:00:01"}})
	assert.Equal(t, "Workspace Main", et.Title)
	assert.Equal(t, []string{"description", "workspace_id", "start", "end", "duration"}, et.Columns)
	assert.Equal(t, [][]string{{"x", "w", "s", "e", "00:00:01"}}, et.Rows)

	st := SummaryTable([]SummaryRow{{Date: "2024-01-01", Total: "01:00:00"}})
	assert.Equal(t, []string{"date", "total"}, st.Columns)
	assert.Equal(t, [][]string{{"2024-01-01", "01:00:00"}}, st.Rows)
}
