package report

import "clockify-report/internal/domain"

// EntryRow is one line of the per-entry report.
type EntryRow struct {
	Description string
	WorkspaceID string
	Start       string
	End         string
	Duration    string
}

// SummaryRow is one line of the per-date report.
type SummaryRow struct {
	Date  string
	Total string
}

// Table is the renderer-neutral shape of a report.
type Table struct {
	Title   string
	Columns []string
	Rows    [][]string
}

// EntryRows builds one row per entry, preserving input order.
func EntryRows(entries []domain.TimeEntry) []EntryRow {
	rows := make([]EntryRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, EntryRow{
			Description: e.Description,
			WorkspaceID: e.WorkspaceID,
			Start:       e.Start,
			End:         e.End,
			Duration:    FormatClock(ParseDuration(e.Duration)),
		})
	}
	return rows
}

// SummaryRows builds one row per date in ascending date order.
func SummaryRows(totals Totals) []SummaryRow {
	rows := make([]SummaryRow, 0, len(totals))
	for _, date := range totals.Dates() {
		rows = append(rows, SummaryRow{Date: date, Total: FormatClock(totals[date])})
	}
	return rows
}

// EntryTable shapes entry rows for display.
func EntryTable(title string, rows []EntryRow) Table {
	t := Table{
		Title:   title,
		Columns: []string{"description", "workspace_id", "start", "end", "duration"},
		Rows:    make([][]string, 0, len(rows)),
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{r.Description, r.WorkspaceID, r.Start, r.End, r.Duration})
	}
	return t
}

// SummaryTable shapes summary rows for display.
func SummaryTable(rows []SummaryRow) Table {
	t := Table{
		Title:   "Totals per date",
		Columns: []string{"date", "total"},
		Rows:    make([][]string, 0, len(rows)),
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{r.Date, r.Total})
	}
	return t
}
