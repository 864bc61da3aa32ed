package ports

import (
	"context"

	"clockify-report/internal/domain"
	"clockify-report/internal/report"
)

// TimeTrackingClient defines methods to fetch the user, workspaces and entries
// from the time-tracking service.
type TimeTrackingClient interface {
	UserID(ctx context.Context) (string, error)
	Workspaces(ctx context.Context) ([]domain.Workspace, error)
	TimeEntries(ctx context.Context, userID, workspaceID string) ([]domain.TimeEntry, error)
}

// Renderer displays a table of report rows.
type Renderer interface {
	Display(table report.Table) error
}
