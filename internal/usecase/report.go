package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"clockify-report/internal/ports"
	"clockify-report/internal/report"
)

// ReportUseCase fetches the user's entries from every workspace and renders
// a per-entry table for each workspace followed by per-date totals.
type ReportUseCase struct {
	Log      *slog.Logger
	Client   ports.TimeTrackingClient
	Renderer ports.Renderer
}

// Run executes one report. Workspaces are visited in the order the service
// returns them; totals accumulate across all of them and are rendered last.
func (uc *ReportUseCase) Run(ctx context.Context) (report.Totals, error) {
	if uc.Client == nil || uc.Renderer == nil {
		return nil, errors.New("usecase not initialized: missing dependencies")
	}

	userID, err := uc.Client.UserID(ctx)
	if err != nil {
		return nil, err
	}
	workspaces, err := uc.Client.Workspaces(ctx)
	if err != nil {
		return nil, err
	}
	uc.Log.Info("fetched workspaces", slog.String("user_id", userID), slog.Int("count", len(workspaces)))

	totals := make(report.Totals)
	for _, ws := range workspaces {
		entries, err := uc.Client.TimeEntries(ctx, userID, ws.ID)
		if err != nil {
			return nil, err
		}
		uc.Log.Info("fetched time entries",
			slog.String("workspace_id", ws.ID),
			slog.String("workspace", ws.Name),
			slog.Int("count", len(entries)),
		)
		totals.AddEntries(entries)

		title := fmt.Sprintf("Workspace %s (%s)", ws.Name, ws.ID)
		if err := uc.Renderer.Display(report.EntryTable(title, report.EntryRows(entries))); err != nil {
			return nil, err
		}
	}

	if err := uc.Renderer.Display(report.SummaryTable(report.SummaryRows(totals))); err != nil {
		return nil, err
	}
	uc.Log.Info("report completed",
		slog.Int("workspaces", len(workspaces)),
		slog.Int("dates", len(totals)),
		slog.String("total", report.FormatClock(totals.Sum())),
	)
	return totals, nil
}
