package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"clockify-report/internal/adapter/clockify"
	"clockify-report/internal/adapter/render"
	"clockify-report/internal/config"
	"clockify-report/internal/ports"
	"clockify-report/internal/usecase"
)

// Output formats accepted by Options.Format.
const (
	FormatTable = "table"
	FormatYAML  = "yaml"
)

// Options control how the report is rendered.
type Options struct {
	Out     io.Writer
	Format  string
	NoColor bool
}

// App wires adapters and use cases.
type App struct {
	log      *slog.Logger
	uc       *usecase.ReportUseCase
	renderer ports.Renderer
}

func New(log *slog.Logger, cfg config.Config, opts Options) (*App, error) {
	renderer, err := newRenderer(opts)
	if err != nil {
		return nil, err
	}
	client := clockify.NewClient(cfg.Clockify.BaseURL, cfg.Clockify.APIKey, cfg.Clockify.Timeout, log)

	uc := &usecase.ReportUseCase{
		Log:      log,
		Client:   client,
		Renderer: renderer,
	}
	return &App{log: log, uc: uc, renderer: renderer}, nil
}

// RunOnce fetches entries and renders the report.
func (a *App) RunOnce(ctx context.Context) error {
	_, err := a.uc.Run(ctx)
	return err
}

// Close flushes renderers that buffer output.
func (a *App) Close() error {
	if c, ok := a.renderer.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func newRenderer(opts Options) (ports.Renderer, error) {
	switch opts.Format {
	case "", FormatTable:
		return render.NewTable(opts.Out, !opts.NoColor && render.IsTerminal(opts.Out)), nil
	case FormatYAML:
		return render.NewYAML(opts.Out), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want %s or %s)", opts.Format, FormatTable, FormatYAML)
	}
}
