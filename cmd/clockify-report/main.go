package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"clockify-report/internal/app"
	"clockify-report/internal/config"
	"clockify-report/internal/domain"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := execute(ctx, newRootCmd()); err != nil {
		stop()
		os.Exit(1)
	}
}

// loggedError marks an error the command has already reported through slog.
type loggedError struct{ err error }

func (e *loggedError) Error() string { return e.err.Error() }
func (e *loggedError) Unwrap() error { return e.err }

// execute runs cmd and prints errors cobra raised before RunE, such as unknown
// flags or unexpected arguments, which never reach the logger.
func execute(ctx context.Context, cmd *cobra.Command) error {
	err := cmd.ExecuteContext(ctx)
	var logged *loggedError
	if err != nil && !errors.As(err, &logged) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		fmt.Fprintf(cmd.ErrOrStderr(), "Run '%s --help' for usage.\n", cmd.CommandPath())
	}
	return err
}

func newRootCmd() *cobra.Command {
	var (
		output  string
		noColor bool
		envFile string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "clockify-report",
		Short: "Print Clockify time entries and per-date totals",
		Long: `clockify-report fetches your time entries from every Clockify workspace,
prints one table of entries per workspace and a final table of totals per date.

The API key is read from CLOCKIFY_API_KEY (or API_KEY), optionally from a .env file.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Logger
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
			logger := slog.New(handler).With(slog.String("run_id", uuid.NewString()))
			slog.SetDefault(logger)

			err := run(cmd, logger, envFile, app.Options{
				Out:     cmd.OutOrStdout(),
				Format:  output,
				NoColor: noColor,
			})
			if err == nil {
				return nil
			}
			if errors.Is(err, domain.ErrAuthentication) {
				logger.Error("authentication failed", slog.String("error", err.Error()))
			} else {
				logger.Error("report failed", slog.String("error", err.Error()))
			}
			return &loggedError{err: err}
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", app.FormatTable, "Output format: table or yaml")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored table output")
	cmd.Flags().StringVar(&envFile, "env-file", ".env", "Dotenv file to load before reading the environment")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	return cmd
}

func run(cmd *cobra.Command, logger *slog.Logger, envFile string, opts app.Options) (err error) {
	if err := config.LoadEnvFile(envFile); err != nil {
		return err
	}
	// Config; a missing API key stops the run before any request is made.
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	application, err := app.New(logger, cfg, opts)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := application.Close(); err == nil {
			err = cerr
		}
	}()
	return application.RunOnce(cmd.Context())
}
