package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"rates-history/internal"
	"rates-history/internal/privatbank"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

const (
	exitOK          = 0
	exitFailure     = 1
	exitUsage       = 2
	exitInterrupted = 130
)

type deps struct {
	client internal.RatesClient
	now    func() time.Time
	config func() (Config, error)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr, deps{})
	stop()
	os.Exit(code)
}

func execute(ctx context.Context, args []string, stdout, stderr io.Writer, d deps) int {
	if args == nil {
		// cobra falls back to os.Args for nil.
		args = []string{}
	}

	cmd := newRootCmd(d)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %s\n", err)
		return exitCode(ctx, err)
	}
	return exitOK
}

func exitCode(ctx context.Context, err error) int {
	var verr *internal.ValidationError
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &verr):
		return exitUsage
	case ctx.Err() != nil:
		return exitInterrupted
	default:
		return exitFailure
	}
}

func newRootCmd(d deps) *cobra.Command {
	if d.now == nil {
		d.now = time.Now
	}
	if d.config == nil {
		d.config = LoadConfig
	}

	cmd := &cobra.Command{
		Use:   "rates <days>",
		Short: "Print PrivatBank NBU exchange rates for the last days (up to 10)",
		Long: "Fetches PrivatBank historical exchange rates for today and the previous days\n" +
			"and prints them as a JSON array of {\"DD.MM.YYYY\": {CURRENCY: {sale, purchase}}}.",
		Version:       "v1.0.0",
		Args:          exactlyOneArg,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], d)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return internal.Invalid("usage", err.Error())
	})

	return cmd
}

func exactlyOneArg(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return internal.Invalid("usage", fmt.Sprintf("Expected exactly one argument <days>, got %d.", len(args)))
	}
	return nil
}

func run(cmd *cobra.Command, rawDays string, d deps) error {
	days, err := strconv.Atoi(strings.TrimSpace(rawDays))
	if err != nil {
		return internal.Invalid("invalid_days", fmt.Sprintf("Days must be an integer, got %q.", rawDays))
	}
	if err := internal.ValidateDays(days); err != nil {
		return err
	}

	cfg, err := d.config()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.LogLevel})).
		With("run_id", uuid.NewString())

	client := d.client
	if client == nil {
		client = privatbank.New(cfg.RequestTimeout)
	}

	history := internal.NewHistory(internal.NewFetcher(client, cfg.MaxConcurrency, logger))

	ref := d.now()
	logger.Info("collecting rates", "days", days, "from", internal.NewDateKey(ref))

	result, err := history.Collect(cmd.Context(), ref, days)
	if err != nil {
		return err
	}

	if err := json.NewEncoder(cmd.OutOrStdout()).Encode(result); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	logger.Info("rates printed", "dates", len(result))
	return nil
}
