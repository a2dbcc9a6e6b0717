// Package cmd wires the taskboard command tree.
package cmd

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskboard/internal/app"
	"github.com/thenoetrevino/taskboard/internal/cli"
	boardcmd "github.com/thenoetrevino/taskboard/internal/cli/board"
	cardcmd "github.com/thenoetrevino/taskboard/internal/cli/card"
	columncmd "github.com/thenoetrevino/taskboard/internal/cli/column"
	"github.com/thenoetrevino/taskboard/internal/config"
	"github.com/thenoetrevino/taskboard/internal/database"
	"github.com/thenoetrevino/taskboard/internal/logging"
	"github.com/thenoetrevino/taskboard/internal/tracing"
)

// Annotations controlling what the root command opens before a subcommand runs
const (
	skipAppAnnotation    = "taskboard/skip-app"    // config only, no database
	skipConfigAnnotation = "taskboard/skip-config" // nothing at all
)

// runtime holds what the root command opens for its subcommands
type runtime struct {
	configPath string
	dbPath     string

	config   *config.Config
	db       *sql.DB
	app      *app.App
	closeLog func() error
}

// NewRootCmd builds the command tree. The returned close function releases
// everything opened while the command ran.
func NewRootCmd() (*cobra.Command, func() error) {
	rt := &runtime{}

	root := &cobra.Command{
		Use:   "taskboard",
		Short: "Taskboard - boards, columns and cards from the terminal",
		Long: `Taskboard manages boards of ordered columns. Cards enter a board's initial
column and advance one column at a time until they are finished or cancelled.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: rt.open,
	}

	root.PersistentFlags().StringVar(&rt.configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/taskboard/config.yaml)")
	root.PersistentFlags().StringVar(&rt.dbPath, "db", "", "Database file (overrides database.path)")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &cli.UsageError{Err: err}
	})

	root.AddCommand(boardcmd.BoardCmd())
	root.AddCommand(columncmd.ColumnCmd())
	root.AddCommand(cardcmd.CardCmd())
	root.AddCommand(newConfigCmd(rt))

	return root, rt.close
}

// Execute runs the command line and returns the process exit code
func Execute() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	root, closeFn := NewRootCmd()
	err := root.ExecuteContext(ctx)
	if closeErr := closeFn(); closeErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", closeErr)
	}

	var exitErr *cli.CodeError
	if err != nil && !errors.As(err, &exitErr) {
		// not reported by a command formatter: flag parsing, unknown commands, startup
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return cli.ExitCode(err)
}

func (rt *runtime) open(cmd *cobra.Command, _ []string) error {
	if cmd.Annotations[skipConfigAnnotation] != "" {
		return nil
	}

	cfg, err := config.Load(rt.configPath)
	if err != nil {
		return err
	}
	if rt.dbPath != "" {
		cfg.Database.Path = rt.dbPath
	}
	rt.config = cfg

	if cmd.Annotations[skipAppAnnotation] != "" {
		return nil
	}

	logger, closeLog, err := logging.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	rt.closeLog = closeLog

	provider, err := tracing.NewProvider(cfg.Tracing.Enabled, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	db, err := database.InitDB(cmd.Context(), cfg.Database.Path, logger)
	if err != nil {
		_ = provider.Shutdown(cmd.Context())
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	rt.db = db

	rt.app = app.New(db,
		app.WithLogger(logger),
		app.WithTracing(provider),
		app.WithConfig(cfg),
	)
	cmd.SetContext(cli.WithApp(cmd.Context(), rt.app))
	return nil
}

func (rt *runtime) close() error {
	var errs []error
	if rt.app != nil {
		rt.app.Logger.Debug("session finished", "metrics", rt.app.Metrics.Snapshot())
		errs = append(errs, rt.app.Close())
	}
	if rt.db != nil {
		errs = append(errs, rt.db.Close())
	}
	if rt.closeLog != nil {
		errs = append(errs, rt.closeLog())
	}
	return errors.Join(errs...)
}
