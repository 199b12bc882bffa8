package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"board-cli/internal/config"
	"board-cli/internal/format"
	"board-cli/internal/templates"
	"board-cli/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	ConfigPath string
	LogLevel   string
	LogFile    string
	Theme      string
	Templates  string
	PrettyJSON bool
	Format     string

	cfg     *config.Config
	logger  *slog.Logger
	logFile io.Closer
}

func NewRootCmd() *cobra.Command {
	return newRootCmd(&App{})
}

func newRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "board",
		Short:        "Project board: a form plus active and finished lists",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive board
  board

  # Replay a script headlessly and print the board
  board render --script actions.yaml --format edn

  # Key bindings
  board docs keys --raw
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			return runTUI(app)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.prepare(cmd)
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", envOr("BOARD_CONFIG", ""), "Path to a YAML config file (default: ~/.config/board/config.yaml when present)")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", "", "Log level (debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&app.LogFile, "log-file", "", "Append logs to this file (logs are discarded otherwise)")
	cmd.PersistentFlags().StringVar(&app.Theme, "theme", "", "TUI theme (auto|light|dark)")
	cmd.PersistentFlags().StringVar(&app.Templates, "templates", "", "Path to document markup overriding the embedded templates")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", "", "Output format (json|edn|yaml)")

	cmd.AddCommand(newRenderCmd(app))
	cmd.AddCommand(newDocsCmd(app))
	cmd.AddCommand(newVersionCmd(app))

	closeAfterRun(app, cmd)
	return cmd
}

// closeAfterRun wraps every RunE so the log file is closed on success and on error.
// cobra skips PersistentPostRunE when RunE fails.
func closeAfterRun(app *App, cmd *cobra.Command) {
	if run := cmd.RunE; run != nil {
		cmd.RunE = func(cmd *cobra.Command, args []string) (err error) {
			defer func() { err = errors.Join(err, app.close()) }()
			return run(cmd, args)
		}
	}
	for _, sub := range cmd.Commands() {
		closeAfterRun(app, sub)
	}
}

// prepare layers flags over the loaded config and opens the logger.
func (app *App) prepare(cmd *cobra.Command) error {
	cfg, err := config.NewLoader(slog.New(slog.NewTextHandler(io.Discard, nil))).Load(app.ConfigPath)
	if err != nil {
		return writeErr(cmd, err)
	}
	flags := cmd.Flags()
	cfg.Merge(&config.Config{
		LogLevel:  changed(flags.Changed("log-level"), app.LogLevel),
		LogFile:   changed(flags.Changed("log-file"), app.LogFile),
		Theme:     changed(flags.Changed("theme"), app.Theme),
		Templates: changed(flags.Changed("templates"), app.Templates),
		Format:    changed(flags.Changed("format"), app.Format),
	})
	if err := cfg.Validate(); err != nil {
		return writeErr(cmd, err)
	}
	app.cfg = cfg

	logger, closer, err := newLogger(cfg)
	if err != nil {
		return writeErr(cmd, err)
	}
	app.logger, app.logFile = logger, closer
	app.logger.Debug("config resolved", "format", cfg.Format, "theme", cfg.Theme, "templates", cfg.Templates)
	return nil
}

func (app *App) close() error {
	if app.logFile == nil {
		return nil
	}
	err := app.logFile.Close()
	app.logFile = nil
	return err
}

func changed(set bool, v string) string {
	if !set {
		return ""
	}
	return v
}

func newLogger(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	if cfg.LogFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), nil, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})), f, nil
}

func loadMarkup(app *App) (string, error) {
	return templates.Load(app.cfg.Templates)
}

func runTUI(app *App) error {
	markup, err := loadMarkup(app)
	if err != nil {
		return err
	}
	app.logger.Info("starting tui")
	return tui.Run(tui.Options{Markup: markup, Theme: app.cfg.Theme, Logger: app.logger})
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.cfg.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
