package cli

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/opencode-ai/osiview/internal/db"
	"github.com/opencode-ai/osiview/internal/logging"
	"github.com/opencode-ai/osiview/internal/theme"
	"github.com/opencode-ai/osiview/internal/tui"
)

func init() {
	rootCmd.AddCommand(uiCmd)
}

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the OSI model TUI",
	Long:  "Launch the interactive OSI model visualizer. This is also what osiview runs with no subcommand.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd.Context())
	},
}

func runTUI(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if !IsInteractive() {
		return &PreflightError{
			Message:  "TUI requires an interactive terminal",
			Hint:     "Run without --non-interactive and with a TTY, or use CLI subcommands",
			NextStep: "osiview layers",
		}
	}

	cfg := GetConfig()

	// The alt screen owns the terminal, so the TUI logs to a file.
	tuiLogger, closer, err := logging.NewFile(cfg.Logging.File, logging.Options{Level: cfg.Logging.Level})
	if err != nil {
		return err
	}
	defer closer.Close()

	database, err := openDatabase(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	root := theme.NewClassList()
	resolver := newResolver(database, root, tuiLogger)

	return tui.RunWithConfig(ctx, tui.Config{
		Resolver:      resolver,
		Root:          root,
		HeaderVisible: cfg.UI.HeaderVisible,
		Logger:        tuiLogger,
	})
}

// newResolver wires a resolver to SQLite storage and the system signal.
// A nil root yields a headless resolver.
func newResolver(database *db.DB, root theme.Root, log zerolog.Logger) *theme.Resolver {
	env := theme.Environment{
		Root:   root,
		Signal: theme.SystemSignal(GetConfig().UI.SystemTheme),
	}
	var opts []theme.Option
	if database != nil {
		env.Store = theme.NewKeyValueStore(db.NewPreferenceRepository(database))
		opts = append(opts, theme.WithEventRepository(db.NewEventRepository(database)))
	}
	return theme.NewResolver(env, log, opts...)
}
