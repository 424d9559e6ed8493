// Package cli implements the osiview command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/opencode-ai/osiview/internal/config"
	"github.com/opencode-ai/osiview/internal/db"
	"github.com/opencode-ai/osiview/internal/logging"
)

var (
	cfgFile        string
	jsonOutput     bool
	jsonlOutput    bool
	yamlOutput     bool
	logLevel       string
	logFormat      string
	nonInteractive bool
	noColor        bool

	appConfig *config.Config
	logger    = zerolog.Nop()
	v         = config.NewViper()

	// stdout and stderr are swapped in tests.
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

var rootCmd = &cobra.Command{
	Use:   "osiview",
	Short: "Explore the seven layers of the OSI model",
	Long: `osiview is a terminal visualizer for the OSI reference model.

Run without arguments to open the interactive view, or use the subcommands
to print layer details and manage the persisted light/dark theme.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig(cfgFile)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd.Context())
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default $XDG_CONFIG_HOME/osiview/config.yaml)")
	flags.BoolVar(&jsonOutput, "json", false, "output JSON")
	flags.BoolVar(&jsonlOutput, "jsonl", false, "output JSON lines")
	flags.BoolVar(&yamlOutput, "yaml", false, "output YAML")
	flags.StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	flags.StringVar(&logFormat, "log-format", "", "log format (console, json)")
	flags.BoolVar(&nonInteractive, "non-interactive", false, "never prompt or open the TUI")
	flags.BoolVar(&noColor, "no-color", false, "disable colored output")

	bindFlags(v)
}

func bindFlags(target *viper.Viper) {
	flags := rootCmd.PersistentFlags()
	_ = target.BindPFlag("logging.level", flags.Lookup("log-level"))
	_ = target.BindPFlag("logging.format", flags.Lookup("log-format"))
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		printError(stderr, err)
	}
	return err
}

// loadConfig loads configuration from path and builds the CLI logger.
func loadConfig(path string) error {
	cfg, err := config.Load(v, path)
	if err != nil {
		return err
	}
	appConfig = cfg

	logger, err = logging.New(stderr, logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	if err != nil {
		return err
	}
	logger.Debug().Str("storage", cfg.Storage.Path).Msg("configuration loaded")
	return nil
}

// GetConfig returns the loaded configuration, or the defaults before load.
func GetConfig() *config.Config {
	if appConfig == nil {
		return config.DefaultConfig()
	}
	return appConfig
}

// SetViper replaces the viper instance. Used by tests.
func SetViper(replacement *viper.Viper) {
	v = replacement
	bindFlags(v)
}

func openDatabase(ctx context.Context) (*db.DB, error) {
	cfg := GetConfig()
	dbCfg := db.DefaultConfig(cfg.Storage.Path)
	dbCfg.BusyTimeoutMs = cfg.Storage.BusyTimeoutMs

	database, err := db.Open(ctx, dbCfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	logger.Debug().Str("path", database.Path()).Msg("using preference store")
	return database, nil
}

// PreflightError is a user-facing failure with a hint and next step.
type PreflightError struct {
	Message  string
	Hint     string
	NextStep string
}

func (e *PreflightError) Error() string {
	return e.Message
}

func printError(out io.Writer, err error) {
	var preflight *PreflightError
	if errors.As(err, &preflight) {
		fmt.Fprintf(out, "Error: %s\n", preflight.Message)
		if preflight.Hint != "" {
			fmt.Fprintf(out, "Hint: %s\n", preflight.Hint)
		}
		if preflight.NextStep != "" {
			fmt.Fprintf(out, "Next: %s\n", preflight.NextStep)
		}
		return
	}
	fmt.Fprintf(out, "Error: %v\n", err)
}
