package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/opencode-ai/osiview/internal/config"
)

var configForce bool

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)

	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing config file")
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the osiview config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Args:  cobra.NoArgs,
	// --config may name a file that does not exist yet.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(cfgFile); cfgFile != "" && err != nil {
			return loadConfig("")
		}
		return loadConfig(cfgFile)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configTargetPath()
		if _, err := os.Stat(path); err == nil && !configForce {
			return &PreflightError{
				Message:  fmt.Sprintf("config file already exists: %s", path),
				Hint:     "Pass --force to overwrite it",
				NextStep: "osiview config init --force",
			}
		} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to check %s: %w", path, err)
		}

		if err := config.DefaultConfig().Save(path); err != nil {
			return err
		}
		logger.Info().Str("path", path).Msg("config written")

		if IsStructuredOutput() {
			return WriteOutput(stdout, map[string]string{"path": path})
		}
		_, err := fmt.Fprintf(stdout, "Wrote %s\n", path)
		return err
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		if IsStructuredOutput() {
			return WriteOutput(stdout, cfg)
		}
		enc := yaml.NewEncoder(stdout)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("failed to encode config: %w", err)
		}
		return enc.Close()
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print where the config file is read from",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintln(stdout, configTargetPath())
		return err
	},
}

// configTargetPath is --config, then a discovered file, then the default location.
func configTargetPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	if path := config.FindConfigPath(); path != "" {
		return path
	}
	return config.DefaultConfigPath()
}
