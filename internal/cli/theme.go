package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/osiview/internal/db"
	"github.com/opencode-ai/osiview/internal/models"
	"github.com/opencode-ai/osiview/internal/theme"
	"github.com/opencode-ai/osiview/internal/tui/components"
	"github.com/opencode-ai/osiview/internal/tui/styles"
)

var historyLimit int

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.AddCommand(themeGetCmd)
	themeCmd.AddCommand(themeSetCmd)
	themeCmd.AddCommand(themeToggleCmd)
	themeCmd.AddCommand(themeResetCmd)
	themeCmd.AddCommand(themeHistoryCmd)

	themeHistoryCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum number of changes to show")
}

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show or change the light/dark theme",
	Long: `Show or change the persisted theme.

With no stored choice the theme follows the system color scheme
(ui.system_theme, OSIVIEW_COLOR_SCHEME, the desktop setting, then the
terminal background) and falls back to light.`,
}

var themeGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the active theme and where it came from",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withResolver(cmd.Context(), func(ctx context.Context, r *theme.Resolver) error {
			return writeThemeStatus(r.Resolve(ctx))
		})
	},
}

var themeSetCmd = &cobra.Command{
	Use:       "set <light|dark>",
	Short:     "Persist an explicit theme",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(theme.Light), string(theme.Dark)},
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := theme.ParseTheme(args[0])
		if err != nil {
			return &PreflightError{
				Message:  err.Error(),
				Hint:     "Valid themes are light and dark",
				NextStep: "osiview theme set dark",
			}
		}
		return withResolver(cmd.Context(), func(ctx context.Context, r *theme.Resolver) error {
			r.ResolveInitial(ctx)
			if err := r.Apply(ctx, t); err != nil {
				return err
			}
			return writeThemeStatus(theme.Resolution{Theme: t, Source: theme.SourcePersisted})
		})
	},
}

var themeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Switch between light and dark and persist the result",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withResolver(cmd.Context(), func(ctx context.Context, r *theme.Resolver) error {
			next := r.ResolveInitial(ctx).Toggle()
			if err := r.Apply(ctx, next); err != nil {
				return err
			}
			return writeThemeStatus(theme.Resolution{Theme: next, Source: theme.SourcePersisted})
		})
	},
}

var themeResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the stored theme and follow the system again",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withResolver(cmd.Context(), func(ctx context.Context, r *theme.Resolver) error {
			r.ResolveInitial(ctx)
			res, err := r.Reset(ctx)
			if err != nil {
				return err
			}
			return writeThemeStatus(res)
		})
	},
}

var themeHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded theme changes, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext(cmd)

		database, err := openDatabase(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		changes, err := themeHistory(ctx, db.NewEventRepository(database), historyLimit)
		if err != nil {
			return err
		}

		if IsStructuredOutput() {
			return WriteOutput(stdout, changes)
		}
		if len(changes) == 0 {
			fmt.Fprintln(stdout, components.EmptyThemeHistory().Render(styles.DefaultStyles()))
			return nil
		}

		rows := make([][]string, 0, len(changes))
		for _, c := range changes {
			rows = append(rows, []string{
				c.Timestamp,
				formatEventType(c.Type),
				orDash(c.Previous),
				orDash(c.Current),
			})
		}
		return writeTable(stdout, []string{"TIME", "EVENT", "FROM", "TO"}, rows)
	},
}

// ThemeStatus is the output of the theme subcommands.
type ThemeStatus struct {
	Theme  theme.Theme  `json:"theme" yaml:"theme"`
	Source theme.Source `json:"source" yaml:"source"`
	Class  string       `json:"class" yaml:"class"`
	Stored bool         `json:"stored" yaml:"stored"`
}

// ThemeChange is one row of theme history.
type ThemeChange struct {
	ID        string `json:"id" yaml:"id"`
	Timestamp string `json:"timestamp" yaml:"timestamp"`
	Type      string `json:"type" yaml:"type"`
	Previous  string `json:"previous,omitempty" yaml:"previous,omitempty"`
	Current   string `json:"current" yaml:"current"`
}

func writeThemeStatus(res theme.Resolution) error {
	status := ThemeStatus{
		Theme:  res.Theme,
		Source: res.Source,
		Class:  res.Theme.Class(),
		Stored: res.Source == theme.SourcePersisted,
	}
	if IsStructuredOutput() {
		return WriteOutput(stdout, status)
	}
	return writeTable(stdout, nil, [][]string{
		{"Theme:", status.Theme.String()},
		{"Source:", formatThemeSource(status.Source)},
		{"Stored:", formatYesNo(status.Stored)},
	})
}

// withResolver opens storage and runs fn with a resolver over a detached
// root, so the CLI resolves exactly like the TUI without drawing anything.
func withResolver(ctx context.Context, fn func(context.Context, *theme.Resolver) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	database, err := openDatabase(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	return fn(ctx, newResolver(database, theme.NewClassList(), logger))
}

func themeHistory(ctx context.Context, repo *db.EventRepository, limit int) ([]ThemeChange, error) {
	entityType := models.EntityTypePreference
	key := theme.StorageKey
	events, err := repo.Query(ctx, db.EventQuery{
		EntityType: &entityType,
		EntityID:   &key,
		Limit:      limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load theme history: %w", err)
	}

	changes := make([]ThemeChange, 0, len(events))
	for _, event := range events {
		change := ThemeChange{
			ID:        event.ID,
			Timestamp: event.Timestamp.Local().Format("2006-01-02 15:04:05"),
			Type:      string(event.Type),
		}
		var payload models.ThemeChangedPayload
		if len(event.Payload) > 0 {
			if err := json.Unmarshal(event.Payload, &payload); err != nil {
				logger.Warn().Err(err).Str("event_id", event.ID).Msg("skipping malformed theme event")
				continue
			}
		}
		change.Previous = payload.Previous
		change.Current = payload.Current
		changes = append(changes, change)
	}
	return changes, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

