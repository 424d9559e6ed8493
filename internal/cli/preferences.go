package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/osiview/internal/db"
	"github.com/opencode-ai/osiview/internal/models"
)

func init() {
	rootCmd.AddCommand(preferencesCmd)
}

var preferencesCmd = &cobra.Command{
	Use:     "preferences",
	Aliases: []string{"prefs"},
	Short:   "List stored preferences",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext(cmd)

		database, err := openDatabase(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		prefs, err := db.NewPreferenceRepository(database).List(ctx)
		if err != nil {
			return err
		}
		if prefs == nil {
			prefs = []*models.Preference{}
		}

		if IsStructuredOutput() {
			return WriteOutput(stdout, prefs)
		}
		if len(prefs) == 0 {
			_, err := fmt.Fprintf(stdout, "No preferences stored in %s\n", database.Path())
			return err
		}

		rows := make([][]string, 0, len(prefs))
		for _, pref := range prefs {
			rows = append(rows, []string{pref.Key, pref.Value, pref.UpdatedAt.Local().Format("2006-01-02 15:04:05")})
		}
		return writeTable(stdout, []string{"KEY", "VALUE", "UPDATED"}, rows)
	},
}
