// ABOUTME: CLI command to show a guest's conversation history
// ABOUTME: Prints recent turns in chronological order
package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pinkperl/concierge/internal/storage/sqlite"
)

var historyLimit int

// NewHistoryCmd creates the history command
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history <guest-id>",
		Short: "Show a guest's recent conversation",
		Long: `Show the most recent conversation turns for a guest, oldest
first.

Examples:
  concierge history u1
  concierge history u1 --limit 20
  concierge history u1 --format json`,
		Args: cobra.ExactArgs(1),
		RunE: runHistory,
	}

	cmd.Flags().IntVar(&historyLimit, "limit", 10, "Maximum number of turns to show")

	return cmd
}

func runHistory(cmd *cobra.Command, args []string) error {
	if historyLimit <= 0 {
		return fmt.Errorf("limit must be positive, got %d", historyLimit)
	}

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	turns, err := sqlite.NewConversationStore(db).Recent(args[0], historyLimit)
	if err != nil {
		return fmt.Errorf("loading conversation: %w", err)
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(turns, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	if len(turns) == 0 {
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "No conversation recorded for %s\n", args[0])
		}
		return nil
	}

	for _, t := range turns {
		fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s: %s\n",
			t.Timestamp.Format("2006-01-02 15:04"), t.Speaker, t.Message)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\nTotal: %d turn(s)\n", len(turns))
	}

	return nil
}
