// ABOUTME: CLI command to list the guest roster
// ABOUTME: Shows contact details, verification, and booking counts
package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pinkperl/concierge/internal/storage/sqlite"
)

// NewGuestsCmd creates the guests command
func NewGuestsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guests",
		Short: "List all known guests",
		Long: `List every guest the concierge has spoken with, most recently
active first.

Examples:
  concierge guests
  concierge guests --format json`,
		RunE: runGuests,
	}
}

func runGuests(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	users, err := sqlite.NewAdminStore(db).Users()
	if err != nil {
		return fmt.Errorf("listing guests: %w", err)
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(users, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	if len(users) == 0 {
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "No guests found\n")
		}
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "GUEST ID\tNAME\tPHONE\tVERIFIED\tBOOKINGS\tLAST SEEN\n")
	for _, u := range users {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
			truncate(u.UserID, 25),
			truncate(u.DisplayName(), 20),
			u.DisplayPhone(),
			u.DisplayVerified(),
			u.TotalBookings,
			formatTime(u.LastInteraction))
	}
	w.Flush()

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\nTotal: %d guest(s)\n", len(users))
	}

	return nil
}
