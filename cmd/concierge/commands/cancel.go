// ABOUTME: CLI command to cancel a booking by kind and id
// ABOUTME: Marks the row cancelled without touching booking counters
package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pinkperl/concierge/internal/models"
	"github.com/pinkperl/concierge/internal/storage/sqlite"
)

// NewCancelCmd creates the cancel command
func NewCancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <room|restaurant> <booking-id>",
		Short: "Cancel a booking",
		Long: `Mark a booking as cancelled. The booking stays on record and the
guest's lifetime booking count is unchanged. Cancelling an unknown id
is a no-op.

Examples:
  concierge cancel room 42
  concierge cancel restaurant 7`,
		Args: cobra.ExactArgs(2),
		RunE: runCancel,
	}
}

func runCancel(cmd *cobra.Command, args []string) error {
	var kind models.BookingKind
	switch args[0] {
	case "room":
		kind = models.BookingKindRoom
	case "restaurant":
		kind = models.BookingKindRestaurant
	default:
		return fmt.Errorf("unknown booking kind %q (want room or restaurant)", args[0])
	}

	id, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid booking id %q", args[1])
	}

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := sqlite.NewBookingStore(db).Cancel(id, kind); err != nil {
		return fmt.Errorf("cancelling booking: %w", err)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Cancelled %s booking %d\n", args[0], id)
	}

	return nil
}
