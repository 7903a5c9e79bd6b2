// ABOUTME: CLI command to list hotel bookings with guest identity
// ABOUTME: Covers room stays and restaurant reservations, table or JSON
package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pinkperl/concierge/internal/storage/sqlite"
)

var bookingsKind string

// NewBookingsCmd creates the bookings command
func NewBookingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookings",
		Short: "List bookings across all guests",
		Long: `List room stays and restaurant reservations, newest first,
joined with the booking guest's contact details.

Examples:
  concierge bookings
  concierge bookings --kind room
  concierge bookings --kind restaurant --format json`,
		RunE: runBookings,
	}

	cmd.Flags().StringVar(&bookingsKind, "kind", "all", "Booking kind to show (all, room, restaurant)")

	return cmd
}

func runBookings(cmd *cobra.Command, args []string) error {
	if bookingsKind != "all" && bookingsKind != "room" && bookingsKind != "restaurant" {
		return fmt.Errorf("unknown booking kind %q (want all, room, or restaurant)", bookingsKind)
	}

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	admin := sqlite.NewAdminStore(db)

	var rooms []sqlite.RoomBookingRow
	var restaurants []sqlite.RestaurantBookingRow

	if bookingsKind != "restaurant" {
		rooms, err = admin.RoomBookingsWithGuests()
		if err != nil {
			return fmt.Errorf("listing room bookings: %w", err)
		}
	}
	if bookingsKind != "room" {
		restaurants, err = admin.RestaurantBookingsWithGuests()
		if err != nil {
			return fmt.Errorf("listing restaurant bookings: %w", err)
		}
	}

	if outputFormat == "json" {
		payload := map[string]any{
			"room_bookings":       rooms,
			"restaurant_bookings": restaurants,
		}
		jsonData, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	out := cmd.OutOrStdout()

	if bookingsKind != "restaurant" {
		if !quiet {
			fmt.Fprintf(out, "Room bookings:\n")
		}
		if len(rooms) == 0 {
			fmt.Fprintf(out, "  (none)\n")
		} else {
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "ID\tGUEST\tROOM\tCHECK-IN\tCHECK-OUT\tADULTS\tCHILDREN\tSTATUS\tCREATED\n")
			for _, b := range rooms {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\t%d\t%s\t%s\n",
					b.BookingID,
					truncate(orDefault(b.GuestName, "(unknown)"), 20),
					b.RoomType,
					b.CheckInDate,
					b.CheckOutDate,
					b.NumAdults,
					b.NumChildren,
					b.Status,
					formatTime(b.CreatedAt))
			}
			w.Flush()
		}
	}

	if bookingsKind != "room" {
		if !quiet {
			fmt.Fprintf(out, "Restaurant bookings:\n")
		}
		if len(restaurants) == 0 {
			fmt.Fprintf(out, "  (none)\n")
		} else {
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "ID\tGUEST\tRESTAURANT\tDATE\tTIME\tGUESTS\tSTATUS\tCREATED\n")
			for _, b := range restaurants {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
					b.BookingID,
					truncate(orDefault(b.GuestName, "(unknown)"), 20),
					truncate(b.RestaurantName, 25),
					b.BookingDate,
					b.BookingTime,
					b.NumGuests,
					b.Status,
					formatTime(b.CreatedAt))
			}
			w.Flush()
		}
	}

	if !quiet {
		fmt.Fprintf(out, "\nTotal: %d booking(s)\n", len(rooms)+len(restaurants))
	}

	return nil
}
