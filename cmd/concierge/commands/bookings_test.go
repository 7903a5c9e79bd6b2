// ABOUTME: End-to-end tests for the bookings, history, and cancel commands
// ABOUTME: Runs commands against a seeded temp database via CONCIERGE_DB_PATH

package commands

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pinkperl/concierge/internal/models"
	"github.com/pinkperl/concierge/internal/storage/sqlite"
)

// seedStore creates a temp database with one guest, one room booking,
// one restaurant booking, and a short conversation.
func seedStore(t *testing.T) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "hotel.db")
	t.Setenv("CONCIERGE_DB_PATH", path)

	db, err := sqlite.Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer db.Close()

	users := sqlite.NewUserStore(db)
	if err := users.Upsert("u1", "Asha Rao", "+91-98x", "asha@example.com", nil); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	bookings := sqlite.NewBookingStore(db)
	if _, err := bookings.InsertRoom(&models.RoomBooking{
		UserID:       "u1",
		RoomType:     "deluxe",
		CheckInDate:  "2026-09-01",
		CheckOutDate: "2026-09-03",
		NumAdults:    2,
	}); err != nil {
		t.Fatalf("InsertRoom() error = %v", err)
	}
	if _, err := bookings.InsertRestaurant(&models.RestaurantBooking{
		UserID:         "u1",
		RestaurantName: "Saffron Terrace",
		BookingDate:    "2026-09-02",
		BookingTime:    "19:30",
		NumGuests:      2,
	}); err != nil {
		t.Fatalf("InsertRestaurant() error = %v", err)
	}

	conversations := sqlite.NewConversationStore(db)
	if err := conversations.Append("u1", "I'd like a deluxe room", models.SpeakerUser); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if err := conversations.Append("u1", "Of course, booking that now", models.SpeakerAgent); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
}

// runCLI executes the root command with args and returns combined output.
func runCLI(t *testing.T, args ...string) string {
	t.Helper()

	// Reset flags shared across invocations in this package.
	quiet = false
	outputFormat = "auto"
	bookingsKind = "all"
	historyLimit = 10

	var buf bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute(%v) error = %v", args, err)
	}
	return buf.String()
}

func TestBookingsCmd_ListsBothKinds(t *testing.T) {
	seedStore(t)

	out := runCLI(t, "bookings")

	for _, want := range []string{"Asha Rao", "deluxe", "Saffron Terrace", "Total: 2 booking(s)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestBookingsCmd_KindFilter(t *testing.T) {
	seedStore(t)

	out := runCLI(t, "bookings", "--kind", "room")

	if !strings.Contains(out, "deluxe") {
		t.Errorf("room booking missing from output:\n%s", out)
	}
	if strings.Contains(out, "Saffron Terrace") {
		t.Errorf("restaurant booking should be filtered out:\n%s", out)
	}
}

func TestBookingsCmd_UnknownKind(t *testing.T) {
	seedStore(t)

	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"bookings", "--kind", "spa"})
	if err := cmd.Execute(); err == nil {
		t.Error("Execute() expected error for unknown kind")
	}
}

func TestHistoryCmd(t *testing.T) {
	seedStore(t)

	out := runCLI(t, "history", "u1")

	if !strings.Contains(out, "User: I'd like a deluxe room") {
		t.Errorf("user turn missing from output:\n%s", out)
	}
	if !strings.Contains(out, "Agent: Of course, booking that now") {
		t.Errorf("agent turn missing from output:\n%s", out)
	}
	// Chronological order: user turn precedes agent turn.
	if strings.Index(out, "User:") > strings.Index(out, "Agent:") {
		t.Errorf("turns out of order:\n%s", out)
	}
}

func TestCancelCmd_ThenListShowsCancelled(t *testing.T) {
	seedStore(t)

	out := runCLI(t, "cancel", "room", "1")
	if !strings.Contains(out, "Cancelled room booking 1") {
		t.Errorf("cancel confirmation missing:\n%s", out)
	}

	out = runCLI(t, "bookings", "--kind", "room")
	if !strings.Contains(out, models.StatusCancelled) {
		t.Errorf("cancelled status missing from listing:\n%s", out)
	}
}

func TestGuestsCmd(t *testing.T) {
	seedStore(t)

	out := runCLI(t, "guests")

	if !strings.Contains(out, "Asha Rao") {
		t.Errorf("guest missing from roster:\n%s", out)
	}
	if !strings.Contains(out, "Yes") {
		t.Errorf("verified guest should show Yes:\n%s", out)
	}
}
