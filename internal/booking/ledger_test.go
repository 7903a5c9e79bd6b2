// ABOUTME: Tests for the booking ledger and lifetime counter upkeep
// ABOUTME: Covers counter correctness across kinds and cancellation behavior
package booking

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/pinkperl/concierge/internal/models"
	"github.com/pinkperl/concierge/internal/storage/sqlite"
)

func newLedgerFixture(t *testing.T) (*sqlite.DB, *Ledger) {
	t.Helper()

	db, err := sqlite.OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := sqlite.NewUserStore(db).Upsert("guest-1", "Asha", "999", "", nil); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	return db, NewLedger(db, log.New(io.Discard))
}

func TestCounterAcrossKinds(t *testing.T) {
	db, ledger := newLedgerFixture(t)

	// Two room bookings and one restaurant booking
	for i := 0; i < 2; i++ {
		if _, err := ledger.CreateRoom("guest-1", "Deluxe", "2025-10-15", "2025-10-18", 2, 0, ""); err != nil {
			t.Fatalf("CreateRoom() error = %v", err)
		}
	}
	if _, err := ledger.CreateRestaurant("guest-1", "Surahi", "2025-10-16", "20:00", 4, ""); err != nil {
		t.Fatalf("CreateRestaurant() error = %v", err)
	}

	user, err := sqlite.NewUserStore(db).Get("guest-1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if user.TotalBookings != 3 {
		t.Errorf("TotalBookings = %d, want 3", user.TotalBookings)
	}
}

func TestCancellationDoesNotDecrementCounter(t *testing.T) {
	db, ledger := newLedgerFixture(t)

	id, err := ledger.CreateRoom("guest-1", "Deluxe", "2025-10-15", "2025-10-18", 2, 0, "")
	if err != nil {
		t.Fatalf("CreateRoom() error = %v", err)
	}
	if err := ledger.Cancel(id, models.BookingKindRoom); err != nil {
		t.Fatalf("Cancel() error = %v", err)
	}

	user, err := sqlite.NewUserStore(db).Get("guest-1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	// The counter tracks creations, not live bookings
	if user.TotalBookings != 1 {
		t.Errorf("TotalBookings = %d, want 1 after cancellation", user.TotalBookings)
	}
}

func TestCancelUnknownIDIsNoOp(t *testing.T) {
	_, ledger := newLedgerFixture(t)

	if err := ledger.Cancel(9999, models.BookingKindRoom); err != nil {
		t.Errorf("Cancel() on unknown id error = %v", err)
	}
}

func TestGuestBookingLifecycle(t *testing.T) {
	db, ledger := newLedgerFixture(t)
	users := sqlite.NewUserStore(db)

	// Fresh guest with profile saved: verified immediately
	user, err := users.Get("guest-1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !user.IsVerified {
		t.Fatal("guest with name and phone should be verified")
	}

	id, err := ledger.CreateRoom("guest-1", "Deluxe", "2025-10-15", "2025-10-18", 2, 0, "")
	if err != nil {
		t.Fatalf("CreateRoom() error = %v", err)
	}
	if id != 1 {
		t.Errorf("first booking id = %d, want 1", id)
	}

	user, _ = users.Get("guest-1")
	if user.TotalBookings != 1 {
		t.Errorf("TotalBookings = %d, want 1", user.TotalBookings)
	}

	bookings, err := ledger.ListRoom("guest-1")
	if err != nil {
		t.Fatalf("ListRoom() error = %v", err)
	}
	if len(bookings) != 1 || bookings[0].Status != models.StatusConfirmed {
		t.Fatalf("ListRoom() = %+v, want one confirmed booking", bookings)
	}

	if err := ledger.Cancel(id, models.BookingKindRoom); err != nil {
		t.Fatalf("Cancel() error = %v", err)
	}

	// Still listed, now cancelled; counter unchanged
	bookings, _ = ledger.ListRoom("guest-1")
	if len(bookings) != 1 || bookings[0].Status != models.StatusCancelled {
		t.Errorf("ListRoom() after cancel = %+v, want one cancelled booking", bookings)
	}
	user, _ = users.Get("guest-1")
	if user.TotalBookings != 1 {
		t.Errorf("TotalBookings = %d, want 1 after cancel", user.TotalBookings)
	}
}
