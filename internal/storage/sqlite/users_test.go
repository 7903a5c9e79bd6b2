// ABOUTME: Tests for guest record upsert and lookup operations
// ABOUTME: Verifies partial updates, idempotence, and verification monotonicity
package sqlite

import (
	"testing"
	"time"
)

func TestUpsertCreatesUser(t *testing.T) {
	db, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory() error = %v", err)
	}
	defer func() { _ = db.Close() }()

	store := NewUserStore(db)

	// Lookup before any upsert returns an explicit absent value
	user, err := store.Get("guest-1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if user != nil {
		t.Error("Get() should return nil for unknown guest")
	}

	err = store.Upsert("guest-1", "Asha", "", "", nil)
	if err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	user, err = store.Get("guest-1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if user == nil {
		t.Fatal("Get() returned nil after Upsert()")
	}
	if user.Name != "Asha" {
		t.Errorf("Name = %q, want Asha", user.Name)
	}
	if user.Phone != "" || user.Email != "" {
		t.Errorf("unsupplied fields should be empty, got phone=%q email=%q", user.Phone, user.Email)
	}
	if user.IsVerified {
		t.Error("IsVerified should be false without a phone on file")
	}
	if user.TotalBookings != 0 {
		t.Errorf("TotalBookings = %d, want 0", user.TotalBookings)
	}
}

func TestUpsertPartialUpdate(t *testing.T) {
	db, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory() error = %v", err)
	}
	defer func() { _ = db.Close() }()

	store := NewUserStore(db)

	if err := store.Upsert("guest-1", "Asha", "", "", nil); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	// Supplying only the phone must keep the stored name
	if err := store.Upsert("guest-1", "", "999", "", nil); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	user, err := store.Get("guest-1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if user.Name != "Asha" {
		t.Errorf("Name = %q, want Asha preserved", user.Name)
	}
	if user.Phone != "999" {
		t.Errorf("Phone = %q, want 999", user.Phone)
	}
	// Name and phone now both present, so the guest is verified
	if !user.IsVerified {
		t.Error("IsVerified should be true once name and phone are both on file")
	}
}

func TestUpsertIdempotence(t *testing.T) {
	db, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory() error = %v", err)
	}
	defer func() { _ = db.Close() }()

	store := NewUserStore(db)

	prefs := map[string]any{"floor": "high"}
	if err := store.Upsert("guest-1", "Asha", "999", "asha@example.com", prefs); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	first, err := store.Get("guest-1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	if err := store.Upsert("guest-1", "Asha", "999", "asha@example.com", prefs); err != nil {
		t.Fatalf("Upsert() second call error = %v", err)
	}
	second, err := store.Get("guest-1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	// Same stored row except the interaction timestamp advancing
	if second.Name != first.Name || second.Phone != first.Phone || second.Email != first.Email {
		t.Errorf("repeated upsert changed fields: first=%+v second=%+v", first, second)
	}
	if second.IsVerified != first.IsVerified {
		t.Error("repeated upsert changed verification")
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Errorf("CreatedAt changed: %v -> %v", first.CreatedAt, second.CreatedAt)
	}
	if !second.LastInteraction.After(first.LastInteraction) {
		t.Errorf("LastInteraction should advance: %v -> %v", first.LastInteraction, second.LastInteraction)
	}
}

func TestVerificationMonotonicity(t *testing.T) {
	db, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory() error = %v", err)
	}
	defer func() { _ = db.Close() }()

	store := NewUserStore(db)

	if err := store.Upsert("guest-1", "Asha", "999", "", nil); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	user, _ := store.Get("guest-1")
	if !user.IsVerified {
		t.Fatal("guest should be verified after name and phone supplied together")
	}

	// A later upsert with no fields must not reset the flag
	if err := store.Upsert("guest-1", "", "", "", nil); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	user, _ = store.Get("guest-1")
	if !user.IsVerified {
		t.Error("IsVerified must stay true once set")
	}

	// Nor an upsert that only touches the email
	if err := store.Upsert("guest-1", "", "", "asha@example.com", nil); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	user, _ = store.Get("guest-1")
	if !user.IsVerified {
		t.Error("IsVerified must stay true after partial update")
	}
}

func TestUpsertPreferences(t *testing.T) {
	db, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory() error = %v", err)
	}
	defer func() { _ = db.Close() }()

	store := NewUserStore(db)

	if err := store.Upsert("guest-1", "", "", "", map[string]any{"floor": "high"}); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	// nil preferences leaves the stored mapping alone
	if err := store.Upsert("guest-1", "Asha", "", "", nil); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	user, err := store.Get("guest-1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if user.Preferences["floor"] != "high" {
		t.Errorf("Preferences = %v, want floor=high preserved", user.Preferences)
	}

	// A supplied mapping replaces the stored one
	if err := store.Upsert("guest-1", "", "", "", map[string]any{"diet": "vegetarian"}); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	user, _ = store.Get("guest-1")
	if _, ok := user.Preferences["diet"]; !ok {
		t.Errorf("Preferences = %v, want diet recorded", user.Preferences)
	}
}

func TestIncrementTotalBookings(t *testing.T) {
	db, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory() error = %v", err)
	}
	defer func() { _ = db.Close() }()

	store := NewUserStore(db)

	if err := store.Upsert("guest-1", "", "", "", nil); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := store.IncrementTotalBookings("guest-1"); err != nil {
			t.Fatalf("IncrementTotalBookings() error = %v", err)
		}
	}

	user, err := store.Get("guest-1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if user.TotalBookings != 3 {
		t.Errorf("TotalBookings = %d, want 3", user.TotalBookings)
	}
}
