// ABOUTME: Session bridge adapting one conversational session to the stores
// ABOUTME: Tool actions return guest-facing strings and never propagate errors
package session

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/pinkperl/concierge/internal/booking"
	"github.com/pinkperl/concierge/internal/models"
	"github.com/pinkperl/concierge/internal/storage/sqlite"
)

// DefaultContextWindow bounds how many prior turns seed a new session.
const DefaultContextWindow = 5

// Guest-facing strings for tool failures and empty results. The
// conversation must never see a raw error.
const (
	apologyProfile    = "I'm sorry, I wasn't able to save your details just now. Could we try that again?"
	apologyRoom       = "I'm sorry, I couldn't complete that room booking. Please give me a moment and we can try again."
	apologyRestaurant = "I'm sorry, I couldn't complete that table reservation. Please give me a moment and we can try again."
	apologyList       = "I'm sorry, I couldn't look up your bookings just now."
	noBookingsYet     = "You don't have any bookings with us yet."
)

// Bridge maps a single guest session onto the record store and ledger.
type Bridge struct {
	userID        string
	users         *sqlite.UserStore
	conversations *sqlite.ConversationStore
	ledger        *booking.Ledger
	log           *log.Logger
	contextWindow int

	wg sync.WaitGroup // pending speech-event appends
}

// NewBridge creates a bridge for one guest identity.
func NewBridge(db *sqlite.DB, ledger *booking.Ledger, logger *log.Logger, userID string) *Bridge {
	return &Bridge{
		userID:        userID,
		users:         sqlite.NewUserStore(db),
		conversations: sqlite.NewConversationStore(db),
		ledger:        ledger,
		log:           logger,
		contextWindow: DefaultContextWindow,
	}
}

// SetContextWindow overrides the number of prior turns loaded on Start.
func (b *Bridge) SetContextWindow(n int) {
	if n > 0 {
		b.contextWindow = n
	}
}

// Start ensures the guest row exists, loads the recent conversation
// window, and returns the greeting plus the chronological context turns.
func (b *Bridge) Start() (string, []models.Turn, error) {
	if err := b.users.Upsert(b.userID, "", "", "", nil); err != nil {
		return "", nil, fmt.Errorf("failed to initialize guest record: %w", err)
	}

	turns, err := b.conversations.Recent(b.userID, b.contextWindow)
	if err != nil {
		return "", nil, fmt.Errorf("failed to load conversation context: %w", err)
	}

	user, err := b.users.Get(b.userID)
	if err != nil {
		return "", nil, fmt.Errorf("failed to load guest record: %w", err)
	}

	return greeting(user), turns, nil
}

// greeting personalizes the standard introduction when a name is on file.
func greeting(user *models.User) string {
	if user != nil && user.Name != "" {
		return fmt.Sprintf("Welcome back to the Pink Perl hotel, %s! You're speaking with Kriti. How may I assist you today?", user.Name)
	}
	return "Welcome to the Pink Perl hotel, you're speaking with Kriti. How may I assist you today?"
}

// SaveProfile stores whatever contact details the guest shared.
func (b *Bridge) SaveProfile(name, phone, email string) string {
	if err := b.users.Upsert(b.userID, name, phone, email, nil); err != nil {
		b.log.Error("save profile failed", "user", b.userID, "err", err)
		return apologyProfile
	}

	if name != "" {
		return fmt.Sprintf("Thank you, %s! I've saved your details.", name)
	}
	return "Thank you! I've saved your details."
}

// CreateRoomBooking books a room and confirms with the booking reference.
func (b *Bridge) CreateRoomBooking(roomType, checkIn, checkOut string, adults, children int, specialRequests string) string {
	id, err := b.ledger.CreateRoom(b.userID, roomType, checkIn, checkOut, adults, children, specialRequests)
	if err != nil {
		b.log.Error("room booking failed", "user", b.userID, "err", err)
		return apologyRoom
	}

	return fmt.Sprintf("Wonderful! Your %s room is confirmed from %s to %s. Your booking reference is %d.",
		roomType, checkIn, checkOut, id)
}

// CreateRestaurantBooking reserves a table and confirms with the
// booking reference.
func (b *Bridge) CreateRestaurantBooking(restaurantName, date, timeOfDay string, guests int, specialRequests string) string {
	id, err := b.ledger.CreateRestaurant(b.userID, restaurantName, date, timeOfDay, guests, specialRequests)
	if err != nil {
		b.log.Error("restaurant booking failed", "user", b.userID, "err", err)
		return apologyRestaurant
	}

	return fmt.Sprintf("Your table for %d at %s is reserved for %s at %s. Your booking reference is %d.",
		guests, restaurantName, date, timeOfDay, id)
}

// ListBookings renders the guest's confirmed bookings as a summary.
func (b *Bridge) ListBookings() string {
	rooms, err := b.ledger.ListRoom(b.userID)
	if err != nil {
		b.log.Error("list room bookings failed", "user", b.userID, "err", err)
		return apologyList
	}
	tables, err := b.ledger.ListRestaurant(b.userID)
	if err != nil {
		b.log.Error("list restaurant bookings failed", "user", b.userID, "err", err)
		return apologyList
	}

	var lines []string
	for _, r := range rooms {
		if r.Status != models.StatusConfirmed {
			continue
		}
		lines = append(lines, fmt.Sprintf("A %s room from %s to %s (reference %d).",
			r.RoomType, r.CheckInDate, r.CheckOutDate, r.BookingID))
	}
	for _, r := range tables {
		if r.Status != models.StatusConfirmed {
			continue
		}
		lines = append(lines, fmt.Sprintf("A table for %d at %s on %s at %s (reference %d).",
			r.NumGuests, r.RestaurantName, r.BookingDate, r.BookingTime, r.BookingID))
	}

	if len(lines) == 0 {
		return noBookingsYet
	}

	return "Here is what I have on file for you: " + strings.Join(lines, " ")
}

// OnUserSpeech logs a guest utterance without blocking the turn.
func (b *Bridge) OnUserSpeech(text string) {
	b.appendAsync(text, models.SpeakerUser)
}

// OnAgentSpeech logs an agent utterance without blocking the turn.
func (b *Bridge) OnAgentSpeech(text string) {
	b.appendAsync(text, models.SpeakerAgent)
}

// appendAsync is fire-and-forget: a logging failure can never stall or
// fail a conversational turn, so failures are logged locally and
// swallowed.
func (b *Bridge) appendAsync(text, speaker string) {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		if err := b.conversations.Append(b.userID, text, speaker); err != nil {
			b.log.Warn("conversation log append failed", "user", b.userID, "speaker", speaker, "err", err)
		}
	}()
}

// Close waits for pending speech-event appends to settle. Called at
// session teardown so in-flight log writes are not dropped.
func (b *Bridge) Close() {
	b.wg.Wait()
}
