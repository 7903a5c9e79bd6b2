// ABOUTME: Booking ledger implementing create, list, and cancel for both kinds
// ABOUTME: Keeps the per-guest lifetime booking counter in step with creations
package booking

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/pinkperl/concierge/internal/models"
	"github.com/pinkperl/concierge/internal/storage/sqlite"
)

// Ledger is the operations layer over the booking and user stores.
type Ledger struct {
	bookings *sqlite.BookingStore
	users    *sqlite.UserStore
	log      *log.Logger
}

// NewLedger creates a Ledger over an open store.
func NewLedger(db *sqlite.DB, logger *log.Logger) *Ledger {
	return &Ledger{
		bookings: sqlite.NewBookingStore(db),
		users:    sqlite.NewUserStore(db),
		log:      logger,
	}
}

// CreateRoom records a confirmed room booking and bumps the guest's
// lifetime counter. The two writes are not atomic: if the counter
// update fails after the insert, the booking stands and the failure is
// only logged.
func (l *Ledger) CreateRoom(userID, roomType, checkIn, checkOut string, adults, children int, specialRequests string) (int64, error) {
	id, err := l.bookings.InsertRoom(&models.RoomBooking{
		UserID:          userID,
		RoomType:        roomType,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		NumAdults:       adults,
		NumChildren:     children,
		SpecialRequests: specialRequests,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create room booking: %w", err)
	}

	if err := l.users.IncrementTotalBookings(userID); err != nil {
		l.log.Warn("booking counter update failed", "user", userID, "booking", id, "err", err)
	}

	l.log.Info("room booking created", "user", userID, "booking", id, "room_type", roomType)
	return id, nil
}

// CreateRestaurant records a confirmed restaurant booking and bumps the
// guest's lifetime counter, with the same partial-failure tolerance as
// CreateRoom.
func (l *Ledger) CreateRestaurant(userID, restaurantName, date, timeOfDay string, guests int, specialRequests string) (int64, error) {
	id, err := l.bookings.InsertRestaurant(&models.RestaurantBooking{
		UserID:          userID,
		RestaurantName:  restaurantName,
		BookingDate:     date,
		BookingTime:     timeOfDay,
		NumGuests:       guests,
		SpecialRequests: specialRequests,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create restaurant booking: %w", err)
	}

	if err := l.users.IncrementTotalBookings(userID); err != nil {
		l.log.Warn("booking counter update failed", "user", userID, "booking", id, "err", err)
	}

	l.log.Info("restaurant booking created", "user", userID, "booking", id, "restaurant", restaurantName)
	return id, nil
}

// ListRoom returns all of a guest's room bookings, newest first,
// cancelled ones included. Callers filter by status as needed.
func (l *Ledger) ListRoom(userID string) ([]models.RoomBooking, error) {
	return l.bookings.RoomBookings(userID)
}

// ListRestaurant returns all of a guest's restaurant bookings, newest
// first, cancelled ones included.
func (l *Ledger) ListRestaurant(userID string) ([]models.RestaurantBooking, error) {
	return l.bookings.RestaurantBookings(userID)
}

// Cancel marks the booking cancelled. Unknown ids and already-cancelled
// bookings are silent no-ops; the counter is never decremented.
func (l *Ledger) Cancel(bookingID int64, kind models.BookingKind) error {
	if err := l.bookings.Cancel(bookingID, kind); err != nil {
		return err
	}
	l.log.Info("booking cancelled", "booking", bookingID, "kind", kind)
	return nil
}
