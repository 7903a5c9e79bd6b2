// ABOUTME: Booking row storage operations for SQLite
// ABOUTME: Statically-known statements per booking kind, no identifier interpolation
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/pinkperl/concierge/internal/models"
)

// BookingStore handles booking row persistence for both booking kinds
type BookingStore struct {
	db *DB
}

// NewBookingStore creates a new BookingStore
func NewBookingStore(db *DB) *BookingStore {
	return &BookingStore{db: db}
}

// InsertRoom inserts a confirmed room booking and returns its id.
func (s *BookingStore) InsertRoom(b *models.RoomBooking) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO room_bookings
		(user_id, room_type, check_in_date, check_out_date, num_adults, num_children, special_requests, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, b.UserID, b.RoomType, b.CheckInDate, b.CheckOutDate,
		b.NumAdults, b.NumChildren, b.SpecialRequests, models.StatusConfirmed, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to insert room booking: %w", err)
	}
	return res.LastInsertId()
}

// InsertRestaurant inserts a confirmed restaurant booking and returns its id.
func (s *BookingStore) InsertRestaurant(b *models.RestaurantBooking) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO restaurant_bookings
		(user_id, restaurant_name, booking_date, booking_time, num_guests, special_requests, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, b.UserID, b.RestaurantName, b.BookingDate, b.BookingTime,
		b.NumGuests, b.SpecialRequests, models.StatusConfirmed, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to insert restaurant booking: %w", err)
	}
	return res.LastInsertId()
}

// RoomBookings returns all room bookings for a guest, newest first,
// cancelled ones included.
func (s *BookingStore) RoomBookings(userID string) ([]models.RoomBooking, error) {
	rows, err := s.db.Query(`
		SELECT booking_id, user_id, room_type, check_in_date, check_out_date,
		       num_adults, num_children, special_requests, status, created_at
		FROM room_bookings
		WHERE user_id = ?
		ORDER BY created_at DESC, booking_id DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var bookings []models.RoomBooking
	for rows.Next() {
		var b models.RoomBooking
		var requests sql.NullString
		err := rows.Scan(&b.BookingID, &b.UserID, &b.RoomType, &b.CheckInDate, &b.CheckOutDate,
			&b.NumAdults, &b.NumChildren, &requests, &b.Status, &b.CreatedAt)
		if err != nil {
			return nil, err
		}
		b.SpecialRequests = requests.String
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

// RestaurantBookings returns all restaurant bookings for a guest,
// newest first, cancelled ones included.
func (s *BookingStore) RestaurantBookings(userID string) ([]models.RestaurantBooking, error) {
	rows, err := s.db.Query(`
		SELECT booking_id, user_id, restaurant_name, booking_date, booking_time,
		       num_guests, special_requests, status, created_at
		FROM restaurant_bookings
		WHERE user_id = ?
		ORDER BY created_at DESC, booking_id DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var bookings []models.RestaurantBooking
	for rows.Next() {
		var b models.RestaurantBooking
		var requests sql.NullString
		err := rows.Scan(&b.BookingID, &b.UserID, &b.RestaurantName, &b.BookingDate, &b.BookingTime,
			&b.NumGuests, &requests, &b.Status, &b.CreatedAt)
		if err != nil {
			return nil, err
		}
		b.SpecialRequests = requests.String
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

// Statement sets per booking kind. Kind dispatch maps to statically
// known SQL; identifiers are never built from runtime input.
const (
	cancelRoomSQL       = `UPDATE room_bookings SET status = 'cancelled' WHERE booking_id = ?`
	cancelRestaurantSQL = `UPDATE restaurant_bookings SET status = 'cancelled' WHERE booking_id = ?`
)

// Cancel marks a booking cancelled. A missing or already-cancelled
// booking id is a silent no-op, not an error.
func (s *BookingStore) Cancel(bookingID int64, kind models.BookingKind) error {
	var stmt string
	switch kind {
	case models.BookingKindRoom:
		stmt = cancelRoomSQL
	case models.BookingKindRestaurant:
		stmt = cancelRestaurantSQL
	default:
		return fmt.Errorf("unknown booking kind: %q", kind)
	}

	_, err := s.db.Exec(stmt, bookingID)
	return err
}
