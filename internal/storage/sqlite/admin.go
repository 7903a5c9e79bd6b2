// ABOUTME: Read-only admin queries joining bookings with guest identity
// ABOUTME: Backs the dashboard API and the operator CLI, no mutation
package sqlite

import (
	"database/sql"
	"time"

	"github.com/pinkperl/concierge/internal/models"
)

// AdminStore provides read-only aggregation across bookings and guests
type AdminStore struct {
	db *DB
}

// NewAdminStore creates a new AdminStore
func NewAdminStore(db *DB) *AdminStore {
	return &AdminStore{db: db}
}

// RoomBookingRow is a room booking joined with its owner's contact details.
type RoomBookingRow struct {
	models.RoomBooking
	GuestName  string
	GuestPhone string
	GuestEmail string
}

// RestaurantBookingRow is a restaurant booking joined with its owner's
// contact details.
type RestaurantBookingRow struct {
	models.RestaurantBooking
	GuestName  string
	GuestPhone string
	GuestEmail string
}

// RoomBookingsWithGuests returns every room booking joined with guest
// identity, newest first.
func (s *AdminStore) RoomBookingsWithGuests() ([]RoomBookingRow, error) {
	rows, err := s.db.Query(`
		SELECT rb.booking_id, rb.user_id, rb.room_type, rb.check_in_date, rb.check_out_date,
		       rb.num_adults, rb.num_children, rb.special_requests, rb.status, rb.created_at,
		       u.name, u.phone, u.email
		FROM room_bookings rb
		LEFT JOIN users u ON rb.user_id = u.user_id
		ORDER BY rb.created_at DESC, rb.booking_id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var result []RoomBookingRow
	for rows.Next() {
		var (
			row      RoomBookingRow
			requests sql.NullString
			name     sql.NullString
			phone    sql.NullString
			email    sql.NullString
		)
		err := rows.Scan(&row.BookingID, &row.UserID, &row.RoomType, &row.CheckInDate, &row.CheckOutDate,
			&row.NumAdults, &row.NumChildren, &requests, &row.Status, &row.CreatedAt,
			&name, &phone, &email)
		if err != nil {
			return nil, err
		}
		row.SpecialRequests = requests.String
		row.GuestName = name.String
		row.GuestPhone = phone.String
		row.GuestEmail = email.String
		result = append(result, row)
	}
	return result, rows.Err()
}

// RestaurantBookingsWithGuests returns every restaurant booking joined
// with guest identity, newest first.
func (s *AdminStore) RestaurantBookingsWithGuests() ([]RestaurantBookingRow, error) {
	rows, err := s.db.Query(`
		SELECT rb.booking_id, rb.user_id, rb.restaurant_name, rb.booking_date, rb.booking_time,
		       rb.num_guests, rb.special_requests, rb.status, rb.created_at,
		       u.name, u.phone, u.email
		FROM restaurant_bookings rb
		LEFT JOIN users u ON rb.user_id = u.user_id
		ORDER BY rb.created_at DESC, rb.booking_id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var result []RestaurantBookingRow
	for rows.Next() {
		var (
			row      RestaurantBookingRow
			requests sql.NullString
			name     sql.NullString
			phone    sql.NullString
			email    sql.NullString
		)
		err := rows.Scan(&row.BookingID, &row.UserID, &row.RestaurantName, &row.BookingDate, &row.BookingTime,
			&row.NumGuests, &requests, &row.Status, &row.CreatedAt,
			&name, &phone, &email)
		if err != nil {
			return nil, err
		}
		row.SpecialRequests = requests.String
		row.GuestName = name.String
		row.GuestPhone = phone.String
		row.GuestEmail = email.String
		result = append(result, row)
	}
	return result, rows.Err()
}

// Users returns the guest roster ordered by most recent interaction.
func (s *AdminStore) Users() ([]models.User, error) {
	rows, err := s.db.Query(`
		SELECT user_id, name, phone, email, created_at, last_interaction, total_bookings, is_verified
		FROM users
		ORDER BY last_interaction DESC
	`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var users []models.User
	for rows.Next() {
		var (
			u         models.User
			name      sql.NullString
			phone     sql.NullString
			email     sql.NullString
			createdAt time.Time
			lastSeen  time.Time
			total     sql.NullInt64
			verified  sql.NullBool
		)
		err := rows.Scan(&u.UserID, &name, &phone, &email, &createdAt, &lastSeen, &total, &verified)
		if err != nil {
			return nil, err
		}
		u.Name = name.String
		u.Phone = phone.String
		u.Email = email.String
		u.CreatedAt = createdAt
		u.LastInteraction = lastSeen
		u.TotalBookings = int(total.Int64)
		u.IsVerified = verified.Bool
		users = append(users, u)
	}
	return users, rows.Err()
}
