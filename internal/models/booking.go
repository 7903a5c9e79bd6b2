// ABOUTME: Booking models for room and restaurant reservations
// ABOUTME: Bookings are created once and only ever transition to cancelled
package models

import "time"

// BookingKind selects which booking table an operation applies to.
type BookingKind string

const (
	BookingKindRoom       BookingKind = "room"
	BookingKindRestaurant BookingKind = "restaurant"
)

// Booking status values. Bookings are never physically deleted.
const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// RoomBooking is a hotel room reservation.
type RoomBooking struct {
	BookingID       int64     `json:"booking_id"`
	UserID          string    `json:"user_id"`
	RoomType        string    `json:"room_type"`
	CheckInDate     string    `json:"check_in_date"`
	CheckOutDate    string    `json:"check_out_date"`
	NumAdults       int       `json:"num_adults"`
	NumChildren     int       `json:"num_children"`
	SpecialRequests string    `json:"special_requests"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// RestaurantBooking is a table reservation at one of the hotel restaurants.
type RestaurantBooking struct {
	BookingID       int64     `json:"booking_id"`
	UserID          string    `json:"user_id"`
	RestaurantName  string    `json:"restaurant_name"`
	BookingDate     string    `json:"booking_date"`
	BookingTime     string    `json:"booking_time"`
	NumGuests       int       `json:"num_guests"`
	SpecialRequests string    `json:"special_requests"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}
