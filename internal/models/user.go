// ABOUTME: Guest record model for the concierge persistence layer
// ABOUTME: Tracks contact details, preferences, verification, and booking counter
package models

import "time"

// User represents a hotel guest keyed by a stable external identity.
type User struct {
	UserID          string         `json:"user_id"`
	Name            string         `json:"name"`
	Phone           string         `json:"phone"`
	Email           string         `json:"email"`
	Preferences     map[string]any `json:"preferences"`
	CreatedAt       time.Time      `json:"created_at"`
	LastInteraction time.Time      `json:"last_interaction"`
	TotalBookings   int            `json:"total_bookings"`
	IsVerified      bool           `json:"is_verified"`
}

const notProvided = "Not provided"

// DisplayName returns the name, or a placeholder when not on file.
func (u *User) DisplayName() string {
	if u.Name == "" {
		return notProvided
	}
	return u.Name
}

// DisplayPhone returns the phone number, or a placeholder when not on file.
func (u *User) DisplayPhone() string {
	if u.Phone == "" {
		return notProvided
	}
	return u.Phone
}

// DisplayEmail returns the email address, or a placeholder when not on file.
func (u *User) DisplayEmail() string {
	if u.Email == "" {
		return notProvided
	}
	return u.Email
}

// DisplayVerified renders the verified flag for dashboards.
func (u *User) DisplayVerified() string {
	if u.IsVerified {
		return "Yes"
	}
	return "No"
}
