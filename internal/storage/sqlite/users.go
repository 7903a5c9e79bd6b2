// ABOUTME: Guest record storage operations for SQLite
// ABOUTME: Implements create-or-partial-update upsert with monotone verification
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pinkperl/concierge/internal/models"
)

// UserStore handles guest record persistence
type UserStore struct {
	db *DB
}

// NewUserStore creates a new UserStore
func NewUserStore(db *DB) *UserStore {
	return &UserStore{db: db}
}

// Upsert creates the guest row if absent, otherwise applies a partial
// update. Empty-string fields and a nil preferences map mean "not
// supplied" and leave the stored values untouched. The verified flag is
// recomputed from the resulting name and phone and never reset once
// true. last_interaction is refreshed on every call.
func (s *UserStore) Upsert(userID, name, phone, email string, preferences map[string]any) error {
	tx, err := s.db.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin upsert: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var (
		curName  sql.NullString
		curPhone sql.NullString
		verified bool
	)
	err = tx.QueryRow(`SELECT name, phone, is_verified FROM users WHERE user_id = ?`, userID).
		Scan(&curName, &curPhone, &verified)

	now := time.Now().UTC()

	if err == sql.ErrNoRows {
		prefsJSON, merr := marshalPreferences(preferences)
		if merr != nil {
			return merr
		}
		isVerified := name != "" && phone != ""
		_, err = tx.Exec(`
			INSERT INTO users (user_id, name, phone, email, preferences, created_at, last_interaction, total_bookings, is_verified)
			VALUES (?, ?, ?, ?, ?, ?, ?, 0, ?)
		`, userID, name, phone, email, prefsJSON, now, now, isVerified)
		if err != nil {
			return fmt.Errorf("failed to insert user: %w", err)
		}
		return tx.Commit()
	}
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}

	resName := curName.String
	if name != "" {
		resName = name
	}
	resPhone := curPhone.String
	if phone != "" {
		resPhone = phone
	}
	// Monotone: a verified guest stays verified.
	isVerified := verified || (resName != "" && resPhone != "")

	if preferences != nil {
		prefsJSON, merr := marshalPreferences(preferences)
		if merr != nil {
			return merr
		}
		_, err = tx.Exec(`
			UPDATE users
			SET name = COALESCE(NULLIF(?, ''), name),
			    phone = COALESCE(NULLIF(?, ''), phone),
			    email = COALESCE(NULLIF(?, ''), email),
			    preferences = ?,
			    is_verified = ?,
			    last_interaction = ?
			WHERE user_id = ?
		`, name, phone, email, prefsJSON, isVerified, now, userID)
	} else {
		_, err = tx.Exec(`
			UPDATE users
			SET name = COALESCE(NULLIF(?, ''), name),
			    phone = COALESCE(NULLIF(?, ''), phone),
			    email = COALESCE(NULLIF(?, ''), email),
			    is_verified = ?,
			    last_interaction = ?
			WHERE user_id = ?
		`, name, phone, email, isVerified, now, userID)
	}
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	return tx.Commit()
}

// Get retrieves a guest record, returning nil if not found
func (s *UserStore) Get(userID string) (*models.User, error) {
	var (
		name      sql.NullString
		phone     sql.NullString
		email     sql.NullString
		prefsJSON sql.NullString
		createdAt time.Time
		lastSeen  time.Time
		total     sql.NullInt64
		verified  sql.NullBool
	)

	err := s.db.QueryRow(`
		SELECT name, phone, email, preferences, created_at, last_interaction, total_bookings, is_verified
		FROM users
		WHERE user_id = ?
	`, userID).Scan(&name, &phone, &email, &prefsJSON, &createdAt, &lastSeen, &total, &verified)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	user := &models.User{
		UserID:          userID,
		Name:            name.String,
		Phone:           phone.String,
		Email:           email.String,
		CreatedAt:       createdAt,
		LastInteraction: lastSeen,
		TotalBookings:   int(total.Int64),
		IsVerified:      verified.Bool,
	}

	if prefsJSON.Valid && prefsJSON.String != "" {
		if err := json.Unmarshal([]byte(prefsJSON.String), &user.Preferences); err != nil {
			user.Preferences = map[string]any{}
		}
	} else {
		user.Preferences = map[string]any{}
	}

	return user, nil
}

// IncrementTotalBookings bumps the guest's lifetime booking counter.
// The counter tracks bookings ever created; cancellation never
// decrements it.
func (s *UserStore) IncrementTotalBookings(userID string) error {
	_, err := s.db.Exec(`UPDATE users SET total_bookings = total_bookings + 1 WHERE user_id = ?`, userID)
	return err
}

func marshalPreferences(preferences map[string]any) (string, error) {
	if preferences == nil {
		return "{}", nil
	}
	data, err := json.Marshal(preferences)
	if err != nil {
		return "", fmt.Errorf("failed to marshal preferences: %w", err)
	}
	return string(data), nil
}
