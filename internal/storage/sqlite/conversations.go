// ABOUTME: Conversation log storage operations for SQLite
// ABOUTME: Append-only inserts with a chronological recent-window read
package sqlite

import (
	"fmt"
	"time"

	"github.com/pinkperl/concierge/internal/models"
)

// ConversationStore handles conversation log persistence
type ConversationStore struct {
	db *DB
}

// NewConversationStore creates a new ConversationStore
func NewConversationStore(db *DB) *ConversationStore {
	return &ConversationStore{db: db}
}

// Append logs one utterance for a guest. The only validation is a
// non-empty identity; message and speaker are stored as given.
func (s *ConversationStore) Append(userID, message, speaker string) error {
	if userID == "" {
		return fmt.Errorf("user identity is required")
	}

	_, err := s.db.Exec(`
		INSERT INTO conversations (user_id, message, speaker, timestamp)
		VALUES (?, ?, ?, ?)
	`, userID, message, speaker, time.Now().UTC())
	return err
}

// Recent returns the newest `limit` turns for a guest in chronological
// order, so callers receive oldest-first within the window.
func (s *ConversationStore) Recent(userID string, limit int) ([]models.Turn, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, message, speaker, timestamp
		FROM conversations
		WHERE user_id = ?
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var turns []models.Turn
	for rows.Next() {
		var turn models.Turn
		if err := rows.Scan(&turn.ID, &turn.UserID, &turn.Message, &turn.Speaker, &turn.Timestamp); err != nil {
			return nil, err
		}
		turns = append(turns, turn)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Reverse newest-first to chronological
	for i, j := 0, len(turns)-1; i < j; i, j = i+1, j-1 {
		turns[i], turns[j] = turns[j], turns[i]
	}

	return turns, nil
}
