// ABOUTME: Conversation turn model for the append-only conversation log
// ABOUTME: Speaker tags identify which side of the call produced each message
package models

import "time"

// Speaker tags for conversation turns. The set is open; these are the
// two values the voice pipeline emits.
const (
	SpeakerUser  = "User"
	SpeakerAgent = "Agent"
)

// Turn is a single logged utterance in a guest's conversation history.
type Turn struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	Message   string    `json:"message"`
	Speaker   string    `json:"speaker"`
	Timestamp time.Time `json:"timestamp"`
}
