package domain

import "time"

// Message is append-only chat history scoped to a match. SentAt is
// always server-assigned so per-match ordering does not depend on
// client clocks. IsRead only ever transitions false -> true.
type Message struct {
	ID       int64     `json:"id" db:"id"`
	MatchID  int64     `json:"match_id" db:"match_id"`
	SenderID string    `json:"sender_id" db:"sender_id"`
	Content  string    `json:"content" db:"content"`
	SentAt   time.Time `json:"sent_at" db:"sent_at"`
	IsRead   bool      `json:"is_read" db:"is_read"`
}
