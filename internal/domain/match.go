package domain

import "time"

// Match is an unordered user pair. The pair is stored normalized
// (User1ID < User2ID) so the uniqueness constraint covers both orderings.
type Match struct {
	ID        int64     `json:"id" db:"id"`
	User1ID   string    `json:"user1_id" db:"user1_id"`
	User2ID   string    `json:"user2_id" db:"user2_id"`
	MatchedAt time.Time `json:"matched_at" db:"matched_at"`
	IsActive  bool      `json:"is_active" db:"is_active"`
}

func (m *Match) HasUser(userID string) bool {
	return m.User1ID == userID || m.User2ID == userID
}

func (m *Match) OtherUserID(userID string) (string, bool) {
	if m.User1ID == userID {
		return m.User2ID, true
	}
	if m.User2ID == userID {
		return m.User1ID, true
	}
	return "", false
}

// NormalizePair orders a user pair lexicographically. User ids are opaque
// strings assigned by the identity provider.
func NormalizePair(a, b string) (string, string) {
	if a > b {
		return b, a
	}
	return a, b
}
