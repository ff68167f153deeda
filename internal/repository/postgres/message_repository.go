package postgres

import (
	"context"

	"github.com/devmatch/devmatch-backend/internal/domain"
	"github.com/devmatch/devmatch-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type messageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *domain.Message) error {
	// sent_at comes from the database clock so ordering within a match
	// never depends on client time.
	query := `
		INSERT INTO messages (match_id, sender_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, sent_at, is_read
	`
	return r.db.QueryRowContext(ctx, query, message.MatchID, message.SenderID, message.Content).
		Scan(&message.ID, &message.SentAt, &message.IsRead)
}

func (r *messageRepository) ListByMatch(ctx context.Context, matchID int64) ([]*domain.Message, error) {
	var messages []*domain.Message
	query := `
		SELECT * FROM messages
		WHERE match_id = $1
		ORDER BY sent_at ASC, id ASC
	`
	err := r.db.SelectContext(ctx, &messages, query, matchID)
	return messages, err
}

func (r *messageRepository) MarkRead(ctx context.Context, matchID int64, readerID string) error {
	query := `
		UPDATE messages
		SET is_read = true
		WHERE match_id = $1 AND sender_id <> $2 AND is_read = false
	`
	_, err := r.db.ExecContext(ctx, query, matchID, readerID)
	return err
}
