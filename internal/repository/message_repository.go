package repository

import (
	"context"

	"github.com/devmatch/devmatch-backend/internal/domain"
)

type MessageRepository interface {
	Create(ctx context.Context, message *domain.Message) error
	ListByMatch(ctx context.Context, matchID int64) ([]*domain.Message, error)
	// MarkRead flips is_read on every message in the match not sent by
	// readerID. Idempotent.
	MarkRead(ctx context.Context, matchID int64, readerID string) error
}
