package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/devmatch/devmatch-backend/internal/domain"
	"github.com/devmatch/devmatch-backend/internal/repository"
	"github.com/rs/zerolog/log"
)

type ChatUseCase struct {
	messageRepo repository.MessageRepository
	matchRepo   repository.MatchRepository
}

func NewChatUseCase(
	messageRepo repository.MessageRepository,
	matchRepo repository.MatchRepository,
) *ChatUseCase {
	return &ChatUseCase{
		messageRepo: messageRepo,
		matchRepo:   matchRepo,
	}
}

// SendMessage persists a message after verifying the sender belongs to
// the match. sent_at is assigned by the store, not the client.
func (uc *ChatUseCase) SendMessage(ctx context.Context, matchID int64, senderID, content string) (*domain.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, domain.ErrEmptyContent
	}

	if err := uc.requireMember(ctx, matchID, senderID); err != nil {
		return nil, err
	}

	message := &domain.Message{
		MatchID:  matchID,
		SenderID: senderID,
		Content:  content,
	}
	if err := uc.messageRepo.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	return message, nil
}

// ListMessages returns the thread in ascending sent_at order. Viewing
// the thread is the read acknowledgement: the counterpart's unread
// messages are flipped to read before the rows are fetched.
func (uc *ChatUseCase) ListMessages(ctx context.Context, matchID int64, userID string) ([]*domain.Message, error) {
	if err := uc.requireMember(ctx, matchID, userID); err != nil {
		return nil, err
	}

	if err := uc.messageRepo.MarkRead(ctx, matchID, userID); err != nil {
		// History is still served; the flip retries on the next view.
		log.Warn().Err(err).Int64("match_id", matchID).Msg("failed to mark messages read")
	}

	messages, err := uc.messageRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	return messages, nil
}

func (uc *ChatUseCase) requireMember(ctx context.Context, matchID int64, userID string) error {
	m, err := uc.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, domain.ErrMatchNotFound) {
			return domain.ErrForbidden
		}
		return err
	}
	if !m.HasUser(userID) {
		return domain.ErrForbidden
	}
	return nil
}
