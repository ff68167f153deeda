package chat

import (
	"context"
	"testing"
	"time"

	"github.com/devmatch/devmatch-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestUseCase() (*ChatUseCase, *MockMessageRepository, *MockMatchRepository) {
	messageRepo := new(MockMessageRepository)
	matchRepo := new(MockMatchRepository)
	return NewChatUseCase(messageRepo, matchRepo), messageRepo, matchRepo
}

func aliceBobMatch() *domain.Match {
	return &domain.Match{ID: 1, User1ID: "alice", User2ID: "bob", IsActive: true}
}

func TestSendMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		uc, messageRepo, matchRepo := newTestUseCase()
		matchRepo.On("GetByID", ctx, int64(1)).Return(aliceBobMatch(), nil)
		messageRepo.On("Create", ctx, mock.AnythingOfType("*domain.Message")).
			Run(func(args mock.Arguments) {
				msg := args.Get(1).(*domain.Message)
				msg.ID = 10
				msg.SentAt = time.Now()
			}).
			Return(nil)

		msg, err := uc.SendMessage(ctx, 1, "alice", "hello")
		require.NoError(t, err)
		assert.Equal(t, int64(10), msg.ID)
		assert.Equal(t, "alice", msg.SenderID)
		assert.Equal(t, "hello", msg.Content)
		assert.False(t, msg.IsRead)
	})

	t.Run("empty content", func(t *testing.T) {
		uc, messageRepo, _ := newTestUseCase()

		_, err := uc.SendMessage(ctx, 1, "alice", "   ")
		assert.ErrorIs(t, err, domain.ErrEmptyContent)
		messageRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("non-member is forbidden", func(t *testing.T) {
		uc, messageRepo, matchRepo := newTestUseCase()
		matchRepo.On("GetByID", ctx, int64(1)).Return(aliceBobMatch(), nil)

		_, err := uc.SendMessage(ctx, 1, "carol", "hi")
		assert.ErrorIs(t, err, domain.ErrForbidden)
		messageRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("missing match reads as forbidden", func(t *testing.T) {
		uc, _, matchRepo := newTestUseCase()
		matchRepo.On("GetByID", ctx, int64(77)).Return(nil, domain.ErrMatchNotFound)

		_, err := uc.SendMessage(ctx, 77, "alice", "hi")
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestListMessages(t *testing.T) {
	ctx := context.Background()

	t.Run("marks counterpart messages read before returning thread", func(t *testing.T) {
		uc, messageRepo, matchRepo := newTestUseCase()

		thread := []*domain.Message{
			{ID: 1, MatchID: 1, SenderID: "alice", Content: "hey", IsRead: true},
			{ID: 2, MatchID: 1, SenderID: "bob", Content: "hi", IsRead: true},
		}

		matchRepo.On("GetByID", ctx, int64(1)).Return(aliceBobMatch(), nil)
		messageRepo.On("MarkRead", ctx, int64(1), "bob").Return(nil)
		messageRepo.On("ListByMatch", ctx, int64(1)).Return(thread, nil)

		messages, err := uc.ListMessages(ctx, 1, "bob")
		require.NoError(t, err)
		require.Len(t, messages, 2)
		assert.Equal(t, "hey", messages[0].Content)
		assert.Equal(t, "hi", messages[1].Content)

		messageRepo.AssertExpectations(t)
	})

	t.Run("non-member is forbidden", func(t *testing.T) {
		uc, messageRepo, matchRepo := newTestUseCase()
		matchRepo.On("GetByID", ctx, int64(1)).Return(aliceBobMatch(), nil)

		_, err := uc.ListMessages(ctx, 1, "carol")
		assert.ErrorIs(t, err, domain.ErrForbidden)
		messageRepo.AssertNotCalled(t, "ListByMatch", mock.Anything, mock.Anything)
		messageRepo.AssertNotCalled(t, "MarkRead", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("mark read failure still serves history", func(t *testing.T) {
		uc, messageRepo, matchRepo := newTestUseCase()

		matchRepo.On("GetByID", ctx, int64(1)).Return(aliceBobMatch(), nil)
		messageRepo.On("MarkRead", ctx, int64(1), "alice").Return(assert.AnError)
		messageRepo.On("ListByMatch", ctx, int64(1)).Return([]*domain.Message{}, nil)

		messages, err := uc.ListMessages(ctx, 1, "alice")
		require.NoError(t, err)
		assert.Empty(t, messages)
	})
}
