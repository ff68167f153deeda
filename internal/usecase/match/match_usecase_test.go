package match

import (
	"context"
	"testing"
	"time"

	"github.com/devmatch/devmatch-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUseCase() (*MatchUseCase, *MockMatchRepository, *MockUserRepository) {
	matchRepo := new(MockMatchRepository)
	userRepo := new(MockUserRepository)
	return NewMatchUseCase(matchRepo, userRepo), matchRepo, userRepo
}

func TestListMatches(t *testing.T) {
	ctx := context.Background()

	t.Run("enriches each match with the counterpart", func(t *testing.T) {
		uc, matchRepo, userRepo := newTestUseCase()

		matchedAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
		matchRepo.On("ListActiveByUser", ctx, "alice").Return([]*domain.Match{
			{ID: 1, User1ID: "alice", User2ID: "bob", MatchedAt: matchedAt, IsActive: true},
			{ID: 2, User1ID: "alice", User2ID: "carol", MatchedAt: matchedAt, IsActive: true},
		}, nil)
		userRepo.On("GetByID", ctx, "bob").Return(&domain.User{ID: "bob", DisplayName: "Bob"}, nil)
		userRepo.On("GetByID", ctx, "carol").Return(&domain.User{ID: "carol", DisplayName: "Carol"}, nil)

		summaries, err := uc.ListMatches(ctx, "alice")
		require.NoError(t, err)
		require.Len(t, summaries, 2)
		assert.Equal(t, int64(1), summaries[0].ID)
		assert.Equal(t, "Bob", summaries[0].Counterpart.DisplayName)
		assert.Equal(t, "2026-08-01T12:00:00Z", summaries[0].MatchedAt)
		assert.Equal(t, "Carol", summaries[1].Counterpart.DisplayName)
	})

	t.Run("skips matches whose counterpart cannot be loaded", func(t *testing.T) {
		uc, matchRepo, userRepo := newTestUseCase()

		matchRepo.On("ListActiveByUser", ctx, "alice").Return([]*domain.Match{
			{ID: 1, User1ID: "alice", User2ID: "bob", IsActive: true},
			{ID: 2, User1ID: "alice", User2ID: "ghost", IsActive: true},
		}, nil)
		userRepo.On("GetByID", ctx, "bob").Return(&domain.User{ID: "bob"}, nil)
		userRepo.On("GetByID", ctx, "ghost").Return(nil, domain.ErrUserNotFound)

		summaries, err := uc.ListMatches(ctx, "alice")
		require.NoError(t, err)
		require.Len(t, summaries, 1)
		assert.Equal(t, int64(1), summaries[0].ID)
	})

	t.Run("no matches yields empty slice", func(t *testing.T) {
		uc, matchRepo, _ := newTestUseCase()
		matchRepo.On("ListActiveByUser", ctx, "alice").Return([]*domain.Match{}, nil)

		summaries, err := uc.ListMatches(ctx, "alice")
		require.NoError(t, err)
		assert.NotNil(t, summaries)
		assert.Empty(t, summaries)
	})
}

func TestGetMatchForUser(t *testing.T) {
	ctx := context.Background()

	t.Run("member gets the match", func(t *testing.T) {
		uc, matchRepo, _ := newTestUseCase()
		matchRepo.On("GetByID", ctx, int64(5)).
			Return(&domain.Match{ID: 5, User1ID: "alice", User2ID: "bob", IsActive: true}, nil)

		m, err := uc.GetMatchForUser(ctx, 5, "bob")
		require.NoError(t, err)
		assert.Equal(t, int64(5), m.ID)
	})

	t.Run("non-member is forbidden", func(t *testing.T) {
		uc, matchRepo, _ := newTestUseCase()
		matchRepo.On("GetByID", ctx, int64(5)).
			Return(&domain.Match{ID: 5, User1ID: "alice", User2ID: "bob", IsActive: true}, nil)

		_, err := uc.GetMatchForUser(ctx, 5, "carol")
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("missing match is indistinguishable from non-membership", func(t *testing.T) {
		uc, matchRepo, _ := newTestUseCase()
		matchRepo.On("GetByID", ctx, int64(404)).Return(nil, domain.ErrMatchNotFound)

		_, err := uc.GetMatchForUser(ctx, 404, "alice")
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}
