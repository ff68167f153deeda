package repository

import (
	"context"

	"github.com/devmatch/devmatch-backend/internal/domain"
)

type MatchRepository interface {
	// Create inserts the match with a normalized pair. If the pair is
	// already matched the unique constraint fires and
	// domain.ErrMatchAlreadyExists is returned; the caller fetches the
	// winner via GetByUsers.
	Create(ctx context.Context, match *domain.Match) error
	GetByID(ctx context.Context, id int64) (*domain.Match, error)
	GetByUsers(ctx context.Context, user1ID, user2ID string) (*domain.Match, error)
	ListActiveByUser(ctx context.Context, userID string) ([]*domain.Match, error)
}
