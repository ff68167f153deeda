package discover

import (
	"context"
	"fmt"

	"github.com/devmatch/devmatch-backend/internal/domain"
	"github.com/devmatch/devmatch-backend/internal/repository"
)

const defaultLimit = 20

type DiscoverUseCase struct {
	userRepo repository.UserRepository
}

func NewDiscoverUseCase(userRepo repository.UserRepository) *DiscoverUseCase {
	return &DiscoverUseCase{userRepo: userRepo}
}

// ListCandidates returns developers the viewer has not swiped on yet.
// The swipe audit trail doubles as the exclusion list, so a passed
// profile never resurfaces.
func (uc *DiscoverUseCase) ListCandidates(ctx context.Context, viewerID string, limit int) ([]*domain.User, error) {
	if limit <= 0 || limit > 100 {
		limit = defaultLimit
	}

	users, err := uc.userRepo.ListUnswiped(ctx, viewerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	return users, nil
}
