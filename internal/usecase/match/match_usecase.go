package match

import (
	"context"
	"errors"
	"fmt"

	"github.com/devmatch/devmatch-backend/internal/domain"
	"github.com/devmatch/devmatch-backend/internal/repository"
)

type MatchUseCase struct {
	matchRepo repository.MatchRepository
	userRepo  repository.UserRepository
}

func NewMatchUseCase(
	matchRepo repository.MatchRepository,
	userRepo repository.UserRepository,
) *MatchUseCase {
	return &MatchUseCase{
		matchRepo: matchRepo,
		userRepo:  userRepo,
	}
}

// MatchSummary is a match enriched with the other party's profile.
type MatchSummary struct {
	ID          int64        `json:"id"`
	MatchedAt   string       `json:"matched_at"`
	Counterpart *domain.User `json:"counterpart"`
	Online      bool         `json:"online"`
}

// ListMatches returns the caller's active matches, newest first, each
// carrying the counterpart user record.
func (uc *MatchUseCase) ListMatches(ctx context.Context, userID string) ([]*MatchSummary, error) {
	matches, err := uc.matchRepo.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	summaries := make([]*MatchSummary, 0, len(matches))
	for _, m := range matches {
		otherID, ok := m.OtherUserID(userID)
		if !ok {
			continue
		}
		other, err := uc.userRepo.GetByID(ctx, otherID)
		if err != nil {
			continue
		}
		summaries = append(summaries, &MatchSummary{
			ID:          m.ID,
			MatchedAt:   m.MatchedAt.Format("2006-01-02T15:04:05Z07:00"),
			Counterpart: other,
		})
	}

	return summaries, nil
}

// GetMatchForUser resolves the match and checks membership. A missing
// match and a membership failure both come back as ErrForbidden so the
// caller cannot probe for existence.
func (uc *MatchUseCase) GetMatchForUser(ctx context.Context, matchID int64, userID string) (*domain.Match, error) {
	m, err := uc.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, domain.ErrMatchNotFound) {
			return nil, domain.ErrForbidden
		}
		return nil, err
	}
	if !m.HasUser(userID) {
		return nil, domain.ErrForbidden
	}
	return m, nil
}
