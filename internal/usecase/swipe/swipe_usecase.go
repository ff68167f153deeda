package swipe

import (
	"context"
	"errors"
	"fmt"

	"github.com/devmatch/devmatch-backend/internal/domain"
	"github.com/devmatch/devmatch-backend/internal/repository"
	"github.com/rs/zerolog/log"
)

type SwipeUseCase struct {
	swipeRepo repository.SwipeRepository
	matchRepo repository.MatchRepository
	userRepo  repository.UserRepository
}

func NewSwipeUseCase(
	swipeRepo repository.SwipeRepository,
	matchRepo repository.MatchRepository,
	userRepo repository.UserRepository,
) *SwipeUseCase {
	return &SwipeUseCase{
		swipeRepo: swipeRepo,
		matchRepo: matchRepo,
		userRepo:  userRepo,
	}
}

// SwipeRequest represents a swipe action
type SwipeRequest struct {
	TargetID   string `json:"target_id" binding:"required"`
	TargetType string `json:"target_type" binding:"required,oneof=developer tool"`
	Action     string `json:"action" binding:"required,swipeaction"`
}

// SwipeResponse represents swipe result. Match and MatchedUser are set
// only when this swipe completed a mutual like.
type SwipeResponse struct {
	IsMatch     bool          `json:"is_match"`
	Swipe       *domain.Swipe `json:"swipe"`
	Match       *domain.Match `json:"match,omitempty"`
	MatchedUser *domain.User  `json:"matched_user,omitempty"`
}

// CreateSwipe records the swipe and, for a positive swipe on a
// developer, checks reciprocity and creates the match.
func (uc *SwipeUseCase) CreateSwipe(ctx context.Context, swiperID string, req *SwipeRequest) (*SwipeResponse, error) {
	action := domain.SwipeAction(req.Action)
	targetType := domain.TargetType(req.TargetType)
	if !action.Valid() {
		return nil, domain.ErrInvalidAction
	}
	if !targetType.Valid() {
		return nil, domain.ErrInvalidTarget
	}
	if targetType == domain.TargetDeveloper && swiperID == req.TargetID {
		return nil, domain.ErrCannotSwipeSelf
	}

	// Replay guard: the first swipe on a target is final.
	_, err := uc.swipeRepo.Get(ctx, swiperID, req.TargetID, targetType)
	if err == nil {
		return nil, domain.ErrAlreadySwiped
	}
	if !errors.Is(err, domain.ErrSwipeNotFound) {
		return nil, fmt.Errorf("failed to check existing swipe: %w", err)
	}

	swipe := &domain.Swipe{
		SwiperID:   swiperID,
		TargetID:   req.TargetID,
		TargetType: targetType,
		Action:     action,
	}
	if err := uc.swipeRepo.Create(ctx, swipe); err != nil {
		return nil, fmt.Errorf("failed to create swipe: %w", err)
	}

	response := &SwipeResponse{Swipe: swipe}

	// Only developer-to-developer interest can match; either like or
	// super_like on the reciprocal side is sufficient proof.
	if !action.Positive() || targetType != domain.TargetDeveloper {
		return response, nil
	}

	mutual, err := uc.swipeRepo.HasPositiveSwipe(ctx, req.TargetID, swiperID)
	if err != nil {
		log.Error().Err(err).Str("swiper", swiperID).Str("target", req.TargetID).
			Msg("reciprocity check failed")
		return response, nil // the swipe itself succeeded
	}
	if !mutual {
		return response, nil
	}

	match, err := uc.ensureMatch(ctx, swiperID, req.TargetID)
	if err != nil {
		log.Error().Err(err).Str("swiper", swiperID).Str("target", req.TargetID).
			Msg("match creation failed")
		return response, nil
	}

	response.IsMatch = true
	response.Match = match

	if matched, err := uc.userRepo.GetByID(ctx, req.TargetID); err == nil {
		response.MatchedUser = matched
	}

	log.Info().Int64("match_id", match.ID).Str("user1", match.User1ID).
		Str("user2", match.User2ID).Msg("match created")

	return response, nil
}

// ensureMatch creates the match for the pair, treating a constraint hit
// as "the concurrent reciprocal swipe already created it".
func (uc *SwipeUseCase) ensureMatch(ctx context.Context, userA, userB string) (*domain.Match, error) {
	match := &domain.Match{
		User1ID:  userA,
		User2ID:  userB,
		IsActive: true,
	}
	err := uc.matchRepo.Create(ctx, match)
	if err == nil {
		return match, nil
	}
	if errors.Is(err, domain.ErrMatchAlreadyExists) {
		return uc.matchRepo.GetByUsers(ctx, userA, userB)
	}
	return nil, err
}
