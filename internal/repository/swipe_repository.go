package repository

import (
	"context"

	"github.com/devmatch/devmatch-backend/internal/domain"
)

type SwipeRepository interface {
	Create(ctx context.Context, swipe *domain.Swipe) error
	Get(ctx context.Context, swiperID, targetID string, targetType domain.TargetType) (*domain.Swipe, error)
	// HasPositiveSwipe reports whether swiperID has already liked or
	// super-liked targetID as a developer target.
	HasPositiveSwipe(ctx context.Context, swiperID, targetID string) (bool, error)
}
