package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/devmatch/devmatch-backend/internal/domain"
	"github.com/devmatch/devmatch-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type swipeRepository struct {
	db *sqlx.DB
}

func NewSwipeRepository(db *sqlx.DB) repository.SwipeRepository {
	return &swipeRepository{db: db}
}

func (r *swipeRepository) Create(ctx context.Context, swipe *domain.Swipe) error {
	query := `
		INSERT INTO swipes (swiper_id, target_id, target_type, action)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(ctx, query, swipe.SwiperID, swipe.TargetID, swipe.TargetType, swipe.Action).
		Scan(&swipe.ID, &swipe.CreatedAt)
}

func (r *swipeRepository) Get(ctx context.Context, swiperID, targetID string, targetType domain.TargetType) (*domain.Swipe, error) {
	var swipe domain.Swipe
	query := `SELECT * FROM swipes WHERE swiper_id = $1 AND target_id = $2 AND target_type = $3`
	err := r.db.GetContext(ctx, &swipe, query, swiperID, targetID, targetType)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSwipeNotFound
		}
		return nil, err
	}
	return &swipe, nil
}

func (r *swipeRepository) HasPositiveSwipe(ctx context.Context, swiperID, targetID string) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS (
			SELECT 1 FROM swipes
			WHERE swiper_id = $1 AND target_id = $2 AND target_type = 'developer'
			  AND action IN ('like', 'super_like')
		)
	`
	err := r.db.GetContext(ctx, &exists, query, swiperID, targetID)
	return exists, err
}
