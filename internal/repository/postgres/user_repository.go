package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/devmatch/devmatch-backend/internal/domain"
	"github.com/devmatch/devmatch-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Upsert(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, email, display_name, avatar_url)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET email = EXCLUDED.email,
		    display_name = EXCLUDED.display_name,
		    avatar_url = EXCLUDED.avatar_url,
		    updated_at = CURRENT_TIMESTAMP
		RETURNING created_at, updated_at
	`
	return r.db.QueryRowContext(ctx, query, user.ID, user.Email, user.DisplayName, user.AvatarURL).
		Scan(&user.CreatedAt, &user.UpdatedAt)
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	query := `SELECT * FROM users WHERE id = $1`
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ListUnswiped(ctx context.Context, viewerID string, limit int) ([]*domain.User, error) {
	var users []*domain.User
	query := `
		SELECT u.* FROM users u
		WHERE u.id <> $1
		  AND NOT EXISTS (
			SELECT 1 FROM swipes s
			WHERE s.swiper_id = $1 AND s.target_id = u.id AND s.target_type = 'developer'
		  )
		ORDER BY u.created_at DESC
		LIMIT $2
	`
	err := r.db.SelectContext(ctx, &users, query, viewerID, limit)
	return users, err
}
