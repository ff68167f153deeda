package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/devmatch/devmatch-backend/internal/domain"
	"github.com/devmatch/devmatch-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type matchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) repository.MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) Create(ctx context.Context, match *domain.Match) error {
	user1ID, user2ID := domain.NormalizePair(match.User1ID, match.User2ID)

	// ON CONFLICT DO NOTHING makes the reciprocity check-then-create
	// race safe: the losing insert sees no returned row and reports
	// ErrMatchAlreadyExists instead of duplicating the pair.
	query := `
		INSERT INTO matches (user1_id, user2_id, is_active)
		VALUES ($1, $2, $3)
		ON CONFLICT (user1_id, user2_id) DO NOTHING
		RETURNING id, matched_at
	`
	err := r.db.QueryRowContext(ctx, query, user1ID, user2ID, match.IsActive).
		Scan(&match.ID, &match.MatchedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrMatchAlreadyExists
		}
		return err
	}

	match.User1ID = user1ID
	match.User2ID = user2ID
	return nil
}

func (r *matchRepository) GetByID(ctx context.Context, id int64) (*domain.Match, error) {
	var match domain.Match
	query := `SELECT * FROM matches WHERE id = $1`
	err := r.db.GetContext(ctx, &match, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}

func (r *matchRepository) GetByUsers(ctx context.Context, user1ID, user2ID string) (*domain.Match, error) {
	user1ID, user2ID = domain.NormalizePair(user1ID, user2ID)

	var match domain.Match
	query := `SELECT * FROM matches WHERE user1_id = $1 AND user2_id = $2`
	err := r.db.GetContext(ctx, &match, query, user1ID, user2ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}

func (r *matchRepository) ListActiveByUser(ctx context.Context, userID string) ([]*domain.Match, error) {
	var matches []*domain.Match
	query := `
		SELECT * FROM matches
		WHERE (user1_id = $1 OR user2_id = $1) AND is_active = true
		ORDER BY matched_at DESC
	`
	err := r.db.SelectContext(ctx, &matches, query, userID)
	return matches, err
}
