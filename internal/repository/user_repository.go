package repository

import (
	"context"

	"github.com/devmatch/devmatch-backend/internal/domain"
)

type UserRepository interface {
	// Upsert inserts the user or, if the id already exists, refreshes the
	// profile fields. Repeated logins must never duplicate identity.
	Upsert(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// ListUnswiped returns users the viewer has not yet swiped on as a
	// developer target, excluding the viewer themselves.
	ListUnswiped(ctx context.Context, viewerID string, limit int) ([]*domain.User, error)
}
