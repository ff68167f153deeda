package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/devmatch/devmatch-backend/internal/domain"
	"github.com/devmatch/devmatch-backend/internal/repository"
	"github.com/devmatch/devmatch-backend/internal/security"
	"github.com/google/uuid"
)

// AuthUseCase sits at the identity-provider boundary. The provider has
// already verified the user; this side only upserts the profile and
// issues the session token the rest of the API trusts.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwt      *security.JWTManager
}

func NewAuthUseCase(userRepo repository.UserRepository, jwt *security.JWTManager) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		jwt:      jwt,
	}
}

// LoginRequest carries the identity fields the external provider
// resolved. ID is optional: a missing id gets a fresh stable one.
type LoginRequest struct {
	ID          string  `json:"id"`
	Email       string  `json:"email" binding:"required,email"`
	DisplayName string  `json:"display_name" binding:"required"`
	AvatarURL   *string `json:"avatar_url"`
}

type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *domain.User `json:"user"`
}

// Login upserts the user by id and issues a session token. Repeated
// logins refresh profile fields but never duplicate identity.
func (uc *AuthUseCase) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}

	user := &domain.User{
		ID:          id,
		Email:       req.Email,
		DisplayName: req.DisplayName,
		AvatarURL:   req.AvatarURL,
	}
	if err := uc.userRepo.Upsert(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	token, expiresAt, err := uc.jwt.Generate(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	return &LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

// Me returns the current user's record.
func (uc *AuthUseCase) Me(ctx context.Context, userID string) (*domain.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}
