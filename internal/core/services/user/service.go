package user

import (
	"context"

	"gitlab.com/codearena.net/internal/domain"
)

type IUserService interface {
	// GetProfile aggregates a user's account info with their solve stats
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
}
