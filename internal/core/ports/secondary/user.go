package secondary

import (
	"context"

	"gitlab.com/codearena.net/internal/domain"
)

type UserPort interface {
	Create(ctx context.Context, user *domain.Users) error

	GetByID(ctx context.Context, id string) (*domain.Users, error)

	GetByEmail(ctx context.Context, email string) (*domain.Users, error)

	GetByGoogleID(ctx context.Context, googleID string) (*domain.Users, error)
}
