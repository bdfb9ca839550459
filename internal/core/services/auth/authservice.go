package auth

import (
	"context"

	"gitlab.com/codearena.net/internal/domain"
)

type IAuthService interface {
	ProviderName() domain.Provider
	Login(ctx context.Context, user *domain.Users) (*domain.LoginResponse, error)
}

// IRegistrationService covers local account creation; provider logins
// create accounts implicitly.
type IRegistrationService interface {
	Register(ctx context.Context, name, email, password, role string) error
}
