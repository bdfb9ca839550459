package auth

import (
	"context"
	"strings"

	"gitlab.com/codearena.net/internal/core/ports/primary"
	"gitlab.com/codearena.net/internal/core/ports/secondary"
	"gitlab.com/codearena.net/internal/domain"
	"gitlab.com/codearena.net/internal/static/errs"
)

var _ IAuthService = &googleAuthService{}

type googleAuthService struct {
	userPort    secondary.UserPort
	jwtProvider primary.JWTService
	logger      primary.Logger
}

func NewGoogleAuthService(userPort secondary.UserPort, jwtProvider primary.JWTService, logger primary.Logger) IAuthService {
	return &googleAuthService{
		userPort:    userPort,
		jwtProvider: jwtProvider,
		logger:      logger,
	}
}

func (g googleAuthService) ProviderName() domain.Provider {
	return domain.ProviderGoogle
}

// Login signs in a Google account, creating the local record on first use
func (g googleAuthService) Login(ctx context.Context, user *domain.Users) (*domain.LoginResponse, error) {
	if user.GoogleID == nil {
		return nil, errs.InvalidCredentials
	}
	if user.Email == nil {
		return nil, errs.EmailRequired
	}

	usr, err := g.userPort.GetByGoogleID(ctx, *user.GoogleID)
	if err != nil {
		return nil, err
	}

	if usr == nil {
		user.PasswordHash = nil
		if user.Name == "" {
			user.Name = strings.Split(*user.Email, "@")[0]
		}
		user.Role = domain.RoleUser
		user.AuthProvider = string(domain.ProviderGoogle)
		if err := g.userPort.Create(ctx, user); err != nil {
			g.logger.Error("Failed to create google user", "error", err)
			return nil, errs.FailedToCreateUser
		}
		usr = user
	}

	token, err := generateToken(ctx, g.jwtProvider, usr)
	if err != nil {
		return nil, err
	}

	return &domain.LoginResponse{
		Token: token,
		User:  userInfo(usr),
	}, nil
}
