package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v5"

	"gitlab.com/codearena.net/internal/core/ports/primary"
	"gitlab.com/codearena.net/internal/core/ports/secondary"
	"gitlab.com/codearena.net/internal/domain"
	"gitlab.com/codearena.net/internal/static/errs"
)

var _ IAuthService = &localAuthService{}
var _ IRegistrationService = &localAuthService{}

type localAuthService struct {
	userPort    secondary.UserPort
	jwtProvider primary.JWTService
	logger      primary.Logger
}

func NewLocalAuthService(
	userPort secondary.UserPort,
	jwtProvider primary.JWTService,
	logger primary.Logger,
) *localAuthService {
	return &localAuthService{
		userPort:    userPort,
		jwtProvider: jwtProvider,
		logger:      logger,
	}
}

func (s localAuthService) ProviderName() domain.Provider {
	return domain.ProviderLocal
}

// Register creates a local account with a bcrypt password hash
func (s localAuthService) Register(ctx context.Context, name, email, password, role string) error {
	existing, err := s.userPort.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return errs.EmailTaken
	}

	hash, err := s.jwtProvider.EncryptPassword(ctx, password)
	if err != nil {
		s.logger.Error("Failed to hash password", "error", err)
		return errs.InternalError
	}

	if role == "" {
		role = domain.RoleUser
	}

	user := &domain.Users{
		Name:         name,
		Email:        &email,
		PasswordHash: &hash,
		Role:         role,
		AuthProvider: string(domain.ProviderLocal),
	}
	if err := s.userPort.Create(ctx, user); err != nil {
		s.logger.Error("Failed to create user", "email", email, "error", err)
		return errs.FailedToCreateUser
	}

	return nil
}

// Login verifies credentials and issues a signed token
func (s localAuthService) Login(ctx context.Context, user *domain.Users) (*domain.LoginResponse, error) {
	if user.Email == nil || user.PasswordHash == nil {
		return nil, errs.InvalidCredentials
	}

	usr, err := s.userPort.GetByEmail(ctx, *user.Email)
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, errs.UserNotFound
	}
	if usr.PasswordHash == nil {
		return nil, errs.InvalidCredentials
	}

	// Login requests carry the plain password in the PasswordHash slot
	valid, err := s.jwtProvider.VerifyPassword(ctx, *usr.PasswordHash, *user.PasswordHash)
	if err != nil || !valid {
		return nil, errs.InvalidCredentials
	}

	token, err := generateToken(ctx, s.jwtProvider, usr)
	if err != nil {
		return nil, err
	}

	return &domain.LoginResponse{
		Token: token,
		User:  userInfo(usr),
	}, nil
}

func generateToken(ctx context.Context, jwtProvider primary.JWTService, user *domain.Users) (string, error) {
	claims := map[string]interface{}{
		"userId": user.ID.String(),
		"name":   user.Name,
		"role":   user.Role,
	}
	token, err := jwtProvider.GenerateTokenHMAC(ctx, jwt.SigningMethodHS256.Name, claims)
	if err != nil {
		return "", errs.GeneratingToken
	}
	return token, nil
}

func userInfo(user *domain.Users) domain.UserInfo {
	info := domain.UserInfo{
		Name: user.Name,
		Role: user.Role,
	}
	if user.Email != nil {
		info.Email = *user.Email
	}
	return info
}
