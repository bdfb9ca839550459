package user

import (
	"context"
	"fmt"

	"gitlab.com/codearena.net/internal/core/ports/primary"
	"gitlab.com/codearena.net/internal/core/ports/secondary"
	"gitlab.com/codearena.net/internal/domain"
	"gitlab.com/codearena.net/internal/static/errs"
)

var _ IUserService = (*UserService)(nil)

type UserService struct {
	userPort       secondary.UserPort
	submissionPort secondary.SubmissionPort
	logger         primary.Logger
}

func NewUserService(
	userPort secondary.UserPort,
	submissionPort secondary.SubmissionPort,
	logger primary.Logger,
) *UserService {
	return &UserService{
		userPort:       userPort,
		submissionPort: submissionPort,
		logger:         logger,
	}
}

// GetProfile returns the user's account info together with how many
// distinct problems they have passed and how many submissions they made
func (s *UserService) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	usr, err := s.userPort.GetByID(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to get user", "userId", userID, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if usr == nil {
		return nil, errs.UserNotFound
	}

	submissions, err := s.submissionPort.FindByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to get submissions", "userId", userID, "error", err)
		return nil, fmt.Errorf("failed to get submissions: %w", err)
	}

	solved := make(map[string]struct{})
	for _, sub := range submissions {
		if sub.IsCorrect {
			solved[sub.ProblemID.String()] = struct{}{}
		}
	}

	profile := &domain.Profile{
		Name:             usr.Name,
		Role:             usr.Role,
		TotalSolved:      len(solved),
		TotalSubmissions: len(submissions),
	}
	if usr.Email != nil {
		profile.Email = *usr.Email
	}

	return profile, nil
}
