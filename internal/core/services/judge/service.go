package judge

import (
	"context"

	"gitlab.com/codearena.net/internal/domain"
)

// IJudgeService drives one judging run per submission request
type IJudgeService interface {
	// Submit judges a submission against its problem's test cases and
	// persists the finished record. Fails with errs.ProblemNotFound when
	// the problem does not exist and errs.NoTestCases when it has no test
	// cases; in either case nothing is persisted.
	Submit(ctx context.Context, req *domain.SubmissionRequest, userID string) (*domain.Submission, error)

	// ListSubmissions retrieves the user's submissions, most recent first
	ListSubmissions(ctx context.Context, userID string) ([]*domain.Submission, error)
}
