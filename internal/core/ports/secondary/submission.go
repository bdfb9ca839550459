package secondary

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/codearena.net/internal/domain"
)

// SubmissionPort persists fully-judged submissions. Save assigns the ID and
// timestamps and returns the stored record; a submission is written exactly
// once and never updated.
type SubmissionPort interface {
	Save(ctx context.Context, submission *domain.Submission) (*domain.Submission, error)

	// FindByUserID returns the user's submissions, most recent first
	FindByUserID(ctx context.Context, userID string) ([]*domain.Submission, error)

	FindByProblemID(ctx context.Context, problemID uuid.UUID) ([]*domain.Submission, error)
}
