package problem

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/codearena.net/internal/domain"
)

// IProblemService manages the problem catalogue
type IProblemService interface {
	CreateProblem(ctx context.Context, problem *domain.Problem, createdBy string) (*domain.Problem, error)

	GetProblem(ctx context.Context, id uuid.UUID) (*domain.Problem, error)

	ListProblems(ctx context.Context) ([]*domain.Problem, error)

	UpdateProblem(ctx context.Context, id uuid.UUID, problem *domain.Problem) (*domain.Problem, error)

	DeleteProblem(ctx context.Context, id uuid.UUID) error
}
