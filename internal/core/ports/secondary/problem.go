package secondary

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/codearena.net/internal/domain"
)

// ProblemPort is the problem store consumed by the judging pipeline and the
// authoring service. GetByID returns (nil, nil) when the problem does not
// exist; test cases come back in authoring order.
type ProblemPort interface {
	Create(ctx context.Context, problem *domain.Problem) error

	GetByID(ctx context.Context, id uuid.UUID) (*domain.Problem, error)

	GetByTitle(ctx context.Context, title string) (*domain.Problem, error)

	List(ctx context.Context) ([]*domain.Problem, error)

	Update(ctx context.Context, problem *domain.Problem) error

	Delete(ctx context.Context, id uuid.UUID) error
}
