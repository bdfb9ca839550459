package problem

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"gitlab.com/codearena.net/internal/core/ports/primary"
	"gitlab.com/codearena.net/internal/core/ports/secondary"
	"gitlab.com/codearena.net/internal/domain"
	"gitlab.com/codearena.net/internal/static/errs"
)

var _ IProblemService = (*ProblemService)(nil)

// ProblemService implements problem authoring on top of the problem store
type ProblemService struct {
	problemPort secondary.ProblemPort
	logger      primary.Logger
}

// NewProblemService creates a new problem service
func NewProblemService(problemPort secondary.ProblemPort, logger primary.Logger) *ProblemService {
	return &ProblemService{
		problemPort: problemPort,
		logger:      logger,
	}
}

// CreateProblem adds a problem to the catalogue. Titles are unique.
func (s *ProblemService) CreateProblem(ctx context.Context, problem *domain.Problem, createdBy string) (*domain.Problem, error) {
	existing, err := s.problemPort.GetByTitle(ctx, problem.Title)
	if err != nil {
		return nil, fmt.Errorf("failed to check problem title: %w", err)
	}
	if existing != nil {
		return nil, errs.DuplicateTitle
	}

	problem.CreatedBy = createdBy
	if err := s.problemPort.Create(ctx, problem); err != nil {
		s.logger.Error("Failed to create problem", "title", problem.Title, "error", err)
		return nil, err
	}

	s.logger.Info("Problem created", "problemId", problem.ID, "title", problem.Title)
	return problem, nil
}

// GetProblem retrieves a problem by ID
func (s *ProblemService) GetProblem(ctx context.Context, id uuid.UUID) (*domain.Problem, error) {
	problem, err := s.problemPort.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get problem: %w", err)
	}
	if problem == nil {
		return nil, errs.ProblemNotFound
	}
	return problem, nil
}

// ListProblems retrieves the whole catalogue
func (s *ProblemService) ListProblems(ctx context.Context) ([]*domain.Problem, error) {
	return s.problemPort.List(ctx)
}

// UpdateProblem overwrites a problem's authored fields
func (s *ProblemService) UpdateProblem(ctx context.Context, id uuid.UUID, problem *domain.Problem) (*domain.Problem, error) {
	existing, err := s.problemPort.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get problem: %w", err)
	}
	if existing == nil {
		return nil, errs.ProblemNotFound
	}

	existing.Title = problem.Title
	existing.Description = problem.Description
	existing.InputFormat = problem.InputFormat
	existing.OutputFormat = problem.OutputFormat
	existing.Difficulty = problem.Difficulty
	existing.Tags = problem.Tags
	existing.TestCases = problem.TestCases

	if err := s.problemPort.Update(ctx, existing); err != nil {
		s.logger.Error("Failed to update problem", "problemId", id, "error", err)
		return nil, err
	}

	return existing, nil
}

// DeleteProblem removes a problem from the catalogue
func (s *ProblemService) DeleteProblem(ctx context.Context, id uuid.UUID) error {
	existing, err := s.problemPort.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get problem: %w", err)
	}
	if existing == nil {
		return errs.ProblemNotFound
	}

	if err := s.problemPort.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete problem", "problemId", id, "error", err)
		return err
	}

	s.logger.Info("Problem deleted", "problemId", id)
	return nil
}
