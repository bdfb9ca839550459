package problem

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"gitlab.com/codearena.net/internal/domain"
	"gitlab.com/codearena.net/internal/static/errs"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}
func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Warn(msg string, args ...interface{})  {}

// memoryProblemPort is an in-memory ProblemPort
type memoryProblemPort struct {
	problems []*domain.Problem
}

func (m *memoryProblemPort) Create(ctx context.Context, problem *domain.Problem) error {
	if problem.ID == uuid.Nil {
		problem.ID = uuid.New()
	}
	m.problems = append(m.problems, problem)
	return nil
}

func (m *memoryProblemPort) GetByID(ctx context.Context, id uuid.UUID) (*domain.Problem, error) {
	for _, p := range m.problems {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (m *memoryProblemPort) GetByTitle(ctx context.Context, title string) (*domain.Problem, error) {
	for _, p := range m.problems {
		if p.Title == title {
			return p, nil
		}
	}
	return nil, nil
}

func (m *memoryProblemPort) List(ctx context.Context) ([]*domain.Problem, error) {
	return m.problems, nil
}

func (m *memoryProblemPort) Update(ctx context.Context, problem *domain.Problem) error {
	for i, p := range m.problems {
		if p.ID == problem.ID {
			m.problems[i] = problem
			return nil
		}
	}
	return errors.New("not found")
}

func (m *memoryProblemPort) Delete(ctx context.Context, id uuid.UUID) error {
	for i, p := range m.problems {
		if p.ID == id {
			m.problems = append(m.problems[:i], m.problems[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

func TestCreateProblem_RejectsDuplicateTitle(t *testing.T) {
	port := &memoryProblemPort{}
	svc := NewProblemService(port, nopLogger{})
	ctx := context.Background()

	first := &domain.Problem{Title: "Sum of Two Numbers"}
	if _, err := svc.CreateProblem(ctx, first, "admin-1"); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if first.CreatedBy != "admin-1" {
		t.Fatalf("expected author to be recorded, got %q", first.CreatedBy)
	}

	_, err := svc.CreateProblem(ctx, &domain.Problem{Title: "Sum of Two Numbers"}, "admin-1")
	if !errors.Is(err, errs.DuplicateTitle) {
		t.Fatalf("expected DuplicateTitle, got: %v", err)
	}
	if len(port.problems) != 1 {
		t.Fatalf("expected one stored problem, got %d", len(port.problems))
	}
}

func TestGetProblem_NotFound(t *testing.T) {
	svc := NewProblemService(&memoryProblemPort{}, nopLogger{})

	_, err := svc.GetProblem(context.Background(), uuid.New())
	if !errors.Is(err, errs.ProblemNotFound) {
		t.Fatalf("expected ProblemNotFound, got: %v", err)
	}
}

func TestUpdateProblem_OverwritesAuthoredFields(t *testing.T) {
	port := &memoryProblemPort{}
	svc := NewProblemService(port, nopLogger{})
	ctx := context.Background()

	created, err := svc.CreateProblem(ctx, &domain.Problem{
		Title:      "Sum of Two Numbers",
		Difficulty: "Easy",
		TestCases:  []domain.TestCase{{Input: "1 1", ExpectedOutput: "2"}},
	}, "admin-1")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.UpdateProblem(ctx, created.ID, &domain.Problem{
		Title:      "Sum of Three Numbers",
		Difficulty: "Medium",
		TestCases: []domain.TestCase{
			{Input: "1 1 1", ExpectedOutput: "3"},
			{Input: "2 2 2", ExpectedOutput: "6"},
		},
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Title != "Sum of Three Numbers" || updated.Difficulty != "Medium" {
		t.Fatalf("authored fields not overwritten: %+v", updated)
	}
	if len(updated.TestCases) != 2 {
		t.Fatalf("expected 2 test cases, got %d", len(updated.TestCases))
	}
	if updated.CreatedBy != "admin-1" {
		t.Fatalf("author must survive updates, got %q", updated.CreatedBy)
	}
}

func TestDeleteProblem_NotFound(t *testing.T) {
	svc := NewProblemService(&memoryProblemPort{}, nopLogger{})

	err := svc.DeleteProblem(context.Background(), uuid.New())
	if !errors.Is(err, errs.ProblemNotFound) {
		t.Fatalf("expected ProblemNotFound, got: %v", err)
	}
}
