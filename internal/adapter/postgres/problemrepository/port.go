// package problemrepository contains the PostgreSQL implementation of the problem store
package problemrepository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/jmoiron/sqlx"

	"gitlab.com/codearena.net/internal/core/ports/primary"
	"gitlab.com/codearena.net/internal/core/ports/secondary"
	"gitlab.com/codearena.net/internal/domain"
)

var _ secondary.ProblemPort = (*ProblemRepository)(nil)

// ProblemRepository implements the ProblemPort interface with PostgreSQL.
// Test cases are stored as a JSONB array so authoring order survives the
// round trip; judging depends on that order.
type ProblemRepository struct {
	db     *sqlx.DB
	logger primary.Logger
}

// NewProblemRepository creates a new PostgreSQL problem repository
func NewProblemRepository(db *sqlx.DB, logger primary.Logger) *ProblemRepository {
	return &ProblemRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new problem and fills in the assigned ID and timestamps
func (r *ProblemRepository) Create(ctx context.Context, problem *domain.Problem) error {
	testCasesJSON, err := json.Marshal(problem.TestCases)
	if err != nil {
		r.logger.Error("Failed to marshal test cases", "error", err)
		return fmt.Errorf("failed to marshal test cases: %w", err)
	}

	query := `
		INSERT INTO problems (
			title, description, input_format, output_format,
			difficulty, tags, test_cases, created_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err = r.db.QueryRowContext(
		ctx,
		query,
		problem.Title,
		problem.Description,
		problem.InputFormat,
		problem.OutputFormat,
		problem.Difficulty,
		pq.Array(problem.Tags),
		testCasesJSON,
		problem.CreatedBy,
	).Scan(&problem.ID, &problem.CreatedAt, &problem.UpdatedAt)

	if err != nil {
		r.logger.Error("Failed to create problem", "title", problem.Title, "error", err)
		return fmt.Errorf("failed to create problem: %w", err)
	}

	return nil
}

// GetByID retrieves a problem by ID. Returns (nil, nil) when absent.
func (r *ProblemRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Problem, error) {
	query := `
		SELECT id, title, description, input_format, output_format,
			   difficulty, tags, test_cases, created_by, created_at, updated_at
		FROM problems
		WHERE id = $1
	`
	return r.scanProblem(r.db.QueryRowContext(ctx, query, id))
}

// GetByTitle retrieves a problem by title. Returns (nil, nil) when absent.
func (r *ProblemRepository) GetByTitle(ctx context.Context, title string) (*domain.Problem, error) {
	query := `
		SELECT id, title, description, input_format, output_format,
			   difficulty, tags, test_cases, created_by, created_at, updated_at
		FROM problems
		WHERE title = $1
	`
	return r.scanProblem(r.db.QueryRowContext(ctx, query, title))
}

// List retrieves all problems, newest first
func (r *ProblemRepository) List(ctx context.Context) ([]*domain.Problem, error) {
	query := `
		SELECT id, title, description, input_format, output_format,
			   difficulty, tags, test_cases, created_by, created_at, updated_at
		FROM problems
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to list problems", "error", err)
		return nil, fmt.Errorf("failed to list problems: %w", err)
	}
	defer rows.Close()

	var problems []*domain.Problem
	for rows.Next() {
		problem, err := scanProblemRow(rows)
		if err != nil {
			r.logger.Error("Failed to scan problem", "error", err)
			return nil, fmt.Errorf("failed to scan problem: %w", err)
		}
		problems = append(problems, problem)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating problems: %w", err)
	}

	return problems, nil
}

// Update overwrites a problem's authored fields
func (r *ProblemRepository) Update(ctx context.Context, problem *domain.Problem) error {
	testCasesJSON, err := json.Marshal(problem.TestCases)
	if err != nil {
		r.logger.Error("Failed to marshal test cases", "error", err)
		return fmt.Errorf("failed to marshal test cases: %w", err)
	}

	query := `
		UPDATE problems SET
			title = $1,
			description = $2,
			input_format = $3,
			output_format = $4,
			difficulty = $5,
			tags = $6,
			test_cases = $7,
			updated_at = NOW()
		WHERE id = $8
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		problem.Title,
		problem.Description,
		problem.InputFormat,
		problem.OutputFormat,
		problem.Difficulty,
		pq.Array(problem.Tags),
		testCasesJSON,
		problem.ID,
	)
	if err != nil {
		r.logger.Error("Failed to update problem", "problemId", problem.ID, "error", err)
		return fmt.Errorf("failed to update problem: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update problem: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// Delete removes a problem by ID
func (r *ProblemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM problems WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete problem", "problemId", id, "error", err)
		return fmt.Errorf("failed to delete problem: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete problem: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *ProblemRepository) scanProblem(row rowScanner) (*domain.Problem, error) {
	problem, err := scanProblemRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("Failed to get problem", "error", err)
		return nil, fmt.Errorf("failed to get problem: %w", err)
	}
	return problem, nil
}

func scanProblemRow(row rowScanner) (*domain.Problem, error) {
	var problem domain.Problem
	var tags pq.StringArray
	var testCasesJSON []byte

	err := row.Scan(
		&problem.ID,
		&problem.Title,
		&problem.Description,
		&problem.InputFormat,
		&problem.OutputFormat,
		&problem.Difficulty,
		&tags,
		&testCasesJSON,
		&problem.CreatedBy,
		&problem.CreatedAt,
		&problem.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	problem.Tags = tags
	if err := json.Unmarshal(testCasesJSON, &problem.TestCases); err != nil {
		return nil, fmt.Errorf("failed to unmarshal test cases: %w", err)
	}

	return &problem, nil
}
