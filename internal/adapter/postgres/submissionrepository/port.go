// package submissionrepository contains the PostgreSQL implementation of the submission store
package submissionrepository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/jmoiron/sqlx"

	"gitlab.com/codearena.net/internal/core/ports/primary"
	"gitlab.com/codearena.net/internal/core/ports/secondary"
	"gitlab.com/codearena.net/internal/domain"
)

var _ secondary.SubmissionPort = (*SubmissionRepository)(nil)

// SubmissionRepository implements the SubmissionPort interface with
// PostgreSQL. Test results are stored as a JSONB array in case order; a
// submission is inserted exactly once, fully formed.
type SubmissionRepository struct {
	db     *sqlx.DB
	logger primary.Logger
}

// NewSubmissionRepository creates a new PostgreSQL submission repository
func NewSubmissionRepository(db *sqlx.DB, logger primary.Logger) *SubmissionRepository {
	return &SubmissionRepository{
		db:     db,
		logger: logger,
	}
}

// Save inserts a judged submission and returns it with the assigned ID and
// timestamps filled in
func (r *SubmissionRepository) Save(ctx context.Context, submission *domain.Submission) (*domain.Submission, error) {
	testResultsJSON, err := json.Marshal(submission.TestResults)
	if err != nil {
		r.logger.Error("Failed to marshal test results", "error", err)
		return nil, fmt.Errorf("failed to marshal test results: %w", err)
	}

	query := `
		INSERT INTO submissions (
			problem_id, user_id, code, language,
			input, expected_output, actual_output,
			is_correct, verdict, test_results
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`

	saved := *submission
	err = r.db.QueryRowContext(
		ctx,
		query,
		submission.ProblemID,
		submission.UserID,
		submission.Code,
		submission.Language,
		submission.Input,
		submission.ExpectedOutput,
		submission.ActualOutput,
		submission.IsCorrect,
		submission.Verdict,
		testResultsJSON,
	).Scan(&saved.ID, &saved.CreatedAt, &saved.UpdatedAt)

	if err != nil {
		r.logger.Error("Failed to save submission", "problemId", submission.ProblemID, "error", err)
		return nil, fmt.Errorf("failed to save submission: %w", err)
	}

	return &saved, nil
}

// FindByUserID retrieves a user's submissions, most recent first
func (r *SubmissionRepository) FindByUserID(ctx context.Context, userID string) ([]*domain.Submission, error) {
	query := `
		SELECT id, problem_id, user_id, code, language,
			   input, expected_output, actual_output,
			   is_correct, verdict, test_results, created_at, updated_at
		FROM submissions
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	return r.querySubmissions(ctx, query, userID)
}

// FindByProblemID retrieves all submissions against one problem, most
// recent first
func (r *SubmissionRepository) FindByProblemID(ctx context.Context, problemID uuid.UUID) ([]*domain.Submission, error) {
	query := `
		SELECT id, problem_id, user_id, code, language,
			   input, expected_output, actual_output,
			   is_correct, verdict, test_results, created_at, updated_at
		FROM submissions
		WHERE problem_id = $1
		ORDER BY created_at DESC
	`
	return r.querySubmissions(ctx, query, problemID)
}

func (r *SubmissionRepository) querySubmissions(ctx context.Context, query string, arg interface{}) ([]*domain.Submission, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		r.logger.Error("Failed to query submissions", "error", err)
		return nil, fmt.Errorf("failed to query submissions: %w", err)
	}
	defer rows.Close()

	var submissions []*domain.Submission
	for rows.Next() {
		var submission domain.Submission
		var testResultsJSON []byte

		if err := rows.Scan(
			&submission.ID,
			&submission.ProblemID,
			&submission.UserID,
			&submission.Code,
			&submission.Language,
			&submission.Input,
			&submission.ExpectedOutput,
			&submission.ActualOutput,
			&submission.IsCorrect,
			&submission.Verdict,
			&testResultsJSON,
			&submission.CreatedAt,
			&submission.UpdatedAt,
		); err != nil {
			r.logger.Error("Failed to scan submission", "error", err)
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}

		if err := json.Unmarshal(testResultsJSON, &submission.TestResults); err != nil {
			return nil, fmt.Errorf("failed to unmarshal test results: %w", err)
		}

		submissions = append(submissions, &submission)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating submissions: %w", err)
	}

	return submissions, nil
}
