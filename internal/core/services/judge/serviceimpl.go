package judge

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"gitlab.com/codearena.net/internal/core/ports/primary"
	"gitlab.com/codearena.net/internal/core/ports/secondary"
	"gitlab.com/codearena.net/internal/domain"
	"gitlab.com/codearena.net/internal/static/errs"
)

var _ IJudgeService = (*JudgeService)(nil)

// JudgeService implements the judging pipeline: resolve the problem, run
// every test case through the sandbox, aggregate the results into a
// verdict and persist the submission.
type JudgeService struct {
	problemPort    secondary.ProblemPort
	submissionPort secondary.SubmissionPort
	runner         secondary.CodeRunner
	languagePort   secondary.LanguageConfigPort
	logger         primary.Logger
	maxConcurrency int
}

// NewJudgeService creates a new judge service. maxConcurrency bounds how
// many sandbox calls may be in flight for one judging run.
func NewJudgeService(
	problemPort secondary.ProblemPort,
	submissionPort secondary.SubmissionPort,
	runner secondary.CodeRunner,
	languagePort secondary.LanguageConfigPort,
	logger primary.Logger,
	maxConcurrency int,
) *JudgeService {
	if maxConcurrency < 1 {
		maxConcurrency = 1
	}
	return &JudgeService{
		problemPort:    problemPort,
		submissionPort: submissionPort,
		runner:         runner,
		languagePort:   languagePort,
		logger:         logger,
		maxConcurrency: maxConcurrency,
	}
}

// Submit runs one judging run end to end. Sandbox failures inside the loop
// degrade to failing test results so the run always covers every case;
// only pre-flight resolution errors abort the run.
func (s *JudgeService) Submit(ctx context.Context, req *domain.SubmissionRequest, userID string) (*domain.Submission, error) {
	s.logger.Info("Judging submission",
		"problemId", req.ProblemID,
		"userId", userID,
		"language", req.Language)

	problem, err := s.problemPort.GetByID(ctx, req.ProblemID)
	if err != nil {
		s.logger.Error("Failed to resolve problem", "problemId", req.ProblemID, "error", err)
		return nil, fmt.Errorf("failed to resolve problem: %w", err)
	}
	if problem == nil {
		return nil, errs.ProblemNotFound
	}

	if len(problem.TestCases) == 0 {
		return nil, errs.NoTestCases
	}

	if err := s.validateLanguage(ctx, req.Language); err != nil {
		return nil, err
	}

	results := s.runTestCases(ctx, req, problem.TestCases)

	allPassed := true
	for _, r := range results {
		if !r.IsCorrect {
			allPassed = false
			break
		}
	}

	verdict := domain.VerdictFailed
	if allPassed {
		verdict = domain.VerdictPassed
	}

	submission := assembleSubmission(req, userID, results, allPassed, verdict)

	saved, err := s.submissionPort.Save(ctx, submission)
	if err != nil {
		s.logger.Error("Failed to save submission", "problemId", req.ProblemID, "userId", userID, "error", err)
		return nil, fmt.Errorf("failed to save submission: %w", err)
	}

	s.logger.Info("Submission judged",
		"submissionId", saved.ID,
		"verdict", saved.Verdict,
		"testCases", len(saved.TestResults))

	return saved, nil
}

// runTestCases fans the sandbox calls out over a bounded worker pool.
// Results land in a pre-sized slice indexed by test-case position, so the
// final order always matches the problem's test-case order no matter which
// call finishes first.
func (s *JudgeService) runTestCases(ctx context.Context, req *domain.SubmissionRequest, testCases []domain.TestCase) []domain.TestResult {
	results := make([]domain.TestResult, len(testCases))

	sem := make(chan struct{}, s.maxConcurrency)
	var wg sync.WaitGroup

	for i, tc := range testCases {
		wg.Add(1)
		go func(i int, tc domain.TestCase) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			results[i] = s.runTestCase(ctx, req, tc, i)
		}(i, tc)
	}

	wg.Wait()
	return results
}

// runTestCase executes one case. A sandbox error yields an empty actual
// output rather than a distinct case state, so it is judged like a program
// that printed nothing.
func (s *JudgeService) runTestCase(ctx context.Context, req *domain.SubmissionRequest, tc domain.TestCase, index int) domain.TestResult {
	outcome := s.runner.Run(ctx, req.Language, req.Code, tc.Input)

	actualOutput := ""
	if outcome.Failed() {
		s.logger.Warn("Sandbox execution failed",
			"problemId", req.ProblemID,
			"testCase", index,
			"error", outcome.Error)
	} else {
		actualOutput = strings.TrimSpace(outcome.Output)
	}

	return domain.TestResult{
		Input:          tc.Input,
		ExpectedOutput: tc.ExpectedOutput,
		ActualOutput:   actualOutput,
		IsCorrect:      OutputsMatch(tc.ExpectedOutput, actualOutput),
	}
}

// ListSubmissions retrieves the user's submission history
func (s *JudgeService) ListSubmissions(ctx context.Context, userID string) ([]*domain.Submission, error) {
	submissions, err := s.submissionPort.FindByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to list submissions", "userId", userID, "error", err)
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	return submissions, nil
}

func (s *JudgeService) validateLanguage(ctx context.Context, language string) error {
	active, err := s.languagePort.GetActiveLanguages(ctx)
	if err != nil {
		s.logger.Error("Failed to get active languages", "error", err)
		return fmt.Errorf("failed to get active languages: %w", err)
	}
	for _, name := range active {
		if name == language {
			return nil
		}
	}
	return errs.LanguageNotSupported
}
