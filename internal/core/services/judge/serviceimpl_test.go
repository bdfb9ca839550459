package judge

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"gitlab.com/codearena.net/internal/domain"
	"gitlab.com/codearena.net/internal/static/errs"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}
func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Warn(msg string, args ...interface{})  {}

type fakeProblemPort struct {
	problem *domain.Problem
	err     error
}

func (f *fakeProblemPort) GetByID(ctx context.Context, id uuid.UUID) (*domain.Problem, error) {
	return f.problem, f.err
}
func (f *fakeProblemPort) Create(ctx context.Context, problem *domain.Problem) error { return nil }
func (f *fakeProblemPort) GetByTitle(ctx context.Context, title string) (*domain.Problem, error) {
	return nil, nil
}
func (f *fakeProblemPort) List(ctx context.Context) ([]*domain.Problem, error)       { return nil, nil }
func (f *fakeProblemPort) Update(ctx context.Context, problem *domain.Problem) error { return nil }
func (f *fakeProblemPort) Delete(ctx context.Context, id uuid.UUID) error            { return nil }

type fakeSubmissionPort struct {
	saved   []*domain.Submission
	saveErr error
	history []*domain.Submission
	listErr error
}

func (f *fakeSubmissionPort) Save(ctx context.Context, submission *domain.Submission) (*domain.Submission, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	stored := *submission
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.saved = append(f.saved, &stored)
	return &stored, nil
}

func (f *fakeSubmissionPort) FindByUserID(ctx context.Context, userID string) ([]*domain.Submission, error) {
	return f.history, f.listErr
}

func (f *fakeSubmissionPort) FindByProblemID(ctx context.Context, problemID uuid.UUID) ([]*domain.Submission, error) {
	return nil, nil
}

// fakeRunner maps each test-case input to a scripted outcome
type fakeRunner struct {
	run func(input string) *domain.ExecutionOutcome
}

func (f *fakeRunner) Run(ctx context.Context, language, code, input string) *domain.ExecutionOutcome {
	return f.run(input)
}

type fakeLanguagePort struct {
	active []string
	err    error
}

func (f *fakeLanguagePort) GetActiveLanguages(ctx context.Context) ([]string, error) {
	return f.active, f.err
}
func (f *fakeLanguagePort) GetLanguageConfig(ctx context.Context, name string) (*domain.LanguageConfig, error) {
	return nil, nil
}
func (f *fakeLanguagePort) SaveLanguageConfig(ctx context.Context, config *domain.LanguageConfig) error {
	return nil
}
func (f *fakeLanguagePort) ActivateLanguage(ctx context.Context, name string) error   { return nil }
func (f *fakeLanguagePort) DeactivateLanguage(ctx context.Context, name string) error { return nil }

func newTestService(problem *domain.Problem, runner *fakeRunner) (*JudgeService, *fakeSubmissionPort) {
	subs := &fakeSubmissionPort{}
	svc := NewJudgeService(
		&fakeProblemPort{problem: problem},
		subs,
		runner,
		&fakeLanguagePort{active: []string{"python", "cpp"}},
		nopLogger{},
		4,
	)
	return svc, subs
}

func sumProblem(cases ...domain.TestCase) *domain.Problem {
	return &domain.Problem{
		ID:        uuid.New(),
		Title:     "Sum of Two Numbers",
		TestCases: cases,
	}
}

func submissionRequest(problemID uuid.UUID) *domain.SubmissionRequest {
	return &domain.SubmissionRequest{
		Code:      "print(sum(map(int, input().split())))",
		Language:  "python",
		ProblemID: problemID,
	}
}

func TestSubmit_AllCasesPass(t *testing.T) {
	problem := sumProblem(
		domain.TestCase{Input: "2 2", ExpectedOutput: "4"},
		domain.TestCase{Input: "4 5", ExpectedOutput: "9"},
	)
	runner := &fakeRunner{run: func(input string) *domain.ExecutionOutcome {
		switch input {
		case "2 2":
			return &domain.ExecutionOutcome{Output: "4\n"}
		default:
			return &domain.ExecutionOutcome{Output: "9\n"}
		}
	}}
	svc, subs := newTestService(problem, runner)

	submission, err := svc.Submit(context.Background(), submissionRequest(problem.ID), "user-1")
	if err != nil {
		t.Fatalf("expected success, got: %v", err)
	}
	if submission.Verdict != domain.VerdictPassed {
		t.Fatalf("expected verdict %q, got %q", domain.VerdictPassed, submission.Verdict)
	}
	if !submission.IsCorrect {
		t.Fatalf("expected submission to be correct")
	}
	if len(submission.TestResults) != len(problem.TestCases) {
		t.Fatalf("expected %d test results, got %d", len(problem.TestCases), len(submission.TestResults))
	}
	for i, r := range submission.TestResults {
		if !r.IsCorrect {
			t.Fatalf("expected test result %d to pass, got %+v", i, r)
		}
	}
	// Top-level fields mirror the last test result
	if submission.Input != "4 5" || submission.ExpectedOutput != "9" || submission.ActualOutput != "9" {
		t.Fatalf("last-case mirror wrong: %q %q %q", submission.Input, submission.ExpectedOutput, submission.ActualOutput)
	}
	if len(subs.saved) != 1 {
		t.Fatalf("expected exactly one persisted submission, got %d", len(subs.saved))
	}
	if submission.ID == uuid.Nil {
		t.Fatalf("expected the persisted record with its assigned ID")
	}
}

func TestSubmit_OneFailingCaseFailsTheSubmission(t *testing.T) {
	problem := sumProblem(
		domain.TestCase{Input: "2 2", ExpectedOutput: "4"},
		domain.TestCase{Input: "4 5", ExpectedOutput: "9"},
	)
	runner := &fakeRunner{run: func(input string) *domain.ExecutionOutcome {
		if input == "2 2" {
			return &domain.ExecutionOutcome{Output: "4"}
		}
		return &domain.ExecutionOutcome{Output: "8"}
	}}
	svc, subs := newTestService(problem, runner)

	submission, err := svc.Submit(context.Background(), submissionRequest(problem.ID), "user-1")
	if err != nil {
		t.Fatalf("expected success, got: %v", err)
	}
	if submission.Verdict != domain.VerdictFailed {
		t.Fatalf("expected verdict %q, got %q", domain.VerdictFailed, submission.Verdict)
	}
	if submission.IsCorrect {
		t.Fatalf("expected submission to be incorrect")
	}
	if !submission.TestResults[0].IsCorrect || submission.TestResults[1].IsCorrect {
		t.Fatalf("unexpected per-case outcomes: %+v", submission.TestResults)
	}
	if submission.ActualOutput != "8" {
		t.Fatalf("expected mirrored actual output %q, got %q", "8", submission.ActualOutput)
	}
	// Failed submissions are persisted too
	if len(subs.saved) != 1 {
		t.Fatalf("expected exactly one persisted submission, got %d", len(subs.saved))
	}
}

func TestSubmit_ProblemNotFound(t *testing.T) {
	runner := &fakeRunner{run: func(input string) *domain.ExecutionOutcome {
		t.Fatal("sandbox must not be called")
		return nil
	}}
	svc, subs := newTestService(nil, runner)

	_, err := svc.Submit(context.Background(), submissionRequest(uuid.New()), "user-1")
	if !errors.Is(err, errs.ProblemNotFound) {
		t.Fatalf("expected ProblemNotFound, got: %v", err)
	}
	if len(subs.saved) != 0 {
		t.Fatalf("expected no persisted submission, got %d", len(subs.saved))
	}
}

func TestSubmit_NoTestCases(t *testing.T) {
	problem := sumProblem()
	runner := &fakeRunner{run: func(input string) *domain.ExecutionOutcome {
		t.Fatal("sandbox must not be called")
		return nil
	}}
	svc, subs := newTestService(problem, runner)

	_, err := svc.Submit(context.Background(), submissionRequest(problem.ID), "user-1")
	if !errors.Is(err, errs.NoTestCases) {
		t.Fatalf("expected NoTestCases, got: %v", err)
	}
	if len(subs.saved) != 0 {
		t.Fatalf("expected no persisted submission, got %d", len(subs.saved))
	}
}

func TestSubmit_LanguageNotSupported(t *testing.T) {
	problem := sumProblem(domain.TestCase{Input: "2 2", ExpectedOutput: "4"})
	runner := &fakeRunner{run: func(input string) *domain.ExecutionOutcome {
		t.Fatal("sandbox must not be called")
		return nil
	}}
	svc, _ := newTestService(problem, runner)

	req := submissionRequest(problem.ID)
	req.Language = "brainfuck"
	_, err := svc.Submit(context.Background(), req, "user-1")
	if !errors.Is(err, errs.LanguageNotSupported) {
		t.Fatalf("expected LanguageNotSupported, got: %v", err)
	}
}

func TestSubmit_SandboxErrorBecomesFailingResult(t *testing.T) {
	problem := sumProblem(
		domain.TestCase{Input: "1 1", ExpectedOutput: "2"},
		domain.TestCase{Input: "2 2", ExpectedOutput: "4"},
		domain.TestCase{Input: "3 3", ExpectedOutput: "6"},
	)
	runner := &fakeRunner{run: func(input string) *domain.ExecutionOutcome {
		if input == "2 2" {
			return &domain.ExecutionOutcome{Error: "failed to execute code: connection refused"}
		}
		n, _ := strconv.Atoi(strings.Fields(input)[0])
		return &domain.ExecutionOutcome{Output: strconv.Itoa(n * 2)}
	}}
	svc, subs := newTestService(problem, runner)

	submission, err := svc.Submit(context.Background(), submissionRequest(problem.ID), "user-1")
	if err != nil {
		t.Fatalf("a per-case sandbox failure must not abort the run, got: %v", err)
	}
	if len(submission.TestResults) != 3 {
		t.Fatalf("expected all 3 cases judged, got %d", len(submission.TestResults))
	}
	failed := submission.TestResults[1]
	if failed.IsCorrect {
		t.Fatalf("expected the errored case to fail, got %+v", failed)
	}
	if failed.ActualOutput != "" {
		t.Fatalf("expected empty actual output for the errored case, got %q", failed.ActualOutput)
	}
	if !submission.TestResults[0].IsCorrect || !submission.TestResults[2].IsCorrect {
		t.Fatalf("remaining cases must still be judged: %+v", submission.TestResults)
	}
	if submission.Verdict != domain.VerdictFailed {
		t.Fatalf("expected verdict %q, got %q", domain.VerdictFailed, submission.Verdict)
	}
	if len(subs.saved) != 1 {
		t.Fatalf("expected the degraded run to be persisted once, got %d", len(subs.saved))
	}
}

func TestSubmit_ResultsKeepTestCaseOrder(t *testing.T) {
	var cases []domain.TestCase
	for i := 0; i < 8; i++ {
		cases = append(cases, domain.TestCase{
			Input:          strconv.Itoa(i),
			ExpectedOutput: strconv.Itoa(i),
		})
	}
	problem := sumProblem(cases...)

	// Later cases finish first, so completion order is the reverse of
	// dispatch order
	runner := &fakeRunner{run: func(input string) *domain.ExecutionOutcome {
		n, _ := strconv.Atoi(input)
		time.Sleep(time.Duration(len(cases)-n) * 2 * time.Millisecond)
		return &domain.ExecutionOutcome{Output: input}
	}}
	svc, _ := newTestService(problem, runner)

	submission, err := svc.Submit(context.Background(), submissionRequest(problem.ID), "user-1")
	if err != nil {
		t.Fatalf("expected success, got: %v", err)
	}
	for i, r := range submission.TestResults {
		if r.Input != strconv.Itoa(i) {
			t.Fatalf("result %d holds case %q, order not preserved: %+v", i, r.Input, submission.TestResults)
		}
		if !r.IsCorrect {
			t.Fatalf("expected case %d to pass, got %+v", i, r)
		}
	}
}

func TestSubmit_SaveFailureSurfaces(t *testing.T) {
	problem := sumProblem(domain.TestCase{Input: "2 2", ExpectedOutput: "4"})
	runner := &fakeRunner{run: func(input string) *domain.ExecutionOutcome {
		return &domain.ExecutionOutcome{Output: "4"}
	}}
	svc, subs := newTestService(problem, runner)
	subs.saveErr = errors.New("connection reset")

	_, err := svc.Submit(context.Background(), submissionRequest(problem.ID), "user-1")
	if err == nil || !strings.Contains(err.Error(), "failed to save submission") {
		t.Fatalf("expected wrapped save error, got: %v", err)
	}
}

func TestListSubmissions(t *testing.T) {
	subs := &fakeSubmissionPort{history: []*domain.Submission{
		{ID: uuid.New(), Verdict: domain.VerdictPassed},
		{ID: uuid.New(), Verdict: domain.VerdictFailed},
	}}
	svc := NewJudgeService(&fakeProblemPort{}, subs, &fakeRunner{}, &fakeLanguagePort{}, nopLogger{}, 4)

	history, err := svc.ListSubmissions(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("expected success, got: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 submissions, got %d", len(history))
	}
}
