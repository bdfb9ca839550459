package domain

import (
	"time"

	"github.com/google/uuid"
)

// Verdict labels for a judged submission
const (
	VerdictPassed = "Passed"
	VerdictFailed = "Failed"
)

// TestResult is the outcome of running a submission against one test case.
// Results are stored in the same order as the problem's test cases.
type TestResult struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"expectedOutput"`
	ActualOutput   string `json:"actualOutput"`
	IsCorrect      bool   `json:"isCorrect"`
}

// Submission is a judged code submission. Input, ExpectedOutput and
// ActualOutput at the top level mirror the last test result; older clients
// expect a single-case shape and read these instead of TestResults.
type Submission struct {
	ID             uuid.UUID    `db:"id" json:"id"`
	ProblemID      uuid.UUID    `db:"problem_id" json:"problemId"`
	UserID         string       `db:"user_id" json:"userId"`
	Code           string       `db:"code" json:"code"`
	Language       string       `db:"language" json:"language"`
	Input          string       `db:"input" json:"input"`
	ExpectedOutput string       `db:"expected_output" json:"expectedOutput"`
	ActualOutput   string       `db:"actual_output" json:"actualOutput"`
	IsCorrect      bool         `db:"is_correct" json:"isCorrect"`
	Verdict        string       `db:"verdict" json:"verdict"`
	TestResults    []TestResult `json:"testResults"`
	CreatedAt      time.Time    `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time    `db:"updated_at" json:"updatedAt"`
}

type SubmissionTable struct {
	ID             string
	ProblemID      string
	UserID         string
	Code           string
	Language       string
	Input          string
	ExpectedOutput string
	ActualOutput   string
	IsCorrect      string
	Verdict        string
	TestResults    string
	CreatedAt      string
	UpdatedAt      string
}

func GetSubmissionTable() SubmissionTable {
	return SubmissionTable{
		ID:             "id",
		ProblemID:      "problem_id",
		UserID:         "user_id",
		Code:           "code",
		Language:       "language",
		Input:          "input",
		ExpectedOutput: "expected_output",
		ActualOutput:   "actual_output",
		IsCorrect:      "is_correct",
		Verdict:        "verdict",
		TestResults:    "test_results",
		CreatedAt:      "created_at",
		UpdatedAt:      "updated_at",
	}
}

func (SubmissionTable) TableName() string {
	return "submissions"
}

// SubmissionRequest carries a submission attempt before judging
type SubmissionRequest struct {
	Code      string    `json:"code"`
	Language  string    `json:"language"`
	ProblemID uuid.UUID `json:"problemId"`
}
