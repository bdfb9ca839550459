package domain

import (
	"time"

	"github.com/google/uuid"
)

// TestCase is one (input, expected output) pair attached to a problem.
// Test cases have no identity of their own; their position inside the
// problem's slice defines the case numbering used when judging.
type TestCase struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"expectedOutput"`
}

// Problem represents a catalogued problem users submit code against
type Problem struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	Title        string     `db:"title" json:"title"`
	Description  string     `db:"description" json:"description"`
	InputFormat  string     `db:"input_format" json:"inputFormat"`
	OutputFormat string     `db:"output_format" json:"outputFormat"`
	Difficulty   string     `db:"difficulty" json:"difficulty"` // "Easy", "Medium" or "Hard"
	Tags         []string   `json:"tags"`
	TestCases    []TestCase `json:"testCases"`
	CreatedBy    string     `db:"created_by" json:"createdBy"`
	CreatedAt    time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updatedAt"`
}

type ProblemTable struct {
	ID           string
	Title        string
	Description  string
	InputFormat  string
	OutputFormat string
	Difficulty   string
	Tags         string
	TestCases    string
	CreatedBy    string
	CreatedAt    string
	UpdatedAt    string
}

func GetProblemTable() ProblemTable {
	return ProblemTable{
		ID:           "id",
		Title:        "title",
		Description:  "description",
		InputFormat:  "input_format",
		OutputFormat: "output_format",
		Difficulty:   "difficulty",
		Tags:         "tags",
		TestCases:    "test_cases",
		CreatedBy:    "created_by",
		CreatedAt:    "created_at",
		UpdatedAt:    "updated_at",
	}
}

func (ProblemTable) TableName() string {
	return "problems"
}
