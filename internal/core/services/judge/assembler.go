package judge

import "gitlab.com/codearena.net/internal/domain"

// assembleSubmission maps one judging run's output into the record shape
// the submission store persists. The top-level input/expected/actual fields
// mirror the last test result; older clients built against the single-case
// shape still read them. Callers guarantee results is non-empty.
func assembleSubmission(
	req *domain.SubmissionRequest,
	userID string,
	results []domain.TestResult,
	allPassed bool,
	verdict string,
) *domain.Submission {
	submission := &domain.Submission{
		ProblemID:   req.ProblemID,
		UserID:      userID,
		Code:        req.Code,
		Language:    req.Language,
		IsCorrect:   allPassed,
		Verdict:     verdict,
		TestResults: results,
	}

	if len(results) > 0 {
		last := results[len(results)-1]
		submission.Input = last.Input
		submission.ExpectedOutput = last.ExpectedOutput
		submission.ActualOutput = last.ActualOutput
	}

	return submission
}
