package secondary

import (
	"context"

	"gitlab.com/codearena.net/internal/domain"
)

// CodeRunner dispatches one execution to the remote sandbox. The call never
// fails at the Go level: transport errors, timeouts and non-success
// responses come back as an outcome with Error set and an empty Output, so
// an outcome is never both a success and a failure. No retries, no caching.
type CodeRunner interface {
	Run(ctx context.Context, language, code, input string) *domain.ExecutionOutcome
}
