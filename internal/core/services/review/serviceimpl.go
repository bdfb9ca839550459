package review

import (
	"context"
	"fmt"
	"strings"

	"gitlab.com/codearena.net/internal/core/ports/primary"
	"gitlab.com/codearena.net/internal/core/ports/secondary"
	"gitlab.com/codearena.net/internal/domain"
)

var _ IReviewService = (*ReviewService)(nil)

// ReviewService builds review/hint prompts and shapes the generated text
type ReviewService struct {
	generator secondary.TextGenerator
	logger    primary.Logger
}

func NewReviewService(generator secondary.TextGenerator, logger primary.Logger) *ReviewService {
	return &ReviewService{
		generator: generator,
		logger:    logger,
	}
}

func (s *ReviewService) GetReview(ctx context.Context, req *domain.ReviewRequest) (*domain.ReviewResponse, error) {
	hintsOnly := strings.TrimSpace(req.Code) == ""

	var prompt string
	if hintsOnly {
		prompt = fmt.Sprintf(
			"The user has NOT entered any code.\n"+
				"The problem is titled: %q.\n"+
				"Description: %s.\n"+
				"Give them only hints and intuition for solving this problem in 3 bullet points.\n"+
				"Do NOT reveal exact code.",
			req.ProblemTitle,
			req.ProblemDescription,
		)
	} else {
		prompt = fmt.Sprintf(
			"You are an AI code reviewer.\n"+
				"Review the following code for the problem: %q.\n"+
				"Problem description: %s.\n"+
				"Code:\n%s\n\n"+
				"Give output in structured format:\n"+
				"1. Review: (2 concise sentences about the quality of the code)\n"+
				"2. Hints: (2-3 bullet points for improving the code or solving the problem better)\n"+
				"Do NOT give the complete solution or exact code.",
			req.ProblemTitle,
			req.ProblemDescription,
			req.Code,
		)
	}

	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		s.logger.Error("Failed to generate review", "problem", req.ProblemTitle, "error", err)
		return nil, fmt.Errorf("failed to generate review: %w", err)
	}

	if hintsOnly {
		return &domain.ReviewResponse{Hints: text}, nil
	}

	return splitReview(text), nil
}

// splitReview separates the generated text into its Review and Hints
// sections; when the model ignored the format the whole text becomes the
// review
func splitReview(text string) *domain.ReviewResponse {
	if strings.Contains(text, "Review:") && strings.Contains(text, "Hints:") {
		parts := strings.SplitN(text, "Hints:", 2)
		review := strings.TrimSpace(strings.Replace(parts[0], "Review:", "", 1))
		hints := strings.TrimSpace(parts[1])
		return &domain.ReviewResponse{Review: review, Hints: hints}
	}
	return &domain.ReviewResponse{Review: text}
}
