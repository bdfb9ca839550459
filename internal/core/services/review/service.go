package review

import (
	"context"

	"gitlab.com/codearena.net/internal/domain"
)

type IReviewService interface {
	// GetReview produces AI feedback for a problem attempt: hints only when
	// no code was written yet, a structured review plus hints otherwise
	GetReview(ctx context.Context, req *domain.ReviewRequest) (*domain.ReviewResponse, error)
}
