package review

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"gitlab.com/codearena.net/internal/core/ports/primary"
	reviewsvc "gitlab.com/codearena.net/internal/core/services/review"
	"gitlab.com/codearena.net/internal/domain"
	"gitlab.com/codearena.net/internal/handlers/response"
)

// ReviewHandler handles AI review requests
type ReviewHandler struct {
	reviewService reviewsvc.IReviewService
	logger        primary.Logger
}

func NewReviewHandler(reviewService reviewsvc.IReviewService, logger primary.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		logger:        logger,
	}
}

func (h *ReviewHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/ai-review", h.GetReview).Methods("POST")
}

func (h *ReviewHandler) GetReview(w http.ResponseWriter, r *http.Request) {
	var req domain.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteError(w, response.ErrorMessage{Message: "Invalid request", StatusCode: http.StatusBadRequest})
		return
	}
	if req.ProblemTitle == "" || req.ProblemDescription == "" {
		response.WriteError(w, response.ErrorMessage{Message: "problem title and description are required", StatusCode: http.StatusBadRequest})
		return
	}

	result, err := h.reviewService.GetReview(r.Context(), &req)
	if err != nil {
		h.logger.Error("Failed to get AI review", "error", err)
		response.WriteError(w, response.ErrorMessage{Message: "Failed to get AI review", StatusCode: http.StatusInternalServerError})
		return
	}

	response.WriteSuccess(w, result)
}
