package submissions

import (
	"encoding/json"
	"errors"
	"net/http"

	"gitlab.com/codearena.net/internal/core/ports/primary"
	"gitlab.com/codearena.net/internal/core/services/judge"
	"gitlab.com/codearena.net/internal/domain"
	"gitlab.com/codearena.net/internal/handlers"
	"gitlab.com/codearena.net/internal/handlers/response"
	"gitlab.com/codearena.net/internal/static/errs"

	"github.com/gorilla/mux"
)

// SubmissionHandler handles code submission API requests
type SubmissionHandler struct {
	judgeService judge.IJudgeService
	logger       primary.Logger
	middleware   *handlers.MiddlewareProvider
}

// NewSubmissionHandler creates a new submission handler
func NewSubmissionHandler(judgeService judge.IJudgeService, middleware *handlers.MiddlewareProvider, logger primary.Logger) *SubmissionHandler {
	return &SubmissionHandler{
		judgeService: judgeService,
		logger:       logger,
		middleware:   middleware,
	}
}

// RegisterRoutes registers the API routes for SubmissionHandler
func (h *SubmissionHandler) RegisterRoutes(router *mux.Router) {
	router.Handle("/api/submit", h.middleware.JWTMiddleware(http.HandlerFunc(h.SubmitCode))).Methods("POST")
	router.Handle("/api/submit/user", h.middleware.JWTMiddleware(http.HandlerFunc(h.GetUserSubmissions))).Methods("GET")
}

// SubmitCode judges a submission and returns the persisted record
func (h *SubmissionHandler) SubmitCode(w http.ResponseWriter, r *http.Request) {
	var req domain.SubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		response.WriteError(w, response.ErrorMessage{Message: "Invalid request", StatusCode: http.StatusBadRequest})
		return
	}
	if req.Code == "" || req.Language == "" {
		response.WriteError(w, response.ErrorMessage{Message: "code and language are required", StatusCode: http.StatusBadRequest})
		return
	}

	userID := handlers.UserIDFromContext(r.Context())
	submission, err := h.judgeService.Submit(r.Context(), &req, userID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ProblemNotFound):
			response.WriteError(w, response.ErrorMessage{Message: err.Error(), StatusCode: http.StatusNotFound})
		case errors.Is(err, errs.NoTestCases):
			response.WriteError(w, response.ErrorMessage{Message: err.Error(), StatusCode: http.StatusUnprocessableEntity})
		case errors.Is(err, errs.LanguageNotSupported):
			response.WriteError(w, response.ErrorMessage{Message: err.Error(), StatusCode: http.StatusBadRequest})
		default:
			h.logger.Error("Failed to judge submission", "error", err)
			response.WriteError(w, response.ErrorMessage{Message: "Submission failed", StatusCode: http.StatusInternalServerError})
		}
		return
	}

	response.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message":    "Submission saved",
		"submission": submission,
	})
}

// GetUserSubmissions lists the caller's submissions, most recent first
func (h *SubmissionHandler) GetUserSubmissions(w http.ResponseWriter, r *http.Request) {
	userID := handlers.UserIDFromContext(r.Context())

	submissions, err := h.judgeService.ListSubmissions(r.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to fetch submissions", "userId", userID, "error", err)
		response.WriteError(w, response.ErrorMessage{Message: "Error fetching submissions", StatusCode: http.StatusInternalServerError})
		return
	}
	if submissions == nil {
		submissions = []*domain.Submission{}
	}

	response.WriteSuccess(w, submissions)
}
