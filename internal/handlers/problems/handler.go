package problems

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"gitlab.com/codearena.net/internal/core/ports/primary"
	problemsvc "gitlab.com/codearena.net/internal/core/services/problem"
	"gitlab.com/codearena.net/internal/domain"
	"gitlab.com/codearena.net/internal/handlers"
	"gitlab.com/codearena.net/internal/handlers/response"
	"gitlab.com/codearena.net/internal/static/errs"
)

// ProblemHandler handles problem catalogue API requests
type ProblemHandler struct {
	problemService problemsvc.IProblemService
	logger         primary.Logger
	middleware     *handlers.MiddlewareProvider
}

// NewProblemHandler creates a new problem handler
func NewProblemHandler(problemService problemsvc.IProblemService, middleware *handlers.MiddlewareProvider, logger primary.Logger) *ProblemHandler {
	return &ProblemHandler{
		problemService: problemService,
		logger:         logger,
		middleware:     middleware,
	}
}

// RegisterRoutes registers the API routes for ProblemHandler
func (h *ProblemHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/problems", h.ListProblems).Methods("GET")
	router.HandleFunc("/api/problems/{id}", h.GetProblem).Methods("GET")
	router.Handle("/api/problems", h.middleware.JWTMiddleware(http.HandlerFunc(h.CreateProblem))).Methods("POST")
	router.Handle("/api/problems/{id}", h.middleware.JWTMiddleware(http.HandlerFunc(h.UpdateProblem))).Methods("PUT")
	router.Handle("/api/problems/{id}", h.middleware.JWTMiddleware(http.HandlerFunc(h.DeleteProblem))).Methods("DELETE")
}

// ProblemRequest carries the authored fields of a problem
type ProblemRequest struct {
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	InputFormat  string            `json:"inputFormat"`
	OutputFormat string            `json:"outputFormat"`
	Difficulty   string            `json:"difficulty"`
	Tags         []string          `json:"tags"`
	TestCases    []domain.TestCase `json:"testCases"`
}

// CreateProblem handles problem creation requests. Admin only.
func (h *ProblemHandler) CreateProblem(w http.ResponseWriter, r *http.Request) {
	if !handlers.IsAdmin(r.Context()) {
		response.WriteError(w, response.ErrorMessage{Message: "Only admins can create problems", StatusCode: http.StatusForbidden})
		return
	}

	req, ok := decodeProblemRequest(w, r)
	if !ok {
		return
	}

	problem := req.toDomain()
	created, err := h.problemService.CreateProblem(r.Context(), problem, handlers.UserIDFromContext(r.Context()))
	if err != nil {
		if errors.Is(err, errs.DuplicateTitle) {
			response.WriteError(w, response.ErrorMessage{Message: err.Error(), StatusCode: http.StatusConflict})
			return
		}
		h.logger.Error("Failed to create problem", "error", err)
		response.WriteError(w, response.ErrorMessage{Message: "Server error creating problem", StatusCode: http.StatusInternalServerError})
		return
	}

	response.WriteJSON(w, http.StatusCreated, created)
}

// ListProblems handles catalogue listing requests
func (h *ProblemHandler) ListProblems(w http.ResponseWriter, r *http.Request) {
	problems, err := h.problemService.ListProblems(r.Context())
	if err != nil {
		h.logger.Error("Failed to list problems", "error", err)
		response.WriteError(w, response.ErrorMessage{Message: "Failed to fetch problems", StatusCode: http.StatusInternalServerError})
		return
	}
	if problems == nil {
		problems = []*domain.Problem{}
	}

	response.WriteSuccess(w, problems)
}

// GetProblem handles single problem retrieval requests
func (h *ProblemHandler) GetProblem(w http.ResponseWriter, r *http.Request) {
	id, ok := problemID(w, r)
	if !ok {
		return
	}

	problem, err := h.problemService.GetProblem(r.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ProblemNotFound) {
			response.WriteError(w, response.ErrorMessage{Message: err.Error(), StatusCode: http.StatusNotFound})
			return
		}
		h.logger.Error("Failed to get problem", "problemId", id, "error", err)
		response.WriteError(w, response.ErrorMessage{Message: "Failed to fetch problem", StatusCode: http.StatusInternalServerError})
		return
	}

	response.WriteSuccess(w, problem)
}

// UpdateProblem handles problem update requests. Admin only.
func (h *ProblemHandler) UpdateProblem(w http.ResponseWriter, r *http.Request) {
	if !handlers.IsAdmin(r.Context()) {
		response.WriteError(w, response.ErrorMessage{Message: "Only admins can update problems", StatusCode: http.StatusForbidden})
		return
	}

	id, ok := problemID(w, r)
	if !ok {
		return
	}

	req, ok := decodeProblemRequest(w, r)
	if !ok {
		return
	}

	updated, err := h.problemService.UpdateProblem(r.Context(), id, req.toDomain())
	if err != nil {
		if errors.Is(err, errs.ProblemNotFound) {
			response.WriteError(w, response.ErrorMessage{Message: err.Error(), StatusCode: http.StatusNotFound})
			return
		}
		h.logger.Error("Failed to update problem", "problemId", id, "error", err)
		response.WriteError(w, response.ErrorMessage{Message: "Error updating problem", StatusCode: http.StatusInternalServerError})
		return
	}

	response.WriteSuccess(w, updated)
}

// DeleteProblem handles problem deletion requests. Admin only.
func (h *ProblemHandler) DeleteProblem(w http.ResponseWriter, r *http.Request) {
	if !handlers.IsAdmin(r.Context()) {
		response.WriteError(w, response.ErrorMessage{Message: "Only admins can delete problems", StatusCode: http.StatusForbidden})
		return
	}

	id, ok := problemID(w, r)
	if !ok {
		return
	}

	if err := h.problemService.DeleteProblem(r.Context(), id); err != nil {
		if errors.Is(err, errs.ProblemNotFound) {
			response.WriteError(w, response.ErrorMessage{Message: err.Error(), StatusCode: http.StatusNotFound})
			return
		}
		h.logger.Error("Failed to delete problem", "problemId", id, "error", err)
		response.WriteError(w, response.ErrorMessage{Message: "Error deleting problem", StatusCode: http.StatusInternalServerError})
		return
	}

	response.WriteSuccess(w, map[string]string{"message": "Problem deleted successfully"})
}

func (r ProblemRequest) toDomain() *domain.Problem {
	return &domain.Problem{
		Title:        r.Title,
		Description:  r.Description,
		InputFormat:  r.InputFormat,
		OutputFormat: r.OutputFormat,
		Difficulty:   r.Difficulty,
		Tags:         r.Tags,
		TestCases:    r.TestCases,
	}
}

func decodeProblemRequest(w http.ResponseWriter, r *http.Request) (ProblemRequest, bool) {
	var req ProblemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteError(w, response.ErrorMessage{Message: "Invalid request", StatusCode: http.StatusBadRequest})
		return req, false
	}
	if req.Title == "" || req.Description == "" {
		response.WriteError(w, response.ErrorMessage{Message: "title and description are required", StatusCode: http.StatusBadRequest})
		return req, false
	}
	return req, true
}

func problemID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.WriteError(w, response.ErrorMessage{Message: "Invalid problem ID", StatusCode: http.StatusBadRequest})
		return uuid.Nil, false
	}
	return id, true
}
