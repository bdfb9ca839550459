package users

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"gitlab.com/codearena.net/internal/core/ports/primary"
	usersvc "gitlab.com/codearena.net/internal/core/services/user"
	"gitlab.com/codearena.net/internal/handlers"
	"gitlab.com/codearena.net/internal/handlers/response"
	"gitlab.com/codearena.net/internal/static/errs"
)

// UserHandler serves the authenticated user's profile
type UserHandler struct {
	userService usersvc.IUserService
	logger      primary.Logger
	middleware  *handlers.MiddlewareProvider
}

func NewUserHandler(userService usersvc.IUserService, middleware *handlers.MiddlewareProvider, logger primary.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
		middleware:  middleware,
	}
}

func (h *UserHandler) RegisterRoutes(router *mux.Router) {
	router.Handle("/api/profile", h.middleware.JWTMiddleware(http.HandlerFunc(h.GetProfile))).Methods("GET")
}

func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := handlers.UserIDFromContext(r.Context())

	profile, err := h.userService.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, errs.UserNotFound) {
			response.WriteError(w, response.ErrorMessage{Message: err.Error(), StatusCode: http.StatusNotFound})
			return
		}
		h.logger.Error("Failed to fetch profile", "userId", userID, "error", err)
		response.WriteError(w, response.ErrorMessage{Message: "Error fetching profile", StatusCode: http.StatusInternalServerError})
		return
	}

	response.WriteSuccess(w, profile)
}
