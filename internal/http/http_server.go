package http

// this is the entry point of the http request handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"

	"gitlab.com/codearena.net/internal/config"
	"gitlab.com/codearena.net/internal/core/ports/primary"
	auth2 "gitlab.com/codearena.net/internal/core/services/auth"
	"gitlab.com/codearena.net/internal/core/services/judge"
	problemsvc "gitlab.com/codearena.net/internal/core/services/problem"
	reviewsvc "gitlab.com/codearena.net/internal/core/services/review"
	usersvc "gitlab.com/codearena.net/internal/core/services/user"
	"gitlab.com/codearena.net/internal/handlers"
	"gitlab.com/codearena.net/internal/handlers/auth"
	"gitlab.com/codearena.net/internal/handlers/problems"
	"gitlab.com/codearena.net/internal/handlers/review"
	"gitlab.com/codearena.net/internal/handlers/submissions"
	"gitlab.com/codearena.net/internal/handlers/users"
)

type ServiceProvider struct {
	judgeService   judge.IJudgeService
	problemService problemsvc.IProblemService
	userService    usersvc.IUserService
	reviewService  reviewsvc.IReviewService

	ggAuth       auth2.IAuthService
	localAuth    auth2.IAuthService
	registration auth2.IRegistrationService
}

func NewServiceProvider(
	judgeService judge.IJudgeService,
	problemService problemsvc.IProblemService,
	userService usersvc.IUserService,
	reviewService reviewsvc.IReviewService,
	ggAuth auth2.IAuthService,
	localAuth auth2.IAuthService,
	registration auth2.IRegistrationService,
) *ServiceProvider {
	return &ServiceProvider{
		judgeService:   judgeService,
		problemService: problemService,
		userService:    userService,
		reviewService:  reviewService,
		ggAuth:         ggAuth,
		localAuth:      localAuth,
		registration:   registration,
	}
}

type Server struct {
	router          *mux.Router
	srv             *http.Server
	Port            int
	ServiceName     string
	ServiceProvider ServiceProvider
	jwtProvider     primary.JWTService
	ggAuthConfig    *config.GGAuthConfig
	logger          primary.Logger
}

func NewServer(
	port int,
	serviceName string,
	serviceProvider ServiceProvider,
	jwtProvider primary.JWTService,
	ggAuthConfig *config.GGAuthConfig,
	logger primary.Logger,
) *Server {
	return &Server{
		Port:            port,
		ServiceName:     serviceName,
		ServiceProvider: serviceProvider,
		jwtProvider:     jwtProvider,
		ggAuthConfig:    ggAuthConfig,
		logger:          logger,
	}
}

func (s *Server) Init() error {
	r := mux.NewRouter()
	middleware := handlers.NewMiddlewareProvider(s.jwtProvider)

	submissions.
		NewSubmissionHandler(s.ServiceProvider.judgeService, middleware, s.logger).
		RegisterRoutes(r)
	problems.
		NewProblemHandler(s.ServiceProvider.problemService, middleware, s.logger).
		RegisterRoutes(r)
	users.
		NewUserHandler(s.ServiceProvider.userService, middleware, s.logger).
		RegisterRoutes(r)
	review.
		NewReviewHandler(s.ServiceProvider.reviewService, s.logger).
		RegisterRoutes(r)
	auth.NewHandler(s.ggAuthConfig, middleware).RegisterRoutes(r, &auth.ServiceDependencies{
		GGAuthService:       s.ServiceProvider.ggAuth,
		LocalAuthService:    s.ServiceProvider.localAuth,
		RegistrationService: s.ServiceProvider.registration,
	})

	s.router = r
	return nil
}

func (s *Server) Start(ctx context.Context) {
	s.srv = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start the server in a goroutine
	go func() {
		s.logger.Info("Server listening", "addr", s.srv.Addr, "service", s.ServiceName)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()
}

func (s *Server) Stop(ctx context.Context) {
	s.logger.Info("Shutting down http server...")
	if s.srv != nil {
		if err := s.srv.Shutdown(ctx); err != nil {
			s.logger.Error("Server forced to shutdown", "error", err)
		}
	}
}
