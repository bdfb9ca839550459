package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"gitlab.com/codearena.net/internal/adapter/crypto"
	"gitlab.com/codearena.net/internal/adapter/gemini"
	"gitlab.com/codearena.net/internal/adapter/postgres/languageconfig"
	"gitlab.com/codearena.net/internal/adapter/postgres/problemrepository"
	"gitlab.com/codearena.net/internal/adapter/postgres/submissionrepository"
	"gitlab.com/codearena.net/internal/adapter/postgres/userrepository"
	"gitlab.com/codearena.net/internal/adapter/redis/problemcache"
	"gitlab.com/codearena.net/internal/adapter/sandbox"
	"gitlab.com/codearena.net/internal/config"
	auth2 "gitlab.com/codearena.net/internal/core/services/auth"
	"gitlab.com/codearena.net/internal/core/services/judge"
	problemsvc "gitlab.com/codearena.net/internal/core/services/problem"
	reviewsvc "gitlab.com/codearena.net/internal/core/services/review"
	usersvc "gitlab.com/codearena.net/internal/core/services/user"
	logger2 "gitlab.com/codearena.net/internal/global/logger"
	http2 "gitlab.com/codearena.net/internal/http"
)

func main() {
	InitReader()
	// Set up graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	logger2.Info("Starting judge service")

	logger := logger2.Logger

	sysCfg := config.NewSystemConfig()

	db, err := setupDatabase(sysCfg.PostgresConfig)
	if err != nil {
		panic(err)
	}
	defer db.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     sysCfg.RedisConfig.Url,
		Password: sysCfg.RedisConfig.Password,
		DB:       sysCfg.RedisConfig.DB,
	})
	defer redisClient.Close()

	// SECONDARY PORTS
	problemRepo := problemrepository.NewProblemRepository(db, logger)
	problemPort := problemcache.New(problemRepo, redisClient, logger)
	submissionPort := submissionrepository.NewSubmissionRepository(db, logger)
	languagePort := languageconfig.NewLanguageConfigRepository(db, logger)
	userPort := userrepository.New(db, logger, sysCfg.PostgresConfig.Schema)
	runner := sandbox.NewClient(sysCfg.SandboxConfig, logger)
	textGen := gemini.NewClient(sysCfg.GeminiConfig, logger)

	// primary ports
	jwtProvider := crypto.NewJWTService(sysCfg.JwtConfig)

	// services
	judgeSvc := judge.NewJudgeService(problemPort, submissionPort, runner, languagePort, logger, sysCfg.SandboxConfig.MaxConcurrency)
	problemService := problemsvc.NewProblemService(problemPort, logger)
	userService := usersvc.NewUserService(userPort, submissionPort, logger)
	reviewService := reviewsvc.NewReviewService(textGen, logger)
	ggAuth := auth2.NewGoogleAuthService(userPort, jwtProvider, logger)
	localAuth := auth2.NewLocalAuthService(userPort, jwtProvider, logger)
	serviceProvider := http2.NewServiceProvider(judgeSvc, problemService, userService, reviewService, ggAuth, localAuth, localAuth)

	// server
	httServer := http2.NewServer(8082, "judge", *serviceProvider, jwtProvider, sysCfg.GGAuthConfig, logger)
	err = httServer.Init()
	if err != nil {
		panic(err)
	}
	ctxBg := context.Background()
	httServer.Start(ctxBg)

	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(ctxBg, 5*time.Second)
	defer cancel()
	httServer.Stop(ctx)

	logger.Info("successfully shutdown server")
}

// setupDatabase sets up the PostgreSQL connection
func setupDatabase(cfg *config.PostgresConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", cfg.Url)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func InitReader() {
	environment := ""
	if len(os.Args) < 2 {
		log.Fatalf("Env not supplied in argument")
	} else {
		environment = os.Args[1]
	}

	err := godotenv.Load(environment + ".env")
	if err != nil {
		log.Fatalf("Error loading %s.env file", environment)
	}
}
