package problemcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"gitlab.com/codearena.net/internal/core/ports/primary"
	"gitlab.com/codearena.net/internal/core/ports/secondary"
	"gitlab.com/codearena.net/internal/domain"
)

const (
	problemKeyPrefix  = "problem:"
	problemExpiration = 5 * time.Minute
)

var _ secondary.ProblemPort = (*CachedProblemRepository)(nil)

// CachedProblemRepository fronts a ProblemPort with a Redis read-through
// cache on the by-ID path. Writes invalidate the cached entry; cache
// failures degrade to the inner store, never to an error.
type CachedProblemRepository struct {
	inner       secondary.ProblemPort
	redisClient *redis.Client
	logger      primary.Logger
}

// New wraps a problem repository with the Redis cache
func New(inner secondary.ProblemPort, redisClient *redis.Client, logger primary.Logger) *CachedProblemRepository {
	return &CachedProblemRepository{
		inner:       inner,
		redisClient: redisClient,
		logger:      logger,
	}
}

// GetByID serves from the cache when possible and falls back to the inner
// store, caching what it finds
func (r *CachedProblemRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Problem, error) {
	key := fmt.Sprintf("%s%s", problemKeyPrefix, id)

	cached, err := r.redisClient.Get(ctx, key).Bytes()
	if err == nil {
		var problem domain.Problem
		if err := json.Unmarshal(cached, &problem); err == nil {
			return &problem, nil
		}
		// Corrupt entry, drop it and fall through to the store
		r.redisClient.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		r.logger.Warn("Failed to read problem from cache", "problemId", id, "error", err)
	}

	problem, err := r.inner.GetByID(ctx, id)
	if err != nil || problem == nil {
		return problem, err
	}

	problemJSON, err := json.Marshal(problem)
	if err == nil {
		if err := r.redisClient.Set(ctx, key, problemJSON, problemExpiration).Err(); err != nil {
			r.logger.Warn("Failed to cache problem", "problemId", id, "error", err)
		}
	}

	return problem, nil
}

func (r *CachedProblemRepository) Create(ctx context.Context, problem *domain.Problem) error {
	return r.inner.Create(ctx, problem)
}

func (r *CachedProblemRepository) GetByTitle(ctx context.Context, title string) (*domain.Problem, error) {
	return r.inner.GetByTitle(ctx, title)
}

func (r *CachedProblemRepository) List(ctx context.Context) ([]*domain.Problem, error) {
	return r.inner.List(ctx)
}

func (r *CachedProblemRepository) Update(ctx context.Context, problem *domain.Problem) error {
	if err := r.inner.Update(ctx, problem); err != nil {
		return err
	}
	r.invalidate(ctx, problem.ID)
	return nil
}

func (r *CachedProblemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.inner.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx, id)
	return nil
}

func (r *CachedProblemRepository) invalidate(ctx context.Context, id uuid.UUID) {
	key := fmt.Sprintf("%s%s", problemKeyPrefix, id)
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		r.logger.Warn("Failed to invalidate cached problem", "problemId", id, "error", err)
	}
}
