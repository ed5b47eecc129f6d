// Package counter provides the page-visit counter backends.
package counter

import (
	"context"
	"log/slog"

	"beautymap/config"
	"beautymap/internal/domain/lifecycle"
	"beautymap/internal/domain/repository"
	"beautymap/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// VisitsKey is the Redis key holding the page-visit total.
const VisitsKey = "beautymap:page_visits"

// redisClient is the subset of redis.Cmdable the counter needs.
type redisClient interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

type redisVisitCounter struct {
	client redisClient
	key    string
}

// NewRedisVisitCounter counts visits with INCR on a single key.
func NewRedisVisitCounter(client redisClient) service.VisitCounter {
	return &redisVisitCounter{client: client, key: VisitsKey}
}

func (c *redisVisitCounter) Increment(ctx context.Context) error {
	if err := c.client.Incr(ctx, c.key).Err(); err != nil {
		return errors.Wrap(err, "failed to increment page visits")
	}

	return nil
}

func (c *redisVisitCounter) Count(ctx context.Context) (int64, error) {
	count, err := c.client.Get(ctx, c.key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(err, "failed to read page visits")
	}

	return count, nil
}

type dbVisitCounter struct {
	repo repository.PageVisitRepository
}

// NewDBVisitCounter stores one page_visits row per visit.
func NewDBVisitCounter(repo repository.PageVisitRepository) service.VisitCounter {
	return &dbVisitCounter{repo: repo}
}

func (c *dbVisitCounter) Increment(ctx context.Context) error {
	return c.repo.Record(ctx)
}

func (c *dbVisitCounter) Count(ctx context.Context) (int64, error) {
	return c.repo.Count(ctx)
}

// Params holds dependencies for the visit counter, injected by Fx
type Params struct {
	fx.In

	Lc       fx.Lifecycle
	Config   *config.Config
	Logger   *slog.Logger
	PageRepo repository.PageVisitRepository
}

// NewVisitCounter uses Redis when configured and the database otherwise.
func NewVisitCounter(params Params) service.VisitCounter {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, counting page visits in the database")

		return NewDBVisitCounter(params.PageRepo)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return NewRedisVisitCounter(client)
}
