package stats

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oratiodb/oratio/internal/platform/constants"
)

const cacheTTL = 5 * time.Minute

// CachedRepository is a read-through cache in front of the summary query.
// Cache failures degrade to the underlying repository, never to an error.
type CachedRepository struct {
	next   Repository
	client *redis.Client
	logger *slog.Logger
}

func NewCachedRepository(next Repository, client *redis.Client, logger *slog.Logger) *CachedRepository {
	return &CachedRepository{
		next:   next,
		client: client,
		logger: logger,
	}
}

func cacheKey() string {
	return constants.RedisPrefixStats + "v1"
}

func (repository *CachedRepository) Summarize(context context.Context) (*Summary, error) {
	cached, err := repository.client.Get(context, cacheKey()).Bytes()
	if err == nil {
		summary := &Summary{}
		if err := json.Unmarshal(cached, summary); err == nil {
			return summary, nil
		}
	} else if err != redis.Nil {
		repository.logger.Warn("stats_cache_read_failed", slog.String("error", err.Error()))
	}

	summary, err := repository.next.Summarize(context)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(summary); err == nil {
		if err := repository.client.Set(context, cacheKey(), payload, cacheTTL).Err(); err != nil {
			repository.logger.Warn("stats_cache_write_failed", slog.String("error", err.Error()))
		}
	}

	return summary, nil
}
