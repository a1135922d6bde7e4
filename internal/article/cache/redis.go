// Package cache holds the Redis-backed related-articles cache. Cache
// failures degrade to a recompute, never to an error for the reader.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"newsdesk/internal/article/models"
	"newsdesk/pkg/domain"
)

const (
	relatedKeyPrefix = "article:related:"
	defaultTTL       = 10 * time.Minute
)

// RedisRelated caches computed related-article lists in Redis with a short
// TTL. The TTL is the safety net; explicit invalidation on writes keeps the
// common case fresh.
type RedisRelated struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

type Option func(*RedisRelated)

func WithTTL(ttl time.Duration) Option {
	return func(c *RedisRelated) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *RedisRelated) { c.logger = logger }
}

// NewRedisRelated constructs a Redis-backed related-articles cache.
func NewRedisRelated(client *redis.Client, opts ...Option) *RedisRelated {
	c := &RedisRelated{
		client: client,
		ttl:    defaultTTL,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func relatedKey(id domain.ArticleID) string {
	return relatedKeyPrefix + id.String()
}

// Get returns the cached related list for an article, or ok=false on a miss
// or any Redis failure.
func (c *RedisRelated) Get(ctx context.Context, id domain.ArticleID) ([]*models.Article, bool) {
	raw, err := c.client.Get(ctx, relatedKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		c.logger.WarnContext(ctx, "related cache read failed", "article_id", id, "error", err)
		return nil, false
	}

	var related []*models.Article
	if err := json.Unmarshal(raw, &related); err != nil {
		c.logger.WarnContext(ctx, "related cache entry corrupt, dropping", "article_id", id, "error", err)
		c.client.Del(ctx, relatedKey(id))
		return nil, false
	}
	return related, true
}

// Set stores the related list. Failures are logged and ignored.
func (c *RedisRelated) Set(ctx context.Context, id domain.ArticleID, related []*models.Article) {
	raw, err := json.Marshal(related)
	if err != nil {
		c.logger.WarnContext(ctx, "related cache encode failed", "article_id", id, "error", err)
		return
	}
	if err := c.client.Set(ctx, relatedKey(id), raw, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "related cache write failed", "article_id", id, "error", err)
	}
}

// Invalidate drops cached lists for the given articles.
func (c *RedisRelated) Invalidate(ctx context.Context, ids ...domain.ArticleID) {
	if len(ids) == 0 {
		return
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = relatedKey(id)
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.WarnContext(ctx, "related cache invalidation failed", "error", err)
	}
}
