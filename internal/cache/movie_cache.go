package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"reviewhub/internal/httpapi/models"

	"github.com/redis/go-redis/v9"
)

// MovieCache is a read-through cache for movie detail lookups. A nil
// *MovieCache is valid and disables caching, so the API runs without Redis.
type MovieCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewMovieCache connects to Redis and verifies the connection.
func NewMovieCache(redisURL, password string, ttl time.Duration) (*MovieCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	if password != "" {
		opts.Password = password
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &MovieCache{client: rdb, ttl: ttl}, nil
}

func movieKey(id int64) string {
	return fmt.Sprintf("movie:%d", id)
}

// Get returns the cached movie or nil on a miss. Cache errors are treated
// as misses; the database remains the source of truth.
func (c *MovieCache) Get(ctx context.Context, id int64) *models.Movie {
	if c == nil || c.client == nil {
		return nil
	}
	payload, err := c.client.Get(ctx, movieKey(id)).Bytes()
	if err != nil {
		return nil
	}
	var movie models.Movie
	if err := json.Unmarshal(payload, &movie); err != nil {
		return nil
	}
	return &movie
}

// Set stores a movie with the configured TTL.
func (c *MovieCache) Set(ctx context.Context, movie *models.Movie) {
	if c == nil || c.client == nil || movie == nil {
		return
	}
	payload, err := json.Marshal(movie)
	if err != nil {
		return
	}
	c.client.Set(ctx, movieKey(movie.ID), payload, c.ttl)
}

// Invalidate drops a movie from the cache after deletion.
func (c *MovieCache) Invalidate(ctx context.Context, id int64) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Del(ctx, movieKey(id))
}
