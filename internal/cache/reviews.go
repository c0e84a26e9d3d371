package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Shazil-Web3/Hanzala-agnecy/internal/entity"
)

// Keys used by the public review cache. GenerationKey is bumped on every
// invalidation so fills computed from an older read are discarded.
const (
	ApprovedReviewsKey = "reviews:approved"
	GenerationKey      = "reviews:approved:gen"
)

// setIfGeneration writes the list only while the generation still matches ARGV[1].
var setIfGeneration = redis.NewScript(`
local current = redis.call('GET', KEYS[1])
if (current or '0') ~= ARGV[1] then
	return 0
end
redis.call('SET', KEYS[2], ARGV[2], 'PX', ARGV[3])
return 1
`)

// ErrMiss is returned when the public review list is not cached.
var ErrMiss = errors.New("cache miss")

// ReviewsCache stores the approved review list in Redis.
type ReviewsCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewReviewsCache wraps an existing client.
func NewReviewsCache(client redis.UniversalClient, ttl time.Duration) *ReviewsCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ReviewsCache{client: client, ttl: ttl}
}

// Connect parses a redis:// URL and verifies the server answers.
func Connect(ctx context.Context, redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// GetApproved returns the cached list or ErrMiss.
func (c *ReviewsCache) GetApproved(ctx context.Context) ([]entity.Review, error) {
	raw, err := c.client.Get(ctx, ApprovedReviewsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrMiss
		}
		return nil, fmt.Errorf("get approved reviews: %w", err)
	}

	var reviews []entity.Review
	if err := json.Unmarshal(raw, &reviews); err != nil {
		return nil, fmt.Errorf("decode approved reviews: %w", err)
	}
	return reviews, nil
}

// Generation returns the current invalidation counter. It is read before the
// store is queried and handed back to SetApproved.
func (c *ReviewsCache) Generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, GenerationKey).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("get approved reviews generation: %w", err)
	}
	return gen, nil
}

// SetApproved caches reviews unless the list was invalidated after generation
// was read. A skipped write is not an error.
func (c *ReviewsCache) SetApproved(ctx context.Context, generation int64, reviews []entity.Review) error {
	if reviews == nil {
		reviews = []entity.Review{}
	}
	raw, err := json.Marshal(reviews)
	if err != nil {
		return fmt.Errorf("encode approved reviews: %w", err)
	}
	keys := []string{GenerationKey, ApprovedReviewsKey}
	if err := setIfGeneration.Run(ctx, c.client, keys, generation, raw, c.ttl.Milliseconds()).Err(); err != nil {
		return fmt.Errorf("set approved reviews: %w", err)
	}
	return nil
}

// InvalidateApproved bumps the generation and drops the cached list.
func (c *ReviewsCache) InvalidateApproved(ctx context.Context) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, GenerationKey)
		pipe.Del(ctx, ApprovedReviewsKey)
		return nil
	})
	if err != nil {
		return fmt.Errorf("invalidate approved reviews: %w", err)
	}
	return nil
}
