// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	domainerror "github.com/finance-tracker/young-finance/internal/domain/error"
	"github.com/finance-tracker/young-finance/internal/integration/entrypoint/dto"
)

// RateLimitStore decides whether one more request from key is allowed.
type RateLimitStore interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimiter provides IP-based rate limiting functionality.
type RateLimiter struct {
	store RateLimitStore
	skip  bool
}

// NewRateLimiter creates a rate limiter backed by store.
// When skip is true every request passes, which is what test environments want.
func NewRateLimiter(store RateLimitStore, skip bool) *RateLimiter {
	return &RateLimiter{
		store: store,
		skip:  skip,
	}
}

// Middleware returns a Gin middleware handler that enforces rate limiting.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.skip || rl.store == nil {
			c.Next()
			return
		}

		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		allowed, err := rl.store.Allow(c.Request.Context(), clientIP)
		if err != nil {
			// The store being down must not take the API with it.
			slog.WarnContext(c.Request.Context(), "rate limit store unavailable",
				slog.String("client_ip", clientIP),
				slog.Any("error", err),
			)
			c.Next()
			return
		}

		if !allowed {
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// memoryEntry is a token bucket plus the last time it was used.
type memoryEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryStore keeps one token bucket per key in process memory.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
	limit   rate.Limit
	burst   int
	now     func() time.Time
}

// NewMemoryStore creates a store refilling requestsPerMinute tokens per minute.
func NewMemoryStore(requestsPerMinute, burst int) *MemoryStore {
	if burst < 1 {
		burst = 1
	}
	return &MemoryStore{
		entries: make(map[string]*memoryEntry),
		limit:   rate.Limit(float64(requestsPerMinute) / 60),
		burst:   burst,
		now:     time.Now,
	}
}

// Allow consumes one token for key.
func (s *MemoryStore) Allow(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	entry, exists := s.entries[key]
	if !exists {
		entry = &memoryEntry{limiter: rate.NewLimiter(s.limit, s.burst)}
		s.entries[key] = entry
	}
	entry.lastSeen = now

	return entry.limiter.AllowN(now, 1), nil
}

// Reset clears the rate limiter state.
func (s *MemoryStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]*memoryEntry)
}

// Cleanup removes buckets idle for longer than idle.
func (s *MemoryStore) Cleanup(idle time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-idle)
	for key, entry := range s.entries {
		if entry.lastSeen.Before(cutoff) {
			delete(s.entries, key)
		}
	}
}

// RunJanitor calls Cleanup every interval until ctx is done.
func (s *MemoryStore) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Cleanup(interval)
		}
	}
}

// RedisStore counts requests per fixed window in Redis so several API
// instances share one budget.
type RedisStore struct {
	client      *redis.Client
	maxRequests int
	window      time.Duration
	prefix      string
}

// NewRedisStore creates a store allowing requestsPerMinute+burst requests per minute.
func NewRedisStore(client *redis.Client, requestsPerMinute, burst int) *RedisStore {
	return &RedisStore{
		client:      client,
		maxRequests: requestsPerMinute + burst,
		window:      time.Minute,
		prefix:      "ratelimit:",
	}
}

// Allow increments the counter of the current window for key.
func (s *RedisStore) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := s.prefix + key

	count, err := s.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, fmt.Errorf("incrementing rate limit counter: %w", err)
	}

	if count == 1 {
		if err := s.client.Expire(ctx, redisKey, s.window).Err(); err != nil {
			return false, fmt.Errorf("setting rate limit window: %w", err)
		}
	}

	return count <= int64(s.maxRequests), nil
}
