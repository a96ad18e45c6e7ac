package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newLimitedEngine(rl *RateLimiter) *gin.Engine {
	r := gin.New()
	r.Use(rl.Middleware())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return r
}

func doPing(r *gin.Engine, ip string) int {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = ip + ":1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

type failingStore struct{}

func (failingStore) Allow(context.Context, string) (bool, error) {
	return false, errors.New("connection refused")
}

func TestRateLimiter_MemoryStore(t *testing.T) {
	t.Run("rejects requests beyond the burst", func(t *testing.T) {
		store := NewMemoryStore(1, 3)
		r := newLimitedEngine(NewRateLimiter(store, false))

		for i := 0; i < 3; i++ {
			assert.Equal(t, http.StatusOK, doPing(r, "10.0.0.1"))
		}
		assert.Equal(t, http.StatusTooManyRequests, doPing(r, "10.0.0.1"))
	})

	t.Run("tracks clients independently", func(t *testing.T) {
		store := NewMemoryStore(1, 1)
		r := newLimitedEngine(NewRateLimiter(store, false))

		assert.Equal(t, http.StatusOK, doPing(r, "10.0.0.1"))
		assert.Equal(t, http.StatusTooManyRequests, doPing(r, "10.0.0.1"))
		assert.Equal(t, http.StatusOK, doPing(r, "10.0.0.2"))
	})

	t.Run("refills tokens over time", func(t *testing.T) {
		now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		store := NewMemoryStore(60, 1)
		store.now = func() time.Time { return now }

		allowed, err := store.Allow(context.Background(), "k")
		require.NoError(t, err)
		assert.True(t, allowed)

		allowed, _ = store.Allow(context.Background(), "k")
		assert.False(t, allowed)

		now = now.Add(time.Second)
		allowed, _ = store.Allow(context.Background(), "k")
		assert.True(t, allowed)
	})

	t.Run("skip disables the limiter", func(t *testing.T) {
		store := NewMemoryStore(1, 1)
		r := newLimitedEngine(NewRateLimiter(store, true))

		for i := 0; i < 5; i++ {
			assert.Equal(t, http.StatusOK, doPing(r, "10.0.0.1"))
		}
	})

	t.Run("reset forgets all clients", func(t *testing.T) {
		store := NewMemoryStore(1, 1)
		r := newLimitedEngine(NewRateLimiter(store, false))

		assert.Equal(t, http.StatusOK, doPing(r, "10.0.0.1"))
		assert.Equal(t, http.StatusTooManyRequests, doPing(r, "10.0.0.1"))
		store.Reset()
		assert.Equal(t, http.StatusOK, doPing(r, "10.0.0.1"))
	})
}

func TestMemoryStore_Cleanup(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStore(60, 5)
	store.now = func() time.Time { return now }

	_, _ = store.Allow(context.Background(), "old")
	now = now.Add(10 * time.Minute)
	_, _ = store.Allow(context.Background(), "fresh")

	store.Cleanup(5 * time.Minute)

	assert.Len(t, store.entries, 1)
	assert.Contains(t, store.entries, "fresh")
}

func TestRateLimiter_RedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := NewRedisStore(client, 2, 1)
	r := newLimitedEngine(NewRateLimiter(store, false))

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, doPing(r, "10.0.0.1"))
	}
	assert.Equal(t, http.StatusTooManyRequests, doPing(r, "10.0.0.1"))
	assert.Equal(t, http.StatusOK, doPing(r, "10.0.0.9"))

	ttl := mr.TTL("ratelimit:10.0.0.1")
	assert.Greater(t, ttl, time.Duration(0))

	mr.FastForward(time.Minute + time.Second)
	assert.Equal(t, http.StatusOK, doPing(r, "10.0.0.1"))
}

func TestRateLimiter_StoreFailureLetsRequestsThrough(t *testing.T) {
	r := newLimitedEngine(NewRateLimiter(failingStore{}, false))

	assert.Equal(t, http.StatusOK, doPing(r, "10.0.0.1"))
}
