package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var (
	redisOnce sync.Once
	redisConn *redis.Client
	redisErr  error
)

// NewRedis returns a client connected to a shared in-process Redis.
func NewRedis() (*redis.Client, error) {
	redisOnce.Do(func() {
		server, err := miniredis.Run()
		if err != nil {
			redisErr = err
			return
		}
		redisConn = redis.NewClient(&redis.Options{Addr: server.Addr()})
	})
	return redisConn, redisErr
}

func ClearRedis(ctx context.Context, client *redis.Client) error {
	return client.FlushAll(ctx).Err()
}
