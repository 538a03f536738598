package mock

import (
	"context"
	"fmt"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var (
	redisOnce   sync.Once
	redisClient *redis.Client
)

// NewRedis returns a client backed by a process-wide miniredis instance, so
// the paid-check cache behaves like the real thing without a server.
func NewRedis() *redis.Client {
	redisOnce.Do(func() {
		server, err := miniredis.Run()
		if err != nil {
			panic(fmt.Sprintf("start miniredis: %s", err))
		}
		redisClient = redis.NewClient(&redis.Options{Addr: server.Addr()})
	})
	return redisClient
}

// FlushRedis empties the instance between scenarios.
func FlushRedis(client *redis.Client) error {
	return client.FlushAll(context.Background()).Err()
}
