package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisConnOnce sync.Once
var redisConn *redis.Client
var miniRedis *miniredis.Miniredis

// NewRedis returns a client for a shared in-process Redis.
func NewRedis() *redis.Client {
	redisConnOnce.Do(func() {
		redisConn = openRedisConn()
	})
	return redisConn
}

func openRedisConn() *redis.Client {
	var err error
	miniRedis, err = miniredis.Run()
	if err != nil {
		panic(err)
	}

	return redis.NewClient(&redis.Options{
		Addr: miniRedis.Addr(),
	})
}

// ClearRedis removes every cached summary and generation key.
func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.TODO()).Err()
}

// RedisKeys lists the keys matching a glob pattern.
func RedisKeys(client *redis.Client, pattern string) ([]string, error) {
	return client.Keys(context.TODO(), pattern).Result()
}
