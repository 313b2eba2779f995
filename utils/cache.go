// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"

	"github.com/black-sheep-marketing/blacksheep-calendar/config"
)

// CacheClient is the client for availability snapshot caching.
var CacheClient *redis.Client

// InitCache initializes the Redis cache client (using DB from AppConfig for availability snapshots).
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// QueueRedisOpt returns the connection options for the task queue. The
// queue lives in its own logical DB so FLUSHDB on the cache never touches
// pending side-effect tasks.
func QueueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// QueueClient is a plain client on the queue DB, used for health checks.
// asynq manages its own connections for the worker and producer.
var QueueClient *redis.Client

// GetQueueClient returns the queue health-check client.
func GetQueueClient() *redis.Client {
	if QueueClient == nil {
		opt := QueueRedisOpt()
		QueueClient = redis.NewClient(&redis.Options{
			Addr:     opt.Addr,
			Password: opt.Password,
			DB:       opt.DB,
		})
	}
	return QueueClient
}
