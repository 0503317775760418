package utils

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/anirudhs017/event-management-backend/config"
)

// RedisClient is the shared client, set by InitRedis at startup.
var RedisClient *redis.Client

// Ctx is the background context used for fire-and-forget redis calls.
var Ctx = context.Background()

// InitRedis connects the shared redis client and verifies the connection.
func InitRedis(cfg *config.Config) error {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := client.Ping(Ctx).Err(); err != nil {
		return err
	}

	RedisClient = client
	return nil
}
