package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	ginlimiter "github.com/ulule/limiter/v3/drivers/middleware/gin"
	memory "github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"

	"github.com/anirudhs017/event-management-backend/utils"
)

// RateLimiter returns a Gin middleware that limits requests per IP.
// Counters live in redis when it is available so limits hold across
// replicas, otherwise an in-memory store is used.
func RateLimiter() gin.HandlerFunc {
	rate := limiter.Rate{
		Period: 1 * time.Minute,
		Limit:  100,
	}

	var store limiter.Store
	if utils.RedisClient != nil {
		redisStore, err := sredis.NewStoreWithOptions(utils.RedisClient, limiter.StoreOptions{
			Prefix: "ratelimit",
		})
		if err != nil {
			log.Printf("rate limiter: redis store unavailable, falling back to memory: %v", err)
			store = memory.NewStore()
		} else {
			store = redisStore
		}
	} else {
		store = memory.NewStore()
	}

	instance := limiter.New(store, rate)

	return ginlimiter.NewMiddleware(instance)
}
