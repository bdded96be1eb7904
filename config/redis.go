package config

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient backs the per-IP rate limiter. Commands take the request
// context, so no package-level context lives here.
var RedisClient *redis.Client

// ConnectRedis dials the instance named by CRM_REDIS_URL and fails fast:
// without the counter store every request would go unmetered.
func ConnectRedis() {
	redisURL := getEnv("CRM_REDIS_URL", "redis://localhost:6379")

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("❌ Invalid CRM_REDIS_URL: %v", err)
	}

	RedisClient = redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := RedisClient.Ping(pingCtx).Err(); err != nil {
		log.Fatalf("❌ Redis connection failed: %v", err)
	}
	log.Println("✅ Connected to Redis")
}

// CloseRedis releases the client. Safe to call when ConnectRedis never ran.
func CloseRedis() {
	if RedisClient != nil {
		_ = RedisClient.Close()
	}
}
