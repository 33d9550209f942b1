package storage

import (
	"log"

	"github.com/go-redis/redis/v8"
)

// NewRedis builds the cache client. Falls back to localhost for development
// when no address is configured; the cache layer tolerates an unreachable
// server, so this never blocks startup.
func NewRedis(addr string) *redis.Client {
	if addr == "" {
		addr = "localhost:6379"
		log.Println("REDIS_URL not set, using localhost:6379 (development mode)")
	}

	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: "",
		DB:       0,
	})
}
