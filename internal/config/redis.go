package config

import (
	"github.com/redis/go-redis/v9"
)

// NewRedisClient creates the redis client backing the session store
func NewRedisClient(cfg RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}
