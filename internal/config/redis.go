package config

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/redis/go-redis/v9"
)

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// DefaultRedisConfig reads REDIS_HOST, REDIS_PORT, REDIS_PASSWORD and
// REDIS_DB from the environment. A missing or non-numeric REDIS_DB falls
// back to database 0.
func DefaultRedisConfig() *RedisConfig {
	db := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			db = parsed
		}
	}

	return &RedisConfig{
		Host:     getEnvOrDefault("REDIS_HOST", "localhost"),
		Port:     getEnvOrDefault("REDIS_PORT", "6379"),
		Password: getEnvOrDefault("REDIS_PASSWORD", ""),
		DB:       db,
	}
}

// GetClient connects and pings once so a bad address fails at startup
// instead of on the first rate-limit check.
func (c *RedisConfig) GetClient() (*redis.Client, error) {
	addr := fmt.Sprintf("%s:%s", c.Host, c.Port)
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: c.Password,
		DB:       c.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}

	return client, nil
}
