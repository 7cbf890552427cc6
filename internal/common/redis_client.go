package common

import (
	"context"
	"fmt"
	"time"

	"helping-hands/volunteerhub/internal/logging"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient builds a pooled client and pings it once. A failed ping is
// returned so the caller can decide whether to fall back to in-memory services.
func NewRedisClient(ctx context.Context, addr, password string) (*redis.Client, error) {
	logging.Info("Initializing Redis client", "addr", addr)

	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", addr, err)
	}

	logging.Info("Connected to Redis", "addr", addr)
	return client, nil
}
