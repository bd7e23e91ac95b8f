package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type CacheOptions struct {
	Addr     string
	Password string
	DB       int
	PingTO   time.Duration
}

// OpenCache connects the snapshot cache. An empty address means caching is
// disabled and a nil client is returned.
func OpenCache(ctx context.Context, opt CacheOptions) (*redis.Client, error) {
	if opt.Addr == "" {
		return nil, nil
	}
	if opt.PingTO == 0 {
		opt.PingTO = 2 * time.Second
	}

	client := redis.NewClient(&redis.Options{
		Addr:     opt.Addr,
		Password: opt.Password,
		DB:       opt.DB,
	})

	pctx, cancel := context.WithTimeout(ctx, opt.PingTO)
	defer cancel()

	if err := client.Ping(pctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("cache ping: %w", err)
	}

	return client, nil
}
