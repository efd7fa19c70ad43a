// Package rds provides a small redis client for leases and event fan out
package rds

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config configures the redis client
type Config struct {
	URL string
}

// RDS wraps a go-redis client
type RDS struct {
	client *redis.Client
}

// releaseScript deletes a key only while it still holds the caller's token
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// Open parses the url, connects and pings
func Open(ctx context.Context, cfg Config) (*RDS, error) {
	if cfg.URL == "" {
		return nil, errors.New("rds: empty url")
	}
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("rds: parse url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("rds: ping: %w", err)
	}
	return &RDS{client: client}, nil
}

// New wraps an existing client
func New(client *redis.Client) *RDS { return &RDS{client: client} }

// SetNX sets key to val with ttl when absent and reports whether it was set
func (r *RDS) SetNX(ctx context.Context, key, val string, ttl time.Duration) (bool, error) {
	return r.client.SetNX(ctx, key, val, ttl).Result()
}

// DelIf removes key when its value equals val
func (r *RDS) DelIf(ctx context.Context, key, val string) (bool, error) {
	n, err := releaseScript.Run(ctx, r.client, []string{key}, val).Int()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// Publish sends payload on channel
func (r *RDS) Publish(ctx context.Context, channel string, payload []byte) error {
	return r.client.Publish(ctx, channel, payload).Err()
}

// Ping checks connectivity
func (r *RDS) Ping(ctx context.Context) error { return r.client.Ping(ctx).Err() }

// Close releases the connection pool
func (r *RDS) Close() error {
	if r == nil || r.client == nil {
		return nil
	}
	return r.client.Close()
}
