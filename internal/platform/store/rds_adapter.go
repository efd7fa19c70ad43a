package store

import (
	"context"
	"errors"
	"time"

	"jobguard/internal/platform/store/rds"
)

func newRDSAdapter(c *rds.RDS) KV { return &redisAdapter{inner: c} }

// redisAdapter adapts *rds.RDS to the store.KV seam
type redisAdapter struct {
	inner *rds.RDS
}

var _ KV = (*redisAdapter)(nil)

func (a *redisAdapter) SetNX(ctx context.Context, key, val string, ttl time.Duration) (bool, error) {
	return a.inner.SetNX(ctx, key, val, ttl)
}

func (a *redisAdapter) DelIf(ctx context.Context, key, val string) (bool, error) {
	return a.inner.DelIf(ctx, key, val)
}

func (a *redisAdapter) Publish(ctx context.Context, channel string, payload []byte) error {
	return a.inner.Publish(ctx, channel, payload)
}

func (a *redisAdapter) Ping(ctx context.Context) error {
	if a == nil || a.inner == nil {
		return errors.New("store: nil redis adapter")
	}
	return a.inner.Ping(ctx)
}

func (a *redisAdapter) Close() error { return a.inner.Close() }
