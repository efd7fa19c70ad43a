// Package guardrails keeps a single re-scan worker active through a redis lease
package guardrails

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"time"

	"jobguard/internal/platform/logger"
)

// ErrLeaseHeld signals another worker owns the lease
var ErrLeaseHeld = errors.New("rescan: lease already held")

// KV is the redis surface a lease needs
type KV interface {
	SetNX(ctx context.Context, key, val string, ttl time.Duration) (bool, error)
	DelIf(ctx context.Context, key, val string) (bool, error)
}

// Lease runs work while holding a SET NX PX key
type Lease struct {
	kv    KV
	key   string
	owner string
	ttl   time.Duration
}

// NewLease builds a lease on key, owner is suffixed with pid and a random token
func NewLease(kv KV, key, owner string, ttl time.Duration) *Lease {
	if kv == nil {
		panic("guardrails.Lease requires a non nil KV")
	}
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	var b [6]byte
	_, _ = rand.Read(b[:])
	return &Lease{
		kv:    kv,
		key:   key,
		owner: fmt.Sprintf("%s:%d:%s", owner, os.Getpid(), hex.EncodeToString(b[:])),
		ttl:   ttl,
	}
}

// Do claims the lease, runs do and releases it
// ErrLeaseHeld when someone else has it
func (l *Lease) Do(ctx context.Context, do func(context.Context) error) error {
	ok, err := l.kv.SetNX(ctx, l.key, l.owner, l.ttl)
	if err != nil {
		return fmt.Errorf("rescan: claim lease: %w", err)
	}
	if !ok {
		return ErrLeaseHeld
	}
	defer func() {
		rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
		defer cancel()
		if _, err := l.kv.DelIf(rctx, l.key, l.owner); err != nil {
			logger.C(ctx).Warn().Err(err).Str("key", l.key).Msg("rescan: lease release failed, it will expire")
		}
	}()
	return do(ctx)
}

// Owner returns the token stored under the lease key
func (l *Lease) Owner() string { return l.owner }
