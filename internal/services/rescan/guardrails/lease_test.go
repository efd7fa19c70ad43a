package guardrails

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	kit "jobguard/internal/platform/testkit"
)

type memKV struct {
	mu      sync.Mutex
	vals    map[string]string
	ttls    map[string]time.Duration
	failSet error
	failDel error
}

func newMemKV() *memKV { return &memKV{vals: map[string]string{}, ttls: map[string]time.Duration{}} }

func (m *memKV) SetNX(_ context.Context, key, val string, ttl time.Duration) (bool, error) {
	if m.failSet != nil {
		return false, m.failSet
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.vals[key]; ok {
		return false, nil
	}
	m.vals[key], m.ttls[key] = val, ttl
	return true, nil
}

func (m *memKV) DelIf(_ context.Context, key, val string) (bool, error) {
	if m.failDel != nil {
		return false, m.failDel
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.vals[key] != val {
		return false, nil
	}
	delete(m.vals, key)
	return true, nil
}

func TestLease_ClaimRunRelease(t *testing.T) {
	kv := newMemKV()
	l := NewLease(kv, "jobguard:rescan:lease", "rescan", time.Minute)

	ran := false
	err := l.Do(context.Background(), func(context.Context) error {
		ran = true
		if kv.vals["jobguard:rescan:lease"] != l.Owner() || kv.ttls["jobguard:rescan:lease"] != time.Minute {
			t.Fatalf("lease not held during work: %v", kv.vals)
		}
		return nil
	})
	if err != nil || !ran {
		t.Fatalf("Do = %v ran=%v", err, ran)
	}
	if _, held := kv.vals["jobguard:rescan:lease"]; held {
		t.Fatalf("lease not released")
	}
}

func TestLease_HeldElsewhere(t *testing.T) {
	kv := newMemKV()
	kv.vals["k"] = "someone-else"
	l := NewLease(kv, "k", "rescan", 0)

	err := l.Do(context.Background(), func(context.Context) error {
		t.Fatalf("work must not run without the lease")
		return nil
	})
	if !errors.Is(err, ErrLeaseHeld) {
		t.Fatalf("want ErrLeaseHeld, got %v", err)
	}
	if kv.vals["k"] != "someone-else" {
		t.Fatalf("foreign lease must survive")
	}
}

func TestLease_WorkErrorStillReleases(t *testing.T) {
	kv := newMemKV()
	l := NewLease(kv, "k", "rescan", time.Minute)
	boom := errors.New("boom")
	if err := l.Do(context.Background(), func(context.Context) error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("Do = %v", err)
	}
	if len(kv.vals) != 0 {
		t.Fatalf("lease not released after failure")
	}
}

func TestLease_ClaimErrorAndReleaseError(t *testing.T) {
	kv := newMemKV()
	kv.failSet = errors.New("redis down")
	l := NewLease(kv, "k", "rescan", time.Minute)
	if err := l.Do(context.Background(), func(context.Context) error { return nil }); err == nil || errors.Is(err, ErrLeaseHeld) {
		t.Fatalf("claim error should surface, got %v", err)
	}

	kv.failSet, kv.failDel = nil, errors.New("redis blip")
	if err := l.Do(context.Background(), func(context.Context) error { return nil }); err != nil {
		t.Fatalf("release failure is logged only, got %v", err)
	}
}

func TestLease_OwnersAreUnique(t *testing.T) {
	kv := newMemKV()
	a, b := NewLease(kv, "k", "rescan", 0), NewLease(kv, "k", "rescan", 0)
	if a.Owner() == b.Owner() {
		t.Fatalf("owners collide: %s", a.Owner())
	}
	kit.MustPanic(t, func() { NewLease(nil, "k", "rescan", 0) })
}
