package testkit

import (
	"context"
	"errors"
	"maps"
	"sync"
	"testing"

	"jobguard/internal/platform/store"
)

type counterFake struct {
	mu sync.Mutex
	m  map[string]int
}

func (c *counterFake) Snapshot() func() {
	c.mu.Lock()
	saved := maps.Clone(c.m)
	c.mu.Unlock()
	return func() {
		c.mu.Lock()
		c.m = saved
		c.mu.Unlock()
	}
}

func (c *counterFake) inc(k string) {
	c.mu.Lock()
	c.m[k]++
	c.mu.Unlock()
}

func TestTxRunner_RollbackRestores(t *testing.T) {
	f := &counterFake{m: map[string]int{"a": 1}}
	tx := NewTxRunner(f)

	boom := errors.New("boom")
	err := tx.Tx(t.Context(), func(store.RowQuerier) error {
		f.inc("a")
		f.inc("b")
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
	if f.m["a"] != 1 || f.m["b"] != 0 {
		t.Fatalf("state not restored: %v", f.m)
	}
	if tx.Rollbacks() != 1 || tx.Commits() != 0 {
		t.Fatalf("commits=%d rollbacks=%d", tx.Commits(), tx.Rollbacks())
	}
}

func TestTxRunner_SerializesConcurrentTx(t *testing.T) {
	f := &counterFake{m: map[string]int{}}
	tx := NewTxRunner(f)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = tx.Tx(context.Background(), func(store.RowQuerier) error {
				f.inc("k")
				return nil
			})
		}()
	}
	wg.Wait()
	if f.m["k"] != 50 || tx.Commits() != 50 {
		t.Fatalf("k=%d commits=%d", f.m["k"], tx.Commits())
	}
}

func TestTxRunner_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	err := NewTxRunner().Tx(ctx, func(store.RowQuerier) error { called = true; return nil })
	if !errors.Is(err, context.Canceled) || called {
		t.Fatalf("err = %v called = %v", err, called)
	}
}

func TestNoSQL(t *testing.T) {
	var q NoSQL
	if _, err := q.Exec(t.Context(), "select 1"); !errors.Is(err, ErrNoSQL) {
		t.Fatalf("exec err = %v", err)
	}
	var n int
	if err := q.QueryRow(t.Context(), "select 1").Scan(&n); !errors.Is(err, ErrNoSQL) {
		t.Fatalf("scan err = %v", err)
	}
}
