package testkit

import (
	"context"
	"errors"
	"sync"

	"jobguard/internal/platform/store"
)

// ErrNoSQL is returned by the fake querier, in-memory repos never issue sql
var ErrNoSQL = errors.New("testkit: in-memory runner has no sql backend")

// Snapshotter is an in-memory fake that can capture its state and restore it later
type Snapshotter interface {
	// Snapshot captures state and returns a func that puts it back
	Snapshot() (restore func())
}

// NoSQL satisfies store.RowQuerier and fails every statement
type NoSQL struct{}

// Exec fails with ErrNoSQL
func (NoSQL) Exec(context.Context, string, ...any) (store.CommandTag, error) { return nil, ErrNoSQL }

// Query fails with ErrNoSQL
func (NoSQL) Query(context.Context, string, ...any) (store.Rows, error) { return nil, ErrNoSQL }

// QueryRow returns a row whose Scan fails with ErrNoSQL
func (NoSQL) QueryRow(context.Context, string, ...any) store.Row { return errRow{} }

type errRow struct{}

func (errRow) Scan(...any) error { return ErrNoSQL }

// TxRunner is an in-memory store.TxRunner for service tests
// transactions run one at a time and a failing fn restores every registered fake
type TxRunner struct {
	NoSQL

	mu    sync.Mutex
	fakes []Snapshotter

	stats struct {
		sync.Mutex
		commits, rollbacks int
	}
}

var _ store.TxRunner = (*TxRunner)(nil)

// NewTxRunner returns a runner that snapshots fakes around every Tx
func NewTxRunner(fakes ...Snapshotter) *TxRunner {
	return &TxRunner{fakes: fakes}
}

// Tx runs fn and rolls the fakes back when it fails
func (t *TxRunner) Tx(ctx context.Context, fn func(q store.RowQuerier) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	restores := make([]func(), 0, len(t.fakes))
	for _, f := range t.fakes {
		restores = append(restores, f.Snapshot())
	}
	if err := fn(t.NoSQL); err != nil {
		for i := len(restores) - 1; i >= 0; i-- {
			restores[i]()
		}
		t.count(false)
		return err
	}
	t.count(true)
	return nil
}

func (t *TxRunner) count(committed bool) {
	t.stats.Lock()
	defer t.stats.Unlock()
	if committed {
		t.stats.commits++
	} else {
		t.stats.rollbacks++
	}
}

// Commits reports how many transactions committed
func (t *TxRunner) Commits() int {
	t.stats.Lock()
	defer t.stats.Unlock()
	return t.stats.commits
}

// Rollbacks reports how many transactions rolled back
func (t *TxRunner) Rollbacks() int {
	t.stats.Lock()
	defer t.stats.Unlock()
	return t.stats.rollbacks
}
