package repokit

import (
	"context"
	"errors"
	"testing"
	"time"

	kit "jobguard/internal/platform/testkit"
)

type recordingQ struct {
	kit.NoSQL
	execs []string
}

func (r *recordingQ) Exec(_ context.Context, sql string, _ ...any) (CommandTag, error) {
	r.execs = append(r.execs, sql)
	return nil, nil
}

func TestLockTimeout(t *testing.T) {
	q := &recordingQ{}
	if err := LockTimeout(1500*time.Millisecond)(t.Context(), q); err != nil {
		t.Fatal(err)
	}
	if len(q.execs) != 1 || q.execs[0] != "SET LOCAL lock_timeout = '1500ms'" {
		t.Fatalf("execs = %v", q.execs)
	}
	if err := LockTimeout(0)(t.Context(), q); err != nil || len(q.execs) != 1 {
		t.Fatalf("zero timeout should be a no op")
	}
}

func TestWithBeginHooks_OrderAndAbort(t *testing.T) {
	var seq []string
	hook := func(name string, err error) BeginHook {
		return func(context.Context, Queryer) error {
			seq = append(seq, name)
			return err
		}
	}
	tx := WithBeginHooks(kit.NewTxRunner(), hook("a", nil), hook("b", nil))
	err := tx.Tx(t.Context(), func(Queryer) error {
		seq = append(seq, "fn")
		return nil
	})
	if err != nil || len(seq) != 3 || seq[2] != "fn" {
		t.Fatalf("seq = %v err = %v", seq, err)
	}

	seq = nil
	boom := errors.New("boom")
	tx = WithBeginHooks(kit.NewTxRunner(), hook("a", boom))
	err = tx.Tx(t.Context(), func(Queryer) error {
		seq = append(seq, "fn")
		return nil
	})
	if !errors.Is(err, boom) || len(seq) != 1 {
		t.Fatalf("failing hook must stop fn, seq = %v err = %v", seq, err)
	}
}
