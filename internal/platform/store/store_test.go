package store

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

type fakeKV struct {
	pingErr error
	closed  bool
}

func (f *fakeKV) SetNX(context.Context, string, string, time.Duration) (bool, error) {
	return true, nil
}
func (f *fakeKV) DelIf(context.Context, string, string) (bool, error) { return true, nil }
func (f *fakeKV) Publish(context.Context, string, []byte) error       { return nil }
func (f *fakeKV) Ping(context.Context) error                          { return f.pingErr }
func (f *fakeKV) Close() error                                        { f.closed = true; return nil }

func TestOpen_NothingEnabled(t *testing.T) {
	s, err := Open(t.Context(), Config{AppName: "jobguard-test"})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if s.PG != nil || s.CH != nil || s.RDS != nil {
		t.Fatalf("expected no backends, got %+v", s)
	}
	if err := s.Guard(t.Context()); err != nil {
		t.Fatalf("guard on empty store: %v", err)
	}
	if err := s.Migrate(t.Context()); err != nil {
		t.Fatalf("migrate without pg: %v", err)
	}
}

func TestOpen_OptionError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Open(t.Context(), Config{}, func(*Store) error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("want option error, got %v", err)
	}
}

func TestGuard_ReportsFailingSeam(t *testing.T) {
	s := &Store{RDS: &fakeKV{pingErr: errors.New("conn refused")}}
	err := s.Guard(t.Context())
	if err == nil || !strings.Contains(err.Error(), "redis: conn refused") {
		t.Fatalf("guard err = %v", err)
	}
}

func TestClose_ClosesRedis(t *testing.T) {
	kv := &fakeKV{}
	s := &Store{RDS: kv}
	if err := s.Close(t.Context()); err != nil {
		t.Fatalf("close: %v", err)
	}
	if !kv.closed {
		t.Fatalf("redis seam not closed")
	}
}

func TestGuard_NilStore(t *testing.T) {
	var s *Store
	if err := s.Guard(t.Context()); err == nil {
		t.Fatalf("expected error from nil store")
	}
}
