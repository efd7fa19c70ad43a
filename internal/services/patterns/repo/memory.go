package repo

import (
	"context"
	"maps"
	"sort"
	"sync"

	"jobguard/internal/modkit/repokit"
	perr "jobguard/internal/platform/errors"
	"jobguard/internal/services/patterns/domain"
)

// Memory is an in-process pattern store
// it gives no row locks, pair it with a TxRunner that serializes transactions
type Memory struct {
	mu   sync.RWMutex
	rows map[domain.Key]domain.Pattern

	// Fail, when set, is returned by every write
	Fail error
}

// NewMemory returns an empty Memory store
func NewMemory() *Memory { return &Memory{rows: map[domain.Key]domain.Pattern{}} }

// Binder binds every queryer to this store
func (m *Memory) Binder() repokit.Binder[domain.Repo] {
	return repokit.BindFunc[domain.Repo](func(repokit.Queryer) domain.Repo { return m })
}

// Snapshot copies the rows and returns a restore func
func (m *Memory) Snapshot() func() {
	m.mu.RLock()
	saved := maps.Clone(m.rows)
	m.mu.RUnlock()
	return func() {
		m.mu.Lock()
		m.rows = saved
		m.mu.Unlock()
	}
}

// Put stores p as is, for seeding tests
func (m *Memory) Put(p domain.Pattern) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[p.Key()] = p
}

func (m *Memory) Insert(_ context.Context, p domain.Pattern) (bool, error) {
	if m.Fail != nil {
		return false, m.Fail
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[p.Key()]; ok {
		return false, nil
	}
	m.rows[p.Key()] = p
	return true, nil
}

func (m *Memory) LockByKey(_ context.Context, k domain.Key) (domain.Pattern, error) {
	if m.Fail != nil {
		return domain.Pattern{}, m.Fail
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.rows[k]
	if !ok {
		return domain.Pattern{}, perr.NotFoundf("posting pattern not found")
	}
	return p, nil
}

func (m *Memory) Update(_ context.Context, p domain.Pattern) error {
	if m.Fail != nil {
		return m.Fail
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[p.Key()]; !ok {
		return perr.NotFoundf("posting pattern %s not found", p.ID)
	}
	m.rows[p.Key()] = p
	return nil
}

func (m *Memory) ListSuspicious(_ context.Context, threshold float64, limit int) ([]domain.Pattern, error) {
	out := m.filter(func(p domain.Pattern) bool { return p.SuspiciousScore >= threshold || p.FlaggedForReview })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *Memory) ListForEmployer(_ context.Context, employerID string) ([]domain.Pattern, error) {
	return m.filter(func(p domain.Pattern) bool { return p.EmployerID == employerID }), nil
}

func (m *Memory) filter(keep func(domain.Pattern) bool) []domain.Pattern {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []domain.Pattern{}
	for _, p := range m.rows {
		if keep(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SuspiciousScore != out[j].SuspiciousScore {
			return out[i].SuspiciousScore > out[j].SuspiciousScore
		}
		if !out[i].LastSeenAt.Equal(out[j].LastSeenAt) {
			return out[i].LastSeenAt.After(out[j].LastSeenAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out
}

func (m *Memory) Stats(context.Context) (domain.Stats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var s domain.Stats
	sum := 0.0
	for _, p := range m.rows {
		s.TotalPatterns++
		if p.FlaggedForReview {
			s.FlaggedPatterns++
		}
		sum += p.SuspiciousScore
	}
	if s.TotalPatterns > 0 {
		s.AverageScore = sum / float64(s.TotalPatterns)
	}
	return s, nil
}
