package repo

import (
	"context"
	"maps"
	"slices"
	"sort"
	"sync"

	"github.com/google/uuid"

	"jobguard/internal/core/similarity"
	"jobguard/internal/modkit/repokit"
	perr "jobguard/internal/platform/errors"
	"jobguard/internal/services/alerts/domain"
	postings "jobguard/internal/services/postings/domain"
)

type pair struct{ orig, dup uuid.UUID }

// Memory is an in-process alert store with an audit log
// pair it with a TxRunner that serializes transactions
type Memory struct {
	mu     sync.RWMutex
	alerts map[uuid.UUID]domain.Alert
	pairs  map[pair]uuid.UUID
	audit  []domain.AuditEntry

	// Owners resolves posting employers for ListForEmployer, nil lists nothing
	Owners postings.Reader
	// Fail, when set, is returned by every call
	Fail error
	// FailAudit, when set, is returned by InsertAudit only
	FailAudit error
}

// NewMemory returns an empty Memory store
func NewMemory(owners postings.Reader) *Memory {
	return &Memory{
		alerts: map[uuid.UUID]domain.Alert{},
		pairs:  map[pair]uuid.UUID{},
		Owners: owners,
	}
}

// Binder binds every queryer to this store
func (m *Memory) Binder() repokit.Binder[domain.Repo] {
	return repokit.BindFunc[domain.Repo](func(repokit.Queryer) domain.Repo { return m })
}

// Snapshot copies alerts and audit rows and returns a restore func
func (m *Memory) Snapshot() func() {
	m.mu.RLock()
	alerts, pairs, audit := maps.Clone(m.alerts), maps.Clone(m.pairs), slices.Clone(m.audit)
	m.mu.RUnlock()
	return func() {
		m.mu.Lock()
		m.alerts, m.pairs, m.audit = alerts, pairs, audit
		m.mu.Unlock()
	}
}

// Audit returns a copy of the audit log in write order
func (m *Memory) Audit() []domain.AuditEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.audit)
}

func (m *Memory) Insert(_ context.Context, a domain.Alert) (bool, error) {
	if m.Fail != nil {
		return false, m.Fail
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	k := pair{a.OriginalJobID, a.DuplicateJobID}
	if _, ok := m.pairs[k]; ok {
		return false, nil
	}
	a.ReviewStatus = domain.StatusPending
	m.alerts[a.ID] = a
	m.pairs[k] = a.ID
	return true, nil
}

func (m *Memory) GetByPair(_ context.Context, originalID, duplicateID uuid.UUID) (domain.Alert, error) {
	if m.Fail != nil {
		return domain.Alert{}, m.Fail
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.pairs[pair{originalID, duplicateID}]
	if !ok {
		return domain.Alert{}, perr.NotFoundf("duplicate alert not found")
	}
	return m.alerts[id], nil
}

func (m *Memory) LockByID(_ context.Context, id uuid.UUID) (domain.Alert, error) {
	if m.Fail != nil {
		return domain.Alert{}, m.Fail
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.alerts[id]
	if !ok {
		return domain.Alert{}, perr.NotFoundf("duplicate alert %s not found", id)
	}
	return a, nil
}

func (m *Memory) UpdateReview(_ context.Context, a domain.Alert) error {
	if m.Fail != nil {
		return m.Fail
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.alerts[a.ID]; !ok {
		return perr.NotFoundf("duplicate alert %s not found", a.ID)
	}
	m.alerts[a.ID] = a
	return nil
}

func (m *Memory) InsertAudit(_ context.Context, e domain.AuditEntry) error {
	if m.Fail != nil {
		return m.Fail
	}
	if m.FailAudit != nil {
		return m.FailAudit
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.audit = append(m.audit, e)
	return nil
}

func (m *Memory) ListPending(_ context.Context, limit int) ([]domain.Alert, error) {
	if m.Fail != nil {
		return nil, m.Fail
	}
	out := m.filter(func(a domain.Alert) bool { return a.ReviewStatus == domain.StatusPending })
	sort.Slice(out, func(i, j int) bool {
		if !out[i].DetectedAt.Equal(out[j].DetectedAt) {
			return out[i].DetectedAt.Before(out[j].DetectedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *Memory) ListForEmployer(ctx context.Context, employerID string) ([]domain.Alert, error) {
	if m.Fail != nil {
		return nil, m.Fail
	}
	if m.Owners == nil {
		return []domain.Alert{}, nil
	}
	owned := func(id uuid.UUID) bool {
		p, err := m.Owners.Get(ctx, id)
		return err == nil && p.EmployerID == employerID
	}
	out := m.filter(func(a domain.Alert) bool { return owned(a.OriginalJobID) || owned(a.DuplicateJobID) })
	sort.Slice(out, func(i, j int) bool {
		if !out[i].DetectedAt.Equal(out[j].DetectedAt) {
			return out[i].DetectedAt.After(out[j].DetectedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

func (m *Memory) filter(keep func(domain.Alert) bool) []domain.Alert {
	m.mu.RLock()
	all := slices.Collect(maps.Values(m.alerts))
	m.mu.RUnlock()
	out := []domain.Alert{}
	for _, a := range all {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}

func (m *Memory) Stats(context.Context) (domain.Stats, error) {
	if m.Fail != nil {
		return domain.Stats{}, m.Fail
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	s := domain.Stats{ByStatus: map[domain.Status]int64{}, ByMethod: map[similarity.Method]int64{}}
	for _, a := range m.alerts {
		s.Total++
		s.ByStatus[a.ReviewStatus]++
		s.ByMethod[a.DetectionMethod]++
	}
	return s, nil
}
