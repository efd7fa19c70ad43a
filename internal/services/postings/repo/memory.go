package repo

import (
	"context"
	"maps"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"jobguard/internal/modkit/repokit"
	perr "jobguard/internal/platform/errors"
	"jobguard/internal/services/postings/domain"
)

// Memory is an in-process posting store for tests and local runs
// it satisfies testkit.Snapshotter so a fake TxRunner can roll it back
type Memory struct {
	mu   sync.RWMutex
	rows map[uuid.UUID]domain.Posting

	// Fail, when set, is returned by every call
	Fail error
}

// NewMemory returns an empty Memory store
func NewMemory(seed ...domain.Posting) *Memory {
	m := &Memory{rows: map[uuid.UUID]domain.Posting{}}
	for _, p := range seed {
		_ = m.Insert(context.Background(), p)
	}
	return m
}

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

func (m *Memory) Get(_ context.Context, id uuid.UUID) (domain.Posting, error) {
	if m.Fail != nil {
		return domain.Posting{}, m.Fail
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.rows[id]
	if !ok {
		return domain.Posting{}, perr.NotFoundf("job posting %s not found", id)
	}
	return p, nil
}

func (m *Memory) FindActiveByEmployer(_ context.Context, employerID string) ([]domain.Posting, error) {
	if m.Fail != nil {
		return nil, m.Fail
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []domain.Posting
	for _, p := range m.rows {
		if p.EmployerID == employerID && p.Active() {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

func (m *Memory) ListActiveEmployers(_ context.Context, after string, limit int) ([]string, error) {
	if m.Fail != nil {
		return nil, m.Fail
	}
	m.mu.RLock()
	seen := map[string]bool{}
	for _, p := range m.rows {
		if p.Active() && p.EmployerID > after {
			seen[p.EmployerID] = true
		}
	}
	m.mu.RUnlock()

	out := make([]string, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Strings(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *Memory) FlagDuplicate(_ context.Context, id, originalID uuid.UUID, score float64) error {
	if score < 0 || score > 1 {
		return perr.Validationf("duplicate_score", "duplicate score %v outside [0,1]", score)
	}
	return m.update(id, func(p *domain.Posting) {
		p.FlaggedAsDuplicate = true
		p.DuplicateOfJobID = &originalID
		p.DuplicateScore = &score
	})
}

func (m *Memory) MarkRemoved(_ context.Context, id uuid.UUID, at time.Time) error {
	return m.update(id, func(p *domain.Posting) {
		p.Status = domain.StatusRemoved
		p.RemovedAt = &at
	})
}

func (m *Memory) update(id uuid.UUID, fn func(*domain.Posting)) error {
	if m.Fail != nil {
		return m.Fail
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.rows[id]
	if !ok {
		return perr.NotFoundf("job posting %s not found", id)
	}
	fn(&p)
	m.rows[id] = p
	return nil
}

func (m *Memory) Insert(_ context.Context, p domain.Posting) error {
	if m.Fail != nil {
		return m.Fail
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Status == "" {
		p.Status = domain.StatusActive
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[p.ID]; ok {
		return perr.DuplicateKeyf("job posting %s exists", p.ID)
	}
	m.rows[p.ID] = p
	return nil
}
