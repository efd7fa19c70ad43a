// Package service ranks an employer's active postings against a candidate
// it never writes, callers decide whether to raise alerts
package service

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"jobguard/internal/core/similarity"
	"jobguard/internal/services/duplicates/domain"
	postings "jobguard/internal/services/postings/domain"
)

// Config for the matcher
type Config struct {
	// Floor drops matches scoring below it
	Floor float64
	// Limit caps the ranked list
	Limit int
}

// Service implements domain.ServicePort
type Service struct {
	reader postings.Reader
	scorer *similarity.Scorer
	cfg    Config
}

var _ domain.ServicePort = (*Service)(nil)

// New constructs the matcher
func New(reader postings.Reader, scorer *similarity.Scorer, cfg Config) *Service {
	if reader == nil {
		panic("duplicates.Service requires a non nil posting reader")
	}
	if scorer == nil {
		panic("duplicates.Service requires a non nil scorer")
	}
	if cfg.Limit <= 0 {
		cfg.Limit = 10
	}
	return &Service{reader: reader, scorer: scorer, cfg: cfg}
}

// FindDuplicates ranks the employer's active postings against c
func (s *Service) FindDuplicates(ctx context.Context, c domain.Candidate) ([]domain.Match, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return s.rank(ctx, c, uuid.Nil)
}

// FindDuplicatesForExistingJob ranks a stored posting against its siblings
func (s *Service) FindDuplicatesForExistingJob(ctx context.Context, jobID uuid.UUID) ([]domain.Match, error) {
	p, err := s.reader.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return s.rank(ctx, domain.CandidateFrom(p), p.ID)
}

func (s *Service) rank(ctx context.Context, c domain.Candidate, self uuid.UUID) ([]domain.Match, error) {
	corpus, err := s.reader.FindActiveByEmployer(ctx, c.EmployerID)
	if err != nil {
		return nil, err
	}

	cand := similarity.Posting{Title: c.Title, Company: c.CompanyName, Location: c.Location}
	out := []domain.Match{}
	for _, p := range corpus {
		if p.ID == self || !p.Active() {
			continue
		}
		r := s.scorer.Score(cand, similarity.Posting{Title: p.Title, Company: p.CompanyName, Location: p.Location})
		if r.Method == similarity.MethodNone || r.Score < s.cfg.Floor {
			continue
		}
		out = append(out, domain.Match{Posting: p, Score: r.Score, Method: r.Method})
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if !a.Posting.CreatedAt.Equal(b.Posting.CreatedAt) {
			return a.Posting.CreatedAt.After(b.Posting.CreatedAt)
		}
		return a.Posting.ID.String() < b.Posting.ID.String()
	})
	if len(out) > s.cfg.Limit {
		out = out[:s.cfg.Limit]
	}
	return out, nil
}
