// Package service tracks posting cadence per employer, company and title pattern
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobguard/internal/core/normalize"
	"jobguard/internal/core/suspicion"
	"jobguard/internal/core/thresholds"
	"jobguard/internal/modkit/repokit"
	perr "jobguard/internal/platform/errors"
	"jobguard/internal/platform/logger"
	"jobguard/internal/services/patterns/domain"
)

// Config for the patterns service
type Config struct {
	// Timeout bounds one RecordPosting call including retries
	Timeout time.Duration
	// Attempts caps tries on retryable store errors
	Attempts int
	// ListLimit and ListMax bound ListSuspicious
	ListLimit int
	ListMax   int

	Suspicion thresholds.Suspicion
	Now       func() time.Time
}

// Service implements domain.ServicePort
type Service struct {
	db     repokit.TxRunner
	binder repokit.Binder[domain.Repo]
	repo   domain.Repo
	norm   *normalize.Normalizer
	cfg    Config
}

var _ domain.ServicePort = (*Service)(nil)

// New constructs the patterns service
func New(db repokit.TxRunner, binder repokit.Binder[domain.Repo], cfg Config) *Service {
	if db == nil {
		panic("patterns.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("patterns.Service requires a non nil Repo binder")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Second
	}
	if cfg.Attempts <= 0 {
		cfg.Attempts = 3
	}
	if cfg.ListLimit <= 0 {
		cfg.ListLimit = 50
	}
	if cfg.ListMax < cfg.ListLimit {
		cfg.ListMax = 500
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Service{
		db:     db,
		binder: binder,
		repo:   binder.Bind(db),
		norm:   normalize.New(),
		cfg:    cfg,
	}
}

// RecordPosting folds one posting into its pattern row
// validation errors surface, store failures are logged and reported as Recorded false
func (s *Service) RecordPosting(ctx context.Context, in domain.RecordInput) (domain.RecordResult, error) {
	if err := in.Validate(); err != nil {
		return domain.RecordResult{}, err
	}
	ctx = logger.WithEmployer(ctx, in.EmployerID)

	key := domain.Key{
		EmployerID:   strings.TrimSpace(in.EmployerID),
		CompanyName:  strings.TrimSpace(in.CompanyName),
		TitlePattern: s.norm.Title(in.Title),
	}
	if key.TitlePattern == "" {
		// all noise titles keep their folded words rather than share one empty key
		key.TitlePattern = normalize.Fold(in.Title)
	}
	loc := strings.ToLower(strings.TrimSpace(in.Location))
	salary := strings.TrimSpace(in.Salary)

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	var (
		out     domain.Pattern
		created bool
		err     error
	)
	for attempt := 1; attempt <= s.cfg.Attempts; attempt++ {
		out, created, err = s.record(ctx, key, loc, salary)
		if err == nil || !perr.IsRetryable(err) {
			break
		}
		logger.C(ctx).Debug().Err(err).Int("attempt", attempt).Msg("patterns: retrying record")
	}
	if err != nil {
		ev := logger.C(ctx).Warn()
		if errors.Is(err, context.DeadlineExceeded) {
			ev = ev.Dur("timeout", s.cfg.Timeout)
		}
		ev.Err(err).Str("component", "patterns").Str("title_pattern", key.TitlePattern).
			Msg("patterns: record skipped")
		return domain.RecordResult{Recorded: false}, nil
	}
	return domain.RecordResult{Recorded: true, Created: created, Pattern: &out}, nil
}

// record runs one insert or lock, increment, write cycle in a tx
func (s *Service) record(ctx context.Context, key domain.Key, loc, salary string) (domain.Pattern, bool, error) {
	var (
		out     domain.Pattern
		created bool
	)
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		now := s.cfg.Now().UTC()

		seed := domain.Pattern{
			ID:               uuid.New(),
			EmployerID:       key.EmployerID,
			CompanyName:      key.CompanyName,
			TitlePattern:     key.TitlePattern,
			LocationPattern:  loc,
			SalaryPattern:    salary,
			PostingFrequency: 1,
			FirstSeenAt:      now,
			LastSeenAt:       now,
		}
		ok, err := r.Insert(ctx, seed)
		if err != nil {
			return err
		}
		p, err := r.LockByKey(ctx, key)
		if err != nil {
			return err
		}
		if ok {
			out, created = p, true
			return nil
		}

		p.PostingFrequency++
		p.LastSeenAt = now
		p.LocationPattern = loc
		p.SalaryPattern = salary
		p.SuspiciousScore = suspicion.Score(p.PostingFrequency, p.FirstSeenAt, now, s.cfg.Suspicion)
		p.FlaggedForReview = suspicion.Flagged(p.SuspiciousScore, s.cfg.Suspicion)
		if err := r.Update(ctx, p); err != nil {
			return err
		}
		out = p
		return nil
	})
	return out, created, err
}

// ListSuspicious returns patterns at or above threshold, or flagged, highest score first
func (s *Service) ListSuspicious(ctx context.Context, threshold float64, limit int) ([]domain.Pattern, error) {
	// NaN fails both comparisons so test the range positively
	if !(threshold >= 0 && threshold <= 1) {
		return nil, perr.Validationf("threshold", "threshold must be within [0,1]")
	}
	if limit <= 0 {
		limit = s.cfg.ListLimit
	}
	if limit > s.cfg.ListMax {
		limit = s.cfg.ListMax
	}
	return s.repo.ListSuspicious(ctx, threshold, limit)
}

// ListForEmployer returns every pattern an employer owns
func (s *Service) ListForEmployer(ctx context.Context, employerID string) ([]domain.Pattern, error) {
	if strings.TrimSpace(employerID) == "" {
		return nil, perr.Validationf("employer_id", "employer_id is required")
	}
	return s.repo.ListForEmployer(ctx, strings.TrimSpace(employerID))
}

// Stats summarizes all patterns
func (s *Service) Stats(ctx context.Context) (domain.Stats, error) {
	return s.repo.Stats(ctx)
}
