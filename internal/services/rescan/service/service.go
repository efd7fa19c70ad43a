// Package service re-scans every employer's active postings for duplicates
package service

import (
	"context"
	"errors"
	"time"

	"jobguard/internal/platform/logger"
	alerts "jobguard/internal/services/alerts/domain"
	dupdomain "jobguard/internal/services/duplicates/domain"
	postings "jobguard/internal/services/postings/domain"
	"jobguard/internal/services/rescan/domain"
	"jobguard/internal/services/rescan/guardrails"
)

// Config for the runner
type Config struct {
	// PageSize is how many employers one page lists
	PageSize int
	// AutoFlag skips the alert round trip for weaker top matches
	AutoFlag float64
	Now      func() time.Time
}

// Runner implements domain.RunnerPort
type Runner struct {
	posts   postings.Reader
	matcher dupdomain.ServicePort
	alerts  alerts.ServicePort
	lease   *guardrails.Lease
	cfg     Config
}

var _ domain.RunnerPort = (*Runner)(nil)

// New constructs a runner, a nil lease runs without coordination
func New(posts postings.Reader, matcher dupdomain.ServicePort, al alerts.ServicePort, lease *guardrails.Lease, cfg Config) *Runner {
	if posts == nil || matcher == nil || al == nil {
		panic("rescan.Runner requires postings, matcher and alerts ports")
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 200
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Runner{posts: posts, matcher: matcher, alerts: al, lease: lease, cfg: cfg}
}

// RunOnce scans every employer with active postings
// a held lease is a clean skip
func (r *Runner) RunOnce(ctx context.Context) (domain.Report, error) {
	rep := domain.Report{StartedAt: r.cfg.Now().UTC()}
	l := logger.C(ctx).With().Str("component", "rescan").Logger()

	run := func(ctx context.Context) error { return r.scan(ctx, &rep) }
	var err error
	if r.lease != nil {
		err = r.lease.Do(ctx, run)
	} else {
		err = run(ctx)
	}
	rep.Took = r.cfg.Now().Sub(rep.StartedAt)

	if errors.Is(err, guardrails.ErrLeaseHeld) {
		rep.Skipped = true
		l.Info().Msg("rescan: lease held elsewhere, skipping")
		return rep, nil
	}
	if err != nil {
		l.Error().Err(err).Int("employers", rep.Employers).Msg("rescan: aborted")
		return rep, err
	}
	l.Info().
		Int("employers", rep.Employers).
		Int("postings", rep.Postings).
		Int("matched", rep.Matched).
		Int("raised", rep.Raised).
		Int("failed", rep.Failed).
		Dur("took", rep.Took).
		Msg("rescan: done")
	return rep, nil
}

func (r *Runner) scan(ctx context.Context, rep *domain.Report) error {
	after := ""
	for {
		page, err := r.posts.ListActiveEmployers(ctx, after, r.cfg.PageSize)
		if err != nil {
			return err
		}
		for _, emp := range page {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := r.employer(ctx, emp, rep); err != nil {
				return err
			}
			rep.Employers++
		}
		if len(page) < r.cfg.PageSize {
			return nil
		}
		after = page[len(page)-1]
	}
}

// employer scans one employer, posting level failures are counted and skipped
func (r *Runner) employer(ctx context.Context, employerID string, rep *domain.Report) error {
	ctx = logger.WithEmployer(ctx, employerID)
	batch, err := r.posts.FindActiveByEmployer(ctx, employerID)
	if err != nil {
		return err
	}
	for _, p := range batch {
		rep.Postings++
		if p.FlaggedAsDuplicate {
			continue
		}
		matches, err := r.matcher.FindDuplicatesForExistingJob(ctx, p.ID)
		if err != nil {
			rep.Failed++
			logger.C(ctx).Warn().Err(err).Str("job_id", p.ID.String()).Msg("rescan: match failed")
			continue
		}
		// only an older posting can be the original of p
		older := olderThan(matches, p)
		top, ok := dupdomain.Top(older)
		if !ok || top.Score < r.cfg.AutoFlag {
			continue
		}
		rep.Matched++
		res, err := r.alerts.Raise(ctx, alerts.RaiseInput{DuplicateJobID: p.ID, Matches: older})
		if err != nil {
			rep.Failed++
			logger.C(ctx).Warn().Err(err).Str("job_id", p.ID.String()).Msg("rescan: raise failed")
			continue
		}
		if res.Created {
			rep.Raised++
		}
	}
	return nil
}

// olderThan keeps the matches created before p, order preserved
func olderThan(matches []dupdomain.Match, p postings.Posting) []dupdomain.Match {
	out := make([]dupdomain.Match, 0, len(matches))
	for _, m := range matches {
		if newer(p, m.Posting) {
			out = append(out, m)
		}
	}
	return out
}

func newer(a, b postings.Posting) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID.String() > b.ID.String()
}
