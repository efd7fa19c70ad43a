// Package service fronts matching, pattern tracking, risk and alerts for one posting
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"jobguard/internal/core/risk"
	"jobguard/internal/core/thresholds"
	perr "jobguard/internal/platform/errors"
	"jobguard/internal/platform/logger"
	alerts "jobguard/internal/services/alerts/domain"
	dupdomain "jobguard/internal/services/duplicates/domain"
	patterns "jobguard/internal/services/patterns/domain"
	postings "jobguard/internal/services/postings/domain"
	"jobguard/internal/services/screening/domain"
	"jobguard/internal/services/screening/events"
)

// Config for screening
type Config struct {
	// EnrichTimeout bounds the whole posting-created hook
	EnrichTimeout time.Duration
	// EventTimeout bounds one event log write
	EventTimeout time.Duration
	Risk         thresholds.Risk
	Now          func() time.Time
}

// Deps are the ports screening composes
type Deps struct {
	Postings postings.Reader
	Matcher  dupdomain.ServicePort
	Patterns patterns.ServicePort
	Alerts   alerts.ServicePort
	// Events may be nil
	Events domain.EventSink
}

// Service implements domain.ServicePort
type Service struct {
	d   Deps
	cfg Config
}

var _ domain.ServicePort = (*Service)(nil)

// New constructs the screening facade
func New(d Deps, cfg Config) *Service {
	if d.Postings == nil || d.Matcher == nil || d.Patterns == nil || d.Alerts == nil {
		panic("screening.Service requires postings, matcher, patterns and alerts ports")
	}
	if d.Events == nil {
		d.Events = events.Nop{}
	}
	if cfg.EnrichTimeout <= 0 {
		cfg.EnrichTimeout = 3 * time.Second
	}
	if cfg.EventTimeout <= 0 {
		cfg.EventTimeout = time.Second
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Service{d: d, cfg: cfg}
}

// Check scores a stored posting or a candidate without side effects unless Persist is set
func (s *Service) Check(ctx context.Context, in domain.CheckInput) (domain.CheckResult, error) {
	switch {
	case in.JobID == uuid.Nil && in.Candidate == nil:
		return domain.CheckResult{}, perr.Validationf("job_id", "job_id or candidate is required")
	case in.JobID != uuid.Nil && in.Candidate != nil:
		return domain.CheckResult{}, perr.Validationf("candidate", "send job_id or candidate, not both")
	case in.Persist && in.JobID == uuid.Nil:
		return domain.CheckResult{}, perr.Validationf("persist", "persist needs a stored job_id")
	}

	var (
		employerID string
		matches    []dupdomain.Match
		err        error
	)
	if in.JobID != uuid.Nil {
		p, gerr := s.d.Postings.Get(ctx, in.JobID)
		if gerr != nil {
			return domain.CheckResult{}, gerr
		}
		employerID = p.EmployerID
		matches, err = s.d.Matcher.FindDuplicatesForExistingJob(ctx, in.JobID)
	} else {
		employerID = in.Candidate.EmployerID
		matches, err = s.d.Matcher.FindDuplicates(ctx, *in.Candidate)
	}
	if err != nil {
		return domain.CheckResult{}, err
	}
	ctx = logger.WithEmployer(ctx, employerID)

	pats, err := s.d.Patterns.ListForEmployer(ctx, employerID)
	if err != nil {
		return domain.CheckResult{}, err
	}

	rm, rp := riskInputs(matches, pats)
	a := risk.Assess(rm, rp, s.cfg.Risk)
	out := domain.CheckResult{
		Duplicates:      matches,
		PostingPatterns: pats,
		RiskAssessment:  a,
		Recommendations: risk.Recommend(a, rm, s.cfg.Risk),
	}

	if in.Persist {
		res, err := s.d.Alerts.Raise(ctx, alerts.RaiseInput{DuplicateJobID: in.JobID, Matches: matches})
		if err != nil {
			return domain.CheckResult{}, err
		}
		out.Alert = res.Alert
	}

	s.record(ctx, domain.SourceCheck, in.JobID, employerID, matches, a, out.Alert != nil)
	return out, nil
}

// OnPostingCreated enriches a new posting and never fails the caller on store trouble
func (s *Service) OnPostingCreated(ctx context.Context, in domain.PostingCreatedInput) (domain.PostingCreatedOutcome, error) {
	if in.JobID == uuid.Nil {
		return domain.PostingCreatedOutcome{}, perr.Validationf("job_id", "job_id is required")
	}
	out := domain.PostingCreatedOutcome{JobID: in.JobID}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.EnrichTimeout)
	defer cancel()

	skip := func(step string, err error) {
		out.Degraded = true
		ev := logger.C(ctx).Warn().Err(err).Str("job_id", in.JobID.String()).Str("step", step)
		if errors.Is(err, context.DeadlineExceeded) {
			ev = ev.Dur("timeout", s.cfg.EnrichTimeout)
		}
		ev.Msg("screening: enrichment step skipped")
	}

	p, err := s.d.Postings.Get(ctx, in.JobID)
	if err != nil {
		skip("load", err)
		return out, nil
	}
	ctx = logger.WithEmployer(ctx, p.EmployerID)

	rec, err := s.d.Patterns.RecordPosting(ctx, patterns.RecordInput{
		EmployerID:  p.EmployerID,
		CompanyName: p.CompanyName,
		Title:       p.Title,
		Location:    p.Location,
		Salary:      p.Salary,
	})
	switch {
	case err != nil:
		skip("pattern", err)
	case !rec.Recorded:
		out.Degraded = true
	default:
		out.PatternRecorded = true
	}

	matches, err := s.d.Matcher.FindDuplicatesForExistingJob(ctx, in.JobID)
	if err != nil {
		skip("match", err)
		return out, nil
	}
	out.DuplicatesFound = len(matches)
	if top, ok := dupdomain.Top(matches); ok {
		out.TopScore = top.Score
	}

	res, err := s.d.Alerts.Raise(ctx, alerts.RaiseInput{DuplicateJobID: in.JobID, Matches: matches})
	if err != nil {
		skip("alert", err)
	} else {
		out.Alert = res.Alert
	}

	var seen []patterns.Pattern
	if rec.Pattern != nil {
		seen = []patterns.Pattern{*rec.Pattern}
	}
	rm, rp := riskInputs(matches, seen)
	s.record(ctx, domain.SourceCreated, in.JobID, p.EmployerID, matches, risk.Assess(rm, rp, s.cfg.Risk), out.Alert != nil)
	return out, nil
}

// Statistics gathers alert and pattern summaries
func (s *Service) Statistics(ctx context.Context) (domain.Statistics, error) {
	as, err := s.d.Alerts.Stats(ctx)
	if err != nil {
		return domain.Statistics{}, err
	}
	ps, err := s.d.Patterns.Stats(ctx)
	if err != nil {
		return domain.Statistics{}, err
	}
	out := domain.Statistics{Alerts: as, Patterns: ps}

	n, err := s.d.Events.CountSince(ctx, s.cfg.Now().Add(-24*time.Hour))
	switch {
	case err == nil:
		out.ChecksLastDay = &n
	case !errors.Is(err, events.ErrDisabled):
		logger.C(ctx).Warn().Err(err).Msg("screening: check count unavailable")
	}
	return out, nil
}

// record writes the check event on a detached context so a cancelled request still logs it
func (s *Service) record(ctx context.Context, source string, jobID uuid.UUID, employerID string, matches []dupdomain.Match, a risk.Assessment, raised bool) {
	ev := domain.CheckEvent{
		ID:          uuid.New(),
		At:          s.cfg.Now().UTC(),
		Source:      source,
		JobID:       jobID,
		EmployerID:  employerID,
		Matches:     len(matches),
		RiskScore:   a.Score,
		RiskLevel:   a.Level,
		AlertRaised: raised,
	}
	if top, ok := dupdomain.Top(matches); ok {
		ev.TopScore, ev.TopMethod = top.Score, string(top.Method)
	}
	wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.EventTimeout)
	defer cancel()
	if err := s.d.Events.Record(wctx, ev); err != nil {
		logger.C(ctx).Warn().Err(err).Str("source", source).Msg("screening: check event dropped")
	}
}

func riskInputs(ms []dupdomain.Match, ps []patterns.Pattern) ([]risk.Match, []risk.Pattern) {
	rm := make([]risk.Match, 0, len(ms))
	for _, m := range ms {
		rm = append(rm, risk.Match{Score: m.Score})
	}
	rp := make([]risk.Pattern, 0, len(ps))
	for _, p := range ps {
		rp = append(rp, risk.Pattern{
			SuspiciousScore: p.SuspiciousScore,
			Frequency:       p.PostingFrequency,
			Flagged:         p.FlaggedForReview,
		})
	}
	return rm, rp
}
