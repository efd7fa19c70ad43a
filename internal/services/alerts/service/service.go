// Package service raises duplicate alerts and applies reviewer decisions
// every state change commits with its posting mutation and audit row or not at all
package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobguard/internal/modkit/repokit"
	perr "jobguard/internal/platform/errors"
	"jobguard/internal/platform/logger"
	"jobguard/internal/services/alerts/domain"
	dupdomain "jobguard/internal/services/duplicates/domain"
	postings "jobguard/internal/services/postings/domain"
)

// Config for the alert manager
type Config struct {
	// AutoFlag is the lowest top score that raises an alert
	AutoFlag float64
	// ListLimit and ListMax bound ListPending
	ListLimit int
	ListMax   int
	// Channel is the pub/sub channel for alert events
	Channel string
	// PublishTimeout bounds one best effort publish
	PublishTimeout time.Duration

	Now func() time.Time
}

// Service implements domain.ServicePort
type Service struct {
	db       repokit.TxRunner
	binder   repokit.Binder[domain.Repo]
	postings repokit.Binder[postings.Repo]
	repo     domain.Repo
	pub      domain.Publisher
	cfg      Config
}

var _ domain.ServicePort = (*Service)(nil)

// New constructs the alert manager, pub may be nil
func New(db repokit.TxRunner, binder repokit.Binder[domain.Repo], posts repokit.Binder[postings.Repo], pub domain.Publisher, cfg Config) *Service {
	if db == nil {
		panic("alerts.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("alerts.Service requires a non nil Repo binder")
	}
	if posts == nil {
		panic("alerts.Service requires a non nil postings binder")
	}
	if cfg.ListLimit <= 0 {
		cfg.ListLimit = 50
	}
	if cfg.ListMax < cfg.ListLimit {
		cfg.ListMax = 500
	}
	if cfg.Channel == "" {
		cfg.Channel = "jobguard:alerts"
	}
	if cfg.PublishTimeout <= 0 {
		cfg.PublishTimeout = 500 * time.Millisecond
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Service{
		db:       db,
		binder:   binder,
		postings: posts,
		repo:     binder.Bind(db),
		pub:      pub,
		cfg:      cfg,
	}
}

// Raise records an alert for the top match when it reaches the auto flag cut
// and flags the duplicate posting in the same transaction
func (s *Service) Raise(ctx context.Context, in domain.RaiseInput) (domain.RaiseResult, error) {
	if in.DuplicateJobID == uuid.Nil {
		return domain.RaiseResult{}, perr.Validationf("duplicate_job_id", "duplicate_job_id is required")
	}
	top, ok := dupdomain.Top(in.Matches)
	if !ok || top.Score < s.cfg.AutoFlag {
		return domain.RaiseResult{}, nil
	}
	if top.Posting.ID == in.DuplicateJobID {
		return domain.RaiseResult{}, perr.Validationf("duplicate_job_id", "a posting cannot duplicate itself")
	}

	var (
		out     domain.Alert
		created bool
	)
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		a := domain.Alert{
			ID:              uuid.New(),
			OriginalJobID:   top.Posting.ID,
			DuplicateJobID:  in.DuplicateJobID,
			SimilarityScore: top.Score,
			DetectionMethod: top.Method,
			DetectedAt:      s.cfg.Now().UTC(),
			ReviewStatus:    domain.StatusPending,
		}
		ok, err := r.Insert(ctx, a)
		if err != nil {
			return err
		}
		if !ok {
			out, err = r.GetByPair(ctx, a.OriginalJobID, a.DuplicateJobID)
			return err
		}
		if err := s.postings.Bind(q).FlagDuplicate(ctx, a.DuplicateJobID, a.OriginalJobID, a.SimilarityScore); err != nil {
			return err
		}
		out, created = a, true
		return nil
	})
	if err != nil {
		return domain.RaiseResult{}, err
	}
	if created {
		logger.C(ctx).Info().
			Str("alert_id", out.ID.String()).
			Str("method", string(out.DetectionMethod)).
			Float64("score", out.SimilarityScore).
			Msg("alerts: duplicate raised")
		s.publish(ctx, domain.EventRaised, out)
	}
	return domain.RaiseResult{Raised: true, Created: created, Alert: &out}, nil
}

// Review applies a decision to a pending alert
func (s *Service) Review(ctx context.Context, in domain.ReviewInput) (domain.Alert, error) {
	if err := in.Validate(); err != nil {
		return domain.Alert{}, err
	}

	var out domain.Alert
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		a, err := r.LockByID(ctx, in.AlertID)
		if err != nil {
			return err
		}
		if !domain.CanTransition(a.ReviewStatus, in.Decision) {
			return perr.InvalidTransitionf("alert %s is %s and cannot become %s", a.ID, a.ReviewStatus, in.Decision)
		}

		now := s.cfg.Now().UTC()
		mutation := domain.ActionNone
		if in.Decision == domain.StatusConfirmed {
			posts := s.postings.Bind(q)
			switch in.ActionTaken {
			case domain.ActionRemoved:
				err = posts.MarkRemoved(ctx, a.DuplicateJobID, now)
			case domain.ActionFlagged:
				err = posts.FlagDuplicate(ctx, a.DuplicateJobID, a.OriginalJobID, a.SimilarityScore)
			}
			if err != nil {
				return err
			}
			mutation = in.ActionTaken
		}

		from := a.ReviewStatus
		a.ReviewStatus = in.Decision
		a.ReviewedAt = &now
		a.ReviewedBy = in.ReviewerID
		a.ActionTaken = in.ActionTaken
		a.Notes = strings.TrimSpace(in.Notes)
		if err := r.UpdateReview(ctx, a); err != nil {
			return err
		}
		if err := r.InsertAudit(ctx, domain.AuditEntry{
			ID:              uuid.New(),
			AlertID:         a.ID,
			Action:          domain.AuditReviewed,
			Actor:           in.ReviewerID,
			FromStatus:      from,
			ToStatus:        a.ReviewStatus,
			ActionTaken:     in.ActionTaken,
			PostingMutation: mutation,
			Notes:           a.Notes,
			CreatedAt:       now,
		}); err != nil {
			return err
		}
		out = a
		return nil
	})
	if err != nil {
		return domain.Alert{}, err
	}

	logger.C(ctx).Info().
		Str("alert_id", out.ID.String()).
		Str("decision", string(out.ReviewStatus)).
		Str("action", string(out.ActionTaken)).
		Str("reviewer", out.ReviewedBy).
		Msg("alerts: reviewed")
	s.publish(ctx, domain.EventReviewed, out)
	return out, nil
}

// ListPending returns pending alerts oldest first
func (s *Service) ListPending(ctx context.Context, limit int) ([]domain.Alert, error) {
	if limit <= 0 {
		limit = s.cfg.ListLimit
	}
	if limit > s.cfg.ListMax {
		limit = s.cfg.ListMax
	}
	return s.repo.ListPending(ctx, limit)
}

// ListForEmployer returns alerts touching any of the employer's postings
func (s *Service) ListForEmployer(ctx context.Context, employerID string) ([]domain.Alert, error) {
	employerID = strings.TrimSpace(employerID)
	if employerID == "" {
		return nil, perr.Validationf("employer_id", "employer_id is required")
	}
	return s.repo.ListForEmployer(ctx, employerID)
}

// Stats counts alerts by status and method
func (s *Service) Stats(ctx context.Context) (domain.Stats, error) {
	return s.repo.Stats(ctx)
}

// publish is best effort, the alert is already committed
func (s *Service) publish(ctx context.Context, typ string, a domain.Alert) {
	if s.pub == nil {
		return
	}
	payload, err := json.Marshal(domain.Event{Type: typ, Alert: a, At: s.cfg.Now().UTC()})
	if err != nil {
		logger.C(ctx).Warn().Err(err).Str("event", typ).Msg("alerts: encode event")
		return
	}
	pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.PublishTimeout)
	defer cancel()
	if err := s.pub.Publish(pctx, s.cfg.Channel, payload); err != nil {
		logger.C(ctx).Warn().Err(err).Str("event", typ).Str("channel", s.cfg.Channel).Msg("alerts: publish failed")
	}
}
