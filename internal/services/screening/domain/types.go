// Package domain defines pre-publish checks and the posting-created hook outcome
package domain

import (
	"context"
	"time"

	"github.com/google/uuid"

	"jobguard/internal/core/risk"
	alerts "jobguard/internal/services/alerts/domain"
	dupdomain "jobguard/internal/services/duplicates/domain"
	patterns "jobguard/internal/services/patterns/domain"
)

// CheckInput names either a stored posting or an unsaved candidate
type CheckInput struct {
	JobID     uuid.UUID            `json:"job_id,omitempty" swaggertype:"string" format:"uuid"`
	Candidate *dupdomain.Candidate `json:"candidate,omitempty"`
	// Persist raises an alert for a stored posting when the top match is strong enough
	Persist bool `json:"persist,omitempty"`
}

// CheckResult is the screening verdict for one posting
type CheckResult struct {
	Duplicates      []dupdomain.Match  `json:"duplicates"`
	PostingPatterns []patterns.Pattern `json:"posting_patterns"`
	RiskAssessment  risk.Assessment    `json:"risk_assessment"`
	Recommendations []string           `json:"recommendations"`
	Alert           *alerts.Alert      `json:"alert,omitempty"`
}

// PostingCreatedInput identifies a posting job storage just created
type PostingCreatedInput struct {
	JobID uuid.UUID `json:"job_id"`
}

// PostingCreatedOutcome reports what enrichment managed to do
// a step that failed is logged and left at its zero value
type PostingCreatedOutcome struct {
	JobID           uuid.UUID     `json:"job_id"`
	PatternRecorded bool          `json:"pattern_recorded"`
	DuplicatesFound int           `json:"duplicates_found"`
	TopScore        float64       `json:"top_score"`
	Alert           *alerts.Alert `json:"alert,omitempty"`
	// Degraded is true when any step was skipped on error or timeout
	Degraded bool `json:"degraded"`
}

// Statistics summarizes alerts and patterns for dashboards
type Statistics struct {
	Alerts   alerts.Stats   `json:"alerts"`
	Patterns patterns.Stats `json:"patterns"`
	// ChecksLastDay comes from the check event log, nil without clickhouse
	ChecksLastDay *int64 `json:"checks_last_day,omitempty"`
}

// CheckEvent is one row of the duplicate check event log
type CheckEvent struct {
	ID          uuid.UUID
	At          time.Time
	Source      string
	JobID       uuid.UUID
	EmployerID  string
	Matches     int
	TopScore    float64
	TopMethod   string
	RiskScore   float64
	RiskLevel   risk.Level
	AlertRaised bool
}

// Check event sources
const (
	SourceCheck   = "check"
	SourceCreated = "posting_created"
)

// EventSink stores check events, writes are best effort
type EventSink interface {
	Record(ctx context.Context, ev CheckEvent) error
	CountSince(ctx context.Context, since time.Time) (int64, error)
}

// ServicePort is the screening contract served over http
type ServicePort interface {
	Check(ctx context.Context, in CheckInput) (CheckResult, error)
	OnPostingCreated(ctx context.Context, in PostingCreatedInput) (PostingCreatedOutcome, error)
	Statistics(ctx context.Context) (Statistics, error)
}
