// Package domain defines duplicate alerts, their review lifecycle and audit trail
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"jobguard/internal/core/similarity"
	perr "jobguard/internal/platform/errors"
	dupdomain "jobguard/internal/services/duplicates/domain"
)

// Status is an alert review status
type Status string

const (
	StatusPending       Status = "pending"
	StatusConfirmed     Status = "confirmed"
	StatusFalsePositive Status = "false_positive"
	StatusIgnored       Status = "ignored"
)

// Action is what a reviewer did about a confirmed duplicate
type Action string

const (
	ActionRemoved Action = "removed"
	ActionFlagged Action = "flagged"
	ActionNone    Action = "none"
)

// transitions lists the legal targets per status, terminal statuses have none
var transitions = map[Status][]Status{
	StatusPending: {StatusConfirmed, StatusFalsePositive, StatusIgnored},
}

// CanTransition reports whether from may move to to
func CanTransition(from, to Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Terminal reports whether s accepts no further review
func (s Status) Terminal() bool { return len(transitions[s]) == 0 }

// Decision reports whether s is a status a reviewer may pick
func (s Status) Decision() bool {
	switch s {
	case StatusConfirmed, StatusFalsePositive, StatusIgnored:
		return true
	}
	return false
}

// Valid reports whether a is a known action
func (a Action) Valid() bool {
	switch a {
	case ActionRemoved, ActionFlagged, ActionNone:
		return true
	}
	return false
}

// Alert is one suspected duplicate pair awaiting or past review
type Alert struct {
	ID              uuid.UUID         `json:"id"`
	OriginalJobID   uuid.UUID         `json:"original_job_id"`
	DuplicateJobID  uuid.UUID         `json:"duplicate_job_id"`
	SimilarityScore float64           `json:"similarity_score" example:"1"`
	DetectionMethod similarity.Method `json:"detection_method" swaggertype:"string" example:"title_hash"`
	DetectedAt      time.Time         `json:"detected_at"`
	ReviewStatus    Status            `json:"review_status" swaggertype:"string" example:"pending"`
	ReviewedAt      *time.Time        `json:"reviewed_at,omitempty"`
	ReviewedBy      string            `json:"reviewed_by,omitempty"`
	ActionTaken     Action            `json:"action_taken,omitempty" swaggertype:"string"`
	Notes           string            `json:"notes,omitempty"`
}

// AuditEntry records one review and the posting change it caused
type AuditEntry struct {
	ID              uuid.UUID `json:"id"`
	AlertID         uuid.UUID `json:"alert_id"`
	Action          string    `json:"action"`
	Actor           string    `json:"actor"`
	FromStatus      Status    `json:"from_status"`
	ToStatus        Status    `json:"to_status"`
	ActionTaken     Action    `json:"action_taken"`
	PostingMutation Action    `json:"posting_mutation"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// AuditReviewed is the only audit action today
const AuditReviewed = "reviewed"

// RaiseInput carries a ranked match list for a stored posting
type RaiseInput struct {
	DuplicateJobID uuid.UUID
	Matches        []dupdomain.Match
}

// RaiseResult reports whether an alert exists for the top match
type RaiseResult struct {
	// Raised is false when the top match is below the auto flag cut
	Raised bool `json:"raised"`
	// Created is false when the pair was already alerted
	Created bool   `json:"created"`
	Alert   *Alert `json:"alert,omitempty"`
}

// ReviewInput is a reviewer's decision on an alert
type ReviewInput struct {
	AlertID     uuid.UUID `json:"-"`
	Decision    Status    `json:"decision" validate:"required,oneof=confirmed false_positive ignored" swaggertype:"string" example:"confirmed"`
	ReviewerID  string    `json:"reviewer_id" validate:"notblank,max=200" example:"moderator_7"`
	ActionTaken Action    `json:"action_taken" validate:"omitempty,oneof=removed flagged none" swaggertype:"string" example:"removed"`
	Notes       string    `json:"notes,omitempty" validate:"max=2000"`
}

// Validate checks the decision and action and defaults an empty action to none
func (in *ReviewInput) Validate() error {
	if in.AlertID == uuid.Nil {
		return perr.Validationf("alert_id", "alert_id is required")
	}
	if !in.Decision.Decision() {
		return perr.Validationf("decision", "decision %q must be one of confirmed, false_positive or ignored", in.Decision)
	}
	if in.ActionTaken == "" {
		in.ActionTaken = ActionNone
	}
	if !in.ActionTaken.Valid() {
		return perr.Validationf("action_taken", "action_taken %q must be one of removed, flagged or none", in.ActionTaken)
	}
	if in.Decision != StatusConfirmed && in.ActionTaken != ActionNone {
		return perr.Validationf("action_taken", "action_taken %q needs decision confirmed", in.ActionTaken)
	}
	in.ReviewerID = strings.TrimSpace(in.ReviewerID)
	if in.ReviewerID == "" {
		return perr.Validationf("reviewer_id", "reviewer_id is required")
	}
	return nil
}

// Stats counts alerts by review status and detection method
type Stats struct {
	Total    int64                       `json:"total"`
	ByStatus map[Status]int64            `json:"by_status"`
	ByMethod map[similarity.Method]int64 `json:"by_method"`
}

// Event types published after commit
const (
	EventRaised   = "EVENT_DUPLICATE_ALERT_RAISED"
	EventReviewed = "EVENT_DUPLICATE_ALERT_REVIEWED"
)

// Event is the pub/sub payload for alert changes
type Event struct {
	Type  string    `json:"type"`
	Alert Alert     `json:"alert"`
	At    time.Time `json:"at"`
}
