// Package domain defines per employer posting patterns and their suspicion stats
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"

	perr "jobguard/internal/platform/errors"
)

// Key identifies a pattern, at most one row per key
type Key struct {
	EmployerID   string
	CompanyName  string
	TitlePattern string
}

// Pattern is the running cadence record for one key
type Pattern struct {
	ID               uuid.UUID `json:"id" example:"5a0c2b7e-9f43-4de1-8c0a-2f6e1d3b4a55"`
	EmployerID       string    `json:"employer_id" example:"emp_2"`
	CompanyName      string    `json:"company_name" example:"Acme"`
	TitlePattern     string    `json:"title_pattern" example:"warehouse associate"`
	LocationPattern  string    `json:"location_pattern" example:"stockton, ca"`
	SalaryPattern    string    `json:"salary_pattern" example:"$18/hr"`
	PostingFrequency int       `json:"posting_frequency" example:"6"`
	SuspiciousScore  float64   `json:"suspicious_score" example:"0.8"`
	FlaggedForReview bool      `json:"flagged_for_review" example:"false"`
	FirstSeenAt      time.Time `json:"first_seen_at"`
	LastSeenAt       time.Time `json:"last_seen_at"`
}

// Key returns the identity of p
func (p Pattern) Key() Key {
	return Key{EmployerID: p.EmployerID, CompanyName: p.CompanyName, TitlePattern: p.TitlePattern}
}

// RecordInput is one successful posting creation
type RecordInput struct {
	EmployerID  string `json:"employer_id" validate:"notblank,max=200" example:"emp_2"`
	CompanyName string `json:"company_name" validate:"notblank,max=300" example:"Acme"`
	Title       string `json:"title" validate:"notblank,max=500" example:"Warehouse Associate - URGENT"`
	Location    string `json:"location,omitempty" validate:"max=300" example:"Stockton, CA"`
	Salary      string `json:"salary,omitempty" validate:"max=200" example:"$18/hr"`
}

// RecordResult reports what happened, Recorded is false when the store failed
type RecordResult struct {
	Recorded bool     `json:"recorded" example:"true"`
	Created  bool     `json:"created" example:"false"`
	Pattern  *Pattern `json:"pattern,omitempty"`
}

// Stats summarizes all patterns
type Stats struct {
	TotalPatterns   int64   `json:"total_patterns" example:"120"`
	FlaggedPatterns int64   `json:"flagged_patterns" example:"3"`
	AverageScore    float64 `json:"average_suspicious_score" example:"0.12"`
}

// Validate reports the first missing identifying field
func (in RecordInput) Validate() error {
	switch {
	case strings.TrimSpace(in.EmployerID) == "":
		return perr.Validationf("employer_id", "employer_id is required")
	case strings.TrimSpace(in.CompanyName) == "":
		return perr.Validationf("company_name", "company_name is required")
	case strings.TrimSpace(in.Title) == "":
		return perr.Validationf("title", "title is required")
	}
	return nil
}
