// Package domain defines duplicate candidates and ranked matches
package domain

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"jobguard/internal/core/similarity"
	perr "jobguard/internal/platform/errors"
	postings "jobguard/internal/services/postings/domain"
)

// Candidate is a posting being checked, persisted or not
type Candidate struct {
	EmployerID  string `json:"employer_id" validate:"notblank,max=200" example:"emp_1"`
	Title       string `json:"title" validate:"notblank,max=500" example:"warehouse associate"`
	CompanyName string `json:"company_name" validate:"notblank,max=300" example:"Acme"`
	Location    string `json:"location,omitempty" validate:"max=300" example:"Stockton, CA"`
}

// Validate reports the first missing identifying field
func (c Candidate) Validate() error {
	switch {
	case strings.TrimSpace(c.EmployerID) == "":
		return perr.Validationf("employer_id", "employer_id is required")
	case strings.TrimSpace(c.Title) == "":
		return perr.Validationf("title", "title is required")
	case strings.TrimSpace(c.CompanyName) == "":
		return perr.Validationf("company_name", "company_name is required")
	}
	return nil
}

// CandidateFrom lifts a stored posting into a Candidate
func CandidateFrom(p postings.Posting) Candidate {
	return Candidate{EmployerID: p.EmployerID, Title: p.Title, CompanyName: p.CompanyName, Location: p.Location}
}

// Match is one existing posting that resembles the candidate
type Match struct {
	Posting postings.Posting  `json:"posting"`
	Score   float64           `json:"score" example:"1"`
	Method  similarity.Method `json:"method" swaggertype:"string" example:"title_hash"`
}

// Top returns the best match, ok false for an empty list
func Top(ms []Match) (Match, bool) {
	if len(ms) == 0 {
		return Match{}, false
	}
	return ms[0], true
}

// ServicePort is the matcher contract consumed by other modules
type ServicePort interface {
	FindDuplicates(ctx context.Context, c Candidate) ([]Match, error)
	FindDuplicatesForExistingJob(ctx context.Context, jobID uuid.UUID) ([]Match, error)
}
