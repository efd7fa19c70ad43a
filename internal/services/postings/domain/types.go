// Package domain defines job postings as the detection engine sees them
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Status is the posting lifecycle owned by job storage
type Status string

const (
	StatusActive  Status = "active"
	StatusRemoved Status = "removed"
	StatusExpired Status = "expired"
	StatusDraft   Status = "draft"
)

// Posting is a stored job posting
// a flagged posting always carries DuplicateOfJobID and a DuplicateScore in [0,1]
type Posting struct {
	ID          uuid.UUID `json:"id" example:"0b6e4f1c-3d2a-4c59-9a51-6f0f2b1c7e10"`
	EmployerID  string    `json:"employer_id" example:"emp_1"`
	CompanyName string    `json:"company_name" example:"Acme"`
	Title       string    `json:"title" example:"Warehouse Associate"`
	Location    string    `json:"location" example:"Stockton, CA"`
	Description string    `json:"description,omitempty"`
	Salary      string    `json:"salary,omitempty" example:"$18/hr"`
	Status      Status    `json:"status" example:"active"`
	CreatedAt   time.Time `json:"created_at"`

	RemovedAt *time.Time `json:"removed_at,omitempty"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`

	FlaggedAsDuplicate bool       `json:"flagged_as_duplicate"`
	DuplicateOfJobID   *uuid.UUID `json:"duplicate_of_job_id,omitempty"`
	DuplicateScore     *float64   `json:"duplicate_score,omitempty"`
}

// Active reports whether the posting counts as a live comparison target
func (p Posting) Active() bool {
	return p.Status == StatusActive && p.DeletedAt == nil
}
