package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Reader is the read side of job storage
type Reader interface {
	// Get returns perr NotFound when id is unknown
	Get(ctx context.Context, id uuid.UUID) (Posting, error)
	// FindActiveByEmployer returns active, non deleted postings, newest first
	FindActiveByEmployer(ctx context.Context, employerID string) ([]Posting, error)
	// ListActiveEmployers pages employer ids with active postings in id order
	ListActiveEmployers(ctx context.Context, after string, limit int) ([]string, error)
}

// Writer mutates the duplication fields and status of a posting
type Writer interface {
	FlagDuplicate(ctx context.Context, id, originalID uuid.UUID, score float64) error
	MarkRemoved(ctx context.Context, id uuid.UUID, at time.Time) error
}

// Repo is the full posting surface bound to one queryer
type Repo interface {
	Reader
	Writer
	// Insert stores a posting, job storage owns creation in production
	Insert(ctx context.Context, p Posting) error
}
