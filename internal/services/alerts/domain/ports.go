package domain

import (
	"context"

	"github.com/google/uuid"
)

// Repo is the alert store, bound per transaction
type Repo interface {
	// Insert adds a pending alert and reports false when the pair already exists
	Insert(ctx context.Context, a Alert) (bool, error)
	GetByPair(ctx context.Context, originalID, duplicateID uuid.UUID) (Alert, error)
	// LockByID loads an alert and holds its row for the rest of the tx
	LockByID(ctx context.Context, id uuid.UUID) (Alert, error)
	UpdateReview(ctx context.Context, a Alert) error
	InsertAudit(ctx context.Context, e AuditEntry) error

	ListPending(ctx context.Context, limit int) ([]Alert, error)
	ListForEmployer(ctx context.Context, employerID string) ([]Alert, error)
	Stats(ctx context.Context) (Stats, error)
}

// Publisher fans alert events out, redis in production
type Publisher interface {
	Publish(ctx context.Context, channel string, payload []byte) error
}

// ServicePort is the alert manager contract
type ServicePort interface {
	Raise(ctx context.Context, in RaiseInput) (RaiseResult, error)
	Review(ctx context.Context, in ReviewInput) (Alert, error)
	ListPending(ctx context.Context, limit int) ([]Alert, error)
	ListForEmployer(ctx context.Context, employerID string) ([]Alert, error)
	Stats(ctx context.Context) (Stats, error)
}
