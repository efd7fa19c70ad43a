package domain

import "context"

// Repo is the persistence surface for patterns
type Repo interface {
	// Insert adds p unless its key exists and reports whether it did
	Insert(ctx context.Context, p Pattern) (bool, error)
	// LockByKey reads the row for k and holds a row lock until the tx ends
	LockByKey(ctx context.Context, k Key) (Pattern, error)
	// Update writes the counters of an existing row
	Update(ctx context.Context, p Pattern) error

	ListSuspicious(ctx context.Context, threshold float64, limit int) ([]Pattern, error)
	ListForEmployer(ctx context.Context, employerID string) ([]Pattern, error)
	Stats(ctx context.Context) (Stats, error)
}

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	RecordPosting(ctx context.Context, in RecordInput) (RecordResult, error)
	ListSuspicious(ctx context.Context, threshold float64, limit int) ([]Pattern, error)
	ListForEmployer(ctx context.Context, employerID string) ([]Pattern, error)
	Stats(ctx context.Context) (Stats, error)
}
