// Package domain defines the batch re-scan report and runner port
package domain

import (
	"context"
	"time"
)

// Report summarizes one re-scan pass
type Report struct {
	StartedAt time.Time     `json:"started_at"`
	Took      time.Duration `json:"took"`
	// Skipped is true when another worker held the lease
	Skipped   bool `json:"skipped"`
	Employers int  `json:"employers"`
	Postings  int  `json:"postings"`
	// Matched counts postings whose top match reached the auto flag cut
	Matched int `json:"matched"`
	// Raised counts alerts created, existing pairs are not counted
	Raised int `json:"raised"`
	Failed int `json:"failed"`
}

// RunnerPort runs re-scans
type RunnerPort interface {
	RunOnce(ctx context.Context) (Report, error)
}
