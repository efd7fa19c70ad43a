package module

import (
	"time"

	"jobguard/internal/platform/config"
)

// Options holds configuration settings for screening
type Options struct {
	EnrichTimeout time.Duration
	EventTimeout  time.Duration
	// EnsureEvents creates the clickhouse event table at start
	EnsureEvents bool
}

// FromConfig reads CORE_SCREENING_* settings
func FromConfig(cfg config.Conf) Options {
	sc := cfg.Prefix("CORE_SCREENING_")
	return Options{
		EnrichTimeout: sc.MayDuration("ENRICH_TIMEOUT", 3*time.Second),
		EventTimeout:  sc.MayDuration("EVENT_TIMEOUT", time.Second),
		EnsureEvents:  sc.MayBool("ENSURE_EVENTS", true),
	}
}
