package module

import (
	"time"

	"jobguard/internal/platform/config"
)

// Options holds configuration settings for the patterns module
type Options struct {
	Timeout   time.Duration
	Attempts  int
	ListLimit int
	ListMax   int
	// Threshold is the default cut for the suspicious listing
	Threshold float64
}

// FromConfig reads CORE_PATTERNS_* settings
func FromConfig(cfg config.Conf) Options {
	pc := cfg.Prefix("CORE_PATTERNS_")
	return Options{
		Timeout:   pc.MayDuration("TIMEOUT", 2*time.Second),
		Attempts:  pc.MayInt("ATTEMPTS", 3),
		ListLimit: pc.MayInt("LIST_LIMIT", 50),
		ListMax:   pc.MayInt("LIST_MAX", 500),
		Threshold: pc.MayFloat64("SUSPICIOUS_THRESHOLD", 0.7),
	}
}
