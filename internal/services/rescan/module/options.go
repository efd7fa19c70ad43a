package module

import (
	"time"

	"jobguard/internal/platform/config"
)

// Options for the rescan module
type Options struct {
	PageSize int
	LeaseKey string
	LeaseTTL time.Duration
	// Schedule is a cron expression or @every duration, empty runs once
	Schedule string
}

// FromConfig reads CORE_RESCAN_* settings
func FromConfig(cfg config.Conf) Options {
	rc := cfg.Prefix("CORE_RESCAN_")
	return Options{
		PageSize: rc.MayInt("PAGE_SIZE", 200),
		LeaseKey: rc.MayString("LEASE_KEY", "jobguard:rescan:lease"),
		LeaseTTL: rc.MayDuration("LEASE_TTL", 30*time.Minute),
		Schedule: rc.MayString("SCHEDULE", ""),
	}
}
