package module

import (
	"time"

	"jobguard/internal/platform/config"
)

// Options holds configuration settings for the alerts module
type Options struct {
	ListLimit int
	ListMax   int
	// Channel carries alert events on redis pub/sub
	Channel string
	// LockTimeout bounds the review row lock wait on postgres
	LockTimeout    time.Duration
	PublishTimeout time.Duration
}

// FromConfig reads CORE_ALERTS_* settings
func FromConfig(cfg config.Conf) Options {
	ac := cfg.Prefix("CORE_ALERTS_")
	return Options{
		ListLimit:      ac.MayInt("LIST_LIMIT", 50),
		ListMax:        ac.MayInt("LIST_MAX", 500),
		Channel:        ac.MayString("CHANNEL", "jobguard:alerts"),
		LockTimeout:    ac.MayDuration("LOCK_TIMEOUT", 2*time.Second),
		PublishTimeout: ac.MayDuration("PUBLISH_TIMEOUT", 500*time.Millisecond),
	}
}
