package module

import "jobguard/internal/platform/config"

// Options holds configuration settings for the matcher
type Options struct {
	Limit int
}

// FromConfig reads CORE_MATCHER_* settings
func FromConfig(cfg config.Conf) Options {
	mc := cfg.Prefix("CORE_MATCHER_")
	return Options{Limit: mc.MayInt("LIMIT", 10)}
}
