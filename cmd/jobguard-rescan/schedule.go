package main

import (
	"strings"
	"time"
)

// scheduleSpec turns the flag or env value into a cron expression
// bare durations become "@every d", anything else is handed to cron as is
func scheduleSpec(flagVal, envVal string) string {
	v := strings.TrimSpace(flagVal)
	if v == "" {
		v = strings.TrimSpace(envVal)
	}
	if v == "" {
		return ""
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return "@every " + d.String()
	}
	return v
}
