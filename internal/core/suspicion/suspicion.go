// Package suspicion scores how anomalous an employer's posting cadence is
package suspicion

import (
	"math"
	"time"

	"jobguard/internal/core/thresholds"
)

const day = 24 * time.Hour

// DaysSince is whole days between first and now, never below one
func DaysSince(first, now time.Time) int {
	d := int(now.Sub(first) / day)
	if d < 1 {
		return 1
	}
	return d
}

// Score is the additive cadence score for a pattern seen freq times since first
func Score(freq int, first, now time.Time, cfg thresholds.Suspicion) float64 {
	if freq <= 0 {
		return 0
	}
	days := DaysSince(first, now)
	rate := float64(freq) / float64(days)

	sum := 0.0
	switch {
	case rate > cfg.VeryHighRate:
		sum += cfg.VeryHighWeight
	case rate > cfg.HighRate:
		sum += cfg.HighWeight
	case rate > cfg.ElevatedRate:
		sum += cfg.ElevatedWeight
	case freq > cfg.VolumeFrequency:
		sum += cfg.VolumeWeight
	}
	if freq > cfg.BulkFrequency {
		sum += cfg.BulkWeight
	}
	if days < cfg.BurstDays && freq > cfg.BurstFrequency {
		sum += cfg.BurstWeight
	}

	// 0.5+0.3 must compare equal to 0.8
	sum = math.Round(sum*1e9) / 1e9
	return math.Min(1, sum)
}

// Flagged reports whether score marks a pattern for review, strictly above the cut
func Flagged(score float64, cfg thresholds.Suspicion) bool {
	return score > cfg.PatternFlag
}
