// Package risk folds matcher and pattern output into an advisory report
// nothing here mutates state
package risk

import (
	"math"

	"jobguard/internal/core/thresholds"
)

// Level buckets an assessment score
type Level string

const (
	LevelLow    Level = "LOW"
	LevelMedium Level = "MEDIUM"
	LevelHigh   Level = "HIGH"
)

// Factor strings are part of the public report
const (
	FactorHighSimilarity   = "high-similarity duplicate(s) found"
	FactorMediumSimilarity = "medium-similarity duplicate(s) found"
	FactorSuspicious       = "suspicious posting patterns detected"
	FactorHighFrequency    = "high-frequency posting detected"
)

// Recommendation strings
const (
	RecReject       = "Reject this posting: a near-identical posting is already active"
	RecHold         = "Hold this posting for manual review before publishing"
	RecReview       = "Review the similar postings and consider updating an existing posting instead"
	RecAllowSimilar = "Similar postings exist; publishing is allowed"
	RecClear        = "No duplicate concerns detected"
	RecCadence      = "Review this employer's posting cadence"
)

// Match is one duplicate candidate score
type Match struct {
	Score float64
}

// Pattern is the part of a posting pattern the assessor reads
type Pattern struct {
	SuspiciousScore float64
	Frequency       int
	Flagged         bool
}

// Assessment is the advisory report
type Assessment struct {
	Score   float64  `json:"score" example:"0.7"`
	Level   Level    `json:"level" example:"HIGH"`
	Factors []string `json:"factors"`
}

// Assess scores matches and patterns, factors come out in a fixed order
func Assess(matches []Match, patterns []Pattern, cfg thresholds.Risk) Assessment {
	var high, medium, suspicious, frequent bool
	for _, m := range matches {
		switch {
		case m.Score >= cfg.HighMatch:
			high = true
		case m.Score >= cfg.MediumMatch:
			medium = true
		}
	}
	for _, p := range patterns {
		if p.SuspiciousScore > cfg.PatternScore || p.Flagged {
			suspicious = true
		}
		if p.Frequency > cfg.PatternFrequency {
			frequent = true
		}
	}

	a := Assessment{Factors: []string{}}
	add := func(on bool, w float64, factor string) {
		if on {
			a.Score += w
			a.Factors = append(a.Factors, factor)
		}
	}
	add(high, cfg.HighMatchWeight, FactorHighSimilarity)
	add(medium, cfg.MediumMatchWeight, FactorMediumSimilarity)
	add(suspicious, cfg.PatternWeight, FactorSuspicious)
	add(frequent, cfg.FrequencyWeight, FactorHighFrequency)

	a.Score = math.Min(1, math.Round(a.Score*1e9)/1e9)
	a.Level = levelFor(a.Score, cfg)
	return a
}

func levelFor(score float64, cfg thresholds.Risk) Level {
	switch {
	case score >= cfg.LevelHigh:
		return LevelHigh
	case score >= cfg.LevelMedium:
		return LevelMedium
	}
	return LevelLow
}

// Recommend derives caller guidance from an assessment and the matches behind it
func Recommend(a Assessment, matches []Match, cfg thresholds.Risk) []string {
	top := 0.0
	for _, m := range matches {
		top = math.Max(top, m.Score)
	}

	var out []string
	switch a.Level {
	case LevelHigh:
		if top >= cfg.RejectMatch {
			out = append(out, RecReject)
		} else {
			out = append(out, RecHold)
		}
	case LevelMedium:
		out = append(out, RecReview)
	default:
		if len(matches) > 0 {
			out = append(out, RecAllowSimilar)
		} else {
			out = append(out, RecClear)
		}
	}
	for _, f := range a.Factors {
		if f == FactorSuspicious {
			out = append(out, RecCadence)
			break
		}
	}
	return out
}
