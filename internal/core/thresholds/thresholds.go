// Package thresholds holds every tunable number the detection engine uses
// Scorer, matcher, pattern tracker and risk assessor all read one Config
package thresholds

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"jobguard/internal/platform/config"
	perr "jobguard/internal/platform/errors"
)

// Config is the full threshold set, zero value is not usable, start from Defaults
type Config struct {
	Similarity Similarity `yaml:"similarity"`
	Matcher    Matcher    `yaml:"matcher"`
	Suspicion  Suspicion  `yaml:"suspicion"`
	Risk       Risk       `yaml:"risk"`
}

// Similarity tiers, fuzzy values are strict lower bounds
type Similarity struct {
	ExactScore         float64 `yaml:"exact_score"`
	LocationTitleFuzzy float64 `yaml:"location_title_fuzzy"`
	LocationTitleScore float64 `yaml:"location_title_score"`
	CompanyTitleFuzzy  float64 `yaml:"company_title_fuzzy"`
	CompanyTitleScore  float64 `yaml:"company_title_score"`
}

// Matcher holds the candidate floor and the auto flag cut
type Matcher struct {
	Floor    float64 `yaml:"floor"`
	AutoFlag float64 `yaml:"auto_flag"`
}

// Suspicion parameterizes the posting cadence formula
type Suspicion struct {
	// PatternFlag marks a pattern for review when the score is strictly above it
	PatternFlag float64 `yaml:"pattern_flag"`

	VeryHighRate   float64 `yaml:"very_high_rate"`
	VeryHighWeight float64 `yaml:"very_high_weight"`
	HighRate       float64 `yaml:"high_rate"`
	HighWeight     float64 `yaml:"high_weight"`
	ElevatedRate   float64 `yaml:"elevated_rate"`
	ElevatedWeight float64 `yaml:"elevated_weight"`

	VolumeFrequency int     `yaml:"volume_frequency"`
	VolumeWeight    float64 `yaml:"volume_weight"`
	BulkFrequency   int     `yaml:"bulk_frequency"`
	BulkWeight      float64 `yaml:"bulk_weight"`

	BurstDays      int     `yaml:"burst_days"`
	BurstFrequency int     `yaml:"burst_frequency"`
	BurstWeight    float64 `yaml:"burst_weight"`
}

// Risk weights and level cuts for the advisory report
type Risk struct {
	HighMatch         float64 `yaml:"high_match"`
	HighMatchWeight   float64 `yaml:"high_match_weight"`
	MediumMatch       float64 `yaml:"medium_match"`
	MediumMatchWeight float64 `yaml:"medium_match_weight"`
	PatternScore      float64 `yaml:"pattern_score"`
	PatternWeight     float64 `yaml:"pattern_weight"`
	PatternFrequency  int     `yaml:"pattern_frequency"`
	FrequencyWeight   float64 `yaml:"frequency_weight"`
	LevelHigh         float64 `yaml:"level_high"`
	LevelMedium       float64 `yaml:"level_medium"`
	RejectMatch       float64 `yaml:"reject_match"`
}

// Defaults returns the production threshold set
func Defaults() Config {
	return Config{
		Similarity: Similarity{
			ExactScore:         1.0,
			LocationTitleFuzzy: 0.7,
			LocationTitleScore: 0.8,
			CompanyTitleFuzzy:  0.6,
			CompanyTitleScore:  0.6,
		},
		Matcher: Matcher{Floor: 0.6, AutoFlag: 0.8},
		Suspicion: Suspicion{
			PatternFlag:     0.8,
			VeryHighRate:    5,
			VeryHighWeight:  0.9,
			HighRate:        3,
			HighWeight:      0.7,
			ElevatedRate:    1,
			ElevatedWeight:  0.5,
			VolumeFrequency: 10,
			VolumeWeight:    0.3,
			BulkFrequency:   20,
			BulkWeight:      0.2,
			BurstDays:       7,
			BurstFrequency:  5,
			BurstWeight:     0.3,
		},
		Risk: Risk{
			HighMatch:         0.8,
			HighMatchWeight:   0.4,
			MediumMatch:       0.6,
			MediumMatchWeight: 0.2,
			PatternScore:      0.7,
			PatternWeight:     0.3,
			PatternFrequency:  10,
			FrequencyWeight:   0.2,
			LevelHigh:         0.7,
			LevelMedium:       0.4,
			RejectMatch:       0.9,
		},
	}
}

// Load resolves defaults, then CORE_THRESHOLDS_FILE, then CORE_THRESHOLDS_* env
func Load(cfg config.Conf) (Config, error) {
	c := Defaults()
	tc := cfg.Prefix("CORE_THRESHOLDS_")

	if path := tc.MayString("FILE", ""); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "read thresholds file %s", path)
		}
		if err := yaml.Unmarshal(raw, &c); err != nil {
			return Config{}, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "parse thresholds file %s", path)
		}
	}

	c.applyEnv(tc)

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// MustLoad is Load for boot code
func MustLoad(cfg config.Conf) Config {
	c, err := Load(cfg)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Config) applyEnv(tc config.Conf) {
	for key, p := range c.floats() {
		*p = tc.MayFloat64(key, *p)
	}
	for key, p := range c.ints() {
		*p = tc.MayInt(key, *p)
	}
}

func (c *Config) floats() map[string]*float64 {
	return map[string]*float64{
		"SIMILARITY_EXACT_SCORE":          &c.Similarity.ExactScore,
		"SIMILARITY_LOCATION_TITLE_FUZZY": &c.Similarity.LocationTitleFuzzy,
		"SIMILARITY_LOCATION_TITLE_SCORE": &c.Similarity.LocationTitleScore,
		"SIMILARITY_COMPANY_TITLE_FUZZY":  &c.Similarity.CompanyTitleFuzzy,
		"SIMILARITY_COMPANY_TITLE_SCORE":  &c.Similarity.CompanyTitleScore,
		"MATCHER_FLOOR":                   &c.Matcher.Floor,
		"MATCHER_AUTO_FLAG":               &c.Matcher.AutoFlag,
		"SUSPICION_PATTERN_FLAG":          &c.Suspicion.PatternFlag,
		"SUSPICION_VERY_HIGH_RATE":        &c.Suspicion.VeryHighRate,
		"SUSPICION_VERY_HIGH_WEIGHT":      &c.Suspicion.VeryHighWeight,
		"SUSPICION_HIGH_RATE":             &c.Suspicion.HighRate,
		"SUSPICION_HIGH_WEIGHT":           &c.Suspicion.HighWeight,
		"SUSPICION_ELEVATED_RATE":         &c.Suspicion.ElevatedRate,
		"SUSPICION_ELEVATED_WEIGHT":       &c.Suspicion.ElevatedWeight,
		"SUSPICION_VOLUME_WEIGHT":         &c.Suspicion.VolumeWeight,
		"SUSPICION_BULK_WEIGHT":           &c.Suspicion.BulkWeight,
		"SUSPICION_BURST_WEIGHT":          &c.Suspicion.BurstWeight,
		"RISK_HIGH_MATCH":                 &c.Risk.HighMatch,
		"RISK_HIGH_MATCH_WEIGHT":          &c.Risk.HighMatchWeight,
		"RISK_MEDIUM_MATCH":               &c.Risk.MediumMatch,
		"RISK_MEDIUM_MATCH_WEIGHT":        &c.Risk.MediumMatchWeight,
		"RISK_PATTERN_SCORE":              &c.Risk.PatternScore,
		"RISK_PATTERN_WEIGHT":             &c.Risk.PatternWeight,
		"RISK_FREQUENCY_WEIGHT":           &c.Risk.FrequencyWeight,
		"RISK_LEVEL_HIGH":                 &c.Risk.LevelHigh,
		"RISK_LEVEL_MEDIUM":               &c.Risk.LevelMedium,
		"RISK_REJECT_MATCH":               &c.Risk.RejectMatch,
	}
}

func (c *Config) ints() map[string]*int {
	return map[string]*int{
		"SUSPICION_VOLUME_FREQUENCY": &c.Suspicion.VolumeFrequency,
		"SUSPICION_BULK_FREQUENCY":   &c.Suspicion.BulkFrequency,
		"SUSPICION_BURST_DAYS":       &c.Suspicion.BurstDays,
		"SUSPICION_BURST_FREQUENCY":  &c.Suspicion.BurstFrequency,
		"RISK_PATTERN_FREQUENCY":     &c.Risk.PatternFrequency,
	}
}

// rates are posts per day, everything else in floats() is a score
var rateKeys = map[string]bool{
	"SUSPICION_VERY_HIGH_RATE": true,
	"SUSPICION_HIGH_RATE":      true,
	"SUSPICION_ELEVATED_RATE":  true,
}

// Validate checks ranges and tier ordering
func (c Config) Validate() error {
	for key, p := range c.floats() {
		v := *p
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return perr.Validationf(key, "%s must be a finite number", key)
		}
		if rateKeys[key] {
			if v < 0 {
				return perr.Validationf(key, "%s must not be negative, got %v", key, v)
			}
			continue
		}
		if v < 0 || v > 1 {
			return perr.Validationf(key, "%s must be within [0,1], got %v", key, v)
		}
	}
	for key, p := range c.ints() {
		if *p < 0 {
			return perr.Validationf(key, "%s must not be negative, got %d", key, *p)
		}
	}

	ordered := []struct {
		lo, hi   float64
		loK, hiK string
	}{
		{c.Similarity.CompanyTitleFuzzy, c.Similarity.LocationTitleFuzzy, "SIMILARITY_COMPANY_TITLE_FUZZY", "SIMILARITY_LOCATION_TITLE_FUZZY"},
		{c.Similarity.CompanyTitleScore, c.Similarity.LocationTitleScore, "SIMILARITY_COMPANY_TITLE_SCORE", "SIMILARITY_LOCATION_TITLE_SCORE"},
		{c.Similarity.LocationTitleScore, c.Similarity.ExactScore, "SIMILARITY_LOCATION_TITLE_SCORE", "SIMILARITY_EXACT_SCORE"},
		{c.Matcher.Floor, c.Matcher.AutoFlag, "MATCHER_FLOOR", "MATCHER_AUTO_FLAG"},
		{c.Suspicion.ElevatedRate, c.Suspicion.HighRate, "SUSPICION_ELEVATED_RATE", "SUSPICION_HIGH_RATE"},
		{c.Suspicion.HighRate, c.Suspicion.VeryHighRate, "SUSPICION_HIGH_RATE", "SUSPICION_VERY_HIGH_RATE"},
		{c.Risk.MediumMatch, c.Risk.HighMatch, "RISK_MEDIUM_MATCH", "RISK_HIGH_MATCH"},
		{c.Risk.LevelMedium, c.Risk.LevelHigh, "RISK_LEVEL_MEDIUM", "RISK_LEVEL_HIGH"},
	}
	for _, o := range ordered {
		if o.lo > o.hi {
			return perr.Validationf(o.loK, "%s (%v) must not exceed %s (%v)", o.loK, o.lo, o.hiK, o.hi)
		}
	}
	return nil
}

// String is a compact summary for boot logs
func (c Config) String() string {
	return fmt.Sprintf("floor=%v auto_flag=%v pattern_flag=%v risk_high=%v risk_medium=%v",
		c.Matcher.Floor, c.Matcher.AutoFlag, c.Suspicion.PatternFlag, c.Risk.LevelHigh, c.Risk.LevelMedium)
}
