package thresholds

import (
	"os"
	"path/filepath"
	"testing"

	"jobguard/internal/platform/config"
	perr "jobguard/internal/platform/errors"
)

func TestDefaults_Valid(t *testing.T) {
	if err := Defaults().Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "thresholds.yaml")
	body := "matcher:\n  floor: 0.5\n  auto_flag: 0.85\nsuspicion:\n  burst_days: 5\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("CORE_THRESHOLDS_FILE", path)
	t.Setenv("CORE_THRESHOLDS_MATCHER_AUTO_FLAG", "0.9")

	c, err := Load(config.New())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Matcher.Floor != 0.5 {
		t.Fatalf("floor from file = %v", c.Matcher.Floor)
	}
	if c.Matcher.AutoFlag != 0.9 {
		t.Fatalf("env should win over file, got %v", c.Matcher.AutoFlag)
	}
	if c.Suspicion.BurstDays != 5 {
		t.Fatalf("burst days = %d", c.Suspicion.BurstDays)
	}
	// untouched keys keep their defaults
	if c.Similarity.LocationTitleFuzzy != 0.7 || c.Risk.LevelHigh != 0.7 {
		t.Fatalf("defaults lost: %+v", c)
	}
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name  string
		env   map[string]string
		field string
	}{
		{"score above one", map[string]string{"CORE_THRESHOLDS_MATCHER_FLOOR": "1.5"}, "MATCHER_FLOOR"},
		{"negative score", map[string]string{"CORE_THRESHOLDS_RISK_LEVEL_MEDIUM": "-0.1"}, "RISK_LEVEL_MEDIUM"},
		{"tiers out of order", map[string]string{"CORE_THRESHOLDS_RISK_LEVEL_MEDIUM": "0.8"}, "RISK_LEVEL_MEDIUM"},
		{"floor above auto flag", map[string]string{"CORE_THRESHOLDS_MATCHER_FLOOR": "0.9"}, "MATCHER_FLOOR"},
		{"negative count", map[string]string{"CORE_THRESHOLDS_SUSPICION_BURST_DAYS": "-1"}, "SUSPICION_BURST_DAYS"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := Load(config.New())
			if !perr.IsCode(err, perr.ErrorCodeValidation) {
				t.Fatalf("want validation error, got %v", err)
			}
			if e, ok := perr.As(err); !ok || e.Field() != tc.field {
				t.Fatalf("field = %v, want %s", err, tc.field)
			}
		})
	}
}

func TestLoad_BadFile(t *testing.T) {
	t.Setenv("CORE_THRESHOLDS_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	if _, err := Load(config.New()); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("want invalid argument, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("matcher: [1, 2"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("CORE_THRESHOLDS_FILE", path)
	if _, err := Load(config.New()); err == nil {
		t.Fatalf("want parse error")
	}
}
