package config

import (
	"testing"
	"time"

	kit "jobguard/internal/platform/testkit"
)

func TestPrefixNests(t *testing.T) {
	c := New().Prefix("CORE_").Prefix("PATTERNS_")
	if got := c.key("TIMEOUT"); got != "CORE_PATTERNS_TIMEOUT" {
		t.Fatalf("key() = %q", got)
	}
}

func TestMustString(t *testing.T) {
	c := New().Prefix("SERVICE_PGSQL_")
	t.Setenv("SERVICE_PGSQL_DBURL", "  postgres://x ")
	if got := c.MustString("DBURL"); got != "postgres://x" {
		t.Fatalf("MustString = %q", got)
	}
	kit.MustPanic(t, func() { _ = c.MustString("MISSING") })
}

func TestMayValues(t *testing.T) {
	c := New().Prefix("CORE_T_")
	t.Setenv("CORE_T_LIMIT", "25")
	t.Setenv("CORE_T_BAD_INT", "x")
	t.Setenv("CORE_T_FLOOR", "0.65")
	t.Setenv("CORE_T_BAD_FLOAT", "abc")
	t.Setenv("CORE_T_ON", "true")
	t.Setenv("CORE_T_WAIT", "1500ms")
	t.Setenv("CORE_T_LIST", " a, ,b ")

	if got := c.MayInt("LIMIT", 10); got != 25 {
		t.Fatalf("MayInt = %d", got)
	}
	if got := c.MayInt("BAD_INT", 10); got != 10 {
		t.Fatalf("MayInt invalid = %d", got)
	}
	if got := c.MayFloat64("FLOOR", 0.6); got != 0.65 {
		t.Fatalf("MayFloat64 = %v", got)
	}
	if got := c.MayFloat64("BAD_FLOAT", 0.6); got != 0.6 {
		t.Fatalf("MayFloat64 invalid = %v", got)
	}
	if !c.MayBool("ON", false) {
		t.Fatalf("MayBool want true")
	}
	if got := c.MayDuration("WAIT", time.Second); got != 1500*time.Millisecond {
		t.Fatalf("MayDuration = %v", got)
	}
	if got := c.MayCSV("LIST", nil); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("MayCSV = %#v", got)
	}
	if got := c.MayString("NOPE", "def"); got != "def" {
		t.Fatalf("MayString default = %q", got)
	}
}

func TestHas(t *testing.T) {
	c := New().Prefix("CORE_T_")
	t.Setenv("CORE_T_SET", "1")
	t.Setenv("CORE_T_BLANK", "   ")
	if !c.Has("SET") || c.Has("BLANK") || c.Has("UNSET") {
		t.Fatalf("Has mismatch")
	}
}

func TestMayEnum(t *testing.T) {
	c := New().Prefix("CORE_T_")
	t.Setenv("CORE_T_FORMAT", "JSON")
	if got := c.MayEnum("FORMAT", "console", "console", "json"); got != "JSON" {
		t.Fatalf("MayEnum = %q", got)
	}
	t.Setenv("CORE_T_FORMAT", "xml")
	kit.MustPanic(t, func() { _ = c.MayEnum("FORMAT", "console", "console", "json") })
}
