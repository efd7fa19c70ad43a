package suspicion

import (
	"testing"
	"time"

	"jobguard/internal/core/thresholds"
)

var now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func TestScore_Table(t *testing.T) {
	t.Parallel()
	cfg := thresholds.Defaults().Suspicion
	cases := []struct {
		name string
		freq int
		age  time.Duration
		want float64
	}{
		{"first sighting", 1, 0, 0},
		{"zero frequency", 0, 0, 0},
		{"elevated rate", 2, 0, 0.5},
		{"high rate", 4, 0, 0.7},
		{"very high rate with burst caps at one", 6, 0, 1.0},
		{"volume only", 11, 30 * day, 0.3},
		{"volume plus bulk", 21, 30 * day, 0.5},
		{"partial days floor", 2, 47 * time.Hour, 0.5},
		{"no burst after a week", 6, 7 * day, 0},
		{"clock skew counts as one day", 2, -2 * time.Hour, 0.5},
		{"six in three days", 6, 3 * day, 0.8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Score(tc.freq, now.Add(-tc.age), now, cfg); got != tc.want {
				t.Fatalf("Score(%d, -%v) = %v, want %v", tc.freq, tc.age, got, tc.want)
			}
		})
	}
}

// six postings in three days land exactly on the cut and stay unflagged
func TestScore_SixInThreeDaysIsNotFlagged(t *testing.T) {
	cfg := thresholds.Defaults().Suspicion
	s := Score(6, now.Add(-3*day), now, cfg)
	if s != 0.8 {
		t.Fatalf("score = %v, want 0.8", s)
	}
	if Flagged(s, cfg) {
		t.Fatalf("0.8 must not be flagged")
	}
	if !Flagged(0.81, cfg) {
		t.Fatalf("0.81 must be flagged")
	}
}

func TestScore_MonotonicInFrequency(t *testing.T) {
	t.Parallel()
	cfg := thresholds.Defaults().Suspicion
	for _, age := range []time.Duration{0, 2 * day, 6 * day, 8 * day, 45 * day, 400 * day} {
		first := now.Add(-age)
		prev := 0.0
		for freq := 1; freq <= 200; freq++ {
			s := Score(freq, first, now, cfg)
			if s < prev {
				t.Fatalf("age %v: score dropped from %v to %v at freq %d", age, prev, s, freq)
			}
			if s < 0 || s > 1 {
				t.Fatalf("score out of range: %v", s)
			}
			prev = s
		}
	}
}

func TestDaysSince(t *testing.T) {
	if d := DaysSince(now.Add(-71*time.Hour), now); d != 2 {
		t.Fatalf("DaysSince = %d", d)
	}
	if d := DaysSince(now, now); d != 1 {
		t.Fatalf("DaysSince same instant = %d", d)
	}
}
