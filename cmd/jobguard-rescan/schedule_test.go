package main

import "testing"

func TestScheduleSpec(t *testing.T) {
	cases := []struct {
		flag, env, want string
	}{
		{"", "", ""},
		{"6h", "", "@every 6h0m0s"},
		{"", "30m", "@every 30m0s"},
		{"1h", "30m", "@every 1h0m0s"},
		{"", "0 */6 * * *", "0 */6 * * *"},
		{" @daily ", "", "@daily"},
		{"-5m", "", "-5m"},
	}
	for _, tc := range cases {
		if got := scheduleSpec(tc.flag, tc.env); got != tc.want {
			t.Fatalf("scheduleSpec(%q, %q) = %q, want %q", tc.flag, tc.env, got, tc.want)
		}
	}
}
