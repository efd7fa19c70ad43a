package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]string{
		"trace":   "trace",
		"info":    "info",
		"WARNING": "warn",
		"error":   "error",
		"":        "debug",
		" junk ":  "debug",
	}
	for in, want := range cases {
		if got := parseLevel(in).String(); got != want {
			t.Fatalf("parseLevel(%q) = %q, want %q", in, got, want)
		}
	}
}

// Init is once-only so every assertion on output lives in this test
func TestInit_ContextFields(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{
		Level:        "debug",
		Format:       "json",
		Service:      "jobguard-api",
		Writer:       &buf,
		StaticFields: map[string]string{"env": "test"},
	})

	ctx := WithEmployer(WithRequest(context.Background(), "req-1"), "emp-9")
	C(ctx).Info().Msg("screened")
	Named("patterns").Warn().Msg("store slow")

	out := buf.String()
	for _, want := range []string{
		`"service":"jobguard-api"`,
		`"env":"test"`,
		`"request_id":"req-1"`,
		`"employer_id":"emp-9"`,
		`"component":"patterns"`,
		`"message":"store slow"`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output missing %s\n%s", want, out)
		}
	}
}

func TestWithRequest_EmptyIsNoop(t *testing.T) {
	ctx := context.Background()
	if WithRequest(ctx, "") != ctx || WithEmployer(ctx, "") != ctx {
		t.Fatalf("empty ids should not wrap the context")
	}
}
