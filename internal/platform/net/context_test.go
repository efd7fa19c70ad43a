package net

import (
	"context"
	"testing"
)

func TestWithRequest(t *testing.T) {
	ctx := WithRequest(context.Background(), "req-42")
	if got := RequestID(ctx); got != "req-42" {
		t.Fatalf("RequestID = %q", got)
	}
	if RequestID(context.Background()) != "" {
		t.Fatalf("expected empty id on bare context")
	}
	base := context.Background()
	if WithRequest(base, "") != base {
		t.Fatalf("empty id should not wrap")
	}
}
