package ch

import "testing"

func TestBuildClientInfo(t *testing.T) {
	info := BuildClientInfo(" rescan ", "v1.2.0")
	got := map[string]string{}
	for _, p := range info.Products {
		got[p.Name] = p.Version
	}
	if got["jobguard"] != "v1.2.0" {
		t.Fatalf("product tag = %q", got["jobguard"])
	}
	if got["role"] != "rescan" {
		t.Fatalf("role = %q", got["role"])
	}
	if got["go"] == "" || got["commit"] == "" {
		t.Fatalf("missing runtime products: %#v", got)
	}
}

func TestOpen_EmptyURL(t *testing.T) {
	if _, err := Open(t.Context(), Config{}); err == nil {
		t.Fatalf("expected error for empty url")
	}
}
