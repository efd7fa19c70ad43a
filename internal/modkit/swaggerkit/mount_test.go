package swaggerkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	phttp "jobguard/internal/platform/net/http"
	kit "jobguard/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

func get(t *testing.T, mux *chi.Mux, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestMount(t *testing.T) {
	kit.Serial(t)
	mux := chi.NewRouter()
	Mount(phttp.AdaptChi(mux), true)

	rec := get(t, mux, "/api/docs/doc.json")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "jobguard API") {
		t.Fatalf("doc.json = %d %q", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Cache-Control"); got != "no-store" {
		t.Fatalf("Cache-Control = %q", got)
	}
	if rec = get(t, mux, "/api/docs"); rec.Code != http.StatusPermanentRedirect {
		t.Fatalf("redirect = %d", rec.Code)
	}
}

func TestMount_Disabled(t *testing.T) {
	mux := chi.NewRouter()
	Mount(phttp.AdaptChi(mux), false)
	if rec := get(t, mux, "/api/docs/doc.json"); rec.Code != http.StatusNotFound {
		t.Fatalf("disabled docs should 404, got %d", rec.Code)
	}
}

const swagger2 = `{"swagger":"2.0","info":{"title":"JobGuard API","version":"0.1.0"},
"paths":{"/alerts/pending":{"get":{"responses":{"200":{"description":"ok"}}}},
"/alerts/{alertId}/review":{"post":{"responses":{"400":{"description":"validation"}}}}}}`

func TestShapeDoc(t *testing.T) {
	kit.Serial(t)
	t.Setenv("CORE_API_DOCS_TITLE_SUFFIX", "(staging)")
	kit.Swap(t, &mutators, nil)
	Register(func(spec map[string]any) { spec["x-mutated"] = true })
	Register(nil)

	spec, err := shapeDoc(swagger2)
	if err != nil {
		t.Fatalf("shapeDoc: %v", err)
	}
	if _, ok := spec["swagger"]; ok || spec["openapi"] != "3.0.3" {
		t.Fatalf("version not lifted: %v %v", spec["swagger"], spec["openapi"])
	}
	if servers := spec["servers"].([]any); servers[0].(map[string]any)["url"] != "/api/v1" {
		t.Fatalf("servers = %v", servers)
	}
	if title := spec["info"].(map[string]any)["title"]; title != "JobGuard API (staging)" {
		t.Fatalf("title = %v", title)
	}
	if spec["x-mutated"] != true {
		t.Fatalf("mutator not applied")
	}

	paths := spec["paths"].(map[string]any)
	pending := paths["/alerts/pending"].(map[string]any)["get"].(map[string]any)["responses"].(map[string]any)
	for _, code := range []string{"200", "400", "500"} {
		if _, ok := pending[code]; !ok {
			t.Fatalf("pending missing %s response", code)
		}
	}
	review := paths["/alerts/{alertId}/review"].(map[string]any)["post"].(map[string]any)["responses"].(map[string]any)
	// declared responses win over the defaults
	if review["400"].(map[string]any)["description"] != "validation" {
		t.Fatalf("declared 400 overwritten: %v", review["400"])
	}

	raw, _ := json.Marshal(spec)
	kit.MustContain(t, string(raw), `"ErrorResponse"`)
}

func TestShapeDoc_Downgrades31(t *testing.T) {
	spec, err := shapeDoc(`{"openapi":"3.1.0","servers":[{"url":"/api/v1"}],"paths":{}}`)
	if err != nil || spec["openapi"] != "3.0.3" {
		t.Fatalf("spec = %v, %v", spec, err)
	}
}

func TestServeDocJSON_BrokenDoc(t *testing.T) {
	kit.Serial(t)
	kit.Swap(t, &docReader, func() string { return "{not json" })

	mux := chi.NewRouter()
	Mount(phttp.AdaptChi(mux), true)
	if rec := get(t, mux, "/api/docs/doc.json"); rec.Code != http.StatusInternalServerError {
		t.Fatalf("broken doc status = %d", rec.Code)
	}
}
