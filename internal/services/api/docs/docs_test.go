package docs

import (
	"encoding/json"
	"testing"
)

func TestReadDoc(t *testing.T) {
	var spec struct {
		OpenAPI string `json:"openapi"`
		Info    struct {
			Title   string `json:"title"`
			Version string `json:"version"`
		} `json:"info"`
		Servers []struct {
			URL string `json:"url"`
		} `json:"servers"`
		Paths      map[string]map[string]any `json:"paths"`
		Components struct {
			Schemas map[string]any `json:"schemas"`
		} `json:"components"`
	}
	if err := json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &spec); err != nil {
		t.Fatalf("rendered doc is not JSON: %v", err)
	}
	if spec.Info.Title != "JobGuard API" || spec.Info.Version != "0.1.0" || spec.Servers[0].URL != "/api/v1" {
		t.Fatalf("info = %+v servers = %+v", spec.Info, spec.Servers)
	}

	routes := map[string]string{
		"/screening/check":                    "post",
		"/screening/postings/{jobId}/created": "post",
		"/screening/statistics":               "get",
		"/patterns/record":                    "post",
		"/patterns/suspicious":                "get",
		"/patterns/employers/{employerId}":    "get",
		"/alerts/{alertId}/review":            "post",
		"/alerts/pending":                     "get",
		"/alerts/employers/{employerId}":      "get",
		"/meta/health":                        "get",
		"/meta/ready":                         "get",
		"/meta/version":                       "get",
		"/meta/service":                       "get",
	}
	for path, method := range routes {
		if _, ok := spec.Paths[path][method]; !ok {
			t.Fatalf("doc missing %s %s", method, path)
		}
	}
	for _, name := range []string{"domain.CheckResult", "domain.Alert", "domain.Pattern", "risk.Assessment"} {
		if _, ok := spec.Components.Schemas[name]; !ok {
			t.Fatalf("doc missing schema %s", name)
		}
	}
}
