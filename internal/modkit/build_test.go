package modkit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"jobguard/internal/modkit/httpkit"
	phttp "jobguard/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func TestBuild_Defaults(t *testing.T) {
	b := Build(WithName("alerts"), WithPrefix("/alerts"))
	if b.Name != "alerts" || b.Prefix != "/alerts" {
		t.Fatalf("built = %+v", b)
	}
	if b.Subrouter == nil || b.Register == nil {
		t.Fatalf("hooks should default to no-ops")
	}
}

func TestBuild_MountAppliesMiddlewareAndExtraRoutes(t *testing.T) {
	tagged := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Module", "patterns")
			next.ServeHTTP(w, r)
		})
	}
	b := Build(
		WithPrefix("/patterns"),
		WithMiddlewares(tagged),
		WithPorts(struct{ N int }{N: 1}),
		WithRegister(func(r httpkit.Router) {
			httpkit.Get(r, "/extra", func(*http.Request) (any, error) { return "extra", nil })
		}),
	)
	if b.Ports == nil {
		t.Fatalf("ports not carried")
	}

	mux := chi.NewRouter()
	b.Mount(phttp.AdaptChi(mux), func(r httpkit.Router) {
		httpkit.Get(r, "/suspicious", func(*http.Request) (any, error) { return []string{}, nil })
	})

	for _, path := range []string{"/patterns/suspicious", "/patterns/extra"} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("%s status = %d", path, rec.Code)
		}
		if rec.Header().Get("X-Module") != "patterns" {
			t.Fatalf("%s missing module middleware", path)
		}
	}
}
