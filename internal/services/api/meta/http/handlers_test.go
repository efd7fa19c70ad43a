package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	phttp "jobguard/internal/platform/net/http"
	kit "jobguard/internal/platform/testkit"
)

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func ready(t *testing.T, d Deps) ReadyResponse {
	t.Helper()
	mux := chi.NewRouter()
	Register(phttp.AdaptChi(mux), d)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("ready status %d", rec.Code)
	}
	var env struct {
		Data ReadyResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return env.Data
}

func TestReady(t *testing.T) {
	down := pinger{err: errors.New("connection refused")}
	cases := []struct {
		name string
		deps Deps
		want string
	}{
		{"pg only", Deps{PG: pinger{}}, "ok"},
		{"all up", Deps{PG: pinger{}, CH: pinger{}, RDS: pinger{}}, "ok"},
		{"redis down", Deps{PG: pinger{}, RDS: down}, "degraded"},
		{"pg down", Deps{PG: down, CH: pinger{}}, "fail"},
		{"pg missing", Deps{CH: pinger{}}, "fail"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ready(t, tc.deps)
			if got.Status != tc.want || len(got.Checks) != 3 {
				t.Fatalf("ready = %+v, want %s", got, tc.want)
			}
		})
	}
}

func TestVersionAndService(t *testing.T) {
	mux := chi.NewRouter()
	Register(phttp.AdaptChi(mux), Deps{ServiceName: "jobguard-api", StartedAt: time.Now().Add(-time.Minute)})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/version", nil))
	kit.MustContain(t, rec.Body.String(), `"service":"jobguard-api"`)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/service", nil))
	var env struct {
		Data ServiceResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil || env.Data.Uptime < 59 {
		t.Fatalf("service = %s, %v", rec.Body, err)
	}
}
