package http

import (
	"context"
	stdhttp "net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	perr "jobguard/internal/platform/errors"
)

func withParam(r *stdhttp.Request, name, val string) *stdhttp.Request {
	rc := chi.NewRouteContext()
	rc.URLParams.Add(name, val)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rc))
}

func TestUUIDParam(t *testing.T) {
	id := uuid.New()
	r := withParam(httptest.NewRequest(stdhttp.MethodGet, "/", nil), "jobId", " "+id.String()+" ")
	got, err := UUIDParam(r, "jobId")
	if err != nil || got != id {
		t.Fatalf("UUIDParam = %v, %v", got, err)
	}

	r = withParam(httptest.NewRequest(stdhttp.MethodGet, "/", nil), "jobId", "nope")
	_, err = UUIDParam(r, "jobId")
	if e, ok := perr.As(err); !ok || e.Code() != perr.ErrorCodeValidation || e.Field() != "jobId" {
		t.Fatalf("want validation on jobId, got %v", err)
	}
}

func TestQueryNumbers(t *testing.T) {
	r := httptest.NewRequest(stdhttp.MethodGet, "/?limit=25&threshold=0.75&bad=x", nil)

	if n, err := QueryInt(r, "limit", 50); err != nil || n != 25 {
		t.Fatalf("QueryInt = %d, %v", n, err)
	}
	if n, err := QueryInt(r, "missing", 50); err != nil || n != 50 {
		t.Fatalf("QueryInt default = %d, %v", n, err)
	}
	if _, err := QueryInt(r, "bad", 50); !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("QueryInt bad = %v", err)
	}
	if f, err := QueryFloat(r, "threshold", 0.7); err != nil || f != 0.75 {
		t.Fatalf("QueryFloat = %v, %v", f, err)
	}
	if f, err := QueryFloat(r, "missing", 0.7); err != nil || f != 0.7 {
		t.Fatalf("QueryFloat default = %v, %v", f, err)
	}
	if _, err := QueryFloat(r, "bad", 0.7); !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("QueryFloat bad = %v", err)
	}

	for _, raw := range []string{"NaN", "nan", "Inf", "-Inf", "+Infinity", "1e400"} {
		r := httptest.NewRequest(stdhttp.MethodGet, "/?threshold="+url.QueryEscape(raw), nil)
		if f, err := QueryFloat(r, "threshold", 0.7); !perr.IsCode(err, perr.ErrorCodeValidation) {
			t.Fatalf("QueryFloat(%q) = %v, %v; want validation", raw, f, err)
		}
	}
}

func TestErrorEnvelopeStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{perr.Validationf("title", "title is required"), stdhttp.StatusBadRequest},
		{perr.NotFoundf("job posting not found"), stdhttp.StatusNotFound},
		{perr.InvalidTransitionf("alert already reviewed"), stdhttp.StatusConflict},
		{perr.Unavailablef("pg down"), stdhttp.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		RespondError(w, httptest.NewRequest(stdhttp.MethodGet, "/", nil), tc.err)
		if w.Code != tc.want {
			t.Fatalf("%v: status %d, want %d", tc.err, w.Code, tc.want)
		}
	}
}
