package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	perr "jobguard/internal/platform/errors"
	phttp "jobguard/internal/platform/net/http"
	"jobguard/internal/services/alerts/domain"
)

type fakeSvc struct {
	domain.ServicePort
	reviewed  domain.ReviewInput
	reviewErr error
	limit     int
}

func (f *fakeSvc) Review(_ context.Context, in domain.ReviewInput) (domain.Alert, error) {
	f.reviewed = in
	if f.reviewErr != nil {
		return domain.Alert{}, f.reviewErr
	}
	return domain.Alert{ID: in.AlertID, ReviewStatus: in.Decision}, nil
}

func (f *fakeSvc) ListPending(_ context.Context, limit int) ([]domain.Alert, error) {
	f.limit = limit
	return []domain.Alert{}, nil
}

func (f *fakeSvc) ListForEmployer(_ context.Context, employerID string) ([]domain.Alert, error) {
	if employerID == "" {
		return nil, perr.Validationf("employer_id", "employer_id is required")
	}
	return []domain.Alert{{ID: uuid.New()}}, nil
}

func serve(t *testing.T, svc domain.ServicePort, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	mux := chi.NewRouter()
	r := phttp.AdaptChi(mux)
	r.Route("/alerts", func(rr phttp.Router) { Register(rr, svc) })

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func TestReviewRoute(t *testing.T) {
	id := uuid.New()
	svc := &fakeSvc{}
	w := serve(t, svc, stdhttp.MethodPost, "/alerts/"+id.String()+"/review",
		`{"decision":"confirmed","reviewer_id":"mod-1","action_taken":"removed"}`)
	if w.Code != stdhttp.StatusOK {
		t.Fatalf("status %d body %s", w.Code, w.Body)
	}
	if svc.reviewed.AlertID != id || svc.reviewed.Decision != domain.StatusConfirmed || svc.reviewed.ActionTaken != domain.ActionRemoved {
		t.Fatalf("review input = %+v", svc.reviewed)
	}

	var env struct {
		Data domain.Alert `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil || env.Data.ID != id {
		t.Fatalf("envelope = %s, %v", w.Body, err)
	}
}

func TestReviewRoute_Errors(t *testing.T) {
	cases := []struct {
		name string
		path string
		body string
		err  error
		want int
	}{
		{"bad alert id", "/alerts/nope/review", `{"decision":"confirmed","reviewer_id":"m"}`, nil, stdhttp.StatusBadRequest},
		{"bad decision", "/alerts/" + uuid.NewString() + "/review", `{"decision":"approve","reviewer_id":"m"}`, nil, stdhttp.StatusBadRequest},
		{"unknown field", "/alerts/" + uuid.NewString() + "/review", `{"decision":"ignored","reviewer_id":"m","alert_id":"x"}`, nil, stdhttp.StatusBadRequest},
		{"already reviewed", "/alerts/" + uuid.NewString() + "/review", `{"decision":"ignored","reviewer_id":"m"}`, perr.InvalidTransitionf("alert is confirmed"), stdhttp.StatusConflict},
		{"missing", "/alerts/" + uuid.NewString() + "/review", `{"decision":"ignored","reviewer_id":"m"}`, perr.NotFoundf("duplicate alert not found"), stdhttp.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := serve(t, &fakeSvc{reviewErr: tc.err}, stdhttp.MethodPost, tc.path, tc.body)
			if w.Code != tc.want {
				t.Fatalf("status %d, want %d, body %s", w.Code, tc.want, w.Body)
			}
		})
	}
}

func TestListRoutes(t *testing.T) {
	svc := &fakeSvc{}
	if w := serve(t, svc, stdhttp.MethodGet, "/alerts/pending?limit=25", ""); w.Code != stdhttp.StatusOK || svc.limit != 25 {
		t.Fatalf("pending status %d limit %d", w.Code, svc.limit)
	}
	if w := serve(t, svc, stdhttp.MethodGet, "/alerts/pending?limit=lots", ""); w.Code != stdhttp.StatusBadRequest {
		t.Fatalf("bad limit status %d", w.Code)
	}
	if w := serve(t, svc, stdhttp.MethodGet, "/alerts/employers/E1", ""); w.Code != stdhttp.StatusOK {
		t.Fatalf("employer status %d", w.Code)
	}
}
