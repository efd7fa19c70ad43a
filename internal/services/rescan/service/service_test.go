package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"jobguard/internal/core/similarity"
	"jobguard/internal/core/thresholds"
	perr "jobguard/internal/platform/errors"
	kit "jobguard/internal/platform/testkit"
	alertsrepo "jobguard/internal/services/alerts/repo"
	alertssvc "jobguard/internal/services/alerts/service"
	dupsvc "jobguard/internal/services/duplicates/service"
	postings "jobguard/internal/services/postings/domain"
	postingsrepo "jobguard/internal/services/postings/repo"
	"jobguard/internal/services/rescan/guardrails"
)

var t0 = time.Date(2026, 5, 4, 3, 0, 0, 0, time.UTC)

type harness struct {
	posts  *postingsrepo.Memory
	alerts *alertssvc.Service
	run    *Runner
}

func newHarness(t *testing.T, lease *guardrails.Lease, pageSize int, seed ...postings.Posting) *harness {
	t.Helper()
	th := thresholds.Defaults()
	posts := postingsrepo.NewMemory(seed...)
	amem := alertsrepo.NewMemory(posts)
	tx := kit.NewTxRunner(posts, amem)
	matcher := dupsvc.New(posts, similarity.New(th.Similarity), dupsvc.Config{Floor: th.Matcher.Floor, Limit: 10})
	al := alertssvc.New(tx, amem.Binder(), posts.Binder(), nil, alertssvc.Config{AutoFlag: th.Matcher.AutoFlag, Now: func() time.Time { return t0 }})
	return &harness{
		posts:  posts,
		alerts: al,
		run: New(posts, matcher, al, lease, Config{
			PageSize: pageSize,
			AutoFlag: th.Matcher.AutoFlag,
			Now:      func() time.Time { return t0 },
		}),
	}
}

func posting(emp, title string, age time.Duration) postings.Posting {
	return postings.Posting{
		ID: uuid.New(), EmployerID: emp, CompanyName: "Acme", Title: title, Location: "Reno",
		Status: postings.StatusActive, CreatedAt: t0.Add(-age),
	}
}

func TestRunOnce_RaisesOncePerPair(t *testing.T) {
	older := posting("E1", "Picker", 48*time.Hour)
	newer := posting("E1", "Picker (Temp)", time.Hour)
	lone := posting("E2", "Welder", time.Hour)
	h := newHarness(t, nil, 0, older, newer, lone)

	rep, err := h.run.RunOnce(context.Background())
	if err != nil {
		t.Fatalf("RunOnce: %v", err)
	}
	if rep.Employers != 2 || rep.Postings != 3 || rep.Matched != 1 || rep.Raised != 1 || rep.Failed != 0 {
		t.Fatalf("report = %+v", rep)
	}
	pending, _ := h.alerts.ListPending(context.Background(), 0)
	if len(pending) != 1 || pending[0].OriginalJobID != older.ID || pending[0].DuplicateJobID != newer.ID {
		t.Fatalf("pending = %+v", pending)
	}

	// a second pass finds the flagged posting and raises nothing new
	rep, err = h.run.RunOnce(context.Background())
	if err != nil || rep.Raised != 0 {
		t.Fatalf("second pass = %+v, %v", rep, err)
	}
}

func TestRunOnce_ChainOfIdenticalPostings(t *testing.T) {
	a := posting("E1", "Picker", 72*time.Hour)
	b := posting("E1", "Picker", 48*time.Hour)
	c := posting("E1", "Picker", 24*time.Hour)
	h := newHarness(t, nil, 0, a, b, c)

	rep, err := h.run.RunOnce(context.Background())
	if err != nil {
		t.Fatalf("RunOnce: %v", err)
	}
	if rep.Matched != 2 || rep.Raised != 2 {
		t.Fatalf("report = %+v", rep)
	}

	// every duplicate points at an older posting, the oldest stays clean
	for _, tc := range []struct {
		id       uuid.UUID
		flagged  bool
		original uuid.UUID
	}{
		{a.ID, false, uuid.Nil},
		{b.ID, true, a.ID},
		{c.ID, true, b.ID},
	} {
		p, err := h.posts.Get(context.Background(), tc.id)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if p.FlaggedAsDuplicate != tc.flagged {
			t.Fatalf("posting %s flagged = %v, want %v", p.CreatedAt, p.FlaggedAsDuplicate, tc.flagged)
		}
		if tc.flagged && *p.DuplicateOfJobID != tc.original {
			t.Fatalf("posting %s duplicate of %s, want %s", p.CreatedAt, p.DuplicateOfJobID, tc.original)
		}
	}

	pending, _ := h.alerts.ListPending(context.Background(), 0)
	for _, al := range pending {
		if al.OriginalJobID == c.ID || al.DuplicateJobID == a.ID {
			t.Fatalf("alert points at a newer original: %+v", al)
		}
	}
}

func TestRunOnce_PagesEmployers(t *testing.T) {
	var seed []postings.Posting
	for i := 0; i < 7; i++ {
		seed = append(seed, posting(fmt.Sprintf("E%02d", i), "Driver", time.Hour))
	}
	h := newHarness(t, nil, 3, seed...)
	rep, err := h.run.RunOnce(context.Background())
	if err != nil || rep.Employers != 7 || rep.Postings != 7 {
		t.Fatalf("report = %+v, %v", rep, err)
	}
}

type kv struct{ held bool }

func (k *kv) SetNX(context.Context, string, string, time.Duration) (bool, error) { return !k.held, nil }
func (k *kv) DelIf(context.Context, string, string) (bool, error)                { return true, nil }

func TestRunOnce_SkipsWhenLeaseHeld(t *testing.T) {
	lease := guardrails.NewLease(&kv{held: true}, "jobguard:rescan:lease", "rescan", time.Minute)
	h := newHarness(t, lease, 0, posting("E1", "Picker", time.Hour), posting("E1", "Picker", 2*time.Hour))

	rep, err := h.run.RunOnce(context.Background())
	if err != nil || !rep.Skipped || rep.Postings != 0 {
		t.Fatalf("report = %+v, %v", rep, err)
	}

	free := guardrails.NewLease(&kv{}, "jobguard:rescan:lease", "rescan", time.Minute)
	h = newHarness(t, free, 0, posting("E1", "Picker", time.Hour), posting("E1", "Picker", 2*time.Hour))
	rep, err = h.run.RunOnce(context.Background())
	if err != nil || rep.Skipped || rep.Raised != 1 {
		t.Fatalf("report = %+v, %v", rep, err)
	}
}

func TestRunOnce_StoreFailureAborts(t *testing.T) {
	h := newHarness(t, nil, 0, posting("E1", "Picker", time.Hour))
	h.posts.Fail = perr.Unavailablef("pg down")
	if _, err := h.run.RunOnce(context.Background()); !perr.IsTransient(err) {
		t.Fatalf("want transient error, got %v", err)
	}
}

func TestNew_PanicsOnNilPorts(t *testing.T) {
	kit.MustPanic(t, func() { New(nil, nil, nil, nil, Config{}) })
}
