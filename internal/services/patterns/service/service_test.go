package service

import (
	"context"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"jobguard/internal/core/thresholds"
	"jobguard/internal/modkit/repokit"
	perr "jobguard/internal/platform/errors"
	kit "jobguard/internal/platform/testkit"
	"jobguard/internal/services/patterns/domain"
	"jobguard/internal/services/patterns/repo"
)

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func newSvc(t *testing.T, binder repokit.Binder[domain.Repo], fakes ...kit.Snapshotter) (*Service, *clock) {
	t.Helper()
	c := &clock{t: time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)}
	svc := New(kit.NewTxRunner(fakes...), binder, Config{
		Timeout:   200 * time.Millisecond,
		Suspicion: thresholds.Defaults().Suspicion,
		Now:       c.Now,
	})
	return svc, c
}

func input(title string) domain.RecordInput {
	return domain.RecordInput{EmployerID: "E2", CompanyName: "Acme", Title: title, Location: " Stockton, CA ", Salary: " $18/hr "}
}

func TestRecordPosting_FirstSighting(t *testing.T) {
	mem := repo.NewMemory()
	svc, c := newSvc(t, mem.Binder(), mem)

	res, err := svc.RecordPosting(context.Background(), input("URGENT Warehouse Associate (Full-Time)"))
	if err != nil || !res.Recorded || !res.Created {
		t.Fatalf("RecordPosting = %+v, %v", res, err)
	}
	p := res.Pattern
	if p.TitlePattern != "warehouse associate" || p.LocationPattern != "stockton, ca" || p.SalaryPattern != "$18/hr" {
		t.Fatalf("patterns = %+v", p)
	}
	if p.PostingFrequency != 1 || p.SuspiciousScore != 0 || p.FlaggedForReview {
		t.Fatalf("first sighting counters = %+v", p)
	}
	if !p.FirstSeenAt.Equal(c.Now()) || !p.LastSeenAt.Equal(c.Now()) {
		t.Fatalf("timestamps = %v %v", p.FirstSeenAt, p.LastSeenAt)
	}
}

// six postings with one pattern spread over three days score exactly 0.8
func TestRecordPosting_SixInThreeDays(t *testing.T) {
	mem := repo.NewMemory()
	svc, c := newSvc(t, mem.Binder(), mem)
	ctx := context.Background()

	titles := []string{
		"Warehouse Associate", "warehouse associate", "Warehouse Associate - Remote",
		"Senior Warehouse Associate", "WAREHOUSE ASSOCIATE!!", "Warehouse Associate ASAP",
	}
	var last domain.RecordResult
	for i, title := range titles {
		if i > 0 {
			c.Advance(72 * time.Hour / 5)
		}
		res, err := svc.RecordPosting(ctx, input(title))
		if err != nil || !res.Recorded {
			t.Fatalf("record %d = %+v, %v", i, res, err)
		}
		last = res
	}
	p := last.Pattern
	if p.PostingFrequency != 6 {
		t.Fatalf("frequency = %d", p.PostingFrequency)
	}
	if p.SuspiciousScore != 0.8 {
		t.Fatalf("score = %v, want 0.8", p.SuspiciousScore)
	}
	if p.FlaggedForReview {
		t.Fatalf("0.8 must not flag for review")
	}
	rows, _ := svc.ListForEmployer(ctx, "E2")
	if len(rows) != 1 {
		t.Fatalf("want one pattern row, got %d", len(rows))
	}
}

func TestRecordPosting_FlagsAboveCut(t *testing.T) {
	mem := repo.NewMemory()
	svc, _ := newSvc(t, mem.Binder(), mem)
	var res domain.RecordResult
	for i := 0; i < 7; i++ {
		res, _ = svc.RecordPosting(context.Background(), input("Picker"))
	}
	// seven in one day, very high rate plus burst
	if res.Pattern.SuspiciousScore != 1 || !res.Pattern.FlaggedForReview {
		t.Fatalf("pattern = %+v", res.Pattern)
	}
}

func TestRecordPosting_Validation(t *testing.T) {
	mem := repo.NewMemory()
	svc, _ := newSvc(t, mem.Binder(), mem)
	cases := map[string]domain.RecordInput{
		"employer_id":  {CompanyName: "Acme", Title: "x"},
		"company_name": {EmployerID: "E", CompanyName: "  ", Title: "x"},
		"title":        {EmployerID: "E", CompanyName: "Acme"},
	}
	for field, in := range cases {
		_, err := svc.RecordPosting(context.Background(), in)
		e, ok := perr.As(err)
		if !ok || e.Code() != perr.ErrorCodeValidation || e.Field() != field {
			t.Fatalf("%s: got %v", field, err)
		}
	}
}

func TestRecordPosting_StoreFailureIsSwallowed(t *testing.T) {
	mem := repo.NewMemory()
	mem.Fail = perr.Unavailablef("pg down")
	svc, _ := newSvc(t, mem.Binder(), mem)

	res, err := svc.RecordPosting(context.Background(), input("Cook"))
	if err != nil || res.Recorded || res.Pattern != nil {
		t.Fatalf("want fail open, got %+v, %v", res, err)
	}
}

type flaky struct {
	domain.Repo
	mu    sync.Mutex
	fails int
	calls int
}

func (f *flaky) Insert(ctx context.Context, p domain.Pattern) (bool, error) {
	f.mu.Lock()
	f.calls++
	fail := f.calls <= f.fails
	f.mu.Unlock()
	if fail {
		return false, perr.FromPostgres(&pgconn.PgError{Code: "40P01", Message: "deadlock detected"}, "insert")
	}
	return f.Repo.Insert(ctx, p)
}

func TestRecordPosting_RetriesDeadlocks(t *testing.T) {
	cases := []struct {
		fails    int
		recorded bool
		calls    int
	}{
		{fails: 2, recorded: true, calls: 3},
		{fails: 3, recorded: false, calls: 3},
	}
	for _, tc := range cases {
		mem := repo.NewMemory()
		f := &flaky{Repo: mem, fails: tc.fails}
		svc, _ := newSvc(t, repokit.BindFunc[domain.Repo](func(repokit.Queryer) domain.Repo { return f }), mem)

		res, err := svc.RecordPosting(context.Background(), input("Cook"))
		if err != nil || res.Recorded != tc.recorded {
			t.Fatalf("fails=%d: %+v, %v", tc.fails, res, err)
		}
		if f.calls != tc.calls {
			t.Fatalf("fails=%d: calls = %d, want %d", tc.fails, f.calls, tc.calls)
		}
	}
}

type stalled struct{ domain.Repo }

func (stalled) Insert(ctx context.Context, _ domain.Pattern) (bool, error) {
	<-ctx.Done()
	return false, ctx.Err()
}

func TestRecordPosting_TimeoutFailsOpen(t *testing.T) {
	mem := repo.NewMemory()
	s := stalled{Repo: mem}
	svc, _ := newSvc(t, repokit.BindFunc[domain.Repo](func(repokit.Queryer) domain.Repo { return s }), mem)

	start := time.Now()
	res, err := svc.RecordPosting(context.Background(), input("Cook"))
	if err != nil || res.Recorded {
		t.Fatalf("want fail open, got %+v, %v", res, err)
	}
	if time.Since(start) > 2*time.Second {
		t.Fatalf("timeout not honored")
	}
}

func TestRecordPosting_ConcurrentSameKey(t *testing.T) {
	mem := repo.NewMemory()
	svc, _ := newSvc(t, mem.Binder(), mem)
	svc.cfg.Timeout = 5 * time.Second

	const n = 40
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.RecordPosting(context.Background(), input("Forklift Driver")); err != nil {
				t.Errorf("record: %v", err)
			}
		}()
	}
	wg.Wait()

	rows, err := svc.ListForEmployer(context.Background(), "E2")
	if err != nil || len(rows) != 1 {
		t.Fatalf("rows = %v, %v", rows, err)
	}
	if rows[0].PostingFrequency != n {
		t.Fatalf("lost updates: frequency = %d, want %d", rows[0].PostingFrequency, n)
	}
}

func TestListSuspicious(t *testing.T) {
	mem := repo.NewMemory()
	svc, _ := newSvc(t, mem.Binder(), mem)
	now := time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)
	mem.Put(domain.Pattern{EmployerID: "a", CompanyName: "c", TitlePattern: "x", SuspiciousScore: 0.9, LastSeenAt: now})
	mem.Put(domain.Pattern{EmployerID: "a", CompanyName: "c", TitlePattern: "y", SuspiciousScore: 0.2, FlaggedForReview: true, LastSeenAt: now})
	mem.Put(domain.Pattern{EmployerID: "b", CompanyName: "c", TitlePattern: "z", SuspiciousScore: 0.5, LastSeenAt: now})

	got, err := svc.ListSuspicious(context.Background(), 0.7, 0)
	if err != nil || len(got) != 2 || got[0].TitlePattern != "x" {
		t.Fatalf("ListSuspicious = %v, %v", got, err)
	}
	got, _ = svc.ListSuspicious(context.Background(), 0.0, 1)
	if len(got) != 1 {
		t.Fatalf("limit not applied: %d", len(got))
	}
	for _, bad := range []float64{1.2, -0.1, math.NaN(), math.Inf(1)} {
		if _, err := svc.ListSuspicious(context.Background(), bad, 0); !perr.IsCode(err, perr.ErrorCodeValidation) {
			t.Fatalf("threshold %v: want validation, got %v", bad, err)
		}
	}

	st, _ := svc.Stats(context.Background())
	if st.TotalPatterns != 3 || st.FlaggedPatterns != 1 {
		t.Fatalf("stats = %+v", st)
	}
}

func TestNew_PanicsOnNilDeps(t *testing.T) {
	mem := repo.NewMemory()
	kit.MustPanic(t, func() { New(nil, mem.Binder(), Config{}) })
	kit.MustPanic(t, func() { New(kit.NewTxRunner(), nil, Config{}) })
}
