// Package repo provides postgres access for posting patterns
package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"jobguard/internal/modkit/repokit"
	perr "jobguard/internal/platform/errors"
	"jobguard/internal/services/patterns/domain"
)

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements domain.Repo
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder for the postgres pattern repo
func NewPG() repokit.Binder[domain.Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) domain.Repo { return &queries{q: q} }

const selectCols = `
select id::text, employer_id, company_name, title_pattern, location_pattern, salary_pattern,
       posting_frequency, suspicious_score, flagged_for_review, first_seen_at, last_seen_at
from posting_patterns`

func scanPattern(row repokit.Row) (domain.Pattern, error) {
	var (
		p  domain.Pattern
		id string
	)
	if err := row.Scan(
		&id, &p.EmployerID, &p.CompanyName, &p.TitlePattern, &p.LocationPattern, &p.SalaryPattern,
		&p.PostingFrequency, &p.SuspiciousScore, &p.FlaggedForReview, &p.FirstSeenAt, &p.LastSeenAt,
	); err != nil {
		return domain.Pattern{}, err
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return domain.Pattern{}, perr.Wrapf(err, perr.ErrorCodeDB, "bad pattern id %q", id)
	}
	p.ID = parsed
	return p, nil
}

func (r *queries) Insert(ctx context.Context, p domain.Pattern) (bool, error) {
	const sql = `
insert into posting_patterns
	(id, employer_id, company_name, title_pattern, location_pattern, salary_pattern,
	 posting_frequency, suspicious_score, flagged_for_review, first_seen_at, last_seen_at)
values ($1::uuid, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
on conflict on constraint posting_patterns_triple_key do nothing`
	tag, err := r.q.Exec(ctx, sql,
		p.ID.String(), p.EmployerID, p.CompanyName, p.TitlePattern, p.LocationPattern, p.SalaryPattern,
		p.PostingFrequency, p.SuspiciousScore, p.FlaggedForReview, p.FirstSeenAt, p.LastSeenAt,
	)
	if err != nil {
		return false, perr.FromPostgres(err, "insert posting pattern")
	}
	return tag.RowsAffected() == 1, nil
}

func (r *queries) LockByKey(ctx context.Context, k domain.Key) (domain.Pattern, error) {
	p, err := scanPattern(r.q.QueryRow(ctx, selectCols+`
where employer_id = $1 and company_name = $2 and title_pattern = $3
for update`, k.EmployerID, k.CompanyName, k.TitlePattern))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Pattern{}, perr.NotFoundf("posting pattern not found")
	}
	if err != nil {
		return domain.Pattern{}, perr.FromPostgres(err, "lock posting pattern")
	}
	return p, nil
}

func (r *queries) Update(ctx context.Context, p domain.Pattern) error {
	const sql = `
update posting_patterns
set posting_frequency = $2, suspicious_score = $3, flagged_for_review = $4,
    last_seen_at = $5, location_pattern = $6, salary_pattern = $7
where id = $1::uuid`
	tag, err := r.q.Exec(ctx, sql,
		p.ID.String(), p.PostingFrequency, p.SuspiciousScore, p.FlaggedForReview,
		p.LastSeenAt, p.LocationPattern, p.SalaryPattern,
	)
	if err != nil {
		return perr.FromPostgres(err, "update posting pattern")
	}
	if tag.RowsAffected() != 1 {
		return perr.NotFoundf("posting pattern %s not found", p.ID)
	}
	return nil
}

func (r *queries) ListSuspicious(ctx context.Context, threshold float64, limit int) ([]domain.Pattern, error) {
	return r.list(ctx, selectCols+`
where suspicious_score >= $1 or flagged_for_review
order by suspicious_score desc, last_seen_at desc, id
limit $2`, threshold, limit)
}

func (r *queries) ListForEmployer(ctx context.Context, employerID string) ([]domain.Pattern, error) {
	return r.list(ctx, selectCols+`
where employer_id = $1
order by suspicious_score desc, last_seen_at desc, id`, employerID)
}

func (r *queries) list(ctx context.Context, sql string, args ...any) ([]domain.Pattern, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, perr.FromPostgres(err, "list posting patterns")
	}
	defer rows.Close()

	out := []domain.Pattern{}
	for rows.Next() {
		p, err := scanPattern(rows)
		if err != nil {
			return nil, perr.FromPostgres(err, "scan posting pattern")
		}
		out = append(out, p)
	}
	return out, perr.WrapIf(rows.Err(), perr.ErrorCodeDB, "list posting patterns")
}

func (r *queries) Stats(ctx context.Context) (domain.Stats, error) {
	const sql = `
select count(*),
       count(*) filter (where flagged_for_review),
       coalesce(avg(suspicious_score), 0)
from posting_patterns`
	var s domain.Stats
	if err := r.q.QueryRow(ctx, sql).Scan(&s.TotalPatterns, &s.FlaggedPatterns, &s.AverageScore); err != nil {
		return domain.Stats{}, perr.FromPostgres(err, "pattern stats")
	}
	return s, nil
}
