// Package repo provides postgres access to job postings
package repo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"jobguard/internal/modkit/repokit"
	perr "jobguard/internal/platform/errors"
	"jobguard/internal/services/postings/domain"
)

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements domain.Repo
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder for the postgres posting repo
func NewPG() repokit.Binder[domain.Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) domain.Repo { return &queries{q: q} }

const selectCols = `
select id::text, employer_id, company_name, title, location, description, salary,
       status, created_at, removed_at, deleted_at,
       flagged_as_duplicate, duplicate_of_job_id::text, duplicate_score
from job_postings`

func scanPosting(row repokit.Row) (domain.Posting, error) {
	var (
		p      domain.Posting
		id     string
		status string
		dupOf  *string
	)
	if err := row.Scan(
		&id, &p.EmployerID, &p.CompanyName, &p.Title, &p.Location, &p.Description, &p.Salary,
		&status, &p.CreatedAt, &p.RemovedAt, &p.DeletedAt,
		&p.FlaggedAsDuplicate, &dupOf, &p.DuplicateScore,
	); err != nil {
		return domain.Posting{}, err
	}
	var err error
	if p.ID, err = uuid.Parse(id); err != nil {
		return domain.Posting{}, perr.Wrapf(err, perr.ErrorCodeDB, "bad posting id %q", id)
	}
	if dupOf != nil {
		orig, err := uuid.Parse(*dupOf)
		if err != nil {
			return domain.Posting{}, perr.Wrapf(err, perr.ErrorCodeDB, "bad duplicate_of_job_id %q", *dupOf)
		}
		p.DuplicateOfJobID = &orig
	}
	p.Status = domain.Status(status)
	return p, nil
}

func (r *queries) Get(ctx context.Context, id uuid.UUID) (domain.Posting, error) {
	p, err := scanPosting(r.q.QueryRow(ctx, selectCols+` where id = $1::uuid`, id.String()))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Posting{}, perr.NotFoundf("job posting %s not found", id)
	}
	if err != nil {
		return domain.Posting{}, perr.FromPostgres(err, "load job posting")
	}
	return p, nil
}

func (r *queries) FindActiveByEmployer(ctx context.Context, employerID string) ([]domain.Posting, error) {
	rows, err := r.q.Query(ctx, selectCols+`
where employer_id = $1 and status = 'active' and deleted_at is null
order by created_at desc, id`, employerID)
	if err != nil {
		return nil, perr.FromPostgres(err, "list active postings")
	}
	defer rows.Close()

	var out []domain.Posting
	for rows.Next() {
		p, err := scanPosting(rows)
		if err != nil {
			return nil, perr.FromPostgres(err, "scan posting")
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, perr.FromPostgres(err, "list active postings")
	}
	return out, nil
}

func (r *queries) ListActiveEmployers(ctx context.Context, after string, limit int) ([]string, error) {
	const sql = `
select distinct employer_id
from job_postings
where status = 'active' and deleted_at is null and employer_id > $1
order by employer_id
limit $2`
	rows, err := r.q.Query(ctx, sql, after, limit)
	if err != nil {
		return nil, perr.FromPostgres(err, "list employers")
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, perr.FromPostgres(err, "scan employer")
		}
		out = append(out, id)
	}
	return out, perr.WrapIf(rows.Err(), perr.ErrorCodeDB, "list employers")
}

func (r *queries) FlagDuplicate(ctx context.Context, id, originalID uuid.UUID, score float64) error {
	if score < 0 || score > 1 {
		return perr.Validationf("duplicate_score", "duplicate score %v outside [0,1]", score)
	}
	const sql = `
update job_postings
set flagged_as_duplicate = true, duplicate_of_job_id = $2::uuid, duplicate_score = $3
where id = $1::uuid`
	return r.execOne(ctx, id, sql, id.String(), originalID.String(), score)
}

func (r *queries) MarkRemoved(ctx context.Context, id uuid.UUID, at time.Time) error {
	const sql = `
update job_postings
set status = 'removed', removed_at = $2
where id = $1::uuid`
	return r.execOne(ctx, id, sql, id.String(), at)
}

func (r *queries) execOne(ctx context.Context, id uuid.UUID, sql string, args ...any) error {
	tag, err := r.q.Exec(ctx, sql, args...)
	if err != nil {
		return perr.FromPostgres(err, "update job posting")
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("job posting %s not found", id)
	}
	return nil
}

func (r *queries) Insert(ctx context.Context, p domain.Posting) error {
	const sql = `
insert into job_postings
	(id, employer_id, company_name, title, location, description, salary, status, created_at)
values ($1::uuid, $2, $3, $4, $5, $6, $7, $8, $9)`
	if p.Status == "" {
		p.Status = domain.StatusActive
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	_, err := r.q.Exec(ctx, sql,
		p.ID.String(), p.EmployerID, p.CompanyName, p.Title, p.Location, p.Description, p.Salary,
		string(p.Status), p.CreatedAt,
	)
	return perr.FromPostgres(err, "insert job posting")
}
