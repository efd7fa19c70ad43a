// Package repo provides postgres access for duplicate alerts and their audit log
package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"jobguard/internal/core/similarity"
	"jobguard/internal/modkit/repokit"
	perr "jobguard/internal/platform/errors"
	"jobguard/internal/services/alerts/domain"
)

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements domain.Repo
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder for the postgres alert repo
func NewPG() repokit.Binder[domain.Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) domain.Repo { return &queries{q: q} }

const selectCols = `
select a.id::text, a.original_job_id::text, a.duplicate_job_id::text, a.similarity_score,
       a.detection_method, a.detected_at, a.review_status, a.reviewed_at,
       coalesce(a.reviewed_by, ''), coalesce(a.action_taken, ''), coalesce(a.notes, '')
from duplicate_alerts a`

func scanAlert(row repokit.Row) (domain.Alert, error) {
	var (
		a                  domain.Alert
		id, orig, dup      string
		method, status, at string
	)
	if err := row.Scan(
		&id, &orig, &dup, &a.SimilarityScore,
		&method, &a.DetectedAt, &status, &a.ReviewedAt,
		&a.ReviewedBy, &at, &a.Notes,
	); err != nil {
		return domain.Alert{}, err
	}
	for _, p := range []struct {
		dst *uuid.UUID
		src string
	}{{&a.ID, id}, {&a.OriginalJobID, orig}, {&a.DuplicateJobID, dup}} {
		parsed, err := uuid.Parse(p.src)
		if err != nil {
			return domain.Alert{}, perr.Wrapf(err, perr.ErrorCodeDB, "bad alert uuid %q", p.src)
		}
		*p.dst = parsed
	}
	a.DetectionMethod = similarity.Method(method)
	a.ReviewStatus = domain.Status(status)
	a.ActionTaken = domain.Action(at)
	return a, nil
}

func (r *queries) Insert(ctx context.Context, a domain.Alert) (bool, error) {
	const sql = `
insert into duplicate_alerts
	(id, original_job_id, duplicate_job_id, similarity_score, detection_method, detected_at, review_status)
values ($1::uuid, $2::uuid, $3::uuid, $4, $5, $6, 'pending')
on conflict on constraint duplicate_alerts_pair_key do nothing`
	tag, err := r.q.Exec(ctx, sql,
		a.ID.String(), a.OriginalJobID.String(), a.DuplicateJobID.String(),
		a.SimilarityScore, string(a.DetectionMethod), a.DetectedAt,
	)
	if err != nil {
		return false, perr.FromPostgres(err, "insert duplicate alert")
	}
	return tag.RowsAffected() == 1, nil
}

func (r *queries) GetByPair(ctx context.Context, originalID, duplicateID uuid.UUID) (domain.Alert, error) {
	return r.one(ctx, "get duplicate alert", selectCols+`
where a.original_job_id = $1::uuid and a.duplicate_job_id = $2::uuid`, originalID.String(), duplicateID.String())
}

func (r *queries) LockByID(ctx context.Context, id uuid.UUID) (domain.Alert, error) {
	return r.one(ctx, "lock duplicate alert", selectCols+`
where a.id = $1::uuid
for update`, id.String())
}

func (r *queries) one(ctx context.Context, op, sql string, args ...any) (domain.Alert, error) {
	a, err := scanAlert(r.q.QueryRow(ctx, sql, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Alert{}, perr.NotFoundf("duplicate alert not found")
	}
	if err != nil {
		return domain.Alert{}, perr.FromPostgres(err, op)
	}
	return a, nil
}

func (r *queries) UpdateReview(ctx context.Context, a domain.Alert) error {
	const sql = `
update duplicate_alerts
set review_status = $2, reviewed_at = $3, reviewed_by = $4,
    action_taken = $5, notes = nullif($6, '')
where id = $1::uuid`
	tag, err := r.q.Exec(ctx, sql,
		a.ID.String(), string(a.ReviewStatus), a.ReviewedAt, a.ReviewedBy,
		string(a.ActionTaken), a.Notes,
	)
	if err != nil {
		return perr.FromPostgres(err, "review duplicate alert")
	}
	if tag.RowsAffected() != 1 {
		return perr.NotFoundf("duplicate alert %s not found", a.ID)
	}
	return nil
}

func (r *queries) InsertAudit(ctx context.Context, e domain.AuditEntry) error {
	const sql = `
insert into alert_audit_log
	(id, alert_id, action, actor, from_status, to_status, action_taken, posting_mutation, notes, created_at)
values ($1::uuid, $2::uuid, $3, $4, $5, $6, $7, $8, nullif($9, ''), $10)`
	_, err := r.q.Exec(ctx, sql,
		e.ID.String(), e.AlertID.String(), e.Action, e.Actor,
		string(e.FromStatus), string(e.ToStatus), string(e.ActionTaken), string(e.PostingMutation),
		e.Notes, e.CreatedAt,
	)
	return perr.FromPostgres(err, "insert alert audit")
}

func (r *queries) ListPending(ctx context.Context, limit int) ([]domain.Alert, error) {
	return r.list(ctx, selectCols+`
where a.review_status = 'pending'
order by a.detected_at, a.id
limit $1`, limit)
}

func (r *queries) ListForEmployer(ctx context.Context, employerID string) ([]domain.Alert, error) {
	return r.list(ctx, selectCols+`
join job_postings o on o.id = a.original_job_id
join job_postings d on d.id = a.duplicate_job_id
where o.employer_id = $1 or d.employer_id = $1
order by a.detected_at desc, a.id`, employerID)
}

func (r *queries) list(ctx context.Context, sql string, args ...any) ([]domain.Alert, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, perr.FromPostgres(err, "list duplicate alerts")
	}
	defer rows.Close()

	out := []domain.Alert{}
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			return nil, perr.FromPostgres(err, "scan duplicate alert")
		}
		out = append(out, a)
	}
	return out, perr.WrapIf(rows.Err(), perr.ErrorCodeDB, "list duplicate alerts")
}

func (r *queries) Stats(ctx context.Context) (domain.Stats, error) {
	const sql = `
select review_status, detection_method, count(*)
from duplicate_alerts
group by review_status, detection_method`
	rows, err := r.q.Query(ctx, sql)
	if err != nil {
		return domain.Stats{}, perr.FromPostgres(err, "alert stats")
	}
	defer rows.Close()

	s := domain.Stats{ByStatus: map[domain.Status]int64{}, ByMethod: map[similarity.Method]int64{}}
	for rows.Next() {
		var (
			status, method string
			n              int64
		)
		if err := rows.Scan(&status, &method, &n); err != nil {
			return domain.Stats{}, perr.FromPostgres(err, "scan alert stats")
		}
		s.Total += n
		s.ByStatus[domain.Status(status)] += n
		s.ByMethod[similarity.Method(method)] += n
	}
	return s, perr.WrapIf(rows.Err(), perr.ErrorCodeDB, "alert stats")
}
