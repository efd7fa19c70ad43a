// Package events keeps the duplicate check event log in clickhouse
package events

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	perr "jobguard/internal/platform/errors"
	"jobguard/internal/platform/store"
	"jobguard/internal/services/screening/domain"
)

// Table is the event log table name
const Table = "duplicate_check_events"

const ddl = `
CREATE TABLE IF NOT EXISTS duplicate_check_events (
	id           UUID,
	at           DateTime64(3, 'UTC'),
	source       LowCardinality(String),
	job_id       UUID,
	employer_id  String,
	matches      UInt16,
	top_score    Float64,
	top_method   LowCardinality(String),
	risk_score   Float64,
	risk_level   LowCardinality(String),
	alert_raised Bool
) ENGINE = MergeTree
ORDER BY (employer_id, at)`

// CH writes check events to clickhouse
type CH struct {
	ch store.Clickhouse
}

var _ domain.EventSink = (*CH)(nil)

// NewCH wraps a clickhouse seam
func NewCH(ch store.Clickhouse) *CH {
	if ch == nil {
		panic("events.CH requires a non nil clickhouse")
	}
	return &CH{ch: ch}
}

// EnsureSchema creates the event table when missing
func (c *CH) EnsureSchema(ctx context.Context) error {
	return perr.WrapIf(c.ch.Exec(ctx, ddl), perr.ErrorCodeUnavailable, "create check event table")
}

// Record appends one event
func (c *CH) Record(ctx context.Context, ev domain.CheckEvent) error {
	if ev.ID == uuid.Nil {
		ev.ID = uuid.New()
	}
	row := []any{
		ev.ID, ev.At.UTC(), ev.Source, ev.JobID, ev.EmployerID,
		uint16(min(ev.Matches, 65535)), ev.TopScore, ev.TopMethod,
		ev.RiskScore, string(ev.RiskLevel), ev.AlertRaised,
	}
	return perr.WrapIf(c.ch.Insert(ctx, Table, [][]any{row}), perr.ErrorCodeUnavailable, "record check event")
}

// CountSince counts events at or after since
func (c *CH) CountSince(ctx context.Context, since time.Time) (int64, error) {
	rows, err := c.ch.Query(ctx, "SELECT count() FROM "+Table+" WHERE at >= ?", since.UTC())
	if err != nil {
		return 0, perr.Wrap(err, perr.ErrorCodeUnavailable, "count check events")
	}
	defer rows.Close()
	if !rows.Next() {
		return 0, perr.WrapIf(rows.Err(), perr.ErrorCodeUnavailable, "count check events")
	}
	var n uint64
	if err := rows.Scan(&n); err != nil {
		return 0, perr.Wrap(err, perr.ErrorCodeDB, "scan check event count")
	}
	return int64(n), nil
}

// ErrDisabled is returned by Nop reads
var ErrDisabled = errors.New("events: check event log disabled")

// Nop drops events, used when clickhouse is not configured
type Nop struct{}

// Record discards ev
func (Nop) Record(context.Context, domain.CheckEvent) error { return nil }

// CountSince reports ErrDisabled
func (Nop) CountSince(context.Context, time.Time) (int64, error) { return 0, ErrDisabled }
