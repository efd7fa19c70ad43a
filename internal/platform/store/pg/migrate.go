package pg

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/jackc/pgx/v5/pgconn"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// Execer is the write surface Migrate needs, satisfied by pools, conns and store seams
type Execer[T any] interface {
	Exec(ctx context.Context, sql string, args ...any) (T, error)
}

// Files lists embedded migration names in apply order
func Files() ([]string, error) {
	names, err := fs.Glob(schemaFS, "schema/*.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

// Migrate applies every embedded migration in name order
// each file is idempotent so reapplying is a no op
func Migrate[T any](ctx context.Context, db Execer[T]) error {
	names, err := Files()
	if err != nil {
		return err
	}
	for _, n := range names {
		body, err := schemaFS.ReadFile(n)
		if err != nil {
			return err
		}
		if _, err := db.Exec(ctx, string(body)); err != nil {
			return fmt.Errorf("migrate %s: %w", n, err)
		}
	}
	return nil
}

// Migrate applies migrations through the pgx pool
func (p *PG) Migrate(ctx context.Context) error {
	return Migrate[pgconn.CommandTag](ctx, p.Pool)
}
