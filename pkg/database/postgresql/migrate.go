package postgresql

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// RunMigrations applies the embedded goose migrations. It runs once at
// startup, before the service takes traffic.
func RunMigrations(dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("opening migration connection: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, "migrations")
}

const (
	pgDuplicateColumn = "42701"
	pgDuplicateObject = "42710"
)

// EnsureRecurrenceColumns reconciles the schema additions older
// deployments may be missing. Additive changes that were already
// applied are non-fatal and swallowed; anything else propagates.
func EnsureRecurrenceColumns(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	stmts := []string{
		`ALTER TABLE maintenance_requests ADD COLUMN IF NOT EXISTS is_recurring BOOLEAN NOT NULL DEFAULT FALSE`,
		`ALTER TABLE maintenance_requests ADD COLUMN IF NOT EXISTS frequency VARCHAR(50) NOT NULL DEFAULT 'None'
			CHECK (frequency IN ('None', 'Daily', 'Weekly', 'Monthly', 'Quarterly', 'Yearly'))`,
	}

	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && (pgErr.Code == pgDuplicateColumn || pgErr.Code == pgDuplicateObject) {
				logger.Debug("schema reconciliation: already applied", zap.String("code", pgErr.Code))
				continue
			}
			return fmt.Errorf("reconciling schema: %w", err)
		}
	}
	return nil
}
