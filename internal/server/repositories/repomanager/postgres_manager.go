// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together the pgx driver, repository constructors and database
// migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/playhub-library/internal/dbx"
	"github.com/dmitrijs2005/playhub-library/internal/server/migrations"
	"github.com/dmitrijs2005/playhub-library/internal/server/repositories/library"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// DriverName is the database/sql driver registered by pgx/v5/stdlib.
const DriverName = "pgx"

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct {
	driverName string
}

// Library returns a library.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Library(db dbx.DBTX) library.Repository {
	return library.NewPostgresRepository(db)
}

// Open opens and pings a connection pool through the pgx stdlib driver.
func (m *PostgresRepositoryManager) Open(ctx context.Context, dsn string, maxConns int) (*sql.DB, error) {
	return dbx.Open(ctx, m.driverName, dsn, maxConns)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(DriverName); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{driverName: DriverName}
}
