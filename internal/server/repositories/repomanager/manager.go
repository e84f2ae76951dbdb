package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/playhub-library/internal/dbx"
	"github.com/dmitrijs2005/playhub-library/internal/server/repositories/library"
)

type RepositoryManager interface {
	Open(ctx context.Context, dsn string, maxConns int) (*sql.DB, error)
	RunMigrations(context.Context, *sql.DB) error
	Library(db dbx.DBTX) library.Repository
}
