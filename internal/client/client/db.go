package client

import (
	"context"
	"database/sql"
	"fmt"

	"gamelog/internal/client/migrations"
	"gamelog/internal/client/repositories/entries"
	"gamelog/internal/client/repositories/metadata"
	"gamelog/internal/dbx"

	"github.com/pressly/goose/v3"
)

// Repositories bundles the local stores backed by one sqlite database.
type Repositories struct {
	Entries  entries.Repository
	Metadata metadata.Repository
	DB       *sql.DB
}

// RunMigrations applies the embedded goose migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("setting goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (or creates) the local journal database at dsn, applies
// migrations and wires the repositories.
func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// sqlite allows a single writer; one pooled connection avoids lock
	// contention and keeps :memory: databases coherent.
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Repositories{
		Entries:  entries.NewSQLiteRepository(db),
		Metadata: metadata.NewSQLiteRepository(db),
		DB:       db,
	}, nil
}

// EntriesTx runs fn against an entries repository bound to one transaction;
// the whole fn commits or rolls back as a unit.
func (r *Repositories) EntriesTx(ctx context.Context, fn func(repo entries.Repository) error) error {
	return dbx.WithTx(ctx, r.DB, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(entries.NewSQLiteRepository(tx))
	})
}
