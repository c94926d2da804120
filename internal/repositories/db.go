// Package repositories wires the local SQLite database: it opens the file,
// applies embedded migrations, and hands out the concrete repositories.
package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ntndev/skinscan/internal/migrations"
	"github.com/ntndev/skinscan/internal/repositories/snapshots"
	"github.com/ntndev/skinscan/internal/repositories/users"
	"github.com/pressly/goose/v3"
)

type Repositories struct {
	Users     users.Repository
	Snapshots snapshots.Repository
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens the SQLite database at dsn, runs migrations, and returns
// the wired repositories along with the handle the caller must Close.
func InitDatabase(ctx context.Context, dsn string) (*Repositories, *sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	repos := &Repositories{
		Users:     users.NewSQLiteRepository(db),
		Snapshots: snapshots.NewSQLiteRepository(db),
	}
	return repos, db, nil
}
