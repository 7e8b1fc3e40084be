package client

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/userconsole/internal/client/migrations"
	"github.com/dmitrijs2005/userconsole/internal/filex"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens the SQLite session database at dsn and migrates it.
// A single connection is used so that ":memory:" databases keep their
// tables across calls. The parent directory of a file database is created
// when missing.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	if isFileDSN(dsn) {
		if _, err := filex.EnsureParentDir(dsn); err != nil {
			return nil, fmt.Errorf("prepare session db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate session db: %w", err)
	}

	return db, nil
}

func isFileDSN(dsn string) bool {
	return dsn != "" && !strings.HasPrefix(dsn, ":memory:") && !strings.HasPrefix(dsn, "file:")
}
