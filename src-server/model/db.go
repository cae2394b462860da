package model

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
	"github.com/uptrace/bun/extra/bundebug"
)

// OpenDB opens the sqlite database at path and wraps it with bun. An
// in-memory path is pinned to a single connection, otherwise every pooled
// connection would see its own empty database.
func OpenDB(path string) (*sql.DB, *bun.DB, error) {
	dsn := path
	inMemory := strings.Contains(path, ":memory:")
	if !inMemory && !strings.Contains(path, "?") {
		dsn = path + "?mode=rwc"
	}

	rawDB, err := sql.Open(sqliteshim.ShimName, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("OpenDB: %w", err)
	}
	if inMemory {
		rawDB.SetMaxOpenConns(1)
	}
	rawDB.SetMaxIdleConns(8)

	bunDB := bun.NewDB(rawDB, sqlitedialect.New())
	bunDB.AddQueryHook(bundebug.NewQueryHook(
		bundebug.WithVerbose(true),
		bundebug.FromEnv("BUNDEBUG"),
	))
	return rawDB, bunDB, nil
}
