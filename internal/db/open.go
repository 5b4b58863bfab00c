package db

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fs2dt/fs2dt/pkg/fs2dt"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const driverName = "sqlite"

// uriEscaper escapes the characters SQLite URI filenames treat specially.
var uriEscaper = strings.NewReplacer("%", "%25", "?", "%3f", "#", "%23")

// Open opens the catalog file read-only and verifies it can be queried.
func Open(ctx context.Context, path string) (*sqlx.DB, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve catalog path %s: %v: %w", path, err, fs2dt.ErrCatalogAccess)
	}
	info, err := os.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to access catalog: %v: %w", err, fs2dt.ErrCatalogAccess)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("catalog path is a directory: %s: %w", absPath, fs2dt.ErrCatalogAccess)
	}

	db, err := sqlx.Open(driverName, readOnlyDSN(absPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog %s: %v: %w", absPath, err, fs2dt.ErrCatalogAccess)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to open catalog %s: %v: %w", absPath, err, fs2dt.ErrCatalogAccess)
	}
	return db, nil
}

func readOnlyDSN(absPath string) string {
	return "file:" + uriEscaper.Replace(filepath.ToSlash(absPath)) + "?mode=ro"
}
