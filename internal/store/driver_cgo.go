//go:build cgo

package store

import (
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteDriver = "sqlite3"

// sqliteDSN sets a lock wait so concurrent writers queue instead of failing
// with SQLITE_BUSY.
func sqliteDSN(path string) string {
	return fmt.Sprintf("file:%s?_busy_timeout=5000", path)
}
