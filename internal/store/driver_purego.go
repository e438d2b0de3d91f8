//go:build !cgo

package store

import (
	"fmt"

	_ "modernc.org/sqlite"
)

const sqliteDriver = "sqlite"

// sqliteDSN sets a lock wait so concurrent writers queue instead of failing
// with SQLITE_BUSY.
func sqliteDSN(path string) string {
	return fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)
}
