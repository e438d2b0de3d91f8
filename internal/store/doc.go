// Package store is the durable persistence boundary for catch records.
//
// The store owns a single table, catches, keyed by an auto-increment id:
//
//	id             integer  primary key, auto-increment
//	fisherman_name text     not null
//	fish_species   text     not null
//	weight         real     not null
//	timestamp      datetime defaults to insertion time
//
// # Backends
//
//   - sqlite (default): a single database file. The driver is
//     github.com/mattn/go-sqlite3 in cgo builds and modernc.org/sqlite otherwise.
//   - postgres: via github.com/jackc/pgx/v5/stdlib.
//   - memory: process-local, for tests and dry runs.
//
// SQL backends open and close the database on every operation. No handle is
// held between calls, so there is no shared connection state to protect;
// concurrent writers rely on the engine's own locking (busy_timeout for
// SQLite).
//
// # Errors
//
// Store methods return *Error values classified by Kind (init, write, read).
// Callers that want "log and continue" behaviour wrap a Store in
// a Lenient adapter, which logs failures and substitutes empty results.
//
// # Ordering and identity
//
//   - Ids and capture timestamps are assigned by the store, never the caller.
//   - Reads order by timestamp DESC, id DESC so equal timestamps still
//     produce a stable order.
//   - Angler names and species are trimmed and NFC-normalized on write and
//     on lookup, so "Петро" typed in decomposed form matches stored records.
package store
