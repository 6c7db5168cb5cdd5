package report

import (
	"database/sql"

	_ "modernc.org/sqlite" // register pure-Go SQLite driver
)

const checksSchema = `
CREATE TABLE IF NOT EXISTS hemi_checks (
    id         TEXT PRIMARY KEY,
    bval_path  TEXT,
    bvec_path  TEXT,
    tolerance  REAL NOT NULL,
    n_dirs     INTEGER NOT NULL,
    is_hemi    INTEGER NOT NULL,
    pole       BLOB,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// Open opens a SQLite database using the modernc.org/sqlite driver.
//
// For file-based databases, pass a path like "./qc.sqlite". For in-memory
// databases, pass ":memory:".
func Open(dsn string) (*sql.DB, error) { return sql.Open("sqlite", dsn) }

// EnsureSchema creates the hemi_checks table in the provided database if it
// does not already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(checksSchema)
	return err
}
