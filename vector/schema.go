package vector

import (
	"database/sql"
	"fmt"
)

const textsSchema = `
CREATE TABLE IF NOT EXISTS texts (
    line_number INTEGER NOT NULL,
    filename    TEXT NOT NULL,
    author      TEXT,
    title       TEXT,
    content     TEXT,
    embedding   BLOB,
    PRIMARY KEY (filename, line_number)
);
`

// EnsureSchema creates the texts table in the provided database if it does
// not already exist. Idempotent; safe to call on every startup. The primary
// key on (filename, line_number) carries the store's uniqueness invariant.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(textsSchema)
	return err
}

// SchemaExists reports whether the texts table is present. Read-only
// sessions use it to fail fast with operator guidance instead of attempting
// DDL on a read-only connection.
func SchemaExists(db *sql.DB) (bool, error) {
	var name string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'texts'`).Scan(&name)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("vector: checking schema: %w", err)
	}
	return true, nil
}
