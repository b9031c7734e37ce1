package db

import (
	"context"
	"database/sql"
)

const directoryMigration = `
CREATE TABLE IF NOT EXISTS users (
    uid text PRIMARY KEY,
    email text NOT NULL,
    created_at timestamptz NOT NULL DEFAULT NOW()
);

CREATE UNIQUE INDEX IF NOT EXISTS users_email_lower_unique
ON users (LOWER(email));
`

// RunDirectoryMigration bootstraps the authentication directory schema.
// Firebase-style uids are opaque strings, hence text and not uuid.
func RunDirectoryMigration(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, directoryMigration)
	return err
}
