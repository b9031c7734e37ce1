package db

import "database/sql"

// DB wraps the raw connection pool so store packages depend on a single
// internal type instead of database/sql directly.
type DB struct {
	*sql.DB
}
