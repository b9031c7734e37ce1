package directory

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/CreativeMB/Server/internal/db"
)

// PostgresStore is the canonical directory implementation.
type PostgresStore struct {
	db *db.DB
}

func NewPostgresStore(db *db.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) DeleteUser(ctx context.Context, uid string) error {

	res, err := s.db.ExecContext(ctx, `
		DELETE FROM users
		WHERE uid = $1
	`, uid)

	if err != nil {
		return fmt.Errorf("directory: delete user %s: %w", uid, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("directory: delete user %s: %w", uid, err)
	}

	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, uid)
	}

	return nil
}

func (s *PostgresStore) FindByEmail(ctx context.Context, email string) (*UserRecord, error) {

	var rec UserRecord

	err := s.db.QueryRowContext(ctx, `
		SELECT uid, email, created_at
		FROM users
		WHERE LOWER(email) = LOWER($1)
	`, email).Scan(&rec.UID, &rec.Email, &rec.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, email)
	}

	if err != nil {
		return nil, fmt.Errorf("directory: find by email: %w", err)
	}

	return &rec, nil
}
