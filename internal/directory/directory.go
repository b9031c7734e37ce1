package directory

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound indicates the directory has no entry for the given key.
var ErrNotFound = errors.New("directory: user not found")

// UserRecord is one entry in the authentication directory. The directory
// is the system of record for identity existence: a user exists exactly
// as long as their record does.
type UserRecord struct {
	UID       string
	Email     string
	CreatedAt time.Time
}

// Store defines the authority-store capability the deletion workflow
// consumes. Implementations must return ErrNotFound (possibly wrapped)
// when the target entry does not exist.
type Store interface {
	DeleteUser(ctx context.Context, uid string) error
	FindByEmail(ctx context.Context, email string) (*UserRecord, error)
}
