package user

import (
	"context"
	"errors"
	"strings"

	"github.com/CreativeMB/Server/internal/directory"
	"github.com/CreativeMB/Server/internal/presence"
)

// KeyScheme says how connected-user nodes are keyed in the presence
// store. Both schemes have been in production; which one applies is a
// property of the deployed data, so it is configuration, not code.
type KeyScheme string

const (
	SchemeEmailKey KeyScheme = "email" // node key is the normalized address
	SchemeUIDKey   KeyScheme = "uid"   // node key is the directory uid
)

// ConnectedCollection is the presence collection holding one node per
// currently connected user.
const ConnectedCollection = "usuarios_conectados"

// ErrNoMatch indicates resolution found no record for the given key.
var ErrNoMatch = errors.New("user: no matching record")

// NormalizeEmail maps an email address into the presence-store key
// alphabet: '.' and '@' are not valid in node keys and both become '_'.
// The mapping is lossy (a.b@c.com and a_b@c.com share a key); it is
// kept as-is for compatibility with nodes already stored under it.
func NormalizeEmail(email string) string {
	return strings.NewReplacer(".", "_", "@", "_").Replace(email)
}

// Resolver turns an email address into a directory uid and locates the
// presence node for a known uid, under either key scheme.
type Resolver struct {
	scheme    KeyScheme
	directory directory.Store
	presence  presence.Store
}

func NewResolver(scheme KeyScheme, dir directory.Store, pres presence.Store) *Resolver {
	if scheme != SchemeEmailKey {
		scheme = SchemeUIDKey
	}
	return &Resolver{
		scheme:    scheme,
		directory: dir,
		presence:  pres,
	}
}

// ResolveEmail returns the uid behind an email address plus the presence
// node key for that user. Under the email scheme the presence node is
// the index: no node means the user cannot be resolved. Under the uid
// scheme the directory itself answers.
func (r *Resolver) ResolveEmail(ctx context.Context, email string) (uid, nodeKey string, err error) {

	if r.scheme == SchemeEmailKey {
		key := NormalizeEmail(email)

		rec, err := r.presence.Get(ctx, presence.Path(ConnectedCollection, key))
		if err != nil {
			return "", "", err
		}
		if rec == nil {
			return "", "", ErrNoMatch
		}

		return rec.UserID, key, nil
	}

	rec, err := r.directory.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			return "", "", ErrNoMatch
		}
		return "", "", err
	}

	return rec.UID, rec.UID, nil
}

// NodeKey returns the presence node key for a known uid. Under the
// email scheme the store is keyed by something the uid cannot derive,
// so this scans the whole collection; acceptable for a set of currently
// connected users, a limitation beyond that.
func (r *Resolver) NodeKey(ctx context.Context, uid string) (string, error) {

	if r.scheme == SchemeUIDKey {
		return uid, nil
	}

	entries, err := r.presence.ListAll(ctx, ConnectedCollection)
	if err != nil {
		return "", err
	}

	for _, e := range entries {
		if e.Record.UserID == uid {
			return e.Key, nil
		}
	}

	return "", ErrNoMatch
}
