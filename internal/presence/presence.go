package presence

import (
	"context"
	"time"
)

// Record is one connected-user node in the realtime store. The workflow
// only ever reads the back-reference; the remaining fields are written
// by the client that registers the connection.
type Record struct {
	UserID      string    `json:"userId"` // back-reference to the directory uid
	Email       string    `json:"email,omitempty"`
	ConnectedAt time.Time `json:"connectedAt,omitempty"`
}

// Entry pairs a node key with its record, as returned by ListAll.
type Entry struct {
	Key    string
	Record Record
}

// Store defines the path-addressed key-value capability. Get returns
// (nil, nil) for absent nodes; Remove of an absent node is a no-op.
type Store interface {
	Get(ctx context.Context, path string) (*Record, error)
	Remove(ctx context.Context, path string) error
	ListAll(ctx context.Context, collection string) ([]Entry, error)
}

// Path joins a collection and a node key into a store path.
func Path(collection, key string) string {
	return collection + "/" + key
}
