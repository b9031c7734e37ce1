package docs

import "context"

// Doc is a loosely typed document, enough for the deletion workflow to
// identify records without modeling every collection's schema.
type Doc struct {
	Collection string
	ID         string
	Fields     map[string]any
}

// Ref points at a single document.
type Ref struct {
	Collection string
	ID         string
}

// Store defines the document-store capability. GetDoc returns (nil, nil)
// for absent documents and DeleteDoc of an absent document is a no-op.
// BatchDelete removes all referenced documents as one operation: either
// the whole batch is applied or an error is returned.
type Store interface {
	GetDoc(ctx context.Context, collection, id string) (*Doc, error)
	DeleteDoc(ctx context.Context, collection, id string) error
	Query(ctx context.Context, collection, field, value string) ([]Doc, error)
	BatchDelete(ctx context.Context, refs []Ref) error
}
