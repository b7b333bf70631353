package database

import "context"

// Scope restricts a query to one partition of a collection: the records whose
// Field equals Value. The zero Scope matches the whole collection, which is
// what top-level features use.
type Scope struct {
	Field string
	Value string
}

// Zero reports whether the scope matches everything.
func (s Scope) Zero() bool {
	return s.Field == ""
}

// Store is the document-store surface the collection protocol consumes. The
// implementation is an external collaborator; nothing here assumes a concrete
// engine beyond string ids and '/'-free collection names.
type Store interface {
	// Query decodes all records matching scope into dest (a pointer to a
	// slice), ordered ascending by orderField. Ties are resolved by the
	// store's native order. An empty scope result decodes an empty slice.
	Query(ctx context.Context, collection string, scope Scope, orderField string, dest any) error

	// Get decodes the record with the given id into dest. The boolean reports
	// presence; absence is not an error.
	Get(ctx context.Context, collection, id string, dest any) (bool, error)

	// Count returns the number of records matching scope.
	Count(ctx context.Context, collection string, scope Scope) (int64, error)

	// CountField returns the number of records whose field equals value,
	// excluding the record with excludeID when non-empty.
	CountField(ctx context.Context, collection, field, value, excludeID string) (int64, error)

	// Create persists doc and returns the assigned id.
	Create(ctx context.Context, collection string, doc any) (string, error)

	// Update replaces the mutable fields of the record with the given id.
	Update(ctx context.Context, collection, id string, doc any) error

	// Delete removes the record with the given id.
	Delete(ctx context.Context, collection, id string) error

	// Upsert writes doc under a fixed id, creating it when absent. Used for
	// singleton documents such as per-page settings.
	Upsert(ctx context.Context, collection, id string, doc any) error
}
