package crud

import (
	"context"
	"errors"
)

// ErrNotFound is returned by stores when no document matches the id.
var ErrNotFound = errors.New("not found")

// Store executes classified CRUD operations. Implementations own retries,
// timeouts, and id semantics. Identifiers arrive as FormatResourceID
// output: a numeric-looking id is an int64, anything else a string.
//
// FindAll consumes the Skip/Limit pair left on the query by
// Pagination.Apply. A query with a nil Limit is an unpaginated read; what
// that returns is the implementation's policy.
type Store interface {
	FindAll(ctx context.Context, q *ListQuery) ([]H, error)
	FindOne(ctx context.Context, id any) (H, error)
	Insert(ctx context.Context, doc any) (any, error)
	Update(ctx context.Context, id any, doc any) error
	Delete(ctx context.Context, id any) error
}
