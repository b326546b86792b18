package repositories

import (
	"context"
	"errors"
)

// ErrNoDocument is returned by Read when nothing has been persisted yet.
// It is the normal first-run state, not a failure.
var ErrNoDocument = errors.New("no recipe document persisted")

// DocumentStore defines the byte-stream resource the recipe catalog is saved to.
// Write replaces the whole document; there are no partial or appending writes.
type DocumentStore interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
}
