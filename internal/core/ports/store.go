// internal/core/ports/store.go
package ports

import (
	"context"

	"github.com/vegatek/stocktake/internal/core/domain"
)

// CountStore defines the local persistence port for the accumulated count
// list. Implementations hold the JSON-serialized list under one well-known
// key in a key-value byte store.
//
// Adapters run either fail-open (load/save errors degrade silently to "no
// local data" and a nil error) or strict (errors propagate wrapped in
// domain.ErrPersistence).
type CountStore interface {
	// Load restores the persisted list. In fail-open mode an absent key or
	// corrupt bytes yield an empty list and no error.
	Load(ctx context.Context) ([]domain.CountItem, error)

	// Save serializes the full list and overwrites the stored bytes
	// unconditionally.
	Save(ctx context.Context, items []domain.CountItem) error
}
