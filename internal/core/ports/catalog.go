// internal/core/ports/catalog.go
package ports

import (
	"context"

	"github.com/vegatek/stocktake/internal/core/domain"
)

// CatalogGateway defines the remote catalog port.
// This interface is implemented by the HTTP catalog adapter.
type CatalogGateway interface {
	// Depots fetches the full depot list. The caller replaces any cached
	// list wholesale on success.
	Depots(ctx context.Context) ([]domain.Depot, error)

	// ProductByBarcode resolves a product by its barcode. The barcode must
	// already be trimmed and non-empty.
	ProductByBarcode(ctx context.Context, barcode string) (*domain.Product, error)

	// SubmitCounts sends the whole count list as one batch. Callers must
	// not invoke it with an empty list.
	SubmitCounts(ctx context.Context, items []domain.CountItem) (*domain.SubmissionAck, error)
}
