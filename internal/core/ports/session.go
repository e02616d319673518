// internal/core/ports/session.go
package ports

import (
	"context"
	"io"

	"github.com/shopspring/decimal"

	"github.com/vegatek/stocktake/internal/core/domain"
)

// CountSession defines the application service port for a counting session.
// This interface is implemented by the application service.
type CountSession interface {
	// Start loads the persisted count list. Called exactly once per session.
	Start(ctx context.Context) error

	// RefreshDepots replaces the cached depot list and auto-selects the
	// first depot when none is selected yet.
	RefreshDepots(ctx context.Context) error
	SelectDepot(code string) error

	// Lookup resolves a barcode to the session's current product.
	Lookup(ctx context.Context, barcode string) (*domain.Product, error)

	// AddCount merges a count for the current product and selected depot
	// into the list, persists it and clears the current product.
	AddCount(ctx context.Context, quantityInput, note string) error

	// RemoveItem deletes one entry by list position and persists.
	RemoveItem(ctx context.Context, index int) error

	// Submit sends the whole list in one batch. On success the list is
	// cleared in memory and on disk; on failure it is left untouched.
	// Returns the confirmation message to show the user.
	Submit(ctx context.Context) (string, error)

	// ExportExcel writes the current list as an .xlsx workbook.
	ExportExcel(w io.Writer) error

	Items() []domain.CountItem
	Summary() SessionSummary
	CurrentProduct() *domain.Product
	SelectedDepot() *domain.Depot
	Depots() []domain.Depot
}

// SessionSummary holds display totals for the accumulated list.
type SessionSummary struct {
	Entries       int             `json:"entries"`
	TotalQuantity decimal.Decimal `json:"total_quantity"`
}
