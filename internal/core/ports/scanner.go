// internal/core/ports/scanner.go
package ports

import "context"

// BarcodeScanner is the input collaborator producing decoded barcodes.
// One activation yields at most one code; the caller re-activates the
// scanner for every subsequent scan.
type BarcodeScanner interface {
	Scan(ctx context.Context) (string, error)
}
