// internal/adapters/scanner/reader.go
package scanner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/vegatek/stocktake/internal/core/domain"
	"github.com/vegatek/stocktake/internal/core/ports"
)

// LineScanner reads decoded barcodes as lines from an io.Reader. Serial and
// HID barcode scanners present as line-oriented input, and the same path
// serves manual entry. Each Scan call is one activation and yields at most
// one code; the caller re-activates by calling Scan again.
type LineScanner struct {
	reader *bufio.Reader
}

// Statically assert that *LineScanner implements the BarcodeScanner port.
var _ ports.BarcodeScanner = (*LineScanner)(nil)

// NewLineScanner creates a scanner over r. An existing *bufio.Reader is
// used as-is so the scanner can share buffered input with other readers of
// the same stream.
func NewLineScanner(r io.Reader) *LineScanner {
	if br, ok := r.(*bufio.Reader); ok {
		return &LineScanner{reader: br}
	}
	return &LineScanner{reader: bufio.NewReader(r)}
}

// Scan blocks for the next line and returns it trimmed. An empty line is
// rejected; io.EOF is returned unchanged when the input is exhausted.
func (s *LineScanner) Scan(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	line, err := s.reader.ReadString('\n')
	if err != nil && line == "" {
		if err == io.EOF {
			return "", io.EOF
		}
		return "", fmt.Errorf("scanner read failed: %w", err)
	}

	code := strings.TrimSpace(line)
	if code == "" {
		return "", domain.ErrInvalidBarcode
	}
	return code, nil
}
