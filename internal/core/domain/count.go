// internal/core/domain/count.go
package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Depot represents a warehouse location counts are recorded against.
// The list is replaced wholesale on every successful fetch.
type Depot struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// Product is a catalog item resolved by barcode. At most one product is
// "current" at a time, representing the latest successful lookup.
type Product struct {
	Barcode       string          `json:"barcode"`
	ID            int             `json:"id"`
	Name          string          `json:"name"`
	StockCode     string          `json:"stock_code"`
	Unit          string          `json:"unit"`
	Depot         string          `json:"depot"`
	Code1         string          `json:"code1,omitempty"`
	Code2         string          `json:"code2,omitempty"`
	Code3         string          `json:"code3,omitempty"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
}

// CountItem is the persisted unit of counting: a frozen projection of the
// product and depot values needed for submission. Later catalog changes never
// retroactively affect an accumulated entry. Identity for merge purposes is
// the (StockCode, DepotName) pair.
type CountItem struct {
	StockCode string          `json:"stock_code"`
	StockName string          `json:"stock_name"`
	Quantity  decimal.Decimal `json:"quantity"`
	DepotName string          `json:"depot_name"`
	Note      string          `json:"note,omitempty"`
	CountType string          `json:"count_type"`
	Year      int             `json:"year"`
	Month     int             `json:"month"`
}

// SubmissionAck is the remote system's answer to a batch submission.
type SubmissionAck struct {
	Accepted bool   `json:"accepted"`
	Message  string `json:"message,omitempty"`
}

// NewCountItem builds the frozen projection for a counted product. The
// year/month stamp marks when the (product, depot) pair was first counted.
func NewCountItem(p *Product, depotName string, qty decimal.Decimal, note, countType string, now time.Time) CountItem {
	return CountItem{
		StockCode: p.StockCode,
		StockName: p.Name,
		Quantity:  qty,
		DepotName: depotName,
		Note:      note,
		CountType: countType,
		Year:      now.Year(),
		Month:     int(now.Month()),
	}
}

// SameGroup reports whether two entries accumulate into one record.
func (c CountItem) SameGroup(other CountItem) bool {
	return c.StockCode == other.StockCode && c.DepotName == other.DepotName
}

// Validate performs domain validation on a count entry.
func (c *CountItem) Validate() error {
	if c.StockCode == "" {
		return fmt.Errorf("%w: stock code is required", ErrValidation)
	}
	if c.DepotName == "" {
		return ErrNoDepotSelected
	}
	if c.Quantity.Sign() <= 0 {
		return ErrInvalidQuantity
	}
	return nil
}

// MergeCount folds a candidate entry into the accumulated list. An existing
// entry with the same (stock code, depot name) has the candidate quantity
// added in place, preserving its position and original year/month stamp; an
// unseen pair is appended. An invalid candidate leaves the list untouched.
func MergeCount(items []CountItem, candidate CountItem) ([]CountItem, error) {
	if err := candidate.Validate(); err != nil {
		return items, err
	}
	for i := range items {
		if items[i].SameGroup(candidate) {
			items[i].Quantity = items[i].Quantity.Add(candidate.Quantity)
			return items, nil
		}
	}
	return append(items, candidate), nil
}

// ParseQuantity parses user quantity input. A decimal comma is normalized to
// a decimal point before parsing; the result must be strictly positive.
func ParseQuantity(input string) (decimal.Decimal, error) {
	s := strings.ReplaceAll(strings.TrimSpace(input), ",", ".")
	if s == "" {
		return decimal.Zero, ErrInvalidQuantity
	}
	qty, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidQuantity
	}
	if qty.Sign() <= 0 {
		return decimal.Zero, ErrInvalidQuantity
	}
	return qty, nil
}

// TotalQuantity sums the accumulated quantities across the whole list.
func TotalQuantity(items []CountItem) decimal.Decimal {
	total := decimal.Zero
	for i := range items {
		total = total.Add(items[i].Quantity)
	}
	return total
}
