package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vegatek/stocktake/internal/core/domain"
)

func item(stock, depot string, qty float64) domain.CountItem {
	return domain.CountItem{
		StockCode: stock,
		StockName: stock + " name",
		Quantity:  decimal.NewFromFloat(qty),
		DepotName: depot,
		CountType: "1",
		Year:      2025,
		Month:     3,
	}
}

func TestMergeCount_AccumulatesSamePair(t *testing.T) {
	var list []domain.CountItem
	var err error

	list, err = domain.MergeCount(list, item("A1", "Main", 5))
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Quantity.Equal(decimal.NewFromInt(5)))

	list, err = domain.MergeCount(list, item("A1", "Main", 3))
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Quantity.Equal(decimal.NewFromInt(8)),
		"expected 8, got %s", list[0].Quantity)

	list, err = domain.MergeCount(list, item("B2", "Main", 2))
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "A1", list[0].StockCode)
	assert.Equal(t, "B2", list[1].StockCode)
	assert.True(t, list[1].Quantity.Equal(decimal.NewFromInt(2)))
}

func TestMergeCount_QuantitySumsOverManyMerges(t *testing.T) {
	var list []domain.CountItem
	var err error

	total := decimal.Zero
	for _, qty := range []float64{1.5, 2.25, 0.25, 10} {
		list, err = domain.MergeCount(list, item("A1", "Main", qty))
		require.NoError(t, err)
		total = total.Add(decimal.NewFromFloat(qty))
	}

	require.Len(t, list, 1)
	assert.True(t, list[0].Quantity.Equal(total),
		"expected %s, got %s", total, list[0].Quantity)
}

func TestMergeCount_DistinctPairsGetOwnEntries(t *testing.T) {
	var list []domain.CountItem
	var err error

	candidates := []domain.CountItem{
		item("A1", "Main", 1),
		item("A1", "Backroom", 1), // same stock, other depot
		item("B2", "Main", 1),
		item("B2", "Backroom", 1),
	}
	for _, c := range candidates {
		list, err = domain.MergeCount(list, c)
		require.NoError(t, err)
	}

	require.Len(t, list, 4)
	for i, c := range candidates {
		assert.Equal(t, c.StockCode, list[i].StockCode)
		assert.Equal(t, c.DepotName, list[i].DepotName)
	}
}

func TestMergeCount_MergePreservesPositionAndStamp(t *testing.T) {
	first := item("A1", "Main", 5)
	first.Year, first.Month = 2024, 12

	list, err := domain.MergeCount(nil, first)
	require.NoError(t, err)
	list, err = domain.MergeCount(list, item("B2", "Main", 1))
	require.NoError(t, err)

	later := item("A1", "Main", 3)
	later.Year, later.Month = 2025, 3
	list, err = domain.MergeCount(list, later)
	require.NoError(t, err)

	require.Len(t, list, 2)
	assert.Equal(t, "A1", list[0].StockCode, "merged entry keeps its original position")
	assert.Equal(t, 2024, list[0].Year, "merged entry keeps its first-seen stamp")
	assert.Equal(t, 12, list[0].Month)
}

func TestMergeCount_RejectsInvalidCandidates(t *testing.T) {
	tests := []struct {
		name      string
		candidate domain.CountItem
		wantErr   error
	}{
		{
			name:      "zero_quantity",
			candidate: item("A1", "Main", 0),
			wantErr:   domain.ErrInvalidQuantity,
		},
		{
			name: "negative_quantity",
			candidate: domain.CountItem{
				StockCode: "A1",
				DepotName: "Main",
				Quantity:  decimal.NewFromInt(-3),
			},
			wantErr: domain.ErrInvalidQuantity,
		},
		{
			name:      "missing_depot",
			candidate: item("A1", "", 5),
			wantErr:   domain.ErrNoDepotSelected,
		},
		{
			name:      "missing_stock_code",
			candidate: item("", "Main", 5),
			wantErr:   domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			existing := []domain.CountItem{item("X9", "Main", 7)}

			result, err := domain.MergeCount(existing, tt.candidate)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, domain.ErrValidation)
			require.Len(t, result, 1, "list must not be mutated")
			assert.True(t, result[0].Quantity.Equal(decimal.NewFromInt(7)))
		})
	}
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      string
		wantError bool
	}{
		{name: "integer", input: "5", want: "5"},
		{name: "decimal_point", input: "2.5", want: "2.5"},
		{name: "decimal_comma_normalized", input: "2,5", want: "2.5"},
		{name: "surrounding_whitespace", input: "  3,75\t", want: "3.75"},
		{name: "zero", input: "0", wantError: true},
		{name: "negative", input: "-1", wantError: true},
		{name: "empty", input: "", wantError: true},
		{name: "whitespace_only", input: "   ", wantError: true},
		{name: "not_a_number", input: "abc", wantError: true},
		{name: "two_commas", input: "1,2,3", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qty, err := domain.ParseQuantity(tt.input)

			if tt.wantError {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
				return
			}

			require.NoError(t, err)
			expected, perr := decimal.NewFromString(tt.want)
			require.NoError(t, perr)
			assert.True(t, qty.Equal(expected), "expected %s, got %s", expected, qty)
		})
	}
}

func TestNewCountItem_FreezesProjection(t *testing.T) {
	product := &domain.Product{
		Barcode:   "8690000000011",
		Name:      "Flour 1kg",
		StockCode: "FLR-001",
		Unit:      "ADET",
	}
	now := time.Date(2025, time.March, 14, 10, 30, 0, 0, time.UTC)

	entry := domain.NewCountItem(product, "Main Depot", decimal.NewFromInt(4), "pallet 3", "1", now)

	assert.Equal(t, "FLR-001", entry.StockCode)
	assert.Equal(t, "Flour 1kg", entry.StockName)
	assert.Equal(t, "Main Depot", entry.DepotName)
	assert.Equal(t, "pallet 3", entry.Note)
	assert.Equal(t, "1", entry.CountType)
	assert.Equal(t, 2025, entry.Year)
	assert.Equal(t, 3, entry.Month)

	// The entry is a snapshot: changing the product afterwards must not
	// affect it.
	product.Name = "renamed"
	assert.Equal(t, "Flour 1kg", entry.StockName)
}

func TestTotalQuantity(t *testing.T) {
	items := []domain.CountItem{
		item("A1", "Main", 1.5),
		item("B2", "Main", 2),
	}
	assert.True(t, domain.TotalQuantity(items).Equal(decimal.NewFromFloat(3.5)))
	assert.True(t, domain.TotalQuantity(nil).IsZero())
}
