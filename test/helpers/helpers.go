// test/helpers/helpers.go
package helpers

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/vegatek/stocktake/internal/core/domain"
)

// TestRedis represents a test Redis instance
type TestRedis struct {
	Client *redis.Client
	Server *miniredis.Miniredis
}

// TestLogger returns a test logger
func TestLogger() *slog.Logger {
	if testing.Verbose() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// SetupTestRedis starts an in-process Redis for store tests
func SetupTestRedis(t *testing.T) *TestRedis {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return &TestRedis{Client: client, Server: mr}
}

// FixedTime is the stamp CreateTestCountItem and tests use for year/month.
var FixedTime = time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC)

// CreateTestProduct creates a product with sensible defaults,
// optionally customized by override functions
func CreateTestProduct(overrides ...func(*domain.Product)) *domain.Product {
	p := &domain.Product{
		Barcode:       "8690000000011",
		ID:            42,
		Name:          "Test Flour 1kg",
		StockCode:     "FLR-001",
		Unit:          "ADET",
		Depot:         "Main Depot",
		PurchasePrice: decimal.NewFromFloat(12.50),
	}
	for _, override := range overrides {
		override(p)
	}
	return p
}

// CreateTestCountItem creates a count entry with sensible defaults,
// optionally customized by override functions
func CreateTestCountItem(overrides ...func(*domain.CountItem)) domain.CountItem {
	item := domain.CountItem{
		StockCode: "FLR-001",
		StockName: "Test Flour 1kg",
		Quantity:  decimal.NewFromInt(5),
		DepotName: "Main Depot",
		CountType: "1",
		Year:      FixedTime.Year(),
		Month:     int(FixedTime.Month()),
	}
	for _, override := range overrides {
		override(&item)
	}
	return item
}

// CreateTestCountItems creates n distinct count entries
func CreateTestCountItems(n int) []domain.CountItem {
	items := make([]domain.CountItem, 0, n)
	for i := 0; i < n; i++ {
		idx := i
		items = append(items, CreateTestCountItem(func(item *domain.CountItem) {
			item.StockCode = item.StockCode + "-" + string(rune('A'+idx))
			item.Quantity = decimal.NewFromInt(int64(idx + 1))
		}))
	}
	return items
}

// CreateTestDepots returns a small depot list
func CreateTestDepots() []domain.Depot {
	return []domain.Depot{
		{ID: 1, Name: "Main Depot", Code: "MAIN"},
		{ID: 2, Name: "Backroom", Code: "BACK"},
	}
}
