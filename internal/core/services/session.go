// internal/core/services/session.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/vegatek/stocktake/internal/core/domain"
	"github.com/vegatek/stocktake/internal/core/ports"
)

// DefaultCountType tags submitted entries when no count type is configured.
const DefaultCountType = "1"

// defaultSubmitMessage is shown when the server acknowledges without a message.
const defaultSubmitMessage = "count list submitted"

// SessionOptions tune session behavior.
type SessionOptions struct {
	// CountType is the classification tag stamped on every new entry.
	CountType string
	// Now supplies the year/month stamp for new entries. Defaults to time.Now.
	Now func() time.Time
}

// CountSession drives one stock-counting session: depot selection, barcode
// lookup, count accumulation, local persistence and batch submission. All
// mutating operations are serialized through user actions; the mutex only
// guards the in-flight submission flag and the list against misuse.
type CountSession struct {
	gateway ports.CatalogGateway
	store   ports.CountStore
	logger  *slog.Logger
	opts    SessionOptions

	mu         sync.Mutex
	depots     []domain.Depot
	selected   *domain.Depot
	current    *domain.Product
	items      []domain.CountItem
	submitting bool
}

// Statically assert that *CountSession implements the CountSession port.
var _ ports.CountSession = (*CountSession)(nil)

// NewCountSession creates a new counting session service.
func NewCountSession(gateway ports.CatalogGateway, store ports.CountStore, logger *slog.Logger, opts SessionOptions) *CountSession {
	if opts.CountType == "" {
		opts.CountType = DefaultCountType
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &CountSession{
		gateway: gateway,
		store:   store,
		logger:  logger.With(slog.String("service", "count_session")),
		opts:    opts,
	}
}

// Start restores the persisted count list. Invoked once at session start.
func (s *CountSession) Start(ctx context.Context) error {
	items, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load count list: %w", err)
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "session started",
		slog.Int("restored_entries", len(items)))
	return nil
}

// RefreshDepots replaces the cached depot list wholesale. A held selection
// survives only if it still appears in the fresh list; otherwise the first
// depot becomes the selection.
func (s *CountSession) RefreshDepots(ctx context.Context) error {
	depots, err := s.gateway.Depots(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch depots: %w", err)
	}

	s.mu.Lock()
	s.depots = depots
	if s.selected != nil && !containsDepot(depots, s.selected.Code) {
		s.selected = nil
	}
	if s.selected == nil && len(depots) > 0 {
		first := depots[0]
		s.selected = &first
	}
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "depot list refreshed",
		slog.Int("count", len(depots)))
	return nil
}

// SelectDepot picks a depot from the cached list by its short code.
func (s *CountSession) SelectDepot(code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range s.depots {
		if d.Code == code {
			depot := d
			s.selected = &depot
			return nil
		}
	}
	return fmt.Errorf("%w: unknown depot code %q", domain.ErrValidation, code)
}

// Lookup resolves a barcode against the catalog and makes the result the
// session's current product. A depot must be selected first.
func (s *CountSession) Lookup(ctx context.Context, barcode string) (*domain.Product, error) {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return nil, domain.ErrInvalidBarcode
	}

	s.mu.Lock()
	depot := s.selected
	s.mu.Unlock()
	if depot == nil {
		return nil, domain.ErrNoDepotSelected
	}

	product, err := s.gateway.ProductByBarcode(ctx, barcode)
	if err != nil {
		return nil, fmt.Errorf("failed to look up barcode %s: %w", barcode, err)
	}

	s.mu.Lock()
	s.current = product
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "product resolved",
		slog.String("barcode", barcode),
		slog.String("stock_code", product.StockCode))
	return product, nil
}

// AddCount merges a count for the current product and selected depot into
// the accumulated list and persists the result. On success the current
// product is cleared so the next scan starts fresh.
func (s *CountSession) AddCount(ctx context.Context, quantityInput, note string) error {
	s.mu.Lock()
	product := s.current
	depot := s.selected
	s.mu.Unlock()

	if product == nil {
		return domain.ErrNoProductSelected
	}
	if depot == nil {
		return domain.ErrNoDepotSelected
	}

	qty, err := domain.ParseQuantity(quantityInput)
	if err != nil {
		return err
	}

	candidate := domain.NewCountItem(product, depot.Name, qty, note, s.opts.CountType, s.opts.Now())

	s.mu.Lock()
	merged, err := domain.MergeCount(s.items, candidate)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.items = merged
	s.current = nil
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	if err := s.store.Save(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to persist count list: %w", err)
	}

	s.logger.InfoContext(ctx, "count accumulated",
		slog.String("stock_code", candidate.StockCode),
		slog.String("depot", candidate.DepotName),
		slog.String("quantity", qty.String()),
		slog.Int("entries", len(snapshot)))
	return nil
}

// RemoveItem deletes a single entry by its list position and persists.
func (s *CountSession) RemoveItem(ctx context.Context, index int) error {
	s.mu.Lock()
	if index < 0 || index >= len(s.items) {
		s.mu.Unlock()
		return fmt.Errorf("%w: no entry at position %d", domain.ErrValidation, index)
	}
	removed := s.items[index]
	s.items = append(s.items[:index], s.items[index+1:]...)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	if err := s.store.Save(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to persist count list: %w", err)
	}

	s.logger.InfoContext(ctx, "count entry removed",
		slog.String("stock_code", removed.StockCode),
		slog.String("depot", removed.DepotName))
	return nil
}

// Submit sends the entire list in one all-or-nothing batch. A second trigger
// while a submission is in flight is rejected without touching the list. On
// acknowledged success the list is cleared in memory and on disk; on any
// failure it is left completely untouched.
func (s *CountSession) Submit(ctx context.Context) (string, error) {
	s.mu.Lock()
	if s.submitting {
		s.mu.Unlock()
		return "", domain.ErrSubmissionInFlight
	}
	if len(s.items) == 0 {
		s.mu.Unlock()
		return "", domain.ErrEmptySubmission
	}
	batch := s.snapshotLocked()
	s.submitting = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.submitting = false
		s.mu.Unlock()
	}()

	ack, err := s.gateway.SubmitCounts(ctx, batch)
	if err != nil {
		s.logger.WarnContext(ctx, "submission failed, count list kept",
			slog.Int("entries", len(batch)),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("failed to submit count list: %w", err)
	}

	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()

	if err := s.store.Save(ctx, []domain.CountItem{}); err != nil {
		return "", fmt.Errorf("failed to clear persisted count list: %w", err)
	}

	msg := ack.Message
	if msg == "" {
		msg = defaultSubmitMessage
	}

	s.logger.InfoContext(ctx, "count list submitted",
		slog.Int("entries", len(batch)),
		slog.String("server_message", ack.Message))
	return msg, nil
}

// Items returns a copy of the accumulated list in insertion order.
func (s *CountSession) Items() []domain.CountItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Summary returns display totals for the accumulated list.
func (s *CountSession) Summary() ports.SessionSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ports.SessionSummary{
		Entries:       len(s.items),
		TotalQuantity: domain.TotalQuantity(s.items),
	}
}

// CurrentProduct returns the most recent successful lookup, or nil.
func (s *CountSession) CurrentProduct() *domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// SelectedDepot returns the selected depot, or nil.
func (s *CountSession) SelectedDepot() *domain.Depot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// Depots returns the cached depot list.
func (s *CountSession) Depots() []domain.Depot {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Depot, len(s.depots))
	copy(out, s.depots)
	return out
}

func containsDepot(depots []domain.Depot, code string) bool {
	for _, d := range depots {
		if d.Code == code {
			return true
		}
	}
	return false
}

func (s *CountSession) snapshotLocked() []domain.CountItem {
	out := make([]domain.CountItem, len(s.items))
	copy(out, s.items)
	return out
}
