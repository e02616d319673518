// internal/adapters/store/badger.go
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"github.com/vegatek/stocktake/internal/core/domain"
	"github.com/vegatek/stocktake/internal/core/ports"
)

// DefaultKey is the well-known key the serialized count list lives under.
const DefaultKey = "stocktake:counts"

// BadgerStore persists the count list in an embedded Badger database. This
// is the default backend: the client keeps working with no services around.
type BadgerStore struct {
	db     *badger.DB
	key    []byte
	strict bool
	logger *slog.Logger
}

// Statically assert that *BadgerStore implements the CountStore port.
var _ ports.CountStore = (*BadgerStore)(nil)

// OpenBadger opens (or creates) a Badger database at path and wraps it in a
// store. Strict switches from fail-open to fail-loud error handling.
func OpenBadger(path string, strict bool, logger *slog.Logger) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open badger at %s: %v", domain.ErrPersistence, path, err)
	}
	return NewBadgerStore(db, DefaultKey, strict, logger), nil
}

// NewBadgerStore wraps an already-open Badger database.
func NewBadgerStore(db *badger.DB, key string, strict bool, logger *slog.Logger) *BadgerStore {
	return &BadgerStore{
		db:     db,
		key:    []byte(key),
		strict: strict,
		logger: logger.With(slog.String("component", "badger_store")),
	}
}

// Load restores the persisted list. An absent key or corrupt bytes degrade
// to an empty list unless the store is strict.
func (s *BadgerStore) Load(ctx context.Context) ([]domain.CountItem, error) {
	var raw []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(s.key)
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return []domain.CountItem{}, nil
	}
	if err != nil {
		return s.degradeLoad(ctx, "badger read failed", err)
	}

	var items []domain.CountItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return s.degradeLoad(ctx, "stored count list is corrupt", err)
	}
	if items == nil {
		items = []domain.CountItem{}
	}
	return items, nil
}

// Save serializes the full list and overwrites the stored bytes.
func (s *BadgerStore) Save(ctx context.Context, items []domain.CountItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return s.degradeSave(ctx, "failed to encode count list", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(s.key, data)
	})
	if err != nil {
		return s.degradeSave(ctx, "badger write failed", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}

func (s *BadgerStore) degradeLoad(ctx context.Context, msg string, err error) ([]domain.CountItem, error) {
	if s.strict {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrPersistence, msg, err)
	}
	s.logger.WarnContext(ctx, msg+", starting with empty count list",
		slog.String("error", err.Error()))
	return []domain.CountItem{}, nil
}

func (s *BadgerStore) degradeSave(ctx context.Context, msg string, err error) error {
	if s.strict {
		return fmt.Errorf("%w: %s: %v", domain.ErrPersistence, msg, err)
	}
	s.logger.WarnContext(ctx, msg+", count list not persisted",
		slog.String("error", err.Error()))
	return nil
}
