package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/deep-computers/dc-orders/internal/domain"
)

type ledger struct {
	Orders map[string]domain.ArchivedOrder `json:"orders"`
}

// Store is the local order ledger. Every assembled order is recorded here
// with its delivery status so fallback orders can be reconciled against
// manual follow-ups. It is not the source of truth for anything else.
type Store struct {
	mu   sync.RWMutex
	path string
	data ledger
}

func NewStore(baseDir string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	store := &Store{path: filepath.Join(baseDir, "orders.json")}
	if err := store.Load(); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = ledger{Orders: map[string]domain.ArchivedOrder{}}

	file, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return s.saveLocked()
	}
	if err != nil {
		return fmt.Errorf("open ledger file: %w", err)
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&s.data); err != nil {
		if errors.Is(err, io.EOF) {
			return s.saveLocked()
		}
		return fmt.Errorf("decode ledger file: %w", err)
	}

	if s.data.Orders == nil {
		s.data.Orders = map[string]domain.ArchivedOrder{}
	}
	return nil
}

// Record archives an order with its delivery status.
func (s *Store) Record(rec domain.OrderRecord, deliveryStatus string) (domain.ArchivedOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data.Orders == nil {
		s.data.Orders = map[string]domain.ArchivedOrder{}
	}

	archived := domain.ArchivedOrder{
		OrderRecord:    rec,
		DeliveryStatus: deliveryStatus,
		ArchivedAt:     time.Now().Unix(),
	}
	s.data.Orders[rec.OrderID] = archived

	if err := s.saveLocked(); err != nil {
		return domain.ArchivedOrder{}, err
	}
	return archived, nil
}

// List returns archived orders, newest first.
func (s *Store) List() []domain.ArchivedOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]domain.ArchivedOrder, 0, len(s.data.Orders))
	for _, ord := range s.data.Orders {
		orders = append(orders, ord)
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].ArchivedAt > orders[j].ArchivedAt
	})
	return orders
}

func (s *Store) Get(orderID string) (domain.ArchivedOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ord, ok := s.data.Orders[orderID]
	if !ok {
		return domain.ArchivedOrder{}, fmt.Errorf("order %s not found", orderID)
	}
	return ord, nil
}

func (s *Store) saveLocked() error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), "orders-*.json")
	if err != nil {
		return fmt.Errorf("create temp ledger: %w", err)
	}

	encoder := json.NewEncoder(tmp)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(s.data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("encode ledger: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp ledger: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace ledger file: %w", err)
	}

	return nil
}
