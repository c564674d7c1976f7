package store

import (
	"sync"

	"github.com/atharvakonge/investment-tracker/internal/models"
	"github.com/google/uuid"
)

// MemoryStore keeps both collections in maps guarded by one RWMutex.
// Scans walk records in insertion order so query results are stable.
// Used by the test suite and as the STORE=memory backend.
type MemoryStore struct {
	mu         sync.RWMutex
	stocks     map[string]models.StockPosition
	stockOrder []string
	assets     map[string]models.Asset
	assetOrder []string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		stocks: make(map[string]models.StockPosition),
		assets: make(map[string]models.Asset),
	}
}

func (m *MemoryStore) InsertStock(s models.StockPosition) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s.ID = uuid.NewString()
	m.stocks[s.ID] = s
	m.stockOrder = append(m.stockOrder, s.ID)
	return s.ID, nil
}

func (m *MemoryStore) GetStock(id string) (models.StockPosition, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.stocks[id]
	if !ok {
		return models.StockPosition{}, ErrNotFound
	}
	return s, nil
}

func (m *MemoryStore) PatchStock(id string, p models.StockPatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.stocks[id]
	if !ok {
		return ErrNotFound
	}
	p.Apply(&s)
	m.stocks[id] = s
	return nil
}

func (m *MemoryStore) DeleteStock(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.stocks[id]; !ok {
		return ErrNotFound
	}
	delete(m.stocks, id)
	m.stockOrder = removeID(m.stockOrder, id)
	return nil
}

func (m *MemoryStore) ScanStocks(keep func(models.StockPosition) bool) ([]models.StockPosition, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.StockPosition, 0, len(m.stockOrder))
	for _, id := range m.stockOrder {
		s := m.stocks[id]
		if keep == nil || keep(s) {
			out = append(out, s)
		}
	}
	return out, nil
}

// ApplyExit performs the partial-exit pair under one lock acquisition:
// no reader sees the exited sibling without the reduced original.
func (m *MemoryStore) ApplyExit(originalID string, remainingQuantity float64, exited models.StockPosition) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	orig, ok := m.stocks[originalID]
	if !ok {
		return ErrNotFound
	}
	exited.ID = uuid.NewString()
	m.stocks[exited.ID] = exited
	m.stockOrder = append(m.stockOrder, exited.ID)
	orig.Quantity = remainingQuantity
	m.stocks[originalID] = orig
	return nil
}

func (m *MemoryStore) InsertAsset(a models.Asset) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a.ID = uuid.NewString()
	m.assets[a.ID] = a
	m.assetOrder = append(m.assetOrder, a.ID)
	return a.ID, nil
}

func (m *MemoryStore) GetAsset(id string) (models.Asset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.assets[id]
	if !ok {
		return models.Asset{}, ErrNotFound
	}
	return a, nil
}

func (m *MemoryStore) PatchAsset(id string, p models.AssetPatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.assets[id]
	if !ok {
		return ErrNotFound
	}
	p.Apply(&a)
	m.assets[id] = a
	return nil
}

func (m *MemoryStore) DeleteAsset(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.assets[id]; !ok {
		return ErrNotFound
	}
	delete(m.assets, id)
	m.assetOrder = removeID(m.assetOrder, id)
	return nil
}

func (m *MemoryStore) ScanAssets(keep func(models.Asset) bool) ([]models.Asset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Asset, 0, len(m.assetOrder))
	for _, id := range m.assetOrder {
		a := m.assets[id]
		if keep == nil || keep(a) {
			out = append(out, a)
		}
	}
	return out, nil
}

func removeID(order []string, id string) []string {
	for i, v := range order {
		if v == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}
