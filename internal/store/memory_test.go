package store

import (
	"errors"
	"testing"

	"github.com/atharvakonge/investment-tracker/internal/models"
)

func TestMemoryStore_InsertAssignsUniqueIDs(t *testing.T) {
	m := NewMemoryStore()

	id1, err := m.InsertStock(models.StockPosition{Name: "A", Quantity: 1, BuyPrice: 10, BuyDate: "2024-01-01", IsActive: true})
	if err != nil {
		t.Fatalf("Failed to insert: %v", err)
	}
	id2, err := m.InsertStock(models.StockPosition{Name: "B", Quantity: 2, BuyPrice: 20, BuyDate: "2024-01-02", IsActive: true})
	if err != nil {
		t.Fatalf("Failed to insert: %v", err)
	}

	if id1 == "" || id2 == "" || id1 == id2 {
		t.Errorf("Expected distinct non-empty ids, got %q and %q", id1, id2)
	}

	got, err := m.GetStock(id1)
	if err != nil {
		t.Fatalf("Failed to get: %v", err)
	}
	if got.Name != "A" || got.ID != id1 {
		t.Errorf("Unexpected record: %+v", got)
	}
}

func TestMemoryStore_GetMissing(t *testing.T) {
	m := NewMemoryStore()

	if _, err := m.GetStock("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	if _, err := m.GetAsset("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStore_PatchChangesOnlySuppliedFields(t *testing.T) {
	m := NewMemoryStore()
	id, _ := m.InsertStock(models.StockPosition{Name: "A", Quantity: 10, BuyPrice: 100, BuyDate: "2024-01-01", IsActive: true})

	q := 7.0
	if err := m.PatchStock(id, models.StockPatch{Quantity: &q}); err != nil {
		t.Fatalf("Failed to patch: %v", err)
	}

	got, _ := m.GetStock(id)
	if got.Quantity != 7 {
		t.Errorf("Expected patched quantity 7, got %g", got.Quantity)
	}
	if got.Name != "A" || got.BuyPrice != 100 || !got.IsActive {
		t.Errorf("Expected other fields unchanged, got %+v", got)
	}
}

func TestMemoryStore_ScanKeepsInsertionOrder(t *testing.T) {
	m := NewMemoryStore()

	names := []string{"first", "second", "third"}
	for _, n := range names {
		if _, err := m.InsertStock(models.StockPosition{Name: n, Quantity: 1, BuyPrice: 1, BuyDate: "2024-01-01", IsActive: true}); err != nil {
			t.Fatalf("Failed to insert: %v", err)
		}
	}

	all, err := m.ScanStocks(nil)
	if err != nil {
		t.Fatalf("Failed to scan: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(all))
	}
	for i, n := range names {
		if all[i].Name != n {
			t.Errorf("Expected row %d to be %s, got %s", i, n, all[i].Name)
		}
	}
}

func TestMemoryStore_ScanFilter(t *testing.T) {
	m := NewMemoryStore()

	m.InsertStock(models.StockPosition{Name: "live", Quantity: 1, BuyPrice: 1, BuyDate: "2024-01-01", IsActive: true})
	m.InsertStock(models.StockPosition{Name: "dead", Quantity: 1, BuyPrice: 1, BuyDate: "2024-01-01", IsActive: false})

	active, err := m.ScanStocks(func(s models.StockPosition) bool { return s.IsActive })
	if err != nil {
		t.Fatalf("Failed to scan: %v", err)
	}
	if len(active) != 1 || active[0].Name != "live" {
		t.Errorf("Expected only the active row, got %+v", active)
	}
}

func TestMemoryStore_ApplyExit(t *testing.T) {
	m := NewMemoryStore()
	id, _ := m.InsertStock(models.StockPosition{Name: "A", Quantity: 100, BuyPrice: 50, BuyDate: "2024-01-01", IsActive: true})

	price := 60.0
	date := "2024-06-01"
	qty := 40.0
	err := m.ApplyExit(id, 60, models.StockPosition{
		Name: "A", Quantity: 40, BuyPrice: 50, BuyDate: "2024-01-01",
		IsActive: false, ExitPrice: &price, ExitDate: &date, ExitQuantity: &qty,
	})
	if err != nil {
		t.Fatalf("Failed to apply exit: %v", err)
	}

	orig, _ := m.GetStock(id)
	if orig.Quantity != 60 || !orig.IsActive {
		t.Errorf("Expected original reduced to 60 and still active, got %+v", orig)
	}

	all, _ := m.ScanStocks(nil)
	if len(all) != 2 {
		t.Fatalf("Expected 2 rows after split, got %d", len(all))
	}
	sibling := all[1]
	if sibling.IsActive || sibling.Quantity != 40 || sibling.ExitQuantity == nil || *sibling.ExitQuantity != 40 {
		t.Errorf("Unexpected sibling: %+v", sibling)
	}
}

func TestMemoryStore_ApplyExitMissingOriginal(t *testing.T) {
	m := NewMemoryStore()

	err := m.ApplyExit("nope", 1, models.StockPosition{Name: "X", Quantity: 1, BuyPrice: 1, BuyDate: "2024-01-01"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}

	all, _ := m.ScanStocks(nil)
	if len(all) != 0 {
		t.Errorf("Expected no rows after failed exit, got %d", len(all))
	}
}

func TestMemoryStore_DeleteRemovesFromScans(t *testing.T) {
	m := NewMemoryStore()

	id, _ := m.InsertAsset(models.Asset{Type: models.AssetFD, Name: "FD", InvestedAmount: 100})
	m.InsertAsset(models.Asset{Type: models.AssetBonds, Name: "Bond", InvestedAmount: 200})

	if err := m.DeleteAsset(id); err != nil {
		t.Fatalf("Failed to delete: %v", err)
	}

	assets, _ := m.ScanAssets(nil)
	if len(assets) != 1 || assets[0].Name != "Bond" {
		t.Errorf("Expected only the bond to remain, got %+v", assets)
	}

	if err := m.DeleteAsset(id); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound on double delete, got %v", err)
	}
}
