package store

import (
	"errors"

	"github.com/atharvakonge/investment-tracker/internal/models"
)

// ErrNotFound is returned when an id does not resolve to a record.
var ErrNotFound = errors.New("record not found")

// Store is the document store the engine runs against. Two flat
// collections, ids assigned on insert, patches change only the
// supplied fields, scans filter in record order.
//
// ApplyExit is the one compound mutation: it inserts the exited
// sibling row and patches the original's quantity as a single atomic
// unit, so a concurrent reader never observes a half-applied split.
type Store interface {
	InsertStock(s models.StockPosition) (string, error)
	GetStock(id string) (models.StockPosition, error)
	PatchStock(id string, p models.StockPatch) error
	DeleteStock(id string) error
	ScanStocks(keep func(models.StockPosition) bool) ([]models.StockPosition, error)
	ApplyExit(originalID string, remainingQuantity float64, exited models.StockPosition) error

	InsertAsset(a models.Asset) (string, error)
	GetAsset(id string) (models.Asset, error)
	PatchAsset(id string, p models.AssetPatch) error
	DeleteAsset(id string) error
	ScanAssets(keep func(models.Asset) bool) ([]models.Asset, error)
}
