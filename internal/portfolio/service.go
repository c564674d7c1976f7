package portfolio

import (
	"fmt"
	"math"
	"time"

	"github.com/atharvakonge/investment-tracker/internal/models"
	"github.com/atharvakonge/investment-tracker/internal/store"
)

const dateLayout = "2006-01-02"

// Service is the portfolio engine. It holds no state of its own -
// every operation is a fresh read-modify-write against the store.
type Service struct {
	store store.Store
}

// NewService creates an engine over the given store.
func NewService(s store.Store) *Service {
	return &Service{store: s}
}

// AddStock opens a new active position and returns its id.
func (s *Service) AddStock(req models.AddStockRequest) (string, error) {
	if req.Name == "" {
		return "", validationErr("name", "must not be empty")
	}
	if err := checkPositive("quantity", req.Quantity); err != nil {
		return "", err
	}
	if err := checkPositive("buy_price", req.BuyPrice); err != nil {
		return "", err
	}
	if err := checkDate("buy_date", req.BuyDate); err != nil {
		return "", err
	}

	return s.store.InsertStock(models.StockPosition{
		Name:     req.Name,
		Quantity: req.Quantity,
		BuyPrice: req.BuyPrice,
		BuyDate:  req.BuyDate,
		IsActive: true,
	})
}

// UpdateStock patches only the supplied fields on a position, active
// or exited. No dependent values are recomputed.
func (s *Service) UpdateStock(id string, req models.UpdateStockRequest) error {
	if req.Quantity != nil {
		if err := checkPositive("quantity", *req.Quantity); err != nil {
			return err
		}
	}
	if req.BuyPrice != nil {
		if err := checkPositive("buy_price", *req.BuyPrice); err != nil {
			return err
		}
	}
	if req.BuyDate != nil {
		if err := checkDate("buy_date", *req.BuyDate); err != nil {
			return err
		}
	}
	if req.Name != nil && *req.Name == "" {
		return validationErr("name", "must not be empty")
	}

	return s.store.PatchStock(id, models.StockPatch{
		Name:     req.Name,
		Quantity: req.Quantity,
		BuyPrice: req.BuyPrice,
		BuyDate:  req.BuyDate,
	})
}

// DeleteStock removes a position unconditionally. Siblings created by
// a partial exit are independent rows and are not touched.
func (s *Service) DeleteStock(id string) error {
	return s.store.DeleteStock(id)
}

// ExitStock closes all or part of a position. An exit quantity equal
// to the position's full quantity is a full exit: the row itself is
// flipped to exited. A smaller quantity splits the position: a new
// exited row is inserted for the sold shares and the original keeps
// the remainder, still active. Exiting more shares than the position
// holds is rejected.
func (s *Service) ExitStock(id string, req models.ExitStockRequest) error {
	if err := checkPositive("exit_price", req.ExitPrice); err != nil {
		return err
	}
	if err := checkDate("exit_date", req.ExitDate); err != nil {
		return err
	}
	if req.ExitQuantity != nil {
		if err := checkPositive("exit_quantity", *req.ExitQuantity); err != nil {
			return err
		}
	}

	stock, err := s.store.GetStock(id)
	if err != nil {
		return err
	}
	if !stock.IsActive {
		return validationErr("id", "position is already exited")
	}

	requested := stock.Quantity
	if req.ExitQuantity != nil {
		requested = *req.ExitQuantity
	}
	if requested > stock.Quantity {
		return validationErr("exit_quantity",
			fmt.Sprintf("cannot exit %g shares, position holds %g", requested, stock.Quantity))
	}

	if requested == stock.Quantity {
		// Full exit: flip this row in place.
		inactive := false
		return s.store.PatchStock(id, models.StockPatch{
			IsActive:     &inactive,
			ExitPrice:    &req.ExitPrice,
			ExitDate:     &req.ExitDate,
			ExitQuantity: &requested,
		})
	}

	// Partial exit: insert the exited sibling and reduce the original,
	// as one atomic store mutation.
	exited := models.StockPosition{
		Name:         stock.Name,
		Quantity:     requested,
		BuyPrice:     stock.BuyPrice,
		BuyDate:      stock.BuyDate,
		IsActive:     false,
		ExitPrice:    &req.ExitPrice,
		ExitDate:     &req.ExitDate,
		ExitQuantity: &requested,
	}
	return s.store.ApplyExit(id, stock.Quantity-requested, exited)
}

// GetActiveStocks returns every position still held.
func (s *Service) GetActiveStocks() ([]models.StockPosition, error) {
	return s.store.ScanStocks(func(st models.StockPosition) bool { return st.IsActive })
}

// GetExitedStocks returns every realized (sold) position row.
func (s *Service) GetExitedStocks() ([]models.StockPosition, error) {
	return s.store.ScanStocks(func(st models.StockPosition) bool { return !st.IsActive })
}

// GetAllStocks returns both active and exited rows.
func (s *Service) GetAllStocks() ([]models.StockPosition, error) {
	return s.store.ScanStocks(nil)
}

func checkPositive(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return validationErr(field, "must be a finite number")
	}
	if v <= 0 {
		return validationErr(field, "must be greater than zero")
	}
	return nil
}

func checkDate(field, v string) error {
	if _, err := time.Parse(dateLayout, v); err != nil {
		return validationErr(field, "must be a YYYY-MM-DD date")
	}
	return nil
}
