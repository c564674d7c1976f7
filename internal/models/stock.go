package models

// StockPosition represents one row in the stocks collection.
// A position that was partially exited is represented by two rows:
// the original row with reduced quantity (still active) and a new
// exited row carrying the sold portion. The rows are independent —
// there is no back-reference between them.
type StockPosition struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	BuyPrice float64 `json:"buy_price"`
	BuyDate  string  `json:"buy_date"` // YYYY-MM-DD
	IsActive bool    `json:"is_active"`

	// Set only when IsActive is false.
	ExitPrice    *float64 `json:"exit_price,omitempty"`
	ExitDate     *string  `json:"exit_date,omitempty"`
	ExitQuantity *float64 `json:"exit_quantity,omitempty"`
}

// ExitedQuantity returns the share count this row represents as sold.
// Legacy exited rows may lack ExitQuantity; fall back to Quantity.
func (s StockPosition) ExitedQuantity() float64 {
	if s.ExitQuantity != nil {
		return *s.ExitQuantity
	}
	return s.Quantity
}

// ExitedPrice returns the exit price, or 0 for malformed rows.
func (s StockPosition) ExitedPrice() float64 {
	if s.ExitPrice != nil {
		return *s.ExitPrice
	}
	return 0
}

// StockPatch updates only the fields that are non-nil.
type StockPatch struct {
	Name         *string  `json:"name,omitempty"`
	Quantity     *float64 `json:"quantity,omitempty"`
	BuyPrice     *float64 `json:"buy_price,omitempty"`
	BuyDate      *string  `json:"buy_date,omitempty"`
	IsActive     *bool    `json:"is_active,omitempty"`
	ExitPrice    *float64 `json:"exit_price,omitempty"`
	ExitDate     *string  `json:"exit_date,omitempty"`
	ExitQuantity *float64 `json:"exit_quantity,omitempty"`
}

// Apply copies the supplied fields onto the record.
func (p StockPatch) Apply(s *StockPosition) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Quantity != nil {
		s.Quantity = *p.Quantity
	}
	if p.BuyPrice != nil {
		s.BuyPrice = *p.BuyPrice
	}
	if p.BuyDate != nil {
		s.BuyDate = *p.BuyDate
	}
	if p.IsActive != nil {
		s.IsActive = *p.IsActive
	}
	if p.ExitPrice != nil {
		s.ExitPrice = p.ExitPrice
	}
	if p.ExitDate != nil {
		s.ExitDate = p.ExitDate
	}
	if p.ExitQuantity != nil {
		s.ExitQuantity = p.ExitQuantity
	}
}

// AddStockRequest - what the client sends to open a position
type AddStockRequest struct {
	Name     string  `json:"name" binding:"required"`
	Quantity float64 `json:"quantity" binding:"required,gt=0"`
	BuyPrice float64 `json:"buy_price" binding:"required,gt=0"`
	BuyDate  string  `json:"buy_date" binding:"required"`
}

// UpdateStockRequest - partial edit of an existing position
type UpdateStockRequest struct {
	Name     *string  `json:"name"`
	Quantity *float64 `json:"quantity"`
	BuyPrice *float64 `json:"buy_price"`
	BuyDate  *string  `json:"buy_date"`
}

// ExitStockRequest - full or partial exit of a position.
// ExitQuantity omitted means "sell everything".
type ExitStockRequest struct {
	ExitPrice    float64  `json:"exit_price" binding:"required,gt=0"`
	ExitDate     string   `json:"exit_date" binding:"required"`
	ExitQuantity *float64 `json:"exit_quantity"`
}
