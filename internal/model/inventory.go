package model

import "time"

// StockOp is one of the three mutations applicable to a product's on-hand quantity.
type StockOp string

const (
	StockOpAdd      StockOp = "add"
	StockOpSubtract StockOp = "subtract"
	StockOpSet      StockOp = "set"
)

func ValidStockOp(op StockOp) bool {
	switch op {
	case StockOpAdd, StockOpSubtract, StockOpSet:
		return true
	}
	return false
}

// StockMovement describes a single applied stock mutation. Movements are an
// observability record offered to a MovementSink; they are not part of the
// stored data model.
type StockMovement struct {
	ID             string    `json:"id"`
	ProductID      string    `json:"product_id"`
	Op             StockOp   `json:"op"`
	QuantityChange int       `json:"quantity_change"`
	QuantityBefore int       `json:"quantity_before"`
	QuantityAfter  int       `json:"quantity_after"`
	Reason         string    `json:"reason"`
	ReferenceType  *string   `json:"reference_type"` // 'manual_adjustment', 'sale'
	ReferenceID    *string   `json:"reference_id"`
	CreatedAt      time.Time `json:"created_at"`
}
