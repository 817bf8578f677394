package inventory

import (
	"context"

	"github.com/shoppilot/shoppilot-assistant/internal/model"
)

// Adjustment reports the outcome of one applied stock mutation.
type Adjustment struct {
	Product *model.Product
	Before  int
	After   int
}

// Repository applies stock operations. Adjust returns nil for an unknown
// product id; over-subtraction clamps at zero instead of failing.
type Repository interface {
	Adjust(ctx context.Context, productID string, op model.StockOp, qty int) (*Adjustment, error)
}
