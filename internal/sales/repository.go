package sales

import (
	"context"
	"errors"
	"time"

	"github.com/shoppilot/shoppilot-assistant/internal/inventory"
	"github.com/shoppilot/shoppilot-assistant/internal/model"
)

var (
	ErrInvalidRange = errors.New("invalid date range")
	ErrInvalidSale  = errors.New("invalid sale input")
)

// Repository owns the append-only sale log. Create also subtracts the sold
// quantity from the referenced product as part of the same logical step; the
// returned adjustment is nil when the product id is unknown, and the sale is
// appended regardless.
type Repository interface {
	Create(ctx context.Context, sale *model.Sale) (*inventory.Adjustment, error)
	FindByDateRange(ctx context.Context, start, end time.Time) ([]*model.Sale, error)
	FindAll(ctx context.Context) ([]*model.Sale, error)
}
