package dto

import (
	"time"

	"github.com/shoppilot/shoppilot-assistant/internal/model"
	"github.com/shoppilot/shoppilot-assistant/internal/product"
)

type RecordSaleInput struct {
	Identifier      product.Identifier
	Quantity        int
	UnitPrice       *float64 // nil uses the product's current price
	CustomerEmail   string
	CustomerName    *string
	ShippingAddress *string
	Status          model.SaleStatus // empty defaults to pending
	PaymentMethod   string
	Timestamp       *time.Time // nil stamps now; seeding backdates
}

// AnalyticsInput selects the sale window. Nil bounds mean the full log.
type AnalyticsInput struct {
	Start *time.Time
	End   *time.Time
}

type TopSellingInput struct {
	Limit int // <=0 defaults to 5
	Start *time.Time
	End   *time.Time
}
