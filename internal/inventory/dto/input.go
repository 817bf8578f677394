package dto

import (
	"github.com/shoppilot/shoppilot-assistant/internal/model"
	"github.com/shoppilot/shoppilot-assistant/internal/product"
)

type AdjustStockInput struct {
	Identifier product.Identifier
	Op         model.StockOp
	Quantity   int
	Reason     string // Optional, surfaced to the movement sink only
}

type AdjustStockResult struct {
	Product  *model.Product `json:"product"`
	Before   int            `json:"before"`
	After    int            `json:"after"`
	Level    string         `json:"level"`
	Message  string         `json:"message"`
	Movement string         `json:"movement_id"`
}

type LowStockInput struct {
	Threshold         int  // <=0 uses the configured default
	IncludeOutOfStock bool
}

type LowStockReport struct {
	Threshold       int              `json:"threshold"`
	LowStock        []*model.Product `json:"low_stock"`
	OutOfStock      []*model.Product `json:"out_of_stock,omitempty"`
	LowStockCount   int              `json:"low_stock_count"`
	OutOfStockCount int              `json:"out_of_stock_count"`
	ValueAtRisk     float64          `json:"value_at_risk"`
}
