package inventory

import "fmt"

// StockLevel classifies an on-hand quantity against a low-stock threshold.
type StockLevel string

const (
	LevelOutOfStock StockLevel = "out_of_stock"
	LevelLowStock   StockLevel = "low_stock"
	LevelNormal     StockLevel = "normal"
)

func ClassifyStock(stock, threshold int) StockLevel {
	switch {
	case stock == 0:
		return LevelOutOfStock
	case stock <= threshold:
		return LevelLowStock
	default:
		return LevelNormal
	}
}

// StatusMessage renders a human-readable description of a product's stock
// level after an operation. Presentation only; callers branch on the
// StockLevel, not on this text.
func StatusMessage(name string, stock, threshold int) string {
	switch ClassifyStock(stock, threshold) {
	case LevelOutOfStock:
		return fmt.Sprintf("%s is now out of stock", name)
	case LevelLowStock:
		return fmt.Sprintf("%s is running low: %d left (threshold %d)", name, stock, threshold)
	default:
		return fmt.Sprintf("%s has %d in stock", name, stock)
	}
}
