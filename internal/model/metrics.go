package model

// StoreMetrics is a derived analytics snapshot; nothing in it is persisted.
type StoreMetrics struct {
	TotalSales          float64               `json:"total_sales"`
	TotalOrders         int                   `json:"total_orders"`
	AvgOrderValue       float64               `json:"avg_order_value"`
	TopProducts         []ProductRevenue      `json:"top_products"`
	LowStockAlerts      []LowStockAlert       `json:"low_stock_alerts"`
	RevenueByPeriod     RevenueByPeriod       `json:"revenue_by_period"`
	CategoryPerformance []CategoryPerformance `json:"category_performance"`
}

type ProductRevenue struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Revenue     float64 `json:"revenue"`
	Orders      int     `json:"orders"`
}

type LowStockAlert struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Stock     int    `json:"stock"`
}

// RevenueByPeriod buckets revenue relative to wall-clock now, independent of
// any caller-supplied query range.
type RevenueByPeriod struct {
	Daily   float64 `json:"daily"`   // today
	Weekly  float64 `json:"weekly"`  // calendar week starting Sunday
	Monthly float64 `json:"monthly"` // calendar month
}

type CategoryPerformance struct {
	Category string  `json:"category"`
	Revenue  float64 `json:"revenue"`
	Orders   int     `json:"orders"`
}
