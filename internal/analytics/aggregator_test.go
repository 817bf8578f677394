package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoppilot/shoppilot-assistant/internal/model"
)

// Wednesday 2026-08-19 15:00 UTC; the week containing it starts Sunday
// 2026-08-16, the month on 2026-08-01.
var testNow = time.Date(2026, 8, 19, 15, 0, 0, 0, time.UTC)

func newTestAggregator() *Aggregator {
	a := NewAggregator(10)
	a.Now = func() time.Time { return testNow }
	return a
}

func sale(id, productID string, qty int, total float64, ts time.Time) *model.Sale {
	return &model.Sale{
		ID:          id,
		ProductID:   productID,
		ProductName: "product " + productID,
		Quantity:    qty,
		UnitPrice:   total / float64(qty),
		TotalAmount: total,
		Timestamp:   ts,
	}
}

func catalogProduct(id, name, category string, stock int) *model.Product {
	return &model.Product{
		BaseModel: model.BaseModel{ID: id},
		Name:      name,
		Category:  category,
		Stock:     stock,
		Price:     10,
	}
}

func TestComputeMetricsEmptyInput(t *testing.T) {
	a := newTestAggregator()
	m := a.ComputeMetrics(nil, nil, nil)

	assert.Zero(t, m.TotalSales)
	assert.Zero(t, m.TotalOrders)
	assert.Zero(t, m.AvgOrderValue, "no divide-by-zero on empty input")
	assert.Empty(t, m.TopProducts)
	assert.Empty(t, m.CategoryPerformance)
	assert.Empty(t, m.LowStockAlerts)
}

func TestComputeMetricsTotals(t *testing.T) {
	a := newTestAggregator()
	sales := []*model.Sale{
		sale("s1", "p1", 1, 10.333, testNow),
		sale("s2", "p2", 2, 20.333, testNow),
	}
	m := a.ComputeMetrics(sales, sales, nil)

	assert.Equal(t, 2, m.TotalOrders)
	assert.Equal(t, 30.67, m.TotalSales, "totals round to cents")
	assert.Equal(t, 15.33, m.AvgOrderValue)
}

func TestTopProductsRankingAndTies(t *testing.T) {
	a := newTestAggregator()
	sales := []*model.Sale{
		sale("s1", "small", 1, 10, testNow),
		sale("s2", "tie-first", 1, 50, testNow),
		sale("s3", "tie-second", 1, 50, testNow),
		sale("s4", "big", 1, 40, testNow),
		sale("s5", "big", 1, 40, testNow),
	}
	m := a.ComputeMetrics(sales, sales, nil)

	require.Len(t, m.TopProducts, 4)
	assert.Equal(t, "big", m.TopProducts[0].ProductID)
	assert.Equal(t, 80.0, m.TopProducts[0].Revenue)
	assert.Equal(t, 2, m.TopProducts[0].Orders)
	assert.Equal(t, "tie-first", m.TopProducts[1].ProductID, "ties stay in encounter order")
	assert.Equal(t, "tie-second", m.TopProducts[2].ProductID)
	assert.Equal(t, "small", m.TopProducts[3].ProductID)
}

func TestTopProductsCapsAtFive(t *testing.T) {
	a := newTestAggregator()
	sales := make([]*model.Sale, 0, 7)
	for i := 0; i < 7; i++ {
		sales = append(sales, sale(string(rune('a'+i)), string(rune('A'+i)), 1, float64(100-i), testNow))
	}
	m := a.ComputeMetrics(sales, sales, nil)
	assert.Len(t, m.TopProducts, 5)
}

func TestRevenueByPeriodUsesFullLogAndWallClock(t *testing.T) {
	a := newTestAggregator()

	today := sale("today", "p1", 1, 100, testNow.Add(-2*time.Hour))
	monday := sale("monday", "p1", 1, 50, time.Date(2026, 8, 17, 9, 0, 0, 0, time.UTC))
	earlyMonth := sale("early", "p1", 1, 25, time.Date(2026, 8, 2, 9, 0, 0, 0, time.UTC))
	lastMonth := sale("july", "p1", 1, 10, time.Date(2026, 7, 20, 9, 0, 0, 0, time.UTC))
	full := []*model.Sale{today, monday, earlyMonth, lastMonth}

	// Window narrowed to a single old sale; rollups still see the full log.
	m := a.ComputeMetrics([]*model.Sale{lastMonth}, full, nil)

	assert.Equal(t, 100.0, m.RevenueByPeriod.Daily)
	assert.Equal(t, 150.0, m.RevenueByPeriod.Weekly, "week starts on Sunday")
	assert.Equal(t, 175.0, m.RevenueByPeriod.Monthly)
	assert.Equal(t, 10.0, m.TotalSales, "window totals stay scoped to the window")
}

func TestCategoryPerformanceUsesCurrentCategory(t *testing.T) {
	a := newTestAggregator()
	sales := []*model.Sale{
		sale("s1", "p1", 1, 100, testNow),
		sale("s2", "p2", 1, 60, testNow),
		sale("s3", "orphan", 1, 40, testNow),
	}
	// p1 was sold as clothing but has since been recategorized.
	products := []*model.Product{
		catalogProduct("p1", "Shirt", "Outlet", 5),
		catalogProduct("p2", "Mug", "Homeware", 5),
	}

	m := a.ComputeMetrics(sales, sales, products)
	require.Len(t, m.CategoryPerformance, 2, "orphaned sales are dropped")
	assert.Equal(t, "Outlet", m.CategoryPerformance[0].Category)
	assert.Equal(t, 100.0, m.CategoryPerformance[0].Revenue)
	assert.Equal(t, "Homeware", m.CategoryPerformance[1].Category)
}

func TestLowStockAlerts(t *testing.T) {
	a := newTestAggregator()
	products := []*model.Product{
		catalogProduct("p1", "Plenty", "X", 50),
		catalogProduct("p2", "Low", "X", 10),
		catalogProduct("p3", "Gone", "X", 0),
	}
	m := a.ComputeMetrics(nil, nil, products)

	require.Len(t, m.LowStockAlerts, 1, "alerts cover 0 < stock <= threshold")
	assert.Equal(t, "p2", m.LowStockAlerts[0].ProductID)
	assert.Equal(t, 10, m.LowStockAlerts[0].Stock)
}

func TestTopSellingByQuantity(t *testing.T) {
	a := newTestAggregator()
	sales := []*model.Sale{
		sale("s1", "A", 3, 30, testNow),
		sale("s2", "B", 5, 5, testNow),
		sale("s3", "C", 1, 100, testNow),
	}
	products := []*model.Product{
		catalogProduct("A", "Product A", "X", 5),
		catalogProduct("B", "Product B", "X", 5),
		catalogProduct("C", "Product C", "X", 5),
	}

	got := a.TopSelling(sales, products, 2)
	require.Len(t, got, 2)
	assert.Equal(t, "B", got[0].ID, "ranked by summed quantity, not revenue")
	assert.Equal(t, "A", got[1].ID)
}

func TestTopSellingDropsDeletedProducts(t *testing.T) {
	a := newTestAggregator()
	sales := []*model.Sale{
		sale("s1", "deleted", 10, 100, testNow),
		sale("s2", "A", 2, 20, testNow),
	}
	products := []*model.Product{catalogProduct("A", "Product A", "X", 5)}

	got := a.TopSelling(sales, products, 5)
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].ID)
}

func TestTopSellingAggregatesAcrossSales(t *testing.T) {
	a := newTestAggregator()
	sales := []*model.Sale{
		sale("s1", "A", 2, 20, testNow),
		sale("s2", "B", 3, 30, testNow),
		sale("s3", "A", 2, 20, testNow),
	}
	products := []*model.Product{
		catalogProduct("A", "Product A", "X", 5),
		catalogProduct("B", "Product B", "X", 5),
	}

	got := a.TopSelling(sales, products, 5)
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].ID, "quantities sum across the window")
}
