// Package analytics computes derived sales metrics. Everything here is a
// pure function of the sale log and the current product catalog; nothing is
// mutated or cached. Revenue period rollups are always computed against the
// full sale log relative to wall-clock now, even when the caller asked for
// metrics over a narrower window.
package analytics

import (
	"sort"
	"time"

	"github.com/shoppilot/shoppilot-assistant/internal/model"
	"github.com/shoppilot/shoppilot-assistant/internal/money"
)

const topProductCount = 5

type Aggregator struct {
	// Now is the clock used for period rollups; tests pin it.
	Now               func() time.Time
	LowStockThreshold int
}

func NewAggregator(lowStockThreshold int) *Aggregator {
	if lowStockThreshold <= 0 {
		lowStockThreshold = 10
	}
	return &Aggregator{
		Now:               time.Now,
		LowStockThreshold: lowStockThreshold,
	}
}

// ComputeMetrics builds a StoreMetrics snapshot. window is the sale set the
// caller selected (possibly date-filtered); full is the entire sale log,
// which alone feeds the today/this-week/this-month rollups. Empty input
// degrades to zeroed metrics, never an error.
func (a *Aggregator) ComputeMetrics(window, full []*model.Sale, products []*model.Product) *model.StoreMetrics {
	metrics := &model.StoreMetrics{
		TotalOrders:         len(window),
		TopProducts:         a.topProductsByRevenue(window),
		LowStockAlerts:      a.lowStockAlerts(products),
		RevenueByPeriod:     a.revenueByPeriod(full),
		CategoryPerformance: a.categoryPerformance(window, products),
	}

	var total float64
	for _, s := range window {
		total += s.TotalAmount
	}
	metrics.TotalSales = money.Round(total)
	if metrics.TotalOrders > 0 {
		metrics.AvgOrderValue = money.Round(total / float64(metrics.TotalOrders))
	}
	return metrics
}

// topProductsByRevenue groups the window by product id, sums revenue, and
// returns the top five. The sort is stable on encounter order, which pins
// tie-breaking for equal revenue.
func (a *Aggregator) topProductsByRevenue(sales []*model.Sale) []model.ProductRevenue {
	groups := make(map[string]*model.ProductRevenue)
	order := make([]string, 0)

	for _, s := range sales {
		g, ok := groups[s.ProductID]
		if !ok {
			g = &model.ProductRevenue{ProductID: s.ProductID, ProductName: s.ProductName}
			groups[s.ProductID] = g
			order = append(order, s.ProductID)
		}
		g.Revenue += s.TotalAmount
		g.Orders++
	}

	ranked := make([]model.ProductRevenue, 0, len(order))
	for _, id := range order {
		g := groups[id]
		g.Revenue = money.Round(g.Revenue)
		ranked = append(ranked, *g)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Revenue > ranked[j].Revenue
	})

	if len(ranked) > topProductCount {
		ranked = ranked[:topProductCount]
	}
	return ranked
}

// revenueByPeriod re-filters the full sale log three times against the
// current wall clock: today, the calendar week starting Sunday, and the
// calendar month.
func (a *Aggregator) revenueByPeriod(full []*model.Sale) model.RevenueByPeriod {
	now := a.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekStart := dayStart.AddDate(0, 0, -int(now.Weekday()))
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var daily, weekly, monthly float64
	for _, s := range full {
		if !s.Timestamp.Before(dayStart) {
			daily += s.TotalAmount
		}
		if !s.Timestamp.Before(weekStart) {
			weekly += s.TotalAmount
		}
		if !s.Timestamp.Before(monthStart) {
			monthly += s.TotalAmount
		}
	}
	return model.RevenueByPeriod{
		Daily:   money.Round(daily),
		Weekly:  money.Round(weekly),
		Monthly: money.Round(monthly),
	}
}

// categoryPerformance groups window revenue by the product's *current*
// category, looked up at aggregation time. A product recategorized after a
// sale moves that sale's revenue with it; sales whose product no longer
// resolves are dropped.
func (a *Aggregator) categoryPerformance(window []*model.Sale, products []*model.Product) []model.CategoryPerformance {
	byID := productIndex(products)

	groups := make(map[string]*model.CategoryPerformance)
	order := make([]string, 0)
	for _, s := range window {
		p, ok := byID[s.ProductID]
		if !ok {
			continue
		}
		g, seen := groups[p.Category]
		if !seen {
			g = &model.CategoryPerformance{Category: p.Category}
			groups[p.Category] = g
			order = append(order, p.Category)
		}
		g.Revenue += s.TotalAmount
		g.Orders++
	}

	ranked := make([]model.CategoryPerformance, 0, len(order))
	for _, cat := range order {
		g := groups[cat]
		g.Revenue = money.Round(g.Revenue)
		ranked = append(ranked, *g)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Revenue > ranked[j].Revenue
	})
	return ranked
}

func (a *Aggregator) lowStockAlerts(products []*model.Product) []model.LowStockAlert {
	alerts := make([]model.LowStockAlert, 0)
	for _, p := range products {
		if p.Stock > 0 && p.Stock <= a.LowStockThreshold {
			alerts = append(alerts, model.LowStockAlert{
				ProductID: p.ID,
				Name:      p.Name,
				Stock:     p.Stock,
			})
		}
	}
	return alerts
}

// TopSelling ranks products by summed sale quantity, descending, stable on
// encounter order, and resolves ids back to current product records. Ids
// that no longer resolve (product deleted after the sale) are silently
// dropped before the limit is applied.
func (a *Aggregator) TopSelling(sales []*model.Sale, products []*model.Product, limit int) []*model.Product {
	if limit <= 0 {
		limit = topProductCount
	}

	quantities := make(map[string]int)
	order := make([]string, 0)
	for _, s := range sales {
		if _, ok := quantities[s.ProductID]; !ok {
			order = append(order, s.ProductID)
		}
		quantities[s.ProductID] += s.Quantity
	}
	sort.SliceStable(order, func(i, j int) bool {
		return quantities[order[i]] > quantities[order[j]]
	})

	byID := productIndex(products)
	out := make([]*model.Product, 0, limit)
	for _, id := range order {
		p, ok := byID[id]
		if !ok {
			continue
		}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out
}

func productIndex(products []*model.Product) map[string]*model.Product {
	byID := make(map[string]*model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return byID
}
