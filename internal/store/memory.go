// Package store holds the authoritative in-memory state of the shop: the
// product catalog, the append-only sale log, and the category/collection
// tracking sets. A single Store instance is constructed at startup and shared
// by every repository, the same way the service would share one database
// handle. All state is guarded by one RWMutex; the composite operations
// (stock adjustment, sale append with stock decrement) each run inside a
// single critical section so concurrent callers cannot observe lost updates.
package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shoppilot/shoppilot-assistant/internal/model"
)

type Store struct {
	mu           sync.RWMutex
	products     map[string]*model.Product
	productOrder []string // insertion order, drives first-match-by-name
	sales        []*model.Sale
	categories   map[string]struct{}
	collections  map[string]struct{}
}

// StockAdjustment reports the outcome of a single stock mutation.
type StockAdjustment struct {
	Product *model.Product
	Before  int
	After   int
}

// Snapshot is a full copy of the store state, used by export/import and the
// seed tooling. Categories and collections are carried explicitly because the
// tracking sets grow monotonically and may contain entries no current product
// references.
type Snapshot struct {
	Products    []*model.Product `json:"products"`
	Sales       []*model.Sale    `json:"sales"`
	Categories  []string         `json:"categories"`
	Collections []string         `json:"collections"`
}

func NewStore() *Store {
	return &Store{
		products:    make(map[string]*model.Product),
		sales:       make([]*model.Sale, 0),
		categories:  make(map[string]struct{}),
		collections: make(map[string]struct{}),
	}
}

// InsertProduct stores a fully-populated product and registers its category
// and collection in the tracking sets. The caller owns id and timestamp
// generation.
func (s *Store) InsertProduct(p *model.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := cloneProduct(p)
	s.products[cp.ID] = cp
	s.productOrder = append(s.productOrder, cp.ID)
	s.trackLocked(cp)
}

// ReplaceProduct overwrites an existing product record. It returns false if
// the id is unknown. Tracking sets are re-registered but never pruned.
func (s *Store) ReplaceProduct(p *model.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[p.ID]; !ok {
		return false
	}
	cp := cloneProduct(p)
	s.products[cp.ID] = cp
	s.trackLocked(cp)
	return true
}

// GetProduct returns a copy of the product, or nil if the id is unknown.
func (s *Store) GetProduct(id string) *model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil
	}
	return cloneProduct(p)
}

// FirstProductByName returns the first product, in insertion order, whose
// name contains fragment case-insensitively. Multiple matches silently
// resolve to the first; callers depend on this.
func (s *Store) FirstProductByName(fragment string) *model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(fragment)
	for _, id := range s.productOrder {
		p := s.products[id]
		if strings.Contains(strings.ToLower(p.Name), needle) {
			return cloneProduct(p)
		}
	}
	return nil
}

// ProductBySKU returns the product with an exact, case-sensitive SKU match.
func (s *Store) ProductBySKU(sku string) *model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.productOrder {
		p := s.products[id]
		if p.SKU != nil && *p.SKU == sku {
			return cloneProduct(p)
		}
	}
	return nil
}

// Products returns copies of all products in insertion order.
func (s *Store) Products() []*model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.Product, 0, len(s.productOrder))
	for _, id := range s.productOrder {
		out = append(out, cloneProduct(s.products[id]))
	}
	return out
}

// DeleteProduct removes a product by id and reports whether it existed. The
// category and collection tracking sets are deliberately left untouched.
func (s *Store) DeleteProduct(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return false
	}
	delete(s.products, id)
	for i, pid := range s.productOrder {
		if pid == id {
			s.productOrder = append(s.productOrder[:i], s.productOrder[i+1:]...)
			break
		}
	}
	return true
}

// AdjustStock applies a stock operation to one product inside a single
// critical section. Subtract and set floor at zero; subtract past zero clamps
// silently rather than failing. A fresh UpdatedAt is stamped on every applied
// operation. The boolean is false only when the product id is unknown.
func (s *Store) AdjustStock(id string, op model.StockOp, qty int) (StockAdjustment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.adjustStockLocked(id, op, qty)
}

func (s *Store) adjustStockLocked(id string, op model.StockOp, qty int) (StockAdjustment, bool) {
	p, ok := s.products[id]
	if !ok {
		return StockAdjustment{}, false
	}

	before := p.Stock
	switch op {
	case model.StockOpAdd:
		p.Stock = before + qty
	case model.StockOpSubtract:
		p.Stock = max(0, before-qty)
	case model.StockOpSet:
		p.Stock = max(0, qty)
	default:
		return StockAdjustment{}, false
	}
	p.UpdatedAt = time.Now()

	return StockAdjustment{Product: cloneProduct(p), Before: before, After: p.Stock}, true
}

// AddSale appends a sale to the log and, in the same critical section,
// subtracts the sold quantity from the referenced product's stock. The
// decrement is a silent no-op when the product no longer exists; the sale is
// recorded either way. The returned adjustment is nil for unknown products.
func (s *Store) AddSale(sale *model.Sale) *StockAdjustment {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *sale
	s.sales = append(s.sales, &cp)

	adj, ok := s.adjustStockLocked(sale.ProductID, model.StockOpSubtract, sale.Quantity)
	if !ok {
		return nil
	}
	return &adj
}

// Sales returns the full sale log in insertion order.
func (s *Store) Sales() []*model.Sale {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneSales(s.sales)
}

// SalesByDateRange filters the sale log by timestamp, inclusive on both
// bounds, preserving insertion order.
func (s *Store) SalesByDateRange(start, end time.Time) []*model.Sale {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.Sale, 0)
	for _, sale := range s.sales {
		if !sale.Timestamp.Before(start) && !sale.Timestamp.After(end) {
			cp := *sale
			out = append(out, &cp)
		}
	}
	return out
}

// Categories returns the tracked category names, sorted. Entries persist even
// after the last product in a category is removed.
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedKeys(s.categories)
}

// Collections returns the tracked collection names, sorted.
func (s *Store) Collections() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedKeys(s.collections)
}

// Export produces a full snapshot of the current state.
func (s *Store) Export() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]*model.Product, 0, len(s.productOrder))
	for _, id := range s.productOrder {
		products = append(products, cloneProduct(s.products[id]))
	}
	return &Snapshot{
		Products:    products,
		Sales:       cloneSales(s.sales),
		Categories:  sortedKeys(s.categories),
		Collections: sortedKeys(s.collections),
	}
}

// Import clears the store and reloads it from a snapshot. There are no merge
// semantics; this is a full replace used by seeding and tests.
func (s *Store) Import(snap *Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resetLocked()
	for _, p := range snap.Products {
		cp := cloneProduct(p)
		s.products[cp.ID] = cp
		s.productOrder = append(s.productOrder, cp.ID)
		s.trackLocked(cp)
	}
	s.sales = cloneSales(snap.Sales)
	for _, c := range snap.Categories {
		s.categories[c] = struct{}{}
	}
	for _, c := range snap.Collections {
		s.collections[c] = struct{}{}
	}
}

// Reset drops all products, sales, and tracking sets.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

func (s *Store) resetLocked() {
	s.products = make(map[string]*model.Product)
	s.productOrder = nil
	s.sales = make([]*model.Sale, 0)
	s.categories = make(map[string]struct{})
	s.collections = make(map[string]struct{})
}

func (s *Store) trackLocked(p *model.Product) {
	if p.Category != "" {
		s.categories[p.Category] = struct{}{}
	}
	if p.Collection != nil && *p.Collection != "" {
		s.collections[*p.Collection] = struct{}{}
	}
}

// cloneProduct copies a product deeply enough that callers cannot mutate
// stored state through returned slices or pointers.
func cloneProduct(p *model.Product) *model.Product {
	cp := *p
	if p.Tags != nil {
		cp.Tags = append([]string(nil), p.Tags...)
	}
	if p.Images != nil {
		cp.Images = append([]string(nil), p.Images...)
	}
	if p.Collection != nil {
		v := *p.Collection
		cp.Collection = &v
	}
	if p.SKU != nil {
		v := *p.SKU
		cp.SKU = &v
	}
	if p.Weight != nil {
		v := *p.Weight
		cp.Weight = &v
	}
	if p.Dimensions != nil {
		v := *p.Dimensions
		cp.Dimensions = &v
	}
	return &cp
}

func cloneSales(sales []*model.Sale) []*model.Sale {
	out := make([]*model.Sale, 0, len(sales))
	for _, sale := range sales {
		cp := *sale
		out = append(out, &cp)
	}
	return out
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
