package repository

import (
	"context"
	"strings"

	"github.com/shoppilot/shoppilot-assistant/internal/model"
	"github.com/shoppilot/shoppilot-assistant/internal/product"
	"github.com/shoppilot/shoppilot-assistant/internal/product/dto"
	"github.com/shoppilot/shoppilot-assistant/internal/store"
)

// memoryRepository adapts the shared in-memory store to the product
// repository contract. Filtering is a linear scan in insertion order.
type memoryRepository struct {
	store *store.Store
}

func NewMemoryRepository(s *store.Store) product.Repository {
	return &memoryRepository{store: s}
}

func (r *memoryRepository) Create(ctx context.Context, p *model.Product) error {
	r.store.InsertProduct(p)
	return nil
}

func (r *memoryRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	return r.store.GetProduct(id), nil
}

func (r *memoryRepository) FindFirstByName(ctx context.Context, fragment string) (*model.Product, error) {
	return r.store.FirstProductByName(fragment), nil
}

func (r *memoryRepository) FindBySKU(ctx context.Context, sku string) (*model.Product, error) {
	return r.store.ProductBySKU(sku), nil
}

func (r *memoryRepository) FindAll(ctx context.Context, filters *dto.ProductFilters) ([]*model.Product, error) {
	all := r.store.Products()
	if filters == nil {
		return all, nil
	}

	out := make([]*model.Product, 0, len(all))
	for _, p := range all {
		if matches(p, filters) {
			out = append(out, p)
		}
	}
	return out, nil
}

func matches(p *model.Product, f *dto.ProductFilters) bool {
	if f.Category != "" && !containsFold(p.Category, f.Category) {
		return false
	}
	if f.Collection != "" {
		if p.Collection == nil || !containsFold(*p.Collection, f.Collection) {
			return false
		}
	}
	if f.Tag != "" && !anyTagMatches(p.Tags, f.Tag) {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.InStock != nil && p.InStock() != *f.InStock {
		return false
	}
	if f.IsVisible != nil && p.IsVisible != *f.IsVisible {
		return false
	}
	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func anyTagMatches(tags []string, needle string) bool {
	for _, tag := range tags {
		if containsFold(tag, needle) {
			return true
		}
	}
	return false
}

func (r *memoryRepository) Update(ctx context.Context, p *model.Product) error {
	r.store.ReplaceProduct(p)
	return nil
}

func (r *memoryRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.store.DeleteProduct(id), nil
}

func (r *memoryRepository) IsSKUUnique(ctx context.Context, sku, excludeID string) (bool, error) {
	existing := r.store.ProductBySKU(sku)
	if existing == nil || existing.ID == excludeID {
		return true, nil
	}
	return false, nil
}

func (r *memoryRepository) IsNameUnique(ctx context.Context, name, excludeID string) (bool, error) {
	for _, p := range r.store.Products() {
		if p.ID != excludeID && strings.EqualFold(p.Name, name) {
			return false, nil
		}
	}
	return true, nil
}

func (r *memoryRepository) Categories(ctx context.Context) ([]string, error) {
	return r.store.Categories(), nil
}

func (r *memoryRepository) Collections(ctx context.Context) ([]string, error) {
	return r.store.Collections(), nil
}
