package repository

import (
	"context"
	"time"

	"github.com/shoppilot/shoppilot-assistant/internal/inventory"
	"github.com/shoppilot/shoppilot-assistant/internal/model"
	"github.com/shoppilot/shoppilot-assistant/internal/sales"
	"github.com/shoppilot/shoppilot-assistant/internal/store"
)

type memoryRepository struct {
	store *store.Store
}

func NewMemoryRepository(s *store.Store) sales.Repository {
	return &memoryRepository{store: s}
}

func (r *memoryRepository) Create(ctx context.Context, sale *model.Sale) (*inventory.Adjustment, error) {
	adj := r.store.AddSale(sale)
	if adj == nil {
		return nil, nil
	}
	return &inventory.Adjustment{
		Product: adj.Product,
		Before:  adj.Before,
		After:   adj.After,
	}, nil
}

func (r *memoryRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]*model.Sale, error) {
	return r.store.SalesByDateRange(start, end), nil
}

func (r *memoryRepository) FindAll(ctx context.Context) ([]*model.Sale, error) {
	return r.store.Sales(), nil
}
