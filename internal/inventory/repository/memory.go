package repository

import (
	"context"

	"github.com/shoppilot/shoppilot-assistant/internal/inventory"
	"github.com/shoppilot/shoppilot-assistant/internal/model"
	"github.com/shoppilot/shoppilot-assistant/internal/store"
)

type memoryRepository struct {
	store *store.Store
}

func NewMemoryRepository(s *store.Store) inventory.Repository {
	return &memoryRepository{store: s}
}

func (r *memoryRepository) Adjust(ctx context.Context, productID string, op model.StockOp, qty int) (*inventory.Adjustment, error) {
	adj, ok := r.store.AdjustStock(productID, op, qty)
	if !ok {
		return nil, nil
	}
	return &inventory.Adjustment{
		Product: adj.Product,
		Before:  adj.Before,
		After:   adj.After,
	}, nil
}
