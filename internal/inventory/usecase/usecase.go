package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shoppilot/shoppilot-assistant/internal/inventory"
	"github.com/shoppilot/shoppilot-assistant/internal/inventory/dto"
	"github.com/shoppilot/shoppilot-assistant/internal/model"
	"github.com/shoppilot/shoppilot-assistant/internal/money"
	"github.com/shoppilot/shoppilot-assistant/internal/product"
	productdto "github.com/shoppilot/shoppilot-assistant/internal/product/dto"
	"go.uber.org/zap"
)

const referenceManualAdjustment = "manual_adjustment"

type inventoryUseCase struct {
	repo         inventory.Repository
	products     product.Repository
	sink         inventory.MovementSink
	logger       *zap.Logger
	lowThreshold int
}

func NewInventoryUseCase(repo inventory.Repository, products product.Repository, sink inventory.MovementSink, logger *zap.Logger, lowStockThreshold int) inventory.UseCase {
	if lowStockThreshold <= 0 {
		lowStockThreshold = 10
	}
	return &inventoryUseCase{
		repo:         repo,
		products:     products,
		sink:         sink,
		logger:       logger,
		lowThreshold: lowStockThreshold,
	}
}

// AdjustStock resolves the product, applies one of add/subtract/set, and
// offers the resulting movement to the sink. Subtract and set clamp at zero;
// an unknown product is the only failure beyond input validation.
func (uc *inventoryUseCase) AdjustStock(ctx context.Context, input *dto.AdjustStockInput) (*dto.AdjustStockResult, error) {
	if !model.ValidStockOp(input.Op) {
		return nil, fmt.Errorf("%w: %q", inventory.ErrInvalidOperation, input.Op)
	}
	if input.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity cannot be negative", inventory.ErrInvalidOperation)
	}

	p, err := uc.resolve(ctx, input.Identifier)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: %s", product.ErrNotFound, input.Identifier)
	}

	adj, err := uc.repo.Adjust(ctx, p.ID, input.Op, input.Quantity)
	if err != nil {
		return nil, err
	}
	if adj == nil {
		// Deleted between resolution and adjustment
		return nil, fmt.Errorf("%w: %s", product.ErrNotFound, input.Identifier)
	}

	refType := referenceManualAdjustment
	movement := &model.StockMovement{
		ID:             uuid.New().String(),
		ProductID:      adj.Product.ID,
		Op:             input.Op,
		QuantityChange: adj.After - adj.Before,
		QuantityBefore: adj.Before,
		QuantityAfter:  adj.After,
		Reason:         input.Reason,
		ReferenceType:  &refType,
		CreatedAt:      time.Now(),
	}
	uc.sink.Record(ctx, movement)

	uc.logger.Info("stock adjusted",
		zap.String("product_id", adj.Product.ID),
		zap.String("op", string(input.Op)),
		zap.Int("before", adj.Before),
		zap.Int("after", adj.After))

	return &dto.AdjustStockResult{
		Product:  adj.Product,
		Before:   adj.Before,
		After:    adj.After,
		Level:    string(inventory.ClassifyStock(adj.After, uc.lowThreshold)),
		Message:  inventory.StatusMessage(adj.Product.Name, adj.After, uc.lowThreshold),
		Movement: movement.ID,
	}, nil
}

func (uc *inventoryUseCase) resolve(ctx context.Context, ident product.Identifier) (*model.Product, error) {
	switch ident.Kind {
	case product.ByID:
		return uc.products.FindByID(ctx, ident.Value)
	case product.ByName:
		return uc.products.FindFirstByName(ctx, ident.Value)
	case product.BySKU:
		return uc.products.FindBySKU(ctx, ident.Value)
	}
	return nil, fmt.Errorf("%w: %q", product.ErrInvalidIdentifierType, ident.Kind)
}

// LowStockReport merges the low-stock band (0 < stock <= threshold) with,
// optionally, the out-of-stock set, and totals the inventory value at risk.
func (uc *inventoryUseCase) LowStockReport(ctx context.Context, input *dto.LowStockInput) (*dto.LowStockReport, error) {
	threshold := input.Threshold
	if threshold <= 0 {
		threshold = uc.lowThreshold
	}

	all, err := uc.products.FindAll(ctx, &productdto.ProductFilters{})
	if err != nil {
		return nil, err
	}

	report := &dto.LowStockReport{
		Threshold:  threshold,
		LowStock:   make([]*model.Product, 0),
		OutOfStock: nil,
	}
	var atRisk float64
	for _, p := range all {
		switch inventory.ClassifyStock(p.Stock, threshold) {
		case inventory.LevelLowStock:
			report.LowStock = append(report.LowStock, p)
			atRisk += p.Price * float64(p.Stock)
		case inventory.LevelOutOfStock:
			report.OutOfStockCount++
			if input.IncludeOutOfStock {
				report.OutOfStock = append(report.OutOfStock, p)
			}
		}
	}
	report.LowStockCount = len(report.LowStock)
	report.ValueAtRisk = money.Round(atRisk)
	return report, nil
}
