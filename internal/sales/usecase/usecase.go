package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shoppilot/shoppilot-assistant/internal/analytics"
	"github.com/shoppilot/shoppilot-assistant/internal/inventory"
	"github.com/shoppilot/shoppilot-assistant/internal/model"
	"github.com/shoppilot/shoppilot-assistant/internal/money"
	"github.com/shoppilot/shoppilot-assistant/internal/product"
	productdto "github.com/shoppilot/shoppilot-assistant/internal/product/dto"
	"github.com/shoppilot/shoppilot-assistant/internal/sales"
	"github.com/shoppilot/shoppilot-assistant/internal/sales/dto"
	"go.uber.org/zap"
)

const referenceSale = "sale"

type salesUseCase struct {
	repo       sales.Repository
	products   product.Repository
	aggregator *analytics.Aggregator
	sink       inventory.MovementSink
	logger     *zap.Logger
}

func NewSalesUseCase(repo sales.Repository, products product.Repository, aggregator *analytics.Aggregator, sink inventory.MovementSink, logger *zap.Logger) sales.UseCase {
	return &salesUseCase{
		repo:       repo,
		products:   products,
		aggregator: aggregator,
		sink:       sink,
		logger:     logger,
	}
}

// RecordSale resolves the product, snapshots its name, derives the total
// from unit price and quantity, appends the sale, and emits the sale-driven
// stock decrement to the movement sink. The decrement clamps at zero; an
// oversized sale is recorded, not rejected.
func (uc *salesUseCase) RecordSale(ctx context.Context, input *dto.RecordSaleInput) (*model.Sale, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	p, err := uc.resolve(ctx, input.Identifier)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: %s", product.ErrNotFound, input.Identifier)
	}

	unitPrice := p.Price
	if input.UnitPrice != nil {
		unitPrice = *input.UnitPrice
	}
	status := input.Status
	if status == "" {
		status = model.SaleStatusPending
	}
	timestamp := time.Now()
	if input.Timestamp != nil {
		timestamp = *input.Timestamp
	}

	sale := &model.Sale{
		ID:              uuid.New().String(),
		ProductID:       p.ID,
		ProductName:     p.Name,
		Quantity:        input.Quantity,
		UnitPrice:       unitPrice,
		TotalAmount:     money.Total(unitPrice, input.Quantity),
		CustomerEmail:   input.CustomerEmail,
		CustomerName:    input.CustomerName,
		ShippingAddress: input.ShippingAddress,
		Status:          status,
		PaymentMethod:   input.PaymentMethod,
		Timestamp:       timestamp,
	}

	adj, err := uc.repo.Create(ctx, sale)
	if err != nil {
		return nil, err
	}
	if adj != nil {
		refType := referenceSale
		refID := sale.ID
		uc.sink.Record(ctx, &model.StockMovement{
			ID:             uuid.New().String(),
			ProductID:      p.ID,
			Op:             model.StockOpSubtract,
			QuantityChange: adj.After - adj.Before,
			QuantityBefore: adj.Before,
			QuantityAfter:  adj.After,
			ReferenceType:  &refType,
			ReferenceID:    &refID,
			CreatedAt:      time.Now(),
		})
	}

	uc.logger.Info("sale recorded",
		zap.String("sale_id", sale.ID),
		zap.String("product_id", sale.ProductID),
		zap.Int("quantity", sale.Quantity),
		zap.Float64("total", sale.TotalAmount))

	return sale, nil
}

func validate(input *dto.RecordSaleInput) error {
	if input.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", sales.ErrInvalidSale)
	}
	if input.UnitPrice != nil && *input.UnitPrice <= 0 {
		return fmt.Errorf("%w: unit price must be positive", sales.ErrInvalidSale)
	}
	if input.CustomerEmail == "" {
		return fmt.Errorf("%w: customer email is required", sales.ErrInvalidSale)
	}
	if input.Status != "" && !model.ValidSaleStatus(input.Status) {
		return fmt.Errorf("%w: unknown status %q", sales.ErrInvalidSale, input.Status)
	}
	return nil
}

func (uc *salesUseCase) resolve(ctx context.Context, ident product.Identifier) (*model.Product, error) {
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

func (uc *salesUseCase) SalesByDateRange(ctx context.Context, start, end time.Time) ([]*model.Sale, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end before start", sales.ErrInvalidRange)
	}
	return uc.repo.FindByDateRange(ctx, start, end)
}

// Analytics computes store metrics over the selected window. Period rollups
// inside the result always reflect the full sale log against the current
// wall clock, regardless of the window.
func (uc *salesUseCase) Analytics(ctx context.Context, input *dto.AnalyticsInput) (*model.StoreMetrics, error) {
	window, full, err := uc.window(ctx, input.Start, input.End)
	if err != nil {
		return nil, err
	}
	products, err := uc.products.FindAll(ctx, &productdto.ProductFilters{})
	if err != nil {
		return nil, err
	}
	return uc.aggregator.ComputeMetrics(window, full, products), nil
}

func (uc *salesUseCase) TopSellingProducts(ctx context.Context, input *dto.TopSellingInput) ([]*model.Product, error) {
	window, _, err := uc.window(ctx, input.Start, input.End)
	if err != nil {
		return nil, err
	}
	products, err := uc.products.FindAll(ctx, &productdto.ProductFilters{})
	if err != nil {
		return nil, err
	}
	return uc.aggregator.TopSelling(window, products, input.Limit), nil
}

// window returns the date-filtered sale set plus the full log. A single nil
// bound is open-ended on that side.
func (uc *salesUseCase) window(ctx context.Context, start, end *time.Time) (window, full []*model.Sale, err error) {
	full, err = uc.repo.FindAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	if start == nil && end == nil {
		return full, full, nil
	}
	if start != nil && end != nil && end.Before(*start) {
		return nil, nil, fmt.Errorf("%w: end before start", sales.ErrInvalidRange)
	}

	window = make([]*model.Sale, 0, len(full))
	for _, s := range full {
		if start != nil && s.Timestamp.Before(*start) {
			continue
		}
		if end != nil && s.Timestamp.After(*end) {
			continue
		}
		window = append(window, s)
	}
	return window, full, nil
}
