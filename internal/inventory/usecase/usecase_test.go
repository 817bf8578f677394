package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shoppilot/shoppilot-assistant/internal/inventory"
	"github.com/shoppilot/shoppilot-assistant/internal/inventory/dto"
	invrepo "github.com/shoppilot/shoppilot-assistant/internal/inventory/repository"
	"github.com/shoppilot/shoppilot-assistant/internal/model"
	"github.com/shoppilot/shoppilot-assistant/internal/product"
	productdto "github.com/shoppilot/shoppilot-assistant/internal/product/dto"
	prodrepo "github.com/shoppilot/shoppilot-assistant/internal/product/repository"
	produc "github.com/shoppilot/shoppilot-assistant/internal/product/usecase"
	"github.com/shoppilot/shoppilot-assistant/internal/store"
)

// captureSink records movements for assertions.
type captureSink struct {
	mu        sync.Mutex
	movements []*model.StockMovement
}

func (s *captureSink) Record(ctx context.Context, m *model.StockMovement) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.movements = append(s.movements, m)
}

type fixture struct {
	inventory inventory.UseCase
	products  product.UseCase
	sink      *captureSink
}

func newFixture(t *testing.T, threshold int) *fixture {
	t.Helper()
	st := store.NewStore()
	prodRepo := prodrepo.NewMemoryRepository(st)
	sink := &captureSink{}
	return &fixture{
		inventory: NewInventoryUseCase(invrepo.NewMemoryRepository(st), prodRepo, sink, zap.NewNop(), threshold),
		products:  produc.NewProductUseCase(prodRepo, zap.NewNop()),
		sink:      sink,
	}
}

func (f *fixture) create(t *testing.T, name string, price float64, stock int) *model.Product {
	t.Helper()
	p, err := f.products.CreateProduct(context.Background(), &productdto.CreateProductInput{
		Name: name, Price: price, Category: "Test", Stock: stock,
	})
	require.NoError(t, err)
	return p
}

func TestAdjustStockOperations(t *testing.T) {
	tests := []struct {
		name  string
		start int
		op    model.StockOp
		qty   int
		want  int
	}{
		{"add", 5, model.StockOpAdd, 3, 8},
		{"subtract never goes negative", 5, model.StockOpSubtract, 9, 0},
		{"set clamps negative to zero", 5, model.StockOpSet, -4, 0},
		{"set", 5, model.StockOpSet, 20, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 10)
			p := f.create(t, "Mug", 12.50, tt.start)

			res, err := f.inventory.AdjustStock(context.Background(), &dto.AdjustStockInput{
				Identifier: product.ID(p.ID),
				Op:         tt.op,
				Quantity:   tt.qty,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.start, res.Before)
			assert.Equal(t, tt.want, res.After)
			assert.Equal(t, tt.want, res.Product.Stock)
		})
	}
}

func TestAdjustStockInvalidOperation(t *testing.T) {
	f := newFixture(t, 10)
	p := f.create(t, "Mug", 12.50, 5)

	_, err := f.inventory.AdjustStock(context.Background(), &dto.AdjustStockInput{
		Identifier: product.ID(p.ID),
		Op:         model.StockOp("increment"),
		Quantity:   1,
	})
	assert.ErrorIs(t, err, inventory.ErrInvalidOperation)

	_, err = f.inventory.AdjustStock(context.Background(), &dto.AdjustStockInput{
		Identifier: product.ID(p.ID),
		Op:         model.StockOpAdd,
		Quantity:   -1,
	})
	assert.ErrorIs(t, err, inventory.ErrInvalidOperation)
}

func TestAdjustStockNotFound(t *testing.T) {
	f := newFixture(t, 10)
	_, err := f.inventory.AdjustStock(context.Background(), &dto.AdjustStockInput{
		Identifier: product.Name("ghost"),
		Op:         model.StockOpAdd,
		Quantity:   1,
	})
	assert.ErrorIs(t, err, product.ErrNotFound)
}

func TestAdjustStockByNameAndEmitsMovement(t *testing.T) {
	f := newFixture(t, 10)
	p := f.create(t, "Ceramic Mug", 12.50, 20)

	res, err := f.inventory.AdjustStock(context.Background(), &dto.AdjustStockInput{
		Identifier: product.Name("mug"),
		Op:         model.StockOpSubtract,
		Quantity:   4,
		Reason:     "breakage",
	})
	require.NoError(t, err)
	assert.Equal(t, 16, res.After)

	require.Len(t, f.sink.movements, 1)
	m := f.sink.movements[0]
	assert.Equal(t, p.ID, m.ProductID)
	assert.Equal(t, model.StockOpSubtract, m.Op)
	assert.Equal(t, 20, m.QuantityBefore)
	assert.Equal(t, 16, m.QuantityAfter)
	assert.Equal(t, -4, m.QuantityChange)
	assert.Equal(t, "breakage", m.Reason)
	require.NotNil(t, m.ReferenceType)
	assert.Equal(t, "manual_adjustment", *m.ReferenceType)
}

func TestAdjustStockStatusMessages(t *testing.T) {
	f := newFixture(t, 10)
	p := f.create(t, "Mug", 12.50, 30)

	res, err := f.inventory.AdjustStock(context.Background(), &dto.AdjustStockInput{
		Identifier: product.ID(p.ID), Op: model.StockOpSet, Quantity: 0,
	})
	require.NoError(t, err)
	assert.Equal(t, string(inventory.LevelOutOfStock), res.Level)
	assert.Contains(t, res.Message, "out of stock")

	res, err = f.inventory.AdjustStock(context.Background(), &dto.AdjustStockInput{
		Identifier: product.ID(p.ID), Op: model.StockOpSet, Quantity: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, string(inventory.LevelLowStock), res.Level)
	assert.Contains(t, res.Message, "running low")

	res, err = f.inventory.AdjustStock(context.Background(), &dto.AdjustStockInput{
		Identifier: product.ID(p.ID), Op: model.StockOpSet, Quantity: 50,
	})
	require.NoError(t, err)
	assert.Equal(t, string(inventory.LevelNormal), res.Level)
}

func TestLowStockReport(t *testing.T) {
	f := newFixture(t, 10)
	f.create(t, "Healthy", 10, 50)
	low := f.create(t, "Low", 20, 4)
	f.create(t, "Gone", 30, 0)

	report, err := f.inventory.LowStockReport(context.Background(), &dto.LowStockInput{})
	require.NoError(t, err)
	assert.Equal(t, 10, report.Threshold)
	require.Len(t, report.LowStock, 1)
	assert.Equal(t, low.ID, report.LowStock[0].ID)
	assert.Equal(t, 1, report.LowStockCount)
	assert.Equal(t, 1, report.OutOfStockCount)
	assert.Nil(t, report.OutOfStock, "out-of-stock list omitted unless requested")
	assert.Equal(t, 80.0, report.ValueAtRisk)
}

func TestLowStockReportIncludesOutOfStock(t *testing.T) {
	f := newFixture(t, 10)
	f.create(t, "Low", 20, 4)
	gone := f.create(t, "Gone", 30, 0)

	report, err := f.inventory.LowStockReport(context.Background(), &dto.LowStockInput{
		Threshold:         5,
		IncludeOutOfStock: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, report.Threshold)
	require.Len(t, report.OutOfStock, 1)
	assert.Equal(t, gone.ID, report.OutOfStock[0].ID)
}

func TestClassifyStock(t *testing.T) {
	assert.Equal(t, inventory.LevelOutOfStock, inventory.ClassifyStock(0, 10))
	assert.Equal(t, inventory.LevelLowStock, inventory.ClassifyStock(10, 10))
	assert.Equal(t, inventory.LevelNormal, inventory.ClassifyStock(11, 10))
}
