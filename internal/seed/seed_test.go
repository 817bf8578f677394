package seed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shoppilot/shoppilot-assistant/internal/analytics"
	"github.com/shoppilot/shoppilot-assistant/internal/inventory"
	"github.com/shoppilot/shoppilot-assistant/internal/product"
	prodrepo "github.com/shoppilot/shoppilot-assistant/internal/product/repository"
	produc "github.com/shoppilot/shoppilot-assistant/internal/product/usecase"
	"github.com/shoppilot/shoppilot-assistant/internal/sales"
	salesdto "github.com/shoppilot/shoppilot-assistant/internal/sales/dto"
	salesrepo "github.com/shoppilot/shoppilot-assistant/internal/sales/repository"
	salesuc "github.com/shoppilot/shoppilot-assistant/internal/sales/usecase"
	"github.com/shoppilot/shoppilot-assistant/internal/store"
)

type fixture struct {
	seeder   *Seeder
	products product.UseCase
	sales    sales.UseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	st := store.NewStore()
	logger := zap.NewNop()
	prodRepo := prodrepo.NewMemoryRepository(st)
	productUC := produc.NewProductUseCase(prodRepo, logger)
	salesUC := salesuc.NewSalesUseCase(salesrepo.NewMemoryRepository(st), prodRepo, analytics.NewAggregator(10), inventory.NopSink{}, logger)
	return &fixture{
		seeder:   NewSeeder(productUC, salesUC, logger),
		products: productUC,
		sales:    salesUC,
	}
}

func TestRunSeedsCatalogAndSales(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.seeder.Run(context.Background(), 12, 60))

	products, err := f.products.ListProducts(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, products, 12)

	all, err := f.sales.SalesByDateRange(context.Background(),
		time.Now().AddDate(0, 0, -(historyDays+1)), time.Now())
	require.NoError(t, err)
	assert.Len(t, all, 60)
	for _, s := range all {
		assert.NotEmpty(t, s.ProductName, "sales snapshot the product name")
		assert.Positive(t, s.TotalAmount)
	}
}

func TestRunClampsProductCount(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.seeder.Run(context.Background(), 100, 0))

	products, err := f.products.ListProducts(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, products, len(catalog), "count above the catalog falls back to the whole catalog")
}

func TestRunSeedsLookupsWork(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.seeder.Run(context.Background(), 12, 0))

	bySKU, err := f.products.GetProduct(context.Background(), product.SKU("YM-STD-01"))
	require.NoError(t, err)
	assert.Equal(t, "Yoga Mat", bySKU.Name)

	byName, err := f.products.GetProduct(context.Background(), product.Name("t-shirt"))
	require.NoError(t, err)
	assert.Equal(t, "Blue T-Shirt", byName.Name, "name lookup returns the first seeded match")
}

func TestRunFailsOnSecondSeed(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.seeder.Run(context.Background(), 3, 0))

	err := f.seeder.Run(context.Background(), 3, 0)
	require.Error(t, err, "reseeding collides with existing SKUs")
	assert.ErrorIs(t, err, product.ErrDuplicateSKU)
}

func TestSeedAnalyticsAreConsistent(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.seeder.Run(context.Background(), 12, 40))

	m, err := f.sales.Analytics(context.Background(), &salesdto.AnalyticsInput{})
	require.NoError(t, err)
	assert.Equal(t, 40, m.TotalOrders)
	assert.Positive(t, m.TotalSales)
	assert.NotEmpty(t, m.TopProducts)
}
