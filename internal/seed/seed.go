// Package seed loads a deterministic demo catalog and sale history through
// the public usecases, so uniqueness checks and stock decrements apply the
// same way they would for real callers.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/shoppilot/shoppilot-assistant/internal/model"
	"github.com/shoppilot/shoppilot-assistant/internal/product"
	productdto "github.com/shoppilot/shoppilot-assistant/internal/product/dto"
	"github.com/shoppilot/shoppilot-assistant/internal/sales"
	salesdto "github.com/shoppilot/shoppilot-assistant/internal/sales/dto"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	saleWorkers = 4
	historyDays = 60
	randSeed    = 42
)

type Seeder struct {
	products product.UseCase
	sales    sales.UseCase
	logger   *zap.Logger
}

func NewSeeder(products product.UseCase, sales sales.UseCase, logger *zap.Logger) *Seeder {
	return &Seeder{
		products: products,
		sales:    sales,
		logger:   logger,
	}
}

type catalogEntry struct {
	name       string
	category   string
	collection string
	price      float64
	stock      int
	tags       []string
	sku        string
}

var catalog = []catalogEntry{
	{"Blue T-Shirt", "Clothing", "Summer Basics", 24.99, 120, []string{"cotton", "casual"}, "TS-BLU-01"},
	{"Red T-Shirt", "Clothing", "Summer Basics", 24.99, 95, []string{"cotton", "casual"}, "TS-RED-01"},
	{"Linen Shorts", "Clothing", "Summer Basics", 39.50, 48, []string{"linen", "beach"}, "SH-LIN-01"},
	{"Wool Beanie", "Clothing", "Winter Warmers", 18.00, 7, []string{"wool", "winter"}, "BN-WOL-01"},
	{"Canvas Tote Bag", "Accessories", "", 15.75, 200, []string{"canvas", "eco"}, "TB-CNV-01"},
	{"Leather Belt", "Accessories", "", 45.00, 33, []string{"leather"}, "BL-LTH-01"},
	{"Ceramic Mug", "Homeware", "Kitchen Staples", 12.50, 64, []string{"ceramic", "gift"}, "MG-CRM-01"},
	{"Bamboo Cutting Board", "Homeware", "Kitchen Staples", 29.99, 5, []string{"bamboo", "eco"}, "CB-BMB-01"},
	{"Scented Candle", "Homeware", "", 21.00, 80, []string{"soy", "gift"}, "CN-SCT-01"},
	{"Running Socks 3-Pack", "Sportswear", "Active Line", 16.90, 150, []string{"running", "breathable"}, "SK-RUN-03"},
	{"Yoga Mat", "Sportswear", "Active Line", 54.00, 22, []string{"yoga", "non-slip"}, "YM-STD-01"},
	{"Water Bottle 750ml", "Sportswear", "Active Line", 19.95, 0, []string{"steel", "insulated"}, "WB-750-01"},
}

var paymentMethods = []string{"card", "paypal", "bank_transfer"}

// Run seeds up to productCount catalog products, then inserts saleCount
// backdated sales spread over the trailing weeks, a bounded number at a
// time. Generation is deterministic for a given pair of counts.
func (s *Seeder) Run(ctx context.Context, productCount, saleCount int) error {
	if productCount <= 0 || productCount > len(catalog) {
		productCount = len(catalog)
	}

	ids := make([]string, 0, productCount)
	for _, entry := range catalog[:productCount] {
		p, err := s.products.CreateProduct(ctx, &productdto.CreateProductInput{
			Name:        entry.name,
			Description: fmt.Sprintf("%s from the %s range.", entry.name, entry.category),
			Price:       entry.price,
			Category:    entry.category,
			Collection:  entry.collection,
			Stock:       entry.stock,
			Tags:        entry.tags,
			SKU:         entry.sku,
		})
		if err != nil {
			return fmt.Errorf("seed product %q: %w", entry.name, err)
		}
		ids = append(ids, p.ID)
	}

	// Pre-generate sale parameters so the rand stream stays deterministic
	// regardless of insertion interleaving.
	rng := rand.New(rand.NewSource(randSeed))
	now := time.Now()
	inputs := make([]*salesdto.RecordSaleInput, 0, saleCount)
	for i := 0; i < saleCount; i++ {
		productID := ids[rng.Intn(len(ids))]
		quantity := 1 + rng.Intn(4)
		age := time.Duration(rng.Intn(historyDays*24)) * time.Hour
		ts := now.Add(-age)
		email := fmt.Sprintf("customer%02d@example.com", rng.Intn(25))
		inputs = append(inputs, &salesdto.RecordSaleInput{
			Identifier:    product.ID(productID),
			Quantity:      quantity,
			CustomerEmail: email,
			Status:        model.SaleStatusDelivered,
			PaymentMethod: paymentMethods[rng.Intn(len(paymentMethods))],
			Timestamp:     &ts,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(saleWorkers)
	for _, input := range inputs {
		input := input
		g.Go(func() error {
			_, err := s.sales.RecordSale(gctx, input)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("seed sales: %w", err)
	}

	s.logger.Info("demo data seeded",
		zap.Int("products", len(ids)),
		zap.Int("sales", len(inputs)))
	return nil
}
