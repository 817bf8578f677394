package sales

import (
	"context"
	"time"

	"github.com/shoppilot/shoppilot-assistant/internal/model"
	"github.com/shoppilot/shoppilot-assistant/internal/sales/dto"
)

type UseCase interface {
	RecordSale(ctx context.Context, input *dto.RecordSaleInput) (*model.Sale, error)
	SalesByDateRange(ctx context.Context, start, end time.Time) ([]*model.Sale, error)
	Analytics(ctx context.Context, input *dto.AnalyticsInput) (*model.StoreMetrics, error)
	TopSellingProducts(ctx context.Context, input *dto.TopSellingInput) ([]*model.Product, error)
}
