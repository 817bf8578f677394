package inventory

import (
	"context"
	"errors"

	"github.com/shoppilot/shoppilot-assistant/internal/inventory/dto"
)

var ErrInvalidOperation = errors.New("invalid stock operation")

type UseCase interface {
	AdjustStock(ctx context.Context, input *dto.AdjustStockInput) (*dto.AdjustStockResult, error)
	LowStockReport(ctx context.Context, input *dto.LowStockInput) (*dto.LowStockReport, error)
}
