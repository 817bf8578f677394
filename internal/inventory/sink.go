package inventory

import (
	"context"

	"github.com/shoppilot/shoppilot-assistant/internal/model"
	"go.uber.org/zap"
)

// MovementSink receives a record of every applied stock mutation, whether
// from a manual adjustment or a sale-driven decrement. Movements are
// observability data; nothing in the store depends on them.
type MovementSink interface {
	Record(ctx context.Context, movement *model.StockMovement)
}

// LogSink writes movements to the structured log.
type LogSink struct {
	logger *zap.Logger
}

func NewLogSink(logger *zap.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Record(ctx context.Context, m *model.StockMovement) {
	fields := []zap.Field{
		zap.String("movement_id", m.ID),
		zap.String("product_id", m.ProductID),
		zap.String("op", string(m.Op)),
		zap.Int("quantity_change", m.QuantityChange),
		zap.Int("quantity_before", m.QuantityBefore),
		zap.Int("quantity_after", m.QuantityAfter),
	}
	if m.Reason != "" {
		fields = append(fields, zap.String("reason", m.Reason))
	}
	if m.ReferenceType != nil {
		fields = append(fields, zap.String("reference_type", *m.ReferenceType))
	}
	if m.ReferenceID != nil {
		fields = append(fields, zap.String("reference_id", *m.ReferenceID))
	}
	s.logger.Info("stock movement", fields...)
}

// NopSink discards movements.
type NopSink struct{}

func (NopSink) Record(ctx context.Context, m *model.StockMovement) {}
