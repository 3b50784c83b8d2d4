package listener

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/product"
	"github.com/fekuna/omnipos-catalog-service/pkg/broker"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
	"go.uber.org/zap"
)

// OrderListener drops cached products whose stock changed because an order
// was placed.
type OrderListener struct {
	consumer broker.Reader
	uc       product.UseCase
	logger   logger.ZapLogger
}

func NewOrderListener(consumer broker.Reader, uc product.UseCase, logger logger.ZapLogger) *OrderListener {
	return &OrderListener{
		consumer: consumer,
		uc:       uc,
		logger:   logger,
	}
}

func (l *OrderListener) Start(ctx context.Context) {
	l.logger.Info("Starting Order Kafka Listener")
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Stopping Order Kafka Listener")
			return
		default:
			msg, err := l.consumer.ReadMessage(ctx)
			if err != nil {
				// Don't log context canceled error as error
				if ctx.Err() != nil {
					return
				}
				l.logger.Error("Failed to read kafka message", zap.Error(err))
				time.Sleep(1 * time.Second)
				continue
			}
			l.processMessage(ctx, msg.Value)
		}
	}
}

func (l *OrderListener) processMessage(ctx context.Context, value []byte) {
	var event model.OrderCreatedEvent
	if err := json.Unmarshal(value, &event); err != nil {
		l.logger.Error("Failed to unmarshal event", zap.Error(err))
		return
	}

	if event.EventType != model.EventOrderCreated {
		return
	}

	ids := make([]string, 0, len(event.Payload.Items))
	for _, item := range event.Payload.Items {
		ids = append(ids, item.ProductID)
	}

	l.logger.Info("Processing OrderCreated event",
		zap.String("order_id", event.Payload.ID),
		zap.Int("items", len(ids)),
	)

	if err := l.uc.InvalidateProducts(ctx, ids); err != nil {
		l.logger.Error("Failed to invalidate products for order",
			zap.String("order_id", event.Payload.ID),
			zap.Error(err),
		)
	}
}
