package consumer

import (
	"context"

	"laptop-store-api/internal/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type Reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

// Handler reacts to one event type; unknown types are committed and
// skipped so the group offset keeps moving.
type Handler interface {
	EventType() string
	Handle(ctx context.Context, payload []byte) error
}

func ConsumeMessages(ctx context.Context, reader Reader, handlers ...Handler) {
	byType := make(map[string]Handler, len(handlers))
	for _, h := range handlers {
		byType[h.EventType()] = h
	}

	logger.Log.Info("consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Log.Error("fetch message failed", zap.Error(err))
			continue
		}

		// Event type travels as the message key, matching what the
		// outbox processor publishes.
		handler, ok := byType[string(msg.Key)]
		if !ok {
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := handler.Handle(ctx, msg.Value); err != nil {
			logger.Log.Error("event handling failed",
				zap.String("event_type", string(msg.Key)),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			logger.Log.Error("commit failed", zap.Error(err))
		}
	}
}
