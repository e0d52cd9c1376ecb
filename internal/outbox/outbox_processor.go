package outbox

import (
	"context"
	"time"

	"laptop-store-api/internal/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// Processor drains pending outbox rows to Kafka on a fixed tick.
// Delivery is at-least-once; a row is only marked sent after the
// broker acks, so consumers must tolerate duplicates.
type Processor struct {
	repo     Repository
	writer   Writer
	interval time.Duration
	batch    int32
}

func NewProcessor(repo Repository, writer Writer) *Processor {
	return &Processor{
		repo:     repo,
		writer:   writer,
		interval: 5 * time.Second,
		batch:    10,
	}
}

func (p *Processor) Start(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.drain(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (p *Processor) drain(ctx context.Context) {
	events, err := p.repo.ListPending(ctx, p.batch)
	if err != nil {
		logger.Log.Error("outbox fetch failed", zap.Error(err))
		return
	}

	for _, e := range events {
		err := p.writer.WriteMessages(ctx, kafka.Message{
			Key:   []byte(e.EventType),
			Value: e.Payload,
		})
		if err != nil {
			logger.Log.Error("kafka publish failed",
				zap.String("event_type", e.EventType),
				zap.Error(err),
			)
			continue
		}

		if err := p.repo.MarkSent(ctx, e.ID); err != nil {
			logger.Log.Error("outbox mark sent failed",
				zap.String("event_id", e.ID.String()),
				zap.Error(err),
			)
		}
	}
}
