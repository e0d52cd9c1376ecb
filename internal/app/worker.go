package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"laptop-store-api/internal/outbox"
	"laptop-store-api/internal/pkg/logger"
)

// RunWorker drains the transactional outbox to Kafka until signalled.
func RunWorker() error {
	logger.Log.Info("starting outbox processor")

	db, err := ConnectDBWithRetry(os.Getenv("DB_URL"), 5)
	if err != nil {
		return err
	}
	defer db.Close()

	kafkaWriter, err := ConnectKafkaWithRetry(os.Getenv("KAFKA_BROKER"), 5)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := outbox.NewRepository(db)
	processor := outbox.NewProcessor(outboxRepo, kafkaWriter)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go processor.Start(ctx)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("worker shutting down")
	cancel()
	time.Sleep(1 * time.Second)
	logger.Log.Info("worker stopped")

	return nil
}
