package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"laptop-store-api/internal/cart"
	"laptop-store-api/internal/messaging/kafka/consumer"
	"laptop-store-api/internal/pkg/logger"
	"laptop-store-api/internal/wishlist"

	"github.com/segmentio/kafka-go"
)

// RunConsumer reacts to store events, currently pruning cart and
// wishlist references to deleted laptops.
func RunConsumer() error {
	logger.Log.Info("starting store events consumer")

	db, err := ConnectDBWithRetry(os.Getenv("DB_URL"), 5)
	if err != nil {
		return err
	}
	defer db.Close()

	cartRepo := cart.NewRepository(db)
	wishlistRepo := wishlist.NewRepository(db)

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{os.Getenv("KAFKA_BROKER")},
		Topic:   "store.events",
		GroupID: "store-consumer-group",
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeMessages(ctx, reader,
		consumer.NewLaptopDeletedHandler(cartRepo, wishlistRepo),
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("consumer shutting down")
	cancel()
	logger.Log.Info("consumer stopped")

	return nil
}
