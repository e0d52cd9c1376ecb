package consumer

import (
	"context"
	"encoding/json"

	"laptop-store-api/internal/cart"
	"laptop-store-api/internal/pkg/logger"
	"laptop-store-api/internal/wishlist"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type laptopDeletedPayload struct {
	LaptopID string `json:"laptopId"`
}

// LaptopDeletedHandler prunes cart and wishlist rows that still point
// at a laptop removed from the catalog.
type LaptopDeletedHandler struct {
	cartRepo     cart.Repository
	wishlistRepo wishlist.Repository
}

func NewLaptopDeletedHandler(cartRepo cart.Repository, wishlistRepo wishlist.Repository) *LaptopDeletedHandler {
	return &LaptopDeletedHandler{
		cartRepo:     cartRepo,
		wishlistRepo: wishlistRepo,
	}
}

func (h *LaptopDeletedHandler) EventType() string {
	return "catalog.laptop_deleted"
}

func (h *LaptopDeletedHandler) Handle(ctx context.Context, payload []byte) error {
	var data laptopDeletedPayload
	if err := json.Unmarshal(payload, &data); err != nil {
		return err
	}

	laptopID, err := uuid.Parse(data.LaptopID)
	if err != nil {
		return err
	}

	if err := h.cartRepo.DeleteByLaptop(ctx, laptopID); err != nil {
		return err
	}
	if err := h.wishlistRepo.DeleteByLaptop(ctx, laptopID); err != nil {
		return err
	}

	logger.Log.Info("pruned references to deleted laptop",
		zap.String("laptop_id", data.LaptopID),
	)
	return nil
}
