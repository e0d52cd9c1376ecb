package cart

import (
	"context"
	"database/sql"
	"encoding/json"

	autherrors "laptop-store-api/internal/auth/errors"
	"laptop-store-api/internal/outbox"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=cart_service.go -destination=../mock/cart/cart_service_mock.go -package=mock
type Service interface {
	Detail(ctx context.Context, userID string) (CartResponse, error)

	AddItem(ctx context.Context, userID, laptopID string) (CartResponse, error)
	UpdateQuantity(ctx context.Context, userID, itemID string, req UpdateQuantityRequest) (CartResponse, error)
	RemoveItem(ctx context.Context, userID, itemID string) (CartResponse, error)
	Clear(ctx context.Context, userID string) (CartResponse, error)
}

type service struct {
	db         *sql.DB
	repo       Repository
	outboxRepo outbox.Repository
}

func NewService(db *sql.DB, repo Repository, outboxRepo outbox.Repository) Service {
	return &service{
		db:         db,
		repo:       repo,
		outboxRepo: outboxRepo,
	}
}

// ========================
// helpers
// ========================

// requireUser rejects before any repository call; cart rows are only
// ever touched under a resolved identity.
func requireUser(userID string) (uuid.UUID, error) {
	if userID == "" {
		return uuid.Nil, autherrors.ErrUnauthorized
	}
	uid, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, autherrors.ErrInvalidUserID
	}
	return uid, nil
}

// refresh is the single source of post-mutation state: every mutation
// answers with a full refetch, never a locally patched list.
func (s *service) refresh(ctx context.Context, uid uuid.UUID) (CartResponse, error) {
	rows, err := s.repo.GetDetail(ctx, uid)
	if err != nil {
		return CartResponse{}, ErrCartFailed
	}

	items := make([]ItemResponse, 0, len(rows))
	total := decimal.Zero
	var count int64

	for _, r := range rows {
		qty := decimal.NewFromInt32(r.Quantity)
		subtotal := r.Price.Mul(qty)
		total = total.Add(subtotal)
		count += int64(r.Quantity)

		price, _ := r.Price.Float64()
		sub, _ := subtotal.Float64()
		items = append(items, ItemResponse{
			ID:       r.ID.String(),
			LaptopID: r.LaptopID.String(),
			Title:    r.Title,
			Brand:    r.Brand,
			Price:    price,
			ImageURL: r.ImageURL.String,
			InStock:  r.InStock,
			Quantity: r.Quantity,
			Subtotal: sub,
		})
	}

	totalF, _ := total.Float64()
	return CartResponse{Items: items, Total: totalF, Count: count}, nil
}

func (s *service) appendEvent(ctx context.Context, tx *sql.Tx, eventType string, uid, laptopID uuid.UUID) error {
	payload, err := json.Marshal(map[string]string{
		"userId":   uid.String(),
		"laptopId": laptopID.String(),
	})
	if err != nil {
		return err
	}
	return s.outboxRepo.WithTx(tx).Append(ctx, eventType, payload)
}

// ========================
// operations
// ========================

func (s *service) Detail(ctx context.Context, userID string) (CartResponse, error) {
	uid, err := requireUser(userID)
	if err != nil {
		return CartResponse{}, err
	}
	return s.refresh(ctx, uid)
}

func (s *service) AddItem(ctx context.Context, userID, laptopID string) (CartResponse, error) {
	uid, err := requireUser(userID)
	if err != nil {
		return CartResponse{}, err
	}

	lid, err := uuid.Parse(laptopID)
	if err != nil {
		return CartResponse{}, ErrInvalidLaptopID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return CartResponse{}, ErrCartFailed
	}
	defer tx.Rollback()

	repo := s.repo.WithTx(tx)

	// One row per (user, laptop): an existing line grows by one,
	// otherwise a fresh line starts at one.
	item, err := repo.GetByUserAndLaptop(ctx, uid, lid)
	switch {
	case err == nil:
		if err := repo.SetQuantity(ctx, uid, item.ID, item.Quantity+1); err != nil {
			return CartResponse{}, ErrCartFailed
		}
	case err == sql.ErrNoRows:
		if err := repo.Insert(ctx, uid, lid, 1); err != nil {
			return CartResponse{}, ErrCartFailed
		}
	default:
		return CartResponse{}, ErrCartFailed
	}

	if err := s.appendEvent(ctx, tx, "cart.item_added", uid, lid); err != nil {
		return CartResponse{}, ErrCartFailed
	}

	if err := tx.Commit(); err != nil {
		return CartResponse{}, ErrCartFailed
	}

	return s.refresh(ctx, uid)
}

func (s *service) UpdateQuantity(ctx context.Context, userID, itemID string, req UpdateQuantityRequest) (CartResponse, error) {
	uid, err := requireUser(userID)
	if err != nil {
		return CartResponse{}, err
	}

	iid, err := uuid.Parse(itemID)
	if err != nil {
		return CartResponse{}, ErrInvalidItemID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return CartResponse{}, ErrCartFailed
	}
	defer tx.Rollback()

	repo := s.repo.WithTx(tx)

	// Zero or below is a removal, never a stored zero-quantity row.
	if req.Quantity <= 0 {
		err = repo.DeleteItem(ctx, uid, iid)
	} else {
		err = repo.SetQuantity(ctx, uid, iid, req.Quantity)
	}
	if err == sql.ErrNoRows {
		return CartResponse{}, ErrCartItemNotFound
	}
	if err != nil {
		return CartResponse{}, ErrCartFailed
	}

	if err := s.appendEvent(ctx, tx, "cart.quantity_updated", uid, iid); err != nil {
		return CartResponse{}, ErrCartFailed
	}

	if err := tx.Commit(); err != nil {
		return CartResponse{}, ErrCartFailed
	}

	return s.refresh(ctx, uid)
}

func (s *service) RemoveItem(ctx context.Context, userID, itemID string) (CartResponse, error) {
	uid, err := requireUser(userID)
	if err != nil {
		return CartResponse{}, err
	}

	iid, err := uuid.Parse(itemID)
	if err != nil {
		return CartResponse{}, ErrInvalidItemID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return CartResponse{}, ErrCartFailed
	}
	defer tx.Rollback()

	repo := s.repo.WithTx(tx)

	if err := repo.DeleteItem(ctx, uid, iid); err != nil {
		if err == sql.ErrNoRows {
			return CartResponse{}, ErrCartItemNotFound
		}
		return CartResponse{}, ErrCartFailed
	}

	if err := s.appendEvent(ctx, tx, "cart.item_removed", uid, iid); err != nil {
		return CartResponse{}, ErrCartFailed
	}

	if err := tx.Commit(); err != nil {
		return CartResponse{}, ErrCartFailed
	}

	return s.refresh(ctx, uid)
}

func (s *service) Clear(ctx context.Context, userID string) (CartResponse, error) {
	uid, err := requireUser(userID)
	if err != nil {
		return CartResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return CartResponse{}, ErrCartFailed
	}
	defer tx.Rollback()

	repo := s.repo.WithTx(tx)

	if err := repo.DeleteAll(ctx, uid); err != nil {
		return CartResponse{}, ErrCartFailed
	}

	if err := s.appendEvent(ctx, tx, "cart.cleared", uid, uuid.Nil); err != nil {
		return CartResponse{}, ErrCartFailed
	}

	if err := tx.Commit(); err != nil {
		return CartResponse{}, ErrCartFailed
	}

	return s.refresh(ctx, uid)
}
