package wishlist

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	autherrors "laptop-store-api/internal/auth/errors"
	"laptop-store-api/internal/outbox"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

//go:generate mockgen -source=wishlist_service.go -destination=../mock/wishlist/wishlist_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, userID string) (WishlistResponse, error)
	Contains(ctx context.Context, userID, laptopID string) (bool, error)

	Add(ctx context.Context, userID, laptopID string) (WishlistResponse, error)
	Remove(ctx context.Context, userID, laptopID string) (WishlistResponse, error)
	Toggle(ctx context.Context, userID, laptopID string) (ToggleResponse, error)
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

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func (s *service) requireIDs(userID, laptopID string) (uuid.UUID, uuid.UUID, error) {
	if userID == "" {
		return uuid.Nil, uuid.Nil, autherrors.ErrUnauthorized
	}
	uid, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, uuid.Nil, autherrors.ErrInvalidUserID
	}
	lid, err := uuid.Parse(laptopID)
	if err != nil {
		return uuid.Nil, uuid.Nil, ErrInvalidLaptopID
	}
	return uid, lid, nil
}

// refresh refetches the whole wishlist after a mutation; callers never
// see a locally patched snapshot.
func (s *service) refresh(ctx context.Context, uid uuid.UUID) (WishlistResponse, error) {
	rows, err := s.repo.GetDetail(ctx, uid)
	if err != nil {
		return WishlistResponse{}, ErrWishlistFailed
	}

	items := make([]ItemResponse, 0, len(rows))
	for _, r := range rows {
		price, _ := r.Price.Float64()

		var origPrice *float64
		if r.OriginalPrice.Valid {
			f, _ := r.OriginalPrice.Decimal.Float64()
			origPrice = &f
		}

		items = append(items, ItemResponse{
			ID:            r.ID.String(),
			LaptopID:      r.LaptopID.String(),
			Title:         r.Title,
			Brand:         r.Brand,
			Price:         price,
			OriginalPrice: origPrice,
			Rating:        r.Rating,
			ImageURL:      r.ImageURL.String,
			InStock:       r.InStock,
			AddedAt:       r.AddedAt,
		})
	}

	return WishlistResponse{Items: items, ItemCount: len(items)}, nil
}

func (s *service) appendEvent(ctx context.Context, tx *sql.Tx, eventType string, uid, lid uuid.UUID) error {
	payload, err := json.Marshal(map[string]string{
		"userId":   uid.String(),
		"laptopId": lid.String(),
	})
	if err != nil {
		return err
	}
	return s.outboxRepo.WithTx(tx).Append(ctx, eventType, payload)
}

func (s *service) List(ctx context.Context, userID string) (WishlistResponse, error) {
	if userID == "" {
		return WishlistResponse{}, autherrors.ErrUnauthorized
	}
	uid, err := uuid.Parse(userID)
	if err != nil {
		return WishlistResponse{}, autherrors.ErrInvalidUserID
	}
	return s.refresh(ctx, uid)
}

func (s *service) Contains(ctx context.Context, userID, laptopID string) (bool, error) {
	uid, lid, err := s.requireIDs(userID, laptopID)
	if err != nil {
		return false, err
	}

	exists, err := s.repo.Exists(ctx, uid, lid)
	if err != nil {
		return false, ErrWishlistFailed
	}
	return exists, nil
}

// Add inserts and lets the unique constraint decide: a duplicate is a
// benign conflict, reported distinctly and leaving exactly one row.
func (s *service) Add(ctx context.Context, userID, laptopID string) (WishlistResponse, error) {
	uid, lid, err := s.requireIDs(userID, laptopID)
	if err != nil {
		return WishlistResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return WishlistResponse{}, ErrWishlistFailed
	}
	defer tx.Rollback()

	repo := s.repo.WithTx(tx)

	if err := repo.Insert(ctx, uid, lid); err != nil {
		if isUniqueViolation(err) {
			return WishlistResponse{}, ErrAlreadyInWishlist
		}
		return WishlistResponse{}, ErrWishlistFailed
	}

	if err := s.appendEvent(ctx, tx, "wishlist.item_added", uid, lid); err != nil {
		return WishlistResponse{}, ErrWishlistFailed
	}

	if err := tx.Commit(); err != nil {
		return WishlistResponse{}, ErrWishlistFailed
	}

	return s.refresh(ctx, uid)
}

func (s *service) Remove(ctx context.Context, userID, laptopID string) (WishlistResponse, error) {
	uid, lid, err := s.requireIDs(userID, laptopID)
	if err != nil {
		return WishlistResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return WishlistResponse{}, ErrWishlistFailed
	}
	defer tx.Rollback()

	repo := s.repo.WithTx(tx)

	if err := repo.Delete(ctx, uid, lid); err != nil {
		return WishlistResponse{}, ErrWishlistFailed
	}

	if err := s.appendEvent(ctx, tx, "wishlist.item_removed", uid, lid); err != nil {
		return WishlistResponse{}, ErrWishlistFailed
	}

	if err := tx.Commit(); err != nil {
		return WishlistResponse{}, ErrWishlistFailed
	}

	return s.refresh(ctx, uid)
}

// Toggle is check-then-act, not atomic. Two racing toggles can both
// observe "absent" and both insert; the unique constraint rejects the
// loser, which Toggle absorbs as already-added.
func (s *service) Toggle(ctx context.Context, userID, laptopID string) (ToggleResponse, error) {
	uid, lid, err := s.requireIDs(userID, laptopID)
	if err != nil {
		return ToggleResponse{}, err
	}

	exists, err := s.repo.Exists(ctx, uid, lid)
	if err != nil {
		return ToggleResponse{}, ErrWishlistFailed
	}

	if exists {
		res, err := s.Remove(ctx, userID, laptopID)
		if err != nil {
			return ToggleResponse{}, err
		}
		return ToggleResponse{Added: false, Wishlist: res}, nil
	}

	res, err := s.Add(ctx, userID, laptopID)
	if err != nil {
		if errors.Is(err, ErrAlreadyInWishlist) {
			// Lost the race to a concurrent add; the item is
			// present, which is what the caller asked for.
			wl, rerr := s.refresh(ctx, uid)
			if rerr != nil {
				return ToggleResponse{}, rerr
			}
			return ToggleResponse{Added: true, Wishlist: wl}, nil
		}
		return ToggleResponse{}, err
	}
	return ToggleResponse{Added: true, Wishlist: res}, nil
}
