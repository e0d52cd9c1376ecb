package cart

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

// Item is one cart line. UNIQUE(user_id, laptop_id) in the table keeps
// a laptop on at most one line per user.
type Item struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	LaptopID  uuid.UUID
	Quantity  int32
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DetailRow is a cart line joined with its laptop summary.
type DetailRow struct {
	ID       uuid.UUID
	LaptopID uuid.UUID
	Quantity int32
	Title    string
	Brand    string
	Price    decimal.Decimal
	ImageURL sql.NullString
	InStock  bool
}

//go:generate mockgen -source=cart_repo.go -destination=../mock/cart/cart_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx DBTX) Repository

	GetByUserAndLaptop(ctx context.Context, userID, laptopID uuid.UUID) (Item, error)
	Insert(ctx context.Context, userID, laptopID uuid.UUID, quantity int32) error
	SetQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int32) error
	DeleteItem(ctx context.Context, userID, itemID uuid.UUID) error
	DeleteAll(ctx context.Context, userID uuid.UUID) error
	DeleteByLaptop(ctx context.Context, laptopID uuid.UUID) error

	GetDetail(ctx context.Context, userID uuid.UUID) ([]DetailRow, error)
}

type repository struct {
	db DBTX
}

func NewRepository(db DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx DBTX) Repository {
	return &repository{db: tx}
}

func (r *repository) GetByUserAndLaptop(ctx context.Context, userID, laptopID uuid.UUID) (Item, error) {
	var item Item
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, laptop_id, quantity, created_at, updated_at
		FROM cart_items
		WHERE user_id = $1 AND laptop_id = $2`,
		userID, laptopID,
	).Scan(&item.ID, &item.UserID, &item.LaptopID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt)
	return item, err
}

func (r *repository) Insert(ctx context.Context, userID, laptopID uuid.UUID, quantity int32) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO cart_items (id, user_id, laptop_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, now(), now())`,
		uuid.New(), userID, laptopID, quantity,
	)
	return err
}

func (r *repository) SetQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int32) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE cart_items
		SET quantity = $3, updated_at = now()
		WHERE user_id = $1 AND id = $2`,
		userID, itemID, quantity,
	)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *repository) DeleteItem(ctx context.Context, userID, itemID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM cart_items
		WHERE user_id = $1 AND id = $2`,
		userID, itemID,
	)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *repository) DeleteAll(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM cart_items WHERE user_id = $1`,
		userID,
	)
	return err
}

// DeleteByLaptop prunes every user's lines for a laptop that left the
// catalog. Driven by catalog.laptop_deleted events, not user actions.
func (r *repository) DeleteByLaptop(ctx context.Context, laptopID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM cart_items WHERE laptop_id = $1`,
		laptopID,
	)
	return err
}

func (r *repository) GetDetail(ctx context.Context, userID uuid.UUID) ([]DetailRow, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT ci.id, ci.laptop_id, ci.quantity,
		       l.title, l.brand, l.price, l.images[1], l.in_stock
		FROM cart_items ci
		JOIN laptops l ON l.id = ci.laptop_id
		WHERE ci.user_id = $1
		ORDER BY ci.created_at, ci.id`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var detail []DetailRow
	for rows.Next() {
		var d DetailRow
		if err := rows.Scan(
			&d.ID, &d.LaptopID, &d.Quantity,
			&d.Title, &d.Brand, &d.Price, &d.ImageURL, &d.InStock,
		); err != nil {
			return nil, err
		}
		detail = append(detail, d)
	}
	return detail, rows.Err()
}

func requireAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
