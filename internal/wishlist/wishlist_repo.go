package wishlist

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

// DetailRow is a saved item joined with its laptop summary.
type DetailRow struct {
	ID            uuid.UUID
	LaptopID      uuid.UUID
	Title         string
	Brand         string
	Price         decimal.Decimal
	OriginalPrice decimal.NullDecimal
	Rating        float64
	ImageURL      sql.NullString
	InStock       bool
	AddedAt       time.Time
}

//go:generate mockgen -source=wishlist_repo.go -destination=../mock/wishlist/wishlist_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx DBTX) Repository

	// Insert relies on the table's UNIQUE(user_id, laptop_id); a
	// duplicate surfaces as the driver's unique-violation error.
	Insert(ctx context.Context, userID, laptopID uuid.UUID) error
	Delete(ctx context.Context, userID, laptopID uuid.UUID) error
	Exists(ctx context.Context, userID, laptopID uuid.UUID) (bool, error)
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

func (r *repository) Insert(ctx context.Context, userID, laptopID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO wishlist_items (id, user_id, laptop_id, created_at)
		VALUES ($1, $2, $3, now())`,
		uuid.New(), userID, laptopID,
	)
	return err
}

// Delete succeeds whether or not the row was there; removing an absent
// item is a no-op.
func (r *repository) Delete(ctx context.Context, userID, laptopID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM wishlist_items
		WHERE user_id = $1 AND laptop_id = $2`,
		userID, laptopID,
	)
	return err
}

func (r *repository) Exists(ctx context.Context, userID, laptopID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM wishlist_items
			WHERE user_id = $1 AND laptop_id = $2
		)`,
		userID, laptopID,
	).Scan(&exists)
	return exists, err
}

func (r *repository) DeleteByLaptop(ctx context.Context, laptopID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM wishlist_items WHERE laptop_id = $1`,
		laptopID,
	)
	return err
}

func (r *repository) GetDetail(ctx context.Context, userID uuid.UUID) ([]DetailRow, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT wi.id, wi.laptop_id,
		       l.title, l.brand, l.price, l.original_price, l.rating,
		       l.images[1], l.in_stock, wi.created_at
		FROM wishlist_items wi
		JOIN laptops l ON l.id = wi.laptop_id
		WHERE wi.user_id = $1
		ORDER BY wi.created_at, wi.id`,
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
			&d.ID, &d.LaptopID,
			&d.Title, &d.Brand, &d.Price, &d.OriginalPrice, &d.Rating,
			&d.ImageURL, &d.InStock, &d.AddedAt,
		); err != nil {
			return nil, err
		}
		detail = append(detail, d)
	}
	return detail, rows.Err()
}
