package catalog

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

//go:generate mockgen -source=catalog_repo.go -destination=../mock/catalog/catalog_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx DBTX) Repository

	ListAll(ctx context.Context) ([]Laptop, error)
	GetByID(ctx context.Context, id uuid.UUID) (Laptop, error)

	Create(ctx context.Context, l Laptop) (Laptop, error)
	Update(ctx context.Context, l Laptop) (Laptop, error)
	Delete(ctx context.Context, id uuid.UUID) error
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

const laptopColumns = `
	id, title, brand, description, short_description,
	price, original_price, category, rating, review_count,
	in_stock, is_new, is_featured, is_trending, images,
	created_at, updated_at`

func scanLaptop(row interface{ Scan(...interface{}) error }) (Laptop, error) {
	var l Laptop
	err := row.Scan(
		&l.ID, &l.Title, &l.Brand, &l.Description, &l.ShortDescription,
		&l.Price, &l.OriginalPrice, &l.Category, &l.Rating, &l.ReviewCount,
		&l.InStock, &l.IsNew, &l.IsFeatured, &l.IsTrending, pq.Array(&l.Images),
		&l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

func (r *repository) ListAll(ctx context.Context) ([]Laptop, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT`+laptopColumns+`
		FROM laptops
		ORDER BY created_at, id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	laptops := []Laptop{}
	for rows.Next() {
		l, err := scanLaptop(rows)
		if err != nil {
			return nil, err
		}
		laptops = append(laptops, l)
	}
	return laptops, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (Laptop, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT`+laptopColumns+`
		FROM laptops
		WHERE id = $1`,
		id,
	)
	return scanLaptop(row)
}

func (r *repository) Create(ctx context.Context, l Laptop) (Laptop, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO laptops (
			id, title, brand, description, short_description,
			price, original_price, category, rating, review_count,
			in_stock, is_new, is_featured, is_trending, images,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15,
			now(), now()
		)
		RETURNING`+laptopColumns,
		l.ID, l.Title, l.Brand, l.Description, l.ShortDescription,
		l.Price, l.OriginalPrice, l.Category, l.Rating, l.ReviewCount,
		l.InStock, l.IsNew, l.IsFeatured, l.IsTrending, pq.Array(l.Images),
	)
	return scanLaptop(row)
}

func (r *repository) Update(ctx context.Context, l Laptop) (Laptop, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE laptops SET
			title = $2, brand = $3, description = $4, short_description = $5,
			price = $6, original_price = $7, category = $8, rating = $9,
			review_count = $10, in_stock = $11, is_new = $12,
			is_featured = $13, is_trending = $14, images = $15,
			updated_at = now()
		WHERE id = $1
		RETURNING`+laptopColumns,
		l.ID, l.Title, l.Brand, l.Description, l.ShortDescription,
		l.Price, l.OriginalPrice, l.Category, l.Rating, l.ReviewCount,
		l.InStock, l.IsNew, l.IsFeatured, l.IsTrending, pq.Array(l.Images),
	)
	return scanLaptop(row)
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM laptops WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
