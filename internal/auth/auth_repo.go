package auth

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

type User struct {
	ID        uuid.UUID
	Email     string
	Name      string
	Password  string
	Role      string
	CreatedAt time.Time
}

//go:generate mockgen -source=auth_repo.go -destination=../mock/auth/auth_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, email, name, passwordHash, role string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
}

type repository struct {
	db DBTX
}

func NewRepository(db DBTX) Repository {
	return &repository{db: db}
}

const userColumns = `id, email, name, password, role, created_at`

func (r *repository) Create(ctx context.Context, email, name, passwordHash, role string) (User, error) {
	var u User
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (id, email, name, password, role, created_at)
		VALUES ($1, $2, $3, $4, $5, now())
		RETURNING `+userColumns,
		uuid.New(), email, name, passwordHash, role,
	).Scan(&u.ID, &u.Email, &u.Name, &u.Password, &u.Role, &u.CreatedAt)
	return u, err
}

func (r *repository) GetByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := r.db.QueryRowContext(ctx, `
		SELECT `+userColumns+` FROM users WHERE email = $1`,
		email,
	).Scan(&u.ID, &u.Email, &u.Name, &u.Password, &u.Role, &u.CreatedAt)
	return u, err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (User, error) {
	var u User
	err := r.db.QueryRowContext(ctx, `
		SELECT `+userColumns+` FROM users WHERE id = $1`,
		id,
	).Scan(&u.ID, &u.Email, &u.Name, &u.Password, &u.Role, &u.CreatedAt)
	return u, err
}
