package seed

import (
	"context"
	"database/sql"
	"fmt"

	"laptop-store-api/internal/auth"

	"golang.org/x/crypto/bcrypt"
)

func SeedUsers(db *sql.DB) error {
	ctx := context.Background()
	repo := auth.NewRepository(db)

	users := []struct {
		Email    string
		Name     string
		Password string
		Role     string
	}{
		{"admin@laptopstore.dev", "Store Admin", "admin123", "admin"},
		{"customer@laptopstore.dev", "Test Customer", "customer123", "customer"},
	}

	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		if _, err := repo.Create(ctx, u.Email, u.Name, string(hash), u.Role); err != nil {
			return fmt.Errorf("seed user %q: %w", u.Email, err)
		}
	}

	return nil
}
