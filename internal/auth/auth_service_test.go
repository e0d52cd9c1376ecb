package auth_test

import (
	"context"
	"testing"

	"laptop-store-api/internal/auth"
	autherrors "laptop-store-api/internal/auth/errors"
	authmock "laptop-store-api/internal/mock/auth"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := authmock.NewMockRepository(ctrl)
	svc := auth.NewService(repo)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo.EXPECT().
			Create(ctx, "jo@example.com", "Jo", gomock.Any(), "customer").
			Return(auth.User{ID: uuid.New(), Email: "jo@example.com", Name: "Jo", Role: "customer"}, nil)

		res, err := svc.Register(ctx, auth.RegisterRequest{
			Email:    "jo@example.com",
			Name:     "Jo",
			Password: "secret123",
		})
		assert.NoError(t, err)
		assert.Equal(t, "jo@example.com", res.Email)
		assert.Equal(t, "customer", res.Role)
	})

	t.Run("email_taken", func(t *testing.T) {
		repo.EXPECT().
			Create(ctx, "jo@example.com", "Jo", gomock.Any(), "customer").
			Return(auth.User{}, &pq.Error{Code: "23505"})

		_, err := svc.Register(ctx, auth.RegisterRequest{
			Email:    "jo@example.com",
			Name:     "Jo",
			Password: "secret123",
		})
		assert.Equal(t, autherrors.ErrEmailTaken, err)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := authmock.NewMockRepository(ctrl)
	svc := auth.NewService(repo)
	ctx := context.Background()

	t.Setenv("JWT_SECRET", "test-secret")

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	user := auth.User{
		ID:       uuid.New(),
		Email:    "jo@example.com",
		Name:     "Jo",
		Role:     "customer",
		Password: string(hash),
	}

	t.Run("success", func(t *testing.T) {
		repo.EXPECT().GetByEmail(ctx, "jo@example.com").Return(user, nil)

		token, res, err := svc.Login(ctx, auth.LoginRequest{
			Email:    "jo@example.com",
			Password: "secret123",
		})
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, user.ID.String(), res.ID)
	})

	t.Run("wrong_password", func(t *testing.T) {
		repo.EXPECT().GetByEmail(ctx, "jo@example.com").Return(user, nil)

		_, _, err := svc.Login(ctx, auth.LoginRequest{
			Email:    "jo@example.com",
			Password: "wrong",
		})
		assert.Equal(t, autherrors.ErrInvalidCredentials, err)
	})

	t.Run("unknown_email", func(t *testing.T) {
		repo.EXPECT().GetByEmail(ctx, "nobody@example.com").Return(auth.User{}, assert.AnError)

		_, _, err := svc.Login(ctx, auth.LoginRequest{
			Email:    "nobody@example.com",
			Password: "secret123",
		})
		assert.Equal(t, autherrors.ErrInvalidCredentials, err)
	})
}

func TestAuthService_Me(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := authmock.NewMockRepository(ctrl)
	svc := auth.NewService(repo)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		id := uuid.New()
		repo.EXPECT().GetByID(ctx, id).
			Return(auth.User{ID: id, Email: "jo@example.com", Role: "customer"}, nil)

		res, err := svc.Me(ctx, id.String())
		assert.NoError(t, err)
		assert.Equal(t, id.String(), res.ID)
	})

	t.Run("invalid_user_id", func(t *testing.T) {
		_, err := svc.Me(ctx, "not-a-uuid")
		assert.Equal(t, autherrors.ErrInvalidUserID, err)
	})

	t.Run("unknown_user", func(t *testing.T) {
		id := uuid.New()
		repo.EXPECT().GetByID(ctx, id).Return(auth.User{}, assert.AnError)

		_, err := svc.Me(ctx, id.String())
		assert.Equal(t, autherrors.ErrUnauthorized, err)
	})
}
