package catalog_test

import (
	"context"
	"database/sql"
	"testing"

	"laptop-store-api/internal/catalog"
	catalogmock "laptop-store-api/internal/mock/catalog"
	outboxmock "laptop-store-api/internal/mock/outbox"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func floatPtr(f float64) *float64 { return &f }

func decimalNull(f float64) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.NewFromFloat(f), Valid: true}
}

func validCreateRequest() catalog.CreateLaptopRequest {
	return catalog.CreateLaptopRequest{
		Title:         "MacBook Pro 16 M3 Max",
		Brand:         "Apple",
		Price:         2499,
		OriginalPrice: floatPtr(2799),
		Category:      "Business",
		Rating:        4.9,
		ReviewCount:   128,
		InStock:       true,
	}
}

func TestCatalogService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := catalogmock.NewMockRepository(ctrl)
	cache := catalogmock.NewMockCache(ctrl)
	outboxRepo := outboxmock.NewMockRepository(ctrl)
	svc := catalog.NewService(db, repo, cache, outboxRepo)
	ctx := context.Background()

	record := laptop("Legion 5", "Lenovo", "Gaming", 1399)

	t.Run("cache_hit_skips_repo", func(t *testing.T) {
		cache.EXPECT().GetSnapshot(ctx).Return([]catalog.Laptop{record}, true)

		res, err := svc.List(ctx, catalog.ListRequest{})
		assert.NoError(t, err)
		assert.Equal(t, 1, res.Total)
		assert.Equal(t, "Legion 5", res.Laptops[0].Title)
	})

	t.Run("cache_miss_refills_from_repo", func(t *testing.T) {
		cache.EXPECT().GetSnapshot(ctx).Return(nil, false)
		repo.EXPECT().ListAll(ctx).Return([]catalog.Laptop{record}, nil)
		cache.EXPECT().SetSnapshot(ctx, gomock.Any())

		res, err := svc.List(ctx, catalog.ListRequest{})
		assert.NoError(t, err)
		assert.Equal(t, 1, res.Total)
	})

	t.Run("unset_max_price_means_no_ceiling", func(t *testing.T) {
		expensive := laptop("MacBook Pro 16", "Apple", "Business", 2499)
		cache.EXPECT().GetSnapshot(ctx).Return([]catalog.Laptop{expensive}, true)

		res, err := svc.List(ctx, catalog.ListRequest{MaxPrice: 0})
		assert.NoError(t, err)
		assert.Equal(t, 1, res.Total)
	})

	t.Run("filters_applied", func(t *testing.T) {
		other := laptop("ThinkPad T14", "Lenovo", "Business", 1499)
		cache.EXPECT().GetSnapshot(ctx).Return([]catalog.Laptop{record, other}, true)

		res, err := svc.List(ctx, catalog.ListRequest{Categories: []string{"Gaming"}})
		assert.NoError(t, err)
		assert.Equal(t, 1, res.Total)
		assert.Equal(t, "Legion 5", res.Laptops[0].Title)
	})

	t.Run("repo_error", func(t *testing.T) {
		cache.EXPECT().GetSnapshot(ctx).Return(nil, false)
		repo.EXPECT().ListAll(ctx).Return(nil, assert.AnError)

		_, err := svc.List(ctx, catalog.ListRequest{})
		assert.Equal(t, catalog.ErrCatalogFailed, err)
	})
}

func TestCatalogService_Facets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := catalogmock.NewMockRepository(ctrl)
	cache := catalogmock.NewMockCache(ctrl)
	outboxRepo := outboxmock.NewMockRepository(ctrl)
	svc := catalog.NewService(db, repo, cache, outboxRepo)
	ctx := context.Background()

	cache.EXPECT().GetSnapshot(ctx).Return([]catalog.Laptop{
		laptop("ROG Strix", "ASUS", "Gaming", 1899),
		laptop("ThinkPad T14", "Lenovo", "Business", 1499),
		laptop("Legion 5", "Lenovo", "Gaming", 1399),
	}, true)

	res, err := svc.Facets(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []string{"ASUS", "Lenovo"}, res.Brands)
	assert.Equal(t, []string{"All", "Business", "Gaming"}, res.Categories)
}

func TestCatalogService_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := catalogmock.NewMockRepository(ctrl)
	cache := catalogmock.NewMockCache(ctrl)
	outboxRepo := outboxmock.NewMockRepository(ctrl)
	svc := catalog.NewService(db, repo, cache, outboxRepo)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		record := laptop("Legion 5", "Lenovo", "Gaming", 1399)
		repo.EXPECT().GetByID(ctx, record.ID).Return(record, nil)

		res, err := svc.GetByID(ctx, record.ID.String())
		assert.NoError(t, err)
		assert.Equal(t, record.ID.String(), res.ID)
	})

	t.Run("invalid_id", func(t *testing.T) {
		_, err := svc.GetByID(ctx, "not-a-uuid")
		assert.Equal(t, catalog.ErrInvalidLaptopID, err)
	})

	t.Run("not_found", func(t *testing.T) {
		id := uuid.New()
		repo.EXPECT().GetByID(ctx, id).Return(catalog.Laptop{}, sql.ErrNoRows)

		_, err := svc.GetByID(ctx, id.String())
		assert.Equal(t, catalog.ErrLaptopNotFound, err)
	})
}

func TestCatalogService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, mockDB, _ := sqlmock.New()
	defer db.Close()

	repo := catalogmock.NewMockRepository(ctrl)
	cache := catalogmock.NewMockCache(ctrl)
	outboxRepo := outboxmock.NewMockRepository(ctrl)
	svc := catalog.NewService(db, repo, cache, outboxRepo)
	ctx := context.Background()

	t.Run("success_records_event_and_invalidates_cache", func(t *testing.T) {
		mockDB.ExpectBegin()
		mockDB.ExpectCommit()

		created := laptop("MacBook Pro 16 M3 Max", "Apple", "Business", 2499)

		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(created, nil)
		outboxRepo.EXPECT().WithTx(gomock.Any()).Return(outboxRepo)
		outboxRepo.EXPECT().Append(ctx, "catalog.laptop_created", gomock.Any()).Return(nil)
		cache.EXPECT().Invalidate(ctx)

		res, err := svc.Create(ctx, validCreateRequest())
		assert.NoError(t, err)
		assert.Equal(t, "MacBook Pro 16 M3 Max", res.Title)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("invalid_payload", func(t *testing.T) {
		req := validCreateRequest()
		req.Title = ""

		_, err := svc.Create(ctx, req)
		assert.Error(t, err)
	})

	t.Run("original_price_below_sale_price", func(t *testing.T) {
		req := validCreateRequest()
		req.OriginalPrice = floatPtr(1999)

		_, err := svc.Create(ctx, req)
		assert.Equal(t, catalog.ErrInvalidDiscount, err)
	})

	t.Run("repo_error_rolls_back", func(t *testing.T) {
		mockDB.ExpectBegin()
		mockDB.ExpectRollback()

		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(catalog.Laptop{}, assert.AnError)

		_, err := svc.Create(ctx, validCreateRequest())
		assert.Equal(t, catalog.ErrCatalogFailed, err)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestCatalogService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, mockDB, _ := sqlmock.New()
	defer db.Close()

	repo := catalogmock.NewMockRepository(ctrl)
	cache := catalogmock.NewMockCache(ctrl)
	outboxRepo := outboxmock.NewMockRepository(ctrl)
	svc := catalog.NewService(db, repo, cache, outboxRepo)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		id := uuid.New()

		mockDB.ExpectBegin()
		mockDB.ExpectCommit()

		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().Delete(ctx, id).Return(nil)
		outboxRepo.EXPECT().WithTx(gomock.Any()).Return(outboxRepo)
		outboxRepo.EXPECT().Append(ctx, "catalog.laptop_deleted", gomock.Any()).Return(nil)
		cache.EXPECT().Invalidate(ctx)

		err := svc.Delete(ctx, id.String())
		assert.NoError(t, err)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("not_found", func(t *testing.T) {
		id := uuid.New()

		mockDB.ExpectBegin()
		mockDB.ExpectRollback()

		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().Delete(ctx, id).Return(sql.ErrNoRows)

		err := svc.Delete(ctx, id.String())
		assert.Equal(t, catalog.ErrLaptopNotFound, err)
	})

	t.Run("invalid_id", func(t *testing.T) {
		err := svc.Delete(ctx, "nope")
		assert.Equal(t, catalog.ErrInvalidLaptopID, err)
	})
}

func TestLaptop_DiscountPercent(t *testing.T) {
	t.Run("rounds_to_nearest_percent", func(t *testing.T) {
		l := laptop("MacBook Pro 16 M3 Max", "Apple", "Business", 2499)
		l.OriginalPrice = decimalNull(2799)
		// (2799-2499)/2799*100 = 10.718...
		assert.Equal(t, 11, l.DiscountPercent())
	})

	t.Run("no_original_price", func(t *testing.T) {
		l := laptop("Aspire 5", "Acer", "Budget", 549)
		assert.Equal(t, 0, l.DiscountPercent())
	})

	t.Run("never_negative", func(t *testing.T) {
		l := laptop("Legion 5", "Lenovo", "Gaming", 1399)
		l.OriginalPrice = decimalNull(999)
		assert.Equal(t, 0, l.DiscountPercent())
	})
}
