package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"sort"

	"laptop-store-api/internal/outbox"
	"laptop-store-api/internal/pkg/apperror"
	"laptop-store-api/internal/shared/database/helper"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=catalog_service.go -destination=../mock/catalog/catalog_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, req ListRequest) (ListResponse, error)
	Facets(ctx context.Context) (FacetsResponse, error)
	GetByID(ctx context.Context, id string) (LaptopResponse, error)

	Create(ctx context.Context, req CreateLaptopRequest) (LaptopResponse, error)
	Update(ctx context.Context, id string, req UpdateLaptopRequest) (LaptopResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db         *sql.DB
	repo       Repository
	cache      Cache
	outboxRepo outbox.Repository
	validate   *validator.Validate
}

func NewService(db *sql.DB, repo Repository, cache Cache, outboxRepo outbox.Repository) Service {
	return &service{
		db:         db,
		repo:       repo,
		cache:      cache,
		outboxRepo: outboxRepo,
		validate:   validator.New(),
	}
}

// noPriceCeiling stands in for an unset maxPrice query param.
var noPriceCeiling = decimal.NewFromInt(999999999)

// loadCatalog serves the full record set from the snapshot cache,
// falling back to Postgres and refilling on a miss.
func (s *service) loadCatalog(ctx context.Context) ([]Laptop, error) {
	if laptops, ok := s.cache.GetSnapshot(ctx); ok {
		return laptops, nil
	}

	laptops, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.SetSnapshot(ctx, laptops)
	return laptops, nil
}

func (s *service) List(ctx context.Context, req ListRequest) (ListResponse, error) {
	laptops, err := s.loadCatalog(ctx)
	if err != nil {
		return ListResponse{}, ErrCatalogFailed
	}

	maxPrice := noPriceCeiling
	if req.MaxPrice != 0 {
		maxPrice = helper.Float64ToDecimalExact(req.MaxPrice)
	}

	filtered := Apply(laptops, FilterState{
		Query:      req.Query,
		Categories: req.Categories,
		Brands:     req.Brands,
		MinPrice:   helper.Float64ToDecimalExact(req.MinPrice),
		MaxPrice:   maxPrice,
		SortBy:     SortKey(req.SortBy),
	})

	items := make([]LaptopResponse, 0, len(filtered))
	for _, l := range filtered {
		items = append(items, toLaptopResponse(l))
	}

	return ListResponse{Laptops: items, Total: len(items)}, nil
}

func (s *service) Facets(ctx context.Context) (FacetsResponse, error) {
	laptops, err := s.loadCatalog(ctx)
	if err != nil {
		return FacetsResponse{}, ErrCatalogFailed
	}

	brandSet := map[string]struct{}{}
	categorySet := map[string]struct{}{}
	for _, l := range laptops {
		brandSet[l.Brand] = struct{}{}
		categorySet[l.Category] = struct{}{}
	}

	brands := make([]string, 0, len(brandSet))
	for b := range brandSet {
		brands = append(brands, b)
	}
	sort.Strings(brands)

	categories := make([]string, 0, len(categorySet)+1)
	for c := range categorySet {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	categories = append([]string{"All"}, categories...)

	return FacetsResponse{Brands: brands, Categories: categories}, nil
}

func (s *service) GetByID(ctx context.Context, idStr string) (LaptopResponse, error) {
	id, err := uuid.Parse(idStr)
	if err != nil {
		return LaptopResponse{}, ErrInvalidLaptopID
	}

	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return LaptopResponse{}, ErrLaptopNotFound
		}
		return LaptopResponse{}, ErrCatalogFailed
	}

	return toLaptopResponse(l), nil
}

func (s *service) fromRequest(id uuid.UUID, req CreateLaptopRequest) Laptop {
	return Laptop{
		ID:               id,
		Title:            req.Title,
		Brand:            req.Brand,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Price:            helper.Float64ToDecimalExact(req.Price),
		OriginalPrice:    helper.Float64PtrToNullDecimal(req.OriginalPrice),
		Category:         req.Category,
		Rating:           req.Rating,
		ReviewCount:      req.ReviewCount,
		InStock:          req.InStock,
		IsNew:            req.IsNew,
		IsFeatured:       req.IsFeatured,
		IsTrending:       req.IsTrending,
		Images:           req.Images,
	}
}

func checkDiscount(l Laptop) error {
	if l.OriginalPrice.Valid && l.OriginalPrice.Decimal.LessThan(l.Price) {
		return ErrInvalidDiscount
	}
	return nil
}

func (s *service) Create(ctx context.Context, req CreateLaptopRequest) (LaptopResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return LaptopResponse{}, apperror.Wrap(err, apperror.CodeInvalidInput, "Invalid laptop payload", http.StatusBadRequest)
	}

	l := s.fromRequest(uuid.New(), req)
	if err := checkDiscount(l); err != nil {
		return LaptopResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LaptopResponse{}, ErrCatalogFailed
	}
	defer tx.Rollback()

	created, err := s.repo.WithTx(tx).Create(ctx, l)
	if err != nil {
		return LaptopResponse{}, ErrCatalogFailed
	}

	if err := s.appendEvent(ctx, tx, "catalog.laptop_created", created.ID); err != nil {
		return LaptopResponse{}, ErrCatalogFailed
	}

	if err := tx.Commit(); err != nil {
		return LaptopResponse{}, ErrCatalogFailed
	}

	s.cache.Invalidate(ctx)
	return toLaptopResponse(created), nil
}

func (s *service) Update(ctx context.Context, idStr string, req UpdateLaptopRequest) (LaptopResponse, error) {
	id, err := uuid.Parse(idStr)
	if err != nil {
		return LaptopResponse{}, ErrInvalidLaptopID
	}

	if err := s.validate.Struct(req); err != nil {
		return LaptopResponse{}, apperror.Wrap(err, apperror.CodeInvalidInput, "Invalid laptop payload", http.StatusBadRequest)
	}

	l := s.fromRequest(id, req)
	if err := checkDiscount(l); err != nil {
		return LaptopResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LaptopResponse{}, ErrCatalogFailed
	}
	defer tx.Rollback()

	updated, err := s.repo.WithTx(tx).Update(ctx, l)
	if err != nil {
		if err == sql.ErrNoRows {
			return LaptopResponse{}, ErrLaptopNotFound
		}
		return LaptopResponse{}, ErrCatalogFailed
	}

	if err := s.appendEvent(ctx, tx, "catalog.laptop_updated", updated.ID); err != nil {
		return LaptopResponse{}, ErrCatalogFailed
	}

	if err := tx.Commit(); err != nil {
		return LaptopResponse{}, ErrCatalogFailed
	}

	s.cache.Invalidate(ctx)
	return toLaptopResponse(updated), nil
}

func (s *service) Delete(ctx context.Context, idStr string) error {
	id, err := uuid.Parse(idStr)
	if err != nil {
		return ErrInvalidLaptopID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ErrCatalogFailed
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Delete(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return ErrLaptopNotFound
		}
		return ErrCatalogFailed
	}

	if err := s.appendEvent(ctx, tx, "catalog.laptop_deleted", id); err != nil {
		return ErrCatalogFailed
	}

	if err := tx.Commit(); err != nil {
		return ErrCatalogFailed
	}

	s.cache.Invalidate(ctx)
	return nil
}

func (s *service) appendEvent(ctx context.Context, tx *sql.Tx, eventType string, laptopID uuid.UUID) error {
	payload, err := json.Marshal(map[string]string{"laptopId": laptopID.String()})
	if err != nil {
		return err
	}
	return s.outboxRepo.WithTx(tx).Append(ctx, eventType, payload)
}
