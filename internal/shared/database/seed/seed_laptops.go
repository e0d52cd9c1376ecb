package seed

import (
	"context"
	"database/sql"
	"fmt"

	"laptop-store-api/internal/catalog"
	"laptop-store-api/internal/shared/database/helper"

	"github.com/google/uuid"
)

func floatPtr(f float64) *float64 { return &f }

func SeedLaptops(db *sql.DB) error {
	ctx := context.Background()
	repo := catalog.NewRepository(db)

	laptops := []struct {
		Title         string
		Brand         string
		Description   string
		Short         string
		Price         float64
		OriginalPrice *float64
		Category      string
		Rating        float64
		ReviewCount   int32
		InStock       bool
		IsNew         bool
		IsFeatured    bool
		IsTrending    bool
	}{
		{
			Title:         "MacBook Pro 16-inch M3 Max",
			Brand:         "Apple",
			Description:   "The most powerful MacBook Pro ever built, for creators and professionals who demand ultimate performance.",
			Short:         "Ultimate performance for professionals",
			Price:         2499,
			OriginalPrice: floatPtr(2799),
			Category:      "Premium",
			Rating:        4.8,
			ReviewCount:   1247,
			InStock:       true,
			IsNew:         true,
			IsFeatured:    true,
			IsTrending:    true,
		},
		{
			Title:         "Dell XPS 13 Plus",
			Brand:         "Dell",
			Description:   "Ultra-thin laptop with stunning InfinityEdge display and premium materials for the modern professional.",
			Short:         "Ultra-thin design meets premium performance",
			Price:         1299,
			OriginalPrice: floatPtr(1499),
			Category:      "Business",
			Rating:        4.5,
			ReviewCount:   856,
			InStock:       true,
			IsFeatured:    true,
		},
		{
			Title:       "ASUS ROG Strix G16",
			Brand:       "ASUS",
			Description: "Gaming powerhouse with high refresh display and advanced cooling for marathon sessions.",
			Short:       "Built to win",
			Price:       1599,
			Category:    "Gaming",
			Rating:      4.6,
			ReviewCount: 634,
			InStock:     true,
			IsNew:       true,
			IsTrending:  true,
		},
		{
			Title:       "Lenovo ThinkPad X1 Carbon",
			Brand:       "Lenovo",
			Description: "Legendary business laptop with military-grade durability and all-day battery life.",
			Short:       "Business-class reliability",
			Price:       1449,
			Category:    "Business",
			Rating:      4.7,
			ReviewCount: 923,
			InStock:     true,
		},
		{
			Title:       "Acer Aspire 5",
			Brand:       "Acer",
			Description: "Everyday laptop with a solid feature set at a budget-friendly price.",
			Short:       "Everyday value",
			Price:       549,
			Category:    "Budget",
			Rating:      4.1,
			ReviewCount: 412,
			InStock:     true,
		},
	}

	for _, l := range laptops {
		_, err := repo.Create(ctx, catalog.Laptop{
			ID:               uuid.New(),
			Title:            l.Title,
			Brand:            l.Brand,
			Description:      l.Description,
			ShortDescription: l.Short,
			Price:            helper.Float64ToDecimalExact(l.Price),
			OriginalPrice:    helper.Float64PtrToNullDecimal(l.OriginalPrice),
			Category:         l.Category,
			Rating:           l.Rating,
			ReviewCount:      l.ReviewCount,
			InStock:          l.InStock,
			IsNew:            l.IsNew,
			IsFeatured:       l.IsFeatured,
			IsTrending:       l.IsTrending,
			Images:           []string{},
		})
		if err != nil {
			return fmt.Errorf("seed laptop %q: %w", l.Title, err)
		}
	}

	return nil
}
