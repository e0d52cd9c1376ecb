package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Laptop is the catalog record as stored. Immutable for a browsing
// session; only the admin CRUD path writes it.
type Laptop struct {
	ID               uuid.UUID           `json:"id"`
	Title            string              `json:"title"`
	Brand            string              `json:"brand"`
	Description      string              `json:"description"`
	ShortDescription string              `json:"shortDescription"`
	Price            decimal.Decimal     `json:"price"`
	OriginalPrice    decimal.NullDecimal `json:"originalPrice"`
	Category         string              `json:"category"`
	Rating           float64             `json:"rating"`
	ReviewCount      int32               `json:"reviewCount"`
	InStock          bool                `json:"inStock"`
	IsNew            bool                `json:"isNew"`
	IsFeatured       bool                `json:"isFeatured"`
	IsTrending       bool                `json:"isTrending"`
	Images           []string            `json:"images"`
	CreatedAt        time.Time           `json:"createdAt"`
	UpdatedAt        time.Time           `json:"updatedAt"`
}

// DiscountPercent is round((orig-price)/orig*100), never negative,
// zero when there is no original price to discount from.
func (l Laptop) DiscountPercent() int {
	if !l.OriginalPrice.Valid || l.OriginalPrice.Decimal.IsZero() {
		return 0
	}
	orig := l.OriginalPrice.Decimal
	pct := orig.Sub(l.Price).
		Div(orig).
		Mul(decimal.NewFromInt(100)).
		Round(0)
	p := int(pct.IntPart())
	if p < 0 {
		return 0
	}
	return p
}
