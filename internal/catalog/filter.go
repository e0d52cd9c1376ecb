package catalog

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

type SortKey string

const (
	SortFeatured    SortKey = "featured"
	SortPriceAsc    SortKey = "price-asc"
	SortPriceDesc   SortKey = "price-desc"
	SortRatingDesc  SortKey = "rating-desc"
	SortNewestFirst SortKey = "newest-first"
)

// FilterState is the full set of active listing predicates. Empty
// category/brand sets mean "no restriction"; the literal "All"
// category is treated the same way.
type FilterState struct {
	Query      string
	Categories []string
	Brands     []string
	MinPrice   decimal.Decimal
	MaxPrice   decimal.Decimal
	SortBy     SortKey
}

// Apply filters then sorts, returning a fresh slice. Pure: the input
// slice and its order are never touched, so ties under every sort key
// keep catalog order.
func Apply(laptops []Laptop, f FilterState) []Laptop {
	out := make([]Laptop, 0, len(laptops))
	for _, l := range laptops {
		if f.matches(l) {
			out = append(out, l)
		}
	}
	sortLaptops(out, f.SortBy)
	return out
}

func (f FilterState) matches(l Laptop) bool {
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(l.Title), q) &&
			!strings.Contains(strings.ToLower(l.Brand), q) &&
			!strings.Contains(strings.ToLower(l.Description), q) {
			return false
		}
	}

	if len(f.Categories) > 0 && !containsAll(f.Categories) {
		if !contains(f.Categories, l.Category) {
			return false
		}
	}

	if len(f.Brands) > 0 && !contains(f.Brands, l.Brand) {
		return false
	}

	// Inclusive on both ends. Min above max is applied as-is and
	// simply matches nothing.
	if l.Price.Cmp(f.MinPrice) < 0 || l.Price.Cmp(f.MaxPrice) > 0 {
		return false
	}

	return true
}

func sortLaptops(laptops []Laptop, key SortKey) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(laptops, func(i, j int) bool {
			return laptops[i].Price.LessThan(laptops[j].Price)
		})
	case SortPriceDesc:
		sort.SliceStable(laptops, func(i, j int) bool {
			return laptops[i].Price.GreaterThan(laptops[j].Price)
		})
	case SortRatingDesc:
		sort.SliceStable(laptops, func(i, j int) bool {
			return laptops[i].Rating > laptops[j].Rating
		})
	case SortNewestFirst:
		sort.SliceStable(laptops, func(i, j int) bool {
			return laptops[i].IsNew && !laptops[j].IsNew
		})
	default:
		// featured, and any unknown key
		sort.SliceStable(laptops, func(i, j int) bool {
			return laptops[i].IsFeatured && !laptops[j].IsFeatured
		})
	}
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsAll(set []string) bool {
	return contains(set, "All")
}
