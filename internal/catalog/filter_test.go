package catalog_test

import (
	"testing"

	"laptop-store-api/internal/catalog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func laptop(title, brand, category string, price float64) catalog.Laptop {
	return catalog.Laptop{
		ID:       uuid.New(),
		Title:    title,
		Brand:    brand,
		Category: category,
		Price:    decimal.NewFromFloat(price),
		InStock:  true,
	}
}

// wideOpen matches every record: no text, no sets, price from zero to
// an effectively unbounded ceiling.
func wideOpen() catalog.FilterState {
	return catalog.FilterState{MaxPrice: decimal.NewFromInt(999999999)}
}

func titles(laptops []catalog.Laptop) []string {
	out := make([]string, 0, len(laptops))
	for _, l := range laptops {
		out = append(out, l.Title)
	}
	return out
}

func TestApply_NoFiltersPreservesCatalogOrder(t *testing.T) {
	in := []catalog.Laptop{
		laptop("MacBook Pro 16", "Apple", "Business", 2499),
		laptop("Dell XPS 13 Plus", "Dell", "Ultrabook", 1299),
		laptop("ROG Zephyrus G14", "ASUS", "Gaming", 1599),
	}

	out := catalog.Apply(in, wideOpen())

	assert.Equal(t, titles(in), titles(out))
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	in := []catalog.Laptop{
		laptop("B", "Apple", "Business", 2000),
		laptop("A", "Dell", "Business", 1000),
	}
	f := wideOpen()
	f.SortBy = catalog.SortPriceAsc

	catalog.Apply(in, f)

	assert.Equal(t, []string{"B", "A"}, titles(in))
}

func TestApply_QueryMatchesTitleBrandDescription(t *testing.T) {
	withDesc := laptop("ThinkPad X1", "Lenovo", "Business", 1800)
	withDesc.Description = "Carbon fiber chassis"

	in := []catalog.Laptop{
		laptop("MacBook Air", "Apple", "Ultrabook", 1199),
		laptop("Aspire 5", "Acer", "Budget", 549),
		withDesc,
	}

	t.Run("title_case_insensitive", func(t *testing.T) {
		f := wideOpen()
		f.Query = "macbook"
		out := catalog.Apply(in, f)
		assert.Equal(t, []string{"MacBook Air"}, titles(out))
	})

	t.Run("brand", func(t *testing.T) {
		f := wideOpen()
		f.Query = "acer"
		out := catalog.Apply(in, f)
		assert.Equal(t, []string{"Aspire 5"}, titles(out))
	})

	t.Run("description", func(t *testing.T) {
		f := wideOpen()
		f.Query = "carbon"
		out := catalog.Apply(in, f)
		assert.Equal(t, []string{"ThinkPad X1"}, titles(out))
	})

	t.Run("no_match", func(t *testing.T) {
		f := wideOpen()
		f.Query = "chromebook"
		out := catalog.Apply(in, f)
		assert.Empty(t, out)
	})
}

func TestApply_CategoryAndBrandSets(t *testing.T) {
	in := []catalog.Laptop{
		laptop("Legion 5", "Lenovo", "Gaming", 1399),
		laptop("ThinkPad T14", "Lenovo", "Business", 1499),
		laptop("ROG Strix", "ASUS", "Gaming", 1899),
	}

	t.Run("all_category_means_no_restriction", func(t *testing.T) {
		f := wideOpen()
		f.Categories = []string{"All"}
		out := catalog.Apply(in, f)
		assert.Len(t, out, 3)
	})

	t.Run("single_category", func(t *testing.T) {
		f := wideOpen()
		f.Categories = []string{"Business"}
		out := catalog.Apply(in, f)
		assert.Equal(t, []string{"ThinkPad T14"}, titles(out))
	})

	t.Run("brand_set", func(t *testing.T) {
		f := wideOpen()
		f.Brands = []string{"ASUS"}
		out := catalog.Apply(in, f)
		assert.Equal(t, []string{"ROG Strix"}, titles(out))
	})

	t.Run("category_and_brand_conjoined", func(t *testing.T) {
		f := wideOpen()
		f.Categories = []string{"Gaming"}
		f.Brands = []string{"Lenovo"}
		out := catalog.Apply(in, f)
		assert.Equal(t, []string{"Legion 5"}, titles(out))
	})
}

func TestApply_PriceRangeInclusive(t *testing.T) {
	in := []catalog.Laptop{
		laptop("Aspire 5", "Acer", "Budget", 549),
		laptop("Legion 5", "Lenovo", "Gaming", 999),
		laptop("ThinkPad T14", "Lenovo", "Business", 1499),
		laptop("ROG Strix", "ASUS", "Gaming", 1999),
		laptop("MacBook Pro 16", "Apple", "Business", 2499),
	}

	f := wideOpen()
	f.MinPrice = decimal.NewFromInt(999)
	f.MaxPrice = decimal.NewFromInt(1999)
	f.Categories = []string{"Gaming", "Business"}

	out := catalog.Apply(in, f)

	// Both endpoints are in range; the 549 and 2499 records are not.
	assert.Equal(t, []string{"Legion 5", "ThinkPad T14", "ROG Strix"}, titles(out))
}

func TestApply_MinAboveMaxMatchesNothing(t *testing.T) {
	in := []catalog.Laptop{
		laptop("Legion 5", "Lenovo", "Gaming", 1399),
		laptop("ThinkPad T14", "Lenovo", "Business", 1499),
	}

	f := wideOpen()
	f.MinPrice = decimal.NewFromInt(2000)
	f.MaxPrice = decimal.NewFromInt(1000)

	out := catalog.Apply(in, f)

	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestApply_SortPriceAsc(t *testing.T) {
	in := []catalog.Laptop{
		laptop("C", "Apple", "Business", 2499),
		laptop("A", "Acer", "Budget", 549),
		laptop("B", "Lenovo", "Gaming", 1399),
	}

	f := wideOpen()
	f.SortBy = catalog.SortPriceAsc
	out := catalog.Apply(in, f)

	assert.Equal(t, []string{"A", "B", "C"}, titles(out))
	for i := 1; i < len(out); i++ {
		assert.True(t, out[i-1].Price.LessThanOrEqual(out[i].Price))
	}
}

func TestApply_SortPriceDesc(t *testing.T) {
	in := []catalog.Laptop{
		laptop("A", "Acer", "Budget", 549),
		laptop("C", "Apple", "Business", 2499),
		laptop("B", "Lenovo", "Gaming", 1399),
	}

	f := wideOpen()
	f.SortBy = catalog.SortPriceDesc
	out := catalog.Apply(in, f)

	assert.Equal(t, []string{"C", "B", "A"}, titles(out))
}

func TestApply_SortTiesKeepCatalogOrder(t *testing.T) {
	in := []catalog.Laptop{
		laptop("First", "Acer", "Budget", 999),
		laptop("Second", "Lenovo", "Budget", 999),
		laptop("Third", "ASUS", "Budget", 999),
	}

	f := wideOpen()
	f.SortBy = catalog.SortPriceAsc
	out := catalog.Apply(in, f)

	assert.Equal(t, []string{"First", "Second", "Third"}, titles(out))
}

func TestApply_SortRatingDesc(t *testing.T) {
	a := laptop("A", "Acer", "Budget", 549)
	a.Rating = 4.2
	b := laptop("B", "Lenovo", "Gaming", 1399)
	b.Rating = 4.9
	c := laptop("C", "ASUS", "Gaming", 1899)
	c.Rating = 4.5

	f := wideOpen()
	f.SortBy = catalog.SortRatingDesc
	out := catalog.Apply([]catalog.Laptop{a, b, c}, f)

	assert.Equal(t, []string{"B", "C", "A"}, titles(out))
}

func TestApply_SortNewestFirstIsStablePartition(t *testing.T) {
	a := laptop("OldOne", "Acer", "Budget", 549)
	b := laptop("NewOne", "Lenovo", "Gaming", 1399)
	b.IsNew = true
	c := laptop("OldTwo", "ASUS", "Gaming", 1899)
	d := laptop("NewTwo", "Apple", "Business", 2499)
	d.IsNew = true

	f := wideOpen()
	f.SortBy = catalog.SortNewestFirst
	out := catalog.Apply([]catalog.Laptop{a, b, c, d}, f)

	// New records move to the front, both halves keep catalog order.
	assert.Equal(t, []string{"NewOne", "NewTwo", "OldOne", "OldTwo"}, titles(out))
}

func TestApply_UnknownSortFallsBackToFeatured(t *testing.T) {
	a := laptop("Plain", "Acer", "Budget", 549)
	b := laptop("Starred", "Apple", "Business", 2499)
	b.IsFeatured = true

	f := wideOpen()
	f.SortBy = catalog.SortKey("upside-down")
	out := catalog.Apply([]catalog.Laptop{a, b}, f)

	assert.Equal(t, []string{"Starred", "Plain"}, titles(out))
}

func TestApply_EmptyCatalog(t *testing.T) {
	out := catalog.Apply(nil, wideOpen())
	assert.NotNil(t, out)
	assert.Empty(t, out)
}
