package catalog

// ==================== REQUEST STRUCTS ====================

type ListRequest struct {
	Query      string   `form:"q"`
	Categories []string `form:"category"`
	Brands     []string `form:"brand"`
	MinPrice   float64  `form:"minPrice"`
	MaxPrice   float64  `form:"maxPrice"`
	SortBy     string   `form:"sortBy"`
}

type CreateLaptopRequest struct {
	Title            string   `json:"title" validate:"required"`
	Brand            string   `json:"brand" validate:"required"`
	Description      string   `json:"description"`
	ShortDescription string   `json:"shortDescription"`
	Price            float64  `json:"price" validate:"required,gt=0"`
	OriginalPrice    *float64 `json:"originalPrice" validate:"omitempty,gt=0"`
	Category         string   `json:"category" validate:"required"`
	Rating           float64  `json:"rating" validate:"gte=0,lte=5"`
	ReviewCount      int32    `json:"reviewCount" validate:"gte=0"`
	InStock          bool     `json:"inStock"`
	IsNew            bool     `json:"isNew"`
	IsFeatured       bool     `json:"isFeatured"`
	IsTrending       bool     `json:"isTrending"`
	Images           []string `json:"images"`
}

type UpdateLaptopRequest = CreateLaptopRequest

// ==================== RESPONSE STRUCTS ====================

type LaptopResponse struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Brand            string   `json:"brand"`
	Description      string   `json:"description"`
	ShortDescription string   `json:"shortDescription"`
	Price            float64  `json:"price"`
	OriginalPrice    *float64 `json:"originalPrice,omitempty"`
	DiscountPercent  int      `json:"discountPercent"`
	Category         string   `json:"category"`
	Rating           float64  `json:"rating"`
	ReviewCount      int32    `json:"reviewCount"`
	InStock          bool     `json:"inStock"`
	IsNew            bool     `json:"isNew"`
	IsFeatured       bool     `json:"isFeatured"`
	IsTrending       bool     `json:"isTrending"`
	Images           []string `json:"images"`
}

type ListResponse struct {
	Laptops []LaptopResponse `json:"laptops"`
	Total   int              `json:"total"`
}

type FacetsResponse struct {
	Brands     []string `json:"brands"`
	Categories []string `json:"categories"`
}

func toLaptopResponse(l Laptop) LaptopResponse {
	price, _ := l.Price.Float64()

	var origPrice *float64
	if l.OriginalPrice.Valid {
		f, _ := l.OriginalPrice.Decimal.Float64()
		origPrice = &f
	}

	return LaptopResponse{
		ID:               l.ID.String(),
		Title:            l.Title,
		Brand:            l.Brand,
		Description:      l.Description,
		ShortDescription: l.ShortDescription,
		Price:            price,
		OriginalPrice:    origPrice,
		DiscountPercent:  l.DiscountPercent(),
		Category:         l.Category,
		Rating:           l.Rating,
		ReviewCount:      l.ReviewCount,
		InStock:          l.InStock,
		IsNew:            l.IsNew,
		IsFeatured:       l.IsFeatured,
		IsTrending:       l.IsTrending,
		Images:           l.Images,
	}
}
