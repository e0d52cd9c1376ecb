package wishlist

import "time"

// ==================== RESPONSE STRUCTS ====================

type ItemResponse struct {
	ID            string    `json:"id"`
	LaptopID      string    `json:"laptopId"`
	Title         string    `json:"title"`
	Brand         string    `json:"brand"`
	Price         float64   `json:"price"`
	OriginalPrice *float64  `json:"originalPrice,omitempty"`
	Rating        float64   `json:"rating"`
	ImageURL      string    `json:"imageUrl,omitempty"`
	InStock       bool      `json:"inStock"`
	AddedAt       time.Time `json:"addedAt"`
}

type WishlistResponse struct {
	Items     []ItemResponse `json:"items"`
	ItemCount int            `json:"itemCount"`
}

type ToggleResponse struct {
	Added    bool             `json:"added"`
	Wishlist WishlistResponse `json:"wishlist"`
}

type ContainsResponse struct {
	InWishlist bool `json:"inWishlist"`
}
