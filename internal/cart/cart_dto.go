package cart

// ==================== REQUEST STRUCTS ====================

type UpdateQuantityRequest struct {
	Quantity int32 `json:"quantity"`
}

// ==================== RESPONSE STRUCTS ====================

type ItemResponse struct {
	ID       string  `json:"id"`
	LaptopID string  `json:"laptopId"`
	Title    string  `json:"title"`
	Brand    string  `json:"brand"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"imageUrl,omitempty"`
	InStock  bool    `json:"inStock"`
	Quantity int32   `json:"quantity"`
	Subtotal float64 `json:"subtotal"`
}

// CartResponse always reflects a fresh read of the user's rows; Total
// and Count are derived on the way out and never stored.
type CartResponse struct {
	Items []ItemResponse `json:"items"`
	Total float64        `json:"total"`
	Count int64          `json:"count"`
}
