package models

// CartItemKind distinguishes how additions stack in the cart.
type CartItemKind string

const (
	CartItemRefurbished CartItemKind = "refurbished"
	CartItemAccessory   CartItemKind = "accessory"
)

// CartItem is a single line in a cart. ID is unique per line; ProductID
// references the catalog entry. Accessories stack by ProductID, refurbished
// devices always get their own line.
type CartItem struct {
	ID          string            `json:"id"`
	ProductID   string            `json:"productId"`
	Kind        CartItemKind      `json:"kind"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Price       float64           `json:"price"`
	Image       string            `json:"image,omitempty"`
	Quantity    int               `json:"quantity"`
	Details     map[string]string `json:"details,omitempty"`
}

// CartSummary is the derived view of a cart returned to the client.
type CartSummary struct {
	Items []CartItem `json:"items"`
	Total float64    `json:"total"`
	Count int        `json:"count"`
}
