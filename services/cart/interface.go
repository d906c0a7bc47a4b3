package cart

import (
	"context"

	"github.com/Omarrio321/Aran-Repairs/models"
)

// Store persists a cart's full line collection as one blob under a fixed
// key per cart. A missing or unreadable blob loads as an empty cart.
type Store interface {
	Load(ctx context.Context, cartID string) ([]models.CartItem, error)
	Save(ctx context.Context, cartID string, items []models.CartItem) error
	Delete(ctx context.Context, cartID string) error
}

// Service defines the cart operations.
type Service interface {
	AddItem(ctx context.Context, cartID string, candidate models.CartItem) (*models.CartSummary, error)
	RemoveItem(ctx context.Context, cartID, itemID string) (*models.CartSummary, error)
	Clear(ctx context.Context, cartID string) error
	Summary(ctx context.Context, cartID string) (*models.CartSummary, error)
}
