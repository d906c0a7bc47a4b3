package cart

import (
	"context"
	"fmt"

	"github.com/Omarrio321/Aran-Repairs/models"

	"github.com/google/uuid"
)

// DefaultCartService implements Service on top of an injected Store.
type DefaultCartService struct {
	Store Store
}

// AddItem adds a candidate line to the cart. Accessories stack: adding a
// productId already in the cart bumps that line's quantity. Refurbished
// devices are treated as distinguishable units and always get a new line.
func (s *DefaultCartService) AddItem(ctx context.Context, cartID string, candidate models.CartItem) (*models.CartSummary, error) {
	if candidate.ProductID == "" {
		return nil, fmt.Errorf("cart: candidate is missing a product id")
	}
	if candidate.Kind != models.CartItemAccessory && candidate.Kind != models.CartItemRefurbished {
		return nil, fmt.Errorf("cart: unknown item kind %q", candidate.Kind)
	}

	items, err := s.Store.Load(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("cart: load failed: %w", err)
	}

	stacked := false
	if candidate.Kind == models.CartItemAccessory {
		for i := range items {
			if items[i].ProductID == candidate.ProductID {
				items[i].Quantity++
				stacked = true
				break
			}
		}
	}
	if !stacked {
		candidate.ID = uuid.New().String()
		candidate.Quantity = 1
		items = append(items, candidate)
	}

	if err := s.Store.Save(ctx, cartID, items); err != nil {
		return nil, fmt.Errorf("cart: save failed: %w", err)
	}
	return summarize(items), nil
}

// RemoveItem deletes the line with the given instance id. Removing an
// absent line is a no-op.
func (s *DefaultCartService) RemoveItem(ctx context.Context, cartID, itemID string) (*models.CartSummary, error) {
	items, err := s.Store.Load(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("cart: load failed: %w", err)
	}

	kept := items[:0]
	for _, it := range items {
		if it.ID != itemID {
			kept = append(kept, it)
		}
	}

	if err := s.Store.Save(ctx, cartID, kept); err != nil {
		return nil, fmt.Errorf("cart: save failed: %w", err)
	}
	return summarize(kept), nil
}

// Clear empties the cart.
func (s *DefaultCartService) Clear(ctx context.Context, cartID string) error {
	if err := s.Store.Delete(ctx, cartID); err != nil {
		return fmt.Errorf("cart: clear failed: %w", err)
	}
	return nil
}

// Summary returns the cart's lines with derived totals.
func (s *DefaultCartService) Summary(ctx context.Context, cartID string) (*models.CartSummary, error) {
	items, err := s.Store.Load(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("cart: load failed: %w", err)
	}
	return summarize(items), nil
}

func summarize(items []models.CartItem) *models.CartSummary {
	summary := &models.CartSummary{Items: items}
	if summary.Items == nil {
		summary.Items = []models.CartItem{}
	}
	for _, it := range items {
		summary.Total += it.Price * float64(it.Quantity)
		summary.Count += it.Quantity
	}
	return summary
}
