package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/NoobProgram-ai/OaksDonutShop/internal/models"
	"github.com/NoobProgram-ai/OaksDonutShop/internal/repo"
)

// TaxRate is the fixed sales-tax rate applied at checkout.
const TaxRate = 0.06

// CartItem is one pending line of the current order. Name and UnitPrice are
// snapshots taken when the line was added; later menu edits do not reach
// into an open cart.
type CartItem struct {
	MenuID    int     `json:"menu_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

type Receipt struct {
	OrderID  int     `json:"order_id"`
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// CartService holds the register's single in-memory cart and turns it into
// a persisted order at checkout.
type CartService struct {
	Repo *repo.GormRepo

	mu    sync.Mutex
	items []CartItem
}

// AddItem appends a line, or merges into an existing line with the same
// menu id. On merge the stored unit price wins: the line total is recomputed
// from the snapshot taken at first add, not from the current menu.
func (s *CartService) AddItem(menuID int, name string, unitPrice float64, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("quantity must be > 0: %w", ErrValidation)
	}
	if unitPrice < 0 {
		return fmt.Errorf("unit price must be >= 0: %w", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].MenuID == menuID {
			s.items[i].Quantity += quantity
			s.items[i].LineTotal = float64(s.items[i].Quantity) * s.items[i].UnitPrice
			return nil
		}
	}

	s.items = append(s.items, CartItem{
		MenuID:    menuID,
		Name:      name,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		LineTotal: float64(quantity) * unitPrice,
	})
	return nil
}

// RemoveItem drops the line matching menuID. Removing an absent id is a
// no-op.
func (s *CartService) RemoveItem(menuID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, it := range s.items {
		if it.MenuID != menuID {
			kept = append(kept, it)
		}
	}
	s.items = kept
}

// Items returns a copy of the cart in insertion order.
func (s *CartService) Items() []CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]CartItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *CartService) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subtotalLocked()
}

func (s *CartService) subtotalLocked() float64 {
	var sum float64
	for _, it := range s.items {
		sum += it.LineTotal
	}
	return sum
}

// PlaceOrder persists the cart as an order and clears it. Tax is computed
// from the exact subtotal; rounding happens only when values are formatted
// for display. If the write fails the cart is left untouched so the
// operator can retry.
func (s *CartService) PlaceOrder(ctx context.Context) (*Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.items) == 0 {
		return nil, fmt.Errorf("nothing to order: %w", ErrEmptyCart)
	}

	parts := make([]string, 0, len(s.items))
	lines := make([]models.OrderLine, 0, len(s.items))
	for _, it := range s.items {
		parts = append(parts, fmt.Sprintf("%s x%d", it.Name, it.Quantity))
		lines = append(lines, models.OrderLine{
			MenuID:    it.MenuID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			LineTotal: it.LineTotal,
		})
	}

	subtotal := s.subtotalLocked()
	tax := subtotal * TaxRate
	total := subtotal + tax

	order := models.Order{
		Total:       total,
		PlacedAt:    time.Now().Format("2006-01-02 15:04:05"),
		ItemSummary: strings.Join(parts, "; "),
		Lines:       lines,
	}

	created, err := s.Repo.CreateOrder(ctx, &order)
	if err != nil {
		return nil, fmt.Errorf("place order: %w", err)
	}

	s.items = nil

	return &Receipt{
		OrderID:  created.ID,
		Subtotal: subtotal,
		Tax:      tax,
		Total:    total,
	}, nil
}
