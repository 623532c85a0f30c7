package transport

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/NoobProgram-ai/OaksDonutShop/internal/models"
	"github.com/NoobProgram-ai/OaksDonutShop/internal/service"
)

var validate = validator.New()

// Validate checks a request struct against its validate tags.
func Validate(req any) error {
	return validate.Struct(req)
}

type MenuItemRequest struct {
	Name     string  `json:"name"     validate:"required"`
	Price    float64 `json:"price"    validate:"gte=0"`
	Category string  `json:"category"`
}

type AddCartItemRequest struct {
	MenuID   int `json:"menu_id"  validate:"required,gt=0"`
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

type CartResponse struct {
	Items    []service.CartItem `json:"items"`
	Subtotal string             `json:"subtotal"`
}

type ReceiptResponse struct {
	OrderID  int    `json:"order_id"`
	Subtotal string `json:"subtotal"`
	Tax      string `json:"tax"`
	Total    string `json:"total"`
}

type OrderView struct {
	ID          int                `json:"id"`
	Total       string             `json:"total"`
	PlacedAt    string             `json:"placed_at"`
	ItemSummary string             `json:"item_summary"`
	Lines       []models.OrderLine `json:"lines"`
}

// Money renders a monetary value for display with exactly two fraction
// digits. Stored and computed values stay unrounded.
func Money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func NewOrderView(o models.Order) OrderView {
	return OrderView{
		ID:          o.ID,
		Total:       Money(o.Total),
		PlacedAt:    o.PlacedAt,
		ItemSummary: o.ItemSummary,
		Lines:       o.Lines,
	}
}
