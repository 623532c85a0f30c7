package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/NoobProgram-ai/OaksDonutShop/internal/logging"
	"github.com/NoobProgram-ai/OaksDonutShop/internal/service"
	"github.com/NoobProgram-ai/OaksDonutShop/internal/transport"
)

type CartHTTP struct {
	Menu *service.MenuService
	Cart *service.CartService
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	return c.JSON(http.StatusOK, transport.CartResponse{
		Items:    h.Cart.Items(),
		Subtotal: transport.Money(h.Cart.Subtotal()),
	})
}

// AddItem looks the menu item up and snapshots its name and price into the
// cart. Repeating a menu id grows the existing line instead of adding a
// second one.
func (h *CartHTTP) AddItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add")

	var req transport.AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("cart_add_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}
	if err := transport.Validate(req); err != nil {
		l.Warn("cart_add_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "menu_id and quantity>0 required")
	}

	item, err := h.Menu.GetMenuItem(ctx, req.MenuID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("cart_add_not_found", "status", 404, "menu_id", req.MenuID)
			return c.JSON(http.StatusNotFound, "menu item not found")
		}
		l.Error("cart_add_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "internal error")
	}

	if err := h.Cart.AddItem(item.ID, item.Name, item.Price, req.Quantity); err != nil {
		l.Warn("cart_add_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	l.Info("cart_item_added", "menu_id", item.ID, "quantity", req.Quantity)
	return c.JSON(http.StatusOK, transport.CartResponse{
		Items:    h.Cart.Items(),
		Subtotal: transport.Money(h.Cart.Subtotal()),
	})
}

func (h *CartHTTP) RemoveItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove")

	menuID, err := strconv.Atoi(c.Param("menuID"))
	if err != nil {
		l.Warn("cart_remove_error", "status", 400, "reason", "menuID is not an integer")
		return c.JSON(http.StatusBadRequest, "menuID must be an integer")
	}

	h.Cart.RemoveItem(menuID)

	l.Info("cart_item_removed", "menu_id", menuID)
	return c.JSON(http.StatusOK, transport.CartResponse{
		Items:    h.Cart.Items(),
		Subtotal: transport.Money(h.Cart.Subtotal()),
	})
}

func (h *CartHTTP) PlaceOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.place_order")

	receipt, err := h.Cart.PlaceOrder(ctx)
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			l.Warn("place_order_error", "status", 409, "reason", "cart is empty")
			return c.JSON(http.StatusConflict, "cart is empty")
		}
		l.Error("place_order_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "internal error")
	}

	l.Info("order_placed", "order_id", receipt.OrderID, "total", receipt.Total)
	return c.JSON(http.StatusCreated, transport.ReceiptResponse{
		OrderID:  receipt.OrderID,
		Subtotal: transport.Money(receipt.Subtotal),
		Tax:      transport.Money(receipt.Tax),
		Total:    transport.Money(receipt.Total),
	})
}
