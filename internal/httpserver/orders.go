package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/NoobProgram-ai/OaksDonutShop/internal/logging"
	"github.com/NoobProgram-ai/OaksDonutShop/internal/service"
	"github.com/NoobProgram-ai/OaksDonutShop/internal/transport"
	"github.com/NoobProgram-ai/OaksDonutShop/internal/util"
)

type OrderHTTP struct {
	Svc *service.OrderService
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}

func (h *OrderHTTP) GetOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "orders.list")

	page := parseIntDefault(c.QueryParam("page"), 1)
	size := parseIntDefault(c.QueryParam("size"), 20)
	offset, limit := util.Calculate(page, size)

	total, orders, err := h.Svc.ListOrders(ctx, limit, offset)
	if err != nil {
		l.Error("orders_list_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "internal error")
	}

	views := make([]transport.OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, transport.NewOrderView(o))
	}

	return c.JSON(http.StatusOK, map[string]any{
		"data": views,
		"meta": map[string]any{
			"page":        page,
			"size":        limit,
			"total":       total,
			"total_pages": (total + int64(limit) - 1) / int64(limit),
			"has_prev":    page > 1,
			"has_next":    int64(offset+limit) < total,
		},
	})
}
