package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	MenuHandler  *MenuHTTP
	CartHandler  *CartHTTP
	OrderHandler *OrderHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	v1 := e.Group("/api/v1")

	v1.GET("/menu", d.MenuHandler.GetMenuItems)
	v1.GET("/menu/:id", d.MenuHandler.GetMenuItem)
	v1.POST("/menu", d.MenuHandler.CreateMenuItem)
	v1.PUT("/menu/:id", d.MenuHandler.UpdateMenuItem)
	v1.DELETE("/menu/:id", d.MenuHandler.DeleteMenuItem)

	v1.GET("/cart", d.CartHandler.GetCart)
	v1.POST("/cart/items", d.CartHandler.AddItem)
	v1.DELETE("/cart/items/:menuID", d.CartHandler.RemoveItem)

	v1.POST("/orders", d.CartHandler.PlaceOrder)
	v1.GET("/orders", d.OrderHandler.GetOrders)
}
