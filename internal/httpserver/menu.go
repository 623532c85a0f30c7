package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/NoobProgram-ai/OaksDonutShop/internal/logging"
	"github.com/NoobProgram-ai/OaksDonutShop/internal/models"
	"github.com/NoobProgram-ai/OaksDonutShop/internal/service"
	"github.com/NoobProgram-ai/OaksDonutShop/internal/transport"
)

type MenuHTTP struct {
	Svc *service.MenuService
}

func (h *MenuHTTP) GetMenuItems(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "menu.list")

	items, err := h.Svc.GetMenuItems(ctx)
	if err != nil {
		l.Error("menu_list_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, items)
}

func (h *MenuHTTP) GetMenuItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "menu.get")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("menu_get_error", "status", 400, "reason", "id is not an integer")
		return c.JSON(http.StatusBadRequest, "id must be an integer")
	}

	item, err := h.Svc.GetMenuItem(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("menu_get_not_found", "status", 404, "id", id)
			return c.JSON(http.StatusNotFound, "menu item not found")
		}
		l.Error("menu_get_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, item)
}

func (h *MenuHTTP) CreateMenuItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "menu.create")

	var req transport.MenuItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("menu_create_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}
	if err := transport.Validate(req); err != nil {
		l.Warn("menu_create_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "name required, price must be >= 0")
	}

	item, err := h.Svc.CreateMenuItem(ctx, &models.MenuItem{
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
	})
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("menu_create_error", "status", 400, "error", err)
			return c.JSON(http.StatusBadRequest, err.Error())
		}
		l.Error("menu_create_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "internal error")
	}

	l.Info("menu_item_created", "id", item.ID)
	return c.JSON(http.StatusCreated, item)
}

func (h *MenuHTTP) UpdateMenuItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "menu.update")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("menu_update_error", "status", 400, "reason", "id is not an integer")
		return c.JSON(http.StatusBadRequest, "id must be an integer")
	}

	var req transport.MenuItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("menu_update_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}
	if err := transport.Validate(req); err != nil {
		l.Warn("menu_update_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "name required, price must be >= 0")
	}

	item, err := h.Svc.UpdateMenuItem(ctx, &models.MenuItem{
		ID:       id,
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			l.Warn("menu_update_error", "status", 400, "error", err)
			return c.JSON(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrNotFound):
			l.Warn("menu_update_not_found", "status", 404, "id", id)
			return c.JSON(http.StatusNotFound, "menu item not found")
		}
		l.Error("menu_update_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "internal error")
	}

	l.Info("menu_item_updated", "id", item.ID)
	return c.JSON(http.StatusOK, item)
}

func (h *MenuHTTP) DeleteMenuItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "menu.delete")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("menu_delete_error", "status", 400, "reason", "id is not an integer")
		return c.JSON(http.StatusBadRequest, "id must be an integer")
	}

	if err := h.Svc.DeleteMenuItem(ctx, id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("menu_delete_not_found", "status", 404, "id", id)
			return c.JSON(http.StatusNotFound, "menu item not found")
		}
		l.Error("menu_delete_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "internal error")
	}

	l.Info("menu_item_deleted", "id", id)
	return c.NoContent(http.StatusNoContent)
}
