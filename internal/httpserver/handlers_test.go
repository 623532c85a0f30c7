package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/NoobProgram-ai/OaksDonutShop/internal/models"
	"github.com/NoobProgram-ai/OaksDonutShop/internal/repo"
	"github.com/NoobProgram-ai/OaksDonutShop/internal/service"
	"github.com/NoobProgram-ai/OaksDonutShop/internal/transport"
)

type testEnv struct {
	E      *echo.Echo
	DB     *gorm.DB
	Menu   *MenuHTTP
	Cart   *CartHTTP
	Orders *OrderHTTP
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}
	if err := db.AutoMigrate(&models.MenuItem{}, &models.Order{}, &models.OrderLine{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	gormRepo := &repo.GormRepo{DB: db}
	menuSvc := &service.MenuService{Repo: gormRepo}
	cartSvc := &service.CartService{Repo: gormRepo}
	orderSvc := &service.OrderService{Repo: gormRepo}

	return &testEnv{
		E:      echo.New(),
		DB:     db,
		Menu:   &MenuHTTP{Svc: menuSvc},
		Cart:   &CartHTTP{Menu: menuSvc, Cart: cartSvc},
		Orders: &OrderHTTP{Svc: orderSvc},
	}
}

func (env *testEnv) doJSONRequest(method, path string, body any) (*httptest.ResponseRecorder, echo.Context) {
	var reader *bytes.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

func TestCreateMenuItem(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/menu", transport.MenuItemRequest{
		Name:     "Glazed",
		Price:    1.50,
		Category: "donut",
	})
	require.NoError(t, env.Menu.CreateMenuItem(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.MenuItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotZero(t, resp.ID)
	assert.Equal(t, "Glazed", resp.Name)
}

func TestCreateMenuItem_InvalidBody(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/menu", map[string]any{
		"name":  "",
		"price": 1.50,
	})
	require.NoError(t, env.Menu.CreateMenuItem(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateMenuItem_NotFound(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodPut, "/api/v1/menu/42", transport.MenuItemRequest{
		Name:  "Ghost",
		Price: 1.00,
	})
	c.SetParamNames("id")
	c.SetParamValues("42")
	require.NoError(t, env.Menu.UpdateMenuItem(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteMenuItem(t *testing.T) {
	env := newTestEnv(t)
	env.DB.Create(&models.MenuItem{Name: "Cruller", Price: 1.40})

	rec, c := env.doJSONRequest(http.MethodDelete, "/api/v1/menu/1", nil)
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, env.Menu.DeleteMenuItem(c))
	require.Equal(t, http.StatusNoContent, rec.Code)

	var count int64
	env.DB.Model(&models.MenuItem{}).Count(&count)
	assert.Zero(t, count)
}

func TestAddToCart_SnapshotsMenuItem(t *testing.T) {
	env := newTestEnv(t)
	env.DB.Create(&models.MenuItem{Name: "Glazed", Price: 1.50, Category: "donut"})

	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/cart/items", transport.AddCartItemRequest{
		MenuID:   1,
		Quantity: 3,
	})
	require.NoError(t, env.Cart.AddItem(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp transport.CartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Glazed", resp.Items[0].Name)
	assert.Equal(t, 3, resp.Items[0].Quantity)
	assert.Equal(t, "4.50", resp.Subtotal)
}

func TestAddToCart_UnknownMenuItem(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/cart/items", transport.AddCartItemRequest{
		MenuID:   7,
		Quantity: 1,
	})
	require.NoError(t, env.Cart.AddItem(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRemoveFromCart_Idempotent(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodDelete, "/api/v1/cart/items/5", nil)
	c.SetParamNames("menuID")
	c.SetParamValues("5")
	require.NoError(t, env.Cart.RemoveItem(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp transport.CartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Items)
	assert.Equal(t, "0.00", resp.Subtotal)
}

func TestPlaceOrder(t *testing.T) {
	env := newTestEnv(t)
	env.DB.Create(&models.MenuItem{Name: "A", Price: 1.50})
	env.DB.Create(&models.MenuItem{Name: "B", Price: 2.00})

	for _, req := range []transport.AddCartItemRequest{
		{MenuID: 1, Quantity: 3},
		{MenuID: 2, Quantity: 1},
	} {
		_, c := env.doJSONRequest(http.MethodPost, "/api/v1/cart/items", req)
		require.NoError(t, env.Cart.AddItem(c))
	}

	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/orders", nil)
	require.NoError(t, env.Cart.PlaceOrder(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp transport.ReceiptResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "6.50", resp.Subtotal)
	assert.Equal(t, "0.39", resp.Tax)
	assert.Equal(t, "6.89", resp.Total)
	assert.NotZero(t, resp.OrderID)

	var order models.Order
	require.NoError(t, env.DB.First(&order, resp.OrderID).Error)
	assert.Equal(t, "A x3; B x1", order.ItemSummary)
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/orders", nil)
	require.NoError(t, env.Cart.PlaceOrder(c))
	require.Equal(t, http.StatusConflict, rec.Code)

	var count int64
	env.DB.Model(&models.Order{}).Count(&count)
	assert.Zero(t, count)
}

func TestGetOrders_PagedNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	env.DB.Create(&models.Order{Total: 1.06, PlacedAt: "2026-08-30 09:00:00", ItemSummary: "A x1"})
	env.DB.Create(&models.Order{Total: 2.12, PlacedAt: "2026-08-30 09:05:00", ItemSummary: "B x2"})

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/orders?page=1&size=10", nil)
	require.NoError(t, env.Orders.GetOrders(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []transport.OrderView `json:"data"`
		Meta map[string]any        `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "B x2", resp.Data[0].ItemSummary)
	assert.Equal(t, "2.12", resp.Data[0].Total)
	assert.EqualValues(t, 2, resp.Meta["total"])
}
