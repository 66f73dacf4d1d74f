package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cart "github.com/Fmfizzy/PizzaPOS/cart/logic"
	"github.com/Fmfizzy/PizzaPOS/menu"
	"github.com/Fmfizzy/PizzaPOS/pos"
)

type recorded struct {
	method string
	path   string
	body   string
	header http.Header
}

// fakeBackend serves canned responses keyed by "METHOD /path".
type fakeBackend struct {
	mu        sync.Mutex
	responses map[string]string
	statuses  map[string]int
	requests  []recorded
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{responses: map[string]string{}, statuses: map[string]int{}}
}

func (f *fakeBackend) on(key string, status int, body string) {
	f.responses[key] = body
	f.statuses[key] = status
}

func (f *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	key := r.Method + " " + r.URL.Path

	f.mu.Lock()
	f.requests = append(f.requests, recorded{method: r.Method, path: r.URL.Path, body: string(body), header: r.Header.Clone()})
	resp, ok := f.responses[key]
	status := f.statuses[key]
	f.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Item not found"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(resp))
}

func (f *fakeBackend) requestsTo(method, path string) []recorded {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []recorded
	for _, r := range f.requests {
		if r.method == method && r.path == path {
			out = append(out, r)
		}
	}
	return out
}

func setup(t *testing.T) (*fakeBackend, *Client) {
	t.Helper()
	backend := newFakeBackend()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)
	return backend, NewClient(srv.URL+"/", WithTimeout(2*time.Second))
}

const pizzasJSON = `[
  {"id":1,"name":"Margherita","category":"pizza","description":"","is_available":true,
   "image_path":"uploads/images/1.jpg","created_at":"2025-01-02T10:00:00Z",
   "prices":{"small":800,"medium":1000,"large":1200}}
]`

func TestNewClient_TrimsBaseURL(t *testing.T) {
	c := NewClient("http://localhost:8080/")
	assert.Equal(t, "http://localhost:8080", c.BaseURL())
}

func TestPizzasWithPrices(t *testing.T) {
	backend, c := setup(t)
	backend.on("GET /api/pizzas-with-prices", http.StatusOK, pizzasJSON)

	pizzas, err := c.PizzasWithPrices(context.Background())
	require.NoError(t, err)
	require.Len(t, pizzas, 1)

	p := pizzas[0]
	assert.Equal(t, "Margherita", p.Name)
	assert.True(t, p.Available)
	large, ok := p.Prices.Price(menu.SizeLarge)
	require.True(t, ok)
	assert.Equal(t, "1200", large.String())
}

func TestPizzaWithPrices(t *testing.T) {
	backend, c := setup(t)
	backend.on("GET /api/pizzas-with-prices/1", http.StatusOK,
		`{"id":1,"name":"Margherita","category":"pizza","is_available":true,"prices":{"large":1200}}`)

	p, err := c.PizzaWithPrices(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []menu.Size{menu.SizeSmall, menu.SizeMedium}, p.Prices.Missing())
}

func TestItemsByCategory(t *testing.T) {
	backend, c := setup(t)
	backend.on("GET /api/items/beverage", http.StatusOK,
		`[{"id":5,"name":"Cola","category":"beverage","is_available":true,"price":250}]`)

	items, err := c.ItemsByCategory(context.Background(), menu.CategoryBeverage)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].Price)
	assert.Equal(t, "250", items[0].Price.String())
}

func TestItems(t *testing.T) {
	backend, c := setup(t)
	backend.on("GET /api/items", http.StatusOK,
		`[{"id":1,"name":"Margherita","category":"pizza","price":null},{"id":5,"name":"Cola","category":"beverage","price":250}]`)

	items, err := c.Items(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Nil(t, items[0].Price)
}

func TestToppings(t *testing.T) {
	backend, c := setup(t)
	backend.on("GET /api/toppings", http.StatusOK,
		`[{"id":3,"name":"Cheese","price":150,"is_available":true,"created_at":"2025-01-02T10:00:00Z"}]`)

	toppings, err := c.Toppings(context.Background())
	require.NoError(t, err)
	require.Len(t, toppings, 1)
	assert.Equal(t, "Cheese", toppings[0].Name)
	assert.True(t, toppings[0].Price.Equal(decimal.NewFromInt(150)))
}

func TestErrorResponse(t *testing.T) {
	backend, c := setup(t)
	backend.on("GET /api/toppings", http.StatusInternalServerError, `{"error":"database is down"}`)

	_, err := c.Toppings(context.Background())
	require.Error(t, err)

	apiErr, ok := AsError(err)
	require.True(t, ok, "expected *api.Error, got %T", err)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "database is down", apiErr.Message)
	assert.Contains(t, err.Error(), "GET /api/toppings")
}

func TestErrorResponse_MessageField(t *testing.T) {
	backend, c := setup(t)
	backend.on("DELETE /api/items/4", http.StatusInternalServerError, `{"message":"constraint violation"}`)

	err := c.DeleteItem(context.Background(), 4)
	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, "constraint violation", apiErr.Message)
}

func TestErrorResponse_PlainBody(t *testing.T) {
	backend, c := setup(t)
	backend.on("GET /api/invoices", http.StatusBadGateway, `upstream failed`)

	_, err := c.Invoices(context.Background())
	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, "upstream failed", apiErr.Message)
}

func TestNotFound(t *testing.T) {
	_, c := setup(t)
	err := c.DeleteItem(context.Background(), 99)
	assert.True(t, IsNotFound(err))
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Toppings(context.Background())
	require.Error(t, err)
	_, isAPI := AsError(err)
	assert.False(t, isAPI, "transport failure is not a backend response")
	assert.Contains(t, err.Error(), "GET /api/toppings")
}

func TestContextCancelled(t *testing.T) {
	backend, c := setup(t)
	backend.on("GET /api/toppings", http.StatusOK, `[]`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Toppings(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLatestOrderNo(t *testing.T) {
	for _, body := range []string{`{"order_no":"10042"}`, `{"order_no":10042}`} {
		backend, c := setup(t)
		backend.on("GET /api/invoices/latest-order-no", http.StatusOK, body)

		got, err := c.LatestOrderNo(context.Background())
		require.NoError(t, err, body)
		assert.Equal(t, "10042", got, body)
	}
}

func TestLatestOrderNo_Missing(t *testing.T) {
	backend, c := setup(t)
	backend.on("GET /api/invoices/latest-order-no", http.StatusOK, `{}`)

	_, err := c.LatestOrderNo(context.Background())
	assert.Error(t, err)
}

func TestCreateInvoice(t *testing.T) {
	backend, c := setup(t)
	backend.on("POST /api/invoices", http.StatusCreated,
		`{"id":7,"order_no":"10001","total_amount":1575,"tax_amount":75,"status":"completed","created_at":"2025-01-02T10:00:00Z"}`)

	payload := cart.OrderPayload{
		OrderNo: "10001",
		Items: []cart.PayloadItem{{
			ItemID:    1,
			ItemName:  "Margherita",
			PizzaSize: "large",
			Quantity:  1,
			UnitPrice: 1500,
			Toppings:  []cart.PayloadTopping{{ToppingID: 3, Quantity: 2}},
		}},
	}
	inv, err := c.CreateInvoice(context.Background(), payload)
	require.NoError(t, err)
	assert.Equal(t, 7, inv.ID)
	assert.Equal(t, "1575", inv.TotalAmount.String())

	reqs := backend.requestsTo(http.MethodPost, "/api/invoices")
	require.Len(t, reqs, 1)
	assert.Equal(t, pos.OrderRoot("10001").String(), reqs[0].header.Get(IdempotencyHeader))
	assert.JSONEq(t, `{
		"order_no":"10001",
		"items":[{"item_id":1,"item_name":"Margherita","pizza_size":"large","quantity":1,"unit_price":1500,
		          "toppings":[{"topping_id":3,"quantity":2}]}]
	}`, reqs[0].body)
}

func TestInvoiceItems(t *testing.T) {
	backend, c := setup(t)
	backend.on("GET /api/invoices/7/items", http.StatusOK,
		`[{"id":1,"invoice_id":7,"item_name":"Margherita","quantity":2,"unit_price":1200,"subtotal":2400,
		   "toppings":[{"id":1,"topping_id":3,"name":"Cheese","quantity":1,"price":150}]}]`)

	items, err := c.InvoiceItems(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "2400", items[0].Subtotal.String())
	require.Len(t, items[0].Toppings, 1)
	assert.Equal(t, "Cheese", items[0].Toppings[0].Name)
}

func TestInvoice(t *testing.T) {
	backend, c := setup(t)
	backend.on("GET /api/invoices/7", http.StatusOK, `{"id":7,"order_no":"10001","status":"completed"}`)

	inv, err := c.Invoice(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "10001", inv.OrderNo)
}

func TestUpdateItem(t *testing.T) {
	backend, c := setup(t)
	backend.on("PUT /api/items/5", http.StatusOK, `{"id":5,"name":"Cola","category":"beverage","is_available":false,"price":250}`)

	available := false
	rec, err := c.UpdateItem(context.Background(), 5, UpdateItemRequest{IsAvailable: &available})
	require.NoError(t, err)
	assert.False(t, rec.IsAvailable)

	reqs := backend.requestsTo(http.MethodPut, "/api/items/5")
	require.Len(t, reqs, 1)
	assert.JSONEq(t, `{"is_available":false}`, reqs[0].body)
}

func TestUpdatePizzaPrice(t *testing.T) {
	backend, c := setup(t)
	backend.on("PUT /api/pizzaprice/12", http.StatusOK, `{"id":12,"item_id":1,"size":"small","price":850}`)

	got, err := c.UpdatePizzaPrice(context.Background(), 12, PizzaPriceRequest{ItemID: 1, Size: "small", Price: 850})
	require.NoError(t, err)
	assert.Equal(t, "850", got.Price.String())
}

func TestUploadImage(t *testing.T) {
	var gotName, gotContent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("image")
		if err != nil {
			http.Error(w, `{"error":"no image"}`, http.StatusBadRequest)
			return
		}
		defer file.Close()
		data, _ := io.ReadAll(file)
		gotName, gotContent = header.Filename, string(data)
		_ = json.NewEncoder(w).Encode(map[string]string{"filepath": "uploads/images/123.jpg"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	path, err := c.UploadImage(context.Background(), "/tmp/photos/margherita.jpg", strings.NewReader("jpeg-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "uploads/images/123.jpg", path)
	assert.Equal(t, "margherita.jpg", gotName)
	assert.Equal(t, "jpeg-bytes", gotContent)
}

func TestCreateMenuItem_Pizza(t *testing.T) {
	backend, c := setup(t)
	backend.on("POST /api/items", http.StatusCreated, `{"id":21,"name":"Veggie","category":"pizza","is_available":true}`)
	backend.on("POST /api/pizzaprice", http.StatusCreated, `{"id":1,"item_id":21}`)

	pizza := &menu.Pizza{
		Info: menu.Info{Name: "Veggie", Category: menu.CategoryPizza},
		Prices: menu.PriceTable{
			menu.SizeSmall:  decimal.NewFromInt(700),
			menu.SizeMedium: decimal.NewFromInt(900),
			menu.SizeLarge:  decimal.NewFromInt(1100),
		},
	}
	rec, err := c.CreateMenuItem(context.Background(), pizza)
	require.NoError(t, err)
	assert.Equal(t, 21, rec.ID)

	prices := backend.requestsTo(http.MethodPost, "/api/pizzaprice")
	require.Len(t, prices, 3)
	assert.JSONEq(t, `{"item_id":21,"size":"small","price":700}`, prices[0].body)
	assert.JSONEq(t, `{"item_id":21,"size":"large","price":1100}`, prices[2].body)

	items := backend.requestsTo(http.MethodPost, "/api/items")
	require.Len(t, items, 1)
	assert.JSONEq(t, `{"name":"Veggie","category":"pizza","description":"","price":null,"image_path":""}`, items[0].body)
}

func TestCreateMenuItem_Beverage(t *testing.T) {
	backend, c := setup(t)
	backend.on("POST /api/items", http.StatusCreated, `{"id":22,"name":"Lemonade","category":"beverage","price":300}`)

	_, err := c.CreateMenuItem(context.Background(), &menu.Beverage{
		Info:  menu.Info{Name: "Lemonade"},
		Price: decimal.NewFromInt(300),
	})
	require.NoError(t, err)

	items := backend.requestsTo(http.MethodPost, "/api/items")
	require.Len(t, items, 1)
	assert.JSONEq(t, `{"name":"Lemonade","category":"beverage","description":"","price":300,"image_path":""}`, items[0].body)
	assert.Empty(t, backend.requestsTo(http.MethodPost, "/api/pizzaprice"))
}

func TestCreateMenuItem_ValidatesFirst(t *testing.T) {
	backend, c := setup(t)

	_, err := c.CreateMenuItem(context.Background(), &menu.Pizza{
		Info:   menu.Info{Name: "Veggie"},
		Prices: menu.PriceTable{menu.SizeLarge: decimal.NewFromInt(1100)},
	})
	assert.EqualError(t, err, "Small price is required")
	assert.Empty(t, backend.requestsTo(http.MethodPost, "/api/items"))
}

func TestMenu(t *testing.T) {
	backend, c := setup(t)
	backend.on("GET /api/pizzas-with-prices", http.StatusOK, pizzasJSON)
	backend.on("GET /api/items/beverage", http.StatusOK,
		`[{"id":5,"name":"Cola","category":"beverage","is_available":true,"price":250},
		  {"id":6,"name":"Mystery","category":"beverage","is_available":true,"price":null}]`)
	backend.on("GET /api/toppings", http.StatusOK, `[{"id":3,"name":"Cheese","price":150,"is_available":true}]`)

	catalog, err := c.Menu(context.Background())
	require.NoError(t, err)
	assert.Len(t, catalog.Pizzas, 1)
	require.Len(t, catalog.Beverages, 1, "beverage without a price is left out")
	assert.Equal(t, "Cola", catalog.Beverages[0].Name)
	assert.Len(t, catalog.Toppings, 1)
}

func TestMenu_FailsWhenAnyFetchFails(t *testing.T) {
	backend, c := setup(t)
	backend.on("GET /api/pizzas-with-prices", http.StatusOK, pizzasJSON)
	backend.on("GET /api/items/beverage", http.StatusOK, `[]`)

	_, err := c.Menu(context.Background())
	assert.True(t, IsNotFound(err), "missing toppings route should fail the load, got %v", err)
}
