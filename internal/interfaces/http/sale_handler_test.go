package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/panaderia-api/internal/application/apptest"
	"github.com/tu-usuario/panaderia-api/internal/application/inventory"
	"github.com/tu-usuario/panaderia-api/internal/application/reporting"
	"github.com/tu-usuario/panaderia-api/internal/application/sales"
	"github.com/tu-usuario/panaderia-api/internal/domain/entity"
	apphttp "github.com/tu-usuario/panaderia-api/internal/interfaces/http"
)

const testProductID = "00000000-0000-0000-0000-0000000000cc"

// buildSalesApp monta los endpoints de venta y ajuste sobre el store en
// memoria, sin middleware de auth (eso se prueba aparte).
func buildSalesApp(store *apptest.Store) *fiber.App {
	runner := apptest.NewTxRunner(store)
	recordSale := sales.NewRecordSaleUseCase(runner)
	adjustStock := inventory.NewAdjustStockUseCase(runner, store.MovementRepo())
	historyUC := reporting.NewHistoryUseCase(apptest.NewReportRepo(store), nil)

	saleHandler := apphttp.NewSaleHandler(recordSale, historyUC)
	productHandler := apphttp.NewProductHandler(nil, adjustStock)

	app := fiber.New()
	app.Post("/api/sales", saleHandler.Create)
	app.Get("/api/sales", saleHandler.List)
	app.Post("/api/products/:id/stock", productHandler.AdjustStock)
	app.Get("/api/products/:id/movements", productHandler.ListMovements)
	return app
}

func seedProduct(store *apptest.Store, stock int64) {
	now := time.Now()
	store.PutProduct(&entity.Product{
		ID:                testProductID,
		Name:              "Croissant",
		Price:             decimal.RequireFromString("2.50"),
		Unit:              "pcs",
		CurrentStock:      stock,
		LowStockThreshold: 5,
		IsActive:          true,
		CreatedAt:         now,
		UpdatedAt:         now,
	})
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestPostSales_Creada201(t *testing.T) {
	store := apptest.NewStore()
	seedProduct(store, 10)
	app := buildSalesApp(store)

	resp := postJSON(t, app, "/api/sales",
		`{"productId":"`+testProductID+`","quantity":3,"note":"cliente mostrador"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "ok", body["status"])

	sale := body["sale"].(map[string]any)
	assert.Equal(t, "Croissant", sale["productNameSnapshot"])
	assert.EqualValues(t, 3, sale["quantity"])

	product := body["product"].(map[string]any)
	assert.EqualValues(t, 7, product["currentStock"])
}

func TestPostSales_StockInsuficiente400(t *testing.T) {
	store := apptest.NewStore()
	seedProduct(store, 2)
	app := buildSalesApp(store)

	resp := postJSON(t, app, "/api/sales",
		`{"productId":"`+testProductID+`","quantity":9}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "INSUFFICIENT_STOCK", body["code"])
	assert.Contains(t, body["message"], "disponible: 2",
		"el mensaje debe incluir el stock disponible")

	assert.EqualValues(t, 2, store.Product(testProductID).CurrentStock)
}

func TestPostSales_ProductoInexistente404(t *testing.T) {
	app := buildSalesApp(apptest.NewStore())

	resp := postJSON(t, app, "/api/sales", `{"productId":"no-existe","quantity":1}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPostSales_Validacion400(t *testing.T) {
	store := apptest.NewStore()
	seedProduct(store, 10)
	app := buildSalesApp(store)

	cases := []string{
		`{"quantity":1}`,                             // sin productId
		`{"productId":"` + testProductID + `"}`,      // sin cantidad
		`{"productId":"` + testProductID + `","quantity":-2}`, // cantidad negativa
		`{esto no es json}`,
	}
	for _, body := range cases {
		resp := postJSON(t, app, "/api/sales", body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "body: %s", body)
		resp.Body.Close()
	}
}

func TestPostStock_AjusteIN(t *testing.T) {
	store := apptest.NewStore()
	seedProduct(store, 10)
	app := buildSalesApp(store)

	resp := postJSON(t, app, "/api/products/"+testProductID+"/stock",
		`{"type":"IN","quantity":12,"note":"producción"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "ok", body["status"])

	movement := body["movement"].(map[string]any)
	assert.Equal(t, "IN", movement["type"])
	assert.EqualValues(t, 22, movement["stockAfter"])
}

func TestPostStock_ResultadoNegativo400(t *testing.T) {
	store := apptest.NewStore()
	seedProduct(store, 3)
	app := buildSalesApp(store)

	resp := postJSON(t, app, "/api/products/"+testProductID+"/stock",
		`{"type":"ADJUST","quantity":-8}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "INVALID_RESULT", body["code"])
}

func TestPostStock_TipoInvalido400(t *testing.T) {
	store := apptest.NewStore()
	seedProduct(store, 3)
	app := buildSalesApp(store)

	resp := postJSON(t, app, "/api/products/"+testProductID+"/stock",
		`{"type":"TRANSFER","quantity":1}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetMovements_ListaLedger(t *testing.T) {
	store := apptest.NewStore()
	seedProduct(store, 10)
	app := buildSalesApp(store)

	resp := postJSON(t, app, "/api/sales", `{"productId":"`+testProductID+`","quantity":2}`)
	resp.Body.Close()

	req := httptest.NewRequest(http.MethodGet, "/api/products/"+testProductID+"/movements", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	movements := body["movements"].([]any)
	require.Len(t, movements, 1)
	m := movements[0].(map[string]any)
	assert.Equal(t, "OUT", m["type"])
	assert.EqualValues(t, -2, m["quantity"])
}

func TestGetSales_ListaDelRango(t *testing.T) {
	store := apptest.NewStore()
	seedProduct(store, 10)
	app := buildSalesApp(store)

	for i := 0; i < 3; i++ {
		resp := postJSON(t, app, "/api/sales", `{"productId":"`+testProductID+`","quantity":1}`)
		resp.Body.Close()
	}

	req := httptest.NewRequest(http.MethodGet, "/api/sales?limit=2", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "ok", body["status"])
	assert.Len(t, body["sales"].([]any), 2)
}
