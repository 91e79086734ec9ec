package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticketlane/ticket-orders/internal/handler"
	"github.com/ticketlane/ticket-orders/internal/middleware"
	"github.com/ticketlane/ticket-orders/internal/render"
	"github.com/ticketlane/ticket-orders/internal/router"
	"github.com/ticketlane/ticket-orders/internal/store"
)

const ordersDoc = `{
  "orders": {
    "abc123": {
      "orderNumber": "abc123",
      "firstName": "jo",
      "lastName": "lee",
      "shippingAddress": "1 Main St",
      "phoneNumber": "111",
      "zipcode": "27701",
      "paymentMethod": "visa",
      "cardNumber": "4111111111111111",
      "cvv": "123",
      "expDate": "01/27",
      "billingAddress": "1 Main St",
      "date": "2026-10-04",
      "quantity": "2",
      "price": "88.00",
      "section": "114",
      "row": "F",
      "teams": "Hornets vs. Hawks",
      "location": "Spectrum Center",
      "email": "jo@example.com"
    }
  }
}`

const gamesDoc = `{
  "games": {
    "g001": {"date": "2026-10-04", "teams": "hornets vs. hawks", "location": "Spectrum Center", "time": "19:00"}
  }
}`

const seatsDoc = `{
  "seats": {
    "s101": {"section": "114", "row": "f", "price": "44.00"},
    "s201": {"section": "207", "row": "b", "price": "53.00"}
  }
}`

// newTestServer builds a full Echo instance over fixture data: embedded
// renderer, CORS middleware, all routes, store on temp files.
func newTestServer(t *testing.T) (*echo.Echo, *store.Store) {
	t.Helper()
	dir := t.TempDir()
	p := store.Paths{
		Orders: filepath.Join(dir, "orders.json"),
		Games:  filepath.Join(dir, "games.json"),
		Seats:  filepath.Join(dir, "seats.json"),
	}
	require.NoError(t, os.WriteFile(p.Orders, []byte(ordersDoc), 0o644))
	require.NoError(t, os.WriteFile(p.Games, []byte(gamesDoc), 0o644))
	require.NoError(t, os.WriteFile(p.Seats, []byte(seatsDoc), 0o644))
	st, err := store.Open(p)
	require.NoError(t, err)

	r, err := render.New()
	require.NoError(t, err)

	e := echo.New()
	e.Renderer = r
	e.Use(middleware.CORS())
	router.RegisterRoutes(e, &handler.OrderHandler{Store: st})
	return e, st
}

func doJSON(e *echo.Echo, method, target string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func validOrderBody() map[string]string {
	return map[string]string{
		"firstName":       "sam",
		"lastName":        "reyes",
		"shippingAddress": "9 Pine St",
		"phoneNumber":     "333",
		"zipcode":         "27510",
		"paymentMethod":   "visa",
		"cardNumber":      "4111111111111111",
		"cvv":             "999",
		"expDate":         "05/29",
		"billingAddress":  "9 Pine St",
		"date":            "2026-10-04",
		"quantity":        "3",
		"price":           "132.00",
		"section":         "114",
		"row":             "G",
		"teams":           "Hornets vs. Hawks",
		"location":        "Spectrum Center",
		"email":           "sam@example.com",
	}
}

func TestGetOrder(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/order/abc123", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "abc123")
	assert.Contains(t, rec.Body.String(), "jo lee")
}

func TestGetOrderNotFound(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/order/nope99", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "nope99")
}

func TestUpdateOrder(t *testing.T) {
	e, st := newTestServer(t)

	rec := doJSON(e, http.MethodPatch, "/order/abc123", map[string]string{
		"phoneNumber":     "555",
		"email":           "a@b.com",
		"shippingAddress": "X",
		"zipcode":         "00000",
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	o, err := st.GetOrder("abc123")
	require.NoError(t, err)
	assert.Equal(t, "555", o.PhoneNumber)
	assert.Equal(t, "a@b.com", o.Email)
	assert.Equal(t, "X", o.ShippingAddress)
	assert.Equal(t, "00000", o.Zipcode)
	assert.Equal(t, "jo", o.FirstName, "immutable field untouched")
	assert.Equal(t, "visa", o.PaymentMethod, "immutable field untouched")
}

func TestUpdateOrderOmittedFieldBlanks(t *testing.T) {
	e, st := newTestServer(t)

	rec := doJSON(e, http.MethodPatch, "/order/abc123", map[string]string{"phoneNumber": "555"})
	assert.Equal(t, http.StatusOK, rec.Code)

	o, err := st.GetOrder("abc123")
	require.NoError(t, err)
	assert.Equal(t, "555", o.PhoneNumber)
	assert.Empty(t, o.Email)
	assert.Empty(t, o.Zipcode)
}

func TestUpdateOrderNotFound(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodPatch, "/order/nope99", map[string]string{"phoneNumber": "555"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "nope99")
}

func TestListOrders(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/orders", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "abc123")
}

func TestListOrdersQuery(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/orders?query=jo", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "abc123")

	rec = doJSON(e, http.MethodGet, "/orders?query=zz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "abc123")
}

func TestCreateOrder(t *testing.T) {
	e, st := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/orders", validOrderBody())
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 2, st.OrderCount())

	var created string
	for _, entry := range st.FilterOrders("") {
		if entry.Order.FirstName == "sam" {
			created = entry.ID
			break
		}
	}
	require.NotEmpty(t, created, "created order not found in store")
	assert.Len(t, created, 6)

	o, err := st.GetOrder(created)
	require.NoError(t, err)
	assert.Equal(t, created, o.OrderNumber)
	assert.Equal(t, "reyes", o.LastName)
	assert.Equal(t, "sam@example.com", o.Email)

	// The response is the full list view and includes the new order.
	assert.Contains(t, rec.Body.String(), created)
	assert.Contains(t, rec.Body.String(), "abc123")
}

func TestCreateOrderMissingField(t *testing.T) {
	e, st := newTestServer(t)

	for _, field := range []string{"firstName", "cvv", "email"} {
		body := validOrderBody()
		delete(body, field)
		rec := doJSON(e, http.MethodPost, "/orders", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "'"+field+"' is a required value")
	}
	assert.Equal(t, 1, st.OrderCount(), "no record added on validation failure")
}

func TestCreateOrderEmptyField(t *testing.T) {
	e, st := newTestServer(t)

	body := validOrderBody()
	body["lastName"] = ""
	rec := doJSON(e, http.MethodPost, "/orders", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "'lastName' is a required value")
	assert.Equal(t, 1, st.OrderCount())
}

func TestGameInfo(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/orders/gameInfo", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "hornets vs. hawks")

	rec = doJSON(e, http.MethodGet, "/orders/gameInfo?query=2027", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "hornets vs. hawks")
}

func TestChooseSeats(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/orders/g001/seats", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "hornets vs. hawks")
	assert.Contains(t, rec.Body.String(), "s101")
	assert.Contains(t, rec.Body.String(), "s201")
}

func TestChooseSeatsQuery(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/orders/g001/seats?query=207", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "s201")
	assert.NotContains(t, rec.Body.String(), "s101")
}

func TestChooseSeatsGameNotFound(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/orders/g999/seats", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "g999")
}

func TestRootRedirectsToOrders(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/orders", rec.Header().Get(echo.HeaderLocation))
}

func TestHealth(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestCORSHeadersOnEveryResponse(t *testing.T) {
	e, _ := newTestServer(t)

	for _, target := range []string{"/orders", "/order/nope99", "/"} {
		rec := doJSON(e, http.MethodGet, target, nil)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"), target)
		assert.Equal(t, "Content-Type,Authorization", rec.Header().Get("Access-Control-Allow-Headers"), target)
		assert.Equal(t, "GET,PUT,POST,DELETE", rec.Header().Get("Access-Control-Allow-Methods"), target)
	}
}
