// Package handler exposes the HTTP resource handlers for the ticket order
// service. All handlers are stateless: every request resolves against the
// injected store and renders an HTML view or a small JSON error body.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ticketlane/ticket-orders/internal/render"
	"github.com/ticketlane/ticket-orders/internal/store"
)

// OrderHandler aggregates the dependencies of the order, game and seat
// resources. PublishEvents enables the order.created broker notification
// after a successful creation.
type OrderHandler struct {
	Store         *store.Store
	PublishEvents bool
}

// GetOrder handles GET /order/:orderID. It responds 404 when no order
// exists under the identifier, otherwise the rendered single-order view.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	id := c.Param("orderID")
	o, err := h.Store.GetOrder(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "no order with ID " + id})
	}
	return c.Render(http.StatusOK, "order.html", echo.Map{
		"Order":      o,
		"Quantities": render.QuantitiesDescending,
	})
}

// UpdateOrder handles PATCH /order/:orderID. It replaces the four mutable
// fields with the submitted values (absent fields blank out) and responds
// with the updated single-order view.
func (h *OrderHandler) UpdateOrder(c echo.Context) error {
	id := c.Param("orderID")
	if _, err := h.Store.GetOrder(id); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "no order with ID " + id})
	}
	var f updateForm
	if err := c.Bind(&f); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	o, err := h.Store.UpdateOrder(id, f.update())
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "no order with ID " + id})
	}
	return c.Render(http.StatusOK, "order.html", echo.Map{
		"Order":      o,
		"Quantities": render.QuantitiesDescending,
	})
}
