package router // package router defines how HTTP routes are registered for the service

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ticketlane/ticket-orders/internal/handler"
)

// RegisterRoutes wires every resource onto the provided Echo instance:
// the order resource, the order list, the game info view and the seat
// selection view, plus the health check.
func RegisterRoutes(e *echo.Echo, h *handler.OrderHandler) {
	// Liveness probe for load balancers and monitoring.
	e.GET("/healthz", handler.Health)

	// No resource lives at the root; send browsers to the order list.
	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusSeeOther, "/orders")
	})

	e.GET("/order/:orderID", h.GetOrder)
	e.PATCH("/order/:orderID", h.UpdateOrder)

	e.GET("/orders", h.ListOrders)
	e.POST("/orders", h.CreateOrder)

	e.GET("/orders/gameInfo", h.GameInfo)
	e.GET("/orders/:gameID/seats", h.ChooseSeats)
}
