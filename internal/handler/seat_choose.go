package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ticketlane/ticket-orders/internal/render"
)

// ChooseSeats handles GET /orders/:gameID/seats. It responds 404 when the
// game does not exist; otherwise the seat-selection view for that game,
// with the seat list optionally narrowed by ?query= on section and row.
func (h *OrderHandler) ChooseSeats(c echo.Context) error {
	id := c.Param("gameID")
	game, err := h.Store.GetGame(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "no game with ID " + id})
	}
	seats := h.Store.FilterSeats(searchQuery(c))
	return c.Render(http.StatusOK, "seat_choose.html", echo.Map{
		"Game":       game,
		"Seats":      seats,
		"Quantities": render.Quantities,
	})
}
