package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// GameInfo handles GET /orders/gameInfo. The optional ?query= parameter
// narrows the list to games whose date or teams text contains the query.
func (h *OrderHandler) GameInfo(c echo.Context) error {
	entries := h.Store.FilterGames(searchQuery(c))
	return c.Render(http.StatusOK, "game_info.html", echo.Map{
		"Games": entries,
	})
}
