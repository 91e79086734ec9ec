package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ticketlane/ticket-orders/internal/model"
	"github.com/ticketlane/ticket-orders/internal/queue"
	"github.com/ticketlane/ticket-orders/internal/render"
	"github.com/ticketlane/ticket-orders/internal/service/queue_publisher"
	"github.com/ticketlane/ticket-orders/internal/utils"
)

// ListOrders handles GET /orders. The optional ?query= parameter narrows
// the list to orders whose customer name contains the query.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	entries := h.Store.FilterOrders(searchQuery(c))
	return c.Render(http.StatusOK, "order_list.html", echo.Map{
		"Orders":     entries,
		"Quantities": render.Quantities,
	})
}

// CreateOrder handles POST /orders. A valid body gets a fresh identifier,
// is inserted with its orderNumber field set to that identifier, and the
// full unfiltered list view is returned with status 201. A missing or
// empty required field yields a 400 naming the field.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var o model.Order
	if err := c.Bind(&o); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if field, missing := missingOrderField(&o); missing {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "'" + field + "' is a required value"})
	}

	id := utils.NewOrderID()
	o.OrderNumber = id
	h.Store.InsertOrder(id, &o)

	if h.PublishEvents {
		evt := queue.OrderCreatedEvent{
			OrderNumber: id,
			FirstName:   o.FirstName,
			LastName:    o.LastName,
			Teams:       o.Teams,
			Date:        o.Date,
			Location:    o.Location,
			Section:     o.Section,
			Row:         o.Row,
			Quantity:    o.Quantity,
			Price:       o.Price,
			CreatedAt:   time.Now().UTC().Format(time.RFC3339),
		}
		// Publish off the request path; the publisher logs its own failures
		// and a lost notification must not fail the creation.
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			_ = queue_publisher.PublishOrderCreated(ctx, evt)
		}()
	}

	return c.Render(http.StatusCreated, "order_list.html", echo.Map{
		"Orders":     h.Store.FilterOrders(""),
		"Quantities": render.Quantities,
	})
}
