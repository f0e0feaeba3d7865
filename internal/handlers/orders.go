package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/example/orderdash/internal/store"
	"github.com/example/orderdash/internal/utils"
)

// OrderHandler serves the order listing.
type OrderHandler struct {
	store *store.Store
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(s *store.Store) *OrderHandler {
	return &OrderHandler{store: s}
}

// List returns a page of orders joined with their customers. status,
// customer_id, start_date and end_date combine with AND; malformed filter
// values are dropped rather than rejected, matching the clamping policy of
// the pagination params.
func (h *OrderHandler) List(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)

	query := store.OrderQuery{
		Page:      pg.Page,
		Limit:     pg.Limit,
		Status:    c.Query("status"),
		StartDate: utils.ParseDate(c, "start_date"),
		EndDate:   utils.ParseDate(c, "end_date"),
	}
	if raw := c.Query("customer_id"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			query.CustomerID = &id
		}
	}

	page, err := h.store.ListOrders(c.Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"orders":     page.Orders,
		"pagination": page.Pagination,
	})
}
