package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/orderdash/internal/store"
	"github.com/example/orderdash/internal/utils"
)

// CustomerHandler serves the customer listing.
type CustomerHandler struct {
	store *store.Store
}

// NewCustomerHandler constructs CustomerHandler.
func NewCustomerHandler(s *store.Store) *CustomerHandler {
	return &CustomerHandler{store: s}
}

// List returns a page of customers with their derived order_count and
// total_spent, optionally narrowed by a case-insensitive search over name and
// email.
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)

	page, err := h.store.ListCustomers(c.Context(), store.CustomerQuery{
		Page:   pg.Page,
		Limit:  pg.Limit,
		Search: c.Query("search"),
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"customers":  page.Customers,
		"pagination": page.Pagination,
	})
}
