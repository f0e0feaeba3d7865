package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/orderdash/internal/display"
	"github.com/example/orderdash/internal/store"
)

// DashboardHandler serves the headline aggregate endpoints.
type DashboardHandler struct {
	store *store.Store
}

// NewDashboardHandler constructs DashboardHandler.
func NewDashboardHandler(s *store.Store) *DashboardHandler {
	return &DashboardHandler{store: s}
}

// Summary returns the four headline aggregates.
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.store.DashboardSummary(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(summary)
}

// RevenueBreakdown returns per-status order counts and revenue.
func (h *DashboardHandler) RevenueBreakdown(c *fiber.Ctx) error {
	rows, err := h.store.RevenueBreakdown(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(rows)
}

// Insights returns display-only metrics derived in-process from the summary
// and the trailing 30-day series. None of this arithmetic runs in SQL; the
// numbers are rendering aids, not authoritative aggregates.
func (h *DashboardHandler) Insights(c *fiber.Ctx) error {
	summary, err := h.store.DashboardSummary(c.Context())
	if err != nil {
		return err
	}

	series, err := h.store.OrdersOverTime(c.Context(), 30)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"averageOrderValue": display.AverageOrderValue(summary.TotalRevenue, summary.TotalOrders),
		"completionRate":    display.CompletionRate(summary.TotalOrders, summary.PendingOrders),
		"trend":             display.AnalyzeTrend(series),
	})
}
