package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/orderdash/internal/store"
	"github.com/example/orderdash/internal/utils"
)

// ChartHandler serves the chart series endpoints.
type ChartHandler struct {
	store *store.Store
}

// NewChartHandler constructs ChartHandler.
func NewChartHandler(s *store.Store) *ChartHandler {
	return &ChartHandler{store: s}
}

type timeSeriesPoint struct {
	Date       string  `json:"date"`
	OrderCount int64   `json:"order_count"`
	Revenue    float64 `json:"revenue"`
}

// OrdersOverTime returns the trailing-window daily series. The series is
// sparse: dates without orders are omitted, not zero-filled.
func (h *ChartHandler) OrdersOverTime(c *fiber.Ctx) error {
	days := utils.ParsePositiveInt(c, "days", 30)

	rows, err := h.store.OrdersOverTime(c.Context(), days)
	if err != nil {
		return err
	}

	points := make([]timeSeriesPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, timeSeriesPoint{
			Date:       row.Date.Format("2006-01-02"),
			OrderCount: row.OrderCount,
			Revenue:    row.Revenue,
		})
	}

	return c.JSON(points)
}

// RevenueByCustomer returns the top customers by completed-order revenue.
func (h *ChartHandler) RevenueByCustomer(c *fiber.Ctx) error {
	limit := utils.ParsePositiveInt(c, "limit", 10)

	rows, err := h.store.RevenueByCustomer(c.Context(), limit)
	if err != nil {
		return err
	}

	return c.JSON(rows)
}

// OrderStatus returns the order count and summed total per status.
func (h *ChartHandler) OrderStatus(c *fiber.Ctx) error {
	rows, err := h.store.StatusDistribution(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(rows)
}
