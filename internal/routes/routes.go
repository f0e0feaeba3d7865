package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/orderdash/internal/config"
	"github.com/example/orderdash/internal/handlers"
	"github.com/example/orderdash/internal/middleware"
	"github.com/example/orderdash/internal/store"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	s := store.New(db, cfg.QueryTimeout)

	dashboardHandler := handlers.NewDashboardHandler(s)
	customerHandler := handlers.NewCustomerHandler(s)
	orderHandler := handlers.NewOrderHandler(s)
	chartHandler := handlers.NewChartHandler(s)

	api := app.Group("/api")

	api.Get("/dashboard", dashboardHandler.Summary)
	api.Get("/dashboard/revenue-breakdown", dashboardHandler.RevenueBreakdown)
	api.Get("/dashboard/insights", dashboardHandler.Insights)

	api.Get("/customers", customerHandler.List)
	api.Get("/orders", orderHandler.List)

	charts := api.Group("/charts")
	charts.Get("/orders-over-time", chartHandler.OrdersOverTime)
	charts.Get("/revenue-by-customer", chartHandler.RevenueByCustomer)
	charts.Get("/order-status", chartHandler.OrderStatus)

	api.Get("/health", handlers.Health)

	app.Use(middleware.NotFound)
}
