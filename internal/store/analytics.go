package store

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/example/orderdash/internal/models"
)

// Summary is the dashboard headline aggregate. TotalRevenue counts only
// realized revenue (completed and shipped orders).
type Summary struct {
	TotalOrders    int64   `json:"totalOrders"`
	TotalCustomers int64   `json:"totalCustomers"`
	TotalRevenue   float64 `json:"totalRevenue"`
	PendingOrders  int64   `json:"pendingOrders"`
}

// StatusRevenueRow is one status bucket of the revenue breakdown.
type StatusRevenueRow struct {
	Status       string  `json:"status"`
	OrderCount   int64   `json:"order_count"`
	TotalRevenue float64 `json:"total_revenue"`
}

// TimeSeriesRow is one calendar date of the orders-over-time series. Dates
// without orders never produce a row; the series is sparse.
type TimeSeriesRow struct {
	Date       time.Time `json:"date"`
	OrderCount int64     `json:"order_count"`
	Revenue    float64   `json:"revenue"`
}

// CustomerRevenueRow is one ranked customer of the revenue-by-customer chart.
type CustomerRevenueRow struct {
	Name         string  `json:"name"`
	TotalRevenue float64 `json:"total_revenue"`
	OrderCount   int64   `json:"order_count"`
}

// StatusDistributionRow is one status bucket of the order-status chart.
type StatusDistributionRow struct {
	Status     string  `json:"status"`
	Count      int64   `json:"count"`
	TotalValue float64 `json:"total_value"`
}

func revenueStatusStrings() []string {
	statuses := make([]string, 0, len(models.RevenueStatuses))
	for _, s := range models.RevenueStatuses {
		statuses = append(statuses, string(s))
	}
	return statuses
}

// DashboardSummary computes the four headline aggregates. The queries are
// independent reads and run concurrently; the result is a snapshot as of query
// time with no cross-query consistency guarantee.
func (s *Store) DashboardSummary(ctx context.Context) (*Summary, error) {
	ctx, cancel := s.queryContext(ctx)
	defer cancel()

	var summary Summary
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.db.WithContext(ctx).Model(&models.Order{}).
			Count(&summary.TotalOrders).Error
	})
	g.Go(func() error {
		return s.db.WithContext(ctx).Model(&models.Customer{}).
			Count(&summary.TotalCustomers).Error
	})
	g.Go(func() error {
		return s.db.WithContext(ctx).Model(&models.Order{}).
			Where("status IN ?", revenueStatusStrings()).
			Select("COALESCE(SUM(total), 0)").
			Scan(&summary.TotalRevenue).Error
	})
	g.Go(func() error {
		return s.db.WithContext(ctx).Model(&models.Order{}).
			Where("status = ?", string(models.StatusPending)).
			Count(&summary.PendingOrders).Error
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &summary, nil
}

// RevenueBreakdown returns one row per distinct status, highest revenue first.
func (s *Store) RevenueBreakdown(ctx context.Context) ([]StatusRevenueRow, error) {
	ctx, cancel := s.queryContext(ctx)
	defer cancel()

	rows := []StatusRevenueRow{}
	err := s.db.WithContext(ctx).Model(&models.Order{}).
		Select("status, COUNT(*) AS order_count, COALESCE(SUM(total), 0) AS total_revenue").
		Group("status").
		Order("total_revenue DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// OrdersOverTime returns per-date order counts and revenue for the trailing
// days window, oldest first. Only dates with at least one order appear.
func (s *Store) OrdersOverTime(ctx context.Context, days int) ([]TimeSeriesRow, error) {
	ctx, cancel := s.queryContext(ctx)
	defer cancel()

	now := time.Now().UTC()
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, -days)

	rows := []TimeSeriesRow{}
	err := s.db.WithContext(ctx).Model(&models.Order{}).
		Select("order_date AS date, COUNT(*) AS order_count, COALESCE(SUM(total), 0) AS revenue").
		Where("order_date >= ?", cutoff).
		Group("order_date").
		Order("order_date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// RevenueByCustomer ranks customers by revenue from completed orders,
// descending. Ties are broken by ascending customer id so repeated calls over
// unchanged data agree on the ranking.
func (s *Store) RevenueByCustomer(ctx context.Context, limit int) ([]CustomerRevenueRow, error) {
	ctx, cancel := s.queryContext(ctx)
	defer cancel()

	rows := []CustomerRevenueRow{}
	err := s.db.WithContext(ctx).Model(&models.Customer{}).
		Select("customers.name, COALESCE(SUM(orders.total), 0) AS total_revenue, COUNT(orders.id) AS order_count").
		Joins("INNER JOIN orders ON orders.customer_id = customers.id").
		Where("orders.status = ?", string(models.StatusCompleted)).
		Group("customers.id, customers.name").
		Order("total_revenue DESC, customers.id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// StatusDistribution returns one row per distinct status with order count and
// summed total, most frequent first.
func (s *Store) StatusDistribution(ctx context.Context) ([]StatusDistributionRow, error) {
	ctx, cancel := s.queryContext(ctx)
	defer cancel()

	rows := []StatusDistributionRow{}
	err := s.db.WithContext(ctx).Model(&models.Order{}).
		Select("status, COUNT(*) AS count, COALESCE(SUM(total), 0) AS total_value").
		Group("status").
		Order("count DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
