package store

import (
	"context"
	"time"

	"github.com/example/orderdash/internal/models"
)

// OrderQuery holds the filter and pagination parameters of an order listing.
// Filters are optional and combine with AND; date bounds are inclusive
// calendar dates. Page and Limit are assumed normalized (>= 1) by the caller.
type OrderQuery struct {
	Page       int
	Limit      int
	Status     string
	CustomerID *int64
	StartDate  *time.Time
	EndDate    *time.Time
}

// OrderPage is one page of the order listing.
type OrderPage struct {
	Orders     []models.Order
	Pagination PageInfo
}

// ListOrders returns orders newest first, each joined with its customer to
// expose customer_name and customer_email. Orders whose customer no longer
// exists are excluded by the join. The count query applies exactly the same
// predicates as the row query, so a filter referencing an unknown customer
// yields an empty page with totalCount 0 rather than an error.
func (s *Store) ListOrders(ctx context.Context, q OrderQuery) (*OrderPage, error) {
	ctx, cancel := s.queryContext(ctx)
	defer cancel()

	var cs conditionSet
	if q.Status != "" {
		cs.add("orders.status = ?", q.Status)
	}
	if q.CustomerID != nil {
		cs.add("orders.customer_id = ?", *q.CustomerID)
	}
	if q.StartDate != nil {
		cs.add("orders.order_date >= ?", *q.StartDate)
	}
	if q.EndDate != nil {
		cs.add("orders.order_date <= ?", *q.EndDate)
	}

	var total int64
	countQuery := cs.apply(
		s.db.WithContext(ctx).Model(&models.Order{}).
			Joins("INNER JOIN customers ON customers.id = orders.customer_id"),
	)
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (q.Page - 1) * q.Limit
	rowQuery := cs.apply(
		s.db.WithContext(ctx).Model(&models.Order{}).
			Select("orders.*, customers.name AS customer_name, customers.email AS customer_email").
			Joins("INNER JOIN customers ON customers.id = orders.customer_id"),
	).
		Order("orders.created_at DESC, orders.id ASC").
		Limit(q.Limit).
		Offset(offset)

	var orders []models.Order
	if err := rowQuery.Find(&orders).Error; err != nil {
		return nil, err
	}

	return &OrderPage{
		Orders:     orders,
		Pagination: NewPageInfo(q.Page, q.Limit, total),
	}, nil
}
