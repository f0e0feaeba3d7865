package store

import (
	"context"
	"strings"

	"github.com/example/orderdash/internal/models"
)

// CustomerQuery holds the filter and pagination parameters of a customer
// listing. Page and Limit are assumed normalized (>= 1) by the caller.
type CustomerQuery struct {
	Page   int
	Limit  int
	Search string
}

// CustomerPage is one page of the customer listing.
type CustomerPage struct {
	Customers  []models.Customer
	Pagination PageInfo
}

// ListCustomers returns customers newest first, each carrying its derived
// order_count and total_spent. The aggregate is computed over the grouped set
// before LIMIT/OFFSET applies, and the count query reuses the identical search
// predicate without the grouping so totals stay consistent with the rows.
func (s *Store) ListCustomers(ctx context.Context, q CustomerQuery) (*CustomerPage, error) {
	ctx, cancel := s.queryContext(ctx)
	defer cancel()

	var cs conditionSet
	if search := strings.TrimSpace(q.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		cs.add("(LOWER(customers.name) LIKE ? OR LOWER(customers.email) LIKE ?)", pattern, pattern)
	}

	var total int64
	countQuery := cs.apply(s.db.WithContext(ctx).Model(&models.Customer{}))
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (q.Page - 1) * q.Limit
	rowQuery := cs.apply(
		s.db.WithContext(ctx).Model(&models.Customer{}).
			Select("customers.*, COUNT(orders.id) AS order_count, COALESCE(SUM(orders.total), 0) AS total_spent").
			Joins("LEFT JOIN orders ON orders.customer_id = customers.id"),
	).
		Group("customers.id").
		Order("customers.created_at DESC, customers.id ASC").
		Limit(q.Limit).
		Offset(offset)

	var customers []models.Customer
	if err := rowQuery.Find(&customers).Error; err != nil {
		return nil, err
	}

	return &CustomerPage{
		Customers:  customers,
		Pagination: NewPageInfo(q.Page, q.Limit, total),
	}, nil
}
