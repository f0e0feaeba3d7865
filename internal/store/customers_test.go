package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCustomersAggregates(t *testing.T) {
	s, db := newTestStore(t)
	a, b := seedBaseScenario(t, db)

	page, err := s.ListCustomers(context.Background(), CustomerQuery{Page: 1, Limit: 10})
	require.NoError(t, err)

	require.Len(t, page.Customers, 2)
	assert.Equal(t, int64(2), page.Pagination.TotalCount)

	// Newest created first: B (5 days ago) before A (10 days ago).
	assert.Equal(t, b.ID, page.Customers[0].ID)
	assert.Equal(t, a.ID, page.Customers[1].ID)

	assert.Equal(t, int64(1), page.Customers[0].OrderCount)
	assert.InDelta(t, 149.50, page.Customers[0].TotalSpent, 0.001)
	assert.Equal(t, int64(2), page.Customers[1].OrderCount)
	assert.InDelta(t, 389.98, page.Customers[1].TotalSpent, 0.001)
}

func TestListCustomersWithoutOrders(t *testing.T) {
	s, db := newTestStore(t)
	seedCustomer(t, db, "Carol Chen", "carol@example.com", date(1))

	page, err := s.ListCustomers(context.Background(), CustomerQuery{Page: 1, Limit: 10})
	require.NoError(t, err)

	require.Len(t, page.Customers, 1)
	assert.Equal(t, int64(0), page.Customers[0].OrderCount)
	// The aggregate must default to zero, not null.
	assert.Equal(t, 0.0, page.Customers[0].TotalSpent)
}

func TestListCustomersSearch(t *testing.T) {
	s, db := newTestStore(t)
	a, _ := seedBaseScenario(t, db)

	t.Run("matches name case-insensitively", func(t *testing.T) {
		page, err := s.ListCustomers(context.Background(), CustomerQuery{Page: 1, Limit: 10, Search: "alice"})
		require.NoError(t, err)

		require.Len(t, page.Customers, 1)
		assert.Equal(t, a.ID, page.Customers[0].ID)
		assert.Equal(t, int64(2), page.Customers[0].OrderCount)
		assert.InDelta(t, 389.98, page.Customers[0].TotalSpent, 0.001)
		assert.Equal(t, int64(1), page.Pagination.TotalCount)
	})

	t.Run("matches email", func(t *testing.T) {
		page, err := s.ListCustomers(context.Background(), CustomerQuery{Page: 1, Limit: 10, Search: "BOB@"})
		require.NoError(t, err)

		require.Len(t, page.Customers, 1)
		assert.Equal(t, "Bob Brown", page.Customers[0].Name)
	})

	t.Run("whitespace-only search applies no predicate", func(t *testing.T) {
		page, err := s.ListCustomers(context.Background(), CustomerQuery{Page: 1, Limit: 10, Search: "   "})
		require.NoError(t, err)
		assert.Equal(t, int64(2), page.Pagination.TotalCount)
	})

	t.Run("no match yields empty page", func(t *testing.T) {
		page, err := s.ListCustomers(context.Background(), CustomerQuery{Page: 1, Limit: 10, Search: "zzz"})
		require.NoError(t, err)
		assert.Empty(t, page.Customers)
		assert.Equal(t, int64(0), page.Pagination.TotalCount)
	})
}

// Paginating through every page must return each customer exactly once and
// agree with the count query's total.
func TestListCustomersPaginationRoundTrip(t *testing.T) {
	s, db := newTestStore(t)

	const customerCount = 23
	for i := 0; i < customerCount; i++ {
		c := seedCustomer(t, db,
			fmt.Sprintf("Customer %02d", i),
			fmt.Sprintf("customer%02d@example.com", i),
			date(i))
		if i%3 == 0 {
			seedOrder(t, db, c.ID, 10.00, "completed", date(i))
		}
	}

	const limit = 5
	seen := map[int64]bool{}
	page := 1
	for {
		result, err := s.ListCustomers(context.Background(), CustomerQuery{Page: page, Limit: limit})
		require.NoError(t, err)
		assert.Equal(t, int64(customerCount), result.Pagination.TotalCount)

		for _, customer := range result.Customers {
			assert.False(t, seen[customer.ID], "customer %d returned twice", customer.ID)
			seen[customer.ID] = true
		}

		if !result.Pagination.HasNext {
			break
		}
		page++
	}

	assert.Len(t, seen, customerCount)
	assert.Equal(t, 5, page)
}

// Aggregation happens before LIMIT/OFFSET: a customer with many orders still
// occupies a single listing row.
func TestListCustomersGroupBeforePagination(t *testing.T) {
	s, db := newTestStore(t)

	c := seedCustomer(t, db, "Frequent Buyer", "frequent@example.com", date(1))
	for i := 0; i < 7; i++ {
		seedOrder(t, db, c.ID, 25.00, "completed", date(i))
	}

	page, err := s.ListCustomers(context.Background(), CustomerQuery{Page: 1, Limit: 3})
	require.NoError(t, err)

	require.Len(t, page.Customers, 1)
	assert.Equal(t, int64(7), page.Customers[0].OrderCount)
	assert.InDelta(t, 175.00, page.Customers[0].TotalSpent, 0.001)
	assert.Equal(t, int64(1), page.Pagination.TotalCount)
	assert.Equal(t, 1, page.Pagination.TotalPages)
}
