// Package store implements the aggregation and pagination query layer over the
// customers/orders relation. Every listing builds its WHERE clause once, as a
// set of (predicate, bound args) pairs, and applies that same set to both the
// row query and the count query so the two cannot drift apart.
package store

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Store executes read queries against the relational store. It holds no state
// beyond the connection handle; every call re-reads from the database.
type Store struct {
	db      *gorm.DB
	timeout time.Duration
}

// New constructs a Store. timeout bounds every query issued through it; zero
// disables the bound.
func New(db *gorm.DB, timeout time.Duration) *Store {
	return &Store{db: db, timeout: timeout}
}

func (s *Store) queryContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

// condition is a single WHERE predicate with its bound arguments. Predicates
// containing OR must carry their own parentheses.
type condition struct {
	expr string
	args []interface{}
}

// conditionSet accumulates filter predicates. The same set is rendered into
// the row query and the count query of a listing.
type conditionSet struct {
	conds []condition
}

func (cs *conditionSet) add(expr string, args ...interface{}) {
	cs.conds = append(cs.conds, condition{expr: expr, args: args})
}

func (cs *conditionSet) apply(tx *gorm.DB) *gorm.DB {
	for _, cond := range cs.conds {
		tx = tx.Where(cond.expr, cond.args...)
	}
	return tx
}

// PageInfo is the pagination envelope shared by the listing endpoints.
// HasNext and HasPrev are pure functions of CurrentPage and TotalPages, so
// repeated calls over unchanged data return identical metadata.
type PageInfo struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalCount  int64 `json:"totalCount"`
	HasNext     bool  `json:"hasNext"`
	HasPrev     bool  `json:"hasPrev"`
}

// NewPageInfo computes the envelope for a page of a listing. Zero rows yield
// zero pages.
func NewPageInfo(page, limit int, totalCount int64) PageInfo {
	totalPages := 0
	if totalCount > 0 {
		totalPages = int((totalCount + int64(limit) - 1) / int64(limit))
	}

	return PageInfo{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalCount:  totalCount,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}
}
