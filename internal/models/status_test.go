package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	assert.Equal(t, StatusPending, Classify("pending"))
	assert.Equal(t, StatusShipped, Classify("shipped"))
	assert.Equal(t, StatusReturned, Classify("returned"))

	// New store-side statuses map to the display fallback instead of failing.
	assert.Equal(t, StatusOther, Classify("awaiting_stock"))
	assert.Equal(t, StatusOther, Classify(""))
}

func TestRevenueStatuses(t *testing.T) {
	assert.ElementsMatch(t,
		[]OrderStatus{StatusCompleted, StatusShipped},
		RevenueStatuses)
}
