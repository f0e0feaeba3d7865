package models

// OrderStatus tags the lifecycle state of an order. The store treats status as
// free text, so the set is open: unrecognized values are carried through and
// fall back to StatusOther for display grouping rather than failing.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusCompleted  OrderStatus = "completed"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusReturned   OrderStatus = "returned"
	StatusCancelled  OrderStatus = "cancelled"

	// StatusOther is the display fallback for statuses the UI does not know.
	StatusOther OrderStatus = "other"
)

// RevenueStatuses are the statuses counted as realized revenue.
var RevenueStatuses = []OrderStatus{StatusCompleted, StatusShipped}

var knownStatuses = map[OrderStatus]struct{}{
	StatusPending:    {},
	StatusProcessing: {},
	StatusCompleted:  {},
	StatusShipped:    {},
	StatusDelivered:  {},
	StatusReturned:   {},
	StatusCancelled:  {},
}

// Known reports whether s is one of the recognized statuses.
func (s OrderStatus) Known() bool {
	_, ok := knownStatuses[s]
	return ok
}

// Classify maps an arbitrary stored status string onto the open enumeration,
// falling back to StatusOther for values the display layer does not model.
func Classify(raw string) OrderStatus {
	if s := OrderStatus(raw); s.Known() {
		return s
	}
	return StatusOther
}
