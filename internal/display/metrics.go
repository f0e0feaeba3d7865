// Package display computes display-only metrics from aggregates the store has
// already returned. Nothing here touches the database or persists anything;
// the numbers are approximations for rendering, not authoritative figures.
package display

import (
	"strings"

	"github.com/example/orderdash/internal/store"
)

// AverageOrderValue divides realized revenue by the order count, flooring the
// denominator at 1 so an empty store yields 0 instead of a division error.
func AverageOrderValue(totalRevenue float64, totalOrders int64) float64 {
	if totalOrders < 1 {
		totalOrders = 1
	}
	return totalRevenue / float64(totalOrders)
}

// CompletionRate is the percentage of orders no longer pending, with the same
// denominator floor as AverageOrderValue.
func CompletionRate(totalOrders, pendingOrders int64) float64 {
	denominator := totalOrders
	if denominator < 1 {
		denominator = 1
	}
	return float64(totalOrders-pendingOrders) / float64(denominator) * 100
}

// Trend summarizes an orders-over-time window for display.
type Trend struct {
	OrderChangePercent float64 `json:"orderChangePercent"`
	BestDay            string  `json:"bestDay"`
	BestDayRevenue     float64 `json:"bestDayRevenue"`
	ProjectedRevenue   float64 `json:"projectedRevenue"`
}

// AnalyzeTrend derives window analytics from an already-fetched series:
// percent change in order count between the first and last returned day, the
// single best day by revenue, and a 30-day revenue projection from the window
// average. An empty series yields the zero Trend.
func AnalyzeTrend(series []store.TimeSeriesRow) Trend {
	if len(series) == 0 {
		return Trend{}
	}

	first := series[0]
	last := series[len(series)-1]

	var trend Trend
	if first.OrderCount > 0 {
		trend.OrderChangePercent = float64(last.OrderCount-first.OrderCount) /
			float64(first.OrderCount) * 100
	}

	best := series[0]
	var windowRevenue float64
	for _, row := range series {
		windowRevenue += row.Revenue
		if row.Revenue > best.Revenue {
			best = row
		}
	}

	trend.BestDay = best.Date.Format("2006-01-02")
	trend.BestDayRevenue = best.Revenue
	trend.ProjectedRevenue = windowRevenue / float64(len(series)) * 30

	return trend
}

// PaymentMethodLabel normalizes a stored payment method for display:
// underscores become spaces and each word is capitalized.
func PaymentMethodLabel(raw string) string {
	words := strings.Fields(strings.ReplaceAll(raw, "_", " "))
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
