package analytics

import (
	"time"

	"commerce-insights/internal/models"

	"github.com/shopspring/decimal"
)

// SnapshotOffset is how far past the newest order the default snapshot
// instant sits, so the most recent customer still has a recency of one day.
const SnapshotOffset = 24 * time.Hour

type customerState struct {
	lastOrder time.Time
	orderRefs map[string]struct{}
	monetary  decimal.Decimal
}

// DefaultSnapshot returns the reference instant recency is measured
// against when the caller supplies none: one day after the newest order
// in the set. Returns the zero time for an empty set.
func DefaultSnapshot(orders []models.Order) time.Time {
	var latest time.Time
	for i := range orders {
		if orders[i].OccurredAt.After(latest) {
			latest = orders[i].OccurredAt
		}
	}
	if latest.IsZero() {
		return time.Time{}
	}
	return latest.Add(SnapshotOffset)
}

// Aggregate reduces order lines into one CustomerAggregate per distinct
// customer, relative to the snapshot instant:
//
//   - Recency: whole days between the customer's newest order and the
//     snapshot, truncated. The snapshot must not precede the newest order.
//   - Frequency: count of distinct order references (a multi-line order
//     counts once).
//   - Monetary: signed sum of line amounts, returns included.
//
// Output order follows first appearance of each customer in the input,
// which downstream scoring relies on as its deterministic tie-break.
// An empty input yields an empty, non-nil result.
func Aggregate(orders []models.Order, snapshot time.Time) []CustomerAggregate {
	states := make(map[string]*customerState)
	customerOrder := make([]string, 0)

	for i := range orders {
		order := &orders[i]

		state, seen := states[order.CustomerID]
		if !seen {
			state = &customerState{
				orderRefs: make(map[string]struct{}),
				monetary:  decimal.Zero,
			}
			states[order.CustomerID] = state
			customerOrder = append(customerOrder, order.CustomerID)
		}

		if order.OccurredAt.After(state.lastOrder) {
			state.lastOrder = order.OccurredAt
		}
		state.orderRefs[order.OrderRef] = struct{}{}
		state.monetary = state.monetary.Add(order.Amount)
	}

	aggregates := make([]CustomerAggregate, 0, len(customerOrder))
	for _, customerID := range customerOrder {
		state := states[customerID]
		aggregates = append(aggregates, CustomerAggregate{
			CustomerID: customerID,
			Recency:    wholeDays(snapshot.Sub(state.lastOrder)),
			Frequency:  len(state.orderRefs),
			Monetary:   state.monetary,
		})
	}

	return aggregates
}

// wholeDays truncates a duration to full days, matching a "days since"
// reading rather than rounding
func wholeDays(d time.Duration) int {
	return int(d.Hours() / 24)
}
