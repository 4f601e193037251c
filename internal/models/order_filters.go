package models

import "time"

// OrderFilters contains filtering options for order queries. Filter
// dimensions combine with AND; values inside Countries/Products combine
// with OR. A nil/empty dimension applies no restriction.
type OrderFilters struct {
	Countries  []string
	Products   []string
	CustomerID string
	StartDate  *time.Time
	EndDate    *time.Time
	Offset     int
	Limit      int
}

// HasDateRange reports whether both day bounds are set
func (f *OrderFilters) HasDateRange() bool {
	return f.StartDate != nil && f.EndDate != nil
}

// DatasetFacets describes the filterable surface of the stored dataset:
// the distinct values per dimension plus the covered date span.
type DatasetFacets struct {
	Countries   []string   `json:"countries"`
	Products    []string   `json:"products"`
	FirstOrder  *time.Time `json:"first_order,omitempty"`
	LastOrder   *time.Time `json:"last_order,omitempty"`
	TotalOrders int64      `json:"total_orders"`
}
