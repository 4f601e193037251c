package analytics

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerAggregate holds the three RFM dimensions for one customer,
// reduced from that customer's order lines relative to a snapshot instant.
// Aggregates live for a single scoring pass and are never persisted.
type CustomerAggregate struct {
	CustomerID string          `json:"customer_id"`
	Recency    int             `json:"recency"`
	Frequency  int             `json:"frequency"`
	Monetary   decimal.Decimal `json:"monetary"`
}

// ScoredCustomer extends a CustomerAggregate with its population-relative
// quantile scores, the composite code, and the assigned segment. Scores
// depend on the whole co-present population: re-scoring a different
// filtered set changes everyone's scores.
type ScoredCustomer struct {
	CustomerAggregate
	RecencyScore   int    `json:"recency_score"`
	FrequencyScore int    `json:"frequency_score"`
	MonetaryScore  int    `json:"monetary_score"`
	CompositeScore string `json:"composite_score"`
	Segment        string `json:"segment"`
}

// SalesSummary contains the headline KPIs over one filtered order set
type SalesSummary struct {
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	OrderCount        int64           `json:"order_count"`
	CustomerCount     int64           `json:"customer_count"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
}

// RevenueBucket is one point of a time-bucketed revenue series
type RevenueBucket struct {
	BucketStart time.Time       `json:"bucket_start"`
	Revenue     decimal.Decimal `json:"revenue"`
	OrderCount  int64           `json:"order_count"`
}

// RankingEntry is one row of a top-N revenue ranking over a categorical key
type RankingEntry struct {
	Key        string          `json:"key"`
	Revenue    decimal.Decimal `json:"revenue"`
	OrderCount int64           `json:"order_count"`
}

// HistogramBin counts customers sharing one composite score code
type HistogramBin struct {
	CompositeScore string `json:"composite_score"`
	CustomerCount  int64  `json:"customer_count"`
}

// SegmentSummary aggregates the scored population per segment label
type SegmentSummary struct {
	Segment       string          `json:"segment"`
	CustomerCount int64           `json:"customer_count"`
	AvgRecency    decimal.Decimal `json:"avg_recency"`
	AvgFrequency  decimal.Decimal `json:"avg_frequency"`
	AvgMonetary   decimal.Decimal `json:"avg_monetary"`
	TotalMonetary decimal.Decimal `json:"total_monetary"`
}

// Granularity selects the bucket width of a revenue series
type Granularity string

const (
	GranularityDaily   Granularity = "daily"
	GranularityWeekly  Granularity = "weekly"
	GranularityMonthly Granularity = "monthly"
)

// IsValidGranularity checks if the granularity is supported
func IsValidGranularity(g string) bool {
	switch Granularity(g) {
	case GranularityDaily, GranularityWeekly, GranularityMonthly:
		return true
	default:
		return false
	}
}
