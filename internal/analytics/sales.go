package analytics

import (
	"sort"
	"time"

	"commerce-insights/internal/models"

	"github.com/shopspring/decimal"
)

// Summarize computes the headline KPIs over one filtered order set.
// Orders and customers are counted distinct, revenue is the signed sum of
// line amounts, and average order value short-circuits to zero when the
// set holds no orders. An empty set degrades to all-zero values.
func Summarize(orders []models.Order) SalesSummary {
	totalRevenue := decimal.Zero
	orderRefs := make(map[string]struct{})
	customers := make(map[string]struct{})

	for i := range orders {
		order := &orders[i]
		totalRevenue = totalRevenue.Add(order.Amount)
		orderRefs[order.OrderRef] = struct{}{}
		customers[order.CustomerID] = struct{}{}
	}

	summary := SalesSummary{
		TotalRevenue:      totalRevenue,
		OrderCount:        int64(len(orderRefs)),
		CustomerCount:     int64(len(customers)),
		AverageOrderValue: decimal.Zero,
	}

	if summary.OrderCount > 0 {
		summary.AverageOrderValue = totalRevenue.Div(decimal.NewFromInt(summary.OrderCount))
	}

	return summary
}

// RevenueSeries sums revenue per time bucket over a filtered order set.
// Buckets with no orders inside the covered span still appear with zero
// revenue, so trend charts show gaps instead of skipping days. Timestamps
// are normalized to UTC before bucketing. Buckets come back in ascending
// order; an empty input yields an empty series.
func RevenueSeries(orders []models.Order, granularity Granularity) []RevenueBucket {
	if len(orders) == 0 {
		return []RevenueBucket{}
	}

	type bucketState struct {
		revenue   decimal.Decimal
		orderRefs map[string]struct{}
	}

	buckets := make(map[time.Time]*bucketState)
	var first, last time.Time

	for i := range orders {
		order := &orders[i]
		start := BucketStart(order.OccurredAt, granularity)

		state, ok := buckets[start]
		if !ok {
			state = &bucketState{
				revenue:   decimal.Zero,
				orderRefs: make(map[string]struct{}),
			}
			buckets[start] = state
		}
		state.revenue = state.revenue.Add(order.Amount)
		state.orderRefs[order.OrderRef] = struct{}{}

		if first.IsZero() || start.Before(first) {
			first = start
		}
		if start.After(last) {
			last = start
		}
	}

	series := make([]RevenueBucket, 0, len(buckets))
	for cursor := first; !cursor.After(last); cursor = nextBucket(cursor, granularity) {
		bucket := RevenueBucket{BucketStart: cursor, Revenue: decimal.Zero}
		if state, ok := buckets[cursor]; ok {
			bucket.Revenue = state.revenue
			bucket.OrderCount = int64(len(state.orderRefs))
		}
		series = append(series, bucket)
	}

	return series
}

// BucketStart truncates a timestamp to the start of its bucket in UTC.
// Weekly buckets start on Monday, monthly buckets on the first of the
// month.
func BucketStart(t time.Time, granularity Granularity) time.Time {
	t = t.UTC()
	switch granularity {
	case GranularityWeekly:
		daysPastMonday := (int(t.Weekday()) + 6) % 7
		t = t.AddDate(0, 0, -daysPastMonday)
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	case GranularityMonthly:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}
}

func nextBucket(t time.Time, granularity Granularity) time.Time {
	switch granularity {
	case GranularityWeekly:
		return t.AddDate(0, 0, 7)
	case GranularityMonthly:
		return t.AddDate(0, 1, 0)
	default:
		return t.AddDate(0, 0, 1)
	}
}

// TopCountries ranks countries by summed revenue, largest first
func TopCountries(orders []models.Order, limit int) []RankingEntry {
	return topByKey(orders, limit, func(o *models.Order) string { return o.Country })
}

// TopProducts ranks products by summed revenue, largest first
func TopProducts(orders []models.Order, limit int) []RankingEntry {
	return topByKey(orders, limit, func(o *models.Order) string { return o.Product })
}

// topByKey sums revenue per categorical key and keeps the top entries.
// Lines with an empty key are left out rather than grouped under a blank
// label. Revenue ties break alphabetically so rankings stay deterministic.
func topByKey(orders []models.Order, limit int, key func(*models.Order) string) []RankingEntry {
	type keyState struct {
		revenue   decimal.Decimal
		orderRefs map[string]struct{}
	}

	states := make(map[string]*keyState)
	for i := range orders {
		order := &orders[i]
		k := key(order)
		if k == "" {
			continue
		}

		state, ok := states[k]
		if !ok {
			state = &keyState{
				revenue:   decimal.Zero,
				orderRefs: make(map[string]struct{}),
			}
			states[k] = state
		}
		state.revenue = state.revenue.Add(order.Amount)
		state.orderRefs[order.OrderRef] = struct{}{}
	}

	entries := make([]RankingEntry, 0, len(states))
	for k, state := range states {
		entries = append(entries, RankingEntry{
			Key:        k,
			Revenue:    state.revenue,
			OrderCount: int64(len(state.orderRefs)),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Revenue.Equal(entries[j].Revenue) {
			return entries[i].Revenue.GreaterThan(entries[j].Revenue)
		}
		return entries[i].Key < entries[j].Key
	})

	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}
	return entries
}

// CompositeHistogram counts customers per composite score code, ordered
// by code ascending
func CompositeHistogram(scored []ScoredCustomer) []HistogramBin {
	counts := make(map[string]int64)
	for i := range scored {
		counts[scored[i].CompositeScore]++
	}

	bins := make([]HistogramBin, 0, len(counts))
	for code, count := range counts {
		bins = append(bins, HistogramBin{CompositeScore: code, CustomerCount: count})
	}

	sort.Slice(bins, func(i, j int) bool {
		return bins[i].CompositeScore < bins[j].CompositeScore
	})
	return bins
}

// SegmentSummaries aggregates the scored population per segment label:
// customer count, dimension averages, and total monetary value. Segments
// with no customers are omitted; the rest follow taxonomy order.
func SegmentSummaries(scored []ScoredCustomer) []SegmentSummary {
	type segmentState struct {
		customers    int64
		sumRecency   int64
		sumFrequency int64
		sumMonetary  decimal.Decimal
	}

	states := make(map[string]*segmentState)
	for i := range scored {
		customer := &scored[i]

		state, ok := states[customer.Segment]
		if !ok {
			state = &segmentState{sumMonetary: decimal.Zero}
			states[customer.Segment] = state
		}
		state.customers++
		state.sumRecency += int64(customer.Recency)
		state.sumFrequency += int64(customer.Frequency)
		state.sumMonetary = state.sumMonetary.Add(customer.Monetary)
	}

	summaries := make([]SegmentSummary, 0, len(states))
	for _, segment := range AllSegments() {
		state, ok := states[segment]
		if !ok {
			continue
		}

		count := decimal.NewFromInt(state.customers)
		summaries = append(summaries, SegmentSummary{
			Segment:       segment,
			CustomerCount: state.customers,
			AvgRecency:    decimal.NewFromInt(state.sumRecency).Div(count),
			AvgFrequency:  decimal.NewFromInt(state.sumFrequency).Div(count),
			AvgMonetary:   state.sumMonetary.Div(count),
			TotalMonetary: state.sumMonetary,
		})
	}

	return summaries
}
