package analytics

import (
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"
)

// Score converts a population of CustomerAggregates into ScoredCustomers.
// Each dimension is ranked independently across the whole population, the
// ranks are split into five near-equal quantile buckets, and the bucket
// index becomes the 1–5 score. Recency scores run inverted (most recent
// gets 5); Frequency and Monetary run ascending (largest gets 5).
//
// Binning happens strictly over ranks, never over raw value ranges, so
// bucket populations stay even under arbitrary skew or duplicate mass.
// Populations smaller than five customers still score; some score values
// simply go unused. An empty population returns an empty, non-nil slice.
func Score(aggregates []CustomerAggregate) []ScoredCustomer {
	n := len(aggregates)
	if n == 0 {
		return []ScoredCustomer{}
	}

	var recencyScores, frequencyScores, monetaryScores []int

	// The three ranking passes are read-only over the same slice and each
	// writes its own result, so they run without coordination.
	var g errgroup.Group
	g.Go(func() error {
		recencyScores = dimensionScores(aggregates,
			func(a, b *CustomerAggregate) bool { return a.Recency < b.Recency },
			func(bucket int) int { return 6 - bucket },
		)
		return nil
	})
	g.Go(func() error {
		frequencyScores = dimensionScores(aggregates,
			func(a, b *CustomerAggregate) bool { return a.Frequency < b.Frequency },
			func(bucket int) int { return bucket },
		)
		return nil
	})
	g.Go(func() error {
		monetaryScores = dimensionScores(aggregates,
			func(a, b *CustomerAggregate) bool { return a.Monetary.LessThan(b.Monetary) },
			func(bucket int) int { return bucket },
		)
		return nil
	})
	// The passes cannot fail; Wait is only the join point.
	_ = g.Wait()

	scored := make([]ScoredCustomer, n)
	for i := range aggregates {
		r := recencyScores[i]
		f := frequencyScores[i]
		m := monetaryScores[i]

		scored[i] = ScoredCustomer{
			CustomerAggregate: aggregates[i],
			RecencyScore:      r,
			FrequencyScore:    f,
			MonetaryScore:     m,
			CompositeScore:    fmt.Sprintf("%d%d%d", r, f, m),
			Segment:           ClassifySegment(r, f, m),
		}
	}

	return scored
}

// dimensionScores ranks every aggregate on one dimension and maps each
// rank through its quantile bucket to a score. Ranks are unique 1..N even
// under raw-value ties: the stable sort breaks ties by original input
// position, so the quantile split stays exactly even-sized.
func dimensionScores(aggregates []CustomerAggregate, less func(a, b *CustomerAggregate) bool, score func(bucket int) int) []int {
	n := len(aggregates)

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return less(&aggregates[order[i]], &aggregates[order[j]])
	})

	scores := make([]int, n)
	for pos, idx := range order {
		rank := pos + 1
		scores[idx] = score(bucketForRank(rank, n))
	}
	return scores
}

// bucketForRank places a 1-based rank into one of five contiguous buckets.
// Bucket sizes are ⌊n/5⌋ or ⌊n/5⌋+1: when n is not divisible by five the
// earlier buckets take the extra member, so sizes differ by at most one
// and always sum to n.
func bucketForRank(rank, n int) int {
	base := n / 5
	rem := n % 5

	upper := 0
	for bucket := 1; bucket <= 5; bucket++ {
		size := base
		if bucket <= rem {
			size++
		}
		upper += size
		if rank <= upper {
			return bucket
		}
	}
	return 5
}
