package analytics

const (
	SegmentBest   = "Best Customers"
	SegmentNew    = "New Customers"
	SegmentLoyal  = "Loyal Customers"
	SegmentOthers = "Others"
)

// segmentRule pairs a predicate over the three scores with its label
type segmentRule struct {
	label   string
	matches func(r, f, m int) bool
}

// segmentRules is evaluated top to bottom, first match wins. The order is
// significant: "Best Customers" and "New Customers" both require a high
// recency score, and a customer matching the first rule must never fall
// through to the second. Monetary plays no role past the first rule.
var segmentRules = []segmentRule{
	{SegmentBest, func(r, f, m int) bool { return r >= 4 && f >= 4 && m >= 4 }},
	{SegmentNew, func(r, f, m int) bool { return r >= 4 && f <= 2 }},
	{SegmentLoyal, func(r, f, m int) bool { return r <= 2 && f >= 4 }},
}

// ClassifySegment assigns the segment label for one score triple
func ClassifySegment(recencyScore, frequencyScore, monetaryScore int) string {
	for _, rule := range segmentRules {
		if rule.matches(recencyScore, frequencyScore, monetaryScore) {
			return rule.label
		}
	}
	return SegmentOthers
}

// AllSegments lists every segment label in presentation order
func AllSegments() []string {
	return []string{SegmentBest, SegmentNew, SegmentLoyal, SegmentOthers}
}

// IsValidSegment checks if the segment label is one of the fixed taxonomy
func IsValidSegment(segment string) bool {
	switch segment {
	case SegmentBest, SegmentNew, SegmentLoyal, SegmentOthers:
		return true
	default:
		return false
	}
}
