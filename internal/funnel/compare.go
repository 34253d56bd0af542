// ================================
// File: internal/funnel/compare.go
// ================================
package funnel

import "strconv"

// Verdict classifies the revenue uplift between two strategies.
type Verdict int

const (
	// VerdictPositive means the new strategy beats the current one on revenue.
	VerdictPositive Verdict = iota
	// VerdictNegative means it does not.
	VerdictNegative
)

// String returns the string representation of the verdict.
func (v Verdict) String() string {
	switch v {
	case VerdictPositive:
		return "positive"
	case VerdictNegative:
		return "negative"
	default:
		return "unknown"
	}
}

// Comparison is the three-way result of evaluating two scenarios:
// the current projection, the new projection, and the uplift between them.
type Comparison struct {
	Current      YearlyMetrics `json:"current"`
	New          YearlyMetrics `json:"new"`
	RevenueDelta float64       `json:"revenue_delta"`
	ProfitDelta  float64       `json:"profit_delta"`
}

// Compare evaluates both scenarios and derives the uplift.
// Both scenarios are projected fresh on every call; nothing is cached.
func Compare(current, proposed Scenario) Comparison {
	cur := current.YearlyMetrics()
	next := proposed.YearlyMetrics()

	return Comparison{
		Current:      cur,
		New:          next,
		RevenueDelta: next.Revenue - cur.Revenue,
		ProfitDelta:  next.Profit - cur.Profit,
	}
}

// Verdict reports whether the new strategy adds revenue. A zero delta is
// not an improvement, so it lands on the cautionary side.
func (c Comparison) Verdict() Verdict {
	if c.RevenueDelta > 0 {
		return VerdictPositive
	}
	return VerdictNegative
}

// UpliftToCSV converts the delta columns into a CSV record in the same
// column layout as YearlyMetrics.ToCSV. Count columns carry the per-stage
// differences so the uplift row reads like a third scenario.
func (c Comparison) UpliftToCSV() []string {
	return []string{
		"Uplift",
		formatFloat(c.New.SendsPerYear - c.Current.SendsPerYear),
		formatFloat(c.New.TotalSends - c.Current.TotalSends),
		formatFloat(c.New.TotalOpens - c.Current.TotalOpens),
		formatFloat(c.New.TotalClicks - c.Current.TotalClicks),
		formatFloat(c.New.TotalBuyers - c.Current.TotalBuyers),
		formatFloat(c.RevenueDelta),
		formatFloat(c.ProfitDelta),
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
