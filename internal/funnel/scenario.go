// =================================
// File: internal/funnel/scenario.go
// =================================
package funnel

// WeeksPerYear is the annualization factor for weekly send counts.
const WeeksPerYear = 52

// Scenario is one named set of funnel parameters (current or proposed
// strategy). Rate fields are decimals in (0, 1]; the input layer is
// responsible for keeping them in range before construction.
type Scenario struct {
	Name           string  `json:"name"`
	ListSize       int     `json:"list_size"`
	SendsPerWeek   float64 `json:"sends_per_week"`
	OpenRate       float64 `json:"open_rate"`
	ClickRate      float64 `json:"click_rate"`
	ConversionRate float64 `json:"conversion_rate"`
	AvgOrderValue  float64 `json:"avg_order_value"`
	GrossMargin    float64 `json:"gross_margin"`
}

// YearlyMetrics holds the yearly projection derived from a Scenario.
// Every stage is the previous stage scaled by a rate, so with rates in
// (0, 1] each count is bounded by the one before it.
type YearlyMetrics struct {
	Name         string  `json:"name"`
	SendsPerYear float64 `json:"sends_per_year"`
	TotalSends   float64 `json:"total_sends"`
	TotalOpens   float64 `json:"total_opens"`
	TotalClicks  float64 `json:"total_clicks"`
	TotalBuyers  float64 `json:"total_buyers"`
	Revenue      float64 `json:"revenue"`
	Profit       float64 `json:"profit"`
}

// YearlyMetrics projects the scenario over a year. Pure arithmetic: the
// stages feed each other in order and there is nothing to fail. Zero
// sends or an empty list simply zero out everything downstream.
func (s Scenario) YearlyMetrics() YearlyMetrics {
	sendsPerYear := s.SendsPerWeek * WeeksPerYear

	totalSends := float64(s.ListSize) * sendsPerYear
	totalOpens := totalSends * s.OpenRate
	totalClicks := totalOpens * s.ClickRate
	totalBuyers := totalClicks * s.ConversionRate

	revenue := totalBuyers * s.AvgOrderValue
	profit := revenue * s.GrossMargin

	return YearlyMetrics{
		Name:         s.Name,
		SendsPerYear: sendsPerYear,
		TotalSends:   totalSends,
		TotalOpens:   totalOpens,
		TotalClicks:  totalClicks,
		TotalBuyers:  totalBuyers,
		Revenue:      revenue,
		Profit:       profit,
	}
}

// CSVHeaders returns the column headers for metric export rows.
func CSVHeaders() []string {
	return []string{"scenario", "sends_per_year", "total_sends", "total_opens", "total_clicks", "total_buyers", "revenue", "profit"}
}

// ToCSV converts the metrics into a CSV record matching CSVHeaders.
func (m YearlyMetrics) ToCSV() []string {
	return []string{
		m.Name,
		formatFloat(m.SendsPerYear),
		formatFloat(m.TotalSends),
		formatFloat(m.TotalOpens),
		formatFloat(m.TotalClicks),
		formatFloat(m.TotalBuyers),
		formatFloat(m.Revenue),
		formatFloat(m.Profit),
	}
}
