package entity

import "math"

// Row is a Holding joined with its Quote plus the derived valuation fields.
// Rows are recomputed from scratch every refresh cycle and never stored.
type Row struct {
	Symbol           string
	Amount           float64
	CurrentPrice     float64
	ChangePercent    float64
	Value            float64
	AllTimeProfitPct float64
	AllTimeProfitUSD float64
}

// Totals aggregates every row of one cycle over unrounded values.
type Totals struct {
	Value     float64
	ProfitUSD float64
}

// ProfitPercent returns the headline percentage the tracker has always
// displayed: (|profit+total|/total - 1) * 100. The formula is part of the
// observable contract and must not be normalized to profit over cost.
func (t Totals) ProfitPercent() float64 {
	if t.Value == 0 {
		return 0
	}
	return (math.Abs(t.ProfitUSD+t.Value)/t.Value - 1) * 100
}
