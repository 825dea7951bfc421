// Package valuation turns a holdings snapshot and a quote set into the rows
// and totals the portfolio screen displays.
package valuation

import (
	"fmt"
	"sort"

	"github.com/avolkov/coinfolio/internal/entity"
)

// Compute joins holdings with their quotes and derives display rows and
// cycle totals. Pure: same inputs, same outputs. A holding with no quote is
// valued at zero rather than dropped. Rows come back sorted by value
// descending; ties keep backend order. Totals aggregate unrounded values so
// per-row display rounding does not compound.
func Compute(holdings []entity.Holding, quotes map[string]entity.Quote) ([]entity.Row, entity.Totals) {
	rows := make([]entity.Row, 0, len(holdings))
	var totals entity.Totals

	for _, h := range holdings {
		var price, change float64
		if quote, ok := quotes[h.Symbol]; ok {
			price = quote.LastPrice
			change = quote.ChangePercent
		}

		row := entity.Row{
			Symbol:           h.Symbol,
			Amount:           h.Amount,
			CurrentPrice:     price,
			ChangePercent:    change,
			Value:            h.Amount * price,
			AllTimeProfitUSD: h.Amount*price - h.Amount*h.AvgPrice,
		}
		// profit percentage is undefined for a zero cost basis
		if h.AvgPrice > 0 {
			row.AllTimeProfitPct = (price/h.AvgPrice - 1) * 100
		}

		totals.Value += row.Value
		totals.ProfitUSD += row.AllTimeProfitUSD
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Value > rows[j].Value
	})

	return rows, totals
}

// FormatAmount keeps the dual-precision display policy: three decimals for
// ordinary amounts, eight once the position is dust-sized.
func FormatAmount(amount float64) string {
	if amount > 0.001 {
		return fmt.Sprintf("%.3f", amount)
	}
	return fmt.Sprintf("%.8f", amount)
}

// FormatUSD renders prices, values and dollar profits with two decimals.
func FormatUSD(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// FormatChangePercent renders the 24h change with three decimals.
func FormatChangePercent(v float64) string {
	return fmt.Sprintf("%.3f", v)
}

// FormatPercent renders profit percentages with two decimals.
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
