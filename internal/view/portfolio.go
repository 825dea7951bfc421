package view

import (
	"context"
	"fmt"
	"strings"

	"github.com/avolkov/coinfolio/internal/entity"
	"github.com/avolkov/coinfolio/internal/services/valuation"
)

const iconMark = "●"

// PortfolioView renders the whole portfolio screen as one frame: totals on
// top, one line per row in computed order, then the command hint. The frame
// is rebuilt from scratch every applied cycle so totals and rows can never
// disagree on screen.
type PortfolioView struct {
	icons *IconResolver
}

// NewPortfolioView builds the view; icons may be nil to skip icon markers.
func NewPortfolioView(icons *IconResolver) *PortfolioView {
	return &PortfolioView{icons: icons}
}

func (v *PortfolioView) Render(ctx context.Context, rows []entity.Row, totals entity.Totals, alert string) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("PORTFOLIO"))
	b.WriteString("\n\n")
	b.WriteString(totalStyle.Render("Total value   $" + valuation.FormatUSD(totals.Value)))
	b.WriteString("\n")
	b.WriteString("Profit/loss   ")
	b.WriteString(signed(totals.ProfitUSD, "$"+valuation.FormatUSD(totals.ProfitUSD)))
	b.WriteString("  ")
	b.WriteString(signed(totals.ProfitUSD, valuation.FormatPercent(totals.ProfitPercent())+"%"))
	b.WriteString("\n\n")

	b.WriteString(subtleStyle.Render(fmt.Sprintf("  %-8s %14s %10s %16s %14s %10s %14s",
		"COIN", "PRICE", "24H", "AMOUNT", "VALUE", "PROFIT", "PROFIT $")))
	b.WriteString("\n")

	for _, row := range rows {
		v.writeRow(ctx, &b, row)
	}

	if alert != "" {
		b.WriteString("\n")
		b.WriteString(alertStyle.Render(alert))
		b.WriteString("\n")
	}

	b.WriteString(subtleStyle.Render("\ncommands: a [symbol] add transaction | t <symbol> transactions | q quit\n"))
	return b.String()
}

func (v *PortfolioView) writeRow(ctx context.Context, b *strings.Builder, row entity.Row) {
	mark := " "
	if v.icons != nil && v.icons.Available(ctx, row.Symbol) {
		mark = iconMark
	}

	change := signed(row.ChangePercent, fmt.Sprintf("%9s%%", valuation.FormatChangePercent(row.ChangePercent)))
	profitPct := fmt.Sprintf("%9s%%", valuation.FormatPercent(row.AllTimeProfitPct))
	profitUSD := signed(row.AllTimeProfitPct, fmt.Sprintf("%14s", "$"+valuation.FormatUSD(row.AllTimeProfitUSD)))

	fmt.Fprintf(b, "%s %-8s %14s %s %16s %14s %s %s\n",
		mark,
		row.Symbol,
		"$"+valuation.FormatUSD(row.CurrentPrice),
		change,
		valuation.FormatAmount(row.Amount),
		"$"+valuation.FormatUSD(row.Value),
		profitPct,
		profitUSD,
	)
}
