package view

import (
	"fmt"
	"strings"

	"github.com/avolkov/coinfolio/internal/entity"
	"github.com/avolkov/coinfolio/internal/services/valuation"
)

// LedgerView renders the transaction history for one coin, the counterpart
// of the web client's transaction modal.
type LedgerView struct{}

func (LedgerView) Render(symbol string, txs []entity.Transaction) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(symbol + " TRANSACTIONS"))
	b.WriteString("\n\n")
	b.WriteString(subtleStyle.Render(fmt.Sprintf("%-8s %16s %14s %12s", "COIN", "AMOUNT", "VALUE", "DATE")))
	b.WriteString("\n")

	for _, tx := range txs {
		fmt.Fprintf(&b, "%-8s %16s %14s %12s\n",
			tx.Coin,
			valuation.FormatAmount(tx.Amount),
			"$"+valuation.FormatUSD(tx.Value),
			tx.Date,
		)
	}
	if len(txs) == 0 {
		b.WriteString(subtleStyle.Render("no transactions yet"))
		b.WriteString("\n")
	}

	b.WriteString(subtleStyle.Render("\npress enter to go back\n"))
	return b.String()
}
