package view

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avolkov/coinfolio/internal/entity"
)

func TestPortfolioRender(t *testing.T) {
	rows := []entity.Row{
		{Symbol: "BTC", Amount: 1, CurrentPrice: 20000, ChangePercent: 5, Value: 20000, AllTimeProfitPct: 100, AllTimeProfitUSD: 10000},
		{Symbol: "ETH", Amount: 2, CurrentPrice: 2500, ChangePercent: -1.2, Value: 5000, AllTimeProfitPct: 25, AllTimeProfitUSD: 1000},
	}
	totals := entity.Totals{Value: 25000, ProfitUSD: 11000}

	frame := NewPortfolioView(nil).Render(context.Background(), rows, totals, "")

	require.Contains(t, frame, "Total value   $25000.00")
	require.Contains(t, frame, "$11000.00")
	require.Less(t, strings.Index(frame, "BTC"), strings.Index(frame, "ETH"))
	require.Contains(t, frame, "1.000")
	require.Contains(t, frame, "$20000.00")
}

func TestPortfolioRenderAlert(t *testing.T) {
	frame := NewPortfolioView(nil).Render(context.Background(), nil, entity.Totals{}, "Failed to add transaction: boom")
	require.Contains(t, frame, "Failed to add transaction: boom")
}

func TestLedgerRender(t *testing.T) {
	txs := []entity.Transaction{
		{Coin: "BTC", Amount: 0.25, Value: 10000, Type: "Buy", Date: "07/03/2024"},
		{Coin: "BTC", Amount: 0.1, Value: 4500, Type: "Sell", Date: "09/04/2024"},
	}

	frame := LedgerView{}.Render("BTC", txs)
	require.Contains(t, frame, "BTC TRANSACTIONS")
	require.Contains(t, frame, "07/03/2024")
	require.Contains(t, frame, "$10000.00")
	require.Contains(t, frame, "0.250")
}

func TestLedgerRenderEmpty(t *testing.T) {
	frame := LedgerView{}.Render("ETH", nil)
	require.Contains(t, frame, "no transactions yet")
}
