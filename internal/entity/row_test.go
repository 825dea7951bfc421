package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTotalsProfitPercent(t *testing.T) {
	// (|profit+total|/total - 1) * 100, the display formula as it has
	// always been, not profit over cost
	totals := Totals{Value: 20000, ProfitUSD: 10000}
	require.InDelta(t, 50.0, totals.ProfitPercent(), 1e-9)

	totals = Totals{Value: 100, ProfitUSD: -50}
	require.InDelta(t, -50.0, totals.ProfitPercent(), 1e-9)

	// the absolute value makes a large loss read positive; that is the
	// contract, not a bug to fix here
	totals = Totals{Value: 100, ProfitUSD: -300}
	require.InDelta(t, 100.0, totals.ProfitPercent(), 1e-9)
}

func TestTotalsProfitPercentZeroValue(t *testing.T) {
	require.Zero(t, Totals{}.ProfitPercent())
}
