package symbols

import (
	"context"
	"strings"

	binance "github.com/adshao/go-binance/v2"
	"github.com/pkg/errors"
)

const quoteAsset = "USDT"

// BinanceUniverse derives the universe from the full price ticker: every
// symbol quoted in USDT, suffix stripped.
type BinanceUniverse struct {
	client *binance.Client
}

func NewBinanceUniverse(client *binance.Client) *BinanceUniverse {
	return &BinanceUniverse{client: client}
}

func (u *BinanceUniverse) TradableSymbols(ctx context.Context) ([]string, error) {
	prices, err := u.client.NewListPricesService().Do(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "binance price ticker")
	}

	symbols := make([]string, 0, len(prices))
	for _, p := range prices {
		if strings.HasSuffix(p.Symbol, quoteAsset) {
			symbols = append(symbols, strings.TrimSuffix(p.Symbol, quoteAsset))
		}
	}
	return symbols, nil
}
