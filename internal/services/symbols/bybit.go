package symbols

import (
	"context"
	"strings"

	bybit "github.com/hirokisan/bybit/v2"
	"github.com/pkg/errors"
)

// BybitUniverse derives the universe from the V5 spot ticker list.
type BybitUniverse struct {
	client *bybit.Client
}

func NewBybitUniverse(client *bybit.Client) *BybitUniverse {
	return &BybitUniverse{client: client}
}

func (u *BybitUniverse) TradableSymbols(ctx context.Context) ([]string, error) {
	result, err := u.client.V5().Market().GetTickers(bybit.V5GetTickersParam{
		Category: bybit.CategoryV5Spot,
	})
	if err != nil {
		return nil, errors.Wrap(err, "bybit spot tickers")
	}

	symbols := make([]string, 0, len(result.Result.Spot.List))
	for _, t := range result.Result.Spot.List {
		pair := string(t.Symbol)
		if strings.HasSuffix(pair, quoteAsset) {
			symbols = append(symbols, strings.TrimSuffix(pair, quoteAsset))
		}
	}
	return symbols, nil
}
