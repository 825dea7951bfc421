package pricer

import (
	"context"
	"strconv"
	"strings"

	binance "github.com/adshao/go-binance/v2"
	"github.com/pkg/errors"

	"github.com/avolkov/coinfolio/internal/entity"
)

// BinanceQuoter joins holdings with Binance 24hr ticker stats. One call
// covers all requested pairs.
type BinanceQuoter struct {
	client *binance.Client
}

func NewBinanceQuoter(client *binance.Client) *BinanceQuoter {
	return &BinanceQuoter{client: client}
}

func (q *BinanceQuoter) Quotes(ctx context.Context, symbols []string) (map[string]entity.Quote, error) {
	if len(symbols) == 0 {
		return map[string]entity.Quote{}, nil
	}

	pairs := make([]string, 0, len(symbols))
	for _, s := range symbols {
		pairs = append(pairs, s+quoteAsset)
	}

	stats, err := q.client.NewListPriceChangeStatsService().Symbols(pairs).Do(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "binance 24hr ticker")
	}

	quotes := make(map[string]entity.Quote, len(stats))
	for _, st := range stats {
		base := strings.TrimSuffix(st.Symbol, quoteAsset)
		last, err := strconv.ParseFloat(st.LastPrice, 64)
		if err != nil {
			continue
		}
		change, _ := strconv.ParseFloat(st.PriceChangePercent, 64)
		quotes[base] = entity.Quote{Symbol: base, LastPrice: last, ChangePercent: change}
	}
	return quotes, nil
}
