package pricer

import (
	"context"
	"strconv"

	bybit "github.com/hirokisan/bybit/v2"
	"github.com/pkg/errors"

	"github.com/avolkov/coinfolio/internal/entity"
)

// BybitQuoter serves the same contract from Bybit V5 spot tickers. Bybit
// has no multi-symbol filter, so it pulls the whole spot category and keeps
// only the requested pairs.
type BybitQuoter struct {
	client *bybit.Client
}

func NewBybitQuoter(client *bybit.Client) *BybitQuoter {
	return &BybitQuoter{client: client}
}

func (q *BybitQuoter) Quotes(ctx context.Context, symbols []string) (map[string]entity.Quote, error) {
	if len(symbols) == 0 {
		return map[string]entity.Quote{}, nil
	}

	wanted := make(map[string]string, len(symbols))
	for _, s := range symbols {
		wanted[s+quoteAsset] = s
	}

	result, err := q.client.V5().Market().GetTickers(bybit.V5GetTickersParam{
		Category: bybit.CategoryV5Spot,
	})
	if err != nil {
		return nil, errors.Wrap(err, "bybit spot tickers")
	}

	quotes := make(map[string]entity.Quote, len(symbols))
	for _, t := range result.Result.Spot.List {
		base, ok := wanted[string(t.Symbol)]
		if !ok {
			continue
		}
		last, err := strconv.ParseFloat(t.LastPrice, 64)
		if err != nil {
			continue
		}
		quotes[base] = entity.Quote{
			Symbol:        base,
			LastPrice:     last,
			ChangePercent: fractionToPercent(t.Price24HPcnt),
		}
	}
	return quotes, nil
}

// fractionToPercent converts Bybit's 24h change ("0.0153" means +1.53%) to
// the percent scale the rest of the pipeline uses.
func fractionToPercent(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f * 100
}
