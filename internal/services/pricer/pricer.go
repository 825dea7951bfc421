package pricer

import (
	"context"

	"github.com/avolkov/coinfolio/internal/entity"
)

const quoteAsset = "USDT"

// QuoteProvider returns current quotes for a set of base symbols in one
// batched request. Symbols the exchange does not trade against USDT are
// simply absent from the result, never an error.
type QuoteProvider interface {
	Quotes(ctx context.Context, symbols []string) (map[string]entity.Quote, error)
}
