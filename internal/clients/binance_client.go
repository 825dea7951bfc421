package clients

import (
	"github.com/adshao/go-binance/v2"
)

// NewBinanceClient returns a client for public market data; no keys needed.
func NewBinanceClient() *binance.Client {
	return binance.NewClient("", "")
}
