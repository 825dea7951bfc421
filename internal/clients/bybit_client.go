package clients

import (
	"github.com/hirokisan/bybit/v2"
)

// NewBybitClient returns a client for public market data; no keys needed.
func NewBybitClient() *bybit.Client {
	return bybit.NewClient()
}
