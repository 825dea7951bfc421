package symbols

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type stubUniverse struct {
	symbols []string
	err     error
}

func (s *stubUniverse) TradableSymbols(context.Context) ([]string, error) {
	return s.symbols, s.err
}

func TestCacheSuggest(t *testing.T) {
	provider := &stubUniverse{symbols: []string{"BTC", "ETH", "WBTC", "DOGE"}}
	cache := NewCache(provider)
	require.NoError(t, cache.Refresh(context.Background()))

	require.Equal(t, []string{"BTC", "WBTC"}, cache.Suggest("bt"))
	require.Equal(t, []string{"BTC", "WBTC"}, cache.Suggest("BT"))
	require.Equal(t, []string{"DOGE"}, cache.Suggest("oge"))
	require.Empty(t, cache.Suggest("xrp"))
	require.Nil(t, cache.Suggest(""))
}

func TestCacheRefreshKeepsOldUniverseOnError(t *testing.T) {
	provider := &stubUniverse{symbols: []string{"BTC", "ETH"}}
	cache := NewCache(provider)
	require.NoError(t, cache.Refresh(context.Background()))

	provider.err = errors.New("exchange down")
	require.Error(t, cache.Refresh(context.Background()))
	require.Equal(t, []string{"BTC", "ETH"}, cache.All())
}

func TestCacheEmptyBeforeRefresh(t *testing.T) {
	cache := NewCache(&stubUniverse{symbols: []string{"BTC"}})
	require.Empty(t, cache.All())
	require.Empty(t, cache.Suggest("btc"))
}
