package view

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/avolkov/coinfolio/internal/entity"
)

func TestIconResolverProbesOncePerSymbol(t *testing.T) {
	var mu sync.Mutex
	hits := map[string]int{}
	cdn := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		hits[r.URL.Path]++
		mu.Unlock()
		if r.URL.Path == "/btc.svg" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer cdn.Close()

	r := NewIconResolver(cdn.URL, zap.NewNop())
	ctx := context.Background()

	require.True(t, r.Available(ctx, "BTC"))
	require.True(t, r.Available(ctx, "btc"))
	require.False(t, r.Available(ctx, "XYZ"))
	require.False(t, r.Available(ctx, "XYZ"))

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, 1, hits["/btc.svg"])
	require.Equal(t, 1, hits["/xyz.svg"])
}

func TestIconResolverTransportError(t *testing.T) {
	cdn := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := cdn.URL
	cdn.Close()

	r := NewIconResolver(url, zap.NewNop())
	require.False(t, r.Available(context.Background(), "BTC"))
}

func TestIconFailureOnlyHidesMarker(t *testing.T) {
	cdn := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/btc.svg" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer cdn.Close()

	rows := []entity.Row{
		{Symbol: "BTC", Amount: 1, CurrentPrice: 20000, Value: 20000},
		{Symbol: "XYZ", Amount: 2, CurrentPrice: 10, Value: 20},
	}
	view := NewPortfolioView(NewIconResolver(cdn.URL, zap.NewNop()))
	frame := view.Render(context.Background(), rows, entity.Totals{Value: 20020}, "")

	require.Contains(t, frame, iconMark+" BTC")
	// the missing icon hides only the marker; the row itself still renders
	require.NotContains(t, frame, iconMark+" XYZ")
	require.Contains(t, frame, "XYZ")
	require.Contains(t, frame, "$10.00")
}
