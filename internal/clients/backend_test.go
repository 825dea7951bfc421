package clients

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/avolkov/coinfolio/internal/entity"
)

func TestHoldings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/coins", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"symbol":"BTC","amount":0.5,"avgPrice":30000},{"symbol":"ETH","amount":2,"avgPrice":1800}]`))
	}))
	defer srv.Close()

	backend := NewBackend(srv.URL, zap.NewNop())
	holdings, err := backend.Holdings(context.Background())
	require.NoError(t, err)
	require.Equal(t, []entity.Holding{
		{Symbol: "BTC", Amount: 0.5, AvgPrice: 30000},
		{Symbol: "ETH", Amount: 2, AvgPrice: 1800},
	}, holdings)
}

func TestHoldingsNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	backend := NewBackend(srv.URL, zap.NewNop())
	_, err := backend.Holdings(context.Background())
	require.Error(t, err)

	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr))
	require.Equal(t, http.StatusInternalServerError, netErr.Status)
}

func TestTransactionsUsesRawSymbolQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/coin", r.URL.Path)
		// the backend expects the bare symbol, not key=value
		require.Equal(t, "BTC", r.URL.RawQuery)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"coin":"BTC","amount":0.1,"value":3000,"type":"Buy","date":"07/03/2024"}]`))
	}))
	defer srv.Close()

	backend := NewBackend(srv.URL, zap.NewNop())
	txs, err := backend.Transactions(context.Background(), "BTC")
	require.NoError(t, err)
	require.Len(t, txs, 1)
	require.Equal(t, "BTC", txs[0].Coin)
	require.Equal(t, "07/03/2024", txs[0].Date)
}

func TestAddTransactionNormalizesPayload(t *testing.T) {
	var got map[string]any
	var requestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/coin", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		requestID = r.Header.Get("X-Request-ID")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	backend := NewBackend(srv.URL, zap.NewNop())
	err := backend.AddTransaction(context.Background(), entity.NewTransaction{
		Coin:   "BTC",
		Amount: 0.25,
		Type:   "buy",
		Value:  10000,
		Date:   time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.Equal(t, "BTC", got["coin"])
	require.Equal(t, 0.25, got["amount"])
	require.Equal(t, "Buy", got["type"])
	require.Equal(t, "07/03/2024", got["date"])
	require.NotEmpty(t, requestID)
}

func TestAddTransactionFailureIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	backend := NewBackend(srv.URL, zap.NewNop())
	err := backend.AddTransaction(context.Background(), entity.NewTransaction{Coin: "BTC", Date: time.Now()})
	require.Error(t, err)

	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr))
}

func TestLoginRedirectIsSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/login", r.URL.Path)
		http.Redirect(w, r, "/", http.StatusFound)
	}))
	defer srv.Close()

	backend := NewBackend(srv.URL, zap.NewNop())
	require.NoError(t, backend.Login(context.Background(), "alice", "password123"))
}

func TestLoginRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	backend := NewBackend(srv.URL, zap.NewNop())
	err := backend.Login(context.Background(), "alice", "wrong")
	require.Error(t, err)

	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr))
	require.Equal(t, http.StatusUnauthorized, netErr.Status)
}

func TestCapitalize(t *testing.T) {
	require.Equal(t, "Buy", capitalize("buy"))
	require.Equal(t, "Sell", capitalize("sell"))
	require.Equal(t, "", capitalize(""))
}
