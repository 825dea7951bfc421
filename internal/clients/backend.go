package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/avolkov/coinfolio/internal/entity"
)

// NetworkError reports a transport failure or a non-2xx backend response.
// Every backend operation is attempt-once; recovery is the next poll tick
// or the user retrying.
type NetworkError struct {
	Op     string
	Status int
	Err    error
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: unexpected status %d", e.Op, e.Status)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// Backend talks to the portfolio tracker HTTP API. Sessions are cookie
// based, so the client carries a jar; redirects are not followed because a
// redirect on login is the success signal.
type Backend struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

func NewBackend(baseURL string, logger *zap.Logger) *Backend {
	jar, _ := cookiejar.New(nil)
	return &Backend{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Jar: jar,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		logger: logger,
	}
}

// Login authenticates the session. The backend answers a successful login
// with a redirect to the portfolio page; a plain 2xx is accepted too.
func (b *Backend) Login(ctx context.Context, username, password string) error {
	resp, err := b.postJSON(ctx, "/login", map[string]string{
		"username": username,
		"password": password,
	}, false)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 && resp.StatusCode < 400 {
		b.logger.Info("logged in", zap.String("username", username))
		return nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &NetworkError{Op: "login", Status: resp.StatusCode}
	}
	b.logger.Info("logged in", zap.String("username", username))
	return nil
}

// Register creates an account. Client-side validation happens in the form;
// here only the wire call.
func (b *Backend) Register(ctx context.Context, username, password string) error {
	resp, err := b.postJSON(ctx, "/register", map[string]string{
		"username": username,
		"password": password,
	}, false)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &NetworkError{Op: "register", Status: resp.StatusCode}
	}
	return nil
}

// Holdings fetches the current portfolio snapshot.
func (b *Backend) Holdings(ctx context.Context) ([]entity.Holding, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.baseURL+"/coins", nil)
	if err != nil {
		return nil, errors.Wrap(err, "build holdings request")
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, &NetworkError{Op: "holdings", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &NetworkError{Op: "holdings", Status: resp.StatusCode}
	}

	var holdings []entity.Holding
	if err := json.NewDecoder(resp.Body).Decode(&holdings); err != nil {
		return nil, errors.Wrap(err, "decode holdings")
	}
	return holdings, nil
}

// Transactions fetches the ledger for one coin. The query string is the raw
// symbol, not a key=value pair; that is the backend's fixed contract.
func (b *Backend) Transactions(ctx context.Context, symbol string) ([]entity.Transaction, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.baseURL+"/coin?"+symbol, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build transactions request")
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, &NetworkError{Op: "transactions", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &NetworkError{Op: "transactions", Status: resp.StatusCode}
	}

	var txs []entity.Transaction
	if err := json.NewDecoder(resp.Body).Decode(&txs); err != nil {
		return nil, errors.Wrap(err, "decode transactions")
	}
	return txs, nil
}

// AddTransaction creates a ledger record. The payload normalizes the date
// to DD/MM/YYYY and capitalizes the type, which is what the backend parser
// expects.
func (b *Backend) AddTransaction(ctx context.Context, tx entity.NewTransaction) error {
	payload := map[string]any{
		"coin":   tx.Coin,
		"amount": tx.Amount,
		"type":   capitalize(tx.Type),
		"value":  tx.Value,
		"date":   tx.Date.Format("02/01/2006"),
	}

	resp, err := b.postJSON(ctx, "/coin", payload, true)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &NetworkError{Op: "add transaction", Status: resp.StatusCode}
	}
	b.logger.Info("transaction added", zap.String("coin", tx.Coin), zap.String("type", tx.Type))
	return nil
}

func (b *Backend) postJSON(ctx context.Context, path string, payload any, withRequestID bool) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "marshal payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")
	if withRequestID {
		req.Header.Set("X-Request-ID", uuid.New().String())
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, &NetworkError{Op: "POST " + path, Err: err}
	}
	return resp, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
