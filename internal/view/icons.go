package view

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// IconResolver probes the icon CDN once per symbol and remembers whether an
// icon exists there. A missing or failed icon only hides the marker; the
// row text is never affected.
type IconResolver struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger

	mu    sync.Mutex
	known map[string]bool
}

func NewIconResolver(baseURL string, logger *zap.Logger) *IconResolver {
	return &IconResolver{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 5 * time.Second},
		logger:  logger,
		known:   map[string]bool{},
	}
}

// Available reports whether the CDN serves an icon for the symbol. The
// first call per symbol performs the probe; later calls hit the cache.
func (r *IconResolver) Available(ctx context.Context, symbol string) bool {
	key := strings.ToLower(symbol)

	r.mu.Lock()
	if ok, seen := r.known[key]; seen {
		r.mu.Unlock()
		return ok
	}
	r.mu.Unlock()

	available := false
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, r.baseURL+"/"+key+".svg", nil)
	if err == nil {
		resp, doErr := r.client.Do(req)
		if doErr != nil {
			r.logger.Debug("icon probe failed", zap.String("symbol", symbol), zap.Error(doErr))
		} else {
			available = resp.StatusCode == http.StatusOK
			resp.Body.Close()
		}
	}

	r.mu.Lock()
	r.known[key] = available
	r.mu.Unlock()
	return available
}
