package ephem

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// DefaultInterval is the poll cadence when the config does not set
// one. Live sky positions drift slowly; five minutes is plenty.
const DefaultInterval = 5 * time.Minute

var ErrThrottled = errors.New("ephem: refresh throttled")

// HTTPProvider polls a JSON endpoint for live fixes on a slow timer
// and keeps only the newest snapshot. A fetch failure is swallowed:
// it never reaches the frame loop, it only shows up in [Status].
type HTTPProvider struct {
	url      string
	interval time.Duration
	client   *http.Client
	limiter  *rate.Limiter
	refresh  chan struct{}

	mu      sync.RWMutex
	latest  map[string]Position
	fetched time.Time
	lastErr error
}

func NewHTTPProvider(url string, interval time.Duration) *HTTPProvider {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &HTTPProvider{
		url:      url,
		interval: interval,
		client:   &http.Client{Timeout: 10 * time.Second},
		limiter:  rate.NewLimiter(rate.Every(30*time.Second), 1),
		refresh:  make(chan struct{}, 1),
		latest:   make(map[string]Position),
	}
}

// Start launches the poll loop and returns immediately. The loop
// fetches once up front, then on every interval tick or manual
// refresh, and exits when ctx is done. All fetches run in this one
// goroutine, so an older cycle can never overwrite a newer one.
func (h *HTTPProvider) Start(ctx context.Context) {
	go func() {
		h.fetch(ctx)
		ticker := time.NewTicker(h.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				h.fetch(ctx)
			case <-h.refresh:
				h.fetch(ctx)
			}
		}
	}()
}

func (h *HTTPProvider) fetch(ctx context.Context) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.url, nil)
	if err != nil {
		h.fail(err)
		return
	}
	resp, err := h.client.Do(req)
	if err != nil {
		h.fail(err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		h.fail(fmt.Errorf("ephem: %s returned %s", h.url, resp.Status))
		return
	}

	var fixes []Position
	if err := json.NewDecoder(resp.Body).Decode(&fixes); err != nil {
		h.fail(fmt.Errorf("ephem: decode: %w", err))
		return
	}

	next := make(map[string]Position, len(fixes))
	for _, f := range fixes {
		if f.Name == "" {
			continue
		}
		next[f.Name] = f
	}

	h.mu.Lock()
	h.latest = next
	h.fetched = time.Now()
	h.lastErr = nil
	h.mu.Unlock()
}

func (h *HTTPProvider) fail(err error) {
	h.mu.Lock()
	h.lastErr = err
	h.mu.Unlock()
}

// TryGetLatest implements [Provider]. Fixes age out after two poll
// intervals so a dead feed cannot pin bodies to hours-old sky
// positions.
func (h *HTTPProvider) TryGetLatest(name string) (Position, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.fetched.IsZero() || time.Since(h.fetched) > 2*h.interval {
		return Position{}, false
	}
	p, ok := h.latest[name]
	return p, ok
}

// Refresh requests an immediate poll outside the regular cadence.
// Manual refreshes pass through a limiter so a held key cannot hammer
// the endpoint.
func (h *HTTPProvider) Refresh() error {
	if !h.limiter.Allow() {
		return ErrThrottled
	}
	select {
	case h.refresh <- struct{}{}:
	default:
	}
	return nil
}

// Status describes provider health for the advisory line: empty while
// healthy, otherwise a short non-fatal reason.
func (h *HTTPProvider) Status() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	switch {
	case h.lastErr != nil:
		return fmt.Sprintf("live positions unavailable (%v)", h.lastErr)
	case h.fetched.IsZero():
		return "live positions pending"
	case time.Since(h.fetched) > 2*h.interval:
		return "live positions stale"
	default:
		return ""
	}
}
