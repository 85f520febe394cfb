// Package nhc implements the ordered tropical-outlook sources: the
// structured outlook product, the free-text bulletin page, the Atlantic RSS
// feed, and the active-storm listing. Each source is best-effort; a failure
// means the resolver moves on to the next source.
package nhc

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxBodyBytes caps how much of an upstream response is read. NHC products
// are small; anything larger is not the product we expect.
const maxBodyBytes = 4 << 20

// DefaultTimeout bounds each source request.
const DefaultTimeout = 15 * time.Second

// fetch issues a GET and returns the response body.
func fetch(ctx context.Context, client *http.Client, url, userAgent string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read body from %s: %w", url, err)
	}
	return body, nil
}
