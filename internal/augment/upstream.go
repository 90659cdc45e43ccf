package augment

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultUpstreamUA = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120 Safari/537.36"

// maxUpstreamBody bounds how much HTML the augmenter will buffer.
const maxUpstreamBody = 8 << 20

type upstreamClient struct {
	client *http.Client
}

func newUpstreamClient(timeout time.Duration) *upstreamClient {
	return &upstreamClient{
		client: &http.Client{Timeout: timeout},
	}
}

// FetchHTML downloads the target page. Non-HTML responses are refused: the
// augmenter has nothing to do with them.
func (u *upstreamClient) FetchHTML(ctx context.Context, target string, hdr http.Header) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("augment: build upstream request: %w", err)
	}
	for k, vs := range hdr {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", defaultUpstreamUA)
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "text/html,application/xhtml+xml")
	}

	resp, err := u.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("augment: fetch %s: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("augment: fetch %s: upstream status %d", target, resp.StatusCode)
	}
	ct := resp.Header.Get("Content-Type")
	if ct != "" && !strings.Contains(ct, "html") {
		return nil, fmt.Errorf("augment: fetch %s: not an HTML page (%s)", target, ct)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxUpstreamBody))
	if err != nil {
		return nil, fmt.Errorf("augment: read %s: %w", target, err)
	}
	return body, nil
}
