package page

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
)

const (
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"
)

type HTTPOptions struct {
	Timeout   time.Duration
	UserAgent string
	// CloudflareBypass wraps the transport with cloudflare-bp.
	CloudflareBypass bool
	// ReadySelectors are logged about when none of them match after load.
	ReadySelectors []string
}

// HTTPRenderer loads pages with a plain GET and parses the static HTML.
type HTTPRenderer struct {
	http  *resty.Client
	ready []string
}

func NewHTTPRenderer(opts HTTPOptions) *HTTPRenderer {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}

	client := resty.New()
	client.SetTimeout(opts.Timeout)
	client.SetHeader("User-Agent", opts.UserAgent)
	client.SetHeader("Accept-Language", "ja,en-US;q=0.9,en;q=0.8")
	if opts.CloudflareBypass {
		client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	}

	return &HTTPRenderer{http: client, ready: opts.ReadySelectors}
}

func (r *HTTPRenderer) Render(ctx context.Context, url string) (Page, error) {
	res, err := r.http.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", url, err)
	}
	if res.IsError() {
		return nil, fmt.Errorf("failed to load %s: HTTP %d", url, res.StatusCode())
	}

	finalURL := url
	if res.RawResponse != nil && res.RawResponse.Request != nil {
		finalURL = res.RawResponse.Request.URL.String()
	}

	p, err := Parse(bytes.NewReader(res.Body()), finalURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", url, err)
	}

	if len(r.ready) > 0 && !anyPresent(p, r.ready) {
		slog.WarnContext(ctx, "none of the expected elements are on the page", "url", finalURL, "selectors", r.ready)
	}
	return p, nil
}

func (r *HTTPRenderer) Close() error {
	r.http.GetClient().CloseIdleConnections()
	return nil
}

func anyPresent(p Page, selectors []string) bool {
	for _, s := range selectors {
		if _, ok := p.First(s); ok {
			return true
		}
	}
	return false
}
