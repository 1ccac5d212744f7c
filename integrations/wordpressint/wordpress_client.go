// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: AGPL-3.0-or-later

package wordpressint

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/alaw989/vp-eng-nuxt-sub002/common"
	"github.com/alaw989/vp-eng-nuxt-sub002/dtos"
	"github.com/alaw989/vp-eng-nuxt-sub002/monitoring"
	"github.com/alaw989/vp-eng-nuxt-sub002/shared"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"
)

// UpstreamTimeout bounds every request to the wordpress api. Exceeding it is treated
// like any other network failure.
const UpstreamTimeout = 10 * time.Second

// Client talks to the wordpress REST api (the /wp-json/wp/v2 base).
type Client struct {
	baseURL     string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
}

var _ shared.UpstreamContentClient = (*Client)(nil)

// NewClient builds a client with the full transport stack:
// response cache -> request deduplication -> tracing -> network.
func NewClient(cfg shared.Config) *Client {
	httpClient := &http.Client{
		Timeout:   UpstreamTimeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	common.WrapHTTPClient(httpClient, common.NewDeduplicationTransport().Handler())
	if cfg.UpstreamCacheTTL > 0 && cfg.UpstreamCacheSize > 0 {
		common.WrapHTTPClient(httpClient, common.NewCacheTransport(cfg.UpstreamCacheSize, cfg.UpstreamCacheTTL).Handler())
	}

	var limiter *rate.Limiter
	if cfg.UpstreamRateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.UpstreamRateLimit), 5)
	}

	return NewClientWithHTTPClient(cfg.WordPressAPIURL, httpClient, limiter)
}

func NewClientWithHTTPClient(baseURL string, httpClient *http.Client, limiter *rate.Limiter) *Client {
	return &Client{
		baseURL:     baseURL,
		httpClient:  httpClient,
		rateLimiter: limiter,
	}
}

func (c *Client) CollectionURL(kind shared.CollectionKind, query url.Values) string {
	u := c.baseURL + "/" + string(kind)
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// List fetches a collection. Errors always wrap one of shared.ErrUpstreamUnavailable,
// shared.ErrUpstreamError or shared.ErrUpstreamMalformed.
func (c *Client) List(ctx context.Context, kind shared.CollectionKind, query url.Values) (items []dtos.ContentItem, err error) {
	defer func() {
		outcome := "ok"
		if err != nil {
			outcome = shared.FailureReason(err)
		}
		monitoring.ContentUpstreamRequests.WithLabelValues(string(kind), outcome).Inc()
	}()

	if c.rateLimiter != nil {
		// queueing for a token counts against the same budget as the request itself
		waitCtx, cancel := context.WithTimeout(ctx, UpstreamTimeout)
		err := c.rateLimiter.Wait(waitCtx)
		cancel()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", shared.ErrUpstreamUnavailable, err)
		}
	}

	u := c.CollectionURL(kind, query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: could not create request: %v", shared.ErrUpstreamUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	slog.Debug("fetching from upstream", "kind", kind, "url", u)
	start := time.Now()
	res, err := c.httpClient.Do(req)
	monitoring.ContentUpstreamDuration.WithLabelValues(string(kind)).Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrUpstreamUnavailable, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %s", shared.ErrUpstreamError, res.Status)
	}

	if err := json.NewDecoder(res.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrUpstreamMalformed, err)
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", shared.ErrUpstreamMalformed, err)
		}
	}

	return items, nil
}
