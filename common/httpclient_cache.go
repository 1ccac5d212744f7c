// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: AGPL-3.0-or-later

package common

import (
	"bufio"
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"time"

	"github.com/alaw989/vp-eng-nuxt-sub002/monitoring"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// WrapHTTPClient installs wrap as the outermost round tripper of client.
func WrapHTTPClient(client *http.Client, wrap func(req *http.Request, next http.RoundTripper) (*http.Response, error)) {
	if client == nil {
		return
	}
	base := client.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	client.Transport = roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return wrap(req, base)
	})
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// CacheTransport keeps successful GET responses of the content upstream for a fixed ttl.
type CacheTransport struct {
	cache *expirable.LRU[string, []byte]
}

func NewCacheTransport(cacheSize int, ttl time.Duration) *CacheTransport {
	return &CacheTransport{
		cache: expirable.NewLRU[string, []byte](cacheSize, nil, ttl),
	}
}

func (c *CacheTransport) Len() int {
	return c.cache.Len()
}

func (c *CacheTransport) Purge() {
	c.cache.Purge()
}

func (c *CacheTransport) Handler() func(req *http.Request, next http.RoundTripper) (*http.Response, error) {
	return func(req *http.Request, next http.RoundTripper) (*http.Response, error) {
		if req.Method != http.MethodGet {
			return next.RoundTrip(req)
		}

		key := CacheKey(req)

		if val, ok := c.cache.Get(key); ok {
			slog.Debug("upstream cache hit", "url", req.URL.String())
			monitoring.UpstreamCacheLookups.WithLabelValues("hit").Inc()
			resp, err := responseFromBytes(val, req)
			if err != nil {
				// a broken entry is dropped and the request goes upstream
				slog.Warn("could not read cached upstream response", "err", err)
				c.cache.Remove(key)
			} else {
				return resp, nil
			}
		}
		monitoring.UpstreamCacheLookups.WithLabelValues("miss").Inc()

		resp, err := next.RoundTrip(req)
		if err != nil {
			return resp, err
		}

		// only cache successful responses
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return resp, nil
		}

		v, err := httputil.DumpResponse(resp, true)
		if err != nil {
			slog.Error("could not dump upstream response", "err", err)
			return resp, nil
		}

		c.cache.Add(key, v)

		return responseFromBytes(v, req)
	}
}

func responseFromBytes(v []byte, req *http.Request) (*http.Response, error) {
	r := bufio.NewReader(bytes.NewReader(v))
	resp, err := http.ReadResponse(r, req)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return resp, nil
}

// CacheKey is the full request url. The upstream is public, no credential headers take part.
func CacheKey(req *http.Request) string {
	return req.URL.String()
}
