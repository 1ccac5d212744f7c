package wordpressint

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/alaw989/vp-eng-nuxt-sub002/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func newUpstream(t *testing.T, status int, body string) (*httptest.Server, *url.URL) {
	t.Helper()
	var lastURL url.URL
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lastURL = *r.URL
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, &lastURL
}

func TestClientList(t *testing.T) {
	t.Run("should request the collection with the encoded query", func(t *testing.T) {
		srv, lastURL := newUpstream(t, http.StatusOK, `[{"title":{"rendered":"Seawall"},"slug":"seawall"}]`)
		client := NewClientWithHTTPClient(srv.URL+"/wp-json/wp/v2", srv.Client(), nil)

		items, err := client.List(context.Background(), shared.CollectionProjects, url.Values{"per_page": {"12"}, "_embed": {"true"}})
		require.NoError(t, err)

		assert.Equal(t, "/wp-json/wp/v2/projects", lastURL.Path)
		assert.Equal(t, "12", lastURL.Query().Get("per_page"))
		assert.Equal(t, "true", lastURL.Query().Get("_embed"))
		require.Len(t, items, 1)
		assert.Equal(t, "Seawall", items[0].Title)
	})

	t.Run("should classify a non success status as upstream error", func(t *testing.T) {
		srv, _ := newUpstream(t, http.StatusInternalServerError, `{"code":"internal"}`)
		client := NewClientWithHTTPClient(srv.URL, srv.Client(), nil)

		_, err := client.List(context.Background(), shared.CollectionServices, nil)
		assert.ErrorIs(t, err, shared.ErrUpstreamError)
	})

	t.Run("should classify an undecodable body as malformed", func(t *testing.T) {
		srv, _ := newUpstream(t, http.StatusOK, `<html>maintenance</html>`)
		client := NewClientWithHTTPClient(srv.URL, srv.Client(), nil)

		_, err := client.List(context.Background(), shared.CollectionServices, nil)
		assert.ErrorIs(t, err, shared.ErrUpstreamMalformed)
	})

	t.Run("should classify items without a title as malformed", func(t *testing.T) {
		srv, _ := newUpstream(t, http.StatusOK, `[{"id": 3}]`)
		client := NewClientWithHTTPClient(srv.URL, srv.Client(), nil)

		_, err := client.List(context.Background(), shared.CollectionTestimonials, nil)
		assert.ErrorIs(t, err, shared.ErrUpstreamMalformed)
	})

	t.Run("should classify a closed upstream as unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()
		client := NewClientWithHTTPClient(srv.URL, &http.Client{Timeout: time.Second}, nil)

		_, err := client.List(context.Background(), shared.CollectionProjects, nil)
		assert.ErrorIs(t, err, shared.ErrUpstreamUnavailable)
	})

	t.Run("should classify a client timeout as unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer srv.Close()
		client := NewClientWithHTTPClient(srv.URL, &http.Client{Timeout: 20 * time.Millisecond}, nil)

		_, err := client.List(context.Background(), shared.CollectionProjects, nil)
		assert.ErrorIs(t, err, shared.ErrUpstreamUnavailable)
	})

	t.Run("should give up instead of queueing longer than the upstream timeout", func(t *testing.T) {
		srv, _ := newUpstream(t, http.StatusOK, `[{"title":"Seawall","slug":"seawall"}]`)
		limiter := rate.NewLimiter(rate.Every(time.Hour), 1)
		client := NewClientWithHTTPClient(srv.URL, srv.Client(), limiter)

		_, err := client.List(context.Background(), shared.CollectionProjects, nil)
		require.NoError(t, err)

		start := time.Now()
		_, err = client.List(context.Background(), shared.CollectionProjects, nil)
		assert.ErrorIs(t, err, shared.ErrUpstreamUnavailable)
		assert.Less(t, time.Since(start), time.Second)
	})

	t.Run("should build the full transport stack from the config", func(t *testing.T) {
		srv, _ := newUpstream(t, http.StatusOK, `[]`)
		client := NewClient(shared.Config{
			WordPressAPIURL:   srv.URL,
			UpstreamCacheTTL:  time.Minute,
			UpstreamCacheSize: 8,
			UpstreamRateLimit: 100,
		})

		items, err := client.List(context.Background(), shared.CollectionProjects, nil)
		assert.NoError(t, err)
		assert.Empty(t, items)
	})
}
