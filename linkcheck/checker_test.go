package linkcheck

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractLinks(t *testing.T) {
	page, _ := url.Parse("https://vp-associates.com/projects/")
	doc := `<html><head><link rel="stylesheet" href="/main.css"></head><body>
		<a href="tampa-marina-complex">Marina</a>
		<a href="#top">Top</a>
		<a href="mailto:info@vp-associates.com">Mail</a>
		<a href="/about#team">Team</a>
		<a href="/about">About</a>
		<img src="https://cdn.example.com/hero.jpg">
	</body></html>`

	links, err := ExtractLinks(page, strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://vp-associates.com/main.css",
		"https://vp-associates.com/projects/tampa-marina-complex",
		"https://vp-associates.com/about",
		"https://cdn.example.com/hero.jpg",
	}, links)
}

func newSite(t *testing.T, flakyHits *atomic.Int32) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		_, _ = io.WriteString(w, `<a href="/about">About</a><a href="/flaky">Flaky</a><a href="/head-not-allowed">Old server</a>`)
	})
	mux.HandleFunc("/about", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = io.WriteString(w, `<a href="/">Home</a><a href="/missing">Gone</a>`)
	})
	mux.HandleFunc("/flaky", func(w http.ResponseWriter, r *http.Request) {
		if flakyHits.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/head-not-allowed", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodHead {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	return httptest.NewServer(mux)
}

func TestCheck(t *testing.T) {
	var flakyHits atomic.Int32
	srv := newSite(t, &flakyHits)
	defer srv.Close()

	checker := NewChecker(srv.Client(), Options{Concurrency: 2, Retries: 2})
	report, err := checker.Check(context.Background(), srv.URL)
	require.NoError(t, err)

	// the flaky page is crawled once and answers 503 before it is validated
	byURL := map[string]LinkResult{}
	for _, l := range report.Links {
		byURL[strings.TrimPrefix(l.URL, srv.URL)] = l
	}

	assert.GreaterOrEqual(t, report.PagesCrawled, 3)
	require.Contains(t, byURL, "/missing")
	assert.Equal(t, http.StatusNotFound, byURL["/missing"].Status)
	assert.Equal(t, []string{srv.URL + "/about"}, byURL["/missing"].FoundOn)
	assert.False(t, byURL["/flaky"].Broken())
	assert.False(t, byURL["/head-not-allowed"].Broken())
	assert.False(t, byURL["/about"].Broken())

	broken := report.Broken()
	require.Len(t, broken, 1)

	var out bytes.Buffer
	Render(&out, report)
	assert.Contains(t, out.String(), "/missing")
	assert.Contains(t, out.String(), "1 broken")
}

func TestCheckRespectsMaxPages(t *testing.T) {
	var flakyHits atomic.Int32
	srv := newSite(t, &flakyHits)
	defer srv.Close()

	report, err := NewChecker(srv.Client(), Options{MaxPages: 1}).Check(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, 1, report.PagesCrawled)
	// links on the start page are still validated
	assert.Len(t, report.Links, 4)
}

func TestCheckInvalidBase(t *testing.T) {
	_, err := NewChecker(nil, Options{}).Check(context.Background(), "not a url")
	assert.Error(t, err)
}

func TestRetryable(t *testing.T) {
	assert.True(t, retryable(http.StatusServiceUnavailable, nil))
	assert.True(t, retryable(http.StatusTooManyRequests, nil))
	assert.True(t, retryable(0, assert.AnError))
	assert.False(t, retryable(http.StatusNotFound, nil))
	assert.False(t, retryable(http.StatusOK, nil))
}
