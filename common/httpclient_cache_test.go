package common

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCountingServer(status int, body string, hits *int32) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
}

func get(t *testing.T, client *http.Client, url string) (int, string) {
	t.Helper()
	resp, err := client.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(b)
}

func TestCacheTransport(t *testing.T) {
	t.Run("should serve a repeated request from the cache", func(t *testing.T) {
		var hits int32
		srv := newCountingServer(http.StatusOK, `[{"title":"a","slug":"a"}]`, &hits)
		defer srv.Close()

		cache := NewCacheTransport(10, time.Minute)
		client := &http.Client{}
		WrapHTTPClient(client, cache.Handler())

		for range 3 {
			status, body := get(t, client, srv.URL+"/projects?page=1")
			assert.Equal(t, http.StatusOK, status)
			assert.Equal(t, `[{"title":"a","slug":"a"}]`, body)
		}

		assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
		assert.Equal(t, 1, cache.Len())
	})

	t.Run("should use the full url as key", func(t *testing.T) {
		var hits int32
		srv := newCountingServer(http.StatusOK, `[]`, &hits)
		defer srv.Close()

		cache := NewCacheTransport(10, time.Minute)
		client := &http.Client{}
		WrapHTTPClient(client, cache.Handler())

		get(t, client, srv.URL+"/projects?page=1")
		get(t, client, srv.URL+"/projects?page=2")

		assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
	})

	t.Run("should not cache unsuccessful responses", func(t *testing.T) {
		var hits int32
		srv := newCountingServer(http.StatusBadGateway, `oops`, &hits)
		defer srv.Close()

		cache := NewCacheTransport(10, time.Minute)
		client := &http.Client{}
		WrapHTTPClient(client, cache.Handler())

		get(t, client, srv.URL)
		status, _ := get(t, client, srv.URL)

		assert.Equal(t, http.StatusBadGateway, status)
		assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
		assert.Equal(t, 0, cache.Len())
	})

	t.Run("should go upstream again after the ttl expired", func(t *testing.T) {
		var hits int32
		srv := newCountingServer(http.StatusOK, `[]`, &hits)
		defer srv.Close()

		cache := NewCacheTransport(10, 20*time.Millisecond)
		client := &http.Client{}
		WrapHTTPClient(client, cache.Handler())

		get(t, client, srv.URL)
		time.Sleep(50 * time.Millisecond)
		get(t, client, srv.URL)

		assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
	})
}

func TestDeduplicationTransport(t *testing.T) {
	t.Run("should share one upstream call between concurrent requests", func(t *testing.T) {
		var hits int32
		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&hits, 1)
			<-release
			_, _ = io.WriteString(w, "shared body")
		}))
		defer srv.Close()

		client := &http.Client{}
		WrapHTTPClient(client, NewDeduplicationTransport().Handler())

		var wg sync.WaitGroup
		bodies := make([]string, 5)
		for i := range bodies {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				resp, err := client.Get(srv.URL)
				if err != nil {
					return
				}
				defer resp.Body.Close()
				b, _ := io.ReadAll(resp.Body)
				bodies[i] = string(b)
			}(i)
		}

		time.Sleep(100 * time.Millisecond)
		close(release)
		wg.Wait()

		for _, b := range bodies {
			assert.Equal(t, "shared body", b)
		}
		assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
	})
	t.Run("should not cancel the shared call when one caller goes away", func(t *testing.T) {
		var hits int32
		started := make(chan struct{}, 1)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&hits, 1)
			started <- struct{}{}
			time.Sleep(300 * time.Millisecond)
			_, _ = io.WriteString(w, "shared body")
		}))
		defer srv.Close()

		client := &http.Client{}
		WrapHTTPClient(client, NewDeduplicationTransport().Handler())

		ctxA, cancelA := context.WithCancel(context.Background())
		defer cancelA()

		errA := make(chan error, 1)
		go func() {
			req, _ := http.NewRequestWithContext(ctxA, http.MethodGet, srv.URL+"/projects", nil)
			resp, err := client.Do(req)
			if err == nil {
				resp.Body.Close()
			}
			errA <- err
		}()

		<-started
		type result struct {
			body string
			err  error
		}
		resB := make(chan result, 1)
		go func() {
			req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, srv.URL+"/projects", nil)
			resp, err := client.Do(req)
			if err != nil {
				resB <- result{err: err}
				return
			}
			defer resp.Body.Close()
			b, err := io.ReadAll(resp.Body)
			resB <- result{body: string(b), err: err}
		}()

		time.Sleep(100 * time.Millisecond)
		cancelA()

		b := <-resB
		require.NoError(t, b.err)
		assert.Equal(t, "shared body", b.body)
		assert.ErrorIs(t, <-errA, context.Canceled)
		assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
	})
}
