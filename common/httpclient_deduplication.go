// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: AGPL-3.0-or-later

package common

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"

	"golang.org/x/sync/singleflight"
)

// DeduplicationTransport collapses concurrent identical GET requests into a single upstream call.
type DeduplicationTransport struct {
	group singleflight.Group
}

func NewDeduplicationTransport() *DeduplicationTransport {
	return &DeduplicationTransport{}
}

type sharedResponse struct {
	resp *http.Response
	body []byte
}

func (d *DeduplicationTransport) Handler() func(req *http.Request, next http.RoundTripper) (*http.Response, error) {
	return func(req *http.Request, next http.RoundTripper) (*http.Response, error) {
		if req.Method != http.MethodGet {
			return next.RoundTrip(req)
		}

		v, err, shared := d.group.Do(CacheKey(req), func() (any, error) {
			// the flight is shared, a single caller going away must not cancel it for the others
			ctx := context.WithoutCancel(req.Context())
			if deadline, ok := req.Context().Deadline(); ok {
				var cancel context.CancelFunc
				ctx, cancel = context.WithDeadline(ctx, deadline)
				defer cancel()
			}

			resp, err := next.RoundTrip(req.Clone(ctx))
			if err != nil {
				return nil, err
			}
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			if err != nil {
				return nil, err
			}
			return sharedResponse{resp: resp, body: body}, nil
		})
		if ctxErr := req.Context().Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if err != nil {
			return nil, err
		}

		if shared {
			slog.Debug("deduplicated upstream request", "url", req.URL.String())
		}

		return cloneResponse(v.(sharedResponse), req), nil
	}
}

// every caller gets its own body reader
func cloneResponse(s sharedResponse, req *http.Request) *http.Response {
	clone := *s.resp
	clone.Header = s.resp.Header.Clone()
	clone.Body = io.NopCloser(bytes.NewReader(s.body))
	clone.ContentLength = int64(len(s.body))
	clone.Request = req
	return &clone
}
