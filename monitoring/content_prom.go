// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: AGPL-3.0-or-later

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ContentFallbackUsed = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "vpeng_content_fallback_total",
	Help: "Total number of content responses served from the fallback literals",
}, []string{"kind", "reason"})

var ContentUpstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "vpeng_content_upstream_requests_total",
	Help: "Total number of requests sent to the wordpress upstream by outcome",
}, []string{"kind", "outcome"})

var ContentUpstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "vpeng_content_upstream_duration_seconds",
	Help:    "Duration of wordpress upstream requests in seconds",
	Buckets: prometheus.DefBuckets,
}, []string{"kind"})

var UpstreamCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "vpeng_upstream_cache_lookups_total",
	Help: "Total number of upstream cache lookups by result",
}, []string{"result"})
