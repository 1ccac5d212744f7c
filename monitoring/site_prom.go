// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: AGPL-3.0-or-later
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var PageTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "vpeng_page_transitions_total",
	Help: "Total number of navigations by selected page transition",
}, []string{"transition"})

var AnalyticsEvents = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "vpeng_analytics_events_total",
	Help: "Total number of analytics events recorded",
}, []string{"event"})

var SitemapEntries = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "vpeng_sitemap_entries",
	Help: "Number of urls in the last rendered sitemap",
})
