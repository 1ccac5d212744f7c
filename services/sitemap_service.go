// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: AGPL-3.0-or-later

package services

import (
	"context"
	"encoding/xml"
	"log/slog"
	"net/url"

	"github.com/alaw989/vp-eng-nuxt-sub002/dtos"
	"github.com/alaw989/vp-eng-nuxt-sub002/monitoring"
	"github.com/alaw989/vp-eng-nuxt-sub002/shared"
	"github.com/alaw989/vp-eng-nuxt-sub002/utils"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

type SitemapEntry struct {
	Path       string
	ChangeFreq string
	Priority   string
	LastMod    string
}

// StaticSitemapEntries are always part of the sitemap, even if the upstream is down.
var StaticSitemapEntries = []SitemapEntry{
	{Path: "/", ChangeFreq: "weekly", Priority: "1.0"},
	{Path: "/about", ChangeFreq: "monthly", Priority: "0.8"},
	{Path: "/services", ChangeFreq: "monthly", Priority: "0.9"},
	{Path: "/projects", ChangeFreq: "weekly", Priority: "0.9"},
	{Path: "/testimonials", ChangeFreq: "monthly", Priority: "0.6"},
	{Path: "/careers", ChangeFreq: "monthly", Priority: "0.5"},
	{Path: "/contact", ChangeFreq: "yearly", Priority: "0.7"},
	{Path: "/privacy", ChangeFreq: "yearly", Priority: "0.3"},
}

// dynamic collections with their detail page prefix
var sitemapCollections = []struct {
	kind     shared.CollectionKind
	priority string
}{
	{kind: shared.CollectionProjects, priority: "0.7"},
	{kind: shared.CollectionServices, priority: "0.8"},
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type sitemapService struct {
	siteURL string
	client  shared.UpstreamContentClient
}

var _ shared.SitemapService = (*sitemapService)(nil)

func NewSitemapService(cfg shared.Config, client shared.UpstreamContentClient) *sitemapService {
	return &sitemapService{
		siteURL: cfg.SiteURL,
		client:  client,
	}
}

// Entries returns the static entries followed by one entry per upstream project and
// service. Any upstream failure degrades to the static entries only.
func (s *sitemapService) Entries(ctx context.Context) []SitemapEntry {
	entries := append([]SitemapEntry{}, StaticSitemapEntries...)

	results := make([][]dtos.ContentItem, len(sitemapCollections))
	g, gctx := errgroup.WithContext(ctx)
	for i, c := range sitemapCollections {
		g.Go(func() error {
			items, err := s.client.List(gctx, c.kind, url.Values{"per_page": {"100"}})
			if err != nil {
				return errors.Wrapf(err, "could not fetch %s", c.kind)
			}
			results[i] = items
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		slog.Warn("sitemap degraded to static entries", "err", err)
		return entries
	}

	for i, c := range sitemapCollections {
		for _, item := range results[i] {
			entries = append(entries, SitemapEntry{
				Path:       "/" + string(c.kind) + "/" + item.Slug,
				ChangeFreq: "monthly",
				Priority:   c.priority,
				LastMod:    lastModFromDate(item.Date),
			})
		}
	}
	return utils.UniqBy(entries, func(e SitemapEntry) string {
		return e.Path
	})
}

// wordpress dates look like 2024-01-02T10:00:00, the sitemap only wants the day
func lastModFromDate(date string) string {
	if len(date) < 10 {
		return ""
	}
	return date[:10]
}

func (s *sitemapService) Render(ctx context.Context) ([]byte, error) {
	entries := s.Entries(ctx)

	set := sitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  make([]sitemapURL, 0, len(entries)),
	}
	for _, e := range entries {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        s.siteURL + e.Path,
			LastMod:    e.LastMod,
			ChangeFreq: e.ChangeFreq,
			Priority:   e.Priority,
		})
	}

	b, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "could not marshal sitemap")
	}
	monitoring.SitemapEntries.Set(float64(len(entries)))
	return append([]byte(xml.Header), b...), nil
}
