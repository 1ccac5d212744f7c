// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: AGPL-3.0-or-later

package controllers

import (
	"net/http"

	"github.com/alaw989/vp-eng-nuxt-sub002/monitoring"
	"github.com/alaw989/vp-eng-nuxt-sub002/shared"
	"github.com/labstack/echo/v4"
)

const xmlContentType = "application/xml; charset=utf-8"

type FeedController struct {
	rssService     shared.RSSService
	sitemapService shared.SitemapService
}

func NewFeedController(rssService shared.RSSService, sitemapService shared.SitemapService) *FeedController {
	return &FeedController{
		rssService:     rssService,
		sitemapService: sitemapService,
	}
}

func (f *FeedController) RSS(c shared.Context) error {
	b, err := f.rssService.Render()
	if err != nil {
		monitoring.Alert("could not render rss feed", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "could not render rss feed").WithInternal(err)
	}
	c.Response().Header().Set("Cache-Control", "public, max-age=3600")
	return c.Blob(http.StatusOK, xmlContentType, b)
}

func (f *FeedController) Sitemap(c shared.Context) error {
	b, err := f.sitemapService.Render(c.Request().Context())
	if err != nil {
		monitoring.Alert("could not render sitemap", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "could not render sitemap").WithInternal(err)
	}
	c.Response().Header().Set("Cache-Control", "public, max-age=3600")
	return c.Blob(http.StatusOK, xmlContentType, b)
}
