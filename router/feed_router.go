// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: AGPL-3.0-or-later

package router

import (
	"github.com/alaw989/vp-eng-nuxt-sub002/cmd/vpeng/api"
	"github.com/alaw989/vp-eng-nuxt-sub002/controllers"
	"github.com/labstack/echo/v4"
)

type FeedRouter struct {
	*echo.Group
}

func NewFeedRouter(
	srv api.Server,
	apiGroup APIRouter,
	controller *controllers.FeedController,
) FeedRouter {
	apiGroup.GET("/rss.xml", controller.RSS)
	// crawlers expect the sitemap at the root
	srv.Echo.GET("/sitemap.xml", controller.Sitemap)

	return FeedRouter{Group: apiGroup.Group}
}
