// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: AGPL-3.0-or-later

package router

import (
	"github.com/alaw989/vp-eng-nuxt-sub002/controllers"
	"github.com/labstack/echo/v4"
)

type ContentRouter struct {
	*echo.Group
}

func NewContentRouter(
	apiGroup APIRouter,
	controller *controllers.ContentController,
) ContentRouter {
	apiGroup.GET("/projects", controller.ListProjects)
	apiGroup.GET("/services", controller.ListServices)
	apiGroup.GET("/testimonials", controller.ListTestimonials)

	return ContentRouter{Group: apiGroup.Group}
}
