// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: AGPL-3.0-or-later

package router

import (
	"github.com/alaw989/vp-eng-nuxt-sub002/cmd/vpeng/api"
	"github.com/alaw989/vp-eng-nuxt-sub002/controllers"
	"github.com/alaw989/vp-eng-nuxt-sub002/middlewares"
	"github.com/alaw989/vp-eng-nuxt-sub002/shared"
	"github.com/labstack/echo/v4"
)

type PageExperienceRouter struct {
	*echo.Group
}

func NewPageExperienceRouter(
	srv api.Server,
	apiGroup APIRouter,
	selector shared.TransitionSelector,
	transitionController *controllers.TransitionController,
	analyticsController *controllers.AnalyticsController,
) PageExperienceRouter {
	// server wide, every GET response carries the transition for the navigation that triggered it
	srv.Echo.Use(middlewares.PageTransition(selector))

	apiGroup.GET("/transition", transitionController.Select)
	apiGroup.POST("/events", analyticsController.RecordEvent)

	return PageExperienceRouter{Group: apiGroup.Group}
}
